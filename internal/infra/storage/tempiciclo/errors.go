package tempiciclo

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация категории не найдена
	// или неактивна
	ErrConfigNotFound = errors.New("tempiciclo.repository: configurazione not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tempiciclo.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tempiciclo.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tempiciclo.repository: failed to scan row")
)
