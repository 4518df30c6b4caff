package storico

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("storico.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("storico.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("storico.repository: failed to scan row")

	// ErrConcorrenza возвращается, когда транзакция проиграла конкурентной
	// (serialization failure или deadlock) и может быть повторена
	ErrConcorrenza = errors.New("storico.repository: concurrent transaction conflict")
)
