package tempiciclo

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация категории не найдена
	ErrConfigNotFound = errors.New("configurazione tempi ciclo not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tempiciclo service: internal error")
)
