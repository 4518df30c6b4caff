package create_prenotazione

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_prenotazione: invalid input data")

	// ErrDataPassata возвращается, когда дата планирования уже прошла
	ErrDataPassata = errors.New("create_prenotazione: data pianificata is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_prenotazione: internal error")
)
