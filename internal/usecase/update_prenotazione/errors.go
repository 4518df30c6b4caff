package update_prenotazione

import "errors"

var (
	// ErrPrenotazioneNotFound возвращается, когда бронирование не найдено
	ErrPrenotazioneNotFound = errors.New("update_prenotazione: prenotazione not found")

	// ErrStatoFinale возвращается при попытке изменить бронирование
	// в терминальном статусе
	ErrStatoFinale = errors.New("update_prenotazione: prenotazione in stato finale cannot be updated")

	// ErrDataPassata возвращается, когда новая дата планирования уже прошла
	ErrDataPassata = errors.New("update_prenotazione: data pianificata is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_prenotazione: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_prenotazione: internal error")
)
