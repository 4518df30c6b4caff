package prenotazioni

import "errors"

var (
	// ErrPrenotazioneNotFound возвращается, когда бронирование не найдено
	ErrPrenotazioneNotFound = errors.New("prenotazione not found")

	// ErrSoloPianificatoEliminabile возвращается при попытке удалить
	// бронирование, которое уже было взято в работу
	// Для таких бронирований используется аннулирование, не удаление
	ErrSoloPianificatoEliminabile = errors.New("only prenotazioni in stato pianificato can be deleted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("prenotazioni service: internal error")
)
