package prenotazione

import "errors"

var (
	// ErrPrenotazioneNotFound возвращается, когда бронирование не найдено
	ErrPrenotazioneNotFound = errors.New("prenotazione.repository: prenotazione not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("prenotazione.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("prenotazione.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("prenotazione.repository: failed to scan row")

	// ErrConcorrenza возвращается, когда транзакция проиграла конкурентной
	// (serialization failure или deadlock) и может быть повторена
	ErrConcorrenza = errors.New("prenotazione.repository: concurrent transaction conflict")
)
