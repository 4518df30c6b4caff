package daticarico

import "errors"

var (
	// ErrDatiCaricoNotFound возвращается, когда данные карико не найдены
	ErrDatiCaricoNotFound = errors.New("daticarico.repository: dati carico not found")

	// ErrDatiCaricoEsistenti возвращается при попытке создать вторую запись
	// для того же бронирования (связь строго один-к-одному)
	ErrDatiCaricoEsistenti = errors.New("daticarico.repository: dati carico already exist for prenotazione")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("daticarico.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("daticarico.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("daticarico.repository: failed to scan row")

	// ErrConcorrenza возвращается, когда транзакция проиграла конкурентной
	// (serialization failure или deadlock) и может быть повторена
	ErrConcorrenza = errors.New("daticarico.repository: concurrent transaction conflict")
)
