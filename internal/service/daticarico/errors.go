package daticarico

import "errors"

var (
	// ErrPrenotazioneNotFound возвращается, когда бронирование не найдено
	ErrPrenotazioneNotFound = errors.New("prenotazione not found")

	// ErrDatiCaricoNotFound возвращается, когда данные карико не зарегистрированы
	ErrDatiCaricoNotFound = errors.New("dati carico not found")

	// ErrIdoneitaNoteRichieste возвращается, когда транспорт признан
	// непригодным без указания причины
	ErrIdoneitaNoteRichieste = errors.New("idoneita note required when transport is not suitable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("daticarico service: internal error")
)
