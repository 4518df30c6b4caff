package registra_carico

import "errors"

var (
	// ErrPrenotazioneNotFound возвращается, когда бронирование не найдено
	ErrPrenotazioneNotFound = errors.New("registra_carico: prenotazione not found")

	// ErrSoloConsegna возвращается для бронирований производства:
	// данные карико регистрируются только для consegna
	ErrSoloConsegna = errors.New("registra_carico: dati carico allowed only for tipologia consegna")

	// ErrStatoNonInCarico возвращается, когда бронирование не в статусе
	// in_carico: регистрация завершает именно фазу погрузки
	ErrStatoNonInCarico = errors.New("registra_carico: prenotazione is not in stato in_carico")

	// ErrDatiCaricoEsistenti возвращается при повторной регистрации:
	// связь с бронированием строго один-к-одному
	ErrDatiCaricoEsistenti = errors.New("registra_carico: dati carico already registered")

	// ErrIdoneitaNoteRichieste возвращается, когда транспорт признан
	// непригодным без указания причины
	ErrIdoneitaNoteRichieste = errors.New("registra_carico: idoneita note required when transport is not suitable")

	// ErrConflitto возвращается, когда регистрация проиграла конкурентной
	// транзакции по тому же бронированию: операцию можно повторить
	ErrConflitto = errors.New("registra_carico: concurrent operation conflict, retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("registra_carico: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("registra_carico: internal error")
)
