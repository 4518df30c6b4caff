package transizione_stato

import (
	"errors"
	"fmt"
	"strings"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
)

var (
	// ErrPrenotazioneNotFound возвращается, когда бронирование не найдено
	ErrPrenotazioneNotFound = errors.New("transizione_stato: prenotazione not found")

	// ErrTransizioneNonValida возвращается при недопустимом переходе
	// Детали перехода несет TransizioneNonValidaError
	ErrTransizioneNonValida = errors.New("transizione_stato: transizione not allowed")

	// ErrNoteAnnullamentoRichieste возвращается при аннулировании без причины
	ErrNoteAnnullamentoRichieste = errors.New("transizione_stato: note required for annullamento")

	// ErrUsaRegistrazioneCarico возвращается при попытке перейти в caricato
	// напрямую: этот переход выполняется только регистрацией данных карико
	ErrUsaRegistrazioneCarico = errors.New("transizione_stato: stato caricato requires dati carico registration")

	// ErrConflitto возвращается, когда переход проиграл конкурентной
	// транзакции по тому же бронированию: операцию можно повторить
	ErrConflitto = errors.New("transizione_stato: concurrent operation conflict, retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transizione_stato: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transizione_stato: internal error")
)

// TransizioneNonValidaError несет контекст отклоненного перехода:
// текущий статус и множество допустимых переходов из него
type TransizioneNonValidaError struct {
	StatoAttuale         domain.Stato
	StatoRichiesto       domain.Stato
	TransizioniPossibili []domain.Stato
}

func (e *TransizioneNonValidaError) Error() string {
	possibili := make([]string, 0, len(e.TransizioniPossibili))
	for _, s := range e.TransizioniPossibili {
		possibili = append(possibili, string(s))
	}

	return fmt.Sprintf("transizione_stato: transizione %s -> %s not allowed, possible: [%s]",
		e.StatoAttuale, e.StatoRichiesto, strings.Join(possibili, ", "))
}

// Is позволяет проверять ошибку через errors.Is(err, ErrTransizioneNonValida)
func (e *TransizioneNonValidaError) Is(target error) bool {
	return target == ErrTransizioneNonValida
}
