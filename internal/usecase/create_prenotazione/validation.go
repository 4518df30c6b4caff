package create_prenotazione

import (
	"fmt"
	"strings"
	"time"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
)

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CodicePrenotazione) == "" {
		return fmt.Errorf("%w: codice_prenotazione obbligatorio", ErrInvalidInput)
	}

	tipologia := domain.Tipologia(req.Tipologia)
	if !tipologia.IsValid() {
		return fmt.Errorf("%w: tipologia non valida: %q", ErrInvalidInput, req.Tipologia)
	}

	if req.DataPianificata.IsZero() {
		return fmt.Errorf("%w: data_pianificata obbligatoria", ErrInvalidInput)
	}

	if req.OraInizioPrevista.IsZero() {
		return fmt.Errorf("%w: ora_inizio_prevista obbligatoria", ErrInvalidInput)
	}
	if err := req.OraInizioPrevista.Validate(); err != nil {
		return fmt.Errorf("%w: ora_inizio_prevista non valida: %v", ErrInvalidInput, err)
	}

	if req.Priorita != nil && (*req.Priorita < domain.PrioritaMin || *req.Priorita > domain.PrioritaMax) {
		return fmt.Errorf("%w: priorita fuori intervallo [%d, %d]", ErrInvalidInput, domain.PrioritaMin, domain.PrioritaMax)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note troppo lunghe (max %d caratteri)", ErrInvalidInput, domain.MaxNoteLength)
	}

	if req.QuantitaPrevista != nil && *req.QuantitaPrevista < 0 {
		return fmt.Errorf("%w: quantita_prevista negativa", ErrInvalidInput)
	}
	if req.QuantitaKg != nil && *req.QuantitaKg < 0 {
		return fmt.Errorf("%w: quantita_kg negativa", ErrInvalidInput)
	}

	return nil
}

// validateDataNonPassata запрещает планирование на уже прошедшие даты
// Сравниваются только даты: бронирование на сегодня допустимо
func validateDataNonPassata(data time.Time, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dataOnly := time.Date(data.Year(), data.Month(), data.Day(), 0, 0, 0, 0, now.Location())

	if dataOnly.Before(today) {
		return fmt.Errorf("%w: %s", ErrDataPassata, data.Format(domain.DateFormat))
	}

	return nil
}
