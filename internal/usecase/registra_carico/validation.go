package registra_carico

import (
	"fmt"
	"strings"
)

func validateRequest(req *Request) error {
	if req.PrenotazioneID <= 0 {
		return fmt.Errorf("%w: prenotazione id non valido", ErrInvalidInput)
	}

	if req.DataCarico.IsZero() {
		return fmt.Errorf("%w: data_carico obbligatoria", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TargaAutomezzo) == "" {
		return fmt.Errorf("%w: targa_automezzo obbligatoria", ErrInvalidInput)
	}

	if strings.TrimSpace(req.LottoCaricato) == "" {
		return fmt.Errorf("%w: lotto_caricato obbligatorio", ErrInvalidInput)
	}

	if req.PesoCaricatoKg <= 0 {
		return fmt.Errorf("%w: peso_caricato_kg deve essere positivo", ErrInvalidInput)
	}

	// Непригодный транспорт требует указания причины
	if !req.IdoneitaTrasporto {
		if req.IdoneitaNote == nil || strings.TrimSpace(*req.IdoneitaNote) == "" {
			return ErrIdoneitaNoteRichieste
		}
	}

	return nil
}
