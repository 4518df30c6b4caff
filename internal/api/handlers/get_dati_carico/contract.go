package get_dati_carico

import (
	"context"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/daticarico/models"
)

type DatiCaricoService interface {
	GetByPrenotazioneID(ctx context.Context, prenotazioneID int64) (*models.DatiCaricoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
