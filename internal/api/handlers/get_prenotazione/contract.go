package get_prenotazione

import (
	"context"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni/models"
)

type PrenotazioniService interface {
	GetByID(ctx context.Context, id int64) (*models.PrenotazioneDettaglioResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
