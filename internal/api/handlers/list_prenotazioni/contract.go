package list_prenotazioni

import (
	"context"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni/models"
)

type PrenotazioniService interface {
	List(ctx context.Context, req *models.ListPrenotazioniRequest) (*models.PrenotazioneListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
