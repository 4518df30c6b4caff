package update_prenotazione

import (
	"context"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni/models"
	updatePrenotazione "github.com/molinoferri/MFP-PrenotazioniService/internal/usecase/update_prenotazione"
)

type UpdatePrenotazioneUseCase interface {
	Execute(ctx context.Context, req *updatePrenotazione.Request) (*models.PrenotazioneDettaglioResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
