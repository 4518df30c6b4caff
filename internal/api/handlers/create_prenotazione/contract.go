package create_prenotazione

import (
	"context"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni/models"
	createPrenotazione "github.com/molinoferri/MFP-PrenotazioniService/internal/usecase/create_prenotazione"
)

type CreatePrenotazioneUseCase interface {
	Execute(ctx context.Context, req *createPrenotazione.Request) (*models.PrenotazioneDettaglioResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
