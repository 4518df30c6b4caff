package transizione_stato

import (
	"context"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni/models"
	transizioneStato "github.com/molinoferri/MFP-PrenotazioniService/internal/usecase/transizione_stato"
)

type TransizioneStatoUseCase interface {
	Execute(ctx context.Context, req *transizioneStato.Request) (*models.PrenotazioneDettaglioResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
