package registra_carico

import (
	"context"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni/models"
	registraCarico "github.com/molinoferri/MFP-PrenotazioniService/internal/usecase/registra_carico"
)

type RegistraCaricoUseCase interface {
	Execute(ctx context.Context, req *registraCarico.Request) (*models.PrenotazioneDettaglioResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
