package update_tempi_ciclo

import (
	"context"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/tempiciclo/models"
)

type TempiCicloService interface {
	Update(ctx context.Context, categoria domain.CategoriaProdotto, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
