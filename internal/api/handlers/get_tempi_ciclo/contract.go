package get_tempi_ciclo

import (
	"context"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/tempiciclo/models"
)

type TempiCicloService interface {
	List(ctx context.Context) (*models.ConfigListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
