package tempiciclo

import (
	"context"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	storage "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/tempiciclo"
)

// ConfigRepository интерфейс репозитория конфигурации tempi ciclo
type ConfigRepository interface {
	GetActiveByCategoria(ctx context.Context, categoria domain.CategoriaProdotto) (*domain.ConfigurazioneTempiCiclo, error)
	List(ctx context.Context) ([]*domain.ConfigurazioneTempiCiclo, error)
	UpdateByCategoria(ctx context.Context, categoria domain.CategoriaProdotto, fields storage.UpdateFields) (*domain.ConfigurazioneTempiCiclo, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
