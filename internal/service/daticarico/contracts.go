package daticarico

import (
	"context"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	datiCaricoRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/daticarico"
)

// DatiCaricoRepository интерфейс репозитория данных карико
type DatiCaricoRepository interface {
	GetByPrenotazioneID(ctx context.Context, prenotazioneID int64) (*domain.DatiCarico, error)
	UpdateFields(ctx context.Context, prenotazioneID int64, fields datiCaricoRepo.UpdateFields) (*domain.DatiCarico, error)
}

// PrenotazioneRepository интерфейс репозитория бронирований
// Нужен для проверки существования и распространения номера DDT
type PrenotazioneRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Prenotazione, error)
	UpdateDdtRiferimento(ctx context.Context, id int64, ddt string) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
