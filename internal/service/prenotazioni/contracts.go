package prenotazioni

import (
	"context"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
)

// PrenotazioneRepository интерфейс репозитория бронирований
type PrenotazioneRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Prenotazione, error)
	List(ctx context.Context, filter domain.PrenotazioniFilter) ([]*domain.Prenotazione, int, error)
	Delete(ctx context.Context, id int64) error
}

// StoricoRepository интерфейс репозитория журнала статусов
type StoricoRepository interface {
	GetByPrenotazioneID(ctx context.Context, prenotazioneID int64) ([]*domain.StoricoStato, error)
}

// DatiCaricoRepository интерфейс репозитория данных карико
type DatiCaricoRepository interface {
	GetByPrenotazioneID(ctx context.Context, prenotazioneID int64) (*domain.DatiCarico, error)
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
