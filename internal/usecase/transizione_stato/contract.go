package transizione_stato

import (
	"context"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
)

// PrenotazioneRepository интерфейс репозитория бронирований
// GetByID внутри транзакции блокирует строку (SELECT ... FOR UPDATE),
// что сериализует конкурентные переходы по одному бронированию
type PrenotazioneRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Prenotazione, error)
	UpdateStato(ctx context.Context, id int64, stato domain.Stato) error
}

// StoricoRepository интерфейс репозитория журнала статусов
type StoricoRepository interface {
	Append(ctx context.Context, entry *domain.StoricoStato) (*domain.StoricoStato, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
