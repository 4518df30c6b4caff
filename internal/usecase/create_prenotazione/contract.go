package create_prenotazione

import (
	"context"
	"time"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
)

// PrenotazioneRepository интерфейс репозитория бронирований
type PrenotazioneRepository interface {
	Create(ctx context.Context, p *domain.Prenotazione) (*domain.Prenotazione, error)
}

// StoricoRepository интерфейс репозитория журнала статусов
type StoricoRepository interface {
	Append(ctx context.Context, entry *domain.StoricoStato) (*domain.StoricoStato, error)
}

// DurataCalculator интерфейс расчета длительности слота
type DurataCalculator interface {
	CalcolaDurataMinuti(ctx context.Context, categoria domain.CategoriaProdotto, quantitaKg float64, cambioProdotto bool) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
