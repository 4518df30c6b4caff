package storico

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/dbmetrics"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий журнала смены статусов
// Таблица append-only: записи никогда не изменяются и не удаляются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала статусов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись о смене статуса
// Вызывается внутри той же транзакции, что и обновление статуса бронирования
func (r *Repository) Append(ctx context.Context, entry *domain.StoricoStato) (*domain.StoricoStato, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("storico_stati").
		Columns(
			"prenotazione_id",
			"stato_precedente",
			"stato_nuovo",
			"utente_id",
			"note",
		).
		Values(
			entry.PrenotazioneID,
			entry.StatoPrecedente,
			entry.StatoNuovo,
			entry.UtenteID,
			entry.Note,
		).
		Suffix("RETURNING id, timestamp_cambio").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var timestampCambio sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&timestampCambio,
	)

	if err != nil {
		if dbmetrics.IsConcurrencyConflict(err) {
			return nil, fmt.Errorf("%w: Append: %v", ErrConcorrenza, err)
		}
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	entry.TimestampCambio = timestampCambio.Time

	return entry, nil
}

// GetByPrenotazioneID получает историю статусов бронирования,
// отсортированную от новых записей к старым
func (r *Repository) GetByPrenotazioneID(ctx context.Context, prenotazioneID int64) ([]*domain.StoricoStato, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"prenotazione_id",
		"stato_precedente",
		"stato_nuovo",
		"timestamp_cambio",
		"utente_id",
		"note",
	).
		From("storico_stati").
		Where(squirrel.Eq{"prenotazione_id": prenotazioneID}).
		OrderBy("timestamp_cambio DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPrenotazioneID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPrenotazioneID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.StoricoStato, 0)
	for rows.Next() {
		var entry domain.StoricoStato
		var timestampCambio sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.PrenotazioneID,
			&entry.StatoPrecedente,
			&entry.StatoNuovo,
			&timestampCambio,
			&entry.UtenteID,
			&entry.Note,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByPrenotazioneID - scan row: %v", ErrScanRow, err)
		}

		entry.TimestampCambio = timestampCambio.Time
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByPrenotazioneID - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
