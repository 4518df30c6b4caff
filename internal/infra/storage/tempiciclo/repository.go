package tempiciclo

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

var selectColumns = []string{
	"id",
	"categoria",
	"ton_ora",
	"tempo_setup_minuti",
	"tempo_pulizia_minuti",
	"attivo",
	"updated_at",
}

// Repository репозиторий конфигурации tempi ciclo (времен цикла по категориям)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория tempi ciclo
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByCategoria получает активную конфигурацию категории
// Неактивные строки не учитываются - для них вызывающий код использует
// встроенные значения по умолчанию
func (r *Repository) GetActiveByCategoria(ctx context.Context, categoria domain.CategoriaProdotto) (*domain.ConfigurazioneTempiCiclo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("configurazione_tempi_ciclo").
		Where(squirrel.Eq{"categoria": categoria, "attivo": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCategoria - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	config, err := scanConfigurazione(row)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCategoria - scan config: %v", ErrScanRow, err)
	}

	return config, nil
}

// List получает все конфигурации, отсортированные по категории
func (r *Repository) List(ctx context.Context) ([]*domain.ConfigurazioneTempiCiclo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("configurazione_tempi_ciclo").
		OrderBy("categoria ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.ConfigurazioneTempiCiclo, 0)
	for rows.Next() {
		config, err := scanConfigurazione(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		configs = append(configs, config)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// UpdateByCategoria частично обновляет конфигурацию категории
// Обновляются только переданные (не nil) поля
func (r *Repository) UpdateByCategoria(ctx context.Context, categoria domain.CategoriaProdotto, fields UpdateFields) (*domain.ConfigurazioneTempiCiclo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("configurazione_tempi_ciclo").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"categoria": categoria}).
		Suffix("RETURNING id, categoria, ton_ora, tempo_setup_minuti, tempo_pulizia_minuti, attivo, updated_at")

	if fields.TonOra != nil {
		updateBuilder = updateBuilder.Set("ton_ora", *fields.TonOra)
	}
	if fields.TempoSetupMinuti != nil {
		updateBuilder = updateBuilder.Set("tempo_setup_minuti", *fields.TempoSetupMinuti)
	}
	if fields.TempoPuliziaMinuti != nil {
		updateBuilder = updateBuilder.Set("tempo_pulizia_minuti", *fields.TempoPuliziaMinuti)
	}
	if fields.Attivo != nil {
		updateBuilder = updateBuilder.Set("attivo", *fields.Attivo)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateByCategoria - build update query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	config, err := scanConfigurazione(row)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateByCategoria - scan config: %v", ErrScanRow, err)
	}

	return config, nil
}

// UpdateFields набор частично обновляемых полей конфигурации
// nil означает "оставить текущее значение"
type UpdateFields struct {
	TonOra             *float64
	TempoSetupMinuti   *int
	TempoPuliziaMinuti *int
	Attivo             *bool
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConfigurazione(row rowScanner) (*domain.ConfigurazioneTempiCiclo, error) {
	var config domain.ConfigurazioneTempiCiclo
	var updatedAt sql.NullTime

	err := row.Scan(
		&config.ID,
		&config.Categoria,
		&config.TonOra,
		&config.TempoSetupMinuti,
		&config.TempoPuliziaMinuti,
		&config.Attivo,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	config.UpdatedAt = updatedAt.Time

	return &config, nil
}
