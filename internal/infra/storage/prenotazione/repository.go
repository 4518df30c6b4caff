package prenotazione

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/dbmetrics"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/psqlbuilder"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/types"
)

var selectColumns = []string{
	"id",
	"codice_prenotazione",
	"tipologia",
	"cliente_id",
	"trasportatore_id",
	"data_pianificata",
	"ora_inizio_prevista",
	"ora_fine_prevista",
	"durata_prevista_minuti",
	"prodotto_codice",
	"prodotto_descrizione",
	"categoria_prodotto",
	"specifica_w",
	"specifica_w_tolleranza",
	"specifica_pl",
	"specifica_pl_tolleranza",
	"quantita_prevista",
	"unita_misura",
	"quantita_kg",
	"lotto_previsto",
	"lotto_scadenza",
	"origine_materiale",
	"silos_origine",
	"linea_produzione",
	"prenotazione_consegna_collegata",
	"prenotazione_produzione_collegata",
	"tipologia_carico",
	"ordine_riferimento",
	"ddt_riferimento",
	"stato",
	"priorita",
	"note",
	"created_by",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её
func (r *Repository) Create(ctx context.Context, p *domain.Prenotazione) (*domain.Prenotazione, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("prenotazioni").
		Columns(
			"codice_prenotazione",
			"tipologia",
			"cliente_id",
			"trasportatore_id",
			"data_pianificata",
			"ora_inizio_prevista",
			"ora_fine_prevista",
			"durata_prevista_minuti",
			"prodotto_codice",
			"prodotto_descrizione",
			"categoria_prodotto",
			"specifica_w",
			"specifica_w_tolleranza",
			"specifica_pl",
			"specifica_pl_tolleranza",
			"quantita_prevista",
			"unita_misura",
			"quantita_kg",
			"lotto_previsto",
			"lotto_scadenza",
			"origine_materiale",
			"silos_origine",
			"linea_produzione",
			"prenotazione_consegna_collegata",
			"prenotazione_produzione_collegata",
			"tipologia_carico",
			"ordine_riferimento",
			"stato",
			"priorita",
			"note",
			"created_by",
		).
		Values(
			p.CodicePrenotazione,
			p.Tipologia,
			p.ClienteID,
			p.TrasportatoreID,
			p.DataPianificata,
			p.OraInizioPrevista,
			p.OraFinePrevista,
			p.DurataPrevistaMinuti,
			p.ProdottoCodice,
			p.ProdottoDescrizione,
			p.CategoriaProdotto,
			p.SpecificaW,
			p.SpecificaWTolleranza,
			p.SpecificaPL,
			p.SpecificaPLTolleranza,
			p.QuantitaPrevista,
			p.UnitaMisura,
			p.QuantitaKg,
			p.LottoPrevisto,
			p.LottoScadenza,
			p.OrigineMateriale,
			p.SilosOrigine,
			p.LineaProduzione,
			p.PrenotazioneConsegnaCollegata,
			p.PrenotazioneProduzioneCollegata,
			p.TipologiaCarico,
			p.OrdineRiferimento,
			p.Stato,
			p.Priorita,
			p.Note,
			p.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется через FOR UPDATE, чтобы конкурирующие
// смены статуса на одном бронировании выполнялись строго последовательно
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Prenotazione, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("prenotazioni").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	p, err := scanPrenotazione(row)
	if err == sql.ErrNoRows {
		return nil, ErrPrenotazioneNotFound
	}
	if err != nil {
		if dbmetrics.IsConcurrencyConflict(err) {
			return nil, fmt.Errorf("%w: GetByID: %v", ErrConcorrenza, err)
		}
		return nil, fmt.Errorf("%w: GetByID - scan prenotazione: %v", ErrScanRow, err)
	}

	return p, nil
}

// List получает бронирования с фильтрацией и пагинацией
// Возвращает страницу результатов и общее количество подходящих строк
func (r *Repository) List(ctx context.Context, filter domain.PrenotazioniFilter) ([]*domain.Prenotazione, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	conditions := filterConditions(filter)

	countBuilder := psqlbuilder.Select("COUNT(*)").From("prenotazioni")
	for _, cond := range conditions {
		countBuilder = countBuilder.Where(cond)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - scan count: %v", ErrScanRow, err)
	}

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("prenotazioni").
		OrderBy("data_pianificata DESC", "ora_inizio_prevista ASC")

	for _, cond := range conditions {
		selectBuilder = selectBuilder.Where(cond)
	}

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
		if filter.Page > 1 {
			selectBuilder = selectBuilder.Offset(uint64((filter.Page - 1) * filter.Limit))
		}
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	prenotazioni := make([]*domain.Prenotazione, 0)
	for rows.Next() {
		p, err := scanPrenotazione(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		prenotazioni = append(prenotazioni, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return prenotazioni, total, nil
}

// UpdateFields частично обновляет поля бронирования
// Обновляются только переданные (не nil) поля, остальные не трогаются
func (r *Repository) UpdateFields(ctx context.Context, id int64, fields UpdateFields) (*domain.Prenotazione, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("prenotazioni").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(selectColumns, ", "))

	updateBuilder = fields.apply(updateBuilder)

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateFields - build update query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	p, err := scanPrenotazione(row)
	if err == sql.ErrNoRows {
		return nil, ErrPrenotazioneNotFound
	}
	if err != nil {
		if dbmetrics.IsConcurrencyConflict(err) {
			return nil, fmt.Errorf("%w: UpdateFields: %v", ErrConcorrenza, err)
		}
		return nil, fmt.Errorf("%w: UpdateFields - scan prenotazione: %v", ErrScanRow, err)
	}

	return p, nil
}

// UpdateStato обновляет статус бронирования
func (r *Repository) UpdateStato(ctx context.Context, id int64, stato domain.Stato) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("prenotazioni").
		Set("stato", stato).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStato - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if dbmetrics.IsConcurrencyConflict(err) {
			return fmt.Errorf("%w: UpdateStato: %v", ErrConcorrenza, err)
		}
		return fmt.Errorf("%w: UpdateStato - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStato - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPrenotazioneNotFound
	}

	return nil
}

// UpdateDdtRiferimento сохраняет ссылку на транспортный документ (DDT)
func (r *Repository) UpdateDdtRiferimento(ctx context.Context, id int64, ddt string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("prenotazioni").
		Set("ddt_riferimento", ddt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDdtRiferimento - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if dbmetrics.IsConcurrencyConflict(err) {
			return fmt.Errorf("%w: UpdateDdtRiferimento: %v", ErrConcorrenza, err)
		}
		return fmt.Errorf("%w: UpdateDdtRiferimento - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDdtRiferimento - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPrenotazioneNotFound
	}

	return nil
}

// Delete удаляет бронирование (физическое удаление)
// История статусов и данные карико удаляются каскадно на уровне БД
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("prenotazioni").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if dbmetrics.IsConcurrencyConflict(err) {
			return fmt.Errorf("%w: Delete: %v", ErrConcorrenza, err)
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPrenotazioneNotFound
	}

	return nil
}

// UpdateFields набор частично обновляемых полей
// nil означает "оставить текущее значение"
type UpdateFields struct {
	ClienteID       *int64
	TrasportatoreID *int64

	DataPianificata      *time.Time
	OraInizioPrevista    *types.TimeString
	OraFinePrevista      *types.TimeString
	DurataPrevistaMinuti *int

	ProdottoCodice        *string
	ProdottoDescrizione   *string
	CategoriaProdotto     *domain.CategoriaProdotto
	SpecificaW            *float64
	SpecificaWTolleranza  *float64
	SpecificaPL           *float64
	SpecificaPLTolleranza *float64
	QuantitaPrevista      *float64
	UnitaMisura           *domain.UnitaMisura
	QuantitaKg            *float64

	LottoPrevisto *string
	LottoScadenza *time.Time

	OrigineMateriale *domain.OrigineMateriale
	SilosOrigine     *string
	LineaProduzione  *string

	TipologiaCarico   *domain.TipologiaCarico
	OrdineRiferimento *string

	Priorita *int
	Note     *string
}

func (f UpdateFields) apply(b squirrel.UpdateBuilder) squirrel.UpdateBuilder {
	if f.ClienteID != nil {
		b = b.Set("cliente_id", *f.ClienteID)
	}
	if f.TrasportatoreID != nil {
		b = b.Set("trasportatore_id", *f.TrasportatoreID)
	}
	if f.DataPianificata != nil {
		b = b.Set("data_pianificata", *f.DataPianificata)
	}
	if f.OraInizioPrevista != nil {
		b = b.Set("ora_inizio_prevista", *f.OraInizioPrevista)
	}
	if f.OraFinePrevista != nil {
		b = b.Set("ora_fine_prevista", *f.OraFinePrevista)
	}
	if f.DurataPrevistaMinuti != nil {
		b = b.Set("durata_prevista_minuti", *f.DurataPrevistaMinuti)
	}
	if f.ProdottoCodice != nil {
		b = b.Set("prodotto_codice", *f.ProdottoCodice)
	}
	if f.ProdottoDescrizione != nil {
		b = b.Set("prodotto_descrizione", *f.ProdottoDescrizione)
	}
	if f.CategoriaProdotto != nil {
		b = b.Set("categoria_prodotto", *f.CategoriaProdotto)
	}
	if f.SpecificaW != nil {
		b = b.Set("specifica_w", *f.SpecificaW)
	}
	if f.SpecificaWTolleranza != nil {
		b = b.Set("specifica_w_tolleranza", *f.SpecificaWTolleranza)
	}
	if f.SpecificaPL != nil {
		b = b.Set("specifica_pl", *f.SpecificaPL)
	}
	if f.SpecificaPLTolleranza != nil {
		b = b.Set("specifica_pl_tolleranza", *f.SpecificaPLTolleranza)
	}
	if f.QuantitaPrevista != nil {
		b = b.Set("quantita_prevista", *f.QuantitaPrevista)
	}
	if f.UnitaMisura != nil {
		b = b.Set("unita_misura", *f.UnitaMisura)
	}
	if f.QuantitaKg != nil {
		b = b.Set("quantita_kg", *f.QuantitaKg)
	}
	if f.LottoPrevisto != nil {
		b = b.Set("lotto_previsto", *f.LottoPrevisto)
	}
	if f.LottoScadenza != nil {
		b = b.Set("lotto_scadenza", *f.LottoScadenza)
	}
	if f.OrigineMateriale != nil {
		b = b.Set("origine_materiale", *f.OrigineMateriale)
	}
	if f.SilosOrigine != nil {
		b = b.Set("silos_origine", *f.SilosOrigine)
	}
	if f.LineaProduzione != nil {
		b = b.Set("linea_produzione", *f.LineaProduzione)
	}
	if f.TipologiaCarico != nil {
		b = b.Set("tipologia_carico", *f.TipologiaCarico)
	}
	if f.OrdineRiferimento != nil {
		b = b.Set("ordine_riferimento", *f.OrdineRiferimento)
	}
	if f.Priorita != nil {
		b = b.Set("priorita", *f.Priorita)
	}
	if f.Note != nil {
		b = b.Set("note", *f.Note)
	}
	return b
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPrenotazione(row rowScanner) (*domain.Prenotazione, error) {
	var p domain.Prenotazione
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.CodicePrenotazione,
		&p.Tipologia,
		&p.ClienteID,
		&p.TrasportatoreID,
		&p.DataPianificata,
		&p.OraInizioPrevista,
		&p.OraFinePrevista,
		&p.DurataPrevistaMinuti,
		&p.ProdottoCodice,
		&p.ProdottoDescrizione,
		&p.CategoriaProdotto,
		&p.SpecificaW,
		&p.SpecificaWTolleranza,
		&p.SpecificaPL,
		&p.SpecificaPLTolleranza,
		&p.QuantitaPrevista,
		&p.UnitaMisura,
		&p.QuantitaKg,
		&p.LottoPrevisto,
		&p.LottoScadenza,
		&p.OrigineMateriale,
		&p.SilosOrigine,
		&p.LineaProduzione,
		&p.PrenotazioneConsegnaCollegata,
		&p.PrenotazioneProduzioneCollegata,
		&p.TipologiaCarico,
		&p.OrdineRiferimento,
		&p.DdtRiferimento,
		&p.Stato,
		&p.Priorita,
		&p.Note,
		&p.CreatedBy,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

func filterConditions(filter domain.PrenotazioniFilter) []squirrel.Sqlizer {
	conditions := make([]squirrel.Sqlizer, 0)

	if filter.Tipologia != nil {
		conditions = append(conditions, squirrel.Eq{"tipologia": *filter.Tipologia})
	}
	if filter.Stato != nil {
		conditions = append(conditions, squirrel.Eq{"stato": *filter.Stato})
	}
	if filter.ClienteID != nil {
		conditions = append(conditions, squirrel.Eq{"cliente_id": *filter.ClienteID})
	}
	if filter.TrasportatoreID != nil {
		conditions = append(conditions, squirrel.Eq{"trasportatore_id": *filter.TrasportatoreID})
	}
	if filter.DataDa != nil {
		conditions = append(conditions, squirrel.GtOrEq{"data_pianificata": *filter.DataDa})
	}
	if filter.DataA != nil {
		conditions = append(conditions, squirrel.LtOrEq{"data_pianificata": *filter.DataA})
	}
	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		conditions = append(conditions, squirrel.Or{
			squirrel.ILike{"codice_prenotazione": pattern},
			squirrel.ILike{"prodotto_descrizione": pattern},
		})
	}

	return conditions
}
