package daticarico

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/dbmetrics"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/psqlbuilder"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/types"
)

// Код ошибки Postgres для нарушения unique constraint
const pgUniqueViolation = "23505"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var selectColumns = []string{
	"id",
	"prenotazione_id",
	"data_carico",
	"ora_inizio_carico",
	"ora_fine_carico",
	"operatore_id",
	"operatore_nome",
	"idoneita_trasporto",
	"idoneita_note",
	"targa_automezzo",
	"targa_rimorchio",
	"nome_autista",
	"lotto_caricato",
	"scadenza_lotto",
	"peso_caricato_kg",
	"peso_tara_kg",
	"peso_lordo_kg",
	"tipologia_carico",
	"numero_colli",
	"ddt_numero",
	"ddt_data",
	"registrato_at",
}

// Repository репозиторий данных карико (завершения погрузки)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория данных карико
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись данных карико
// Unique constraint на prenotazione_id гарантирует связь один-к-одному;
// его нарушение возвращается как ErrDatiCaricoEsistenti
func (r *Repository) Create(ctx context.Context, dc *domain.DatiCarico) (*domain.DatiCarico, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("dati_carico").
		Columns(
			"prenotazione_id",
			"data_carico",
			"ora_inizio_carico",
			"ora_fine_carico",
			"operatore_id",
			"operatore_nome",
			"idoneita_trasporto",
			"idoneita_note",
			"targa_automezzo",
			"targa_rimorchio",
			"nome_autista",
			"lotto_caricato",
			"scadenza_lotto",
			"peso_caricato_kg",
			"peso_tara_kg",
			"peso_lordo_kg",
			"tipologia_carico",
			"numero_colli",
			"ddt_numero",
			"ddt_data",
		).
		Values(
			dc.PrenotazioneID,
			dc.DataCarico,
			dc.OraInizioCarico,
			dc.OraFineCarico,
			dc.OperatoreID,
			dc.OperatoreNome,
			dc.IdoneitaTrasporto,
			dc.IdoneitaNote,
			dc.TargaAutomezzo,
			dc.TargaRimorchio,
			dc.NomeAutista,
			dc.LottoCaricato,
			dc.ScadenzaLotto,
			dc.PesoCaricatoKg,
			dc.PesoTaraKg,
			dc.PesoLordoKg,
			dc.TipologiaCarico,
			dc.NumeroColli,
			dc.DdtNumero,
			dc.DdtData,
		).
		Suffix("RETURNING id, registrato_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var registratoAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&dc.ID,
		&registratoAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDatiCaricoEsistenti
		}
		if dbmetrics.IsConcurrencyConflict(err) {
			return nil, fmt.Errorf("%w: Create: %v", ErrConcorrenza, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	dc.RegistratoAt = registratoAt.Time

	return dc, nil
}

// GetByPrenotazioneID получает данные карико бронирования
// Внутри транзакции строка блокируется через FOR UPDATE
func (r *Repository) GetByPrenotazioneID(ctx context.Context, prenotazioneID int64) (*domain.DatiCarico, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("dati_carico").
		Where(squirrel.Eq{"prenotazione_id": prenotazioneID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPrenotazioneID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	dc, err := scanDatiCarico(row)
	if err == sql.ErrNoRows {
		return nil, ErrDatiCaricoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPrenotazioneID - scan dati carico: %v", ErrScanRow, err)
	}

	return dc, nil
}

// UpdateFields частично обновляет данные карико по prenotazione_id
// Обновляются только переданные (не nil) поля
func (r *Repository) UpdateFields(ctx context.Context, prenotazioneID int64, fields UpdateFields) (*domain.DatiCarico, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("dati_carico").
		Where(squirrel.Eq{"prenotazione_id": prenotazioneID}).
		Suffix("RETURNING " + strings.Join(selectColumns, ", "))

	updateBuilder = fields.apply(updateBuilder)

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateFields - build update query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	dc, err := scanDatiCarico(row)
	if err == sql.ErrNoRows {
		return nil, ErrDatiCaricoNotFound
	}
	if err != nil {
		if dbmetrics.IsConcurrencyConflict(err) {
			return nil, fmt.Errorf("%w: UpdateFields: %v", ErrConcorrenza, err)
		}
		return nil, fmt.Errorf("%w: UpdateFields - scan dati carico: %v", ErrScanRow, err)
	}

	return dc, nil
}

// UpdateFields набор частично обновляемых полей данных карико
// nil означает "оставить текущее значение"
type UpdateFields struct {
	DataCarico      *time.Time
	OraInizioCarico *types.TimeString
	OraFineCarico   *types.TimeString

	IdoneitaTrasporto *bool
	IdoneitaNote      *string

	TargaAutomezzo *string
	TargaRimorchio *string
	NomeAutista    *string

	LottoCaricato *string
	ScadenzaLotto *time.Time

	PesoCaricatoKg *float64
	PesoTaraKg     *float64
	PesoLordoKg    *float64

	TipologiaCarico *domain.TipologiaCarico
	NumeroColli     *int

	DdtNumero *string
	DdtData   *time.Time
}

func (f UpdateFields) apply(b squirrel.UpdateBuilder) squirrel.UpdateBuilder {
	if f.DataCarico != nil {
		b = b.Set("data_carico", *f.DataCarico)
	}
	if f.OraInizioCarico != nil {
		b = b.Set("ora_inizio_carico", *f.OraInizioCarico)
	}
	if f.OraFineCarico != nil {
		b = b.Set("ora_fine_carico", *f.OraFineCarico)
	}
	if f.IdoneitaTrasporto != nil {
		b = b.Set("idoneita_trasporto", *f.IdoneitaTrasporto)
	}
	if f.IdoneitaNote != nil {
		b = b.Set("idoneita_note", *f.IdoneitaNote)
	}
	if f.TargaAutomezzo != nil {
		b = b.Set("targa_automezzo", *f.TargaAutomezzo)
	}
	if f.TargaRimorchio != nil {
		b = b.Set("targa_rimorchio", *f.TargaRimorchio)
	}
	if f.NomeAutista != nil {
		b = b.Set("nome_autista", *f.NomeAutista)
	}
	if f.LottoCaricato != nil {
		b = b.Set("lotto_caricato", *f.LottoCaricato)
	}
	if f.ScadenzaLotto != nil {
		b = b.Set("scadenza_lotto", *f.ScadenzaLotto)
	}
	if f.PesoCaricatoKg != nil {
		b = b.Set("peso_caricato_kg", *f.PesoCaricatoKg)
	}
	if f.PesoTaraKg != nil {
		b = b.Set("peso_tara_kg", *f.PesoTaraKg)
	}
	if f.PesoLordoKg != nil {
		b = b.Set("peso_lordo_kg", *f.PesoLordoKg)
	}
	if f.TipologiaCarico != nil {
		b = b.Set("tipologia_carico", *f.TipologiaCarico)
	}
	if f.NumeroColli != nil {
		b = b.Set("numero_colli", *f.NumeroColli)
	}
	if f.DdtNumero != nil {
		b = b.Set("ddt_numero", *f.DdtNumero)
	}
	if f.DdtData != nil {
		b = b.Set("ddt_data", *f.DdtData)
	}
	return b
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDatiCarico(row rowScanner) (*domain.DatiCarico, error) {
	var dc domain.DatiCarico
	var registratoAt sql.NullTime

	err := row.Scan(
		&dc.ID,
		&dc.PrenotazioneID,
		&dc.DataCarico,
		&dc.OraInizioCarico,
		&dc.OraFineCarico,
		&dc.OperatoreID,
		&dc.OperatoreNome,
		&dc.IdoneitaTrasporto,
		&dc.IdoneitaNote,
		&dc.TargaAutomezzo,
		&dc.TargaRimorchio,
		&dc.NomeAutista,
		&dc.LottoCaricato,
		&dc.ScadenzaLotto,
		&dc.PesoCaricatoKg,
		&dc.PesoTaraKg,
		&dc.PesoLordoKg,
		&dc.TipologiaCarico,
		&dc.NumeroColli,
		&dc.DdtNumero,
		&dc.DdtData,
		&registratoAt,
	)

	if err != nil {
		return nil, err
	}

	dc.RegistratoAt = registratoAt.Time

	return &dc, nil
}
