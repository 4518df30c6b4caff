package update_prenotazione

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	prenotazioneRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/prenotazione"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/ptr"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/types"
)

type fakePrenotazioneRepo struct {
	prenotazioni map[int64]*domain.Prenotazione
	lastFields   *prenotazioneRepo.UpdateFields
}

func (f *fakePrenotazioneRepo) GetByID(_ context.Context, id int64) (*domain.Prenotazione, error) {
	p, ok := f.prenotazioni[id]
	if !ok {
		return nil, prenotazioneRepo.ErrPrenotazioneNotFound
	}
	copia := *p
	return &copia, nil
}

func (f *fakePrenotazioneRepo) UpdateFields(_ context.Context, id int64, fields prenotazioneRepo.UpdateFields) (*domain.Prenotazione, error) {
	p, ok := f.prenotazioni[id]
	if !ok {
		return nil, prenotazioneRepo.ErrPrenotazioneNotFound
	}
	f.lastFields = &fields

	if fields.DataPianificata != nil {
		p.DataPianificata = *fields.DataPianificata
	}
	if fields.OraInizioPrevista != nil {
		p.OraInizioPrevista = *fields.OraInizioPrevista
	}
	if fields.OraFinePrevista != nil {
		p.OraFinePrevista = *fields.OraFinePrevista
	}
	if fields.DurataPrevistaMinuti != nil {
		p.DurataPrevistaMinuti = *fields.DurataPrevistaMinuti
	}
	if fields.CategoriaProdotto != nil {
		p.CategoriaProdotto = fields.CategoriaProdotto
	}
	if fields.QuantitaPrevista != nil {
		p.QuantitaPrevista = fields.QuantitaPrevista
	}
	if fields.UnitaMisura != nil {
		p.UnitaMisura = fields.UnitaMisura
	}
	if fields.QuantitaKg != nil {
		p.QuantitaKg = fields.QuantitaKg
	}
	if fields.Priorita != nil {
		p.Priorita = *fields.Priorita
	}
	if fields.Note != nil {
		p.Note = fields.Note
	}
	p.UpdatedAt = time.Now()

	copia := *p
	return &copia, nil
}

type fakeDurataCalc struct{}

func (fakeDurataCalc) CalcolaDurataMinuti(_ context.Context, categoria domain.CategoriaProdotto, quantitaKg float64, cambioProdotto bool) (int, error) {
	return domain.CalcolaDurataMinuti(domain.TempiCicloDefault(categoria), quantitaKg, cambioProdotto), nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTimeString(t *testing.T, v string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(v)
	require.NoError(t, err)
	return ts
}

func repoConPrenotazione(t *testing.T) *fakePrenotazioneRepo {
	t.Helper()
	categoria := domain.CategoriaRinfusa
	return &fakePrenotazioneRepo{
		prenotazioni: map[int64]*domain.Prenotazione{
			1: {
				ID:                   1,
				CodicePrenotazione:   "CNS-2026-0001",
				Tipologia:            domain.TipologiaConsegna,
				DataPianificata:      time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
				OraInizioPrevista:    mustTimeString(t, "09:00"),
				OraFinePrevista:      mustTimeString(t, "10:15"),
				DurataPrevistaMinuti: 75,
				CategoriaProdotto:    &categoria,
				QuantitaPrevista:     ptr.Ptr(10.0),
				UnitaMisura:          ptr.Ptr(domain.UnitaTon),
				QuantitaKg:           ptr.Ptr(10000.0),
				Stato:                domain.StatoPianificato,
				Priorita:             domain.PrioritaDefault,
			},
		},
	}
}

func newTestUseCase(repo *fakePrenotazioneRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, fakeDurataCalc{}, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func TestExecute_RicalcoloDurataSuQuantita(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	repo := repoConPrenotazione(t)
	uc := newTestUseCase(repo, now)

	// 20 ton rinfusa: 15 setup + 120 lavorazione = 135 -> 135 min
	resp, err := uc.Execute(context.Background(), &Request{
		PrenotazioneID:   1,
		QuantitaPrevista: ptr.Ptr(20.0),
	})
	require.NoError(t, err)

	assert.Equal(t, 135, resp.DurataPrevistaMinuti)
	assert.Equal(t, "11:15", resp.OraFinePrevista)
	require.NotNil(t, resp.QuantitaKg)
	assert.Equal(t, 20000.0, *resp.QuantitaKg)

	require.NotNil(t, repo.lastFields.DurataPrevistaMinuti)
	assert.Equal(t, 135, *repo.lastFields.DurataPrevistaMinuti)
	require.NotNil(t, repo.lastFields.QuantitaKg)
	assert.Equal(t, 20000.0, *repo.lastFields.QuantitaKg)
}

func TestExecute_CambioOraInizio(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	repo := repoConPrenotazione(t)
	uc := newTestUseCase(repo, now)

	ora := mustTimeString(t, "14:00")
	resp, err := uc.Execute(context.Background(), &Request{
		PrenotazioneID:    1,
		OraInizioPrevista: &ora,
	})
	require.NoError(t, err)

	// 10 ton rinfusa: 15 + 60 = 75 min da 14:00
	assert.Equal(t, "14:00", resp.OraInizioPrevista)
	assert.Equal(t, "15:15", resp.OraFinePrevista)
	assert.Equal(t, 75, resp.DurataPrevistaMinuti)
}

func TestExecute_CampoSenzaEffettoSullaDurata(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	repo := repoConPrenotazione(t)
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		PrenotazioneID: 1,
		Priorita:       ptr.Ptr(8),
		Note:           ptr.Ptr("cliente avvisato del ritardo"),
	})
	require.NoError(t, err)

	assert.Equal(t, 8, resp.Priorita)
	assert.Equal(t, 75, resp.DurataPrevistaMinuti)
	// Длительность не пересчитывалась
	assert.Nil(t, repo.lastFields.DurataPrevistaMinuti)
	assert.Nil(t, repo.lastFields.OraFinePrevista)
}

func TestExecute_StatoFinale(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	repo := repoConPrenotazione(t)
	repo.prenotazioni[1].Stato = domain.StatoAnnullato
	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), &Request{
		PrenotazioneID: 1,
		Priorita:       ptr.Ptr(3),
	})
	assert.ErrorIs(t, err, ErrStatoFinale)
}

func TestExecute_RichiestaVuota(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repoConPrenotazione(t), now)

	_, err := uc.Execute(context.Background(), &Request{PrenotazioneID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DataPassata(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repoConPrenotazione(t), now)

	_, err := uc.Execute(context.Background(), &Request{
		PrenotazioneID:  1,
		DataPianificata: ptr.Ptr(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)),
	})
	assert.ErrorIs(t, err, ErrDataPassata)
}

func TestExecute_PrenotazioneNonTrovata(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repoConPrenotazione(t), now)

	_, err := uc.Execute(context.Background(), &Request{
		PrenotazioneID: 99,
		Priorita:       ptr.Ptr(3),
	})
	assert.ErrorIs(t, err, ErrPrenotazioneNotFound)
}
