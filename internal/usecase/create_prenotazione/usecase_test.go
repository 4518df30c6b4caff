package create_prenotazione

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/ptr"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/types"
)

type fakePrenotazioneRepo struct {
	created *domain.Prenotazione
}

func (f *fakePrenotazioneRepo) Create(_ context.Context, p *domain.Prenotazione) (*domain.Prenotazione, error) {
	stored := *p
	stored.ID = 42
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

type fakeStoricoRepo struct {
	entries []*domain.StoricoStato
}

func (f *fakeStoricoRepo) Append(_ context.Context, entry *domain.StoricoStato) (*domain.StoricoStato, error) {
	stored := *entry
	stored.ID = int64(len(f.entries) + 1)
	stored.TimestampCambio = time.Now()
	f.entries = append(f.entries, &stored)
	return &stored, nil
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

func newTestUseCase(prenotazioneRepo *fakePrenotazioneRepo, storicoRepo *fakeStoricoRepo, now time.Time) *UseCase {
	uc := NewUseCase(prenotazioneRepo, storicoRepo, fakeDurataCalc{}, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func TestExecute_ConsegnaConfezionatoSacco(t *testing.T) {
	now := time.Date(2026, 3, 15, 7, 30, 0, 0, time.UTC)
	prenotazioneRepo := &fakePrenotazioneRepo{}
	storicoRepo := &fakeStoricoRepo{}
	uc := newTestUseCase(prenotazioneRepo, storicoRepo, now)

	ora, err := types.NewTimeStringFromString("09:00")
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{
		CodicePrenotazione: "CNS-2026-0001",
		Tipologia:          "consegna",
		DataPianificata:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		OraInizioPrevista:  ora,
		CategoriaProdotto:  ptr.Ptr("confezionato_sacco"),
		QuantitaPrevista:   ptr.Ptr(2.0),
		UnitaMisura:        ptr.Ptr("ton"),
	})
	require.NoError(t, err)

	// 2 ton confezionato_sacco: 15 setup + 60 lavorazione = 75 min
	assert.Equal(t, 75, resp.DurataPrevistaMinuti)
	assert.Equal(t, "09:00", resp.OraInizioPrevista)
	assert.Equal(t, "10:15", resp.OraFinePrevista)
	assert.Equal(t, string(domain.StatoPianificato), resp.Stato)
	assert.Equal(t, ptr.Ptr(2000.0), resp.QuantitaKg)

	require.Len(t, resp.StoricoStati, 1)
	assert.Nil(t, resp.StoricoStati[0].StatoPrecedente)
	assert.Equal(t, string(domain.StatoPianificato), resp.StoricoStati[0].StatoNuovo)
	require.NotNil(t, resp.StoricoStati[0].Note)
	assert.Equal(t, domain.NoteCreazione, *resp.StoricoStati[0].Note)

	assert.ElementsMatch(t, []string{"preso_in_carico", "annullato"}, resp.TransizioniPossibili)
}

func TestExecute_QuantitaKgEsplicita(t *testing.T) {
	now := time.Date(2026, 3, 15, 7, 30, 0, 0, time.UTC)
	uc := newTestUseCase(&fakePrenotazioneRepo{}, &fakeStoricoRepo{}, now)

	ora, err := types.NewTimeStringFromString("08:00")
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{
		CodicePrenotazione: "PRD-2026-0002",
		Tipologia:          "produzione",
		DataPianificata:    time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		OraInizioPrevista:  ora,
		CategoriaProdotto:  ptr.Ptr("rinfusa"),
		QuantitaKg:         ptr.Ptr(10000.0),
		CambioProdotto:     true,
	})
	require.NoError(t, err)

	// 10 ton rinfusa con cambio prodotto: 15 + 60 + 20 = 95 -> 105
	assert.Equal(t, 105, resp.DurataPrevistaMinuti)
	assert.Equal(t, "09:45", resp.OraFinePrevista)
}

func TestExecute_DurataDefaultSenzaCategoria(t *testing.T) {
	now := time.Date(2026, 3, 15, 7, 30, 0, 0, time.UTC)
	uc := newTestUseCase(&fakePrenotazioneRepo{}, &fakeStoricoRepo{}, now)

	ora, err := types.NewTimeStringFromString("14:00")
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{
		CodicePrenotazione: "CNS-2026-0003",
		Tipologia:          "consegna",
		DataPianificata:    time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		OraInizioPrevista:  ora,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DurataDefaultMinuti, resp.DurataPrevistaMinuti)
	assert.Equal(t, "15:00", resp.OraFinePrevista)
	assert.Equal(t, domain.PrioritaDefault, resp.Priorita)
}

func TestExecute_DataPassata(t *testing.T) {
	now := time.Date(2026, 3, 15, 7, 30, 0, 0, time.UTC)
	uc := newTestUseCase(&fakePrenotazioneRepo{}, &fakeStoricoRepo{}, now)

	ora, err := types.NewTimeStringFromString("09:00")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{
		CodicePrenotazione: "CNS-2026-0004",
		Tipologia:          "consegna",
		DataPianificata:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		OraInizioPrevista:  ora,
	})
	assert.ErrorIs(t, err, ErrDataPassata)
}

func TestExecute_Validazione(t *testing.T) {
	now := time.Date(2026, 3, 15, 7, 30, 0, 0, time.UTC)
	uc := newTestUseCase(&fakePrenotazioneRepo{}, &fakeStoricoRepo{}, now)

	ora, err := types.NewTimeStringFromString("09:00")
	require.NoError(t, err)

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "codice mancante",
			req: &Request{
				Tipologia:         "consegna",
				DataPianificata:   now,
				OraInizioPrevista: ora,
			},
		},
		{
			name: "tipologia sconosciuta",
			req: &Request{
				CodicePrenotazione: "X-1",
				Tipologia:          "trasferimento",
				DataPianificata:    now,
				OraInizioPrevista:  ora,
			},
		},
		{
			name: "priorita fuori intervallo",
			req: &Request{
				CodicePrenotazione: "X-2",
				Tipologia:          "produzione",
				DataPianificata:    now,
				OraInizioPrevista:  ora,
				Priorita:           ptr.Ptr(11),
			},
		},
		{
			name: "ora inizio mancante",
			req: &Request{
				CodicePrenotazione: "X-3",
				Tipologia:          "produzione",
				DataPianificata:    now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_FineOltreMezzanotte(t *testing.T) {
	now := time.Date(2026, 3, 15, 7, 30, 0, 0, time.UTC)
	uc := newTestUseCase(&fakePrenotazioneRepo{}, &fakeStoricoRepo{}, now)

	ora, err := types.NewTimeStringFromString("23:30")
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{
		CodicePrenotazione: "CNS-2026-0005",
		Tipologia:          "consegna",
		DataPianificata:    time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		OraInizioPrevista:  ora,
	})
	require.NoError(t, err)

	// 60 минут от 23:30 переходят через полночь
	assert.Equal(t, "00:30", resp.OraFinePrevista)
}
