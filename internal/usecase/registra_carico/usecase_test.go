package registra_carico

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	datiCaricoRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/daticarico"
	prenotazioneRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/prenotazione"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/ptr"
)

type fakePrenotazioneRepo struct {
	prenotazioni map[int64]*domain.Prenotazione
	ddt          map[int64]string
}

func (f *fakePrenotazioneRepo) GetByID(_ context.Context, id int64) (*domain.Prenotazione, error) {
	p, ok := f.prenotazioni[id]
	if !ok {
		return nil, prenotazioneRepo.ErrPrenotazioneNotFound
	}
	copia := *p
	return &copia, nil
}

func (f *fakePrenotazioneRepo) UpdateStato(_ context.Context, id int64, stato domain.Stato) error {
	p, ok := f.prenotazioni[id]
	if !ok {
		return prenotazioneRepo.ErrPrenotazioneNotFound
	}
	p.Stato = stato
	return nil
}

func (f *fakePrenotazioneRepo) UpdateDdtRiferimento(_ context.Context, id int64, ddt string) error {
	if _, ok := f.prenotazioni[id]; !ok {
		return prenotazioneRepo.ErrPrenotazioneNotFound
	}
	if f.ddt == nil {
		f.ddt = map[int64]string{}
	}
	f.ddt[id] = ddt
	return nil
}

type fakeDatiCaricoRepo struct {
	records   map[int64]*domain.DatiCarico
	createErr error
}

func (f *fakeDatiCaricoRepo) Create(_ context.Context, dc *domain.DatiCarico) (*domain.DatiCarico, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.records == nil {
		f.records = map[int64]*domain.DatiCarico{}
	}
	if _, esiste := f.records[dc.PrenotazioneID]; esiste {
		return nil, datiCaricoRepo.ErrDatiCaricoEsistenti
	}

	stored := *dc
	stored.ID = int64(len(f.records) + 1)
	stored.RegistratoAt = time.Now()
	f.records[dc.PrenotazioneID] = &stored
	return &stored, nil
}

type fakeStoricoRepo struct {
	entries []*domain.StoricoStato
}

func (f *fakeStoricoRepo) Append(_ context.Context, entry *domain.StoricoStato) (*domain.StoricoStato, error) {
	stored := *entry
	stored.ID = int64(len(f.entries) + 1)
	f.entries = append(f.entries, &stored)
	return &stored, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func consegnaInCarico() *fakePrenotazioneRepo {
	return &fakePrenotazioneRepo{
		prenotazioni: map[int64]*domain.Prenotazione{
			1: {
				ID:                 1,
				CodicePrenotazione: "CNS-2026-0001",
				Tipologia:          domain.TipologiaConsegna,
				Stato:              domain.StatoInCarico,
			},
		},
	}
}

func validRequest() *Request {
	return &Request{
		PrenotazioneID:    1,
		DataCarico:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		IdoneitaTrasporto: true,
		TargaAutomezzo:    "AB123CD",
		LottoCaricato:     "L-2026-077",
		PesoCaricatoKg:    2000,
	}
}

func TestExecute_RegistrazioneCompleta(t *testing.T) {
	repo := consegnaInCarico()
	carico := &fakeDatiCaricoRepo{}
	storico := &fakeStoricoRepo{}
	uc := NewUseCase(repo, carico, storico, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.DdtNumero = ptr.Ptr("DDT-2026-0456")
	req.UtenteID = ptr.Ptr(int64(3))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatoCaricato), resp.Stato)
	require.NotNil(t, resp.DatiCarico)
	assert.Equal(t, "AB123CD", resp.DatiCarico.TargaAutomezzo)
	assert.Equal(t, 2000.0, resp.DatiCarico.PesoCaricatoKg)
	assert.ElementsMatch(t, []string{"partito", "annullato"}, resp.TransizioniPossibili)

	// Статус обновлен вместе с записью журнала
	assert.Equal(t, domain.StatoCaricato, repo.prenotazioni[1].Stato)
	require.Len(t, storico.entries, 1)
	require.NotNil(t, storico.entries[0].StatoPrecedente)
	assert.Equal(t, domain.StatoInCarico, *storico.entries[0].StatoPrecedente)
	assert.Equal(t, domain.StatoCaricato, storico.entries[0].StatoNuovo)
	assert.Equal(t, ptr.Ptr(domain.NoteDatiCaricoRegistrati), storico.entries[0].Note)

	// Номер DDT распространен на бронирование
	assert.Equal(t, "DDT-2026-0456", repo.ddt[1])
	require.NotNil(t, resp.DdtRiferimento)
	assert.Equal(t, "DDT-2026-0456", *resp.DdtRiferimento)
}

func TestExecute_IdoneitaFalsaSenzaNote(t *testing.T) {
	uc := NewUseCase(consegnaInCarico(), &fakeDatiCaricoRepo{}, &fakeStoricoRepo{}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.IdoneitaTrasporto = false

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrIdoneitaNoteRichieste)
}

func TestExecute_IdoneitaFalsaConNote(t *testing.T) {
	repo := consegnaInCarico()
	uc := NewUseCase(repo, &fakeDatiCaricoRepo{}, &fakeStoricoRepo{}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.IdoneitaTrasporto = false
	req.IdoneitaNote = ptr.Ptr("cassone sporco, richiesta pulizia")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.DatiCarico.IdoneitaTrasporto)
	assert.Equal(t, string(domain.StatoCaricato), resp.Stato)
}

func TestExecute_SoloConsegna(t *testing.T) {
	repo := &fakePrenotazioneRepo{
		prenotazioni: map[int64]*domain.Prenotazione{
			1: {
				ID:        1,
				Tipologia: domain.TipologiaProduzione,
				Stato:     domain.StatoInProduzione,
			},
		},
	}
	uc := NewUseCase(repo, &fakeDatiCaricoRepo{}, &fakeStoricoRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSoloConsegna)
}

func TestExecute_StatoNonInCarico(t *testing.T) {
	repo := consegnaInCarico()
	repo.prenotazioni[1].Stato = domain.StatoProntoCarico
	uc := NewUseCase(repo, &fakeDatiCaricoRepo{}, &fakeStoricoRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStatoNonInCarico)
}

func TestExecute_RegistrazioneDoppia(t *testing.T) {
	repo := consegnaInCarico()
	carico := &fakeDatiCaricoRepo{}
	uc := NewUseCase(repo, carico, &fakeStoricoRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Повторная регистрация после возврата в in_carico невозможна
	repo.prenotazioni[1].Stato = domain.StatoInCarico
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDatiCaricoEsistenti)
}

func TestExecute_CampiObbligatori(t *testing.T) {
	uc := NewUseCase(consegnaInCarico(), &fakeDatiCaricoRepo{}, &fakeStoricoRepo{}, fakeTxManager{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"targa mancante", func(r *Request) { r.TargaAutomezzo = "  " }},
		{"lotto mancante", func(r *Request) { r.LottoCaricato = "" }},
		{"peso non positivo", func(r *Request) { r.PesoCaricatoKg = 0 }},
		{"data mancante", func(r *Request) { r.DataCarico = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ConflittoConcorrenza(t *testing.T) {
	carico := &fakeDatiCaricoRepo{
		createErr: fmt.Errorf("%w: Create: pq: could not serialize access due to concurrent update",
			datiCaricoRepo.ErrConcorrenza),
	}
	uc := NewUseCase(consegnaInCarico(), carico, &fakeStoricoRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflitto)
	assert.NotErrorIs(t, err, ErrInternal)
}
