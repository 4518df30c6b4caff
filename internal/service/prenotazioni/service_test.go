package prenotazioni

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	datiCaricoRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/daticarico"
	prenotazioneRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/prenotazione"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni/models"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/ptr"
)

type fakePrenotazioneRepo struct {
	prenotazioni map[int64]*domain.Prenotazione
	listResult   []*domain.Prenotazione
	listTotal    int
	lastFilter   *domain.PrenotazioniFilter
	deleted      []int64
}

func (f *fakePrenotazioneRepo) GetByID(_ context.Context, id int64) (*domain.Prenotazione, error) {
	p, ok := f.prenotazioni[id]
	if !ok {
		return nil, prenotazioneRepo.ErrPrenotazioneNotFound
	}
	copia := *p
	return &copia, nil
}

func (f *fakePrenotazioneRepo) List(_ context.Context, filter domain.PrenotazioniFilter) ([]*domain.Prenotazione, int, error) {
	f.lastFilter = &filter
	return f.listResult, f.listTotal, nil
}

func (f *fakePrenotazioneRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.prenotazioni[id]; !ok {
		return prenotazioneRepo.ErrPrenotazioneNotFound
	}
	delete(f.prenotazioni, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeStoricoRepo struct {
	storico map[int64][]*domain.StoricoStato
}

func (f *fakeStoricoRepo) GetByPrenotazioneID(_ context.Context, prenotazioneID int64) ([]*domain.StoricoStato, error) {
	return f.storico[prenotazioneID], nil
}

type fakeDatiCaricoRepo struct {
	records map[int64]*domain.DatiCarico
}

func (f *fakeDatiCaricoRepo) GetByPrenotazioneID(_ context.Context, prenotazioneID int64) (*domain.DatiCarico, error) {
	dc, ok := f.records[prenotazioneID]
	if !ok {
		return nil, datiCaricoRepo.ErrDatiCaricoNotFound
	}
	copia := *dc
	return &copia, nil
}

type fakeTxManager struct {
	before func()
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.before != nil {
		m.before()
	}
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func prenotazioneConsegna(id int64, stato domain.Stato) *domain.Prenotazione {
	return &domain.Prenotazione{
		ID:                 id,
		CodicePrenotazione: "CNS-2026-0001",
		Tipologia:          domain.TipologiaConsegna,
		DataPianificata:    time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		Stato:              stato,
		Priorita:           domain.PrioritaDefault,
	}
}

func newTestService(repo *fakePrenotazioneRepo, storico *fakeStoricoRepo, carico *fakeDatiCaricoRepo) *Service {
	if storico == nil {
		storico = &fakeStoricoRepo{}
	}
	if carico == nil {
		carico = &fakeDatiCaricoRepo{}
	}
	return NewService(repo, storico, carico, &fakeTxManager{}, nopLogger{})
}

func TestGetByID_ConStoricoEDatiCarico(t *testing.T) {
	repo := &fakePrenotazioneRepo{
		prenotazioni: map[int64]*domain.Prenotazione{
			1: prenotazioneConsegna(1, domain.StatoCaricato),
		},
	}
	pianificato := domain.StatoPianificato
	storico := &fakeStoricoRepo{
		storico: map[int64][]*domain.StoricoStato{
			1: {
				{ID: 2, PrenotazioneID: 1, StatoPrecedente: &pianificato, StatoNuovo: domain.StatoPresoInCarico},
				{ID: 1, PrenotazioneID: 1, StatoNuovo: domain.StatoPianificato, Note: ptr.Ptr(domain.NoteCreazione)},
			},
		},
	}
	carico := &fakeDatiCaricoRepo{
		records: map[int64]*domain.DatiCarico{
			1: {
				ID:                7,
				PrenotazioneID:    1,
				DataCarico:        time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
				IdoneitaTrasporto: true,
				TargaAutomezzo:    "AB123CD",
				LottoCaricato:     "L-2026-077",
				PesoCaricatoKg:    2000,
			},
		},
	}

	resp, err := newTestService(repo, storico, carico).GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "CNS-2026-0001", resp.CodicePrenotazione)
	assert.Len(t, resp.StoricoStati, 2)
	require.NotNil(t, resp.DatiCarico)
	assert.Equal(t, "AB123CD", resp.DatiCarico.TargaAutomezzo)
	assert.ElementsMatch(t, []string{"partito", "annullato"}, resp.TransizioniPossibili)
}

func TestGetByID_SenzaDatiCarico(t *testing.T) {
	repo := &fakePrenotazioneRepo{
		prenotazioni: map[int64]*domain.Prenotazione{
			1: prenotazioneConsegna(1, domain.StatoPianificato),
		},
	}

	resp, err := newTestService(repo, nil, nil).GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Nil(t, resp.DatiCarico)
	assert.ElementsMatch(t, []string{"preso_in_carico", "annullato"}, resp.TransizioniPossibili)
}

func TestGetByID_NonTrovata(t *testing.T) {
	svc := newTestService(&fakePrenotazioneRepo{}, nil, nil)

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPrenotazioneNotFound)
}

func TestList_NormalizzaPaginazione(t *testing.T) {
	repo := &fakePrenotazioneRepo{
		listResult: []*domain.Prenotazione{prenotazioneConsegna(1, domain.StatoPianificato)},
		listTotal:  41,
	}
	svc := newTestService(repo, nil, nil)

	resp, err := svc.List(context.Background(), &models.ListPrenotazioniRequest{Page: 0, Limit: 500})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, 41, resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Len(t, resp.Prenotazioni, 1)

	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, 1, repo.lastFilter.Page)
	assert.Equal(t, 20, repo.lastFilter.Limit)
}

func TestList_TipologiaNonValida(t *testing.T) {
	svc := newTestService(&fakePrenotazioneRepo{}, nil, nil)

	_, err := svc.List(context.Background(), &models.ListPrenotazioniRequest{
		Tipologia: ptr.Ptr("ritiro"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_SoloPianificato(t *testing.T) {
	repo := &fakePrenotazioneRepo{
		prenotazioni: map[int64]*domain.Prenotazione{
			1: prenotazioneConsegna(1, domain.StatoPianificato),
			2: prenotazioneConsegna(2, domain.StatoPresoInCarico),
		},
	}
	svc := newTestService(repo, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deleted)

	err := svc.Delete(context.Background(), 2)
	assert.ErrorIs(t, err, ErrSoloPianificatoEliminabile)
	assert.Contains(t, repo.prenotazioni, int64(2))
}

func TestDelete_TransizioneConcorrente(t *testing.T) {
	repo := &fakePrenotazioneRepo{
		prenotazioni: map[int64]*domain.Prenotazione{
			1: prenotazioneConsegna(1, domain.StatoPianificato),
		},
	}
	tx := &fakeTxManager{}
	svc := NewService(repo, &fakeStoricoRepo{}, &fakeDatiCaricoRepo{}, tx, nopLogger{})

	// Конкурентный переход фиксируется прежде, чем delete получает блокировку:
	// проверка статуса внутри транзакции должна увидеть новое значение
	tx.before = func() {
		repo.prenotazioni[1].Stato = domain.StatoPresoInCarico
	}

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSoloPianificatoEliminabile)
	assert.Empty(t, repo.deleted)
	assert.Contains(t, repo.prenotazioni, int64(1))
}

func TestDelete_NonTrovata(t *testing.T) {
	svc := newTestService(&fakePrenotazioneRepo{}, nil, nil)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPrenotazioneNotFound)
}
