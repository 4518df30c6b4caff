package transizione_stato

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	prenotazioneRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/prenotazione"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/ptr"
)

type fakePrenotazioneRepo struct {
	prenotazioni   map[int64]*domain.Prenotazione
	updates        []domain.Stato
	updateStatoErr error
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
	if f.updateStatoErr != nil {
		return f.updateStatoErr
	}
	p, ok := f.prenotazioni[id]
	if !ok {
		return prenotazioneRepo.ErrPrenotazioneNotFound
	}
	p.Stato = stato
	f.updates = append(f.updates, stato)
	return nil
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

func consegnaInStato(stato domain.Stato) *fakePrenotazioneRepo {
	return &fakePrenotazioneRepo{
		prenotazioni: map[int64]*domain.Prenotazione{
			1: {
				ID:                 1,
				CodicePrenotazione: "CNS-2026-0001",
				Tipologia:          domain.TipologiaConsegna,
				Stato:              stato,
			},
		},
	}
}

func TestExecute_TransizioneValida(t *testing.T) {
	repo := consegnaInStato(domain.StatoPianificato)
	storico := &fakeStoricoRepo{}
	uc := NewUseCase(repo, storico, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		PrenotazioneID: 1,
		NuovoStato:     "preso_in_carico",
		UtenteID:       ptr.Ptr(int64(7)),
	})
	require.NoError(t, err)

	assert.Equal(t, "preso_in_carico", resp.Stato)
	assert.ElementsMatch(t, []string{"in_preparazione", "annullato"}, resp.TransizioniPossibili)

	require.Len(t, storico.entries, 1)
	require.NotNil(t, storico.entries[0].StatoPrecedente)
	assert.Equal(t, domain.StatoPianificato, *storico.entries[0].StatoPrecedente)
	assert.Equal(t, domain.StatoPresoInCarico, storico.entries[0].StatoNuovo)
	assert.Equal(t, ptr.Ptr(int64(7)), storico.entries[0].UtenteID)
}

func TestExecute_SaltoDiStatoRespinto(t *testing.T) {
	repo := consegnaInStato(domain.StatoPianificato)
	storico := &fakeStoricoRepo{}
	uc := NewUseCase(repo, storico, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		PrenotazioneID: 1,
		NuovoStato:     "caricato",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransizioneNonValida)

	var transizioneErr *TransizioneNonValidaError
	require.True(t, errors.As(err, &transizioneErr))
	assert.Equal(t, domain.StatoPianificato, transizioneErr.StatoAttuale)
	assert.Equal(t, domain.StatoCaricato, transizioneErr.StatoRichiesto)
	assert.ElementsMatch(t,
		[]domain.Stato{domain.StatoPresoInCarico, domain.StatoAnnullato},
		transizioneErr.TransizioniPossibili)

	// Ни статус, ни журнал не изменились
	assert.Empty(t, repo.updates)
	assert.Empty(t, storico.entries)
}

func TestExecute_CaricatoDirettoRespinto(t *testing.T) {
	repo := consegnaInStato(domain.StatoInCarico)
	uc := NewUseCase(repo, &fakeStoricoRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		PrenotazioneID: 1,
		NuovoStato:     "caricato",
	})
	assert.ErrorIs(t, err, ErrUsaRegistrazioneCarico)
	assert.Empty(t, repo.updates)
}

func TestExecute_AnnullamentoSenzaNote(t *testing.T) {
	repo := consegnaInStato(domain.StatoPianificato)
	uc := NewUseCase(repo, &fakeStoricoRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		PrenotazioneID: 1,
		NuovoStato:     "annullato",
	})
	assert.ErrorIs(t, err, ErrNoteAnnullamentoRichieste)

	_, err = uc.Execute(context.Background(), &Request{
		PrenotazioneID: 1,
		NuovoStato:     "annullato",
		Note:           ptr.Ptr("   "),
	})
	assert.ErrorIs(t, err, ErrNoteAnnullamentoRichieste)
}

func TestExecute_AnnullamentoConNote(t *testing.T) {
	repo := consegnaInStato(domain.StatoProntoCarico)
	storico := &fakeStoricoRepo{}
	uc := NewUseCase(repo, storico, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		PrenotazioneID: 1,
		NuovoStato:     "annullato",
		Note:           ptr.Ptr("cliente ha disdetto"),
	})
	require.NoError(t, err)

	assert.Equal(t, "annullato", resp.Stato)
	assert.Empty(t, resp.TransizioniPossibili)
	require.Len(t, storico.entries, 1)
	assert.Equal(t, ptr.Ptr("cliente ha disdetto"), storico.entries[0].Note)
}

func TestExecute_StatoDiAltraTipologia(t *testing.T) {
	repo := consegnaInStato(domain.StatoPianificato)
	uc := NewUseCase(repo, &fakeStoricoRepo{}, fakeTxManager{}, nopLogger{})

	// in_produzione принадлежит графу produzione, не consegna
	_, err := uc.Execute(context.Background(), &Request{
		PrenotazioneID: 1,
		NuovoStato:     "in_produzione",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PrenotazioneNonTrovata(t *testing.T) {
	repo := &fakePrenotazioneRepo{prenotazioni: map[int64]*domain.Prenotazione{}}
	uc := NewUseCase(repo, &fakeStoricoRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		PrenotazioneID: 99,
		NuovoStato:     "preso_in_carico",
	})
	assert.ErrorIs(t, err, ErrPrenotazioneNotFound)
}

func TestExecute_ConflittoConcorrenza(t *testing.T) {
	repo := consegnaInStato(domain.StatoPianificato)
	repo.updateStatoErr = fmt.Errorf("%w: UpdateStato: pq: could not serialize access due to concurrent update",
		prenotazioneRepo.ErrConcorrenza)
	uc := NewUseCase(repo, &fakeStoricoRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		PrenotazioneID: 1,
		NuovoStato:     "preso_in_carico",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflitto)
	assert.NotErrorIs(t, err, ErrInternal)
}

type commitConflictTxManager struct{}

func (commitConflictTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return fmt.Errorf("txmanager: commit transaction: %w", &pq.Error{Code: "40001"})
}

func TestExecute_ConflittoAlCommit(t *testing.T) {
	repo := consegnaInStato(domain.StatoPianificato)
	uc := NewUseCase(repo, &fakeStoricoRepo{}, commitConflictTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		PrenotazioneID: 1,
		NuovoStato:     "preso_in_carico",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflitto)
}
