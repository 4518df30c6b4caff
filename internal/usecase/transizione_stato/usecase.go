package transizione_stato

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	prenotazioneRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/prenotazione"
	storicoRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/storico"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni/models"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/dbmetrics"
)

// UseCase use case смены статуса бронирования
// Использует сериализуемую транзакцию: проверка допустимости перехода,
// смена статуса и запись журнала выполняются как единое целое,
// конкурентные переходы по одному бронированию не теряют обновлений
type UseCase struct {
	prenotazioneRepo PrenotazioneRepository
	storicoRepo      StoricoRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	prenotazioneRepo PrenotazioneRepository,
	storicoRepo StoricoRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		prenotazioneRepo: prenotazioneRepo,
		storicoRepo:      storicoRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case смены статуса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.PrenotazioneDettaglioResponse, error) {
	uc.logger.Info("TransizioneStato: prenotazione=%d, nuovo_stato=%s", req.PrenotazioneID, req.NuovoStato)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransizioneStato: validation failed: %v", err)
		return nil, err
	}

	nuovoStato := domain.Stato(req.NuovoStato)

	var updated *domain.Prenotazione

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		prenotazione, err := uc.prenotazioneRepo.GetByID(ctx, req.PrenotazioneID)
		if err != nil {
			return err
		}

		if !domain.IsStatoValido(prenotazione.Tipologia, nuovoStato) {
			return fmt.Errorf("%w: stato %q non valido per tipologia %s",
				ErrInvalidInput, req.NuovoStato, prenotazione.Tipologia)
		}

		if !domain.IsTransizioneValida(prenotazione.Tipologia, prenotazione.Stato, nuovoStato) {
			return &TransizioneNonValidaError{
				StatoAttuale:         prenotazione.Stato,
				StatoRichiesto:       nuovoStato,
				TransizioniPossibili: prenotazione.TransizioniPossibili(),
			}
		}

		// Переход в caricato выполняется только регистрацией данных карико
		if domain.RichiedeDatiCarico(nuovoStato) {
			return ErrUsaRegistrazioneCarico
		}

		if err := uc.prenotazioneRepo.UpdateStato(ctx, req.PrenotazioneID, nuovoStato); err != nil {
			return err
		}

		statoPrecedente := prenotazione.Stato
		if _, err := uc.storicoRepo.Append(ctx, &domain.StoricoStato{
			PrenotazioneID:  req.PrenotazioneID,
			StatoPrecedente: &statoPrecedente,
			StatoNuovo:      nuovoStato,
			UtenteID:        req.UtenteID,
			Note:            req.Note,
		}); err != nil {
			return err
		}

		prenotazione.Stato = nuovoStato
		updated = prenotazione

		return nil
	})
	if err != nil {
		return nil, uc.translateError(req, err)
	}

	uc.logger.Info("TransizioneStato: prenotazione=%d transitioned to %s", req.PrenotazioneID, nuovoStato)

	return &models.PrenotazioneDettaglioResponse{
		PrenotazioneResponse: *models.FromDomainPrenotazione(updated),
		TransizioniPossibili: models.TransizioniToStrings(updated.TransizioniPossibili()),
	}, nil
}

func (uc *UseCase) translateError(req *Request, err error) error {
	switch {
	case errors.Is(err, prenotazioneRepo.ErrPrenotazioneNotFound):
		uc.logger.Warn("TransizioneStato: prenotazione id=%d not found", req.PrenotazioneID)
		return fmt.Errorf("%w: id=%d", ErrPrenotazioneNotFound, req.PrenotazioneID)

	case errors.Is(err, ErrTransizioneNonValida),
		errors.Is(err, ErrUsaRegistrazioneCarico),
		errors.Is(err, ErrInvalidInput):
		uc.logger.Warn("TransizioneStato: prenotazione id=%d: %v", req.PrenotazioneID, err)
		return err

	case errors.Is(err, prenotazioneRepo.ErrConcorrenza),
		errors.Is(err, storicoRepo.ErrConcorrenza),
		dbmetrics.IsConcurrencyConflict(err):
		uc.logger.Warn("TransizioneStato: concurrent conflict for prenotazione id=%d: %v", req.PrenotazioneID, err)
		return fmt.Errorf("%w: id=%d", ErrConflitto, req.PrenotazioneID)

	default:
		uc.logger.Error("TransizioneStato: transaction failed for prenotazione id=%d: %v", req.PrenotazioneID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func validateRequest(req *Request) error {
	if req.PrenotazioneID <= 0 {
		return fmt.Errorf("%w: prenotazione id non valido", ErrInvalidInput)
	}

	if strings.TrimSpace(req.NuovoStato) == "" {
		return fmt.Errorf("%w: nuovo stato obbligatorio", ErrInvalidInput)
	}

	if domain.RichiedeNoteAnnullamento(domain.Stato(req.NuovoStato)) {
		if req.Note == nil || strings.TrimSpace(*req.Note) == "" {
			return ErrNoteAnnullamentoRichieste
		}
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note troppo lunghe (max %d caratteri)", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}
