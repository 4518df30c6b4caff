package update_prenotazione

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	prenotazioneRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/prenotazione"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni/models"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/ptr"
)

// UseCase use case частичного изменения бронирования
// Длительность слота и время окончания пересчитываются, когда меняется
// что-либо из влияющих на расчет полей
type UseCase struct {
	prenotazioneRepo PrenotazioneRepository
	durataCalc       DurataCalculator
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	prenotazioneRepo PrenotazioneRepository,
	durataCalc DurataCalculator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		prenotazioneRepo: prenotazioneRepo,
		durataCalc:       durataCalc,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case изменения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.PrenotazioneDettaglioResponse, error) {
	uc.logger.Info("UpdatePrenotazione: prenotazione=%d", req.PrenotazioneID)

	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("UpdatePrenotazione: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.Prenotazione

	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		prenotazione, err := uc.prenotazioneRepo.GetByID(ctx, req.PrenotazioneID)
		if err != nil {
			return err
		}

		if !prenotazione.CanBeUpdated() {
			return fmt.Errorf("%w: stato=%s", ErrStatoFinale, prenotazione.Stato)
		}

		fields, err := uc.buildUpdateFields(ctx, prenotazione, req)
		if err != nil {
			return err
		}

		updated, err = uc.prenotazioneRepo.UpdateFields(ctx, req.PrenotazioneID, fields)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, prenotazioneRepo.ErrPrenotazioneNotFound):
			uc.logger.Warn("UpdatePrenotazione: prenotazione id=%d not found", req.PrenotazioneID)
			return nil, fmt.Errorf("%w: id=%d", ErrPrenotazioneNotFound, req.PrenotazioneID)
		case errors.Is(err, ErrStatoFinale), errors.Is(err, ErrInvalidInput):
			uc.logger.Warn("UpdatePrenotazione: prenotazione id=%d: %v", req.PrenotazioneID, err)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.logger.Error("UpdatePrenotazione: prenotazione id=%d: %v", req.PrenotazioneID, err)
			return nil, err
		default:
			uc.logger.Error("UpdatePrenotazione: transaction failed for prenotazione id=%d: %v", req.PrenotazioneID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("UpdatePrenotazione: prenotazione=%d updated, durata=%d min, fine=%s",
		updated.ID, updated.DurataPrevistaMinuti, updated.OraFinePrevista)

	return &models.PrenotazioneDettaglioResponse{
		PrenotazioneResponse: *models.FromDomainPrenotazione(updated),
		TransizioniPossibili: models.TransizioniToStrings(updated.TransizioniPossibili()),
	}, nil
}

func (uc *UseCase) validateRequest(req *Request) error {
	if req.PrenotazioneID <= 0 {
		return fmt.Errorf("%w: prenotazione id non valido", ErrInvalidInput)
	}

	if req.IsEmpty() {
		return fmt.Errorf("%w: nessun campo da aggiornare", ErrInvalidInput)
	}

	if req.OraInizioPrevista != nil {
		if err := req.OraInizioPrevista.Validate(); err != nil {
			return fmt.Errorf("%w: ora_inizio_prevista non valida: %v", ErrInvalidInput, err)
		}
	}

	if req.Priorita != nil && (*req.Priorita < domain.PrioritaMin || *req.Priorita > domain.PrioritaMax) {
		return fmt.Errorf("%w: priorita fuori intervallo [%d, %d]", ErrInvalidInput, domain.PrioritaMin, domain.PrioritaMax)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note troppo lunghe (max %d caratteri)", ErrInvalidInput, domain.MaxNoteLength)
	}

	if req.QuantitaPrevista != nil && *req.QuantitaPrevista < 0 {
		return fmt.Errorf("%w: quantita_prevista negativa", ErrInvalidInput)
	}
	if req.QuantitaKg != nil && *req.QuantitaKg < 0 {
		return fmt.Errorf("%w: quantita_kg negativa", ErrInvalidInput)
	}

	if req.DataPianificata != nil {
		now := uc.timeProvider.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		data := *req.DataPianificata
		dataOnly := time.Date(data.Year(), data.Month(), data.Day(), 0, 0, 0, 0, now.Location())

		if dataOnly.Before(today) {
			return fmt.Errorf("%w: %s", ErrDataPassata, data.Format(domain.DateFormat))
		}
	}

	return nil
}

// buildUpdateFields собирает набор изменений и пересчитывает длительность,
// когда меняется категория, количество, время начала или признак смены продукта
func (uc *UseCase) buildUpdateFields(ctx context.Context, current *domain.Prenotazione, req *Request) (prenotazioneRepo.UpdateFields, error) {
	fields := prenotazioneRepo.UpdateFields{
		ClienteID:       req.ClienteID,
		TrasportatoreID: req.TrasportatoreID,

		DataPianificata:   req.DataPianificata,
		OraInizioPrevista: req.OraInizioPrevista,

		ProdottoCodice:        req.ProdottoCodice,
		ProdottoDescrizione:   req.ProdottoDescrizione,
		SpecificaW:            req.SpecificaW,
		SpecificaWTolleranza:  req.SpecificaWTolleranza,
		SpecificaPL:           req.SpecificaPL,
		SpecificaPLTolleranza: req.SpecificaPLTolleranza,
		QuantitaPrevista:      req.QuantitaPrevista,
		QuantitaKg:            req.QuantitaKg,

		LottoPrevisto: req.LottoPrevisto,
		LottoScadenza: req.LottoScadenza,

		SilosOrigine:    req.SilosOrigine,
		LineaProduzione: req.LineaProduzione,

		OrdineRiferimento: req.OrdineRiferimento,

		Priorita: req.Priorita,
		Note:     req.Note,
	}

	if req.CategoriaProdotto != nil {
		categoria := domain.CategoriaProdotto(*req.CategoriaProdotto)
		fields.CategoriaProdotto = &categoria
	}
	if req.UnitaMisura != nil {
		unita := domain.UnitaMisura(*req.UnitaMisura)
		fields.UnitaMisura = &unita
	}
	if req.OrigineMateriale != nil {
		origine := domain.OrigineMateriale(*req.OrigineMateriale)
		fields.OrigineMateriale = &origine
	}
	if req.TipologiaCarico != nil {
		carico := domain.TipologiaCarico(*req.TipologiaCarico)
		fields.TipologiaCarico = &carico
	}

	// Итоговое количество в кг: явное значение, пересчет из измененных
	// количества и единицы, либо текущее сохраненное значение
	quantitaKg := current.QuantitaKg
	if req.QuantitaKg != nil {
		quantitaKg = req.QuantitaKg
	} else if req.QuantitaPrevista != nil || req.UnitaMisura != nil {
		quantita := current.QuantitaPrevista
		if req.QuantitaPrevista != nil {
			quantita = req.QuantitaPrevista
		}

		unita := current.UnitaMisura
		if fields.UnitaMisura != nil {
			unita = fields.UnitaMisura
		}

		if quantita != nil && unita != nil {
			quantitaKg = ptr.Ptr(domain.ConvertiInKg(*quantita, *unita))
			fields.QuantitaKg = quantitaKg
		}
	}

	influenzaDurata := req.CategoriaProdotto != nil || req.QuantitaPrevista != nil ||
		req.UnitaMisura != nil || req.QuantitaKg != nil ||
		req.OraInizioPrevista != nil || req.CambioProdotto != nil

	if !influenzaDurata {
		return fields, nil
	}

	categoria := current.CategoriaProdotto
	if fields.CategoriaProdotto != nil {
		categoria = fields.CategoriaProdotto
	}

	durata := domain.DurataDefaultMinuti
	if categoria != nil && quantitaKg != nil {
		cambio := false
		if req.CambioProdotto != nil {
			cambio = *req.CambioProdotto
		}

		calcolata, err := uc.durataCalc.CalcolaDurataMinuti(ctx, *categoria, *quantitaKg, cambio)
		if err != nil {
			return fields, fmt.Errorf("%w: failed to calculate durata: %v", ErrInternal, err)
		}
		durata = calcolata
	}

	oraInizio := current.OraInizioPrevista
	if req.OraInizioPrevista != nil {
		oraInizio = *req.OraInizioPrevista
	}

	oraFine, err := domain.CalcolaOraFine(oraInizio, durata)
	if err != nil {
		return fields, fmt.Errorf("%w: ora_inizio_prevista non valida: %v", ErrInvalidInput, err)
	}

	fields.DurataPrevistaMinuti = &durata
	fields.OraFinePrevista = &oraFine

	return fields, nil
}
