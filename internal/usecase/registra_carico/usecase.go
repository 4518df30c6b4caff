package registra_carico

import (
	"context"
	"errors"
	"fmt"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	datiCaricoRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/daticarico"
	prenotazioneRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/prenotazione"
	storicoRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/storico"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni/models"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/dbmetrics"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/ptr"
)

// UseCase use case регистрации данных карико
// Запись данных, переход in_carico -> caricato и запись журнала
// выполняются в одной сериализуемой транзакции: бронирование не может
// оказаться caricato без данных погрузки и наоборот
type UseCase struct {
	prenotazioneRepo PrenotazioneRepository
	datiCaricoRepo   DatiCaricoRepository
	storicoRepo      StoricoRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	prenotazioneRepo PrenotazioneRepository,
	datiCaricoRepo DatiCaricoRepository,
	storicoRepo StoricoRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		prenotazioneRepo: prenotazioneRepo,
		datiCaricoRepo:   datiCaricoRepo,
		storicoRepo:      storicoRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case регистрации погрузки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.PrenotazioneDettaglioResponse, error) {
	uc.logger.Info("RegistraCarico: prenotazione=%d, targa=%s, lotto=%s, peso=%.0f kg",
		req.PrenotazioneID, req.TargaAutomezzo, req.LottoCaricato, req.PesoCaricatoKg)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RegistraCarico: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.Prenotazione
	var createdDatiCarico *domain.DatiCarico

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		prenotazione, err := uc.prenotazioneRepo.GetByID(ctx, req.PrenotazioneID)
		if err != nil {
			return err
		}

		if prenotazione.Tipologia != domain.TipologiaConsegna {
			return ErrSoloConsegna
		}

		if prenotazione.Stato != domain.StatoInCarico {
			return fmt.Errorf("%w: stato=%s", ErrStatoNonInCarico, prenotazione.Stato)
		}

		createdDatiCarico, err = uc.datiCaricoRepo.Create(ctx, uc.buildDatiCarico(req))
		if err != nil {
			return err
		}

		if err := uc.prenotazioneRepo.UpdateStato(ctx, req.PrenotazioneID, domain.StatoCaricato); err != nil {
			return err
		}

		statoPrecedente := prenotazione.Stato
		if _, err := uc.storicoRepo.Append(ctx, &domain.StoricoStato{
			PrenotazioneID:  req.PrenotazioneID,
			StatoPrecedente: &statoPrecedente,
			StatoNuovo:      domain.StatoCaricato,
			UtenteID:        req.UtenteID,
			Note:            ptr.Ptr(domain.NoteDatiCaricoRegistrati),
		}); err != nil {
			return err
		}

		// Номер DDT распространяется на бронирование для поиска по документам
		if req.DdtNumero != nil {
			if err := uc.prenotazioneRepo.UpdateDdtRiferimento(ctx, req.PrenotazioneID, *req.DdtNumero); err != nil {
				return err
			}
			prenotazione.DdtRiferimento = req.DdtNumero
		}

		prenotazione.Stato = domain.StatoCaricato
		updated = prenotazione

		return nil
	})
	if err != nil {
		return nil, uc.translateError(req, err)
	}

	uc.logger.Info("RegistraCarico: dati carico registered: prenotazione=%d, dati_carico=%d",
		req.PrenotazioneID, createdDatiCarico.ID)

	return &models.PrenotazioneDettaglioResponse{
		PrenotazioneResponse: *models.FromDomainPrenotazione(updated),
		DatiCarico:           models.FromDomainDatiCarico(createdDatiCarico),
		TransizioniPossibili: models.TransizioniToStrings(updated.TransizioniPossibili()),
	}, nil
}

func (uc *UseCase) buildDatiCarico(req *Request) *domain.DatiCarico {
	dc := &domain.DatiCarico{
		PrenotazioneID: req.PrenotazioneID,

		DataCarico:      req.DataCarico,
		OraInizioCarico: req.OraInizioCarico,
		OraFineCarico:   req.OraFineCarico,

		OperatoreID:   req.OperatoreID,
		OperatoreNome: req.OperatoreNome,

		IdoneitaTrasporto: req.IdoneitaTrasporto,
		IdoneitaNote:      req.IdoneitaNote,

		TargaAutomezzo: req.TargaAutomezzo,
		TargaRimorchio: req.TargaRimorchio,
		NomeAutista:    req.NomeAutista,

		LottoCaricato: req.LottoCaricato,
		ScadenzaLotto: req.ScadenzaLotto,

		PesoCaricatoKg: req.PesoCaricatoKg,
		PesoTaraKg:     req.PesoTaraKg,
		PesoLordoKg:    req.PesoLordoKg,

		NumeroColli: req.NumeroColli,

		DdtNumero: req.DdtNumero,
		DdtData:   req.DdtData,
	}

	if req.TipologiaCarico != nil {
		carico := domain.TipologiaCarico(*req.TipologiaCarico)
		dc.TipologiaCarico = &carico
	}

	return dc
}

func (uc *UseCase) translateError(req *Request, err error) error {
	switch {
	case errors.Is(err, prenotazioneRepo.ErrPrenotazioneNotFound):
		uc.logger.Warn("RegistraCarico: prenotazione id=%d not found", req.PrenotazioneID)
		return fmt.Errorf("%w: id=%d", ErrPrenotazioneNotFound, req.PrenotazioneID)

	case errors.Is(err, datiCaricoRepo.ErrDatiCaricoEsistenti):
		uc.logger.Warn("RegistraCarico: dati carico already exist for prenotazione id=%d", req.PrenotazioneID)
		return fmt.Errorf("%w: prenotazione id=%d", ErrDatiCaricoEsistenti, req.PrenotazioneID)

	case errors.Is(err, ErrSoloConsegna), errors.Is(err, ErrStatoNonInCarico):
		uc.logger.Warn("RegistraCarico: prenotazione id=%d: %v", req.PrenotazioneID, err)
		return err

	case errors.Is(err, prenotazioneRepo.ErrConcorrenza),
		errors.Is(err, storicoRepo.ErrConcorrenza),
		errors.Is(err, datiCaricoRepo.ErrConcorrenza),
		dbmetrics.IsConcurrencyConflict(err):
		uc.logger.Warn("RegistraCarico: concurrent conflict for prenotazione id=%d: %v", req.PrenotazioneID, err)
		return fmt.Errorf("%w: prenotazione id=%d", ErrConflitto, req.PrenotazioneID)

	default:
		uc.logger.Error("RegistraCarico: transaction failed for prenotazione id=%d: %v", req.PrenotazioneID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
