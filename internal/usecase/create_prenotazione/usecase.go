package create_prenotazione

import (
	"context"
	"fmt"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni/models"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	prenotazioneRepo PrenotazioneRepository
	storicoRepo      StoricoRepository
	durataCalc       DurataCalculator
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	prenotazioneRepo PrenotazioneRepository,
	storicoRepo StoricoRepository,
	durataCalc DurataCalculator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		prenotazioneRepo: prenotazioneRepo,
		storicoRepo:      storicoRepo,
		durataCalc:       durataCalc,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Бронирование и первая запись журнала создаются атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.PrenotazioneDettaglioResponse, error) {
	uc.logger.Info("CreatePrenotazione: codice=%s, tipologia=%s, data=%s, ora=%s",
		req.CodicePrenotazione, req.Tipologia, req.DataPianificata.Format(domain.DateFormat), req.OraInizioPrevista)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreatePrenotazione: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата планирования не может быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDataNonPassata(req.DataPianificata, now); err != nil {
		uc.logger.Warn("CreatePrenotazione: %v", err)
		return nil, err
	}

	// 3. Собираем domain сущность
	prenotazione, err := uc.buildPrenotazione(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Атомарно создаем бронирование и первую запись журнала
	var created *domain.Prenotazione
	var storicoEntry *domain.StoricoStato

	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		var txErr error

		created, txErr = uc.prenotazioneRepo.Create(ctx, prenotazione)
		if txErr != nil {
			return txErr
		}

		storicoEntry, txErr = uc.storicoRepo.Append(ctx, &domain.StoricoStato{
			PrenotazioneID: created.ID,
			StatoNuovo:     created.Stato,
			UtenteID:       req.UtenteID,
			Note:           ptr.Ptr(domain.NoteCreazione),
		})

		return txErr
	})
	if err != nil {
		uc.logger.Error("CreatePrenotazione: transaction failed for codice=%s: %v", req.CodicePrenotazione, err)
		return nil, fmt.Errorf("%w: failed to create prenotazione: %v", ErrInternal, err)
	}

	uc.logger.Info("CreatePrenotazione: prenotazione created: id=%d, codice=%s, durata=%d min, fine=%s",
		created.ID, created.CodicePrenotazione, created.DurataPrevistaMinuti, created.OraFinePrevista)

	return &models.PrenotazioneDettaglioResponse{
		PrenotazioneResponse: *models.FromDomainPrenotazione(created),
		StoricoStati:         models.FromDomainStorico([]*domain.StoricoStato{storicoEntry}),
		TransizioniPossibili: models.TransizioniToStrings(created.TransizioniPossibili()),
	}, nil
}

// buildPrenotazione собирает сущность: конвертирует количество в кг,
// рассчитывает длительность слота и время окончания
func (uc *UseCase) buildPrenotazione(ctx context.Context, req *Request) (*domain.Prenotazione, error) {
	p := &domain.Prenotazione{
		CodicePrenotazione: req.CodicePrenotazione,
		Tipologia:          domain.Tipologia(req.Tipologia),

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

		PrenotazioneConsegnaCollegata:   req.PrenotazioneConsegnaCollegata,
		PrenotazioneProduzioneCollegata: req.PrenotazioneProduzioneCollegata,

		OrdineRiferimento: req.OrdineRiferimento,

		Stato:     domain.StatoIniziale(),
		Priorita:  domain.PrioritaDefault,
		Note:      req.Note,
		CreatedBy: req.UtenteID,
	}

	if req.Priorita != nil {
		p.Priorita = *req.Priorita
	}
	if req.CategoriaProdotto != nil {
		categoria := domain.CategoriaProdotto(*req.CategoriaProdotto)
		p.CategoriaProdotto = &categoria
	}
	if req.UnitaMisura != nil {
		unita := domain.UnitaMisura(*req.UnitaMisura)
		p.UnitaMisura = &unita
	}
	if req.OrigineMateriale != nil {
		origine := domain.OrigineMateriale(*req.OrigineMateriale)
		p.OrigineMateriale = &origine
	}
	if req.TipologiaCarico != nil {
		carico := domain.TipologiaCarico(*req.TipologiaCarico)
		p.TipologiaCarico = &carico
	}

	// Количество в кг: явное значение имеет приоритет над пересчетом
	if p.QuantitaKg == nil && p.QuantitaPrevista != nil && p.UnitaMisura != nil {
		p.QuantitaKg = ptr.Ptr(domain.ConvertiInKg(*p.QuantitaPrevista, *p.UnitaMisura))
	}

	// Длительность: расчет по tempi ciclo, либо значение по умолчанию,
	// когда категории или количества недостаточно для расчета
	durata := domain.DurataDefaultMinuti
	if p.CategoriaProdotto != nil && p.QuantitaKg != nil {
		calcolata, err := uc.durataCalc.CalcolaDurataMinuti(ctx, *p.CategoriaProdotto, *p.QuantitaKg, req.CambioProdotto)
		if err != nil {
			uc.logger.Error("CreatePrenotazione: failed to calculate durata for codice=%s: %v", req.CodicePrenotazione, err)
			return nil, fmt.Errorf("%w: failed to calculate durata: %v", ErrInternal, err)
		}
		durata = calcolata
	}
	p.DurataPrevistaMinuti = durata

	oraFine, err := domain.CalcolaOraFine(p.OraInizioPrevista, durata)
	if err != nil {
		return nil, fmt.Errorf("%w: ora_inizio_prevista non valida: %v", ErrInvalidInput, err)
	}
	p.OraFinePrevista = oraFine

	return p, nil
}
