package prenotazioni

import (
	"context"
	"errors"
	"fmt"

	datiCaricoRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/daticarico"
	prenotazioneRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/prenotazione"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni/models"
)

// Service сервис чтения и удаления бронирований
// Создание, изменение и смена статусов живут в usecase слое,
// так как требуют транзакций и ведения журнала
type Service struct {
	prenotazioneRepo PrenotazioneRepository
	storicoRepo      StoricoRepository
	datiCaricoRepo   DatiCaricoRepository
	txManager        TxManager
	logger           Logger
}

// NewService создает новый сервис бронирований
func NewService(
	prenotazioneRepo PrenotazioneRepository,
	storicoRepo StoricoRepository,
	datiCaricoRepo DatiCaricoRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		prenotazioneRepo: prenotazioneRepo,
		storicoRepo:      storicoRepo,
		datiCaricoRepo:   datiCaricoRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetByID возвращает бронирование с журналом статусов, данными карико
// (если зарегистрированы) и множеством допустимых переходов
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PrenotazioneDettaglioResponse, error) {
	prenotazione, err := s.prenotazioneRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, prenotazioneRepo.ErrPrenotazioneNotFound) {
			s.logger.Warn("[GetByID] prenotazione not found: id=%d", id)
			return nil, fmt.Errorf("%w: id=%d", ErrPrenotazioneNotFound, id)
		}
		s.logger.Error("[GetByID] failed to get prenotazione id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	storico, err := s.storicoRepo.GetByPrenotazioneID(ctx, id)
	if err != nil {
		s.logger.Error("[GetByID] failed to get storico stati for prenotazione id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &models.PrenotazioneDettaglioResponse{
		PrenotazioneResponse: *models.FromDomainPrenotazione(prenotazione),
		StoricoStati:         models.FromDomainStorico(storico),
		TransizioniPossibili: models.TransizioniToStrings(prenotazione.TransizioniPossibili()),
	}

	datiCarico, err := s.datiCaricoRepo.GetByPrenotazioneID(ctx, id)
	if err != nil {
		if !errors.Is(err, datiCaricoRepo.ErrDatiCaricoNotFound) {
			s.logger.Error("[GetByID] failed to get dati carico for prenotazione id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		// Данных карико может не быть, это нормально
	} else {
		resp.DatiCarico = models.FromDomainDatiCarico(datiCarico)
	}

	s.logger.Info("[GetByID] prenotazione retrieved: id=%d, codice=%s, stato=%s",
		prenotazione.ID, prenotazione.CodicePrenotazione, prenotazione.Stato)

	return resp, nil
}

// List возвращает страницу бронирований по фильтру
func (s *Service) List(ctx context.Context, req *models.ListPrenotazioniRequest) (*models.PrenotazioneListResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	filter := req.ToDomainFilter()
	if filter.Tipologia != nil && !filter.Tipologia.IsValid() {
		s.logger.Warn("[List] invalid tipologia filter: %s", *filter.Tipologia)
		return nil, fmt.Errorf("%w: tipologia non valida: %s", ErrInvalidInput, *filter.Tipologia)
	}

	prenotazioni, total, err := s.prenotazioneRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("[List] failed to list prenotazioni: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("[List] prenotazioni listed: count=%d, total=%d, page=%d", len(prenotazioni), total, req.Page)

	return models.FromDomainPrenotazioneList(prenotazioni, total, req.Page, req.Limit), nil
}

// Delete физически удаляет бронирование
// Разрешено только для бронирований в статусе pianificato:
// все остальные должны проходить через аннулирование с сохранением журнала
// Проверка статуса и удаление выполняются в одной транзакции: чтение
// блокирует строку (FOR UPDATE), конкурентная смена статуса не может
// вклиниться между проверкой и удалением
func (s *Service) Delete(ctx context.Context, id int64) error {
	var codice string

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		prenotazione, err := s.prenotazioneRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if !prenotazione.CanBeDeleted() {
			return fmt.Errorf("%w: stato=%s", ErrSoloPianificatoEliminabile, prenotazione.Stato)
		}

		codice = prenotazione.CodicePrenotazione

		return s.prenotazioneRepo.Delete(ctx, id)
	})
	if err != nil {
		switch {
		case errors.Is(err, prenotazioneRepo.ErrPrenotazioneNotFound):
			s.logger.Warn("[Delete] prenotazione not found: id=%d", id)
			return fmt.Errorf("%w: id=%d", ErrPrenotazioneNotFound, id)
		case errors.Is(err, ErrSoloPianificatoEliminabile):
			s.logger.Warn("[Delete] prenotazione id=%d cannot be deleted: %v", id, err)
			return err
		default:
			s.logger.Error("[Delete] failed to delete prenotazione id=%d: %v", id, err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	s.logger.Info("[Delete] prenotazione deleted: id=%d, codice=%s", id, codice)

	return nil
}
