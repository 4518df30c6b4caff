package daticarico

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	datiCaricoRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/daticarico"
	prenotazioneRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/prenotazione"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/daticarico/models"
)

// Service сервис чтения и корректировки данных карико
// Первичная регистрация живет в usecase слое, так как совмещена
// со сменой статуса бронирования
type Service struct {
	datiCaricoRepo   DatiCaricoRepository
	prenotazioneRepo PrenotazioneRepository
	txManager        TxManager
	logger           Logger
}

// NewService создает новый сервис данных карико
func NewService(
	datiCaricoRepo DatiCaricoRepository,
	prenotazioneRepo PrenotazioneRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		datiCaricoRepo:   datiCaricoRepo,
		prenotazioneRepo: prenotazioneRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetByPrenotazioneID возвращает данные карико бронирования
func (s *Service) GetByPrenotazioneID(ctx context.Context, prenotazioneID int64) (*models.DatiCaricoResponse, error) {
	if _, err := s.prenotazioneRepo.GetByID(ctx, prenotazioneID); err != nil {
		if errors.Is(err, prenotazioneRepo.ErrPrenotazioneNotFound) {
			s.logger.Warn("[GetByPrenotazioneID] prenotazione not found: id=%d", prenotazioneID)
			return nil, fmt.Errorf("%w: id=%d", ErrPrenotazioneNotFound, prenotazioneID)
		}
		s.logger.Error("[GetByPrenotazioneID] failed to get prenotazione id=%d: %v", prenotazioneID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	dc, err := s.datiCaricoRepo.GetByPrenotazioneID(ctx, prenotazioneID)
	if err != nil {
		if errors.Is(err, datiCaricoRepo.ErrDatiCaricoNotFound) {
			s.logger.Warn("[GetByPrenotazioneID] dati carico not found for prenotazione id=%d", prenotazioneID)
			return nil, fmt.Errorf("%w: prenotazione id=%d", ErrDatiCaricoNotFound, prenotazioneID)
		}
		s.logger.Error("[GetByPrenotazioneID] failed to get dati carico for prenotazione id=%d: %v", prenotazioneID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainDatiCarico(dc), nil
}

// Update частично изменяет данные карико
// Статус бронирования и журнал не трогаются: корректировка данных
// не является переходом жизненного цикла
// Изменение номера DDT распространяется на бронирование
func (s *Service) Update(ctx context.Context, prenotazioneID int64, req *models.UpdateDatiCaricoRequest) (*models.DatiCaricoResponse, error) {
	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: nessun campo da aggiornare", ErrInvalidInput)
	}

	fields, err := req.ToUpdateFields()
	if err != nil {
		s.logger.Warn("[Update] invalid request for prenotazione id=%d: %v", prenotazioneID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var updated *domain.DatiCarico

	// Правило пригодности проверяется внутри транзакции на заблокированной
	// строке: итоговые значения не могут устареть под конкурентной правкой
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.datiCaricoRepo.GetByPrenotazioneID(ctx, prenotazioneID)
		if err != nil {
			return err
		}

		if err := validateIdoneita(current, req); err != nil {
			return err
		}

		updated, err = s.datiCaricoRepo.UpdateFields(ctx, prenotazioneID, fields)
		if err != nil {
			return err
		}

		if req.DdtNumero != nil {
			if err := s.prenotazioneRepo.UpdateDdtRiferimento(ctx, prenotazioneID, *req.DdtNumero); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, datiCaricoRepo.ErrDatiCaricoNotFound):
			s.logger.Warn("[Update] dati carico not found for prenotazione id=%d", prenotazioneID)
			return nil, fmt.Errorf("%w: prenotazione id=%d", ErrDatiCaricoNotFound, prenotazioneID)
		case errors.Is(err, ErrIdoneitaNoteRichieste):
			s.logger.Warn("[Update] idoneita validation failed for prenotazione id=%d: %v", prenotazioneID, err)
			return nil, err
		default:
			s.logger.Error("[Update] failed to update dati carico for prenotazione id=%d: %v", prenotazioneID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	s.logger.Info("[Update] dati carico updated: prenotazione id=%d", prenotazioneID)

	return models.FromDomainDatiCarico(updated), nil
}

// validateIdoneita проверяет правило пригодности на итоговых значениях:
// если после изменения транспорт непригоден, причина обязательна
func validateIdoneita(current *domain.DatiCarico, req *models.UpdateDatiCaricoRequest) error {
	idoneita := current.IdoneitaTrasporto
	if req.IdoneitaTrasporto != nil {
		idoneita = *req.IdoneitaTrasporto
	}

	if idoneita {
		return nil
	}

	note := current.IdoneitaNote
	if req.IdoneitaNote != nil {
		note = req.IdoneitaNote
	}

	if note == nil || strings.TrimSpace(*note) == "" {
		return ErrIdoneitaNoteRichieste
	}

	return nil
}
