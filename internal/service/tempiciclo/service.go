package tempiciclo

import (
	"context"
	"errors"
	"fmt"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	storage "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/tempiciclo"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/tempiciclo/models"
)

// Service сервис конфигурации tempi ciclo и расчета длительности слотов
// Отсутствующая или неактивная конфигурация категории не является ошибкой:
// расчет в этом случае использует встроенную таблицу значений по умолчанию
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса tempi ciclo
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// TempiPerCategoria возвращает параметры цикла категории:
// активную строку конфигурации, либо встроенные значения по умолчанию
func (s *Service) TempiPerCategoria(ctx context.Context, categoria domain.CategoriaProdotto) (domain.TempiCiclo, error) {
	config, err := s.configRepo.GetActiveByCategoria(ctx, categoria)
	if err != nil {
		if errors.Is(err, storage.ErrConfigNotFound) {
			s.logger.Info("TempiPerCategoria: no active config for categoria=%s, using defaults", categoria)
			return domain.TempiCicloDefault(categoria), nil
		}
		return domain.TempiCiclo{}, fmt.Errorf("%w: TempiPerCategoria - repository error: %v", ErrInternal, err)
	}

	return config.Tempi(), nil
}

// CalcolaDurataMinuti вычисляет длительность слота в минутах
// для категории, количества в кг и признака смены продукта
func (s *Service) CalcolaDurataMinuti(ctx context.Context, categoria domain.CategoriaProdotto, quantitaKg float64, cambioProdotto bool) (int, error) {
	tempi, err := s.TempiPerCategoria(ctx, categoria)
	if err != nil {
		return 0, err
	}

	durata := domain.CalcolaDurataMinuti(tempi, quantitaKg, cambioProdotto)

	s.logger.Info("CalcolaDurataMinuti: categoria=%s quantitaKg=%.0f cambio=%t -> %d min",
		categoria, quantitaKg, cambioProdotto, durata)

	return durata, nil
}

// List возвращает все строки конфигурации для административного интерфейса
func (s *Service) List(ctx context.Context) (*models.ConfigListResponse, error) {
	configs, err := s.configRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfigList(configs), nil
}

// Update частично обновляет конфигурацию категории
// Административная операция, не входящая в расчетное ядро
func (s *Service) Update(ctx context.Context, categoria domain.CategoriaProdotto, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("Update: invalid request for categoria=%s: %v", categoria, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	config, err := s.configRepo.UpdateByCategoria(ctx, categoria, storage.UpdateFields{
		TonOra:             req.TonOra,
		TempoSetupMinuti:   req.TempoSetupMinuti,
		TempoPuliziaMinuti: req.TempoPuliziaMinuti,
		Attivo:             req.Attivo,
	})
	if err != nil {
		if errors.Is(err, storage.ErrConfigNotFound) {
			s.logger.Warn("Update: config for categoria=%s not found", categoria)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Update: repository error for categoria=%s: %v", categoria, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: configurazione categoria=%s updated", categoria)
	return models.FromDomainConfig(config), nil
}
