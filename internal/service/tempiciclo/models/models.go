package models

import (
	"fmt"
	"time"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
)

// UpdateConfigRequest запрос на частичное обновление конфигурации категории
type UpdateConfigRequest struct {
	TonOra             *float64 `json:"ton_ora,omitempty"`
	TempoSetupMinuti   *int     `json:"tempo_setup_minuti,omitempty"`
	TempoPuliziaMinuti *int     `json:"tempo_pulizia_minuti,omitempty"`
	Attivo             *bool    `json:"attivo,omitempty"`
}

// Validate проверяет диапазоны переданных значений
func (r *UpdateConfigRequest) Validate() error {
	if r.TonOra != nil && *r.TonOra <= 0 {
		return fmt.Errorf("ton_ora must be positive")
	}
	if r.TempoSetupMinuti != nil && *r.TempoSetupMinuti < 0 {
		return fmt.Errorf("tempo_setup_minuti must not be negative")
	}
	if r.TempoPuliziaMinuti != nil && *r.TempoPuliziaMinuti < 0 {
		return fmt.Errorf("tempo_pulizia_minuti must not be negative")
	}
	return nil
}

// ConfigResponse ответ с конфигурацией одной категории
type ConfigResponse struct {
	ID                 int64   `json:"id"`
	Categoria          string  `json:"categoria"`
	TonOra             float64 `json:"ton_ora"`
	TempoSetupMinuti   int     `json:"tempo_setup_minuti"`
	TempoPuliziaMinuti int     `json:"tempo_pulizia_minuti"`
	Attivo             bool    `json:"attivo"`
	UpdatedAt          string  `json:"updated_at"`
}

// ConfigListResponse ответ со списком конфигураций
type ConfigListResponse struct {
	Configurazioni []ConfigResponse `json:"configurazioni"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.ConfigurazioneTempiCiclo) *ConfigResponse {
	if c == nil {
		return nil
	}

	return &ConfigResponse{
		ID:                 c.ID,
		Categoria:          string(c.Categoria),
		TonOra:             c.TonOra,
		TempoSetupMinuti:   c.TempoSetupMinuti,
		TempoPuliziaMinuti: c.TempoPuliziaMinuti,
		Attivo:             c.Attivo,
		UpdatedAt:          c.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainConfigList конвертирует список domain моделей в DTO
func FromDomainConfigList(configs []*domain.ConfigurazioneTempiCiclo) *ConfigListResponse {
	resp := &ConfigListResponse{
		Configurazioni: make([]ConfigResponse, 0, len(configs)),
	}

	for _, config := range configs {
		if dto := FromDomainConfig(config); dto != nil {
			resp.Configurazioni = append(resp.Configurazioni, *dto)
		}
	}

	return resp
}
