package domain

import "time"

// ConfigurazioneTempiCiclo is the persisted per-category cycle-time
// configuration, maintained by administrators. Inactive rows are ignored
// by the duration calculation, which then falls back to DefaultTempiCiclo.
type ConfigurazioneTempiCiclo struct {
	ID                 int64
	Categoria          CategoriaProdotto
	TonOra             float64
	TempoSetupMinuti   int
	TempoPuliziaMinuti int
	Attivo             bool
	UpdatedAt          time.Time
}

// Tempi returns the cycle-time parameters of this configuration row
func (c *ConfigurazioneTempiCiclo) Tempi() TempiCiclo {
	return TempiCiclo{
		TonOra:             c.TonOra,
		TempoSetupMinuti:   c.TempoSetupMinuti,
		TempoPuliziaMinuti: c.TempoPuliziaMinuti,
	}
}
