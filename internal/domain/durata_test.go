package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molinoferri/MFP-PrenotazioniService/pkg/types"
)

func TestCalcolaDurataMinuti(t *testing.T) {
	tests := []struct {
		name           string
		categoria      CategoriaProdotto
		quantitaKg     float64
		cambioProdotto bool
		want           int
	}{
		{
			// 10 t at 10 t/h = 60 min + 15 setup = 75, already on the grid
			name:       "rinfusa 10t senza cambio",
			categoria:  CategoriaRinfusa,
			quantitaKg: 10000,
			want:       75,
		},
		{
			// 15 setup + 60 processing + 20 cleaning = 95, ceil to 105
			name:           "rinfusa 10t con cambio prodotto",
			categoria:      CategoriaRinfusa,
			quantitaKg:     10000,
			cambioProdotto: true,
			want:           105,
		},
		{
			// 2 t at 2 t/h = 60 min + 15 setup = 75
			name:       "confezionato sacco 2t",
			categoria:  CategoriaConfezionatoSacco,
			quantitaKg: 2000,
			want:       75,
		},
		{
			// 1 t at 4 t/h = 15 min + 15 setup = 30
			name:       "confezionato silos 1t",
			categoria:  CategoriaConfezionatoSilos,
			quantitaKg: 1000,
			want:       30,
		},
		{
			// 100 kg at 10 t/h = 0.6 min + 15 setup = 15.6, ceil to 30
			name:       "quantita minima arrotonda in su",
			categoria:  CategoriaRinfusa,
			quantitaKg: 100,
			want:       30,
		},
		{
			// Zero quantity still pays the setup time
			name:       "quantita zero",
			categoria:  CategoriaRinfusa,
			quantitaKg: 0,
			want:       15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempi := TempiCicloDefault(tt.categoria)
			got := CalcolaDurataMinuti(tempi, tt.quantitaKg, tt.cambioProdotto)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalcolaDurataMinuti_ArrotondaSempreInSu(t *testing.T) {
	// 15 setup + 46.2 min of processing = 61.2 -> 75, never 60
	tempi := TempiCiclo{TonOra: 10, TempoSetupMinuti: 15, TempoPuliziaMinuti: 20}
	assert.Equal(t, 75, CalcolaDurataMinuti(tempi, 7700, false))
}

func TestTempiCicloDefault_CategoriaSconosciuta(t *testing.T) {
	// Unknown categories fall back to the confezionato_silos defaults
	assert.Equal(t, DefaultTempiCiclo[CategoriaConfezionatoSilos], TempiCicloDefault("sconosciuta"))
}

func TestCalcolaOraFine(t *testing.T) {
	tests := []struct {
		oraInizio string
		durata    int
		want      string
	}{
		{"08:00", 90, "09:30"},
		{"09:00", 75, "10:15"},
		{"00:00", 0, "00:00"},
		{"10:45", 15, "11:00"},
		// Past midnight the end time wraps to early morning of the same
		// nominal day: the defined grid behavior, no date rollover
		{"23:00", 90, "00:30"},
		{"23:45", 1440, "23:45"},
	}

	for _, tt := range tests {
		t.Run(tt.oraInizio, func(t *testing.T) {
			inizio, err := types.NewTimeStringFromString(tt.oraInizio)
			require.NoError(t, err)

			fine, err := CalcolaOraFine(inizio, tt.durata)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fine.String())
		})
	}
}

func TestConvertiInKg(t *testing.T) {
	tests := []struct {
		quantita float64
		unita    UnitaMisura
		want     float64
	}{
		{5, UnitaTon, 5000},
		{3, UnitaSacchi, 75},
		{2, UnitaPallet, 2000},
		{120, UnitaKg, 120},
		// Unknown units pass through unchanged, treated as already-kg
		{42, "casse", 42},
	}

	for _, tt := range tests {
		t.Run(string(tt.unita), func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertiInKg(tt.quantita, tt.unita))
		})
	}
}
