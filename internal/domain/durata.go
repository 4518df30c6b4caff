package domain

import (
	"math"

	"github.com/molinoferri/MFP-PrenotazioniService/pkg/types"
)

// Scheduling grid and conversion constants
const (
	// SlotMinuti is the granularity of the daily scheduling grid: computed
	// durations are always rounded up to a multiple of this
	SlotMinuti = 15

	// DurataDefaultMinuti is used when category or quantity are missing and
	// no duration can be computed
	DurataDefaultMinuti = 60

	// Assumed average weights for unit conversion
	PesoSaccoKg  = 25
	PesoPalletKg = 1000

	KgPerTonnellata = 1000
)

// TempiCiclo holds the processing parameters of a product category:
// throughput and the fixed setup/cleaning overheads
type TempiCiclo struct {
	TonOra             float64
	TempoSetupMinuti   int
	TempoPuliziaMinuti int
}

// DefaultTempiCiclo is the built-in fallback table used when no active
// configuration row exists for a category. Compile-time data, never mutated.
var DefaultTempiCiclo = map[CategoriaProdotto]TempiCiclo{
	CategoriaRinfusa:           {TonOra: 10, TempoSetupMinuti: 15, TempoPuliziaMinuti: 20},
	CategoriaConfezionatoSilos: {TonOra: 4, TempoSetupMinuti: 15, TempoPuliziaMinuti: 20},
	CategoriaConfezionatoSacco: {TonOra: 2, TempoSetupMinuti: 15, TempoPuliziaMinuti: 25},
}

// TempiCicloDefault returns the built-in parameters for a category.
// An unrecognized category falls back to the confezionato_silos row.
func TempiCicloDefault(categoria CategoriaProdotto) TempiCiclo {
	if tempi, ok := DefaultTempiCiclo[categoria]; ok {
		return tempi
	}
	return DefaultTempiCiclo[CategoriaConfezionatoSilos]
}

// CalcolaDurataMinuti computes the total slot duration for processing
// quantitaKg at the given cycle times. cambioProdotto adds the cleaning
// time of a product changeover. The result is rounded up to the grid
// (ceiling, never down).
func CalcolaDurataMinuti(tempi TempiCiclo, quantitaKg float64, cambioProdotto bool) int {
	quantitaTon := quantitaKg / KgPerTonnellata

	minutiPerTon := 60 / tempi.TonOra
	tempoLavorazione := quantitaTon * minutiPerTon

	durataTotale := float64(tempi.TempoSetupMinuti) + tempoLavorazione

	if cambioProdotto {
		durataTotale += float64(tempi.TempoPuliziaMinuti)
	}

	return int(math.Ceil(durataTotale/SlotMinuti)) * SlotMinuti
}

// CalcolaOraFine computes the slot end time from its start and duration.
// Crossing midnight wraps modulo 24 hours without touching the date: the
// stored behavior of the scheduling grid, documented and tested as such.
func CalcolaOraFine(oraInizio types.TimeString, durataMinuti int) (types.TimeString, error) {
	return oraInizio.AddMinutes(durataMinuti)
}

// ConvertiInKg converts a planned quantity to kilograms.
// An unrecognized unit is treated as already expressed in kg.
func ConvertiInKg(quantita float64, unita UnitaMisura) float64 {
	switch unita {
	case UnitaTon:
		return quantita * KgPerTonnellata
	case UnitaSacchi:
		return quantita * PesoSaccoKg
	case UnitaPallet:
		return quantita * PesoPalletKg
	case UnitaKg:
		return quantita
	default:
		return quantita
	}
}
