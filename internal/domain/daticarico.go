package domain

import (
	"time"

	"github.com/molinoferri/MFP-PrenotazioniService/pkg/types"
)

// DatiCarico is the load-completion record of a delivery booking:
// the physical data captured when loading finishes. One-to-one with its
// Prenotazione, created exactly once while the booking is in_carico.
type DatiCarico struct {
	ID             int64
	PrenotazioneID int64

	DataCarico      time.Time
	OraInizioCarico *types.TimeString
	OraFineCarico   *types.TimeString

	OperatoreID   *int64
	OperatoreNome *string

	IdoneitaTrasporto bool
	IdoneitaNote      *string

	TargaAutomezzo string
	TargaRimorchio *string
	NomeAutista    *string

	LottoCaricato string
	ScadenzaLotto *time.Time

	PesoCaricatoKg float64
	PesoTaraKg     *float64
	PesoLordoKg    *float64

	TipologiaCarico *TipologiaCarico
	NumeroColli     *int

	DdtNumero *string
	DdtData   *time.Time

	RegistratoAt time.Time
}
