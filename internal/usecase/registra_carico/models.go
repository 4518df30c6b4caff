package registra_carico

import (
	"time"

	"github.com/molinoferri/MFP-PrenotazioniService/pkg/types"
)

// Request модель запроса на регистрацию данных карико
type Request struct {
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

	TipologiaCarico *string
	NumeroColli     *int

	DdtNumero *string
	DdtData   *time.Time

	UtenteID *int64 // Кто регистрирует погрузку
}
