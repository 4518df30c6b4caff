package create_prenotazione

import (
	"time"

	"github.com/molinoferri/MFP-PrenotazioniService/pkg/types"
)

// Request модель запроса на создание бронирования
// Код бронирования приходит от вызывающей стороны: его генерация
// не входит в ответственность сервиса
type Request struct {
	CodicePrenotazione string           // Код бронирования (например, "PRD-2026-0042")
	Tipologia          string           // produzione | consegna
	DataPianificata    time.Time        // Дата планирования (без времени)
	OraInizioPrevista  types.TimeString // Время начала слота (например, "08:00")

	ClienteID       *int64
	TrasportatoreID *int64

	ProdottoCodice        *string
	ProdottoDescrizione   *string
	CategoriaProdotto     *string // rinfusa | confezionato_silos | confezionato_sacco
	SpecificaW            *float64
	SpecificaWTolleranza  *float64
	SpecificaPL           *float64
	SpecificaPLTolleranza *float64
	QuantitaPrevista      *float64
	UnitaMisura           *string // kg | ton | sacchi | pallet
	QuantitaKg            *float64

	LottoPrevisto *string
	LottoScadenza *time.Time

	OrigineMateriale *string
	SilosOrigine     *string
	LineaProduzione  *string

	PrenotazioneConsegnaCollegata   *int64
	PrenotazioneProduzioneCollegata *int64

	TipologiaCarico   *string
	OrdineRiferimento *string

	CambioProdotto bool // Смена продукта на линии: добавляет время pulizia
	Priorita       *int
	Note           *string
	UtenteID       *int64 // Кто создает бронирование
}
