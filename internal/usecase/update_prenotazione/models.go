package update_prenotazione

import (
	"time"

	"github.com/molinoferri/MFP-PrenotazioniService/pkg/types"
)

// Request модель запроса на частичное изменение бронирования
// nil означает "оставить текущее значение"
// Статус через этот use case не меняется: для переходов жизненного цикла
// используется отдельная операция со своим журналом
type Request struct {
	PrenotazioneID int64

	ClienteID       *int64
	TrasportatoreID *int64

	DataPianificata   *time.Time
	OraInizioPrevista *types.TimeString

	ProdottoCodice        *string
	ProdottoDescrizione   *string
	CategoriaProdotto     *string
	SpecificaW            *float64
	SpecificaWTolleranza  *float64
	SpecificaPL           *float64
	SpecificaPLTolleranza *float64
	QuantitaPrevista      *float64
	UnitaMisura           *string
	QuantitaKg            *float64

	LottoPrevisto *string
	LottoScadenza *time.Time

	OrigineMateriale *string
	SilosOrigine     *string
	LineaProduzione  *string

	TipologiaCarico   *string
	OrdineRiferimento *string

	CambioProdotto *bool // Смена продукта на линии: влияет на пересчет длительности

	Priorita *int
	Note     *string
}

// IsEmpty возвращает true, если запрос не меняет ни одного поля
func (r *Request) IsEmpty() bool {
	return r.ClienteID == nil && r.TrasportatoreID == nil &&
		r.DataPianificata == nil && r.OraInizioPrevista == nil &&
		r.ProdottoCodice == nil && r.ProdottoDescrizione == nil &&
		r.CategoriaProdotto == nil &&
		r.SpecificaW == nil && r.SpecificaWTolleranza == nil &&
		r.SpecificaPL == nil && r.SpecificaPLTolleranza == nil &&
		r.QuantitaPrevista == nil && r.UnitaMisura == nil && r.QuantitaKg == nil &&
		r.LottoPrevisto == nil && r.LottoScadenza == nil &&
		r.OrigineMateriale == nil && r.SilosOrigine == nil && r.LineaProduzione == nil &&
		r.TipologiaCarico == nil && r.OrdineRiferimento == nil &&
		r.CambioProdotto == nil && r.Priorita == nil && r.Note == nil
}
