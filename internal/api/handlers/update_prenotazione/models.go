package update_prenotazione

import (
	"time"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	updatePrenotazione "github.com/molinoferri/MFP-PrenotazioniService/internal/usecase/update_prenotazione"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/types"
)

// UpdatePrenotazioneRequest HTTP request model
// Присутствуют только изменяемые поля: отсутствующее поле не трогается
type UpdatePrenotazioneRequest struct {
	ClienteID       *int64 `json:"cliente_id,omitempty"`
	TrasportatoreID *int64 `json:"trasportatore_id,omitempty"`

	DataPianificata   *string `json:"data_pianificata,omitempty"`
	OraInizioPrevista *string `json:"ora_inizio_prevista,omitempty"`

	ProdottoCodice        *string  `json:"prodotto_codice,omitempty"`
	ProdottoDescrizione   *string  `json:"prodotto_descrizione,omitempty"`
	CategoriaProdotto     *string  `json:"categoria_prodotto,omitempty"`
	SpecificaW            *float64 `json:"specifica_w,omitempty"`
	SpecificaWTolleranza  *float64 `json:"specifica_w_tolleranza,omitempty"`
	SpecificaPL           *float64 `json:"specifica_pl,omitempty"`
	SpecificaPLTolleranza *float64 `json:"specifica_pl_tolleranza,omitempty"`
	QuantitaPrevista      *float64 `json:"quantita_prevista,omitempty"`
	UnitaMisura           *string  `json:"unita_misura,omitempty"`
	QuantitaKg            *float64 `json:"quantita_kg,omitempty"`

	LottoPrevisto *string `json:"lotto_previsto,omitempty"`
	LottoScadenza *string `json:"lotto_scadenza,omitempty"`

	OrigineMateriale *string `json:"origine_materiale,omitempty"`
	SilosOrigine     *string `json:"silos_origine,omitempty"`
	LineaProduzione  *string `json:"linea_produzione,omitempty"`

	TipologiaCarico   *string `json:"tipologia_carico,omitempty"`
	OrdineRiferimento *string `json:"ordine_riferimento,omitempty"`

	CambioProdotto *bool `json:"cambio_prodotto,omitempty"`

	Priorita *int    `json:"priorita,omitempty"`
	Note     *string `json:"note,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdatePrenotazioneRequest) ToUseCaseRequest(prenotazioneID int64) (*updatePrenotazione.Request, error) {
	req := &updatePrenotazione.Request{
		PrenotazioneID: prenotazioneID,

		ClienteID:       r.ClienteID,
		TrasportatoreID: r.TrasportatoreID,

		ProdottoCodice:        r.ProdottoCodice,
		ProdottoDescrizione:   r.ProdottoDescrizione,
		CategoriaProdotto:     r.CategoriaProdotto,
		SpecificaW:            r.SpecificaW,
		SpecificaWTolleranza:  r.SpecificaWTolleranza,
		SpecificaPL:           r.SpecificaPL,
		SpecificaPLTolleranza: r.SpecificaPLTolleranza,
		QuantitaPrevista:      r.QuantitaPrevista,
		UnitaMisura:           r.UnitaMisura,
		QuantitaKg:            r.QuantitaKg,

		LottoPrevisto: r.LottoPrevisto,

		OrigineMateriale: r.OrigineMateriale,
		SilosOrigine:     r.SilosOrigine,
		LineaProduzione:  r.LineaProduzione,

		TipologiaCarico:   r.TipologiaCarico,
		OrdineRiferimento: r.OrdineRiferimento,

		CambioProdotto: r.CambioProdotto,

		Priorita: r.Priorita,
		Note:     r.Note,
	}

	if r.DataPianificata != nil {
		data, err := time.Parse(domain.DateFormat, *r.DataPianificata)
		if err != nil {
			return nil, err
		}
		req.DataPianificata = &data
	}
	if r.OraInizioPrevista != nil {
		ora, err := types.NewTimeStringFromString(*r.OraInizioPrevista)
		if err != nil {
			return nil, err
		}
		req.OraInizioPrevista = &ora
	}
	if r.LottoScadenza != nil {
		scadenza, err := time.Parse(domain.DateFormat, *r.LottoScadenza)
		if err != nil {
			return nil, err
		}
		req.LottoScadenza = &scadenza
	}

	return req, nil
}
