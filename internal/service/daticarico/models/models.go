package models

import (
	"fmt"
	"time"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	datiCaricoRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/daticarico"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/types"
)

// UpdateDatiCaricoRequest запрос на частичное изменение данных карико
// nil означает "оставить текущее значение"
type UpdateDatiCaricoRequest struct {
	DataCarico      *string `json:"data_carico,omitempty"`
	OraInizioCarico *string `json:"ora_inizio_carico,omitempty"`
	OraFineCarico   *string `json:"ora_fine_carico,omitempty"`

	IdoneitaTrasporto *bool   `json:"idoneita_trasporto,omitempty"`
	IdoneitaNote      *string `json:"idoneita_note,omitempty"`

	TargaAutomezzo *string `json:"targa_automezzo,omitempty"`
	TargaRimorchio *string `json:"targa_rimorchio,omitempty"`
	NomeAutista    *string `json:"nome_autista,omitempty"`

	LottoCaricato *string `json:"lotto_caricato,omitempty"`
	ScadenzaLotto *string `json:"scadenza_lotto,omitempty"`

	PesoCaricatoKg *float64 `json:"peso_caricato_kg,omitempty"`
	PesoTaraKg     *float64 `json:"peso_tara_kg,omitempty"`
	PesoLordoKg    *float64 `json:"peso_lordo_kg,omitempty"`

	TipologiaCarico *string `json:"tipologia_carico,omitempty"`
	NumeroColli     *int    `json:"numero_colli,omitempty"`

	DdtNumero *string `json:"ddt_numero,omitempty"`
	DdtData   *string `json:"ddt_data,omitempty"`
}

// ToUpdateFields конвертирует запрос в набор полей для репозитория
func (r *UpdateDatiCaricoRequest) ToUpdateFields() (datiCaricoRepo.UpdateFields, error) {
	fields := datiCaricoRepo.UpdateFields{
		IdoneitaTrasporto: r.IdoneitaTrasporto,
		IdoneitaNote:      r.IdoneitaNote,
		TargaAutomezzo:    r.TargaAutomezzo,
		TargaRimorchio:    r.TargaRimorchio,
		NomeAutista:       r.NomeAutista,
		LottoCaricato:     r.LottoCaricato,
		PesoCaricatoKg:    r.PesoCaricatoKg,
		PesoTaraKg:        r.PesoTaraKg,
		PesoLordoKg:       r.PesoLordoKg,
		NumeroColli:       r.NumeroColli,
		DdtNumero:         r.DdtNumero,
	}

	if r.DataCarico != nil {
		data, err := time.Parse(domain.DateFormat, *r.DataCarico)
		if err != nil {
			return fields, fmt.Errorf("data_carico non valida: %s", *r.DataCarico)
		}
		fields.DataCarico = &data
	}
	if r.OraInizioCarico != nil {
		ora, err := types.NewTimeStringFromString(*r.OraInizioCarico)
		if err != nil {
			return fields, fmt.Errorf("ora_inizio_carico non valida: %s", *r.OraInizioCarico)
		}
		fields.OraInizioCarico = &ora
	}
	if r.OraFineCarico != nil {
		ora, err := types.NewTimeStringFromString(*r.OraFineCarico)
		if err != nil {
			return fields, fmt.Errorf("ora_fine_carico non valida: %s", *r.OraFineCarico)
		}
		fields.OraFineCarico = &ora
	}
	if r.ScadenzaLotto != nil {
		scadenza, err := time.Parse(domain.DateFormat, *r.ScadenzaLotto)
		if err != nil {
			return fields, fmt.Errorf("scadenza_lotto non valida: %s", *r.ScadenzaLotto)
		}
		fields.ScadenzaLotto = &scadenza
	}
	if r.TipologiaCarico != nil {
		carico := domain.TipologiaCarico(*r.TipologiaCarico)
		fields.TipologiaCarico = &carico
	}
	if r.DdtData != nil {
		data, err := time.Parse(domain.DateFormat, *r.DdtData)
		if err != nil {
			return fields, fmt.Errorf("ddt_data non valida: %s", *r.DdtData)
		}
		fields.DdtData = &data
	}

	return fields, nil
}

// IsEmpty возвращает true, если запрос не меняет ни одного поля
func (r *UpdateDatiCaricoRequest) IsEmpty() bool {
	return r.DataCarico == nil && r.OraInizioCarico == nil && r.OraFineCarico == nil &&
		r.IdoneitaTrasporto == nil && r.IdoneitaNote == nil &&
		r.TargaAutomezzo == nil && r.TargaRimorchio == nil && r.NomeAutista == nil &&
		r.LottoCaricato == nil && r.ScadenzaLotto == nil &&
		r.PesoCaricatoKg == nil && r.PesoTaraKg == nil && r.PesoLordoKg == nil &&
		r.TipologiaCarico == nil && r.NumeroColli == nil &&
		r.DdtNumero == nil && r.DdtData == nil
}

// DatiCaricoResponse ответ с данными карико
type DatiCaricoResponse struct {
	ID             int64  `json:"id"`
	PrenotazioneID int64  `json:"prenotazione_id"`
	DataCarico     string `json:"data_carico"`

	OraInizioCarico *string `json:"ora_inizio_carico,omitempty"`
	OraFineCarico   *string `json:"ora_fine_carico,omitempty"`

	OperatoreID   *int64  `json:"operatore_id,omitempty"`
	OperatoreNome *string `json:"operatore_nome,omitempty"`

	IdoneitaTrasporto bool    `json:"idoneita_trasporto"`
	IdoneitaNote      *string `json:"idoneita_note,omitempty"`

	TargaAutomezzo string  `json:"targa_automezzo"`
	TargaRimorchio *string `json:"targa_rimorchio,omitempty"`
	NomeAutista    *string `json:"nome_autista,omitempty"`

	LottoCaricato string  `json:"lotto_caricato"`
	ScadenzaLotto *string `json:"scadenza_lotto,omitempty"`

	PesoCaricatoKg float64  `json:"peso_caricato_kg"`
	PesoTaraKg     *float64 `json:"peso_tara_kg,omitempty"`
	PesoLordoKg    *float64 `json:"peso_lordo_kg,omitempty"`

	TipologiaCarico *string `json:"tipologia_carico,omitempty"`
	NumeroColli     *int    `json:"numero_colli,omitempty"`

	DdtNumero *string `json:"ddt_numero,omitempty"`
	DdtData   *string `json:"ddt_data,omitempty"`

	RegistratoAt time.Time `json:"registrato_at"`
}

// FromDomainDatiCarico конвертирует domain модель данных карико в DTO
func FromDomainDatiCarico(dc *domain.DatiCarico) *DatiCaricoResponse {
	if dc == nil {
		return nil
	}

	resp := &DatiCaricoResponse{
		ID:             dc.ID,
		PrenotazioneID: dc.PrenotazioneID,
		DataCarico:     dc.DataCarico.Format(domain.DateFormat),

		OperatoreID:   dc.OperatoreID,
		OperatoreNome: dc.OperatoreNome,

		IdoneitaTrasporto: dc.IdoneitaTrasporto,
		IdoneitaNote:      dc.IdoneitaNote,

		TargaAutomezzo: dc.TargaAutomezzo,
		TargaRimorchio: dc.TargaRimorchio,
		NomeAutista:    dc.NomeAutista,

		LottoCaricato: dc.LottoCaricato,

		PesoCaricatoKg: dc.PesoCaricatoKg,
		PesoTaraKg:     dc.PesoTaraKg,
		PesoLordoKg:    dc.PesoLordoKg,

		NumeroColli: dc.NumeroColli,
		DdtNumero:   dc.DdtNumero,

		RegistratoAt: dc.RegistratoAt,
	}

	if dc.OraInizioCarico != nil {
		ora := dc.OraInizioCarico.String()
		resp.OraInizioCarico = &ora
	}
	if dc.OraFineCarico != nil {
		ora := dc.OraFineCarico.String()
		resp.OraFineCarico = &ora
	}
	if dc.ScadenzaLotto != nil {
		scadenza := dc.ScadenzaLotto.Format(domain.DateFormat)
		resp.ScadenzaLotto = &scadenza
	}
	if dc.TipologiaCarico != nil {
		carico := string(*dc.TipologiaCarico)
		resp.TipologiaCarico = &carico
	}
	if dc.DdtData != nil {
		data := dc.DdtData.Format(domain.DateFormat)
		resp.DdtData = &data
	}

	return resp
}
