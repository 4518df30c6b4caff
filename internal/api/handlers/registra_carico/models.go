package registra_carico

import (
	"time"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	registraCarico "github.com/molinoferri/MFP-PrenotazioniService/internal/usecase/registra_carico"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/types"
)

// RegistraCaricoRequest HTTP request model
type RegistraCaricoRequest struct {
	DataCarico      string  `json:"data_carico"` // "2026-03-15"
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
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegistraCaricoRequest) ToUseCaseRequest(prenotazioneID int64, utenteID *int64) (*registraCarico.Request, error) {
	dataCarico, err := time.Parse(domain.DateFormat, r.DataCarico)
	if err != nil {
		return nil, err
	}

	req := &registraCarico.Request{
		PrenotazioneID: prenotazioneID,
		DataCarico:     dataCarico,

		OperatoreID:   r.OperatoreID,
		OperatoreNome: r.OperatoreNome,

		IdoneitaTrasporto: r.IdoneitaTrasporto,
		IdoneitaNote:      r.IdoneitaNote,

		TargaAutomezzo: r.TargaAutomezzo,
		TargaRimorchio: r.TargaRimorchio,
		NomeAutista:    r.NomeAutista,

		LottoCaricato: r.LottoCaricato,

		PesoCaricatoKg: r.PesoCaricatoKg,
		PesoTaraKg:     r.PesoTaraKg,
		PesoLordoKg:    r.PesoLordoKg,

		TipologiaCarico: r.TipologiaCarico,
		NumeroColli:     r.NumeroColli,

		DdtNumero: r.DdtNumero,

		UtenteID: utenteID,
	}

	if r.OraInizioCarico != nil {
		ora, err := types.NewTimeStringFromString(*r.OraInizioCarico)
		if err != nil {
			return nil, err
		}
		req.OraInizioCarico = &ora
	}
	if r.OraFineCarico != nil {
		ora, err := types.NewTimeStringFromString(*r.OraFineCarico)
		if err != nil {
			return nil, err
		}
		req.OraFineCarico = &ora
	}
	if r.ScadenzaLotto != nil {
		scadenza, err := time.Parse(domain.DateFormat, *r.ScadenzaLotto)
		if err != nil {
			return nil, err
		}
		req.ScadenzaLotto = &scadenza
	}
	if r.DdtData != nil {
		data, err := time.Parse(domain.DateFormat, *r.DdtData)
		if err != nil {
			return nil, err
		}
		req.DdtData = &data
	}

	return req, nil
}
