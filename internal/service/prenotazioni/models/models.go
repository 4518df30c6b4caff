package models

import (
	"time"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
)

// Request модели

// ListPrenotazioniRequest запрос на получение списка бронирований
type ListPrenotazioniRequest struct {
	Tipologia       *string
	Stato           *string
	ClienteID       *int64
	TrasportatoreID *int64
	DataDa          *time.Time
	DataA           *time.Time
	Search          *string
	Page            int
	Limit           int
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListPrenotazioniRequest) ToDomainFilter() domain.PrenotazioniFilter {
	filter := domain.PrenotazioniFilter{
		ClienteID:       r.ClienteID,
		TrasportatoreID: r.TrasportatoreID,
		DataDa:          r.DataDa,
		DataA:           r.DataA,
		Search:          r.Search,
		Page:            r.Page,
		Limit:           r.Limit,
	}

	if r.Tipologia != nil {
		tipologia := domain.Tipologia(*r.Tipologia)
		filter.Tipologia = &tipologia
	}
	if r.Stato != nil {
		stato := domain.Stato(*r.Stato)
		filter.Stato = &stato
	}

	return filter
}

// Response модели

// PrenotazioneResponse ответ с данными бронирования
type PrenotazioneResponse struct {
	ID                 int64  `json:"id"`
	CodicePrenotazione string `json:"codice_prenotazione"`
	Tipologia          string `json:"tipologia"`

	ClienteID       *int64 `json:"cliente_id,omitempty"`
	TrasportatoreID *int64 `json:"trasportatore_id,omitempty"`

	DataPianificata      string `json:"data_pianificata"`       // "2026-03-15"
	OraInizioPrevista    string `json:"ora_inizio_prevista"`    // "08:00"
	OraFinePrevista      string `json:"ora_fine_prevista"`      // "09:15"
	DurataPrevistaMinuti int    `json:"durata_prevista_minuti"`

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

	PrenotazioneConsegnaCollegata   *int64 `json:"prenotazione_consegna_collegata,omitempty"`
	PrenotazioneProduzioneCollegata *int64 `json:"prenotazione_produzione_collegata,omitempty"`

	TipologiaCarico   *string `json:"tipologia_carico,omitempty"`
	OrdineRiferimento *string `json:"ordine_riferimento,omitempty"`
	DdtRiferimento    *string `json:"ddt_riferimento,omitempty"`

	Stato     string  `json:"stato"`
	Priorita  int     `json:"priorita"`
	Note      *string `json:"note,omitempty"`
	CreatedBy *int64  `json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoricoStatoResponse одна запись журнала статусов
type StoricoStatoResponse struct {
	ID              int64   `json:"id"`
	StatoPrecedente *string `json:"stato_precedente"`
	StatoNuovo      string  `json:"stato_nuovo"`
	TimestampCambio string  `json:"timestamp_cambio"`
	UtenteID        *int64  `json:"utente_id,omitempty"`
	Note            *string `json:"note,omitempty"`
}

// PrenotazioneDettaglioResponse бронирование с историей статусов,
// данными карико (если есть) и множеством допустимых переходов
type PrenotazioneDettaglioResponse struct {
	PrenotazioneResponse

	StoricoStati         []StoricoStatoResponse `json:"storico_stati"`
	DatiCarico           *DatiCaricoResponse    `json:"dati_carico,omitempty"`
	TransizioniPossibili []string               `json:"transizioni_possibili"`
}

// PrenotazioneListResponse страница списка бронирований
type PrenotazioneListResponse struct {
	Prenotazioni []PrenotazioneResponse `json:"prenotazioni"`
	Total        int                    `json:"total"`
	Page         int                    `json:"page"`
	Limit        int                    `json:"limit"`
	TotalPages   int                    `json:"total_pages"`
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

// Методы конвертации

// FromDomainPrenotazione конвертирует domain модель в DTO
func FromDomainPrenotazione(p *domain.Prenotazione) *PrenotazioneResponse {
	if p == nil {
		return nil
	}

	resp := &PrenotazioneResponse{
		ID:                 p.ID,
		CodicePrenotazione: p.CodicePrenotazione,
		Tipologia:          string(p.Tipologia),

		ClienteID:       p.ClienteID,
		TrasportatoreID: p.TrasportatoreID,

		DataPianificata:      p.DataPianificata.Format(domain.DateFormat),
		OraInizioPrevista:    p.OraInizioPrevista.String(),
		OraFinePrevista:      p.OraFinePrevista.String(),
		DurataPrevistaMinuti: p.DurataPrevistaMinuti,

		ProdottoCodice:        p.ProdottoCodice,
		ProdottoDescrizione:   p.ProdottoDescrizione,
		SpecificaW:            p.SpecificaW,
		SpecificaWTolleranza:  p.SpecificaWTolleranza,
		SpecificaPL:           p.SpecificaPL,
		SpecificaPLTolleranza: p.SpecificaPLTolleranza,
		QuantitaPrevista:      p.QuantitaPrevista,
		QuantitaKg:            p.QuantitaKg,

		LottoPrevisto: p.LottoPrevisto,

		SilosOrigine:    p.SilosOrigine,
		LineaProduzione: p.LineaProduzione,

		PrenotazioneConsegnaCollegata:   p.PrenotazioneConsegnaCollegata,
		PrenotazioneProduzioneCollegata: p.PrenotazioneProduzioneCollegata,

		OrdineRiferimento: p.OrdineRiferimento,
		DdtRiferimento:    p.DdtRiferimento,

		Stato:     string(p.Stato),
		Priorita:  p.Priorita,
		Note:      p.Note,
		CreatedBy: p.CreatedBy,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	if p.CategoriaProdotto != nil {
		categoria := string(*p.CategoriaProdotto)
		resp.CategoriaProdotto = &categoria
	}
	if p.UnitaMisura != nil {
		unita := string(*p.UnitaMisura)
		resp.UnitaMisura = &unita
	}
	if p.OrigineMateriale != nil {
		origine := string(*p.OrigineMateriale)
		resp.OrigineMateriale = &origine
	}
	if p.TipologiaCarico != nil {
		carico := string(*p.TipologiaCarico)
		resp.TipologiaCarico = &carico
	}
	if p.LottoScadenza != nil {
		scadenza := p.LottoScadenza.Format(domain.DateFormat)
		resp.LottoScadenza = &scadenza
	}

	return resp
}

// FromDomainPrenotazioneList собирает страницу списка бронирований
func FromDomainPrenotazioneList(prenotazioni []*domain.Prenotazione, total, page, limit int) *PrenotazioneListResponse {
	resp := &PrenotazioneListResponse{
		Prenotazioni: make([]PrenotazioneResponse, 0, len(prenotazioni)),
		Total:        total,
		Page:         page,
		Limit:        limit,
	}

	if limit > 0 {
		resp.TotalPages = (total + limit - 1) / limit
	}

	for _, p := range prenotazioni {
		if dto := FromDomainPrenotazione(p); dto != nil {
			resp.Prenotazioni = append(resp.Prenotazioni, *dto)
		}
	}

	return resp
}

// FromDomainStorico конвертирует журнал статусов в DTO
func FromDomainStorico(entries []*domain.StoricoStato) []StoricoStatoResponse {
	result := make([]StoricoStatoResponse, 0, len(entries))

	for _, entry := range entries {
		dto := StoricoStatoResponse{
			ID:              entry.ID,
			StatoNuovo:      string(entry.StatoNuovo),
			TimestampCambio: entry.TimestampCambio.Format(time.RFC3339),
			UtenteID:        entry.UtenteID,
			Note:            entry.Note,
		}

		if entry.StatoPrecedente != nil {
			precedente := string(*entry.StatoPrecedente)
			dto.StatoPrecedente = &precedente
		}

		result = append(result, dto)
	}

	return result
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

// TransizioniToStrings конвертирует множество допустимых переходов в строки
func TransizioniToStrings(transizioni []domain.Stato) []string {
	result := make([]string, 0, len(transizioni))
	for _, s := range transizioni {
		result = append(result, string(s))
	}
	return result
}
