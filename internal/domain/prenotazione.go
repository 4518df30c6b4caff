package domain

import (
	"time"

	"github.com/molinoferri/MFP-PrenotazioniService/pkg/types"
)

// Tipologia represents the kind of booking
type Tipologia string

const (
	TipologiaProduzione Tipologia = "produzione"
	TipologiaConsegna   Tipologia = "consegna"
)

// IsValid returns true if the tipologia is one of the known kinds
func (t Tipologia) IsValid() bool {
	return t == TipologiaProduzione || t == TipologiaConsegna
}

// CategoriaProdotto represents the product category driving cycle times
type CategoriaProdotto string

const (
	CategoriaRinfusa           CategoriaProdotto = "rinfusa"
	CategoriaConfezionatoSilos CategoriaProdotto = "confezionato_silos"
	CategoriaConfezionatoSacco CategoriaProdotto = "confezionato_sacco"
)

// UnitaMisura represents the unit of measure of the planned quantity
type UnitaMisura string

const (
	UnitaKg     UnitaMisura = "kg"
	UnitaTon    UnitaMisura = "ton"
	UnitaSacchi UnitaMisura = "sacchi"
	UnitaPallet UnitaMisura = "pallet"
)

// TipologiaCarico represents how the load is physically packaged
type TipologiaCarico string

const (
	CaricoBigBag   TipologiaCarico = "big_bag"
	CaricoSacchi   TipologiaCarico = "sacchi"
	CaricoCisterna TipologiaCarico = "cisterna"
	CaricoPallet   TipologiaCarico = "pallet"
)

// OrigineMateriale represents where the material is drawn from
type OrigineMateriale string

const (
	OrigineSilos  OrigineMateriale = "silos"
	OrigineSacco  OrigineMateriale = "sacco"
	OrigineBigBag OrigineMateriale = "big_bag"
)

// Prenotazione represents a scheduled production run or delivery,
// the central entity of the system
type Prenotazione struct {
	ID                 int64
	CodicePrenotazione string
	Tipologia          Tipologia

	ClienteID       *int64
	TrasportatoreID *int64

	DataPianificata      time.Time
	OraInizioPrevista    types.TimeString
	OraFinePrevista      types.TimeString
	DurataPrevistaMinuti int

	ProdottoCodice        *string
	ProdottoDescrizione   *string
	CategoriaProdotto     *CategoriaProdotto
	SpecificaW            *float64
	SpecificaWTolleranza  *float64
	SpecificaPL           *float64
	SpecificaPLTolleranza *float64
	QuantitaPrevista      *float64
	UnitaMisura           *UnitaMisura
	QuantitaKg            *float64

	LottoPrevisto *string
	LottoScadenza *time.Time

	OrigineMateriale *OrigineMateriale
	SilosOrigine     *string
	LineaProduzione  *string

	PrenotazioneConsegnaCollegata   *int64
	PrenotazioneProduzioneCollegata *int64

	TipologiaCarico   *TipologiaCarico
	OrdineRiferimento *string
	DdtRiferimento    *string

	Stato     Stato
	Priorita  int
	Note      *string
	CreatedBy *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsStatoFinale returns true if the booking is in a terminal state
// for its tipologia
func (p *Prenotazione) IsStatoFinale() bool {
	return IsStatoFinale(p.Tipologia, p.Stato)
}

// CanBeUpdated returns true if field edits are still allowed
func (p *Prenotazione) CanBeUpdated() bool {
	return !p.IsStatoFinale()
}

// CanBeDeleted returns true if the booking may be physically deleted
// Only bookings that were never actioned may be deleted
func (p *Prenotazione) CanBeDeleted() bool {
	return p.Stato == StatoPianificato
}

// TransizioniPossibili returns the legal next states from the current state
func (p *Prenotazione) TransizioniPossibili() []Stato {
	return TransizioniPossibili(p.Tipologia, p.Stato)
}

// PrenotazioniFilter фильтр для выборки списка бронирований
// Все поля кроме пагинации опциональны
type PrenotazioniFilter struct {
	Tipologia       *Tipologia
	Stato           *Stato
	ClienteID       *int64
	TrasportatoreID *int64
	DataDa          *time.Time // Начало периода (опционально)
	DataA           *time.Time // Конец периода (опционально)
	Search          *string    // Поиск по коду и описанию продукта
	Page            int
	Limit           int
}
