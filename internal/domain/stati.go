package domain

// Stato represents the lifecycle state of a booking, scoped by tipologia
type Stato string

const (
	StatoPianificato   Stato = "pianificato"
	StatoPresoInCarico Stato = "preso_in_carico"

	// Production only
	StatoInProduzione Stato = "in_produzione"
	StatoCompletato   Stato = "completato"

	// Delivery only
	StatoInPreparazione Stato = "in_preparazione"
	StatoProntoCarico   Stato = "pronto_carico"
	StatoInCarico       Stato = "in_carico"
	StatoCaricato       Stato = "caricato"
	StatoPartito        Stato = "partito"

	StatoAnnullato Stato = "annullato"
)

// The two transition graphs are plain data: state -> legal next states.
// A state with an empty out-edge set is terminal.

var transizioniProduzione = map[Stato][]Stato{
	StatoPianificato:   {StatoPresoInCarico, StatoAnnullato},
	StatoPresoInCarico: {StatoInProduzione, StatoAnnullato},
	StatoInProduzione:  {StatoCompletato},
	StatoCompletato:    {},
	StatoAnnullato:     {},
}

var transizioniConsegna = map[Stato][]Stato{
	StatoPianificato:    {StatoPresoInCarico, StatoAnnullato},
	StatoPresoInCarico:  {StatoInPreparazione, StatoAnnullato},
	StatoInPreparazione: {StatoProntoCarico, StatoAnnullato},
	StatoProntoCarico:   {StatoInCarico, StatoAnnullato},
	StatoInCarico:       {StatoCaricato},
	StatoCaricato:       {StatoPartito},
	StatoPartito:        {},
	StatoAnnullato:      {},
}

// StatoIniziale returns the state every booking starts in
func StatoIniziale() Stato {
	return StatoPianificato
}

// IsTransizioneValida returns true iff nuovo is a legal next state from
// attuale in the graph of the given tipologia. An unknown attuale state
// permits no transition at all.
func IsTransizioneValida(tipologia Tipologia, attuale, nuovo Stato) bool {
	for _, s := range TransizioniPossibili(tipologia, attuale) {
		if s == nuovo {
			return true
		}
	}
	return false
}

// TransizioniPossibili returns the legal next states from attuale for the
// given tipologia. Unknown states yield an empty set. The returned slice is
// a copy; the underlying tables are never exposed.
func TransizioniPossibili(tipologia Tipologia, attuale Stato) []Stato {
	edges := grafoPerTipologia(tipologia)[attuale]

	result := make([]Stato, len(edges))
	copy(result, edges)
	return result
}

// IsStatoFinale returns true if stato has no outgoing transitions for the
// given tipologia
func IsStatoFinale(tipologia Tipologia, stato Stato) bool {
	edges, ok := grafoPerTipologia(tipologia)[stato]
	return ok && len(edges) == 0
}

// IsStatoValido returns true if stato belongs to the legal state set of the
// given tipologia
func IsStatoValido(tipologia Tipologia, stato Stato) bool {
	_, ok := grafoPerTipologia(tipologia)[stato]
	return ok
}

// RichiedeNoteAnnullamento returns true if moving to nuovo requires a
// mandatory justification note, regardless of tipologia
func RichiedeNoteAnnullamento(nuovo Stato) bool {
	return nuovo == StatoAnnullato
}

// RichiedeDatiCarico returns true if nuovo may only be reached by recording
// load-completion data (the recorder drives this transition itself)
func RichiedeDatiCarico(nuovo Stato) bool {
	return nuovo == StatoCaricato
}

func grafoPerTipologia(tipologia Tipologia) map[Stato][]Stato {
	if tipologia == TipologiaProduzione {
		return transizioniProduzione
	}
	return transizioniConsegna
}
