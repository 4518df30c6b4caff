package domain

import "time"

// StoricoStato is one append-only audit trail entry. One entry is written
// for every transition, including the initial pianificato state at creation
// (StatoPrecedente is nil only for that creation event). Entries are never
// mutated or deleted.
type StoricoStato struct {
	ID              int64
	PrenotazioneID  int64
	StatoPrecedente *Stato
	StatoNuovo      Stato
	TimestampCambio time.Time
	UtenteID        *int64
	Note            *string
}
