package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Priority bounds
const (
	PrioritaMin     = 1
	PrioritaMax     = 10
	PrioritaDefault = 5
)

// Business validation constants
const (
	MaxNoteLength = 500
)

// Audit trail notes written by the system itself
const (
	NoteCreazione            = "Prenotazione creata"
	NoteDatiCaricoRegistrati = "Dati carico registrati"
)
