package transizione_stato

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/api/middleware"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni/models"
	transizioneStato "github.com/molinoferri/MFP-PrenotazioniService/internal/usecase/transizione_stato"
)

const (
	msgInvalidID            = "identificativo prenotazione non valido"
	msgInvalidRequestBody   = "corpo della richiesta non valido"
	msgNotFound             = "prenotazione non trovata"
	msgTransizioneNonValida = "transizione di stato non consentita"
	msgNoteAnnullamento     = "le note sono obbligatorie per l'annullamento"
	msgUsaRegistrazione     = "lo stato caricato si raggiunge solo registrando i dati di carico"
	msgConflitto            = "la prenotazione è stata modificata da un'operazione concorrente, riprovare"
	msgInvalidInput         = "dati della transizione non validi"
)

type Handler struct {
	useCase TransizioneStatoUseCase
	logger  Logger
}

func NewHandler(useCase TransizioneStatoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/prenotazioni/{id}/stato
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /prenotazioni/{id}/stato - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req TransizioneStatoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /prenotazioni/{id}/stato - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var utenteID *int64
	if uid, ok := middleware.UtenteIDFromContext(r.Context()); ok {
		utenteID = &uid
	}

	result, err := h.useCase.Execute(r.Context(), &transizioneStato.Request{
		PrenotazioneID: id,
		NuovoStato:     req.NuovoStato,
		Note:           req.Note,
		UtenteID:       utenteID,
	})
	if err != nil {
		h.respondError(w, id, req.NuovoStato, err)
		return
	}

	h.logger.Info("PATCH /prenotazioni/{id}/stato - Transitioned: id=%d, stato=%s", id, result.Stato)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, id int64, nuovoStato string, err error) {
	var transizioneErr *transizioneStato.TransizioneNonValidaError

	switch {
	case errors.Is(err, transizioneStato.ErrPrenotazioneNotFound):
		h.logger.Warn("PATCH /prenotazioni/{id}/stato - Prenotazione not found: id=%d", id)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.As(err, &transizioneErr):
		h.logger.Warn("PATCH /prenotazioni/{id}/stato - Invalid transition: id=%d, %s -> %s",
			id, transizioneErr.StatoAttuale, transizioneErr.StatoRichiesto)
		handlers.RespondJSON(w, http.StatusConflict, TransizioneNonValidaResponse{
			Error:                msgTransizioneNonValida,
			StatoAttuale:         string(transizioneErr.StatoAttuale),
			StatoRichiesto:       string(transizioneErr.StatoRichiesto),
			TransizioniPossibili: models.TransizioniToStrings(transizioneErr.TransizioniPossibili),
		})

	case errors.Is(err, transizioneStato.ErrNoteAnnullamentoRichieste):
		h.logger.Warn("PATCH /prenotazioni/{id}/stato - Note annullamento mancanti: id=%d", id)
		handlers.RespondBadRequest(w, msgNoteAnnullamento)

	case errors.Is(err, transizioneStato.ErrUsaRegistrazioneCarico):
		h.logger.Warn("PATCH /prenotazioni/{id}/stato - Direct caricato rejected: id=%d", id)
		handlers.RespondConflict(w, msgUsaRegistrazione)

	case errors.Is(err, transizioneStato.ErrConflitto):
		h.logger.Warn("PATCH /prenotazioni/{id}/stato - Concurrent conflict: id=%d", id)
		handlers.RespondConflict(w, msgConflitto)

	case errors.Is(err, transizioneStato.ErrInvalidInput):
		h.logger.Warn("PATCH /prenotazioni/{id}/stato - Invalid input: id=%d, stato=%s", id, nuovoStato)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("PATCH /prenotazioni/{id}/stato - Failed to transition: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
	}
}
