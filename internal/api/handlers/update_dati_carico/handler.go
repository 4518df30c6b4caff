package update_dati_carico

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/daticarico"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/daticarico/models"
)

const (
	msgInvalidID          = "identificativo prenotazione non valido"
	msgInvalidRequestBody = "corpo della richiesta non valido"
	msgNotFound           = "dati di carico non registrati per questa prenotazione"
	msgNoteIdoneita       = "le note di idoneità sono obbligatorie quando il trasporto non è idoneo"
	msgInvalidInput       = "dati di carico non validi"
)

type Handler struct {
	service DatiCaricoService
	logger  Logger
}

func NewHandler(service DatiCaricoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/prenotazioni/{id}/dati-carico
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /prenotazioni/{id}/dati-carico - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateDatiCaricoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /prenotazioni/{id}/dati-carico - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, daticarico.ErrDatiCaricoNotFound):
			h.logger.Warn("PATCH /prenotazioni/{id}/dati-carico - Dati carico not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, daticarico.ErrIdoneitaNoteRichieste):
			h.logger.Warn("PATCH /prenotazioni/{id}/dati-carico - Idoneita note mancanti: id=%d", id)
			handlers.RespondBadRequest(w, msgNoteIdoneita)

		case errors.Is(err, daticarico.ErrInvalidInput):
			h.logger.Warn("PATCH /prenotazioni/{id}/dati-carico - Invalid input: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /prenotazioni/{id}/dati-carico - Failed to update: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /prenotazioni/{id}/dati-carico - Dati carico updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
