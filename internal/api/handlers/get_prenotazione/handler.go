package get_prenotazione

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni"
)

const (
	msgInvalidID = "identificativo prenotazione non valido"
	msgNotFound  = "prenotazione non trovata"
)

type Handler struct {
	service PrenotazioniService
	logger  Logger
}

func NewHandler(service PrenotazioniService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/prenotazioni/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /prenotazioni/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, prenotazioni.ErrPrenotazioneNotFound):
			h.logger.Warn("GET /prenotazioni/{id} - Prenotazione not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /prenotazioni/{id} - Failed to get prenotazione: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /prenotazioni/{id} - Prenotazione retrieved: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
