package delete_prenotazione

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni"
)

const (
	msgInvalidID      = "identificativo prenotazione non valido"
	msgNotFound       = "prenotazione non trovata"
	msgNonEliminabile = "solo le prenotazioni in stato pianificato possono essere eliminate"
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

// Handle DELETE /api/v1/prenotazioni/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /prenotazioni/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, prenotazioni.ErrPrenotazioneNotFound):
			h.logger.Warn("DELETE /prenotazioni/{id} - Prenotazione not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, prenotazioni.ErrSoloPianificatoEliminabile):
			h.logger.Warn("DELETE /prenotazioni/{id} - Cannot delete: id=%d", id)
			handlers.RespondConflict(w, msgNonEliminabile)

		default:
			h.logger.Error("DELETE /prenotazioni/{id} - Failed to delete prenotazione: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /prenotazioni/{id} - Prenotazione deleted: id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
