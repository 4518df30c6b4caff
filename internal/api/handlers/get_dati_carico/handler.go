package get_dati_carico

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/daticarico"
)

const (
	msgInvalidID            = "identificativo prenotazione non valido"
	msgPrenotazioneNotFound = "prenotazione non trovata"
	msgDatiCaricoNotFound   = "dati di carico non registrati per questa prenotazione"
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

// Handle GET /api/v1/prenotazioni/{id}/dati-carico
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /prenotazioni/{id}/dati-carico - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetByPrenotazioneID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, daticarico.ErrPrenotazioneNotFound):
			h.logger.Warn("GET /prenotazioni/{id}/dati-carico - Prenotazione not found: id=%d", id)
			handlers.RespondNotFound(w, msgPrenotazioneNotFound)

		case errors.Is(err, daticarico.ErrDatiCaricoNotFound):
			h.logger.Warn("GET /prenotazioni/{id}/dati-carico - Dati carico not found: id=%d", id)
			handlers.RespondNotFound(w, msgDatiCaricoNotFound)

		default:
			h.logger.Error("GET /prenotazioni/{id}/dati-carico - Failed to get dati carico: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /prenotazioni/{id}/dati-carico - Dati carico retrieved: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
