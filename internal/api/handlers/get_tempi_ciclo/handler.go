package get_tempi_ciclo

import (
	"net/http"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers"
)

type Handler struct {
	service TempiCicloService
	logger  Logger
}

func NewHandler(service TempiCicloService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tempi-ciclo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /tempi-ciclo - Failed to list configurazioni: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tempi-ciclo - Listed %d configurazioni", len(result.Configurazioni))
	handlers.RespondJSON(w, http.StatusOK, result)
}
