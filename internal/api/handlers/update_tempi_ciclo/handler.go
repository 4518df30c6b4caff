package update_tempi_ciclo

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/tempiciclo"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/tempiciclo/models"
)

const (
	msgInvalidRequestBody = "corpo della richiesta non valido"
	msgNotFound           = "configurazione non trovata per la categoria indicata"
	msgInvalidInput       = "parametri della configurazione non validi"
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

// Handle PATCH /api/v1/tempi-ciclo/{categoria}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoria := domain.CategoriaProdotto(vars["categoria"])

	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tempi-ciclo/{categoria} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), categoria, &req)
	if err != nil {
		switch {
		case errors.Is(err, tempiciclo.ErrConfigNotFound):
			h.logger.Warn("PATCH /tempi-ciclo/{categoria} - Config not found: categoria=%s", categoria)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tempiciclo.ErrInvalidInput):
			h.logger.Warn("PATCH /tempi-ciclo/{categoria} - Invalid input: categoria=%s, error=%v", categoria, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /tempi-ciclo/{categoria} - Failed to update config: categoria=%s, error=%v",
				categoria, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tempi-ciclo/{categoria} - Config updated: categoria=%s", categoria)
	handlers.RespondJSON(w, http.StatusOK, result)
}
