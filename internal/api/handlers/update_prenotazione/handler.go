package update_prenotazione

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers"
	updatePrenotazione "github.com/molinoferri/MFP-PrenotazioniService/internal/usecase/update_prenotazione"
)

const (
	msgInvalidID          = "identificativo prenotazione non valido"
	msgInvalidRequestBody = "corpo della richiesta non valido"
	msgInvalidDateTime    = "formato data o ora non valido, attesi YYYY-MM-DD e HH:MM"
	msgNotFound           = "prenotazione non trovata"
	msgStatoFinale        = "la prenotazione è in uno stato finale e non può essere modificata"
	msgDataPassata        = "la data pianificata non può essere nel passato"
	msgInvalidInput       = "dati della prenotazione non validi"
)

type Handler struct {
	useCase UpdatePrenotazioneUseCase
	logger  Logger
}

func NewHandler(useCase UpdatePrenotazioneUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/prenotazioni/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /prenotazioni/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdatePrenotazioneRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /prenotazioni/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PATCH /prenotazioni/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updatePrenotazione.ErrPrenotazioneNotFound):
			h.logger.Warn("PATCH /prenotazioni/{id} - Prenotazione not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updatePrenotazione.ErrStatoFinale):
			h.logger.Warn("PATCH /prenotazioni/{id} - Stato finale: id=%d", id)
			handlers.RespondConflict(w, msgStatoFinale)

		case errors.Is(err, updatePrenotazione.ErrDataPassata):
			h.logger.Warn("PATCH /prenotazioni/{id} - Data passata: id=%d", id)
			handlers.RespondBadRequest(w, msgDataPassata)

		case errors.Is(err, updatePrenotazione.ErrInvalidInput):
			h.logger.Warn("PATCH /prenotazioni/{id} - Invalid input: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /prenotazioni/{id} - Failed to update prenotazione: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /prenotazioni/{id} - Prenotazione updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
