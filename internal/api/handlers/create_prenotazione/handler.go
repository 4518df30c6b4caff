package create_prenotazione

import (
	"errors"
	"net/http"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/api/middleware"
	createPrenotazione "github.com/molinoferri/MFP-PrenotazioniService/internal/usecase/create_prenotazione"
)

const (
	msgInvalidRequestBody = "corpo della richiesta non valido"
	msgInvalidDateTime    = "formato data o ora non valido, attesi YYYY-MM-DD e HH:MM"
	msgInvalidInput       = "dati della prenotazione non validi"
	msgDataPassata        = "la data pianificata non può essere nel passato"
)

type Handler struct {
	useCase CreatePrenotazioneUseCase
	logger  Logger
}

func NewHandler(useCase CreatePrenotazioneUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/prenotazioni
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePrenotazioneRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /prenotazioni - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var utenteID *int64
	if id, ok := middleware.UtenteIDFromContext(r.Context()); ok {
		utenteID = &id
	}

	useCaseReq, err := req.ToUseCaseRequest(utenteID)
	if err != nil {
		h.logger.Warn("POST /prenotazioni - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createPrenotazione.ErrDataPassata):
			h.logger.Warn("POST /prenotazioni - Data passata: codice=%s, data=%s", req.CodicePrenotazione, req.DataPianificata)
			handlers.RespondBadRequest(w, msgDataPassata)

		case errors.Is(err, createPrenotazione.ErrInvalidInput):
			h.logger.Warn("POST /prenotazioni - Invalid input: codice=%s, error=%v", req.CodicePrenotazione, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /prenotazioni - Failed to create prenotazione: codice=%s, error=%v",
				req.CodicePrenotazione, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /prenotazioni - Prenotazione created: id=%d, codice=%s", result.ID, result.CodicePrenotazione)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
