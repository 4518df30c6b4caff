package registra_carico

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/api/middleware"
	registraCarico "github.com/molinoferri/MFP-PrenotazioniService/internal/usecase/registra_carico"
)

const (
	msgInvalidID          = "identificativo prenotazione non valido"
	msgInvalidRequestBody = "corpo della richiesta non valido"
	msgInvalidDateTime    = "formato data o ora non valido, attesi YYYY-MM-DD e HH:MM"
	msgNotFound           = "prenotazione non trovata"
	msgSoloConsegna       = "i dati di carico si registrano solo per le prenotazioni di consegna"
	msgStatoNonInCarico   = "la prenotazione deve essere in stato in_carico"
	msgGiaRegistrati      = "i dati di carico sono già stati registrati per questa prenotazione"
	msgConflitto          = "la prenotazione è stata modificata da un'operazione concorrente, riprovare"
	msgNoteIdoneita       = "le note di idoneità sono obbligatorie quando il trasporto non è idoneo"
	msgInvalidInput       = "dati di carico non validi"
)

type Handler struct {
	useCase RegistraCaricoUseCase
	logger  Logger
}

func NewHandler(useCase RegistraCaricoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/prenotazioni/{id}/dati-carico
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /prenotazioni/{id}/dati-carico - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req RegistraCaricoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /prenotazioni/{id}/dati-carico - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var utenteID *int64
	if uid, ok := middleware.UtenteIDFromContext(r.Context()); ok {
		utenteID = &uid
	}

	useCaseReq, err := req.ToUseCaseRequest(id, utenteID)
	if err != nil {
		h.logger.Warn("POST /prenotazioni/{id}/dati-carico - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, registraCarico.ErrPrenotazioneNotFound):
			h.logger.Warn("POST /prenotazioni/{id}/dati-carico - Prenotazione not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, registraCarico.ErrSoloConsegna):
			h.logger.Warn("POST /prenotazioni/{id}/dati-carico - Not a consegna: id=%d", id)
			handlers.RespondConflict(w, msgSoloConsegna)

		case errors.Is(err, registraCarico.ErrStatoNonInCarico):
			h.logger.Warn("POST /prenotazioni/{id}/dati-carico - Not in_carico: id=%d", id)
			handlers.RespondConflict(w, msgStatoNonInCarico)

		case errors.Is(err, registraCarico.ErrDatiCaricoEsistenti):
			h.logger.Warn("POST /prenotazioni/{id}/dati-carico - Already registered: id=%d", id)
			handlers.RespondConflict(w, msgGiaRegistrati)

		case errors.Is(err, registraCarico.ErrConflitto):
			h.logger.Warn("POST /prenotazioni/{id}/dati-carico - Concurrent conflict: id=%d", id)
			handlers.RespondConflict(w, msgConflitto)

		case errors.Is(err, registraCarico.ErrIdoneitaNoteRichieste):
			h.logger.Warn("POST /prenotazioni/{id}/dati-carico - Idoneita note mancanti: id=%d", id)
			handlers.RespondBadRequest(w, msgNoteIdoneita)

		case errors.Is(err, registraCarico.ErrInvalidInput):
			h.logger.Warn("POST /prenotazioni/{id}/dati-carico - Invalid input: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /prenotazioni/{id}/dati-carico - Failed to register: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /prenotazioni/{id}/dati-carico - Dati carico registered: id=%d, stato=%s", id, result.Stato)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
