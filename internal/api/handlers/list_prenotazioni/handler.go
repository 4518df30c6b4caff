package list_prenotazioni

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/domain"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni/models"
)

const (
	msgInvalidFilter = "parametri di filtro non validi"
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

// Handle GET /api/v1/prenotazioni
// Фильтры: tipologia, stato, cliente_id, trasportatore_id, data_da, data_a,
// search, page, limit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /prenotazioni - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, prenotazioni.ErrInvalidInput):
			h.logger.Warn("GET /prenotazioni - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /prenotazioni - Failed to list prenotazioni: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /prenotazioni - Listed %d of %d prenotazioni (page=%d)",
		len(result.Prenotazioni), result.Total, result.Page)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(r *http.Request) (*models.ListPrenotazioniRequest, error) {
	q := r.URL.Query()
	req := &models.ListPrenotazioniRequest{}

	if v := q.Get("tipologia"); v != "" {
		req.Tipologia = &v
	}
	if v := q.Get("stato"); v != "" {
		req.Stato = &v
	}
	if v := q.Get("search"); v != "" {
		req.Search = &v
	}

	if v := q.Get("cliente_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ClienteID = &id
	}
	if v := q.Get("trasportatore_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.TrasportatoreID = &id
	}

	if v := q.Get("data_da"); v != "" {
		data, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.DataDa = &data
	}
	if v := q.Get("data_a"); v != "" {
		data, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.DataA = &data
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.Page = page
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}

	return req, nil
}
