package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers"
)

type contextKey string

const (
	utenteIDKey       contextKey = "utente_id"
	livelloAccessoKey contextKey = "livello_accesso"
)

// Заголовки аутентификации, проставляемые API gateway
const (
	HeaderUtenteID       = "X-User-ID"
	HeaderLivelloAccesso = "X-Livello-Accesso"
)

// LivelloModifica уровень доступа, дающий право на изменяющие операции
const LivelloModifica = "modifica"

// Auth проверяет наличие X-User-ID и кладет идентификатор пользователя
// и уровень доступа в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utenteIDStr := r.Header.Get(HeaderUtenteID)
		if utenteIDStr == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "autenticazione richiesta")
			return
		}

		utenteID, err := strconv.ParseInt(utenteIDStr, 10, 64)
		if err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, "identificativo utente non valido")
			return
		}

		ctx := context.WithValue(r.Context(), utenteIDKey, utenteID)
		ctx = context.WithValue(ctx, livelloAccessoKey, r.Header.Get(HeaderLivelloAccesso))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireModifica пропускает только пользователей с уровнем доступа modifica
// Используется на изменяющих маршрутах
func RequireModifica(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		livello, _ := r.Context().Value(livelloAccessoKey).(string)
		if livello != LivelloModifica {
			handlers.RespondForbidden(w, "operazione riservata agli utenti con livello modifica")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// UtenteIDFromContext возвращает идентификатор пользователя из контекста
func UtenteIDFromContext(ctx context.Context) (int64, bool) {
	utenteID, ok := ctx.Value(utenteIDKey).(int64)
	return utenteID, ok
}
