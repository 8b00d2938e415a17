package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/logging"
	"github.com/dmitrijs2005/userconsole/internal/server/auth"
)

type ctxKey struct{}

func withIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFrom returns the identity attached by the session middleware.
func IdentityFrom(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(auth.Identity)
	return id, ok
}

func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const op = "httpapi.requireSession"
		log := h.logger(r, op)

		ck, err := r.Cookie(h.cookieName)
		if err != nil || ck.Value == "" {
			log.Debug(r.Context(), "missing session cookie")
			writeMessage(w, r, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		id, err := h.svc.Session(r.Context(), ck.Value)
		if err != nil {
			status, msg := statusOf(err)
			log.Debug(r.Context(), "session rejected", logging.Err(err))
			writeMessage(w, r, status, msg)
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), id)))
	})
}

func (h *Handler) sessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *Handler) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
