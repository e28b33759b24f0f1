package web

import (
	"context"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-cart/internal/cart"
	"go.uber.org/zap"
)

const sessionCookie = "cart_session"

type ctxKey string

const ctxKeyStore ctxKey = "cart_store"

// session binds the request to the cart of its browser session, issuing a
// new session cookie when the request has no usable one.
func (a *API) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(sessionCookie); err == nil && a.validator.Var(c.Value, "uuid4") == nil {
			id = c.Value
		}

		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), ctxKeyStore, a.store.Session(id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *API) cartStore(r *http.Request) *cart.Store {
	if s, ok := r.Context().Value(ctxKeyStore).(*cart.Store); ok {
		return s
	}
	return a.store
}

func (a *API) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		a.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", chimw.GetReqID(r.Context())))
	})
}
