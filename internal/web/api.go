// Package web exposes the cart over HTTP. Each cart request maps to one
// store call followed by a fresh render of the cart.
package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/storefront-cart/internal/cart"
	"github.com/nikolayk812/storefront-cart/internal/countdown"
	"github.com/nikolayk812/storefront-cart/internal/render"
	"go.uber.org/zap"
)

type API struct {
	store     *cart.Store
	renderer  *render.Renderer
	sale      *countdown.Sale
	logger    *zap.Logger
	validator *validator.Validate
}

type Dependencies struct {
	Store    *cart.Store
	Renderer *render.Renderer
	Sale     *countdown.Sale
	Logger   *zap.Logger
}

func NewAPI(deps Dependencies) (*API, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("store is nil")
	}

	a := &API{
		store:     deps.Store,
		renderer:  deps.Renderer,
		sale:      deps.Sale,
		logger:    deps.Logger,
		validator: validator.New(),
	}
	if a.renderer == nil {
		a.renderer = render.New()
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}

	return a, nil
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.requestLogger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(cr chi.Router) {
		cr.Use(a.session)

		cr.Get("/cart", a.handleGetCart)
		cr.Post("/cart/items", a.handleAddItem)
		cr.Put("/cart/items/{index}", a.handleUpdateQuantity)
		cr.Delete("/cart/items/{index}", a.handleRemoveItem)
		cr.Post("/checkout", a.handleCheckout)
	})

	r.Post("/account/login", a.handleLogin)
	r.Post("/account/register", a.handleRegister)
	r.Get("/sale/countdown", a.handleCountdown)

	return r
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// maxBodyBytes caps JSON and form request bodies alike.
const maxBodyBytes = 64 << 10

// readFields collects request values from a JSON object body or a form body
// as the strings a browser would submit.
func readFields(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	fields := map[string]string{}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		defer r.Body.Close()

		var body map[string]any
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			return nil, fmt.Errorf("dec.Decode: %w", err)
		}

		for k, v := range body {
			fields[k] = fieldText(v)
		}
		return fields, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("r.ParseForm: %w", err)
	}
	for k := range r.PostForm {
		fields[k] = r.PostForm.Get(k)
	}

	return fields, nil
}

func fieldText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "1"
		}
		return ""
	default:
		return ""
	}
}

// indexParam returns -1 for anything that is not an integer, which every
// store operation treats as out of range.
func indexParam(r *http.Request) int {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return -1
	}
	return i
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
