package web

import (
	"net/http"

	"github.com/nikolayk812/storefront-cart/internal/render"
	"go.uber.org/zap"
)

const checkoutMessage = "Payment processed successfully"

type checkoutResponse struct {
	Message string              `json:"message"`
	Cart    render.DisplayModel `json:"cart"`
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	a.respondCart(w, r, http.StatusOK)
}

func (a *API) handleAddItem(w http.ResponseWriter, r *http.Request) {
	fields, err := readFields(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	store := a.cartStore(r)
	if err := store.Add(r.Context(), fields["name"], fields["price"]); err != nil {
		a.logger.Error("add to cart",
			zap.String("key", store.Key()),
			zap.Error(err))
		respondError(w, http.StatusInternalServerError, "cart is unavailable")
		return
	}

	a.logger.Debug("added to cart",
		zap.String("key", store.Key()),
		zap.String("name", fields["name"]))

	a.respondCart(w, r, http.StatusOK)
}

func (a *API) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	fields, err := readFields(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	index := indexParam(r)
	store := a.cartStore(r)
	if err := store.UpdateQuantity(r.Context(), index, fields["qty"]); err != nil {
		a.logger.Error("update cart quantity",
			zap.String("key", store.Key()),
			zap.Int("index", index),
			zap.Error(err))
		respondError(w, http.StatusInternalServerError, "cart is unavailable")
		return
	}

	a.logger.Debug("updated cart quantity",
		zap.String("key", store.Key()),
		zap.Int("index", index),
		zap.String("qty", fields["qty"]))

	a.respondCart(w, r, http.StatusOK)
}

func (a *API) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	index := indexParam(r)
	store := a.cartStore(r)
	if err := store.Remove(r.Context(), index); err != nil {
		a.logger.Error("remove from cart",
			zap.String("key", store.Key()),
			zap.Int("index", index),
			zap.Error(err))
		respondError(w, http.StatusInternalServerError, "cart is unavailable")
		return
	}

	a.logger.Debug("removed from cart",
		zap.String("key", store.Key()),
		zap.Int("index", index))

	a.respondCart(w, r, http.StatusOK)
}

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	store := a.cartStore(r)
	if err := store.Clear(r.Context()); err != nil {
		a.logger.Error("checkout",
			zap.String("key", store.Key()),
			zap.Error(err))
		respondError(w, http.StatusInternalServerError, "cart is unavailable")
		return
	}

	a.logger.Info("checkout completed", zap.String("key", store.Key()))

	if wantsHTML(r) {
		w.Header().Set("X-Storefront-Message", checkoutMessage)
		a.respondCart(w, r, http.StatusOK)
		return
	}

	model, ok := a.renderCurrent(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, checkoutResponse{Message: checkoutMessage, Cart: model})
}

// respondCart renders the session cart as JSON, or as table rows when the
// client accepts HTML.
func (a *API) respondCart(w http.ResponseWriter, r *http.Request, status int) {
	model, ok := a.renderCurrent(w, r)
	if !ok {
		return
	}

	if wantsHTML(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if err := render.HTML(w, model); err != nil {
			a.logger.Error("write cart html", zap.Error(err))
		}
		return
	}

	writeJSON(w, status, model)
}

func (a *API) renderCurrent(w http.ResponseWriter, r *http.Request) (render.DisplayModel, bool) {
	store := a.cartStore(r)

	c, err := store.Load(r.Context())
	if err != nil {
		a.logger.Error("load cart",
			zap.String("key", store.Key()),
			zap.Error(err))
		respondError(w, http.StatusInternalServerError, "cart is unavailable")
		return render.DisplayModel{}, false
	}

	return a.renderer.Render(c), true
}
