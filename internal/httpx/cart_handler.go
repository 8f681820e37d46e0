package httpx

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ariefcatur/larana-store/internal/cart"
	"github.com/ariefcatur/larana-store/internal/checkout"
	"github.com/ariefcatur/larana-store/internal/orders"
	"github.com/go-chi/chi/v5"
)

// CartHandler serves the per-client cart, checkout and order confirmation.
type CartHandler struct {
	Carts    *cart.Service
	Checkout *checkout.Service
	Orders   *orders.Store
}

// HeaderCartCleared is set to "false" on a checkout response whose order was
// stored while the cart could not be emptied.
const HeaderCartCleared = "X-Cart-Cleared"

type AddItemReq struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityReq struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(ClientID)
		r.Get("/cart", h.get)
		r.Post("/cart/items", h.add)
		r.Put("/cart/items/{productID}", h.update)
		r.Delete("/cart/items/{productID}", h.remove)
		r.Delete("/cart", h.clear)
		r.Post("/checkout", h.checkout)
	})
	r.Get("/orders/{id}", h.getOrder)
}

func (h *CartHandler) get(w http.ResponseWriter, r *http.Request) {
	v, err := h.Carts.Get(r.Context(), clientIDFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *CartHandler) add(w http.ResponseWriter, r *http.Request) {
	req := AddItemReq{Quantity: 1}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		writeMessage(w, http.StatusBadRequest, "missing productId")
		return
	}
	v, err := h.Carts.Add(r.Context(), clientIDFrom(r.Context()), req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *CartHandler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityReq
	if !decodeJSON(w, r, &req) {
		return
	}
	v, err := h.Carts.UpdateQuantity(r.Context(), clientIDFrom(r.Context()), chi.URLParam(r, "productID"), req.Quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *CartHandler) remove(w http.ResponseWriter, r *http.Request) {
	v, err := h.Carts.Remove(r.Context(), clientIDFrom(r.Context()), chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *CartHandler) clear(w http.ResponseWriter, r *http.Request) {
	v, err := h.Carts.Clear(r.Context(), clientIDFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *CartHandler) checkout(w http.ResponseWriter, r *http.Request) {
	form := checkout.NewForm()
	if !decodeJSON(w, r, &form) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	o, err := h.Checkout.Checkout(ctx, clientIDFrom(r.Context()), form)
	if errors.Is(err, checkout.ErrCartNotCleared) {
		w.Header().Set(HeaderCartCleared, "false")
		err = nil
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *CartHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, ok, err := h.Orders.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		writeMessage(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, o)
}
