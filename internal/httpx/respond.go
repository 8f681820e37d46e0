package httpx

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ariefcatur/larana-store/internal/booking"
	"github.com/ariefcatur/larana-store/internal/catalog"
	"github.com/ariefcatur/larana-store/internal/checkout"
	"github.com/ariefcatur/larana-store/internal/customers"
	"github.com/ariefcatur/larana-store/internal/orders"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// writeError maps domain errors to HTTP status codes.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *checkout.ValidationError
	var berr *booking.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "validation failed", "fields": verr.Fields})
	case errors.As(err, &berr):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "validation failed", "fields": berr.Fields})
	case errors.Is(err, checkout.ErrEmptyCart):
		writeMessage(w, http.StatusConflict, "cart is empty")
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, orders.ErrOrderNotFound),
		errors.Is(err, customers.ErrCustomerNotFound):
		writeMessage(w, http.StatusNotFound, "not found")
	case errors.Is(err, orders.ErrInvalidStatus), errors.Is(err, catalog.ErrInvalidProduct):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, orders.ErrIllegalTransition), errors.Is(err, catalog.ErrProductExists):
		writeMessage(w, http.StatusConflict, err.Error())
	default:
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}
