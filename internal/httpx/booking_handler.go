package httpx

import (
	"net/http"

	"github.com/ariefcatur/larana-store/internal/booking"
	"github.com/ariefcatur/larana-store/internal/team"
	"github.com/go-chi/chi/v5"
)

// BookingHandler serves appointment requests and the About page team.
type BookingHandler struct {
	Bookings *booking.Book
}

type BookingOptions struct {
	Services  []string `json:"services"`
	TimeSlots []string `json:"timeSlots"`
}

type BookingResp struct {
	Booking      booking.Booking      `json:"booking"`
	Confirmation booking.Confirmation `json:"confirmation"`
}

func (h *BookingHandler) Register(r chi.Router) {
	r.Get("/bookings/options", h.options)
	r.Post("/bookings", h.create)
	r.Get("/team", h.team)
}

// RegisterAdmin mounts the booking list on the admin router.
func (h *BookingHandler) RegisterAdmin(r chi.Router) {
	r.Get("/bookings", h.list)
}

func (h *BookingHandler) options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, BookingOptions{Services: booking.Services, TimeSlots: booking.TimeSlots})
}

func (h *BookingHandler) create(w http.ResponseWriter, r *http.Request) {
	var f booking.Form
	if !decodeJSON(w, r, &f) {
		return
	}
	bk, c, err := h.Bookings.Add(r.Context(), f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, BookingResp{Booking: bk, Confirmation: c})
}

func (h *BookingHandler) list(w http.ResponseWriter, r *http.Request) {
	bs, err := h.Bookings.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bs)
}

func (h *BookingHandler) team(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, team.Members())
}
