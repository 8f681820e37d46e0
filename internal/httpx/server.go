package httpx

import (
	"net/http"
	"time"

	"github.com/ariefcatur/larana-store/internal/auth"
	"github.com/ariefcatur/larana-store/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	return r
}

// API mounts the storefront and admin handlers under /api.
type API struct {
	Products *ProductsHandler
	Cart     *CartHandler
	Auth     *AuthHandler
	Admin    *AdminHandler
	Bookings *BookingHandler
	Gate     *auth.Gate
}

func (a *API) Register(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		a.Products.Register(r)
		a.Cart.Register(r)
		a.Auth.Register(r)
		if a.Bookings != nil {
			a.Bookings.Register(r)
		}
		r.Route("/admin", func(r chi.Router) {
			r.Use(a.Gate.Middleware)
			a.Admin.Register(r)
			if a.Bookings != nil {
				a.Bookings.RegisterAdmin(r)
			}
		})
	})
}
