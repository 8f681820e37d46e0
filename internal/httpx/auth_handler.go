package httpx

import (
	"net/http"

	"github.com/ariefcatur/larana-store/internal/auth"
	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	Gate *auth.Gate
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/auth/login", h.login)
	r.Post("/auth/logout", h.logout)
	r.Get("/auth/me", h.me)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if !decodeJSON(w, r, &req) {
		return
	}
	s, ok, err := h.Gate.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if id, err := h.Gate.ParseToken(auth.BearerToken(r)); err == nil {
		if err := h.Gate.Logout(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	_, u, ok, err := h.Gate.Authenticate(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}
	writeJSON(w, http.StatusOK, u)
}
