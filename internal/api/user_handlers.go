package api

import (
	"encoding/json"
	"net/http"

	"hairsalon/internal/entities"
	"hairsalon/internal/salon"
)

type UserHandler struct {
	Client *salon.Client
}

func NewUserHandler(client *salon.Client) *UserHandler {
	return &UserHandler{Client: client}
}

// ResetPassword proxies the reset request. The result envelope goes back
// as-is on HTTP 200 — the status field inside tells the caller whether the
// user exists (-1 means not found).
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req entities.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}
	result, err := h.Client.ResetPassword(r.Context(), req.Email)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
