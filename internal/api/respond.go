package api

import (
	"encoding/json"
	"net/http"

	httperrors "hairsalon/internal/errors"
	"hairsalon/internal/utils"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	httpErr := httperrors.FromErr(err)
	if httpErr.Code >= http.StatusInternalServerError {
		utils.GetLogger().Errorw("request failed", "status", httpErr.Code, "error", err)
	}
	writeJSON(w, httpErr.Code, map[string]string{"error": httpErr.Message})
}
