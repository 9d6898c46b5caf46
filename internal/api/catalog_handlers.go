package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"hairsalon/internal/cache"
	"hairsalon/internal/salon"
)

// CatalogHandler serves the reference data the booking screens browse. Lists
// come from the local cache; targeted lookups go straight upstream.
type CatalogHandler struct {
	Catalog *cache.Catalog
	Client  *salon.Client
}

func NewCatalogHandler(catalog *cache.Catalog, client *salon.Client) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Client: client}
}

func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Catalog.Services(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (h *CatalogHandler) ListStylists(w http.ResponseWriter, r *http.Request) {
	stylists, err := h.Catalog.Stylists(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stylists)
}

func (h *CatalogHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.Catalog.Schedules(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, schedules)
}

func (h *CatalogHandler) StylistsByService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.Atoi(mux.Vars(r)["serviceId"])
	if err != nil {
		http.Error(w, "Invalid service ID", http.StatusBadRequest)
		return
	}
	stylists, err := h.Client.StylistsByService(r.Context(), serviceID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stylists)
}

// StylistsByDate lists stylists free at ?startDate=...&startTime=...
func (h *CatalogHandler) StylistsByDate(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("startDate")
	startTime := r.URL.Query().Get("startTime")
	if startDate == "" || startTime == "" {
		http.Error(w, "startDate and startTime are required", http.StatusBadRequest)
		return
	}
	stylists, err := h.Client.StylistsByDate(r.Context(), startDate, startTime)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stylists)
}
