package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"hairsalon/internal/auth"
	"hairsalon/internal/service"
)

// WizardHandler exposes the booking wizard as session-scoped endpoints: one
// route per user action, each applying a single state transition.
type WizardHandler struct {
	Service *service.BookingService
}

func NewWizardHandler(svc *service.BookingService) *WizardHandler {
	return &WizardHandler{Service: svc}
}

func (h *WizardHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.Service.StartSession(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *WizardHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.Service.GetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *WizardHandler) SelectService(w http.ResponseWriter, r *http.Request) {
	var req SelectServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	session, err := h.Service.SelectService(r.Context(), mux.Vars(r)["id"], req.ServiceID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *WizardHandler) SelectStylist(w http.ResponseWriter, r *http.Request) {
	var req SelectStylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	session, err := h.Service.SelectStylist(r.Context(), mux.Vars(r)["id"], req.StylistID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *WizardHandler) SelectSchedules(w http.ResponseWriter, r *http.Request) {
	var req SelectSchedulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	session, err := h.Service.SelectSchedules(r.Context(), mux.Vars(r)["id"], req.ScheduleIDs)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *WizardHandler) RemoveLineItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "Invalid line item index", http.StatusBadRequest)
		return
	}
	session, err := h.Service.RemoveLineItem(r.Context(), mux.Vars(r)["id"], index)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *WizardHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	session, err := h.Service.ClearCart(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Review returns the cart summary with pricing. An optional voucherId query
// parameter applies that voucher to the quoted total.
func (h *WizardHandler) Review(w http.ResponseWriter, r *http.Request) {
	var voucherID *int
	if raw := r.URL.Query().Get("voucherId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid voucherId", http.StatusBadRequest)
			return
		}
		voucherID = &id
	}
	summary, err := h.Service.Review(r.Context(), mux.Vars(r)["id"], auth.TokenFromRequest(r), voucherID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *WizardHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req ConfirmBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	token := auth.TokenFromRequest(r)
	booking, err := h.Service.Confirm(r.Context(), mux.Vars(r)["id"], service.ConfirmInput{
		UserName:      req.UserName,
		Phone:         req.Phone,
		Email:         req.Email,
		VoucherID:     req.VoucherID,
		Authenticated: token != "",
		Token:         token,
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *WizardHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Cancel(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Booking cancelled"})
}
