package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"hairsalon/internal/auth"
	"hairsalon/internal/entities"
	"hairsalon/internal/salon"
)

// StaffHandler covers the staff and manager screens: booking lists, check-in,
// schedule management and reports. Every call forwards the caller's bearer
// token upstream; the backend owns authorization.
type StaffHandler struct {
	Client *salon.Client
}

func NewStaffHandler(client *salon.Client) *StaffHandler {
	return &StaffHandler{Client: client}
}

func (h *StaffHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Client.BookingList(r.Context(), auth.TokenFromContext(r.Context()))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *StaffHandler) BookingHistory(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Client.BookingHistory(r.Context(), auth.TokenFromContext(r.Context()))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *StaffHandler) BookingsOfStylist(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Client.BookingsOfStylist(r.Context(), auth.TokenFromContext(r.Context()))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *StaffHandler) BookingsWithoutStylist(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Client.BookingsWithoutStylist(r.Context(), auth.TokenFromContext(r.Context()))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// ChangeBookingStatus is check-in and friends; the status transition itself
// happens server-side.
func (h *StaffHandler) ChangeBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.Atoi(mux.Vars(r)["bookingId"])
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}
	var req entities.ChangeBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Client.ChangeBookingStatus(r.Context(), auth.TokenFromContext(r.Context()), bookingID, req.Status); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Booking status updated"})
}

func (h *StaffHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req entities.ScheduleSlot
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	slot, err := h.Client.CreateSchedule(r.Context(), auth.TokenFromContext(r.Context()), req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, slot)
}

func (h *StaffHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid schedule ID", http.StatusBadRequest)
		return
	}
	slot, err := h.Client.ScheduleByID(r.Context(), scheduleID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, slot)
}

func (h *StaffHandler) ListVouchers(w http.ResponseWriter, r *http.Request) {
	vouchers, err := h.Client.VoucherList(r.Context(), auth.TokenFromContext(r.Context()))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vouchers)
}

func (h *StaffHandler) GetVoucher(w http.ResponseWriter, r *http.Request) {
	voucherID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid voucher ID", http.StatusBadRequest)
		return
	}
	voucher, err := h.Client.VoucherByID(r.Context(), auth.TokenFromContext(r.Context()), voucherID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, voucher)
}

func (h *StaffHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Client.ReportList(r.Context(), auth.TokenFromContext(r.Context()))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

func (h *StaffHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req entities.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	report, err := h.Client.CreateReport(r.Context(), auth.TokenFromContext(r.Context()), req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

func (h *StaffHandler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid report ID", http.StatusBadRequest)
		return
	}
	var req entities.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	report, err := h.Client.UpdateReport(r.Context(), auth.TokenFromContext(r.Context()), reportID, req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *StaffHandler) ChangeReportStatus(w http.ResponseWriter, r *http.Request) {
	reportID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid report ID", http.StatusBadRequest)
		return
	}
	var req entities.ChangeReportStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Client.ChangeReportStatus(r.Context(), auth.TokenFromContext(r.Context()), reportID, req.Status); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Report status updated"})
}
