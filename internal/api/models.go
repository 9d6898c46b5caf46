package api

// Wizard session requests
type SelectServiceRequest struct {
	ServiceID int `json:"serviceId"`
}

type SelectStylistRequest struct {
	StylistID *int `json:"stylistId"` // null means "any stylist"
}

type SelectSchedulesRequest struct {
	ScheduleIDs []int `json:"scheduleIds"`
}

type ConfirmBookingRequest struct {
	UserName  string `json:"userName"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	VoucherID *int   `json:"voucherId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
