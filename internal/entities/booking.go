package entities

// BookingRequest is the body of POST /api/v1/booking/createBooking. The
// positional-array shape (serviceId[i] pairs with stylistId[i]) is the wire
// contract with the backend and must not change.
type BookingRequest struct {
	UserName   string `json:"userName"`
	Phone      string `json:"phone"`
	VoucherID  *int   `json:"voucherId"`
	ScheduleID []int  `json:"scheduleId"`
	ServiceID  []int  `json:"serviceId"`
	StylistID  []int  `json:"stylistId"`
}

// Booking is a created booking as the backend returns it. Read-only on this
// side; status transitions happen server-side via changeBookingStatus.
type Booking struct {
	BookingID  int    `json:"bookingId"`
	UserName   string `json:"userName"`
	Phone      string `json:"phone"`
	TotalPrice int    `json:"totalPrice"`
	Status     int    `json:"status"`
	CreateDate string `json:"createDate"`
}

type ChangeBookingStatusRequest struct {
	Status int `json:"status"`
}
