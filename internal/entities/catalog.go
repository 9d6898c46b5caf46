package entities

// Service is a bookable salon service. Reference data owned by the backend.
type Service struct {
	ServiceID    int    `json:"serviceId"`
	ServiceName  string `json:"serviceName"`
	Description  string `json:"description"`
	Price        int    `json:"price"`
	EstimateTime string `json:"estimateTime"` // duration, "HH:MM" or plain minutes
	ImageLink    string `json:"imageLink"`
	Status       int    `json:"status"`
}

type Stylist struct {
	StylistID   int    `json:"stylistId"`
	StylistName string `json:"stylistName"`
	Available   bool   `json:"availability"`
}

// ScheduleSlot is a bookable time window.
type ScheduleSlot struct {
	ScheduleID int    `json:"scheduleId"`
	StartDate  string `json:"startDate"` // "2006-01-02"
	StartTime  string `json:"startTime"` // "15:04:05"
	EndTime    string `json:"endTime"`
}

type Voucher struct {
	VoucherID      int    `json:"voucherId"`
	Code           string `json:"code,omitempty"`
	DiscountAmount int    `json:"discountAmount"`
	Status         int    `json:"status"`
}
