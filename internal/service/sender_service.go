package service

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"hairsalon/internal/entities"
	"hairsalon/internal/wizard"
)

// SenderService sends booking confirmations by email and SMS. Everything here
// is best effort: a send failure is logged and the booking stands.
type SenderService struct {
	logger *zap.SugaredLogger
}

func NewSenderService(logger *zap.SugaredLogger) *SenderService {
	return &SenderService{logger: logger}
}

func salonName() string {
	if name := os.Getenv("SALON_NAME"); name != "" {
		return name
	}
	return "HairHub Salon"
}

func (s *SenderService) BookingConfirmed(booking *entities.Booking, draft wizard.Draft, total int) {
	salon := salonName()

	var lines []string
	for _, item := range draft.Items {
		stylist := "any stylist"
		if item.Stylist != nil {
			stylist = item.Stylist.StylistName
		}
		for _, bt := range item.BookingTimes {
			lines = append(lines, fmt.Sprintf("- %s with %s on %s, %s - %s",
				item.Service.ServiceName, stylist, bt.StartDate, bt.StartTime, bt.EndTime))
		}
	}

	subject := fmt.Sprintf("Your %s booking #%d is confirmed", salon, booking.BookingID)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour booking at %s is confirmed.\n\n"+
			"Booking #%d\n%s\nTotal: $%d\n\n"+
			"See you soon!\n%s",
		draft.UserName, salon, booking.BookingID, strings.Join(lines, "\n"), total, salon,
	)

	if draft.Email != "" {
		go func(to, name, subject, body string) {
			if err := SendEmailWithSendGrid(to, name, subject, body, ""); err != nil {
				s.logger.Warnw("confirmation email failed",
					"booking_id", booking.BookingID, "error", err)
			}
		}(draft.Email, draft.UserName, subject, body)
	}

	sms := fmt.Sprintf("%s: booking #%d confirmed! %d service(s), total $%d. Details in your booking history.",
		salon, booking.BookingID, len(draft.Items), total)
	if err := SendSMS(draft.Phone, sms); err != nil {
		s.logger.Warnw("confirmation SMS failed",
			"booking_id", booking.BookingID, "phone", draft.Phone, "error", err)
	}
}
