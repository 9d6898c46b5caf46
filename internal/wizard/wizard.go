package wizard

import (
	"fmt"
	"time"

	"hairsalon/internal/entities"
)

// State is the single source of truth for where a booking session is in the
// flow. Earlier iterations of the product drove this with per-modal open
// flags, which allowed impossible combinations; the enum does not.
type State string

const (
	StateIdle              State = "idle"
	StateSelectingService  State = "selecting_service"
	StateSelectingStylist  State = "selecting_stylist"
	StateSelectingSchedule State = "selecting_schedule"
	StateReviewingCart     State = "reviewing_cart"
	StateConfirming        State = "confirming_booking"
	StateSubmitted         State = "submitted"
	StateCancelled         State = "cancelled"
)

// BookingTime is the computed start/end of one service occurrence: the slot's
// start plus the service's estimated duration.
type BookingTime struct {
	StartDate string `json:"startDate"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// LineItem is one (service, stylist, schedules) selection in the draft.
// Service is always set; Stylist stays nil for "any stylist"; Schedules are
// empty until the customer picks slots.
type LineItem struct {
	Service      entities.Service        `json:"service"`
	Stylist      *entities.Stylist       `json:"stylist"`
	Schedules    []int                   `json:"schedules"`
	Slots        []entities.ScheduleSlot `json:"slots"`
	BookingTimes []BookingTime           `json:"bookingTimes"`
}

// Draft is the in-progress, unsubmitted booking aggregate. It is destroyed on
// successful submission or cancel.
type Draft struct {
	UserName      string     `json:"userName"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email,omitempty"`
	VoucherID     *int       `json:"voucherId"`
	Authenticated bool       `json:"authenticated"`
	Items         []LineItem `json:"items"`
}

// Session is one customer's wizard run. Owned exclusively by that session;
// never shared across tabs. All transition methods mutate in place and leave
// the session untouched when they return an error.
type Session struct {
	SessionID string    `json:"sessionId"`
	State     State     `json:"state"`
	Draft     Draft     `json:"draft"`
	Current   int       `json:"current"` // index of the line item being configured
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewSession(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		SessionID: id,
		State:     StateSelectingService,
		Current:   -1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}

func (s *Session) transitionErr(op string) error {
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidTransition, op, s.State)
}

// AddService creates a new line item with no stylist and moves to stylist
// selection. Allowed from SelectingService and, for "add another service",
// from ReviewingCart.
func (s *Session) AddService(svc entities.Service) error {
	if s.State != StateSelectingService && s.State != StateReviewingCart {
		return s.transitionErr("add service")
	}
	s.Draft.Items = append(s.Draft.Items, LineItem{Service: svc})
	s.Current = len(s.Draft.Items) - 1
	s.State = StateSelectingStylist
	s.touch()
	return nil
}

// SelectStylist records the stylist for the current line item. nil means
// "any stylist" and is a valid choice.
func (s *Session) SelectStylist(st *entities.Stylist) error {
	if s.State != StateSelectingStylist {
		return s.transitionErr("select stylist")
	}
	s.Draft.Items[s.Current].Stylist = st
	s.State = StateSelectingSchedule
	s.touch()
	return nil
}

// SelectSchedules assigns slots to the current line item and advances to cart
// review. Duplicate schedule IDs within the selection are collapsed silently;
// a slot whose (date, time) is already held by another line item rejects the
// whole selection and leaves the session unchanged.
func (s *Session) SelectSchedules(slots []entities.ScheduleSlot) error {
	if s.State != StateSelectingSchedule {
		return s.transitionErr("select schedule")
	}
	slots = dedupSlots(slots)
	if len(slots) == 0 {
		return ErrNoSchedule
	}
	for _, slot := range slots {
		if s.slotTaken(slot, s.Current) {
			return fmt.Errorf("%w: %s %s", ErrSlotConflict, slot.StartDate, slot.StartTime)
		}
	}
	item := &s.Draft.Items[s.Current]
	item.Slots = slots
	item.Schedules = item.Schedules[:0]
	item.BookingTimes = item.BookingTimes[:0]
	for _, slot := range slots {
		item.Schedules = append(item.Schedules, slot.ScheduleID)
		item.BookingTimes = append(item.BookingTimes, computeBookingTime(slot, item.Service))
	}
	s.State = StateReviewingCart
	s.touch()
	return nil
}

// RemoveLineItem deletes the item at index while reviewing the cart. Removing
// the last item returns the wizard to service selection.
func (s *Session) RemoveLineItem(index int) error {
	if s.State != StateReviewingCart {
		return s.transitionErr("remove line item")
	}
	if index < 0 || index >= len(s.Draft.Items) {
		return fmt.Errorf("line item index %d out of range", index)
	}
	s.Draft.Items = append(s.Draft.Items[:index], s.Draft.Items[index+1:]...)
	s.Current = len(s.Draft.Items) - 1
	if len(s.Draft.Items) == 0 {
		s.State = StateSelectingService
	}
	s.touch()
	return nil
}

// ClearCart drops every line item and restarts service selection.
func (s *Session) ClearCart() error {
	if s.State != StateReviewingCart {
		return s.transitionErr("clear cart")
	}
	s.Draft.Items = nil
	s.Current = -1
	s.State = StateSelectingService
	s.touch()
	return nil
}

// BeginConfirm validates contact details and moves to the confirmation step.
// An authenticated caller's profile name and phone are taken verbatim; for a
// guest both fields are validated here, before any network call.
func (s *Session) BeginConfirm(userName, phone string, voucherID *int, authenticated bool) error {
	if s.State != StateReviewingCart {
		return s.transitionErr("confirm")
	}
	if len(s.Draft.Items) == 0 {
		return ErrEmptyCart
	}
	if !authenticated {
		if err := ValidateName(userName); err != nil {
			return err
		}
		if err := ValidatePhone(phone); err != nil {
			return err
		}
	}
	for _, item := range s.Draft.Items {
		if len(item.Schedules) == 0 {
			return ErrNoSchedule
		}
	}
	s.Draft.UserName = userName
	s.Draft.Phone = phone
	s.Draft.VoucherID = voucherID
	s.Draft.Authenticated = authenticated
	s.State = StateConfirming
	s.touch()
	return nil
}

// MarkSubmitted records a successful createBooking call.
func (s *Session) MarkSubmitted() error {
	if s.State != StateConfirming {
		return s.transitionErr("mark submitted")
	}
	s.State = StateSubmitted
	s.touch()
	return nil
}

// FailSubmit rolls the wizard back to cart review after a backend failure.
// Nothing else changes; the user retries explicitly.
func (s *Session) FailSubmit() error {
	if s.State != StateConfirming {
		return s.transitionErr("fail submit")
	}
	s.State = StateReviewingCart
	s.touch()
	return nil
}

// Cancel discards the draft from any non-terminal state.
func (s *Session) Cancel() error {
	switch s.State {
	case StateSubmitted, StateCancelled:
		return s.transitionErr("cancel")
	}
	s.Draft = Draft{}
	s.Current = -1
	s.State = StateCancelled
	s.touch()
	return nil
}

// Terminal reports whether the session can make no further transitions.
func (s *Session) Terminal() bool {
	return s.State == StateSubmitted || s.State == StateCancelled
}

func (s *Session) slotTaken(slot entities.ScheduleSlot, exceptItem int) bool {
	for i, item := range s.Draft.Items {
		if i == exceptItem {
			continue
		}
		for _, held := range item.Slots {
			if held.StartDate == slot.StartDate && held.StartTime == slot.StartTime {
				return true
			}
		}
	}
	return false
}

func dedupSlots(slots []entities.ScheduleSlot) []entities.ScheduleSlot {
	seen := make(map[int]bool, len(slots))
	out := slots[:0:0]
	for _, slot := range slots {
		if seen[slot.ScheduleID] {
			continue
		}
		seen[slot.ScheduleID] = true
		out = append(out, slot)
	}
	return out
}
