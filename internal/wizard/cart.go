package wizard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hairsalon/internal/entities"
)

// Subtotal is the sum of the service prices across line items, before any
// voucher is applied.
func (d Draft) Subtotal() int {
	total := 0
	for _, item := range d.Items {
		total += item.Service.Price
	}
	return total
}

// ComputeTotal applies the selected voucher's discount to the subtotal. An
// unknown or unset voucher discounts nothing. The result is floored at zero,
// whatever the discount amount.
func (d Draft) ComputeTotal(vouchers []entities.Voucher, selectedVoucherID *int) int {
	total := d.Subtotal()
	if selectedVoucherID == nil {
		return total
	}
	for _, v := range vouchers {
		if v.VoucherID == *selectedVoucherID {
			total -= v.DiscountAmount
			break
		}
	}
	if total < 0 {
		total = 0
	}
	return total
}

// ToBookingRequest serializes the draft into the backend's positional-array
// shape. ServiceID and StylistID have one entry per line item, index-aligned;
// a nil stylist serializes as 0 ("any stylist"). ScheduleID is the union of
// every line item's slots with duplicates collapsed.
func (d Draft) ToBookingRequest() entities.BookingRequest {
	req := entities.BookingRequest{
		UserName:   d.UserName,
		Phone:      d.Phone,
		VoucherID:  d.VoucherID,
		ScheduleID: []int{},
		ServiceID:  []int{},
		StylistID:  []int{},
	}
	seen := make(map[int]bool)
	for _, item := range d.Items {
		req.ServiceID = append(req.ServiceID, item.Service.ServiceID)
		if item.Stylist != nil {
			req.StylistID = append(req.StylistID, item.Stylist.StylistID)
		} else {
			req.StylistID = append(req.StylistID, 0)
		}
		for _, id := range item.Schedules {
			if seen[id] {
				continue
			}
			seen[id] = true
			req.ScheduleID = append(req.ScheduleID, id)
		}
	}
	return req
}

// computeBookingTime derives the occupied window for a service in a slot:
// start at the slot's start, end after the service's estimated duration.
func computeBookingTime(slot entities.ScheduleSlot, svc entities.Service) BookingTime {
	bt := BookingTime{
		StartDate: slot.StartDate,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
	}
	dur, err := parseEstimate(svc.EstimateTime)
	if err != nil {
		return bt
	}
	start, err := time.Parse("15:04:05", slot.StartTime)
	if err != nil {
		if start, err = time.Parse("15:04", slot.StartTime); err != nil {
			return bt
		}
	}
	bt.EndTime = start.Add(dur).Format("15:04:05")
	return bt
}

// parseEstimate reads a service duration. The backend serves either "HH:MM"
// or a bare minute count; older records used both.
func parseEstimate(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty estimate time")
	}
	if strings.Contains(s, ":") {
		parts := strings.SplitN(s, ":", 3)
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("bad estimate time %q: %w", s, err)
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("bad estimate time %q: %w", s, err)
		}
		return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
	}
	m, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad estimate time %q: %w", s, err)
	}
	return time.Duration(m) * time.Minute, nil
}
