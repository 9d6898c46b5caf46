package salon

import (
	"context"
	"fmt"

	"hairsalon/internal/entities"
)

// CreateBooking submits the full booking draft in one request. The backend
// either confirms the whole booking or rejects it; there is no partial commit.
func (c *Client) CreateBooking(ctx context.Context, req entities.BookingRequest) (*entities.Booking, error) {
	var booking entities.Booking
	if err := c.post(ctx, "/api/v1/booking/createBooking", "", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) BookingList(ctx context.Context, token string) ([]entities.Booking, error) {
	var bookings []entities.Booking
	if err := c.get(ctx, "/api/v1/booking/bookingList", token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) BookingHistory(ctx context.Context, token string) ([]entities.Booking, error) {
	var bookings []entities.Booking
	if err := c.get(ctx, "/api/v1/booking/history", token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) BookingsOfStylist(ctx context.Context, token string) ([]entities.Booking, error) {
	var bookings []entities.Booking
	if err := c.get(ctx, "/api/v1/booking/bookingOfStylist", token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookingsWithoutStylist lists bookings a manager still has to assign.
func (c *Client) BookingsWithoutStylist(ctx context.Context, token string) ([]entities.Booking, error) {
	var bookings []entities.Booking
	if err := c.get(ctx, "/api/v1/booking/bookings/NoStylist", token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) ChangeBookingStatus(ctx context.Context, token string, bookingID, status int) error {
	path := fmt.Sprintf("/api/v1/booking/changeBookingStatus/%d", bookingID)
	return c.post(ctx, path, token, entities.ChangeBookingStatusRequest{Status: status}, nil)
}
