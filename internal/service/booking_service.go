package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hairsalon/internal/cache"
	"hairsalon/internal/entities"
	"hairsalon/internal/repository"
	"hairsalon/internal/wizard"
)

// BookingBackend is what the booking flow needs from the salon API.
type BookingBackend interface {
	CreateBooking(ctx context.Context, req entities.BookingRequest) (*entities.Booking, error)
	VoucherList(ctx context.Context, token string) ([]entities.Voucher, error)
}

// Notifier is told about confirmed bookings. Notification failures never
// affect the booking itself.
type Notifier interface {
	BookingConfirmed(booking *entities.Booking, draft wizard.Draft, total int)
}

// ConfirmInput carries the confirmation form. For an authenticated customer
// UserName and Phone come from the profile and are used verbatim; guests get
// both validated before any network call.
type ConfirmInput struct {
	UserName      string
	Phone         string
	Email         string
	VoucherID     *int
	Authenticated bool
	Token         string
}

// Summary is the cart review payload: the session plus computed pricing.
type Summary struct {
	Session  *wizard.Session `json:"session"`
	Subtotal int             `json:"subtotal"`
	Discount int             `json:"discount"`
	Total    int             `json:"total"`
}

// BookingService drives wizard sessions end to end: every user action loads
// the session, applies one transition, and saves it back.
type BookingService struct {
	sessions repository.SessionStore
	backend  BookingBackend
	catalog  *cache.Catalog
	notifier Notifier
	logger   *zap.SugaredLogger
}

func NewBookingService(sessions repository.SessionStore, backend BookingBackend, catalog *cache.Catalog, notifier Notifier, logger *zap.SugaredLogger) *BookingService {
	return &BookingService{
		sessions: sessions,
		backend:  backend,
		catalog:  catalog,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *BookingService) StartSession(ctx context.Context) (*wizard.Session, error) {
	session := wizard.NewSession(uuid.New().String())
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *BookingService) GetSession(ctx context.Context, sessionID string) (*wizard.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}

// SelectService resolves the service from the catalog and opens a new line
// item for it.
func (s *BookingService) SelectService(ctx context.Context, sessionID string, serviceID int) (*wizard.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	svc, err := s.catalog.ServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if err := session.AddService(*svc); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectStylist sets the stylist for the current line item; a nil stylistID
// means "any stylist".
func (s *BookingService) SelectStylist(ctx context.Context, sessionID string, stylistID *int) (*wizard.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	var stylist *entities.Stylist
	if stylistID != nil {
		stylist, err = s.catalog.StylistByID(ctx, *stylistID)
		if err != nil {
			return nil, err
		}
	}
	if err := session.SelectStylist(stylist); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectSchedules resolves the slot IDs and assigns them to the current line
// item. A conflicting slot rejects the whole selection; the stored session is
// untouched.
func (s *BookingService) SelectSchedules(ctx context.Context, sessionID string, scheduleIDs []int) (*wizard.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	slots, err := s.catalog.SlotsByIDs(ctx, scheduleIDs)
	if err != nil {
		return nil, err
	}
	if err := session.SelectSchedules(slots); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *BookingService) RemoveLineItem(ctx context.Context, sessionID string, index int) (*wizard.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.RemoveLineItem(index); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *BookingService) ClearCart(ctx context.Context, sessionID string) (*wizard.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.ClearCart(); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Review computes the cart summary with the given voucher applied, without
// changing wizard state.
func (s *BookingService) Review(ctx context.Context, sessionID, token string, voucherID *int) (*Summary, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	vouchers, err := s.loadVouchers(ctx, token, voucherID)
	if err != nil {
		return nil, err
	}
	subtotal := session.Draft.Subtotal()
	total := session.Draft.ComputeTotal(vouchers, voucherID)
	return &Summary{
		Session:  session,
		Subtotal: subtotal,
		Discount: subtotal - total,
		Total:    total,
	}, nil
}

// Confirm submits the draft as one createBooking request. On any failure the
// wizard returns to cart review with the draft intact and no booking ID; on
// success the session is destroyed and notifications go out asynchronously.
func (s *BookingService) Confirm(ctx context.Context, sessionID string, input ConfirmInput) (*entities.Booking, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.BeginConfirm(input.UserName, input.Phone, input.VoucherID, input.Authenticated); err != nil {
		return nil, err
	}
	session.Draft.Email = input.Email

	vouchers, err := s.loadVouchers(ctx, input.Token, input.VoucherID)
	if err != nil {
		return nil, s.rollback(ctx, session, err)
	}
	total := session.Draft.ComputeTotal(vouchers, input.VoucherID)

	booking, err := s.backend.CreateBooking(ctx, session.Draft.ToBookingRequest())
	if err != nil {
		return nil, s.rollback(ctx, session, err)
	}

	draft := session.Draft
	if err := session.MarkSubmitted(); err != nil {
		return nil, err
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Warnw("could not delete submitted session", "session_id", sessionID, "error", err)
	}
	s.logger.Infow("booking created",
		"session_id", sessionID, "booking_id", booking.BookingID, "total", booking.TotalPrice)

	go s.notifier.BookingConfirmed(booking, draft, total)
	return booking, nil
}

// Cancel discards the draft and drops the session.
func (s *BookingService) Cancel(ctx context.Context, sessionID string) error {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := session.Cancel(); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *BookingService) loadVouchers(ctx context.Context, token string, voucherID *int) ([]entities.Voucher, error) {
	if voucherID == nil {
		return nil, nil
	}
	vouchers, err := s.backend.VoucherList(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("load vouchers: %w", err)
	}
	return vouchers, nil
}

// rollback returns the session to cart review after a failed submission and
// reports the original error.
func (s *BookingService) rollback(ctx context.Context, session *wizard.Session, cause error) error {
	if err := session.FailSubmit(); err != nil {
		s.logger.Errorw("rollback transition failed", "session_id", session.SessionID, "error", err)
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Errorw("could not persist rolled-back session", "session_id", session.SessionID, "error", err)
	}
	return fmt.Errorf("create booking: %w", cause)
}
