package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hairsalon/internal/entities"
)

func svc(id, price int) entities.Service {
	return entities.Service{ServiceID: id, ServiceName: "service", Price: price, EstimateTime: "00:30"}
}

func slot(id int, date, start string) entities.ScheduleSlot {
	return entities.ScheduleSlot{ScheduleID: id, StartDate: date, StartTime: start, EndTime: "20:00:00"}
}

func TestHappyPathTransitions(t *testing.T) {
	s := NewSession("sess-1")
	require.Equal(t, StateSelectingService, s.State)

	require.NoError(t, s.AddService(svc(1, 30)))
	require.Equal(t, StateSelectingStylist, s.State)

	require.NoError(t, s.SelectStylist(&entities.Stylist{StylistID: 7, StylistName: "Mia"}))
	require.Equal(t, StateSelectingSchedule, s.State)

	require.NoError(t, s.SelectSchedules([]entities.ScheduleSlot{slot(10, "2026-09-01", "10:00:00")}))
	require.Equal(t, StateReviewingCart, s.State)

	require.NoError(t, s.BeginConfirm("Jane", "0123456789", nil, false))
	require.Equal(t, StateConfirming, s.State)

	require.NoError(t, s.MarkSubmitted())
	require.Equal(t, StateSubmitted, s.State)
	require.True(t, s.Terminal())
}

func TestAnyStylistIsNil(t *testing.T) {
	s := NewSession("sess-1")
	require.NoError(t, s.AddService(svc(1, 30)))
	require.NoError(t, s.SelectStylist(nil))
	require.Equal(t, StateSelectingSchedule, s.State)
	assert.Nil(t, s.Draft.Items[0].Stylist)
}

func TestLoopBackAddsSecondLineItem(t *testing.T) {
	s := NewSession("sess-1")
	require.NoError(t, s.AddService(svc(1, 30)))
	require.NoError(t, s.SelectStylist(nil))
	require.NoError(t, s.SelectSchedules([]entities.ScheduleSlot{slot(10, "2026-09-01", "10:00:00")}))

	// ReviewingCart -> SelectingService loop-back
	require.NoError(t, s.AddService(svc(2, 45)))
	require.Equal(t, StateSelectingStylist, s.State)
	require.Len(t, s.Draft.Items, 2)
	assert.Equal(t, 1, s.Current)
}

func TestCartLengthTracksAddsAndRemovals(t *testing.T) {
	s := NewSession("sess-1")
	for i := 0; i < 3; i++ {
		require.NoError(t, s.AddService(svc(i+1, 10)))
		require.NoError(t, s.SelectStylist(nil))
		require.NoError(t, s.SelectSchedules([]entities.ScheduleSlot{slot(100+i, "2026-09-01", []string{"10:00:00", "11:00:00", "12:00:00"}[i])}))
	}
	require.Len(t, s.Draft.Items, 3)

	require.NoError(t, s.RemoveLineItem(1))
	require.Len(t, s.Draft.Items, 2)
	assert.Equal(t, 1, s.Draft.Items[0].Service.ServiceID)
	assert.Equal(t, 3, s.Draft.Items[1].Service.ServiceID)

	require.NoError(t, s.ClearCart())
	require.Empty(t, s.Draft.Items)
	assert.Equal(t, StateSelectingService, s.State)
}

func TestRemovingLastItemReturnsToServiceSelection(t *testing.T) {
	s := NewSession("sess-1")
	require.NoError(t, s.AddService(svc(1, 30)))
	require.NoError(t, s.SelectStylist(nil))
	require.NoError(t, s.SelectSchedules([]entities.ScheduleSlot{slot(10, "2026-09-01", "10:00:00")}))

	require.NoError(t, s.RemoveLineItem(0))
	assert.Equal(t, StateSelectingService, s.State)
}

func TestSlotConflictRejectedAndStateUnchanged(t *testing.T) {
	s := NewSession("sess-1")
	require.NoError(t, s.AddService(svc(1, 30)))
	require.NoError(t, s.SelectStylist(nil))
	require.NoError(t, s.SelectSchedules([]entities.ScheduleSlot{slot(10, "2026-09-01", "10:00:00")}))

	require.NoError(t, s.AddService(svc(2, 45)))
	require.NoError(t, s.SelectStylist(nil))

	// Same (date, time) under a different schedule ID is still a conflict.
	err := s.SelectSchedules([]entities.ScheduleSlot{slot(11, "2026-09-01", "10:00:00")})
	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, StateSelectingSchedule, s.State)
	assert.Empty(t, s.Draft.Items[1].Schedules)

	// Rejection is idempotent: retrying fails identically, nothing mutates.
	err = s.SelectSchedules([]entities.ScheduleSlot{slot(11, "2026-09-01", "10:00:00")})
	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, s.Draft.Items[1].Schedules)

	// A different time goes through.
	require.NoError(t, s.SelectSchedules([]entities.ScheduleSlot{slot(12, "2026-09-01", "11:00:00")}))
	assert.Equal(t, StateReviewingCart, s.State)
}

func TestDuplicateScheduleIDsCollapsed(t *testing.T) {
	s := NewSession("sess-1")
	require.NoError(t, s.AddService(svc(1, 30)))
	require.NoError(t, s.SelectStylist(nil))
	require.NoError(t, s.SelectSchedules([]entities.ScheduleSlot{
		slot(10, "2026-09-01", "10:00:00"),
		slot(10, "2026-09-01", "10:00:00"),
		slot(11, "2026-09-01", "11:00:00"),
	}))
	assert.Equal(t, []int{10, 11}, s.Draft.Items[0].Schedules)
}

func TestBookingTimesComputedFromEstimate(t *testing.T) {
	s := NewSession("sess-1")
	service := svc(1, 30)
	service.EstimateTime = "01:15"
	require.NoError(t, s.AddService(service))
	require.NoError(t, s.SelectStylist(nil))
	require.NoError(t, s.SelectSchedules([]entities.ScheduleSlot{slot(10, "2026-09-01", "10:00:00")}))

	require.Len(t, s.Draft.Items[0].BookingTimes, 1)
	bt := s.Draft.Items[0].BookingTimes[0]
	assert.Equal(t, "2026-09-01", bt.StartDate)
	assert.Equal(t, "10:00:00", bt.StartTime)
	assert.Equal(t, "11:15:00", bt.EndTime)
}

func TestGuestValidationOnConfirm(t *testing.T) {
	s := NewSession("sess-1")
	require.NoError(t, s.AddService(svc(1, 30)))
	require.NoError(t, s.SelectStylist(nil))
	require.NoError(t, s.SelectSchedules([]entities.ScheduleSlot{slot(10, "2026-09-01", "10:00:00")}))

	require.ErrorIs(t, s.BeginConfirm("", "0123456789", nil, false), ErrEmptyName)
	require.ErrorIs(t, s.BeginConfirm("Jane", "12345", nil, false), ErrInvalidPhone)
	assert.Equal(t, StateReviewingCart, s.State)

	// Authenticated profiles are taken verbatim, no validation.
	require.NoError(t, s.BeginConfirm("Jane Doe", "12345", nil, true))
	assert.Equal(t, StateConfirming, s.State)
}

func TestFailSubmitRollsBackToReview(t *testing.T) {
	s := NewSession("sess-1")
	require.NoError(t, s.AddService(svc(1, 30)))
	require.NoError(t, s.SelectStylist(nil))
	require.NoError(t, s.SelectSchedules([]entities.ScheduleSlot{slot(10, "2026-09-01", "10:00:00")}))
	require.NoError(t, s.BeginConfirm("Jane", "0123456789", nil, false))

	require.NoError(t, s.FailSubmit())
	assert.Equal(t, StateReviewingCart, s.State)
	assert.Len(t, s.Draft.Items, 1)
}

func TestCancelFromAnyNonTerminalState(t *testing.T) {
	for _, setup := range []func(*Session){
		func(s *Session) {},
		func(s *Session) { _ = s.AddService(svc(1, 30)) },
		func(s *Session) { _ = s.AddService(svc(1, 30)); _ = s.SelectStylist(nil) },
	} {
		s := NewSession("sess-1")
		setup(s)
		require.NoError(t, s.Cancel())
		assert.Equal(t, StateCancelled, s.State)
		assert.Empty(t, s.Draft.Items)
	}

	s := NewSession("sess-1")
	require.NoError(t, s.AddService(svc(1, 30)))
	require.NoError(t, s.SelectStylist(nil))
	require.NoError(t, s.SelectSchedules([]entities.ScheduleSlot{slot(10, "2026-09-01", "10:00:00")}))
	require.NoError(t, s.BeginConfirm("Jane", "0123456789", nil, false))
	require.NoError(t, s.MarkSubmitted())
	require.ErrorIs(t, s.Cancel(), ErrInvalidTransition)
}

func TestOutOfOrderOperationsRejected(t *testing.T) {
	s := NewSession("sess-1")
	require.ErrorIs(t, s.SelectStylist(nil), ErrInvalidTransition)
	require.ErrorIs(t, s.SelectSchedules([]entities.ScheduleSlot{slot(1, "2026-09-01", "10:00:00")}), ErrInvalidTransition)
	require.ErrorIs(t, s.BeginConfirm("Jane", "0123456789", nil, false), ErrInvalidTransition)
	require.ErrorIs(t, s.MarkSubmitted(), ErrInvalidTransition)
}
