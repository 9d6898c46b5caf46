package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hairsalon/internal/entities"
)

type fakeSource struct {
	services      []entities.Service
	stylists      []entities.Stylist
	schedules     []entities.ScheduleSlot
	scheduleErr   error
	serviceCalls  int
	scheduleCalls int
}

func (f *fakeSource) ServiceList(ctx context.Context) ([]entities.Service, error) {
	f.serviceCalls++
	return f.services, nil
}

func (f *fakeSource) StylistList(ctx context.Context) ([]entities.Stylist, error) {
	return f.stylists, nil
}

func (f *fakeSource) ScheduleList(ctx context.Context) ([]entities.ScheduleSlot, error) {
	f.scheduleCalls++
	if f.scheduleErr != nil {
		return nil, f.scheduleErr
	}
	return f.schedules, nil
}

func newTestCatalog(src *fakeSource) *Catalog {
	return NewCatalog(src, zap.NewNop().Sugar())
}

func TestServicesFetchedOnceThenCached(t *testing.T) {
	src := &fakeSource{services: []entities.Service{{ServiceID: 1, Price: 30}}}
	c := newTestCatalog(src)

	for i := 0; i < 3; i++ {
		services, err := c.Services(context.Background())
		require.NoError(t, err)
		require.Len(t, services, 1)
	}
	assert.Equal(t, 1, src.serviceCalls)

	status, err := c.Status("services")
	require.NoError(t, err)
	assert.Equal(t, StatusReady, status)
}

func TestFailedKeyDoesNotPoisonOthers(t *testing.T) {
	src := &fakeSource{
		services:    []entities.Service{{ServiceID: 1}},
		scheduleErr: errors.New("backend down"),
	}
	c := newTestCatalog(src)
	c.Refresh(context.Background())

	status, _ := c.Status("services")
	assert.Equal(t, StatusReady, status)

	status, err := c.Status("schedules")
	assert.Equal(t, StatusFailed, status)
	assert.EqualError(t, err, "backend down")

	// A later read retries the failed key only.
	src.scheduleErr = nil
	src.schedules = []entities.ScheduleSlot{{ScheduleID: 10}}
	slots, err := c.Schedules(context.Background())
	require.NoError(t, err)
	require.Len(t, slots, 1)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	src := &fakeSource{services: []entities.Service{{ServiceID: 1}}}
	c := newTestCatalog(src)

	_, err := c.Services(context.Background())
	require.NoError(t, err)
	c.Invalidate()
	_, err = c.Services(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.serviceCalls)
}

func TestSlotsByIDs(t *testing.T) {
	src := &fakeSource{schedules: []entities.ScheduleSlot{
		{ScheduleID: 10, StartDate: "2026-09-01", StartTime: "10:00:00"},
		{ScheduleID: 11, StartDate: "2026-09-01", StartTime: "11:00:00"},
	}}
	c := newTestCatalog(src)

	slots, err := c.SlotsByIDs(context.Background(), []int{11, 10})
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, 11, slots[0].ScheduleID)

	_, err = c.SlotsByIDs(context.Background(), []int{99})
	assert.Error(t, err)
}

func TestServiceByID(t *testing.T) {
	src := &fakeSource{services: []entities.Service{{ServiceID: 1, ServiceName: "Cut"}}}
	c := newTestCatalog(src)

	svc, err := c.ServiceByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Cut", svc.ServiceName)

	_, err = c.ServiceByID(context.Background(), 2)
	assert.Error(t, err)
}
