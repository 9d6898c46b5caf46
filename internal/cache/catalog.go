// Package cache holds the session-scoped reference data the booking flow
// reads constantly: services, stylists and schedule slots. Each list carries
// its own load status, so one failed fetch never poisons the others, and
// concurrent refreshes completing out of order are safe because a completion
// only ever writes its own key.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"hairsalon/internal/entities"
)

type LoadStatus string

const (
	StatusIdle    LoadStatus = "idle"
	StatusLoading LoadStatus = "loading"
	StatusReady   LoadStatus = "ready"
	StatusFailed  LoadStatus = "failed"
)

const (
	keyServices  = "services"
	keyStylists  = "stylists"
	keySchedules = "schedules"
)

// Source is what the catalog needs from the salon backend.
type Source interface {
	ServiceList(ctx context.Context) ([]entities.Service, error)
	StylistList(ctx context.Context) ([]entities.Stylist, error)
	ScheduleList(ctx context.Context) ([]entities.ScheduleSlot, error)
}

type keyState struct {
	status    LoadStatus
	err       error
	fetchedAt time.Time
}

type Catalog struct {
	source Source
	logger *zap.SugaredLogger

	mu        sync.RWMutex
	states    map[string]*keyState
	services  []entities.Service
	stylists  []entities.Stylist
	schedules []entities.ScheduleSlot
}

func NewCatalog(source Source, logger *zap.SugaredLogger) *Catalog {
	return &Catalog{
		source: source,
		logger: logger,
		states: map[string]*keyState{
			keyServices:  {status: StatusIdle},
			keyStylists:  {status: StatusIdle},
			keySchedules: {status: StatusIdle},
		},
	}
}

// Services returns the cached service list, fetching it on first use.
func (c *Catalog) Services(ctx context.Context) ([]entities.Service, error) {
	c.mu.RLock()
	if c.states[keyServices].status == StatusReady {
		out := c.services
		c.mu.RUnlock()
		return out, nil
	}
	c.mu.RUnlock()

	return c.loadServices(ctx)
}

func (c *Catalog) Stylists(ctx context.Context) ([]entities.Stylist, error) {
	c.mu.RLock()
	if c.states[keyStylists].status == StatusReady {
		out := c.stylists
		c.mu.RUnlock()
		return out, nil
	}
	c.mu.RUnlock()

	return c.loadStylists(ctx)
}

func (c *Catalog) Schedules(ctx context.Context) ([]entities.ScheduleSlot, error) {
	c.mu.RLock()
	if c.states[keySchedules].status == StatusReady {
		out := c.schedules
		c.mu.RUnlock()
		return out, nil
	}
	c.mu.RUnlock()

	return c.loadSchedules(ctx)
}

// ServiceByID resolves one service from the cached list.
func (c *Catalog) ServiceByID(ctx context.Context, id int) (*entities.Service, error) {
	services, err := c.Services(ctx)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ServiceID == id {
			return &services[i], nil
		}
	}
	return nil, fmt.Errorf("service %d not found", id)
}

func (c *Catalog) StylistByID(ctx context.Context, id int) (*entities.Stylist, error) {
	stylists, err := c.Stylists(ctx)
	if err != nil {
		return nil, err
	}
	for i := range stylists {
		if stylists[i].StylistID == id {
			return &stylists[i], nil
		}
	}
	return nil, fmt.Errorf("stylist %d not found", id)
}

// SlotsByIDs resolves schedule IDs to full slots, erroring on any unknown ID.
func (c *Catalog) SlotsByIDs(ctx context.Context, ids []int) ([]entities.ScheduleSlot, error) {
	schedules, err := c.Schedules(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]entities.ScheduleSlot, len(schedules))
	for _, s := range schedules {
		byID[s.ScheduleID] = s
	}
	out := make([]entities.ScheduleSlot, 0, len(ids))
	for _, id := range ids {
		slot, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("schedule %d not found", id)
		}
		out = append(out, slot)
	}
	return out, nil
}

// Status reports the load state of one cache key.
func (c *Catalog) Status(key string) (LoadStatus, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	st, ok := c.states[key]
	if !ok {
		return StatusIdle, fmt.Errorf("unknown cache key %q", key)
	}
	return st.status, st.err
}

// Invalidate drops every cached list. The next read refetches.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, st := range c.states {
		st.status = StatusIdle
		st.err = nil
	}
	c.services = nil
	c.stylists = nil
	c.schedules = nil
}

// Refresh reloads all three lists concurrently. Each load settles its own
// key, so a failure in one list leaves the others ready.
func (c *Catalog) Refresh(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		if _, err := c.loadServices(ctx); err != nil {
			c.logger.Warnw("service list refresh failed", "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		if _, err := c.loadStylists(ctx); err != nil {
			c.logger.Warnw("stylist list refresh failed", "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		if _, err := c.loadSchedules(ctx); err != nil {
			c.logger.Warnw("schedule list refresh failed", "error", err)
		}
	}()
	wg.Wait()
}

func (c *Catalog) loadServices(ctx context.Context) ([]entities.Service, error) {
	c.setLoading(keyServices)
	services, err := c.source.ServiceList(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.settle(keyServices, err)
		return nil, err
	}
	c.services = services
	c.settle(keyServices, nil)
	return services, nil
}

func (c *Catalog) loadStylists(ctx context.Context) ([]entities.Stylist, error) {
	c.setLoading(keyStylists)
	stylists, err := c.source.StylistList(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.settle(keyStylists, err)
		return nil, err
	}
	c.stylists = stylists
	c.settle(keyStylists, nil)
	return stylists, nil
}

func (c *Catalog) loadSchedules(ctx context.Context) ([]entities.ScheduleSlot, error) {
	c.setLoading(keySchedules)
	schedules, err := c.source.ScheduleList(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.settle(keySchedules, err)
		return nil, err
	}
	c.schedules = schedules
	c.settle(keySchedules, nil)
	return schedules, nil
}

func (c *Catalog) setLoading(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[key].status = StatusLoading
}

// settle must be called with c.mu held.
func (c *Catalog) settle(key string, err error) {
	st := c.states[key]
	st.err = err
	st.fetchedAt = time.Now()
	if err != nil {
		st.status = StatusFailed
		return
	}
	st.status = StatusReady
}
