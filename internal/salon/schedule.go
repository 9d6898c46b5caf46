package salon

import (
	"context"
	"fmt"

	"hairsalon/internal/entities"
)

func (c *Client) ScheduleList(ctx context.Context) ([]entities.ScheduleSlot, error) {
	var slots []entities.ScheduleSlot
	if err := c.get(ctx, "/api/v1/schedule/scheduleList", "", &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (c *Client) ScheduleByID(ctx context.Context, scheduleID int) (*entities.ScheduleSlot, error) {
	var slot entities.ScheduleSlot
	path := fmt.Sprintf("/api/v1/schedule/GetScheduleById/%d", scheduleID)
	if err := c.get(ctx, path, "", &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (c *Client) CreateSchedule(ctx context.Context, token string, slot entities.ScheduleSlot) (*entities.ScheduleSlot, error) {
	var created entities.ScheduleSlot
	if err := c.post(ctx, "/api/v1/schedule/createSchedule", token, slot, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
