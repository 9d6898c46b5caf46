package salon

import (
	"context"
	"fmt"
	"net/url"

	"hairsalon/internal/entities"
)

func (c *Client) ServiceList(ctx context.Context) ([]entities.Service, error) {
	var services []entities.Service
	if err := c.get(ctx, "/api/v1/service/serviceList", "", &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) StylistList(ctx context.Context) ([]entities.Stylist, error) {
	var stylists []entities.Stylist
	if err := c.get(ctx, "/api/v1/stylist/stylistList", "", &stylists); err != nil {
		return nil, err
	}
	return stylists, nil
}

// StylistsByService lists the stylists qualified for one service.
func (c *Client) StylistsByService(ctx context.Context, serviceID int) ([]entities.Stylist, error) {
	var stylists []entities.Stylist
	path := fmt.Sprintf("/api/v1/stylist/getStylistByServiceId/%d", serviceID)
	if err := c.get(ctx, path, "", &stylists); err != nil {
		return nil, err
	}
	return stylists, nil
}

// StylistsByDate lists the stylists free at a given date and start time.
func (c *Client) StylistsByDate(ctx context.Context, startDate, startTime string) ([]entities.Stylist, error) {
	var stylists []entities.Stylist
	q := url.Values{"startDate": {startDate}, "startTime": {startTime}}
	if err := c.get(ctx, "/api/v1/stylist/stylistByDate?"+q.Encode(), "", &stylists); err != nil {
		return nil, err
	}
	return stylists, nil
}

func (c *Client) VoucherList(ctx context.Context, token string) ([]entities.Voucher, error) {
	var vouchers []entities.Voucher
	if err := c.get(ctx, "/api/v1/voucher/voucherList", token, &vouchers); err != nil {
		return nil, err
	}
	return vouchers, nil
}

func (c *Client) VoucherByID(ctx context.Context, token string, voucherID int) (*entities.Voucher, error) {
	var voucher entities.Voucher
	path := fmt.Sprintf("/api/v1/voucher/GetVoucherById/%d", voucherID)
	if err := c.get(ctx, path, token, &voucher); err != nil {
		return nil, err
	}
	return &voucher, nil
}
