package salon

import (
	"context"
	"fmt"

	"hairsalon/internal/entities"
)

func (c *Client) ReportList(ctx context.Context, token string) ([]entities.Report, error) {
	var reports []entities.Report
	if err := c.get(ctx, "/api/v1/reports/reportList", token, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *Client) CreateReport(ctx context.Context, token string, req entities.ReportRequest) (*entities.Report, error) {
	var report entities.Report
	if err := c.post(ctx, "/api/v1/reports/createReport", token, req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) UpdateReport(ctx context.Context, token string, reportID int, req entities.ReportRequest) (*entities.Report, error) {
	var report entities.Report
	path := fmt.Sprintf("/api/v1/reports/updateReport/%d", reportID)
	if err := c.post(ctx, path, token, req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) ChangeReportStatus(ctx context.Context, token string, reportID, status int) error {
	path := fmt.Sprintf("/api/v1/reports/changeReportStatus/%d", reportID)
	return c.post(ctx, path, token, entities.ChangeReportStatusRequest{Status: status}, nil)
}
