package salon

import (
	"context"
	"errors"
	"net/http"

	"hairsalon/internal/entities"
)

// ResetPassword asks the backend to mail a password reset. The backend's
// envelope passes through untouched, except that HTTP 404 means the address
// is unknown and maps to {status: -1, message: "User not found."} so callers
// can tell it from a generic failure.
func (c *Client) ResetPassword(ctx context.Context, email string) (*entities.ResetPasswordResult, error) {
	var result entities.ResetPasswordResult
	err := c.post(ctx, "/api/v1/users/resetPassword", "", entities.ResetPasswordRequest{Email: email}, &result.Data)
	if err == nil {
		result.Status = 1
		return &result, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPCode == http.StatusNotFound {
			return &entities.ResetPasswordResult{Status: -1, Message: "User not found."}, nil
		}
		return &entities.ResetPasswordResult{Status: apiErr.Status, Message: apiErr.Message}, nil
	}
	return nil, err
}
