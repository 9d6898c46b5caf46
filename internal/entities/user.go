package entities

import "encoding/json"

type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordResult carries the backend envelope through to the caller.
// Status 1 means a reset mail was sent, -1 means the user does not exist,
// 0 is a generic failure.
type ResetPasswordResult struct {
	Status  int             `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}
