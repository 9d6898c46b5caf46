package salon

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hairsalon/internal/entities"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, zap.NewNop().Sugar())
}

func writeEnvelope(w http.ResponseWriter, status int, data any, message string) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  status,
		"data":    data,
		"message": message,
	})
}

func TestCreateBookingSendsWireShape(t *testing.T) {
	var body map[string]json.RawMessage
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/booking/createBooking", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeEnvelope(w, 1, map[string]any{"bookingId": 42, "totalPrice": 65, "status": 0}, "")
	})

	voucher := 5
	booking, err := c.CreateBooking(context.Background(), entities.BookingRequest{
		UserName:   "Jane",
		Phone:      "0123456789",
		VoucherID:  &voucher,
		ScheduleID: []int{10, 11},
		ServiceID:  []int{1, 2},
		StylistID:  []int{7, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 42, booking.BookingID)
	assert.Equal(t, 65, booking.TotalPrice)

	// The positional-array wire contract, field by field.
	for _, key := range []string{"userName", "phone", "voucherId", "scheduleId", "serviceId", "stylistId"} {
		assert.Contains(t, body, key)
	}
	assert.JSONEq(t, `[10,11]`, string(body["scheduleId"]))
	assert.JSONEq(t, `[1,2]`, string(body["serviceId"]))
	assert.JSONEq(t, `[7,0]`, string(body["stylistId"]))
}

func TestEnvelopeStatusZeroIsFailureOnHTTP200(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 0, nil, "schedule already booked")
	})

	_, err := c.CreateBooking(context.Background(), entities.BookingRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "schedule already booked", apiErr.Message)
}

func TestBearerTokenAttached(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		writeEnvelope(w, 1, []any{}, "")
	})

	_, err := c.BookingList(context.Background(), "tok-123")
	require.NoError(t, err)
}

func TestScheduleListDecodesData(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/schedule/scheduleList", r.URL.Path)
		writeEnvelope(w, 1, []map[string]any{
			{"scheduleId": 10, "startDate": "2026-09-01", "startTime": "10:00:00", "endTime": "10:30:00"},
		}, "")
	})

	slots, err := c.ScheduleList(context.Background())
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, 10, slots[0].ScheduleID)
	assert.Equal(t, "2026-09-01", slots[0].StartDate)
}

func TestChangeBookingStatusPath(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/booking/changeBookingStatus/42", r.URL.Path)
		var req entities.ChangeBookingStatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 2, req.Status)
		writeEnvelope(w, 1, nil, "")
	})

	require.NoError(t, c.ChangeBookingStatus(context.Background(), "tok", 42, 2))
}

func TestResetPassword404MapsToUserNotFound(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	result, err := c.ResetPassword(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Equal(t, -1, result.Status)
	assert.Equal(t, "User not found.", result.Message)
}

func TestResetPasswordPassesEnvelopeThrough(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 0, nil, "mail service unavailable")
	})

	result, err := c.ResetPassword(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Status)
	assert.Equal(t, "mail service unavailable", result.Message)
}

func TestHTTPErrorStatusSurfaces(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := c.ServiceList(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.HTTPCode)
}
