package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/cage-reservations/internal/testutil/memory"
)

var epoch = time.Date(2030, 3, 4, 16, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, handler http.HandlerFunc, pageSize int) (*SnipeITClient, *memory.Clock) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	clock := memory.NewClock(epoch)
	client := NewSnipeITClient(SnipeITConfig{
		BaseURL:  server.URL + "/",
		APIKey:   "secret-token",
		PageSize: pageSize,
	}, server.Client(), clock, logger.NewNoopLogger())
	return client, clock
}

func TestCheckout_SendsAssignment(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/hardware/42/checkout", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(7), body["assigned_user"])
		assert.Equal(t, "user", body["checkout_to_type"])
		assert.Equal(t, "2030-03-05", body["expected_checkin"])

		fmt.Fprint(w, `{"status":"success","messages":"Asset checked out successfully."}`)
	}, 0)

	err := client.Checkout(context.Background(), 42, 7, epoch.Add(24*time.Hour))
	assert.NoError(t, err)
}

func TestCheckout_LogicalErrorInsideOK(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"error","messages":"That asset is not available for checkout!"}`)
	}, 0)

	err := client.Checkout(context.Background(), 42, 7, epoch)
	require.Error(t, err)
	assert.True(t, errs.IsExternalServiceError(err))
	assert.Contains(t, err.Error(), "not available for checkout")
}

func TestCheckin_FieldMessages(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hardware/42/checkin", r.URL.Path)
		fmt.Fprint(w, `{"status":"error","messages":{"asset":["Asset is not checked out"]}}`)
	}, 0)

	err := client.Checkin(context.Background(), 42)
	require.Error(t, err)

	var external *errs.ExternalServiceError
	require.ErrorAs(t, err, &external)
	assert.Equal(t, "checkin", external.Operation)
	assert.Equal(t, []string{"asset: Asset is not checked out"}, external.Messages)
}

func TestDo_RetriesRateLimitWithBackoff(t *testing.T) {
	var calls atomic.Int32
	client, clock := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"status":"success","messages":"ok"}`)
	}, 0)

	require.NoError(t, client.Checkin(context.Background(), 1))
	assert.Equal(t, int32(3), calls.Load())
	// 1s then 2s
	assert.Equal(t, epoch.Add(3*time.Second), clock.Now())
}

func TestDo_ConfiguredRetryPolicy(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	clock := memory.NewClock(epoch)
	client := NewSnipeITClient(SnipeITConfig{
		BaseURL:    server.URL,
		APIKey:     "secret-token",
		MaxRetries: 4,
		RetryDelay: 200 * time.Millisecond,
	}, server.Client(), clock, logger.NewNoopLogger())

	err := client.Checkin(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, int32(4), calls.Load())
	// 200ms, 400ms, 800ms
	assert.Equal(t, epoch.Add(1400*time.Millisecond), clock.Now())
}

func TestDo_RateLimitExhausted(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}, 0)

	err := client.Checkin(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errs.IsExternalServiceError(err))
	assert.Contains(t, err.Error(), "rate limit exceeded")
	assert.Equal(t, int32(defaultMaxRetries), calls.Load())
}

func TestDo_HTTPFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, 0)

	err := client.Checkin(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP status 502")
}

func TestDo_InvalidJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>maintenance</html>`)
	}, 0)

	err := client.Checkin(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errs.IsExternalServiceError(err))
}

func TestDo_Unreachable(t *testing.T) {
	client := NewSnipeITClient(SnipeITConfig{BaseURL: "http://127.0.0.1:1"}, &http.Client{Timeout: time.Second},
		memory.NewClock(epoch), logger.NewNoopLogger())

	err := client.Checkin(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errs.IsExternalServiceError(err))
}

func TestListHardware_Paginates(t *testing.T) {
	const total = 5
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hardware", r.URL.Path)
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		var rows []hardwareRow
		for i := offset; i < offset+limit && i < total; i++ {
			rows = append(rows, hardwareRow{
				ID:       uint64(i + 1),
				AssetTag: fmt.Sprintf("CAM-%04d", i+1),
				Name:     "Camera",
				Model:    namedItem{Name: "Sony FX3"},
				Category: namedItem{Name: "Camera"},
			})
		}
		assert.NoError(t, json.NewEncoder(w).Encode(hardwarePage{Total: total, Rows: rows}))
	}, 2)

	hardware, err := client.ListHardware(context.Background())
	require.NoError(t, err)
	require.Len(t, hardware, total)
	assert.Equal(t, "CAM-0005", hardware[4].Tag)
	assert.Equal(t, "Sony FX3", hardware[0].Model)
	assert.Equal(t, "Camera", hardware[0].Category)
}

func TestListHardware_ErrorEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"error","messages":"Unauthorized."}`)
	}, 0)

	_, err := client.ListHardware(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unauthorized.")
}

func TestParseMessages(t *testing.T) {
	assert.Nil(t, parseMessages(nil))
	assert.Equal(t, []string{"one"}, parseMessages(json.RawMessage(`"one"`)))
	assert.Equal(t, []string{"a", "b"}, parseMessages(json.RawMessage(`["a","b"]`)))
	assert.Equal(t, []string{"x: 1", "y: 2"}, parseMessages(json.RawMessage(`{"y":["2"],"x":["1"]}`)))
}
