package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	adapter "parcel-tracker/internal/features/tracking/adapters"
	"parcel-tracker/internal/features/tracking/domain"
	"parcel-tracker/internal/features/tracking/ports"
	"parcel-tracker/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBackend answers every query with a fixed text.
type stubBackend struct {
	name   string
	answer string
	calls  int
}

func (s *stubBackend) Name() string     { return s.name }
func (s *stubBackend) Configured() bool { return s.answer != "" }

func (s *stubBackend) Query(ctx context.Context, trackingNumber, carrierHint string) (string, error) {
	s.calls++
	return s.answer, nil
}

// slowBackend blocks until its call context ends.
type slowBackend struct {
	name  string
	calls int32
}

func (s *slowBackend) Name() string     { return s.name }
func (s *slowBackend) Configured() bool { return true }

func (s *slowBackend) Query(ctx context.Context, trackingNumber, carrierHint string) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	<-ctx.Done()
	return "", ctx.Err()
}

func setupApp(backends ...ports.TrackingBackend) *fiber.App {
	return setupAppWithTimeouts(time.Second, 0, backends...)
}

func setupAppWithTimeouts(backendTimeout, requestTimeout time.Duration, backends ...ports.TrackingBackend) *fiber.App {
	resolver := service.NewResolver(backends, adapter.NewSyntheticGenerator(nil), backendTimeout, nil)
	h := NewTrackingHandler(service.NewTrackingService(resolver, nil), requestTimeout)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	h.Register(app)
	return app
}

func postTrack(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", "/track", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// TestTrackingHandler_Track_FallbackWhenUnconfigured covers the all-unconfigured path end to end.
func TestTrackingHandler_Track_FallbackWhenUnconfigured(t *testing.T) {
	app := setupApp(&stubBackend{name: "perplexity"}, &stubBackend{name: "openai"})

	status, body := postTrack(t, app, `{"trackingNumber":"TBA123456789012"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	_, err := time.Parse(time.RFC3339, body["timestamp"].(string))
	assert.NoError(t, err)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "fallback", data["source"])
	assert.Equal(t, "Amazon", data["carrier"])
	assert.Equal(t, "TBA123456789012", data["trackingNumber"])
	checkpoints := data["checkpoints"].([]interface{})
	require.GreaterOrEqual(t, len(checkpoints), 1)
	assert.Equal(t, true, checkpoints[0].(map[string]interface{})["isCurrent"])
}

func TestTrackingHandler_Track_DeliveredHasNullETA(t *testing.T) {
	primary := &stubBackend{
		name:   "perplexity",
		answer: `{"carrier":"UPS","status":"Delivered","statusCode":"DL","estimatedDelivery":"2026-03-02"}`,
	}
	secondary := &stubBackend{name: "openai", answer: `{"carrier":"UPS","status":"In Transit"}`}
	app := setupApp(primary, secondary)

	status, body := postTrack(t, app, `{"trackingNumber":"1Z999AA10123456784"}`)

	assert.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "DL", data["statusCode"])
	assert.Equal(t, "Delivered", data["status"])
	assert.Nil(t, data["estimatedDelivery"])
	assert.Contains(t, data, "estimatedDelivery")
	assert.Equal(t, "perplexity", data["source"])
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls)
}

func TestTrackingHandler_Track_Rejections(t *testing.T) {
	app := setupApp()

	tests := []struct {
		name   string
		body   string
		reason string
	}{
		{"too short", `{"trackingNumber":"abc"}`, "Tracking number too short"},
		{"no alphanumerics", `{"trackingNumber":"-----"}`, "Invalid format"},
		{"bad layout", `{"trackingNumber":"AB-12"}`, "Invalid tracking format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := postTrack(t, app, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Invalid tracking number", body["error"])
			assert.Equal(t, tt.reason, body["reason"])
			assert.Equal(t, true, body["hoaxDetected"])
			assert.Equal(t, "test-ray-id", body["ray_id"])
		})
	}
}

func TestTrackingHandler_Track_MissingNumber(t *testing.T) {
	app := setupApp()

	status, body := postTrack(t, app, `{}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Tracking number required", body["error"])
	assert.NotContains(t, body, "hoaxDetected")
}

func TestTrackingHandler_Track_MalformedBody(t *testing.T) {
	app := setupApp()

	status, body := postTrack(t, app, `{"trackingNumber":`)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to track package", body["error"])
}

func TestTrackingHandler_Preflight(t *testing.T) {
	app := setupApp()

	resp, err := app.Test(httptest.NewRequest("OPTIONS", "/track", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Contains(t, resp.Header.Get(fiber.HeaderAccessControlAllowMethods), "POST")
}

func TestTrackingHandler_RecordShape(t *testing.T) {
	app := setupApp()

	_, body := postTrack(t, app, `{"trackingNumber":"ABCDEFGH1234"}`)
	data := body["data"].(map[string]interface{})

	for _, key := range []string{
		"trackingNumber", "carrier", "status", "statusCode", "location",
		"estimatedDelivery", "confidence", "checkpoints", "source",
	} {
		assert.Contains(t, data, key)
	}
	assert.Equal(t, domain.UnknownCarrier, data["carrier"])
	assert.Equal(t, float64(70), data["validationConfidence"])
}

// TestTrackingHandler_Track_RequestDeadline verifies the request deadline cuts off slow backends
// and the answer still degrades to the fallback.
func TestTrackingHandler_Track_RequestDeadline(t *testing.T) {
	primary := &slowBackend{name: "perplexity"}
	secondary := &slowBackend{name: "openai"}
	app := setupAppWithTimeouts(5*time.Second, 100*time.Millisecond, primary, secondary)

	req := httptest.NewRequest("POST", "/track", strings.NewReader(`{"trackingNumber":"1Z999AA10123456784"}`))
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := app.Test(req, 3000)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "fallback", body["data"].(map[string]interface{})["source"])

	assert.Equal(t, int32(1), atomic.LoadInt32(&primary.calls))
	assert.Equal(t, int32(0), atomic.LoadInt32(&secondary.calls))
}
