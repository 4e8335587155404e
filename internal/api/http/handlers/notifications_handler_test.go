package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/pawnshop-gateway/internal/api/http/handlers"
	"github.com/spec-kit/pawnshop-gateway/internal/domain"
	"github.com/spec-kit/pawnshop-gateway/internal/notify"
)

func newNotificationsApp(bus *notify.Bus) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("client_id", "c1")
		return c.Next()
	})
	h := handlers.NewNotificationsHandler(bus)
	app.Get("/api/notifications", h.List)
	app.Delete("/api/notifications/:id", h.Dismiss)
	return app
}

func TestListReturnsActiveNotifications(t *testing.T) {
	bus := notify.NewBus(5*time.Second, zap.NewNop())
	id := bus.Publish("c1", "hello", domain.SeverityInfo, 0)
	app := newNotificationsApp(bus)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/notifications", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []domain.Notification `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, id, body.Data[0].ID)
}

func TestDismissRemovesNotification(t *testing.T) {
	bus := notify.NewBus(5*time.Second, zap.NewNop())
	id := bus.Publish("c1", "bye", domain.SeverityInfo, 0)
	app := newNotificationsApp(bus)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/notifications/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, bus.Active("c1"))

	// Dismissing again still succeeds.
	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/notifications/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
