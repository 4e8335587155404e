package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/pawnshop-gateway/internal/config"
)

const clientIDKey = "client_id"

// ClientMiddleware guarantees every request is bound to a client id. The id
// rides in a signed cookie; an absent or invalid cookie gets a fresh id.
type ClientMiddleware struct {
	tokens *TokenManager
	cfg    config.AuthConfig
	logger *zap.Logger
}

// NewClientMiddleware constructs middleware.
func NewClientMiddleware(tokens *TokenManager, cfg config.AuthConfig, logger *zap.Logger) *ClientMiddleware {
	return &ClientMiddleware{tokens: tokens, cfg: cfg, logger: logger}
}

// Handle resolves or mints the client id and stores it in request locals.
func (m *ClientMiddleware) Handle(c *fiber.Ctx) error {
	if raw := c.Cookies(m.cfg.CookieName); raw != "" {
		if clientID, err := m.tokens.ParseClientToken(raw); err == nil {
			c.Locals(clientIDKey, clientID)
			return c.Next()
		}
		m.logger.Debug("invalid session cookie; minting new client id")
	}

	clientID := uuid.NewString()
	token, expiresAt, err := m.tokens.GenerateClientToken(clientID)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     m.cfg.CookieName,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   m.cfg.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
	})
	c.Locals(clientIDKey, clientID)
	return c.Next()
}

// ClientID retrieves the client id bound to the request.
func ClientID(c *fiber.Ctx) string {
	if val, ok := c.Locals(clientIDKey).(string); ok {
		return val
	}
	return ""
}
