package auth

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/pawnshop-gateway/internal/domain"
	"github.com/spec-kit/pawnshop-gateway/internal/events"
	"github.com/spec-kit/pawnshop-gateway/internal/notify"
	"github.com/spec-kit/pawnshop-gateway/internal/observability"
	"github.com/spec-kit/pawnshop-gateway/internal/session"
)

// Denial reason codes.
const (
	ReasonAdminAccessDenied   = "admin_access_denied"
	ReasonNoAdminSession      = "no_admin_session"
	ReasonAdminSessionExpired = "admin_session_expired"
	ReasonAdminOnUserPage     = "admin_on_user_page"
	ReasonNoUserSession       = "no_user_session"
	ReasonUserSessionExpired  = "user_session_expired"
)

// Verdict is the outcome of one guard evaluation. It is recomputed per
// request and never stored.
type Verdict struct {
	Allow      bool
	Canceled   bool
	Reason     string
	RedirectTo string
	Message    string
}

func allow() Verdict { return Verdict{Allow: true} }

func deny(reason, redirectTo, message string) Verdict {
	return Verdict{Reason: reason, RedirectTo: redirectTo, Message: message}
}

// Validator re-checks stored tokens against the upstream service.
type Validator interface {
	ValidateToken(ctx context.Context, token string) error
	ValidateAdmin(ctx context.Context, token string) error
}

// Guard decides per request whether the current sessions may reach the
// target path, and executes the denial side effects (notify + redirect)
// exactly once per triggering request. Denials clear the offending session
// when the upstream rejects its token; transient network errors are treated
// the same way (fail closed, no retry).
type Guard struct {
	sessions   *session.Store
	validator  Validator
	bus        *notify.Bus
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewGuard constructs the guard.
func NewGuard(sessions *session.Store, validator Validator, bus *notify.Bus, dispatcher events.Dispatcher, metrics *observability.Metrics, logger *zap.Logger) *Guard {
	return &Guard{
		sessions:   sessions,
		validator:  validator,
		bus:        bus,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger,
	}
}

// Evaluate runs the decision table for the path, first match wins. The
// context comes from the request, so a navigation abort cancels any
// in-flight validation call; a canceled evaluation applies no side effects.
func (g *Guard) Evaluate(ctx context.Context, clientID, path string) Verdict {
	state := g.sessions.Snapshot(ctx, clientID)

	switch ClassifyRoute(path) {
	case RouteAdminOnly:
		return g.evaluateAdminRoute(ctx, clientID, path, state)
	case RouteUserOnly:
		return g.evaluateUserRoute(ctx, clientID, path, state)
	default:
		return allow()
	}
}

func (g *Guard) evaluateAdminRoute(ctx context.Context, clientID, path string, state domain.SessionState) Verdict {
	if state.HasUser() {
		return deny(ReasonAdminAccessDenied,
			"/dashboard?error=admin_access_denied",
			"cannot access admin areas while logged in as a regular user")
	}
	if !state.HasAdmin() {
		return deny(ReasonNoAdminSession, "/admin/login", "please login as admin")
	}

	if err := g.validator.ValidateAdmin(ctx, state.AdminToken); err != nil {
		if ctx.Err() != nil {
			return Verdict{Canceled: true}
		}
		g.sessionExpired(ctx, clientID, domain.RoleAdmin, path, err)
		return deny(ReasonAdminSessionExpired, "/admin/login", "admin session expired")
	}
	return allow()
}

func (g *Guard) evaluateUserRoute(ctx context.Context, clientID, path string, state domain.SessionState) Verdict {
	if state.HasAdmin() {
		// A stray admin session on an excluded page must not redirect,
		// or the admin would loop between the two dashboards.
		if InExclusionSet(path) {
			return allow()
		}
		return deny(ReasonAdminOnUserPage, "/admin/dashboard", "admin accounts cannot access user pages")
	}
	if !state.HasUser() {
		return deny(ReasonNoUserSession, "/login", "please login")
	}

	if err := g.validator.ValidateToken(ctx, state.UserToken); err != nil {
		if ctx.Err() != nil {
			return Verdict{Canceled: true}
		}
		g.sessionExpired(ctx, clientID, domain.RoleUser, path, err)
		return deny(ReasonUserSessionExpired, "/login", "session expired")
	}
	return allow()
}

// sessionExpired clears the role's session after an upstream rejection and
// records the event. Network errors land here too; they are
// indistinguishable from invalid tokens in this design.
func (g *Guard) sessionExpired(ctx context.Context, clientID string, role domain.Role, path string, cause error) {
	g.sessions.ClearSession(ctx, clientID, role)
	g.logger.Info("session invalidated by upstream",
		zap.String("role", string(role)),
		zap.String("path", path),
		zap.Error(cause),
	)
	g.emit(ctx, events.EventValidationFailed, clientID, role, "", path)
}

// Middleware enforces the guard on protected routes. Each denial publishes
// exactly one error notification and answers with a redirect.
func (g *Guard) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientID := ClientID(c)
		verdict := g.Evaluate(c.UserContext(), clientID, c.Path())

		if verdict.Canceled {
			return fiber.ErrRequestTimeout
		}
		if verdict.Allow {
			return c.Next()
		}

		g.bus.Publish(clientID, verdict.Message, domain.SeverityError, 0)
		g.metrics.RecordDenial(verdict.Reason)
		g.emit(c.UserContext(), events.EventGuardDenied, clientID, "", verdict.Reason, c.Path())

		return c.Redirect(verdict.RedirectTo, fiber.StatusSeeOther)
	}
}

func (g *Guard) emit(ctx context.Context, eventType events.EventType, clientID string, role domain.Role, reason, path string) {
	if g.dispatcher == nil {
		return
	}
	_ = g.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ClientID:  clientID,
		Role:      role,
		Reason:    reason,
		Path:      path,
		Timestamp: time.Now(),
	})
}
