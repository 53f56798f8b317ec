package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const CtxSessionKey = "session"

// JWTMiddleware verifies the bearer token and restores the persisted
// session. A valid token whose session was signed out is rejected.
func JWTMiddleware(secret string, shell *Shell) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header is missing")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization must be 'Bearer <token>'")
		}

		claims, err := ParseToken(secret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		sess, err := shell.Restore(claims.UserID)
		if err != nil {
			log.Errorf("Restore session for %s: %v", claims.UserID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Session storage is unavailable")
		}
		if !sess.Authenticated() {
			return fiber.NewError(fiber.StatusUnauthorized, "Session has ended, sign in again")
		}

		c.Locals(CtxSessionKey, sess)
		return c.Next()
	}
}

// SessionFrom returns the session JWTMiddleware stored on the request.
func SessionFrom(c *fiber.Ctx) (Session, bool) {
	sess, ok := c.Locals(CtxSessionKey).(Session)
	return sess, ok && sess.Authenticated()
}

// RequireTab hides a screen from roles whose navigation does not include it.
func RequireTab(tab Tab) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := SessionFrom(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Not signed in")
		}
		if !CanReach(sess.User.Role, tab) {
			return fiber.NewError(fiber.StatusForbidden, "This screen is not available for your role")
		}
		return c.Next()
	}
}
