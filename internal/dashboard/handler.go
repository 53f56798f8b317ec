package dashboard

import (
	"multibranch-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// GET /api/analytics
func AnalyticsHandler(svc *Analytics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		overview, err := svc.Overview()
		if err != nil {
			log.Errorf("Analytics overview: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Analytics could not be loaded")
		}
		return c.JSON(overview)
	}
}

// GET /api/staff/dashboard for the signed-in user
func StaffDashboardHandler(svc *Staff) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := auth.SessionFrom(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Not signed in")
		}
		view, err := svc.View(*sess.User)
		if err != nil {
			log.Errorf("Staff dashboard for %s: %v", sess.User.ID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Dashboard could not be loaded")
		}
		return c.JSON(view)
	}
}
