package branch

import (
	"multibranch-backend/internal/crud"

	"github.com/gofiber/fiber/v2"
)

const msgNotFound = "Branch not found"

// ----------------------------------------
// BRANCH CRUD
// ----------------------------------------

// GET /api/branches?search=down
func ListBranchesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branches, err := svc.List(c.Query("search"))
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(branches)
	}
}

func GetBranchHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		b, err := svc.Get(c.Params("id"))
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(b)
	}
}

func CreateBranchHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body Form
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		b, err := svc.Create(body)
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.Status(fiber.StatusCreated).JSON(b)
	}
}

func UpdateBranchHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body Form
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		b, err := svc.Update(c.Params("id"), body)
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(b)
	}
}

// POST /api/branches/:id/toggle-status
func ToggleBranchStatusHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		b, err := svc.ToggleStatus(c.Params("id"))
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(b)
	}
}

// DELETE /api/branches/:id?confirm=true
func DeleteBranchHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := crud.Confirmed(c); err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		if err := svc.Delete(c.Params("id")); err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ----------------------------------------
// SUMMARY CARDS
// ----------------------------------------

func BranchSummaryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sum, err := svc.Summary()
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(sum)
	}
}

// GET /api/branches/metrics/:kind (total | active | staff)
func BranchMetricViewHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := svc.MetricView(c.Params("kind"))
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(view)
	}
}
