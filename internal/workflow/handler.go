package workflow

import (
	"multibranch-backend/internal/crud"

	"github.com/gofiber/fiber/v2"
)

const msgNotFound = "Workflow not found"

// GET /api/workflows?search=audit
func ListWorkflowsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		workflows, err := svc.List(c.Query("search"))
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(workflows)
	}
}

func GetWorkflowHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		w, err := svc.Get(c.Params("id"))
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(w)
	}
}

func CreateWorkflowHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body Form
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		w, err := svc.Create(body)
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.Status(fiber.StatusCreated).JSON(w)
	}
}

func UpdateWorkflowHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body Form
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		w, err := svc.Update(c.Params("id"), body)
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(w)
	}
}

// DELETE /api/workflows/:id?confirm=true
func DeleteWorkflowHandler(svc *Service) fiber.Handler {
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

func WorkflowSummaryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sum, err := svc.Summary()
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(sum)
	}
}

// GET /api/workflows/metrics/:kind (total | completed | in-progress | overdue)
func WorkflowMetricViewHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := svc.MetricView(c.Params("kind"))
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(view)
	}
}
