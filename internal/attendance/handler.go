package attendance

import (
	"multibranch-backend/internal/crud"
	"multibranch-backend/internal/export"

	"github.com/gofiber/fiber/v2"
)

const msgNotFound = "Attendance record not found"

// GET /api/attendance?search=john
func ListAttendanceHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := svc.List(c.Query("search"))
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(records)
	}
}

func GetAttendanceHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := svc.Get(c.Params("id"))
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(a)
	}
}

func CreateAttendanceHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body Form
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		a, err := svc.Create(body)
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}

func UpdateAttendanceHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body Form
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		a, err := svc.Update(c.Params("id"), body)
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(a)
	}
}

// DELETE /api/attendance/:id?confirm=true
func DeleteAttendanceHandler(svc *Service) fiber.Handler {
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

func AttendanceSummaryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sum, err := svc.Summary()
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(sum)
	}
}

// GET /api/attendance/metrics/:kind (present | late | absent | hours)
func AttendanceMetricViewHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := svc.MetricView(c.Params("kind"))
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(view)
	}
}

// GET /api/attendance/export?search=
func ExportAttendanceHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := svc.List(c.Query("search"))
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}

		rows := make([][]any, 0, len(records))
		for _, r := range records {
			rows = append(rows, []any{r.UserName, r.BranchName, r.Date, r.CheckIn, r.CheckOut, string(r.Status), r.HoursWorked})
		}
		buf, err := export.Workbook("Attendance",
			[]string{"Employee", "Branch", "Date", "Check In", "Check Out", "Status", "Hours"}, rows)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Attendance export failed")
		}
		return export.Send(c, "attendance.xlsx", buf)
	}
}
