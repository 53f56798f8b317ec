package payroll

import (
	"multibranch-backend/internal/crud"
	"multibranch-backend/internal/export"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const msgNotFound = "Payroll record not found"

type PreviewRequest struct {
	BaseSalary decimal.Decimal `json:"base_salary"`
	Allowances decimal.Decimal `json:"allowances"`
	Deductions decimal.Decimal `json:"deductions"`
}

type PreviewResponse struct {
	NetSalary decimal.Decimal `json:"net_salary"`
}

// GET /api/payroll?search=sarah
func ListPayrollHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := svc.List(c.Query("search"))
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(records)
	}
}

func GetPayrollHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.Params("id"))
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(p)
	}
}

func CreatePayrollHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body Form
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		p, err := svc.Create(body)
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

func UpdatePayrollHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body Form
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		p, err := svc.Update(c.Params("id"), body)
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(p)
	}
}

// DELETE /api/payroll/:id?confirm=true
func DeletePayrollHandler(svc *Service) fiber.Handler {
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

// POST /api/payroll/preview recomputes the net salary while the form is edited.
func PreviewPayrollHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PreviewRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		return c.JSON(PreviewResponse{
			NetSalary: Preview(body.BaseSalary, body.Allowances, body.Deductions),
		})
	}
}

func PayrollSummaryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sum, err := svc.Summary()
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(sum)
	}
}

// GET /api/payroll/metrics/:kind (base | allowances | deductions | net)
func PayrollMetricViewHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := svc.MetricView(c.Params("kind"))
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}
		return c.JSON(view)
	}
}

// GET /api/payroll/export?search=
func ExportPayrollHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := svc.List(c.Query("search"))
		if err != nil {
			return crud.HTTPError(err, msgNotFound)
		}

		rows := make([][]any, 0, len(records)+1)
		for _, p := range records {
			rows = append(rows, []any{
				p.UserName, p.BranchName, p.Month,
				p.BaseSalary.InexactFloat64(), p.Allowances.InexactFloat64(),
				p.Deductions.InexactFloat64(), p.NetSalary.InexactFloat64(),
				string(p.Status),
			})
		}
		t := TotalsOf(records)
		rows = append(rows, []any{
			"Total", "", "",
			t.BaseSalary.InexactFloat64(), t.Allowances.InexactFloat64(),
			t.Deductions.InexactFloat64(), t.NetSalary.InexactFloat64(),
			"",
		})

		buf, err := export.Workbook("Payroll",
			[]string{"Employee", "Branch", "Month", "Base Salary", "Allowances", "Deductions", "Net Salary", "Status"}, rows)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Payroll export failed")
		}
		return export.Send(c, "payroll.xlsx", buf)
	}
}
