package server

import (
	"strings"

	"multibranch-backend/internal/attendance"
	"multibranch-backend/internal/auth"
	"multibranch-backend/internal/branch"
	"multibranch-backend/internal/config"
	"multibranch-backend/internal/dashboard"
	"multibranch-backend/internal/fixtures"
	"multibranch-backend/internal/payroll"
	"multibranch-backend/internal/store"
	"multibranch-backend/internal/workflow"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// New wires every service onto kv and registers the routes.
func New(cfg *config.Config, kv store.KV) (*fiber.App, error) {
	users := fixtures.Users()
	shell, err := auth.NewShell(kv, users)
	if err != nil {
		return nil, err
	}

	branches := branch.NewService(kv)
	workflows := workflow.NewService(kv, branches)
	records := attendance.NewService(kv, branches, users)
	pay := payroll.NewService(kv, branches, users)
	analytics := dashboard.NewAnalytics(branches, workflows, records, pay)
	staff := dashboard.NewStaff(workflows, records, pay)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Errorf("Unexpected error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg.JWTSecret, shell))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg.JWTSecret, shell))

	protected.Get("/auth/me", auth.MeHandler())
	protected.Post("/auth/logout", auth.LogoutHandler(shell))
	protected.Put("/session/tab", auth.SetTabHandler(shell))

	// Analytics
	protected.Get("/analytics", auth.RequireTab(auth.TabAnalytics), dashboard.AnalyticsHandler(analytics))

	// Branches
	br := protected.Group("/branches", auth.RequireTab(auth.TabBranches))
	br.Get("/", branch.ListBranchesHandler(branches))
	br.Get("/summary", branch.BranchSummaryHandler(branches))
	br.Get("/metrics/:kind", branch.BranchMetricViewHandler(branches))
	br.Get("/:id", branch.GetBranchHandler(branches))
	br.Post("/", branch.CreateBranchHandler(branches))
	br.Put("/:id", branch.UpdateBranchHandler(branches))
	br.Post("/:id/toggle-status", branch.ToggleBranchStatusHandler(branches))
	br.Delete("/:id", branch.DeleteBranchHandler(branches))

	// Workflows
	wf := protected.Group("/workflows", auth.RequireTab(auth.TabWorkflows))
	wf.Get("/", workflow.ListWorkflowsHandler(workflows))
	wf.Get("/summary", workflow.WorkflowSummaryHandler(workflows))
	wf.Get("/metrics/:kind", workflow.WorkflowMetricViewHandler(workflows))
	wf.Get("/:id", workflow.GetWorkflowHandler(workflows))
	wf.Post("/", workflow.CreateWorkflowHandler(workflows))
	wf.Put("/:id", workflow.UpdateWorkflowHandler(workflows))
	wf.Delete("/:id", workflow.DeleteWorkflowHandler(workflows))

	// Attendance
	at := protected.Group("/attendance", auth.RequireTab(auth.TabAttendance))
	at.Get("/", attendance.ListAttendanceHandler(records))
	at.Get("/summary", attendance.AttendanceSummaryHandler(records))
	at.Get("/metrics/:kind", attendance.AttendanceMetricViewHandler(records))
	at.Get("/export", attendance.ExportAttendanceHandler(records))
	at.Get("/:id", attendance.GetAttendanceHandler(records))
	at.Post("/", attendance.CreateAttendanceHandler(records))
	at.Put("/:id", attendance.UpdateAttendanceHandler(records))
	at.Delete("/:id", attendance.DeleteAttendanceHandler(records))

	// Payroll
	pr := protected.Group("/payroll", auth.RequireTab(auth.TabPayroll))
	pr.Get("/", payroll.ListPayrollHandler(pay))
	pr.Get("/summary", payroll.PayrollSummaryHandler(pay))
	pr.Get("/metrics/:kind", payroll.PayrollMetricViewHandler(pay))
	pr.Get("/export", payroll.ExportPayrollHandler(pay))
	pr.Post("/preview", payroll.PreviewPayrollHandler())
	pr.Get("/:id", payroll.GetPayrollHandler(pay))
	pr.Post("/", payroll.CreatePayrollHandler(pay))
	pr.Put("/:id", payroll.UpdatePayrollHandler(pay))
	pr.Delete("/:id", payroll.DeletePayrollHandler(pay))

	// Staff dashboard
	protected.Get("/staff/dashboard", auth.RequireTab(auth.TabStaffDashboard), dashboard.StaffDashboardHandler(staff))

	return app, nil
}
