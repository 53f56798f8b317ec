// Package fixtures holds the static data every collection is seeded from
// on first run, and the user list the session shell authenticates against.
package fixtures

import (
	"multibranch-backend/internal/models"

	"github.com/shopspring/decimal"
)

func Users() []models.User {
	return []models.User{
		{ID: "user-1", Username: "admin", Password: "admin123", Role: models.RoleAdmin, Name: "Admin User", Email: "admin@company.com"},
		{ID: "user-2", Username: "staff", Password: "staff123", Role: models.RoleStaff, Name: "John Smith", Email: "john.smith@company.com", BranchID: "branch-1"},
		{ID: "user-3", Username: "sarah", Password: "sarah123", Role: models.RoleStaff, Name: "Sarah Johnson", Email: "sarah.johnson@company.com", BranchID: "branch-2"},
		{ID: "user-4", Username: "mike", Password: "mike123", Role: models.RoleStaff, Name: "Mike Davis", Email: "mike.davis@company.com", BranchID: "branch-3"},
	}
}

func Branches() []models.Branch {
	return []models.Branch{
		{ID: "branch-1", Name: "Downtown Branch", Location: "123 Main St, City Center", Manager: "Robert Wilson", Staff: 25, Status: models.BranchActive},
		{ID: "branch-2", Name: "Uptown Branch", Location: "456 Oak Ave, North District", Manager: "Emily Brown", Staff: 18, Status: models.BranchActive},
		{ID: "branch-3", Name: "Eastside Branch", Location: "789 Pine Rd, East District", Manager: "David Lee", Staff: 22, Status: models.BranchActive},
		{ID: "branch-4", Name: "Westside Branch", Location: "321 Elm St, West District", Manager: "Lisa Chen", Staff: 15, Status: models.BranchInactive},
	}
}

func Workflows() []models.Workflow {
	return []models.Workflow{
		{ID: "wf-1", Title: "Monthly Inventory Audit", BranchID: "branch-1", BranchName: "Downtown Branch", AssignedTo: "John Smith", Status: models.WorkflowInProgress, Priority: models.PriorityHigh, DueDate: "2024-02-15", Progress: 65},
		{ID: "wf-2", Title: "Customer Feedback Review", BranchID: "branch-2", BranchName: "Uptown Branch", AssignedTo: "Sarah Johnson", Status: models.WorkflowCompleted, Priority: models.PriorityMedium, DueDate: "2024-02-10", Progress: 100},
		{ID: "wf-3", Title: "Staff Training Program", BranchID: "branch-3", BranchName: "Eastside Branch", AssignedTo: "Mike Davis", Status: models.WorkflowPending, Priority: models.PriorityMedium, DueDate: "2024-02-20", Progress: 0},
		{ID: "wf-4", Title: "Equipment Maintenance", BranchID: "branch-1", BranchName: "Downtown Branch", AssignedTo: "John Smith", Status: models.WorkflowOverdue, Priority: models.PriorityHigh, DueDate: "2024-02-05", Progress: 40},
		{ID: "wf-5", Title: "Quarterly Sales Report", BranchID: "branch-4", BranchName: "Westside Branch", AssignedTo: "Sarah Johnson", Status: models.WorkflowCompleted, Priority: models.PriorityLow, DueDate: "2024-02-12", Progress: 100},
	}
}

func Attendance() []models.Attendance {
	return []models.Attendance{
		{ID: "att-1", UserID: "user-2", UserName: "John Smith", BranchID: "branch-1", BranchName: "Downtown Branch", Date: "2024-02-12", CheckIn: "09:00", CheckOut: "17:00", Status: models.AttendancePresent, HoursWorked: 8},
		{ID: "att-2", UserID: "user-3", UserName: "Sarah Johnson", BranchID: "branch-2", BranchName: "Uptown Branch", Date: "2024-02-12", CheckIn: "09:30", CheckOut: "17:30", Status: models.AttendanceLate, HoursWorked: 8},
		{ID: "att-3", UserID: "user-4", UserName: "Mike Davis", BranchID: "branch-3", BranchName: "Eastside Branch", Date: "2024-02-12", CheckIn: "09:00", CheckOut: "13:00", Status: models.AttendanceHalfDay, HoursWorked: 4},
		{ID: "att-4", UserID: "user-2", UserName: "John Smith", BranchID: "branch-1", BranchName: "Downtown Branch", Date: "2024-02-13", CheckIn: "08:45", CheckOut: "17:15", Status: models.AttendancePresent, HoursWorked: 8.5},
		{ID: "att-5", UserID: "user-4", UserName: "Mike Davis", BranchID: "branch-3", BranchName: "Eastside Branch", Date: "2024-02-13", CheckIn: "00:00", CheckOut: "00:00", Status: models.AttendanceAbsent, HoursWorked: 0},
	}
}

func Payroll() []models.Payroll {
	return []models.Payroll{
		payroll("pay-1", "user-2", "John Smith", "branch-1", "Downtown Branch", "January 2024", 5000, 500, 300, models.PayrollPaid),
		payroll("pay-2", "user-3", "Sarah Johnson", "branch-2", "Uptown Branch", "January 2024", 4500, 400, 250, models.PayrollProcessed),
		payroll("pay-3", "user-4", "Mike Davis", "branch-3", "Eastside Branch", "January 2024", 4800, 450, 280, models.PayrollPending),
	}
}

func payroll(id, userID, userName, branchID, branchName, month string, base, allowances, deductions int64, status models.PayrollStatus) models.Payroll {
	b, a, d := decimal.NewFromInt(base), decimal.NewFromInt(allowances), decimal.NewFromInt(deductions)
	return models.Payroll{
		ID:         id,
		UserID:     userID,
		UserName:   userName,
		BranchID:   branchID,
		BranchName: branchName,
		Month:      month,
		BaseSalary: b,
		Allowances: a,
		Deductions: d,
		NetSalary:  models.NetOf(b, a, d),
		Status:     status,
	}
}
