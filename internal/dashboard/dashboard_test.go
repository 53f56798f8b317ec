package dashboard

import (
	"testing"

	"multibranch-backend/internal/attendance"
	"multibranch-backend/internal/branch"
	"multibranch-backend/internal/fixtures"
	"multibranch-backend/internal/models"
	"multibranch-backend/internal/payroll"
	"multibranch-backend/internal/store"
	"multibranch-backend/internal/workflow"
)

type services struct {
	branches   *branch.Service
	workflows  *workflow.Service
	attendance *attendance.Service
	payroll    *payroll.Service
}

func newServices() services {
	kv := store.NewMemoryKV()
	users := fixtures.Users()
	b := branch.NewService(kv)
	return services{
		branches:   b,
		workflows:  workflow.NewService(kv, b),
		attendance: attendance.NewService(kv, b, users),
		payroll:    payroll.NewService(kv, b, users),
	}
}

func TestOverviewCounters(t *testing.T) {
	s := newServices()
	overview, err := NewAnalytics(s.branches, s.workflows, s.attendance, s.payroll).Overview()
	if err != nil {
		t.Fatal(err)
	}
	want := Counters{
		TotalBranches:      4,
		ActiveBranches:     3,
		TotalStaff:         80,
		TotalWorkflows:     5,
		CompletedWorkflows: 2,
		CompletionRate:     40,
		AttendanceRate:     60,
		PayrollProcessed:   2,
	}
	if overview.Counters != want {
		t.Fatalf("expected %+v, got %+v", want, overview.Counters)
	}
	if len(overview.WeeklyWorkflows) != 7 || len(overview.BranchPerformance) != 4 {
		t.Fatalf("chart series missing")
	}
}

func TestOverviewFollowsEdits(t *testing.T) {
	s := newServices()
	a := NewAnalytics(s.branches, s.workflows, s.attendance, s.payroll)
	if _, err := s.branches.ToggleStatus("branch-4"); err != nil {
		t.Fatal(err)
	}
	overview, _ := a.Overview()
	if overview.Counters.ActiveBranches != 4 {
		t.Fatalf("expected 4 active branches after toggle, got %d", overview.Counters.ActiveBranches)
	}
}

func TestStaffView(t *testing.T) {
	s := newServices()
	john := fixtures.Users()[1]
	view, err := NewStaff(s.workflows, s.attendance, s.payroll).View(john)
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Workflows) != 2 || view.CompletedWorkflows != 0 {
		t.Fatalf("unexpected workflows %+v", view.Workflows)
	}
	if len(view.RecentAttendance) != 2 || view.TotalHours != 16.5 || view.AttendanceRate != 100 {
		t.Fatalf("unexpected attendance block %+v", view)
	}
	if view.Payroll == nil || view.Payroll.ID != "pay-1" {
		t.Fatalf("expected pay-1, got %+v", view.Payroll)
	}
}

func TestStaffViewForUserWithoutRecords(t *testing.T) {
	s := newServices()
	stranger := models.User{ID: "user-9", Name: "Nobody", Role: models.RoleStaff}
	view, err := NewStaff(s.workflows, s.attendance, s.payroll).View(stranger)
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Workflows) != 0 || len(view.RecentAttendance) != 0 || view.Payroll != nil {
		t.Fatalf("expected empty view, got %+v", view)
	}
	if view.AttendanceRate != 0 || view.TotalHours != 0 {
		t.Fatalf("rates must be 0 with no records")
	}
}

func TestStaffViewKeepsFiveRecentRecords(t *testing.T) {
	s := newServices()
	for _, day := range []string{"2024-02-14", "2024-02-15", "2024-02-16", "2024-02-17"} {
		_, err := s.attendance.Create(attendance.Form{
			UserID: "user-2", UserName: "John Smith", BranchID: "branch-1",
			Date: day, CheckIn: "09:00", CheckOut: "17:00",
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	view, _ := NewStaff(s.workflows, s.attendance, s.payroll).View(fixtures.Users()[1])
	if len(view.RecentAttendance) != 5 {
		t.Fatalf("expected 5 recent records, got %d", len(view.RecentAttendance))
	}
	if view.TotalHours != 48.5 {
		t.Fatalf("total hours cover every record, got %v", view.TotalHours)
	}
}
