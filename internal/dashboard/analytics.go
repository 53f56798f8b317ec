package dashboard

import (
	"multibranch-backend/internal/attendance"
	"multibranch-backend/internal/branch"
	"multibranch-backend/internal/metrics"
	"multibranch-backend/internal/models"
	"multibranch-backend/internal/workflow"
)

type BranchSource interface {
	Snapshot() ([]models.Branch, error)
}

type WorkflowSource interface {
	Snapshot() ([]models.Workflow, error)
}

type AttendanceSource interface {
	Snapshot() ([]models.Attendance, error)
}

type PayrollSource interface {
	Snapshot() ([]models.Payroll, error)
}

type ChartPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type StatusSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type Counters struct {
	TotalBranches      int     `json:"total_branches"`
	ActiveBranches     int     `json:"active_branches"`
	TotalStaff         int     `json:"total_staff"`
	TotalWorkflows     int     `json:"total_workflows"`
	CompletedWorkflows int     `json:"completed_workflows"`
	CompletionRate     float64 `json:"completion_rate"`
	AttendanceRate     float64 `json:"attendance_rate"`
	PayrollProcessed   int     `json:"payroll_processed"`
}

type Overview struct {
	Counters          Counters      `json:"counters"`
	WeeklyWorkflows   []ChartPoint  `json:"weekly_workflows"`
	BranchPerformance []ChartPoint  `json:"branch_performance"`
	StatusBreakdown   []StatusSlice `json:"status_breakdown"`
}

// Chart series are fixed display data; only the counters are live.
var (
	weeklyWorkflows = []ChartPoint{
		{"Mon", 12}, {"Tue", 15}, {"Wed", 18}, {"Thu", 14}, {"Fri", 20}, {"Sat", 8}, {"Sun", 5},
	}
	branchPerformance = []ChartPoint{
		{"Downtown", 85}, {"Uptown", 92}, {"Eastside", 78}, {"Westside", 65},
	}
	statusBreakdown = []StatusSlice{
		{"Completed", 28, "#10b981"},
		{"In Progress", 12, "#3b82f6"},
		{"Pending", 3, "#f59e0b"},
		{"Overdue", 2, "#ef4444"},
	}
)

type Analytics struct {
	branches   BranchSource
	workflows  WorkflowSource
	attendance AttendanceSource
	payroll    PayrollSource
}

func NewAnalytics(b BranchSource, w WorkflowSource, a AttendanceSource, p PayrollSource) *Analytics {
	return &Analytics{branches: b, workflows: w, attendance: a, payroll: p}
}

func (a *Analytics) Overview() (Overview, error) {
	branches, err := a.branches.Snapshot()
	if err != nil {
		return Overview{}, err
	}
	workflows, err := a.workflows.Snapshot()
	if err != nil {
		return Overview{}, err
	}
	records, err := a.attendance.Snapshot()
	if err != nil {
		return Overview{}, err
	}
	payroll, err := a.payroll.Snapshot()
	if err != nil {
		return Overview{}, err
	}

	bs := branch.Summarize(branches)
	ws := workflow.Summarize(workflows)
	return Overview{
		Counters: Counters{
			TotalBranches:      bs.Total,
			ActiveBranches:     bs.Active,
			TotalStaff:         bs.TotalStaff,
			TotalWorkflows:     ws.Total,
			CompletedWorkflows: ws.Completed,
			CompletionRate:     ws.CompletionRate,
			AttendanceRate:     metrics.Round(attendance.AttendanceRate(records), 1),
			PayrollProcessed: metrics.Count(payroll, func(p models.Payroll) bool {
				return p.Status == models.PayrollProcessed || p.Status == models.PayrollPaid
			}),
		},
		WeeklyWorkflows:   weeklyWorkflows,
		BranchPerformance: branchPerformance,
		StatusBreakdown:   statusBreakdown,
	}, nil
}
