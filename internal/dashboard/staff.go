package dashboard

import (
	"multibranch-backend/internal/attendance"
	"multibranch-backend/internal/metrics"
	"multibranch-backend/internal/models"
)

const recentAttendance = 5

type StaffView struct {
	User               models.User         `json:"user"`
	Workflows          []models.Workflow   `json:"workflows"`
	CompletedWorkflows int                 `json:"completed_workflows"`
	RecentAttendance   []models.Attendance `json:"recent_attendance"`
	TotalHours         float64             `json:"total_hours"`
	AttendanceRate     float64             `json:"attendance_rate"`
	Payroll            *models.Payroll     `json:"payroll"`
}

type Staff struct {
	workflows  WorkflowSource
	attendance AttendanceSource
	payroll    PayrollSource
}

func NewStaff(w WorkflowSource, a AttendanceSource, p PayrollSource) *Staff {
	return &Staff{workflows: w, attendance: a, payroll: p}
}

// View collects the records that name the user: workflows assigned to them,
// their attendance and their first payroll record. Matching is by display
// name, the same name the records carry.
func (s *Staff) View(u models.User) (StaffView, error) {
	workflows, err := s.workflows.Snapshot()
	if err != nil {
		return StaffView{}, err
	}
	records, err := s.attendance.Snapshot()
	if err != nil {
		return StaffView{}, err
	}
	payroll, err := s.payroll.Snapshot()
	if err != nil {
		return StaffView{}, err
	}

	view := StaffView{User: u, Workflows: []models.Workflow{}, RecentAttendance: []models.Attendance{}}
	for _, w := range workflows {
		if w.AssignedTo == u.Name {
			view.Workflows = append(view.Workflows, w)
		}
	}
	view.CompletedWorkflows = metrics.Count(view.Workflows, func(w models.Workflow) bool {
		return w.Status == models.WorkflowCompleted
	})

	var mine []models.Attendance
	for _, a := range records {
		if a.UserName == u.Name {
			mine = append(mine, a)
		}
	}
	view.TotalHours = metrics.Round(metrics.SumFloat(mine, func(a models.Attendance) float64 { return a.HoursWorked }), 2)
	view.AttendanceRate = metrics.Round(attendance.AttendanceRate(mine), 0)
	if len(mine) > recentAttendance {
		view.RecentAttendance = mine[:recentAttendance]
	} else if len(mine) > 0 {
		view.RecentAttendance = mine
	}

	for i := range payroll {
		if payroll[i].UserName == u.Name {
			view.Payroll = &payroll[i]
			break
		}
	}
	return view, nil
}
