package models

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceHalfDay AttendanceStatus = "half-day"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceHalfDay:
		return true
	}
	return false
}

type Attendance struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	UserName    string           `json:"user_name"`
	BranchID    string           `json:"branch_id"`
	BranchName  string           `json:"branch_name"`
	Date        string           `json:"date"`      // YYYY-MM-DD
	CheckIn     string           `json:"check_in"`  // HH:MM
	CheckOut    string           `json:"check_out"` // HH:MM
	Status      AttendanceStatus `json:"status"`
	HoursWorked float64          `json:"hours_worked"` // always derived from CheckIn/CheckOut
}
