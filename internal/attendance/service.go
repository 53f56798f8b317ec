package attendance

import (
	"errors"
	"slices"
	"strings"

	"multibranch-backend/internal/crud"
	"multibranch-backend/internal/fixtures"
	"multibranch-backend/internal/metrics"
	"multibranch-backend/internal/models"
	"multibranch-backend/internal/refs"
	"multibranch-backend/internal/store"
)

type BranchSource interface {
	Snapshot() ([]models.Branch, error)
}

// Form is what the attendance dialog submits. HoursWorked is accepted but
// never used; hours always come from CheckIn/CheckOut.
type Form struct {
	UserID      string                  `json:"user_id"`
	UserName    string                  `json:"user_name"`
	BranchID    string                  `json:"branch_id"`
	BranchName  string                  `json:"branch_name"`
	Date        string                  `json:"date"`
	CheckIn     string                  `json:"check_in"`
	CheckOut    string                  `json:"check_out"`
	Status      models.AttendanceStatus `json:"status"`
	HoursWorked float64                 `json:"hours_worked"`
}

type Summary struct {
	Total        int     `json:"total"`
	Present      int     `json:"present"`
	Late         int     `json:"late"`
	Absent       int     `json:"absent"`
	HalfDay      int     `json:"half_day"`
	TotalHours   float64 `json:"total_hours"`
	AverageHours float64 `json:"average_hours"`
}

type MetricView struct {
	Kind    string              `json:"kind"`
	Title   string              `json:"title"`
	Records []models.Attendance `json:"records"`
}

type Service struct {
	records  *store.Collection[models.Attendance]
	branches BranchSource
	users    []models.User
}

func NewService(kv store.KV, branches BranchSource, users []models.User) *Service {
	return &Service{
		records: store.NewCollection(kv, store.KeyAttendance, fixtures.Attendance(),
			func(a models.Attendance) string { return a.ID }),
		branches: branches,
		users:    users,
	}
}

func (s *Service) Snapshot() ([]models.Attendance, error) {
	return s.records.Snapshot()
}

// List filters by employee and branch name.
func (s *Service) List(search string) ([]models.Attendance, error) {
	all, err := s.records.Snapshot()
	if err != nil {
		return nil, err
	}
	return crud.Filter(all, search, func(a models.Attendance) []string {
		return []string{a.UserName, a.BranchName}
	}), nil
}

func (s *Service) Get(id string) (models.Attendance, error) {
	return s.records.Find(id)
}

// validate checks the form and returns the hours the time pair yields.
func validate(f Form) (float64, error) {
	if err := crud.Required(f.UserName, f.BranchID, f.Date, f.CheckIn, f.CheckOut); err != nil {
		return 0, err
	}
	if err := crud.Date("Date", f.Date); err != nil {
		return 0, err
	}
	if f.Status != "" && !f.Status.Valid() {
		return 0, crud.Invalid("Unknown attendance status %q", f.Status)
	}
	hours, err := metrics.Hours(f.CheckIn, f.CheckOut)
	if errors.Is(err, metrics.ErrBadClock) {
		return 0, crud.Invalid("Check-in and check-out must be HH:MM")
	}
	return hours, err
}

// resolve stamps the branch and user names from their current lists onto
// the record. Unknown ids keep the names the form carried.
func (s *Service) resolve(a *models.Attendance, f Form) error {
	branches, err := s.branches.Snapshot()
	if err != nil {
		return err
	}
	a.BranchID = f.BranchID
	a.BranchName = refs.BranchName(branches, f.BranchID, f.BranchName)
	a.UserName = refs.UserName(s.users, f.UserID, strings.TrimSpace(f.UserName))
	return nil
}

func (s *Service) userID(f Form) string {
	if f.UserID != "" {
		return f.UserID
	}
	if id, ok := refs.UserIDByName(s.users, strings.TrimSpace(f.UserName)); ok {
		return id
	}
	return crud.NewID("user")
}

// Create appends a record with hours computed from the time pair.
func (s *Service) Create(f Form) (models.Attendance, error) {
	hours, err := validate(f)
	if err != nil {
		return models.Attendance{}, err
	}
	status := f.Status
	if status == "" {
		status = models.AttendancePresent
	}
	a := models.Attendance{
		ID:          crud.NewID("att"),
		UserID:      s.userID(f),
		Date:        f.Date,
		CheckIn:     f.CheckIn,
		CheckOut:    f.CheckOut,
		Status:      status,
		HoursWorked: hours,
	}
	if err := s.resolve(&a, f); err != nil {
		return models.Attendance{}, err
	}
	if err := s.records.Append(a); err != nil {
		return models.Attendance{}, err
	}
	return a, nil
}

// Update applies the form in place and recomputes the hours.
func (s *Service) Update(id string, f Form) (models.Attendance, error) {
	hours, err := validate(f)
	if err != nil {
		return models.Attendance{}, err
	}
	var stamped models.Attendance
	if err := s.resolve(&stamped, f); err != nil {
		return models.Attendance{}, err
	}
	return s.records.Replace(id, func(a models.Attendance) (models.Attendance, error) {
		if f.UserID != "" {
			a.UserID = f.UserID
		}
		a.UserName = stamped.UserName
		a.BranchID = stamped.BranchID
		a.BranchName = stamped.BranchName
		a.Date = f.Date
		a.CheckIn = f.CheckIn
		a.CheckOut = f.CheckOut
		if f.Status != "" {
			a.Status = f.Status
		}
		a.HoursWorked = hours
		return a, nil
	})
}

// Delete removes the record. Deleting an unknown id is a no-op.
func (s *Service) Delete(id string) error {
	_, err := s.records.Remove(id)
	return err
}

func hasStatus(st models.AttendanceStatus) func(models.Attendance) bool {
	return func(a models.Attendance) bool { return a.Status == st }
}

func hoursOf(a models.Attendance) float64 { return a.HoursWorked }

func Summarize(records []models.Attendance) Summary {
	hours := make([]float64, len(records))
	for i, r := range records {
		hours[i] = r.HoursWorked
	}
	return Summary{
		Total:        len(records),
		Present:      metrics.Count(records, hasStatus(models.AttendancePresent)),
		Late:         metrics.Count(records, hasStatus(models.AttendanceLate)),
		Absent:       metrics.Count(records, hasStatus(models.AttendanceAbsent)),
		HalfDay:      metrics.Count(records, hasStatus(models.AttendanceHalfDay)),
		TotalHours:   metrics.Round(metrics.SumFloat(records, hoursOf), 2),
		AverageHours: metrics.Round(metrics.Average(hours), 2),
	}
}

// AttendanceRate is the share of records marked present or late.
func AttendanceRate(records []models.Attendance) float64 {
	attended := metrics.Count(records, func(a models.Attendance) bool {
		return a.Status == models.AttendancePresent || a.Status == models.AttendanceLate
	})
	return metrics.Percent(attended, len(records))
}

func (s *Service) Summary() (Summary, error) {
	all, err := s.records.Snapshot()
	if err != nil {
		return Summary{}, err
	}
	return Summarize(all), nil
}

var views = map[string]struct {
	title  string
	status models.AttendanceStatus
}{
	"present": {"Present Today", models.AttendancePresent},
	"late":    {"Late Arrivals", models.AttendanceLate},
	"absent":  {"Absent Records", models.AttendanceAbsent},
}

// MetricView lists the records behind one card: present, late, absent or
// hours (all records).
func (s *Service) MetricView(kind string) (MetricView, error) {
	all, err := s.records.Snapshot()
	if err != nil {
		return MetricView{}, err
	}
	if kind == "hours" {
		return MetricView{Kind: kind, Title: "All Attendance Records", Records: all}, nil
	}
	v, ok := views[kind]
	if !ok {
		return MetricView{}, crud.ErrUnknownMetric
	}
	match := hasStatus(v.status)
	return MetricView{
		Kind:    kind,
		Title:   v.title,
		Records: slices.DeleteFunc(all, func(a models.Attendance) bool { return !match(a) }),
	}, nil
}
