package payroll

import (
	"strings"

	"multibranch-backend/internal/crud"
	"multibranch-backend/internal/fixtures"
	"multibranch-backend/internal/metrics"
	"multibranch-backend/internal/models"
	"multibranch-backend/internal/refs"
	"multibranch-backend/internal/store"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type BranchSource interface {
	Snapshot() ([]models.Branch, error)
}

// Form is what the payroll dialog submits. NetSalary is accepted but always
// recomputed from the three amounts.
type Form struct {
	UserID     string               `json:"user_id"`
	UserName   string               `json:"user_name"`
	BranchID   string               `json:"branch_id"`
	BranchName string               `json:"branch_name"`
	Month      string               `json:"month"`
	BaseSalary decimal.Decimal      `json:"base_salary"`
	Allowances decimal.Decimal      `json:"allowances"`
	Deductions decimal.Decimal      `json:"deductions"`
	NetSalary  decimal.Decimal      `json:"net_salary"`
	Status     models.PayrollStatus `json:"status"`
}

type Totals struct {
	BaseSalary decimal.Decimal `json:"base_salary"`
	Allowances decimal.Decimal `json:"allowances"`
	Deductions decimal.Decimal `json:"deductions"`
	NetSalary  decimal.Decimal `json:"net_salary"`
}

type Summary struct {
	Totals
	Records   int `json:"records"`
	Pending   int `json:"pending"`
	Processed int `json:"processed"`
	Paid      int `json:"paid"`
}

type MetricView struct {
	Kind     string           `json:"kind"`
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle"`
	Records  []models.Payroll `json:"records"`
}

type Service struct {
	records  *store.Collection[models.Payroll]
	branches BranchSource
	users    []models.User
}

func NewService(kv store.KV, branches BranchSource, users []models.User) *Service {
	return &Service{
		records: store.NewCollection(kv, store.KeyPayroll, fixtures.Payroll(),
			func(p models.Payroll) string { return p.ID }),
		branches: branches,
		users:    users,
	}
}

func (s *Service) Snapshot() ([]models.Payroll, error) {
	return s.records.Snapshot()
}

// List filters by employee and branch name.
func (s *Service) List(search string) ([]models.Payroll, error) {
	all, err := s.records.Snapshot()
	if err != nil {
		return nil, err
	}
	return crud.Filter(all, search, func(p models.Payroll) []string {
		return []string{p.UserName, p.BranchName}
	}), nil
}

func (s *Service) Get(id string) (models.Payroll, error) {
	return s.records.Find(id)
}

// Preview is the net salary for unsaved form amounts.
func Preview(base, allowances, deductions decimal.Decimal) decimal.Decimal {
	return models.NetOf(base, allowances, deductions)
}

func validate(f Form) error {
	if err := crud.Required(f.UserName, f.BranchID, f.Month); err != nil {
		return err
	}
	if f.BaseSalary.IsZero() {
		return crud.Invalid(crud.MsgRequiredFields)
	}
	if f.Status != "" && !f.Status.Valid() {
		return crud.Invalid("Unknown payroll status %q", f.Status)
	}
	return nil
}

func (s *Service) resolve(p *models.Payroll, f Form) error {
	branches, err := s.branches.Snapshot()
	if err != nil {
		return err
	}
	p.BranchID = f.BranchID
	p.BranchName = refs.BranchName(branches, f.BranchID, f.BranchName)
	p.UserName = refs.UserName(s.users, f.UserID, strings.TrimSpace(f.UserName))
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

// Create appends a pending record with the net salary recomputed.
func (s *Service) Create(f Form) (models.Payroll, error) {
	if err := validate(f); err != nil {
		return models.Payroll{}, err
	}
	p := models.Payroll{
		ID:         crud.NewID("pay"),
		UserID:     s.userID(f),
		Month:      strings.TrimSpace(f.Month),
		BaseSalary: f.BaseSalary,
		Allowances: f.Allowances,
		Deductions: f.Deductions,
		NetSalary:  models.NetOf(f.BaseSalary, f.Allowances, f.Deductions),
		Status:     models.PayrollPending,
	}
	if err := s.resolve(&p, f); err != nil {
		return models.Payroll{}, err
	}
	if err := s.records.Append(p); err != nil {
		return models.Payroll{}, err
	}
	return p, nil
}

// Update applies the form in place; the net salary is recomputed and an
// empty status keeps the current one.
func (s *Service) Update(id string, f Form) (models.Payroll, error) {
	if err := validate(f); err != nil {
		return models.Payroll{}, err
	}
	var stamped models.Payroll
	if err := s.resolve(&stamped, f); err != nil {
		return models.Payroll{}, err
	}
	return s.records.Replace(id, func(p models.Payroll) (models.Payroll, error) {
		if f.UserID != "" {
			p.UserID = f.UserID
		}
		p.UserName = stamped.UserName
		p.BranchID = stamped.BranchID
		p.BranchName = stamped.BranchName
		p.Month = strings.TrimSpace(f.Month)
		p.BaseSalary = f.BaseSalary
		p.Allowances = f.Allowances
		p.Deductions = f.Deductions
		p.NetSalary = models.NetOf(f.BaseSalary, f.Allowances, f.Deductions)
		if f.Status != "" {
			p.Status = f.Status
		}
		return p, nil
	})
}

// Delete removes the record. Deleting an unknown id is a no-op.
func (s *Service) Delete(id string) error {
	_, err := s.records.Remove(id)
	return err
}

func TotalsOf(records []models.Payroll) Totals {
	var t Totals
	for _, p := range records {
		t.BaseSalary = t.BaseSalary.Add(p.BaseSalary)
		t.Allowances = t.Allowances.Add(p.Allowances)
		t.Deductions = t.Deductions.Add(p.Deductions)
		t.NetSalary = t.NetSalary.Add(p.NetSalary)
	}
	return t
}

func hasStatus(st models.PayrollStatus) func(models.Payroll) bool {
	return func(p models.Payroll) bool { return p.Status == st }
}

func Summarize(records []models.Payroll) Summary {
	return Summary{
		Totals:    TotalsOf(records),
		Records:   len(records),
		Pending:   metrics.Count(records, hasStatus(models.PayrollPending)),
		Processed: metrics.Count(records, hasStatus(models.PayrollProcessed)),
		Paid:      metrics.Count(records, hasStatus(models.PayrollPaid)),
	}
}

func (s *Service) Summary() (Summary, error) {
	all, err := s.records.Snapshot()
	if err != nil {
		return Summary{}, err
	}
	return Summarize(all), nil
}

// Money renders an amount the way the dashboard cards do: $12,345.5
func Money(d decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	return "$" + p.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
}

// MetricView lists every record with the total of one amount column:
// base, allowances, deductions or net.
func (s *Service) MetricView(kind string) (MetricView, error) {
	all, err := s.records.Snapshot()
	if err != nil {
		return MetricView{}, err
	}
	t := TotalsOf(all)
	var title string
	var total decimal.Decimal
	switch kind {
	case "base":
		title, total = "Base Salary Records", t.BaseSalary
	case "allowances":
		title, total = "Allowances Records", t.Allowances
	case "deductions":
		title, total = "Deductions Records", t.Deductions
	case "net":
		title, total = "Net Payroll Records", t.NetSalary
	default:
		return MetricView{}, crud.ErrUnknownMetric
	}
	return MetricView{Kind: kind, Title: title, Subtitle: "Total: " + Money(total), Records: all}, nil
}
