package models

import "github.com/shopspring/decimal"

type PayrollStatus string

const (
	PayrollPending   PayrollStatus = "pending"
	PayrollProcessed PayrollStatus = "processed"
	PayrollPaid      PayrollStatus = "paid"
)

func (s PayrollStatus) Valid() bool {
	return s == PayrollPending || s == PayrollProcessed || s == PayrollPaid
}

type Payroll struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	UserName   string          `json:"user_name"`
	BranchID   string          `json:"branch_id"`
	BranchName string          `json:"branch_name"`
	Month      string          `json:"month"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	Allowances decimal.Decimal `json:"allowances"`
	Deductions decimal.Decimal `json:"deductions"`
	NetSalary  decimal.Decimal `json:"net_salary"`
	Status     PayrollStatus   `json:"status"`
}

// NetOf is base + allowances - deductions. Negative results are kept as is.
func NetOf(base, allowances, deductions decimal.Decimal) decimal.Decimal {
	return base.Add(allowances).Sub(deductions)
}
