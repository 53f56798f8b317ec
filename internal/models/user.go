package models

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// User is defined by the fixture list only; it is never created or edited at runtime.
type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Password string   `json:"-"` // plain fixture value, hashed by the session shell at startup
	Role     UserRole `json:"role"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	BranchID string   `json:"branch_id,omitempty"`
}
