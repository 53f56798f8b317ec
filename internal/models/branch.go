package models

type BranchStatus string

const (
	BranchActive   BranchStatus = "active"
	BranchInactive BranchStatus = "inactive"
)

func (s BranchStatus) Valid() bool {
	return s == BranchActive || s == BranchInactive
}

type Branch struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Location string       `json:"location"`
	Manager  string       `json:"manager"`
	Staff    int          `json:"staff"`
	Status   BranchStatus `json:"status"`
}
