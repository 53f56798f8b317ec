package models

type WorkflowStatus string

const (
	WorkflowPending    WorkflowStatus = "pending"
	WorkflowInProgress WorkflowStatus = "in-progress"
	WorkflowCompleted  WorkflowStatus = "completed"
	WorkflowOverdue    WorkflowStatus = "overdue"
)

func (s WorkflowStatus) Valid() bool {
	switch s {
	case WorkflowPending, WorkflowInProgress, WorkflowCompleted, WorkflowOverdue:
		return true
	}
	return false
}

type WorkflowPriority string

const (
	PriorityLow    WorkflowPriority = "low"
	PriorityMedium WorkflowPriority = "medium"
	PriorityHigh   WorkflowPriority = "high"
)

func (p WorkflowPriority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type Workflow struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	BranchID   string           `json:"branch_id"`
	BranchName string           `json:"branch_name"` // copied from the branch at write time
	AssignedTo string           `json:"assigned_to"`
	Status     WorkflowStatus   `json:"status"`
	Priority   WorkflowPriority `json:"priority"`
	DueDate    string           `json:"due_date"` // YYYY-MM-DD
	Progress   int              `json:"progress"` // 0-100
}
