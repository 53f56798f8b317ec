package workflow

import (
	"slices"
	"strings"

	"multibranch-backend/internal/crud"
	"multibranch-backend/internal/fixtures"
	"multibranch-backend/internal/metrics"
	"multibranch-backend/internal/models"
	"multibranch-backend/internal/refs"
	"multibranch-backend/internal/store"
)

// BranchSource supplies the branch list workflow branch names resolve against.
type BranchSource interface {
	Snapshot() ([]models.Branch, error)
}

type Form struct {
	Title      string                  `json:"title"`
	BranchID   string                  `json:"branch_id"`
	BranchName string                  `json:"branch_name"`
	AssignedTo string                  `json:"assigned_to"`
	Status     models.WorkflowStatus   `json:"status"`
	Priority   models.WorkflowPriority `json:"priority"`
	DueDate    string                  `json:"due_date"`
	Progress   int                     `json:"progress"`
}

type Summary struct {
	Total          int     `json:"total"`
	Pending        int     `json:"pending"`
	InProgress     int     `json:"in_progress"`
	Completed      int     `json:"completed"`
	Overdue        int     `json:"overdue"`
	CompletionRate float64 `json:"completion_rate"`
}

type MetricView struct {
	Kind      string            `json:"kind"`
	Title     string            `json:"title"`
	Workflows []models.Workflow `json:"workflows"`
}

type Service struct {
	workflows *store.Collection[models.Workflow]
	branches  BranchSource
}

func NewService(kv store.KV, branches BranchSource) *Service {
	return &Service{
		workflows: store.NewCollection(kv, store.KeyWorkflows, fixtures.Workflows(),
			func(w models.Workflow) string { return w.ID }),
		branches: branches,
	}
}

func (s *Service) Snapshot() ([]models.Workflow, error) {
	return s.workflows.Snapshot()
}

// List filters by title, branch name and assignee.
func (s *Service) List(search string) ([]models.Workflow, error) {
	all, err := s.workflows.Snapshot()
	if err != nil {
		return nil, err
	}
	return crud.Filter(all, search, func(w models.Workflow) []string {
		return []string{w.Title, w.BranchName, w.AssignedTo}
	}), nil
}

func (s *Service) Get(id string) (models.Workflow, error) {
	return s.workflows.Find(id)
}

func validate(f Form) error {
	if err := crud.Required(f.Title, f.BranchID, f.AssignedTo, f.DueDate); err != nil {
		return err
	}
	if err := crud.Date("Due date", f.DueDate); err != nil {
		return err
	}
	if f.Status != "" && !f.Status.Valid() {
		return crud.Invalid("Unknown workflow status %q", f.Status)
	}
	if f.Priority != "" && !f.Priority.Valid() {
		return crud.Invalid("Unknown workflow priority %q", f.Priority)
	}
	if f.Progress < 0 || f.Progress > 100 {
		return crud.Invalid("Progress must be between 0 and 100")
	}
	return nil
}

func (s *Service) branchName(id, fallback string) (string, error) {
	branches, err := s.branches.Snapshot()
	if err != nil {
		return "", err
	}
	return refs.BranchName(branches, id, fallback), nil
}

// Create appends a new workflow. It always starts pending at 0% progress;
// status and progress from the form are ignored.
func (s *Service) Create(f Form) (models.Workflow, error) {
	if err := validate(f); err != nil {
		return models.Workflow{}, err
	}
	name, err := s.branchName(f.BranchID, f.BranchName)
	if err != nil {
		return models.Workflow{}, err
	}
	priority := f.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	w := models.Workflow{
		ID:         crud.NewID("wf"),
		Title:      strings.TrimSpace(f.Title),
		BranchID:   f.BranchID,
		BranchName: name,
		AssignedTo: strings.TrimSpace(f.AssignedTo),
		Status:     models.WorkflowPending,
		Priority:   priority,
		DueDate:    f.DueDate,
		Progress:   0,
	}
	if err := s.workflows.Append(w); err != nil {
		return models.Workflow{}, err
	}
	return w, nil
}

// Update applies the form in place. Empty status or priority keep the
// current values; the branch name is resolved again.
func (s *Service) Update(id string, f Form) (models.Workflow, error) {
	if err := validate(f); err != nil {
		return models.Workflow{}, err
	}
	name, err := s.branchName(f.BranchID, f.BranchName)
	if err != nil {
		return models.Workflow{}, err
	}
	return s.workflows.Replace(id, func(w models.Workflow) (models.Workflow, error) {
		w.Title = strings.TrimSpace(f.Title)
		w.BranchID = f.BranchID
		w.BranchName = name
		w.AssignedTo = strings.TrimSpace(f.AssignedTo)
		if f.Status != "" {
			w.Status = f.Status
		}
		if f.Priority != "" {
			w.Priority = f.Priority
		}
		w.DueDate = f.DueDate
		w.Progress = f.Progress
		return w, nil
	})
}

// Delete removes the workflow. Deleting an unknown id is a no-op.
func (s *Service) Delete(id string) error {
	_, err := s.workflows.Remove(id)
	return err
}

func hasStatus(st models.WorkflowStatus) func(models.Workflow) bool {
	return func(w models.Workflow) bool { return w.Status == st }
}

func Summarize(workflows []models.Workflow) Summary {
	completed := metrics.Count(workflows, hasStatus(models.WorkflowCompleted))
	return Summary{
		Total:          len(workflows),
		Pending:        metrics.Count(workflows, hasStatus(models.WorkflowPending)),
		InProgress:     metrics.Count(workflows, hasStatus(models.WorkflowInProgress)),
		Completed:      completed,
		Overdue:        metrics.Count(workflows, hasStatus(models.WorkflowOverdue)),
		CompletionRate: metrics.Round(metrics.Percent(completed, len(workflows)), 1),
	}
}

func (s *Service) Summary() (Summary, error) {
	all, err := s.workflows.Snapshot()
	if err != nil {
		return Summary{}, err
	}
	return Summarize(all), nil
}

var views = map[string]struct {
	title  string
	status models.WorkflowStatus
}{
	"completed":   {"Completed Workflows", models.WorkflowCompleted},
	"in-progress": {"In Progress Workflows", models.WorkflowInProgress},
	"overdue":     {"Overdue Workflows", models.WorkflowOverdue},
}

// MetricView lists the workflows behind one summary card: total,
// completed, in-progress or overdue.
func (s *Service) MetricView(kind string) (MetricView, error) {
	all, err := s.workflows.Snapshot()
	if err != nil {
		return MetricView{}, err
	}
	if kind == "total" {
		return MetricView{Kind: kind, Title: "All Workflows", Workflows: all}, nil
	}
	v, ok := views[kind]
	if !ok {
		return MetricView{}, crud.ErrUnknownMetric
	}
	match := hasStatus(v.status)
	filtered := slices.DeleteFunc(all, func(w models.Workflow) bool { return !match(w) })
	return MetricView{Kind: kind, Title: v.title, Workflows: filtered}, nil
}
