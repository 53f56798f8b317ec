package branch

import (
	"cmp"
	"slices"
	"strings"

	"multibranch-backend/internal/crud"
	"multibranch-backend/internal/fixtures"
	"multibranch-backend/internal/metrics"
	"multibranch-backend/internal/models"
	"multibranch-backend/internal/store"
)

type Form struct {
	Name     string              `json:"name"`
	Location string              `json:"location"`
	Manager  string              `json:"manager"`
	Staff    int                 `json:"staff"`
	Status   models.BranchStatus `json:"status"`
}

type Summary struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Inactive   int `json:"inactive"`
	TotalStaff int `json:"total_staff"`
}

type MetricView struct {
	Kind     string          `json:"kind"`
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle"`
	Branches []models.Branch `json:"branches"`
}

type Service struct {
	branches *store.Collection[models.Branch]
}

func NewService(kv store.KV) *Service {
	return &Service{
		branches: store.NewCollection(kv, store.KeyBranches, fixtures.Branches(),
			func(b models.Branch) string { return b.ID }),
	}
}

// Snapshot is the current branch list, used to resolve branch names.
func (s *Service) Snapshot() ([]models.Branch, error) {
	return s.branches.Snapshot()
}

// List filters by name and location. The stored order is kept.
func (s *Service) List(search string) ([]models.Branch, error) {
	all, err := s.branches.Snapshot()
	if err != nil {
		return nil, err
	}
	return crud.Filter(all, search, func(b models.Branch) []string {
		return []string{b.Name, b.Location}
	}), nil
}

func (s *Service) Get(id string) (models.Branch, error) {
	return s.branches.Find(id)
}

func validate(f Form) error {
	if err := crud.Required(f.Name, f.Location, f.Manager); err != nil {
		return err
	}
	if f.Staff < 0 {
		return crud.Invalid("Staff count cannot be negative")
	}
	if f.Status != "" && !f.Status.Valid() {
		return crud.Invalid("Unknown branch status %q", f.Status)
	}
	return nil
}

// Create appends a new branch. New branches are always active, whatever the
// form says.
func (s *Service) Create(f Form) (models.Branch, error) {
	if err := validate(f); err != nil {
		return models.Branch{}, err
	}
	b := models.Branch{
		ID:       crud.NewID("branch"),
		Name:     strings.TrimSpace(f.Name),
		Location: strings.TrimSpace(f.Location),
		Manager:  strings.TrimSpace(f.Manager),
		Staff:    f.Staff,
		Status:   models.BranchActive,
	}
	if err := s.branches.Append(b); err != nil {
		return models.Branch{}, err
	}
	return b, nil
}

// Update overwrites the editable fields in place. An empty status keeps the
// current one. Names already copied into workflows, attendance and payroll
// are not touched.
func (s *Service) Update(id string, f Form) (models.Branch, error) {
	if err := validate(f); err != nil {
		return models.Branch{}, err
	}
	return s.branches.Replace(id, func(b models.Branch) (models.Branch, error) {
		b.Name = strings.TrimSpace(f.Name)
		b.Location = strings.TrimSpace(f.Location)
		b.Manager = strings.TrimSpace(f.Manager)
		b.Staff = f.Staff
		if f.Status != "" {
			b.Status = f.Status
		}
		return b, nil
	})
}

// ToggleStatus flips active/inactive without form validation.
func (s *Service) ToggleStatus(id string) (models.Branch, error) {
	return s.branches.Replace(id, func(b models.Branch) (models.Branch, error) {
		if b.Status == models.BranchActive {
			b.Status = models.BranchInactive
		} else {
			b.Status = models.BranchActive
		}
		return b, nil
	})
}

// Delete removes the branch. Deleting an unknown id is a no-op.
func (s *Service) Delete(id string) error {
	_, err := s.branches.Remove(id)
	return err
}

func isActive(b models.Branch) bool { return b.Status == models.BranchActive }

func Summarize(branches []models.Branch) Summary {
	active := metrics.Count(branches, isActive)
	return Summary{
		Total:      len(branches),
		Active:     active,
		Inactive:   len(branches) - active,
		TotalStaff: metrics.SumInt(branches, func(b models.Branch) int { return b.Staff }),
	}
}

func (s *Service) Summary() (Summary, error) {
	all, err := s.branches.Snapshot()
	if err != nil {
		return Summary{}, err
	}
	return Summarize(all), nil
}

// MetricView is the drill-down list behind one summary card. The staff view
// sorts a copy; the stored order never changes.
func (s *Service) MetricView(kind string) (MetricView, error) {
	all, err := s.branches.Snapshot()
	if err != nil {
		return MetricView{}, err
	}
	sum := Summarize(all)
	switch kind {
	case "total":
		return MetricView{Kind: kind, Title: "All Branches", Subtitle: crud.Plural(sum.Total, "branch", "branches") + " in the network", Branches: all}, nil
	case "active":
		active := slices.DeleteFunc(slices.Clone(all), func(b models.Branch) bool { return !isActive(b) })
		return MetricView{Kind: kind, Title: "Active Branches", Subtitle: crud.Plural(sum.Active, "branch", "branches") + " currently operating", Branches: active}, nil
	case "staff":
		sorted := slices.Clone(all)
		slices.SortStableFunc(sorted, func(a, b models.Branch) int { return cmp.Compare(b.Staff, a.Staff) })
		return MetricView{Kind: kind, Title: "Staff Distribution", Subtitle: "Total of " + crud.Plural(sum.TotalStaff, "staff member", "staff members") + " across all branches", Branches: sorted}, nil
	}
	return MetricView{}, crud.ErrUnknownMetric
}
