package branch

import (
	"errors"
	"testing"

	"multibranch-backend/internal/crud"
	"multibranch-backend/internal/models"
	"multibranch-backend/internal/store"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(store.NewMemoryKV())
}

func TestListSearchesNameAndLocation(t *testing.T) {
	svc := newService(t)

	got, err := svc.List("downtown")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Downtown Branch" {
		t.Fatalf("expected only Downtown Branch, got %+v", got)
	}

	got, _ = svc.List("EAST DISTRICT")
	if len(got) != 1 || got[0].ID != "branch-3" {
		t.Fatalf("location search failed: %+v", got)
	}

	all, _ := svc.List("")
	if len(all) != 4 {
		t.Fatalf("empty search should list all 4 seeded branches, got %d", len(all))
	}
}

func TestCreateAlwaysActive(t *testing.T) {
	svc := newService(t)
	b, err := svc.Create(Form{Name: "Harbor Branch", Location: "1 Pier Rd", Manager: "Ann Lee", Staff: 7, Status: models.BranchInactive})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.Status != models.BranchActive {
		t.Fatalf("new branch must be active, got %s", b.Status)
	}
	all, _ := svc.List("")
	if len(all) != 5 || all[4].ID != b.ID {
		t.Fatalf("new branch must be appended last: %+v", all)
	}
}

func TestCreateRequiresFields(t *testing.T) {
	svc := newService(t)
	_, err := svc.Create(Form{Name: "Harbor Branch", Manager: "Ann Lee"})
	if !errors.Is(err, crud.ErrValidation) || err.Error() != crud.MsgRequiredFields {
		t.Fatalf("expected required-fields error, got %v", err)
	}
	all, _ := svc.List("")
	if len(all) != 4 {
		t.Fatalf("rejected create changed the collection")
	}
}

func TestUpdateKeepsStatusWhenBlank(t *testing.T) {
	svc := newService(t)
	b, err := svc.Update("branch-4", Form{Name: "Westside Plaza", Location: "321 Elm St", Manager: "Lisa Chen", Staff: 16})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if b.Name != "Westside Plaza" || b.Status != models.BranchInactive {
		t.Fatalf("unexpected update result %+v", b)
	}
	all, _ := svc.List("")
	if all[3].ID != "branch-4" {
		t.Fatalf("update must keep position")
	}

	if _, err := svc.Update("branch-99", Form{Name: "x", Location: "y", Manager: "z"}); !errors.Is(err, crud.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestToggleStatus(t *testing.T) {
	svc := newService(t)
	b, err := svc.ToggleStatus("branch-1")
	if err != nil || b.Status != models.BranchInactive {
		t.Fatalf("expected inactive, got %+v %v", b, err)
	}
	b, _ = svc.ToggleStatus("branch-1")
	if b.Status != models.BranchActive {
		t.Fatalf("expected active again, got %s", b.Status)
	}
}

func TestDelete(t *testing.T) {
	svc := newService(t)
	if err := svc.Delete("branch-2"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete("branch-2"); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}
	sum, _ := svc.Summary()
	if sum.Total != 3 {
		t.Fatalf("expected 3 branches, got %d", sum.Total)
	}
}

func TestSummary(t *testing.T) {
	sum, err := newService(t).Summary()
	if err != nil {
		t.Fatal(err)
	}
	want := Summary{Total: 4, Active: 3, Inactive: 1, TotalStaff: 80}
	if sum != want {
		t.Fatalf("expected %+v, got %+v", want, sum)
	}
	if got := Summarize(nil); got != (Summary{}) {
		t.Fatalf("empty summary should be zero, got %+v", got)
	}
}

func TestStaffViewSortsACopy(t *testing.T) {
	svc := newService(t)
	view, err := svc.MetricView("staff")
	if err != nil {
		t.Fatal(err)
	}
	order := []string{"branch-1", "branch-3", "branch-2", "branch-4"}
	for i, id := range order {
		if view.Branches[i].ID != id {
			t.Fatalf("staff view not sorted descending: %+v", view.Branches)
		}
	}
	all, _ := svc.List("")
	if all[1].ID != "branch-2" {
		t.Fatalf("stored order changed by staff view")
	}
}

func TestMetricViews(t *testing.T) {
	svc := newService(t)
	active, err := svc.MetricView("active")
	if err != nil || len(active.Branches) != 3 {
		t.Fatalf("expected 3 active branches, got %+v %v", active, err)
	}
	if active.Subtitle != "3 branches currently operating" {
		t.Fatalf("unexpected subtitle %q", active.Subtitle)
	}
	if _, err := svc.MetricView("revenue"); !errors.Is(err, crud.ErrUnknownMetric) {
		t.Fatalf("expected unknown metric, got %v", err)
	}
}
