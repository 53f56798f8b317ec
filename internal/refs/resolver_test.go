package refs

import (
	"testing"

	"multibranch-backend/internal/fixtures"
)

func TestBranchName(t *testing.T) {
	branches := fixtures.Branches()
	if got := BranchName(branches, "branch-2", "Unknown"); got != "Uptown Branch" {
		t.Fatalf("expected Uptown Branch, got %q", got)
	}
	if got := BranchName(branches, "branch-99", "Unknown"); got != "Unknown" {
		t.Fatalf("expected fallback for dangling id, got %q", got)
	}
	if got := BranchName(branches, "", "Unknown"); got != "Unknown" {
		t.Fatalf("expected fallback for empty id, got %q", got)
	}
}

func TestUserLookups(t *testing.T) {
	users := fixtures.Users()
	if got := UserName(users, "user-2", ""); got != "John Smith" {
		t.Fatalf("expected John Smith, got %q", got)
	}
	id, ok := UserIDByName(users, "Sarah Johnson")
	if !ok || id != "user-3" {
		t.Fatalf("expected user-3, got %q ok=%v", id, ok)
	}
	if _, ok := UserIDByName(users, "sarah johnson"); ok {
		t.Fatalf("name lookup is exact")
	}
}
