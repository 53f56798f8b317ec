package metrics

import (
	"errors"
	"testing"
)

func TestHours(t *testing.T) {
	cases := []struct {
		in, out string
		want    float64
	}{
		{"09:00", "17:30", 8.5},
		{"08:55", "17:05", 8.17},
		{"09:00", "09:00", 0},
		{"18:00", "09:00", 0},
		{"", "17:00", 0},
		{"09:00", "", 0},
	}
	for _, tc := range cases {
		got, err := Hours(tc.in, tc.out)
		if err != nil {
			t.Fatalf("Hours(%q, %q): %v", tc.in, tc.out, err)
		}
		if got != tc.want {
			t.Fatalf("Hours(%q, %q) = %v, want %v", tc.in, tc.out, got, tc.want)
		}
		if got < 0 {
			t.Fatalf("Hours must never be negative, got %v", got)
		}
	}
}

func TestHoursRejectsBadClock(t *testing.T) {
	if _, err := Hours("9am", "17:00"); !errors.Is(err, ErrBadClock) {
		t.Fatalf("expected ErrBadClock, got %v", err)
	}
	if _, err := Hours("09:00", "25:00"); !errors.Is(err, ErrBadClock) {
		t.Fatalf("expected ErrBadClock for 25:00, got %v", err)
	}
}

func TestAverage(t *testing.T) {
	if got := Round(Average([]float64{8, 6, 0}), 2); got != 4.67 {
		t.Fatalf("expected 4.67, got %v", got)
	}
	if got := Average(nil); got != 0 {
		t.Fatalf("empty average should be 0, got %v", got)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(3, 0); got != 0 {
		t.Fatalf("zero total should give 0, got %v", got)
	}
	if got := Round(Percent(1, 3), 1); got != 33.3 {
		t.Fatalf("expected 33.3, got %v", got)
	}
	if got := Percent(4, 4); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestCountAndSums(t *testing.T) {
	xs := []int{1, 2, 3, 4}
	if n := Count(xs, func(x int) bool { return x%2 == 0 }); n != 2 {
		t.Fatalf("expected 2 evens, got %d", n)
	}
	if s := SumInt(xs, func(x int) int { return x }); s != 10 {
		t.Fatalf("expected 10, got %d", s)
	}
	if s := SumFloat(xs, func(x int) float64 { return float64(x) / 2 }); s != 5 {
		t.Fatalf("expected 5, got %v", s)
	}
	if n := Count([]int(nil), func(int) bool { return true }); n != 0 {
		t.Fatalf("empty count should be 0")
	}
}
