// Package metrics holds the pure aggregate functions behind every summary
// card. Everything is recomputed from a full snapshot.
package metrics

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrBadClock = errors.New("time must be HH:MM")

func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

func SumInt[T any](items []T, f func(T) int) int {
	total := 0
	for _, it := range items {
		total += f(it)
	}
	return total
}

func SumFloat[T any](items []T, f func(T) float64) float64 {
	total := 0.0
	for _, it := range items {
		total += f(it)
	}
	return total
}

// Percent is part/total*100, and 0 when total is 0.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// Average is 0 for an empty slice.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// MinutesOfDay parses HH:MM into minutes since midnight.
func MinutesOfDay(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Hours is the worked time between two HH:MM values in hours, rounded to
// two decimals. A checkout at or before the checkin yields 0. An empty
// value on either side yields 0.
func Hours(checkIn, checkOut string) (float64, error) {
	if checkIn == "" || checkOut == "" {
		return 0, nil
	}
	in, err := MinutesOfDay(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := MinutesOfDay(checkOut)
	if err != nil {
		return 0, err
	}
	return math.Max(0, Round(float64(out-in)/60, 2)), nil
}
