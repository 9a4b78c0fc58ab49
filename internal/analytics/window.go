package analytics

import (
	"time"

	"github.com/Antonio-Naoki/fintrack/internal/model"
)

// WindowKind selects a date-range classification.
type WindowKind int

const (
	// WindowThisMonth matches transactions in the reference month.
	WindowThisMonth WindowKind = iota
	// WindowWeekOfMonth matches one of four fixed 7-day buckets of the
	// reference month.
	WindowWeekOfMonth
	// WindowLastNMonths matches the N calendar months ending at the
	// reference month, inclusive.
	WindowLastNMonths
)

// Window is a date-range classification used to scope aggregation queries.
type Window struct {
	Kind WindowKind
	N    int
}

// ThisMonth returns a window matching the reference month.
func ThisMonth() Window {
	return Window{Kind: WindowThisMonth}
}

// WeekOfMonth returns a window for week bucket n (0..3) of the reference
// month. Buckets are a fixed 7 days wide regardless of month length, so
// days 29-31 fall outside every bucket. That quirk is load-bearing for
// the weekly analysis output; do not widen the last bucket.
func WeekOfMonth(n int) Window {
	return Window{Kind: WindowWeekOfMonth, N: n}
}

// LastNMonths returns a window covering the n calendar months counting
// backward from the reference month, current month included.
func LastNMonths(n int) Window {
	return Window{Kind: WindowLastNMonths, N: n}
}

// InWindow reports whether the transaction's effective date falls inside
// the window relative to the reference date.
func InWindow(txn model.Transaction, w Window, ref time.Time) bool {
	switch w.Kind {
	case WindowThisMonth:
		return sameMonth(txn.Date, ref)

	case WindowWeekOfMonth:
		start := startOfMonth(ref).AddDate(0, 0, 7*w.N)
		end := start.AddDate(0, 0, 6)
		day := dayOf(txn.Date)
		return !day.Before(start) && !day.After(end)

	case WindowLastNMonths:
		year, month := ref.Year(), int(ref.Month())
		for i := 0; i < w.N; i++ {
			if txn.Date.Year() == year && int(txn.Date.Month()) == month {
				return true
			}
			month--
			if month == 0 {
				month = 12
				year--
			}
		}
		return false

	default:
		return false
	}
}

// Filter returns the transactions falling inside the window.
func Filter(txns []model.Transaction, w Window, ref time.Time) []model.Transaction {
	var out []model.Transaction
	for _, txn := range txns {
		if InWindow(txn, w, ref) {
			out = append(out, txn)
		}
	}
	return out
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
