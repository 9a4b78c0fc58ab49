package analytics

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/Antonio-Naoki/fintrack/internal/model"
)

// Allocation shares of the total balance attributed to each long-term
// goal.
var (
	emergencyShare = decimal.NewFromFloat(0.4)
	vacationShare  = decimal.NewFromFloat(0.25)
)

// GoalProgress holds completion percentages for each configured goal.
// Components are clamped to [0, 100].
type GoalProgress struct {
	MonthlyPct   float64
	EmergencyPct float64
	VacationPct  float64
	OverallPct   int
}

// TrackGoals compares balance allocations against the configured goal
// thresholds. The monthly goal is measured against the current month's
// balance; the emergency and vacation goals against fixed shares of the
// total balance. A goal threshold <= 0 yields a component of 0 rather
// than a division error, and forces the overall percentage to 0.
func TrackGoals(monthlyBalance, totalBalance decimal.Decimal, goals model.Goals) GoalProgress {
	progress := GoalProgress{
		MonthlyPct:   goalPct(monthlyBalance, goals.MonthlyGoal),
		EmergencyPct: goalPct(totalBalance.Mul(emergencyShare), goals.EmergencyGoal),
		VacationPct:  goalPct(totalBalance.Mul(vacationShare), goals.VacationGoal),
	}

	if goals.MonthlyGoal.IsPositive() && goals.EmergencyGoal.IsPositive() && goals.VacationGoal.IsPositive() {
		mean := (progress.MonthlyPct + progress.EmergencyPct + progress.VacationPct) / 3
		progress.OverallPct = int(math.Round(mean))
	}
	return progress
}

// goalPct returns min(allocation, goal) / goal * 100 clamped to [0, 100],
// or 0 when the goal is not positive.
func goalPct(allocation, goal decimal.Decimal) float64 {
	if !goal.IsPositive() {
		return 0
	}
	pct := decimal.Min(allocation, goal).Div(goal).InexactFloat64() * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
