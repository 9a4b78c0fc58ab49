package model

import "github.com/shopspring/decimal"

// Goals holds the user-configured savings targets. The record is saved and
// loaded wholesale; individual fields are never persisted on their own.
type Goals struct {
	MonthlyGoal   decimal.Decimal
	EmergencyGoal decimal.Decimal
	VacationGoal  decimal.Decimal
}

// DefaultGoals returns the thresholds used on first run, before the user
// has saved any settings.
func DefaultGoals() Goals {
	return Goals{
		MonthlyGoal:   decimal.NewFromInt(1000),
		EmergencyGoal: decimal.NewFromInt(5000),
		VacationGoal:  decimal.NewFromInt(2000),
	}
}
