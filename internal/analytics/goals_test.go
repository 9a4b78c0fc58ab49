package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Antonio-Naoki/fintrack/internal/model"
)

func goals(monthly, emergency, vacation int64) model.Goals {
	return model.Goals{
		MonthlyGoal:   decimal.NewFromInt(monthly),
		EmergencyGoal: decimal.NewFromInt(emergency),
		VacationGoal:  decimal.NewFromInt(vacation),
	}
}

func TestTrackGoals(t *testing.T) {
	tests := []struct {
		name           string
		monthlyBalance int64
		totalBalance   int64
		goals          model.Goals
		wantMonthly    float64
		wantEmergency  float64
		wantVacation   float64
		wantOverall    int
	}{
		{
			name:           "half of monthly goal",
			monthlyBalance: 500,
			totalBalance:   0,
			goals:          goals(1000, 5000, 2000),
			wantMonthly:    50,
			wantEmergency:  0,
			wantVacation:   0,
			wantOverall:    17, // round(50/3)
		},
		{
			name:           "goal fully met is capped at 100",
			monthlyBalance: 2500,
			totalBalance:   0,
			goals:          goals(1000, 5000, 2000),
			wantMonthly:    100,
			wantEmergency:  0,
			wantVacation:   0,
			wantOverall:    33,
		},
		{
			name:           "allocations of total balance",
			monthlyBalance: 0,
			totalBalance:   10000,
			goals:          goals(1000, 5000, 2000),
			wantMonthly:    0,
			wantEmergency:  80,  // 0.4 * 10000 / 5000
			wantVacation:   100, // 0.25 * 10000 = 2500, capped
			wantOverall:    60,
		},
		{
			name:           "negative balances clamp to zero",
			monthlyBalance: -300,
			totalBalance:   -1000,
			goals:          goals(1000, 5000, 2000),
			wantMonthly:    0,
			wantEmergency:  0,
			wantVacation:   0,
			wantOverall:    0,
		},
		{
			name:           "zero monthly goal yields zero without dividing",
			monthlyBalance: 500,
			totalBalance:   10000,
			goals:          goals(0, 5000, 2000),
			wantMonthly:    0,
			wantEmergency:  80,
			wantVacation:   100,
			wantOverall:    0, // any non-positive goal zeroes the overall
		},
		{
			name:           "all goals zero",
			monthlyBalance: 500,
			totalBalance:   10000,
			goals:          goals(0, 0, 0),
			wantMonthly:    0,
			wantEmergency:  0,
			wantVacation:   0,
			wantOverall:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrackGoals(decimal.NewFromInt(tt.monthlyBalance), decimal.NewFromInt(tt.totalBalance), tt.goals)
			assert.InDelta(t, tt.wantMonthly, got.MonthlyPct, 1e-9)
			assert.InDelta(t, tt.wantEmergency, got.EmergencyPct, 1e-9)
			assert.InDelta(t, tt.wantVacation, got.VacationPct, 1e-9)
			assert.Equal(t, tt.wantOverall, got.OverallPct)
		})
	}
}

func TestTrackGoals_ComponentsAlwaysInRange(t *testing.T) {
	extremes := []int64{-1000000, -1, 0, 1, 999, 1000000}
	g := goals(1000, 5000, 2000)

	for _, monthly := range extremes {
		for _, total := range extremes {
			got := TrackGoals(decimal.NewFromInt(monthly), decimal.NewFromInt(total), g)
			for _, pct := range []float64{got.MonthlyPct, got.EmergencyPct, got.VacationPct} {
				assert.GreaterOrEqual(t, pct, 0.0)
				assert.LessOrEqual(t, pct, 100.0)
			}
			assert.GreaterOrEqual(t, got.OverallPct, 0)
			assert.LessOrEqual(t, got.OverallPct, 100)
		}
	}
}
