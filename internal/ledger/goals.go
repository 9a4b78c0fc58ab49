package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/Antonio-Naoki/fintrack/internal/model"
	"github.com/Antonio-Naoki/fintrack/internal/service"
)

// goalsKey is the storage namespace for the goal settings, independent of
// the transactions entry.
const goalsKey = "goals"

type goalsRecord struct {
	MonthlyGoal   decimal.Decimal `json:"monthlyGoal"`
	EmergencyGoal decimal.Decimal `json:"emergencyGoal"`
	VacationGoal  decimal.Decimal `json:"vacationGoal"`
}

// GoalStore persists the user's savings goals. The record is overwritten
// wholesale on save.
type GoalStore struct {
	store service.KVStore
}

// NewGoalStore creates a goal store over the given key-value store.
func NewGoalStore(store service.KVStore) *GoalStore {
	return &GoalStore{store: store}
}

// Load returns the persisted goals, or the defaults when nothing has been
// saved or the stored record is malformed.
func (g *GoalStore) Load(ctx context.Context) (model.Goals, error) {
	data, found, err := g.store.Get(ctx, goalsKey)
	if err != nil {
		return model.DefaultGoals(), fmt.Errorf("failed to read goals: %w", err)
	}
	if !found {
		return model.DefaultGoals(), nil
	}

	var rec goalsRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		slog.Warn("stored goals are malformed, using defaults", "error", err)
		return model.DefaultGoals(), nil
	}

	return model.Goals{
		MonthlyGoal:   rec.MonthlyGoal,
		EmergencyGoal: rec.EmergencyGoal,
		VacationGoal:  rec.VacationGoal,
	}, nil
}

// Save overwrites the persisted goals.
func (g *GoalStore) Save(ctx context.Context, goals model.Goals) error {
	data, err := json.Marshal(goalsRecord{
		MonthlyGoal:   goals.MonthlyGoal,
		EmergencyGoal: goals.EmergencyGoal,
		VacationGoal:  goals.VacationGoal,
	})
	if err != nil {
		return fmt.Errorf("failed to encode goals: %w", err)
	}

	if err := g.store.Put(ctx, goalsKey, data); err != nil {
		return fmt.Errorf("failed to persist goals: %w", err)
	}
	return nil
}
