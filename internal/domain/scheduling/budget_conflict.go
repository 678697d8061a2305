package scheduling

import (
	"fmt"
	"strings"
	"time"

	"turismo_agenda/internal/domain/entities"
)

// CheckBudgetItems applies the quotation rule to one client's own items.
//
// Every item must be dated today or later (hard error). Day tours sharing a
// date with an earlier item of the same budget, or with an item of another
// active budget of the client, raise budget_day_overlap. Night tours never
// conflict. Inactive budgets in others are skipped.
func (c *Checker) CheckBudgetItems(items []entities.BudgetItem, others []entities.Budget, today time.Time) ([]Warning, error) {
	warnings := []Warning{}

	for i, it := range items {
		name := strings.TrimSpace(it.TourName)
		if name == "" {
			return warnings, fmt.Errorf("item %d: %w", i, ErrMissingTour)
		}
		if err := ValidateDate(name, it.Date, today); err != nil {
			return warnings, err
		}
		if err := entities.ParseTime(it.Time); err != nil {
			return warnings, fmt.Errorf("%w: %q", ErrInvalidTime, it.Time)
		}
		if c.night.IsNight(name) {
			continue
		}
		date := strings.TrimSpace(it.Date)

		for _, prev := range items[:i] {
			if strings.TrimSpace(prev.Date) != date || c.night.IsNight(prev.TourName) {
				continue
			}
			warnings = append(warnings, Warning{
				Kind:        WarningBudgetDayOverlap,
				Message:     fmt.Sprintf("budget already has a day tour on %s (%s)", date, prev.TourName),
				ItemIndex:   i,
				TourName:    name,
				Date:        date,
				Time:        it.Time,
				Conflicting: prev.TourName,
			})
		}

		for _, b := range others {
			if !b.Status.Active() {
				continue
			}
			for _, other := range b.Items {
				if strings.TrimSpace(other.Date) != date || c.night.IsNight(other.TourName) {
					continue
				}
				warnings = append(warnings, Warning{
					Kind:        WarningBudgetDayOverlap,
					Message:     fmt.Sprintf("budget %s already has a day tour on %s (%s)", b.Number, date, other.TourName),
					ItemIndex:   i,
					TourName:    name,
					Date:        date,
					Time:        it.Time,
					BudgetID:    b.ID,
					Conflicting: other.TourName,
				})
			}
		}
	}

	return warnings, nil
}
