// Package sla derives the overdue status of an order from the time it has
// spent in its current phase. It is a pure read-side projection: nothing is
// stored and nothing runs in the background, so the flag is always consistent
// with wall-clock time at the moment of the query.
package sla

import (
	"time"

	"teledias_workflow/internal/domain/entities"
)

// DefaultBudgetHours is used when a budgeted phase has no parsable value in
// the settings table.
const DefaultBudgetHours = 24

// settingsKeyByPhase maps budgeted phases to their system_settings keys.
// Commercial, quality-control and concluded have no SLA concept.
var settingsKeyByPhase = map[entities.Phase]string{
	entities.PhaseLogistica:        "sla_logistica_horas",
	entities.PhaseLaboratorio:      "sla_laboratorio_horas",
	entities.PhaseConsultorExterno: "sla_consultor_horas",
	entities.PhaseFinanceiro:       "sla_financeiro_horas",
}

// Config holds the allowed hours per budgeted phase. It is versionless and
// re-read on every listing request: changing a threshold retroactively
// reclassifies every order currently in that phase, which is intended.
type Config map[entities.Phase]int

// ConfigFromSettings builds a Config from the raw system_settings rows
// (key -> value). Missing or unparsable entries fall back to
// DefaultBudgetHours.
func ConfigFromSettings(settings map[string]int) Config {
	cfg := make(Config, len(settingsKeyByPhase))
	for phase, key := range settingsKeyByPhase {
		hours, ok := settings[key]
		if !ok || hours <= 0 {
			hours = DefaultBudgetHours
		}
		cfg[phase] = hours
	}
	return cfg
}

// Status is the SLA annotation attached to a listed order.
type Status struct {
	// BudgetHours is nil for phases with no SLA concept.
	BudgetHours *int
	// Overdue is true iff elapsed hours strictly exceed the budget.
	Overdue bool
	// RemainingHours is budget minus elapsed; negative once overdue. Zero
	// when the phase has no budget.
	RemainingHours int
}

// Evaluate computes the SLA status for an order sitting in phase since
// enteredAt, as of now. Elapsed time is rounded up to whole hours, matching
// how the thresholds are configured.
func (c Config) Evaluate(phase entities.Phase, enteredAt time.Time, now time.Time) Status {
	budget, ok := c[phase]
	if !ok || enteredAt.IsZero() || phase.IsTerminal() {
		return Status{}
	}

	elapsed := int(ceilHours(now.Sub(enteredAt)))
	return Status{
		BudgetHours:    &budget,
		Overdue:        elapsed > budget,
		RemainingHours: budget - elapsed,
	}
}

func ceilHours(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	h := d / time.Hour
	if d%time.Hour != 0 {
		h++
	}
	return int64(h)
}
