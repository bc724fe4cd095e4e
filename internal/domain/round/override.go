package round

import "time"

// Override is a calendar exception for one round.
type Override struct {
	Start        *time.Time
	Previous     *ID
	ShowPrevious bool
}

// Overrides is the versioned table of per-round exceptions.
type Overrides struct {
	Version string
	Rounds  map[ID]Override
}

// Plan is the resolved composition plan for a microcycle.
type Plan struct {
	Round        ID
	Previous     ID
	HasPrevious  bool
	ShowPrevious bool
	Start        time.Time
	HasStart     bool
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func ref(id ID) *ID {
	return &id
}

// DefaultOverrides returns the 2024/25 season table.
func DefaultOverrides() Overrides {
	return Overrides{
		Version: "2024-25",
		Rounds: map[ID]Override{
			5: {Start: date(2024, time.September, 8), ShowPrevious: false},
			6: {Start: date(2024, time.September, 22), ShowPrevious: false},
			8: {Previous: ref(9), ShowPrevious: true},
			9: {Start: date(2024, time.October, 13), ShowPrevious: false},
		},
	}
}

// Resolve returns the plan for id. Rounds without an override show the
// previous round (id-1) and have no custom start.
func (o Overrides) Resolve(id ID) Plan {
	plan := Plan{Round: id, ShowPrevious: true}
	plan.Previous, plan.HasPrevious = id.Previous()

	override, ok := o.Rounds[id]
	if !ok {
		return plan
	}
	if override.Previous != nil && override.Previous.Valid() {
		plan.Previous = *override.Previous
		plan.HasPrevious = true
	}
	plan.ShowPrevious = override.ShowPrevious
	if override.Start != nil {
		plan.Start = *override.Start
		plan.HasStart = true
	}
	return plan
}
