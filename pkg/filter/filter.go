package filter

import (
	"slices"

	"github.com/dmitrymomot/countrykit/pkg/countries"
)

// Clause is one active filter, identified by its (Type, Value) pair.
type Clause struct {
	Type  string
	Value string
}

// Known clause types and population bucket values. Unknown types are carried
// but treated as always satisfied, so forward-compatible clauses from newer
// UIs don't hide every record.
const (
	TypePopulation = "population"

	PopulationLT1M  = "lt1m"   // population < 1,000,000
	PopulationM1M10 = "1m-10m" // 1,000,000 <= population <= 10,000,000
	PopulationGT10M = "gt10m"  // population > 10,000,000
)

// Spec is an ordered set of active filter clauses. The zero value is an
// empty spec ready for use. At most one population clause can be active;
// adding a second replaces the first. All other types accumulate,
// de-duplicated by (Type, Value) identity.
//
// A Spec is a plain value owned by a single view; it is not safe for
// concurrent mutation and is meant to be discarded when the view goes away.
type Spec struct {
	clauses []Clause
}

// NewSpec creates an empty filter spec.
func NewSpec() *Spec {
	return &Spec{}
}

// Len returns the number of active clauses.
func (s *Spec) Len() int {
	return len(s.clauses)
}

// Contains reports whether the exact clause is active.
func (s *Spec) Contains(c Clause) bool {
	return slices.Contains(s.clauses, c)
}

// Clauses returns a copy of the active clauses in activation order.
func (s *Spec) Clauses() []Clause {
	return slices.Clone(s.clauses)
}

// Add activates a clause. Adding a population clause replaces any active
// population clause; adding an already-active clause is a no-op.
func (s *Spec) Add(c Clause) {
	if s.Contains(c) {
		return
	}
	if c.Type == TypePopulation {
		s.clauses = slices.DeleteFunc(s.clauses, func(existing Clause) bool {
			return existing.Type == TypePopulation
		})
	}
	s.clauses = append(s.clauses, c)
}

// Remove deactivates a clause by (Type, Value) identity. Removing an
// inactive clause is a no-op.
func (s *Spec) Remove(c Clause) {
	s.clauses = slices.DeleteFunc(s.clauses, func(existing Clause) bool {
		return existing == c
	})
}

// Toggle flips a clause: active becomes inactive and vice versa, with Add's
// population-exclusivity applying on activation.
func (s *Spec) Toggle(c Clause) {
	if s.Contains(c) {
		s.Remove(c)
		return
	}
	s.Add(c)
}

// Apply selects the records satisfying every active clause (AND
// conjunction). An empty spec returns the input as-is.
func (s *Spec) Apply(records []countries.Country) []countries.Country {
	if len(s.clauses) == 0 {
		return records
	}

	out := make([]countries.Country, 0, len(records))
	for _, rec := range records {
		if s.matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (s *Spec) matches(rec countries.Country) bool {
	for _, c := range s.clauses {
		if c.Type != TypePopulation {
			continue
		}
		switch c.Value {
		case PopulationLT1M:
			if rec.Population >= 1_000_000 {
				return false
			}
		case PopulationM1M10:
			if rec.Population < 1_000_000 || rec.Population > 10_000_000 {
				return false
			}
		case PopulationGT10M:
			if rec.Population <= 10_000_000 {
				return false
			}
		}
	}
	return true
}
