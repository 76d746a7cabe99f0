package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/countrykit/pkg/countries"
	"github.com/dmitrymomot/countrykit/pkg/filter"
)

func popClause(value string) filter.Clause {
	return filter.Clause{Type: filter.TypePopulation, Value: value}
}

func countPopulationClauses(s *filter.Spec) int {
	n := 0
	for _, c := range s.Clauses() {
		if c.Type == filter.TypePopulation {
			n++
		}
	}
	return n
}

func TestPopulationExclusivity(t *testing.T) {
	spec := filter.NewSpec()

	// Arbitrary toggle sequence; after every step at most one population
	// clause may be active.
	sequence := []filter.Clause{
		popClause(filter.PopulationLT1M),
		popClause(filter.PopulationGT10M),
		popClause(filter.PopulationM1M10),
		popClause(filter.PopulationM1M10),
		popClause(filter.PopulationLT1M),
		popClause(filter.PopulationGT10M),
	}

	for i, c := range sequence {
		spec.Toggle(c)
		assert.LessOrEqual(t, countPopulationClauses(spec), 1, "after step %d", i)
	}

	// The latest activated bucket wins.
	assert.True(t, spec.Contains(popClause(filter.PopulationGT10M)))
}

func TestToggleIdempotence(t *testing.T) {
	spec := filter.NewSpec()
	spec.Add(filter.Clause{Type: "language", Value: "Catalan"})

	before := spec.Clauses()

	c := popClause(filter.PopulationLT1M)
	spec.Toggle(c)
	spec.Toggle(c)

	assert.ElementsMatch(t, before, spec.Clauses())
}

func TestAddDeduplicates(t *testing.T) {
	spec := filter.NewSpec()
	c := filter.Clause{Type: "language", Value: "Catalan"}

	spec.Add(c)
	spec.Add(c)

	assert.Equal(t, 1, spec.Len())
}

func TestNonPopulationClausesAccumulate(t *testing.T) {
	spec := filter.NewSpec()
	spec.Add(filter.Clause{Type: "language", Value: "Catalan"})
	spec.Add(filter.Clause{Type: "language", Value: "Portuguese"})
	spec.Add(popClause(filter.PopulationLT1M))

	assert.Equal(t, 3, spec.Len())

	spec.Add(popClause(filter.PopulationGT10M))
	assert.Equal(t, 3, spec.Len())
	assert.Equal(t, 1, countPopulationClauses(spec))
}

func TestRemoveInactiveClauseNoop(t *testing.T) {
	spec := filter.NewSpec()
	spec.Add(popClause(filter.PopulationLT1M))

	spec.Remove(popClause(filter.PopulationGT10M))
	assert.Equal(t, 1, spec.Len())
}

var testRecords = []countries.Country{
	{Code: "AND", Name: countries.Name{Common: "Andorra"}, Region: "Europe", Population: 77_000},
	{Code: "PRT", Name: countries.Name{Common: "Portugal"}, Region: "Europe", Population: 10_000_000},
	{Code: "AGO", Name: countries.Name{Common: "Angola"}, Region: "Africa", Population: 33_000_000},
}

func TestApplyPopulationBuckets(t *testing.T) {
	tests := []struct {
		name   string
		bucket string
		want   []string
	}{
		{name: "less than 1M", bucket: filter.PopulationLT1M, want: []string{"AND"}},
		{name: "1M to 10M inclusive", bucket: filter.PopulationM1M10, want: []string{"PRT"}},
		{name: "more than 10M", bucket: filter.PopulationGT10M, want: []string{"AGO"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := filter.NewSpec()
			spec.Add(popClause(tt.bucket))

			got := spec.Apply(testRecords)
			var codes []string
			for _, c := range got {
				codes = append(codes, c.Code)
			}
			assert.Equal(t, tt.want, codes)
		})
	}
}

func TestApplyEmptySpecPassesThrough(t *testing.T) {
	spec := filter.NewSpec()
	assert.Equal(t, testRecords, spec.Apply(testRecords))
}

func TestApplyUnknownClauseTypeSatisfied(t *testing.T) {
	spec := filter.NewSpec()
	spec.Add(filter.Clause{Type: "climate", Value: "tropical"})

	got := spec.Apply(testRecords)
	assert.Len(t, got, len(testRecords))
}

func TestApplyEmptyBaseSet(t *testing.T) {
	spec := filter.NewSpec()
	spec.Add(popClause(filter.PopulationLT1M))

	got := spec.Apply(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}
