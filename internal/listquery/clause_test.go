package listquery

import (
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhere(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  url.Values
		want []Clause
	}{
		{
			name: "nothing set",
			raw:  url.Values{},
			want: nil,
		},
		{
			name: "price bounds merge into one range",
			raw:  url.Values{"category": {"PAINTING"}, "minPrice": {"500"}, "maxPrice": {"2000"}},
			want: []Clause{
				Equal{Field: "category", Value: "PAINTING"},
				Range{Field: "price", Min: decimal.NewFromInt(500), Max: decimal.NewFromInt(2000)},
			},
		},
		{
			name: "single bound stays open",
			raw:  url.Values{"maxPrice": {"750"}},
			want: []Clause{Range{Field: "price", Max: decimal.NewFromInt(750)}},
		},
		{
			name: "inverted range is kept as is",
			raw:  url.Values{"minPrice": {"2000"}, "maxPrice": {"500"}},
			want: []Clause{Range{Field: "price", Min: decimal.NewFromInt(2000), Max: decimal.NewFromInt(500)}},
		},
		{
			name: "artist name is a related substring",
			raw:  url.Values{"artist": {"Wanjiru"}},
			want: []Clause{RelatedContains{Relation: "artist", Field: "name", Value: "Wanjiru"}},
		},
		{
			name: "medium is a substring",
			raw:  url.Values{"medium": {"oil"}},
			want: []Clause{Contains{Field: "medium", Value: "oil"}},
		},
		{
			name: "search expands across fields",
			raw:  url.Values{"search": {"sun"}, "available": {"true"}},
			want: []Clause{
				Equal{Field: "available", Value: true},
				AnyOf{Clauses: []Clause{
					Contains{Field: "title", Value: "sun"},
					Contains{Field: "description", Value: "sun"},
					RelatedContains{Relation: "artist", Field: "name", Value: "sun"},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSchema()
			p, err := Coerce(s, tt.raw)
			require.NoError(t, err)

			got := s.Where(p, now)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assertClause(t, tt.want[i], got[i])
			}
		})
	}
}

func TestWhere_Implicit(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := Schema{
		Params: []Param{{Name: "status", Type: Enum, Values: []string{"PAST", "CURRENT"}, Op: OpEqual, Field: "status"}},
		Implicit: func(p Params, now time.Time) []Clause {
			if _, ok := p.Filters["status"]; ok {
				return nil
			}
			return []Clause{Range{Field: "endDate", Min: now}}
		},
	}

	p, err := Coerce(s, url.Values{})
	require.NoError(t, err)
	assert.Equal(t, []Clause{Range{Field: "endDate", Min: now}}, s.Where(p, now))

	p, err = Coerce(s, url.Values{"status": {"PAST"}})
	require.NoError(t, err)
	assert.Equal(t, []Clause{Equal{Field: "status", Value: "PAST"}}, s.Where(p, now))
}

func TestWhere_Idempotent(t *testing.T) {
	s := testSchema()
	now := time.Now()
	p, err := Coerce(s, url.Values{"search": {"x"}, "minPrice": {"1"}, "category": {"PAINTING"}})
	require.NoError(t, err)
	assert.Equal(t, s.Where(p, now), s.Where(p, now))
}

// assertClause compares clauses, treating decimals by value.
func assertClause(t *testing.T, want, got Clause) {
	t.Helper()
	switch w := want.(type) {
	case Range:
		g, ok := got.(Range)
		require.True(t, ok, "want Range, got %T", got)
		assert.Equal(t, w.Field, g.Field)
		assertBound(t, w.Min, g.Min)
		assertBound(t, w.Max, g.Max)
	case AnyOf:
		g, ok := got.(AnyOf)
		require.True(t, ok, "want AnyOf, got %T", got)
		require.Len(t, g.Clauses, len(w.Clauses))
		for i := range w.Clauses {
			assertClause(t, w.Clauses[i], g.Clauses[i])
		}
	default:
		assert.Equal(t, want, got)
	}
}

func assertBound(t *testing.T, want, got any) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got)
		return
	}
	wd, ok := want.(decimal.Decimal)
	if !ok {
		assert.Equal(t, want, got)
		return
	}
	gd, ok := got.(decimal.Decimal)
	require.True(t, ok, "want decimal bound, got %T", got)
	assert.True(t, wd.Equal(gd), "want %s, got %s", wd, gd)
}
