package listquery

import (
	"strings"
	"time"
)

// Clause is a single predicate of a list query. Implementations are limited to the
// types in this file so every store can handle the full set exhaustively.
type Clause interface {
	clause()
}

// Equal matches rows whose Field equals Value exactly.
type Equal struct {
	Field string
	Value any
}

// Contains matches rows whose Field contains Value, ignoring case.
type Contains struct {
	Field string
	Value string
}

// Range matches rows whose Field lies within [Min, Max]. A nil bound is open.
type Range struct {
	Field string
	Min   any
	Max   any
}

// RelatedContains matches rows whose related entity's Field contains Value, ignoring case.
type RelatedContains struct {
	Relation string
	Field    string
	Value    string
}

// AnyOf matches rows satisfying at least one of Clauses.
type AnyOf struct {
	Clauses []Clause
}

func (Equal) clause()           {}
func (Contains) clause()        {}
func (Range) clause()           {}
func (RelatedContains) clause() {}
func (AnyOf) clause()           {}

// Where builds the ANDed clause list for p. Unset parameters contribute nothing;
// minimum and maximum parameters on the same field merge into one Range.
func (s Schema) Where(p Params, now time.Time) []Clause {
	var out []Clause
	if s.Implicit != nil {
		out = append(out, s.Implicit(p, now)...)
	}

	ranges := make(map[string]int)
	for _, param := range s.Params {
		v, ok := p.Filters[param.Name]
		if !ok {
			continue
		}
		switch param.Op {
		case OpEqual:
			out = append(out, Equal{Field: param.Field, Value: v})
		case OpContains:
			out = append(out, textClause(param.Field, v.(string)))
		case OpRelatedContains:
			out = append(out, textClause(param.Field, v.(string)))
		case OpMin, OpMax:
			idx, seen := ranges[param.Field]
			if !seen {
				idx = len(out)
				ranges[param.Field] = idx
				out = append(out, Range{Field: param.Field})
			}
			r := out[idx].(Range)
			if param.Op == OpMin {
				r.Min = v
			} else {
				r.Max = v
			}
			out[idx] = r
		}
	}

	if p.Search != "" && len(s.Search) > 0 {
		group := AnyOf{Clauses: make([]Clause, 0, len(s.Search))}
		for _, field := range s.Search {
			group.Clauses = append(group.Clauses, textClause(field, p.Search))
		}
		out = append(out, group)
	}
	return out
}

// textClause picks Contains or RelatedContains depending on whether field is a
// dotted "relation.field" path.
func textClause(field, value string) Clause {
	if relation, name, ok := strings.Cut(field, "."); ok {
		return RelatedContains{Relation: relation, Field: name, Value: value}
	}
	return Contains{Field: field, Value: value}
}
