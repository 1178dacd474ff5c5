// Package listquery turns raw list-endpoint query parameters into a validated,
// backend-agnostic filter/sort/page descriptor and runs it against a Store.
package listquery

import "time"

// ParamType is the target type a raw query value is coerced to.
type ParamType int

const (
	String ParamType = iota
	Bool
	Int
	Decimal
	Enum
)

// Op says how a coerced parameter becomes a clause.
type Op int

const (
	OpEqual Op = iota
	OpContains
	OpRelatedContains
	OpMin
	OpMax
)

// Param declares one filter parameter of a list endpoint.
type Param struct {
	Name   string
	Type   ParamType
	Values []string // allow-list for Enum
	Rule   string   // validator tag checked after parsing, e.g. "gte=0"
	Op     Op
	Field  string // logical field; "relation.field" for OpRelatedContains
}

// SortKey maps a sortBy value to the logical field it orders by.
type SortKey struct {
	Name  string
	Field string
}

// Schema is the mapping table of one list endpoint.
type Schema struct {
	Resource     string
	Params       []Param
	Search       []string
	Sorts        []SortKey
	DefaultSort  string
	DefaultOrder Direction
	// Implicit returns clauses that apply regardless of the request, e.g. a default
	// time window. It may inspect p to decide.
	Implicit func(p Params, now time.Time) []Clause
}

func (s Schema) sortNames() []string {
	names := make([]string, 0, len(s.Sorts))
	for _, k := range s.Sorts {
		names = append(names, k.Name)
	}
	return names
}
