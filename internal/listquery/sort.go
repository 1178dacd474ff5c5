package listquery

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort orders a list by a single logical field.
type Sort struct {
	Field     string
	Direction Direction
}

// Descending reports whether the sort runs high to low.
func (s Sort) Descending() bool {
	return s.Direction == Desc
}

// Order resolves p's sortBy against the schema's allow-list. Coerce has already
// rejected unknown keys, so a miss falls back to the schema default.
func (s Schema) Order(p Params) Sort {
	name := p.SortBy
	if name == "" {
		name = s.DefaultSort
	}
	dir := p.SortOrder
	if dir == "" {
		dir = s.DefaultOrder
	}
	for _, k := range s.Sorts {
		if k.Name == name {
			return Sort{Field: k.Field, Direction: dir}
		}
	}
	for _, k := range s.Sorts {
		if k.Name == s.DefaultSort {
			return Sort{Field: k.Field, Direction: dir}
		}
	}
	return Sort{Direction: dir}
}
