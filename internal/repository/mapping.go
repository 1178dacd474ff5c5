package repository

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"gallery/internal/listquery"
)

// Relation describes how a listed table reaches a related one.
type Relation struct {
	Table      string
	LocalKey   string            // e.g. artworks.artist_id
	ForeignKey string            // e.g. artists.id
	Columns    map[string]string // logical field -> qualified column
	SoftDelete bool
}

// Derived is an aggregate computed per row by a correlated subquery.
type Derived struct {
	Expr  string
	Alias string
}

// Mapping translates the logical fields of a list schema into SQL for one table.
type Mapping struct {
	Table     string
	Columns   map[string]string
	Derived   map[string]Derived
	Relations map[string]Relation
}

// Where ANDs every clause onto db.
func (m Mapping) Where(db *gorm.DB, where []listquery.Clause) (*gorm.DB, error) {
	for _, c := range where {
		sql, args, err := m.expr(c)
		if err != nil {
			return nil, err
		}
		db = db.Where(sql, args...)
	}
	return db, nil
}

// Order applies s, joining the related table when sorting by one of its columns,
// and appends the primary key so windows are stable.
func (m Mapping) Order(db *gorm.DB, s listquery.Sort) (*gorm.DB, error) {
	dir := "ASC"
	if s.Descending() {
		dir = "DESC"
	}
	if s.Field != "" {
		var expr string
		if relation, field, ok := strings.Cut(s.Field, "."); ok {
			rel, found := m.Relations[relation]
			if !found {
				return nil, fmt.Errorf("unknown relation %q on %s", relation, m.Table)
			}
			col, found := rel.Columns[field]
			if !found {
				return nil, fmt.Errorf("unknown field %q on %s", field, rel.Table)
			}
			on := rel.ForeignKey + " = " + rel.LocalKey
			if rel.SoftDelete {
				on += " AND " + rel.Table + ".deleted_at IS NULL"
			}
			db = db.Joins(fmt.Sprintf("LEFT JOIN %s ON %s", rel.Table, on))
			expr = col
		} else {
			col, err := m.column(s.Field)
			if err != nil {
				return nil, err
			}
			expr = col
		}
		db = db.Order(expr + " " + dir)
	}
	return db.Order(m.Table + ".id ASC"), nil
}

// Selects returns the select list: every table column plus the derived aggregates.
func (m Mapping) Selects() []string {
	out := []string{m.Table + ".*"}
	fields := make([]string, 0, len(m.Derived))
	for field := range m.Derived {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		d := m.Derived[field]
		out = append(out, d.Expr+" AS "+d.Alias)
	}
	return out
}

func (m Mapping) column(field string) (string, error) {
	if col, ok := m.Columns[field]; ok {
		return col, nil
	}
	if d, ok := m.Derived[field]; ok {
		return d.Expr, nil
	}
	return "", fmt.Errorf("unknown field %q on %s", field, m.Table)
}

func (m Mapping) expr(c listquery.Clause) (string, []any, error) {
	switch c := c.(type) {
	case listquery.Equal:
		col, err := m.column(c.Field)
		if err != nil {
			return "", nil, err
		}
		return col + " = ?", []any{c.Value}, nil

	case listquery.Contains:
		col, err := m.column(c.Field)
		if err != nil {
			return "", nil, err
		}
		return "LOWER(" + col + ") LIKE ?", []any{likePattern(c.Value)}, nil

	case listquery.Range:
		col, err := m.column(c.Field)
		if err != nil {
			return "", nil, err
		}
		var (
			parts []string
			args  []any
		)
		if c.Min != nil {
			parts = append(parts, col+" >= ?")
			args = append(args, c.Min)
		}
		if c.Max != nil {
			parts = append(parts, col+" <= ?")
			args = append(args, c.Max)
		}
		if len(parts) == 0 {
			return "1 = 1", nil, nil
		}
		return strings.Join(parts, " AND "), args, nil

	case listquery.RelatedContains:
		rel, ok := m.Relations[c.Relation]
		if !ok {
			return "", nil, fmt.Errorf("unknown relation %q on %s", c.Relation, m.Table)
		}
		col, ok := rel.Columns[c.Field]
		if !ok {
			return "", nil, fmt.Errorf("unknown field %q on %s", c.Field, rel.Table)
		}
		sub := fmt.Sprintf("%s IN (SELECT %s FROM %s WHERE LOWER(%s) LIKE ?", rel.LocalKey, rel.ForeignKey, rel.Table, col)
		if rel.SoftDelete {
			sub += " AND " + rel.Table + ".deleted_at IS NULL"
		}
		return sub + ")", []any{likePattern(c.Value)}, nil

	case listquery.AnyOf:
		if len(c.Clauses) == 0 {
			return "1 = 0", nil, nil
		}
		var (
			parts []string
			args  []any
		)
		for _, inner := range c.Clauses {
			sql, innerArgs, err := m.expr(inner)
			if err != nil {
				return "", nil, err
			}
			parts = append(parts, "("+sql+")")
			args = append(args, innerArgs...)
		}
		return "(" + strings.Join(parts, " OR ") + ")", args, nil

	default:
		return "", nil, fmt.Errorf("unsupported clause %T", c)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a case-folded "contains" pattern with LIKE wildcards escaped.
func likePattern(v string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(v)) + "%"
}
