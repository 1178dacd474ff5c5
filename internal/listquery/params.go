package listquery

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "gallery/internal/errors"
)

const (
	ParamSearch    = "search"
	ParamSortBy    = "sortBy"
	ParamSortOrder = "sortOrder"
	ParamPage      = "page"
	ParamLimit     = "limit"
)

var validate = validator.New()

// Params is the coerced form of a list request. Filters holds only the parameters
// that were present, typed as string, bool, int or decimal.Decimal.
type Params struct {
	Filters   map[string]any
	Search    string
	SortBy    string
	SortOrder Direction
	Page      int
	Limit     int
}

// Coerce validates raw against s and fills in defaults. Every offending parameter is
// reported in the returned *errors.ValidationError. Empty values count as absent.
func Coerce(s Schema, raw url.Values) (Params, error) {
	verr := &apperrors.ValidationError{}
	p := Params{
		Filters:   make(map[string]any),
		Search:    raw.Get(ParamSearch),
		SortBy:    s.DefaultSort,
		SortOrder: s.DefaultOrder,
		Page:      DefaultPage,
		Limit:     DefaultLimit,
	}

	for _, param := range s.Params {
		v := raw.Get(param.Name)
		if v == "" {
			continue
		}
		typed, reason := coerceValue(param, v)
		if reason != "" {
			verr.Add(param.Name, reason)
			continue
		}
		p.Filters[param.Name] = typed
	}

	if v := raw.Get(ParamSortBy); v != "" {
		if err := validate.Var(v, "oneof="+strings.Join(s.sortNames(), " ")); err != nil {
			verr.Add(ParamSortBy, reason(err))
		} else {
			p.SortBy = v
		}
	}
	if v := raw.Get(ParamSortOrder); v != "" {
		if err := validate.Var(v, "oneof=asc desc"); err != nil {
			verr.Add(ParamSortOrder, reason(err))
		} else {
			p.SortOrder = Direction(v)
		}
	}
	if n, ok := coerceInt(verr, raw, ParamPage, "gte=1,lte="+strconv.Itoa(MaxPage)); ok {
		p.Page = n
	}
	if n, ok := coerceInt(verr, raw, ParamLimit, "gte=1,lte="+strconv.Itoa(MaxLimit)); ok {
		p.Limit = n
	}

	if err := verr.OrNil(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func coerceInt(verr *apperrors.ValidationError, raw url.Values, name, rule string) (int, bool) {
	v := raw.Get(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		verr.Add(name, "must be an integer")
		return 0, false
	}
	if err := validate.Var(n, rule); err != nil {
		verr.Add(name, reason(err))
		return 0, false
	}
	return n, true
}

// coerceValue returns the typed value or a non-empty reason.
func coerceValue(param Param, v string) (any, string) {
	switch param.Type {
	case Bool:
		switch v {
		case "true":
			return true, ""
		case "false":
			return false, ""
		}
		return nil, "must be true or false"
	case Int:
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, "must be an integer"
		}
		if param.Rule != "" {
			if err := validate.Var(n, param.Rule); err != nil {
				return nil, reason(err)
			}
		}
		return n, ""
	case Decimal:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, "must be a number"
		}
		if param.Rule != "" {
			if err := validate.Var(d.InexactFloat64(), param.Rule); err != nil {
				return nil, reason(err)
			}
		}
		return d, ""
	case Enum:
		if err := validate.Var(v, "oneof="+strings.Join(param.Values, " ")); err != nil {
			return nil, reason(err)
		}
		return v, ""
	default:
		if param.Rule != "" {
			if err := validate.Var(v, param.Rule); err != nil {
				return nil, reason(err)
			}
		}
		return v, ""
	}
}

// reason renders the first validator failure as a short user-facing phrase.
func reason(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "is invalid"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
