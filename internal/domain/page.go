package domain

import (
	"fmt"
	"strings"
)

const (
	DefaultLimit = 100
	MaxLimit     = 500
	MaxSkip      = 10000

	Ascending  = "ascending"
	Descending = "descending"
)

// SortFields is the allow-list of sortable fields. Anything outside it is a
// validation error, not a silent fallback.
var SortFields = []string{"name", "price"}

// PageSpec is the raw pagination/ordering request of a single read call.
type PageSpec struct {
	Limit     int
	Skip      int
	SortField string
	Direction string
}

// DefaultPage returns the spec applied when the caller sends no paging
// parameters at all.
func DefaultPage() PageSpec {
	return PageSpec{
		Limit:     DefaultLimit,
		Skip:      0,
		SortField: "name",
		Direction: Ascending,
	}
}

// ValidatedPage is a PageSpec that passed validation. Order is a signed
// ordering indicator (+1 ascending, -1 descending) so storage adapters need
// no knowledge of the direction strings.
type ValidatedPage struct {
	Limit     int
	Skip      int
	SortField string
	Order     int
}

// Validate checks the spec field by field and rejects anything out of range.
// Out-of-range values are reported, never clamped.
func (p PageSpec) Validate() (ValidatedPage, error) {
	if !sortFieldAllowed(p.SortField) {
		return ValidatedPage{}, ValidationError{
			Field: "sort_field",
			Msg:   fmt.Sprintf("%q is not sortable, allowed: %s", p.SortField, strings.Join(SortFields, ", ")),
		}
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return ValidatedPage{}, ValidationError{
			Field: "limit",
			Msg:   fmt.Sprintf("must be between 1 and %d", MaxLimit),
		}
	}
	if p.Skip < 0 || p.Skip > MaxSkip {
		return ValidatedPage{}, ValidationError{
			Field: "skip",
			Msg:   fmt.Sprintf("must be between 0 and %d", MaxSkip),
		}
	}

	order := 0
	switch p.Direction {
	case Ascending:
		order = 1
	case Descending:
		order = -1
	default:
		return ValidatedPage{}, ValidationError{
			Field: "direction",
			Msg:   fmt.Sprintf("must be %q or %q", Ascending, Descending),
		}
	}

	return ValidatedPage{
		Limit:     p.Limit,
		Skip:      p.Skip,
		SortField: p.SortField,
		Order:     order,
	}, nil
}

func sortFieldAllowed(field string) bool {
	for _, f := range SortFields {
		if f == field {
			return true
		}
	}
	return false
}
