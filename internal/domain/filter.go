package domain

import "strings"

// FilterSpec holds the optional read filters of a single call. Nil fields
// mean "no constraint".
type FilterSpec struct {
	NameContains *string
	MinPrice     *float64
	MaxPrice     *float64
}

// Clause is one atomic filter condition. Clauses of a Predicate are always
// combined by conjunction; each storage adapter translates them to its
// native query form.
type Clause interface {
	isClause()
}

// NameContains requires a case-insensitive substring match on the name.
type NameContains struct {
	Substring string
}

func (NameContains) isClause() {}

// PriceRange requires the price to lie within the inclusive bounds. A nil
// bound leaves that side open.
type PriceRange struct {
	Min *float64
	Max *float64
}

func (PriceRange) isClause() {}

// Predicate is a backend-agnostic conjunction of clauses. An empty predicate
// matches every product.
type Predicate struct {
	Clauses []Clause
}

// Compile turns the spec into a Predicate. It fails before constructing
// anything when both price bounds are present and min exceeds max; it never
// touches storage.
func (f FilterSpec) Compile() (Predicate, error) {
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return Predicate{}, ValidationError{Field: "price", Msg: "min_price must not exceed max_price"}
	}

	var pred Predicate
	if f.NameContains != nil && strings.TrimSpace(*f.NameContains) != "" {
		pred.Clauses = append(pred.Clauses, NameContains{Substring: strings.TrimSpace(*f.NameContains)})
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		pred.Clauses = append(pred.Clauses, PriceRange{Min: f.MinPrice, Max: f.MaxPrice})
	}
	return pred, nil
}
