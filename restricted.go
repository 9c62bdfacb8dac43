package typedb

import (
	"fmt"
	"reflect"
)

// Validatable is implemented by every category's base validator. T is the
// category's target shape after JSON coercion (component B).
type Validatable[T any] interface {
	Category() Category
	Validate(value T, db *TypeDb) ValidationError
}

// Restricted is the uniform refinement wrapper described in spec §3/§4.D: a
// base validator plus an optional finite set of permitted values. T ranges
// over non-comparable shapes too (e.g. []any for array/set), so equality is
// checked structurally via reflect.DeepEqual rather than Go's ==.
type Restricted[V Validatable[T], T any] struct {
	base         V
	restrictions []T
	hasRestrict  bool
}

// NewRestricted builds a Restricted with no restrictions.
func NewRestricted[V Validatable[T], T any](base V) Restricted[V, T] {
	return Restricted[V, T]{base: base}
}

// NewRestrictedWith builds a Restricted and validates every restriction
// value against base, aggregating every failure found (never stopping at the
// first bad restriction).
func NewRestrictedWith[V Validatable[T], T any](base V, restrictions []T, db *TypeDb) (Restricted[V, T], InvalidValidationError) {
	if restrictions == nil {
		return Restricted[V, T]{base: base}, nil
	}
	var errs []InvalidValidationError
	for i, r := range restrictions {
		if err := base.Validate(r, db); err != nil {
			errs = append(errs, &ValidationWrapError{
				ForWhat: fmt.Sprintf("%d-th restriction", i),
				Inner:   err,
			})
		}
	}
	if len(errs) > 0 {
		return Restricted[V, T]{}, AggregateInvalidValidationErrors(errs)
	}
	return Restricted[V, T]{base: base, restrictions: restrictions, hasRestrict: true}, nil
}

// Base returns the wrapped base validator.
func (r Restricted[V, T]) Base() V { return r.base }

// Restrictions returns the permitted values, and whether any were declared
// at all (nil vs. an explicit empty list are distinguishable).
func (r Restricted[V, T]) Restrictions() ([]T, bool) { return r.restrictions, r.hasRestrict }

// Category delegates to the base validator.
func (r Restricted[V, T]) Category() Category { return r.base.Category() }

// Validate runs the base validator, then — if restrictions are present —
// folds in RestrictionNotSatisfiedError when the value matches none of them.
// Both failures survive aggregation when they both fire.
func (r Restricted[V, T]) Validate(value T, db *TypeDb) ValidationError {
	baseErr := r.base.Validate(value, db)
	if !r.hasRestrict {
		return baseErr
	}
	for _, cand := range r.restrictions {
		if reflect.DeepEqual(cand, value) {
			return baseErr
		}
	}
	return MergeValidationResult(baseErr, &RestrictionNotSatisfiedError{})
}
