package typedb

import "sort"

// ArrayBase validates every element of a JSON array against a single inner
// Validation. Elements are never short-circuited: every failing element
// contributes a leaf error to the aggregated result.
type ArrayBase struct {
	Element Validation
}

func (b ArrayBase) Category() Category { return CategoryArray }

func (b ArrayBase) Validate(value []any, db *TypeDb) ValidationError {
	return CollectValidationErrors(value, func(v any) ValidationError {
		return b.Element.ValidateJSON(v, db)
	})
}

// SetBase is identical in behavior to ArrayBase; the distinction is purely
// the declared Category (uniqueness of elements is not itself enforced by
// this validator — spec.md does not ask for it here).
type SetBase struct {
	Element Validation
}

func (b SetBase) Category() Category { return CategorySet }

func (b SetBase) Validate(value []any, db *TypeDb) ValidationError {
	return CollectValidationErrors(value, func(v any) ValidationError {
		return b.Element.ValidateJSON(v, db)
	})
}

// MapBase validates every value of a JSON object against a single inner
// Validation, ignoring keys.
type MapBase struct {
	Value Validation
}

func (b MapBase) Category() Category { return CategoryMap }

func (b MapBase) Validate(value map[string]any, db *TypeDb) ValidationError {
	keys := make([]string, 0, len(value))
	for k := range value {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return CollectValidationErrors(keys, func(k string) ValidationError {
		return b.Value.ValidateJSON(value[k], db)
	})
}

// OptionalBase skips validation when the value is absent (represented as a
// Go nil, i.e. JSON null after decoding); otherwise it delegates to the
// inner Validation.
type OptionalBase struct {
	Element Validation
}

func (b OptionalBase) Category() Category { return CategoryOptional }

func (b OptionalBase) Validate(value any, db *TypeDb) ValidationError {
	v, present := AsOptional(value)
	if !present {
		return nil
	}
	return b.Element.ValidateJSON(v, db)
}

// TupleBase validates a fixed-length JSON array position by position. A
// length mismatch fails immediately with TupleDimensionMismatchError and
// never recurses into the elements.
type TupleBase struct {
	Values []Validation
}

func (b TupleBase) Category() Category { return CategoryTuple }

func (b TupleBase) Dimension() int { return len(b.Values) }

func (b TupleBase) Validate(value []any, db *TypeDb) ValidationError {
	if len(value) != len(b.Values) {
		return &TupleDimensionMismatchError{Expected: len(b.Values), Actual: len(value)}
	}
	var errs []ValidationError
	for i, v := range value {
		if err := b.Values[i].ValidateJSON(v, db); err != nil {
			errs = append(errs, err)
		}
	}
	return AggregateValidationErrors(errs)
}
