package typedb

import "time"

// Rewriter rebuilds a Validation under a policy. The dispatcher is a single
// type switch over the category sum; rewriters never consult instance
// values, only the validator tree, so applying one is infallible except
// through whatever revalidation its component transform performs.
type Rewriter interface {
	Rewrite(v Validation, db *TypeDb) (Validation, InvalidValidationError)
}

// NoUpdate is the identity rewriter on every category.
type NoUpdate struct{}

func (NoUpdate) Rewrite(v Validation, db *TypeDb) (Validation, InvalidValidationError) {
	return v, nil
}

// IgnoreRestrictions unwraps the restriction layer of v, applies Base to the
// unrestricted validator, and rewraps the result with no restrictions at
// all. Base defaults to NoUpdate when left unset.
type IgnoreRestrictions struct {
	Base Rewriter
}

func (r IgnoreRestrictions) Rewrite(v Validation, db *TypeDb) (Validation, InvalidValidationError) {
	stripped, err := rewriteRestricted(v, db, nil)
	if err != nil {
		return nil, err
	}
	return r.base().Rewrite(stripped, db)
}

func (r IgnoreRestrictions) base() Rewriter {
	if r.Base == nil {
		return NoUpdate{}
	}
	return r.Base
}

// KeepRestrictions unwraps the restriction layer, applies Base to the
// unrestricted validator, then reattaches the original restrictions —
// revalidating every one against the new base. A restriction that no longer
// satisfies the rewritten base surfaces as an aggregated InvalidValidationError.
type KeepRestrictions struct {
	Base Rewriter
}

func (r KeepRestrictions) Rewrite(v Validation, db *TypeDb) (Validation, InvalidValidationError) {
	restrictions := currentRestrictions(v)
	stripped, err := rewriteRestricted(v, db, nil)
	if err != nil {
		return nil, err
	}
	updated, err := r.base().Rewrite(stripped, db)
	if err != nil {
		return nil, err
	}
	return rewriteRestricted(updated, db, restrictions)
}

func (r KeepRestrictions) base() Rewriter {
	if r.Base == nil {
		return NoUpdate{}
	}
	return r.Base
}

// TypeOnly returns the structurally minimal validator that preserves the
// type tag and, for container categories, the inner validations verbatim;
// restrictions are stripped the same way IgnoreRestrictions strips them.
type TypeOnly struct{}

func (t TypeOnly) Rewrite(v Validation, db *TypeDb) (Validation, InvalidValidationError) {
	return IgnoreRestrictions{}.Rewrite(v, db)
}

// currentRestrictions captures a concrete Validation's restriction list
// untyped, so it can be threaded back through rewriteRestricted after the
// base has changed shape. restrictions is any of the Restricted[V,T]
// instantiations' []T, or nil when the category carries no restrictions.
func currentRestrictions(v Validation) any {
	switch t := v.(type) {
	case *AnyValidation:
		r, ok := t.Restrictions()
		if !ok {
			return nil
		}
		return r
	case *ArrayValidation:
		r, ok := t.Restrictions()
		if !ok {
			return nil
		}
		return r
	case *BoolValidation:
		r, ok := t.Restrictions()
		if !ok {
			return nil
		}
		return r
	case *DateTimeValidation:
		r, ok := t.Restrictions()
		if !ok {
			return nil
		}
		return r
	case *DateValidation:
		r, ok := t.Restrictions()
		if !ok {
			return nil
		}
		return r
	case *EnumValidation:
		r, ok := t.Restrictions()
		if !ok {
			return nil
		}
		return r
	case *FloatValidation:
		r, ok := t.Restrictions()
		if !ok {
			return nil
		}
		return r
	case *IntegerValidation:
		r, ok := t.Restrictions()
		if !ok {
			return nil
		}
		return r
	case *MapValidation:
		r, ok := t.Restrictions()
		if !ok {
			return nil
		}
		return r
	case *NewtypeValidation:
		r, ok := t.Restrictions()
		if !ok {
			return nil
		}
		return r
	case *OptionalValidation:
		r, ok := t.Restrictions()
		if !ok {
			return nil
		}
		return r
	case *SetValidation:
		r, ok := t.Restrictions()
		if !ok {
			return nil
		}
		return r
	case *StringValidation:
		r, ok := t.Restrictions()
		if !ok {
			return nil
		}
		return r
	case *StructValidation:
		r, ok := t.Restrictions()
		if !ok {
			return nil
		}
		return r
	case *TupleValidation:
		r, ok := t.Restrictions()
		if !ok {
			return nil
		}
		return r
	case *UnsignedValidation:
		r, ok := t.Restrictions()
		if !ok {
			return nil
		}
		return r
	default:
		return nil
	}
}

// rewriteRestricted rebuilds v with the given restrictions (nil meaning
// none), preserving every inner Validation (Element/Value/Values, or
// referenced Typename) verbatim. VariantValidation passes through
// unchanged: it carries no restriction layer of its own.
func rewriteRestricted(v Validation, db *TypeDb, restrictions any) (Validation, InvalidValidationError) {
	switch t := v.(type) {
	case *AnyValidation:
		var r []any
		if restrictions != nil {
			r = restrictions.([]any)
		}
		return NewAnyValidation(r, db)
	case *ArrayValidation:
		var r [][]any
		if restrictions != nil {
			r = restrictions.([][]any)
		}
		return NewArrayValidation(t.Base().Element, r, db)
	case *BoolValidation:
		var r []bool
		if restrictions != nil {
			r = restrictions.([]bool)
		}
		return NewBoolValidation(r, db)
	case *DateTimeValidation:
		var r []time.Time
		if restrictions != nil {
			r = restrictions.([]time.Time)
		}
		return NewDateTimeValidation(r, db)
	case *DateValidation:
		var r []time.Time
		if restrictions != nil {
			r = restrictions.([]time.Time)
		}
		return NewDateValidation(r, db)
	case *EnumValidation:
		var r []string
		if restrictions != nil {
			r = restrictions.([]string)
		}
		return NewEnumValidation(t.Base().Typename, r, db)
	case *FloatValidation:
		var r []float64
		if restrictions != nil {
			r = restrictions.([]float64)
		}
		return NewFloatValidation(r, db)
	case *IntegerValidation:
		var r []int64
		if restrictions != nil {
			r = restrictions.([]int64)
		}
		return NewIntegerValidation(r, db)
	case *MapValidation:
		var r []map[string]any
		if restrictions != nil {
			r = restrictions.([]map[string]any)
		}
		return NewMapValidation(t.Base().Value, r, db)
	case *NewtypeValidation:
		var r []any
		if restrictions != nil {
			r = restrictions.([]any)
		}
		return NewNewtypeValidation(t.Base().Typename, r, db)
	case *OptionalValidation:
		var r []any
		if restrictions != nil {
			r = restrictions.([]any)
		}
		return NewOptionalValidation(t.Base().Element, r, db)
	case *SetValidation:
		var r [][]any
		if restrictions != nil {
			r = restrictions.([][]any)
		}
		return NewSetValidation(t.Base().Element, r, db)
	case *StringValidation:
		var r []string
		if restrictions != nil {
			r = restrictions.([]string)
		}
		return NewStringValidation(r, db)
	case *StructValidation:
		var r []map[string]any
		if restrictions != nil {
			r = restrictions.([]map[string]any)
		}
		return NewStructValidation(t.Base().Typename, r, db)
	case *TupleValidation:
		var r [][]any
		if restrictions != nil {
			r = restrictions.([][]any)
		}
		return NewTupleValidation(t.Base().Values, r, db)
	case *UnsignedValidation:
		var r []uint64
		if restrictions != nil {
			r = restrictions.([]uint64)
		}
		return NewUnsignedValidation(r, db)
	case *VariantValidation:
		return t, nil
	default:
		return v, nil
	}
}
