package typedb

import "fmt"

// ValidationError is the taxonomy of runtime conformance failures produced by
// Validate. It is strictly disjoint from InvalidValidationError.
type ValidationError interface {
	error
	validationError()
}

// InvalidValidationError is the taxonomy of build-time / well-formedness
// failures produced by registry and validator builders.
type InvalidValidationError interface {
	error
	invalidValidationError()
}

// --- ValidationError variants -----------------------------------------------

// UnknownEnumValueError means value is not one of an EnumDef's values.
type UnknownEnumValueError struct {
	Value      string
	Candidates []string
}

func (e *UnknownEnumValueError) validationError() {}
func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("unknown enum value %q, candidates: %v", e.Value, e.Candidates)
}

// MissingPropertyError means a required struct field or tag was absent.
type MissingPropertyError struct {
	Name string
}

func (e *MissingPropertyError) validationError() {}
func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("missing property %q", e.Name)
}

// OnPropertyValueError wraps an error that occurred while validating the
// value of a named struct property.
type OnPropertyValueError struct {
	Name  string
	Inner ValidationError
}

func (e *OnPropertyValueError) validationError() {}
func (e *OnPropertyValueError) Error() string {
	return fmt.Sprintf("property %q: %s", e.Name, e.Inner)
}
func (e *OnPropertyValueError) Unwrap() error { return e.Inner }

// NewtypeError wraps the inner failure of a newtype's wrapped Validation.
type NewtypeError struct {
	Typename string
	Inner    ValidationError
}

func (e *NewtypeError) validationError() {}
func (e *NewtypeError) Error() string {
	return fmt.Sprintf("newtype %q: %s", e.Typename, e.Inner)
}
func (e *NewtypeError) Unwrap() error { return e.Inner }

// TagMismatchError means a struct tag's literal did not match the instance.
type TagMismatchError struct {
	Name     string
	Expected string
	Actual   string
}

func (e *TagMismatchError) validationError() {}
func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("tag %q: expected %q, got %q", e.Name, e.Expected, e.Actual)
}

// InstanceTypeMismatchError means a JSON value did not project to the
// expected shape.
type InstanceTypeMismatchError struct {
	Value    any
	Expected string
}

func (e *InstanceTypeMismatchError) validationError() {}
func (e *InstanceTypeMismatchError) Error() string {
	return fmt.Sprintf("expected %s, got %#v", e.Expected, e.Value)
}

// TypeDefNotFoundError means a typename referenced at validate time has no
// registered definition.
type TypeDefNotFoundError struct {
	Typename string
}

func (e *TypeDefNotFoundError) validationError() {}
func (e *TypeDefNotFoundError) Error() string {
	return fmt.Sprintf("type definition for %q not found", e.Typename)
}

// TupleDimensionMismatchError means a tuple instance's length did not match
// the declared number of positions.
type TupleDimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *TupleDimensionMismatchError) validationError() {}
func (e *TupleDimensionMismatchError) Error() string {
	return fmt.Sprintf("tuple dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// VariantMismatchError means no alternative of a variant validator accepted
// the value.
type VariantMismatchError struct {
	Value any
}

func (e *VariantMismatchError) validationError() {}
func (e *VariantMismatchError) Error() string {
	return fmt.Sprintf("value does not match any variant: %#v", e.Value)
}

// DateTimeParseError means a string failed RFC3339 parsing.
type DateTimeParseError struct {
	Value string
}

func (e *DateTimeParseError) validationError() {}
func (e *DateTimeParseError) Error() string {
	return fmt.Sprintf("%q is not a valid RFC3339 date-time", e.Value)
}

// DateParseError means a string failed ISO8601 date parsing.
type DateParseError struct {
	Value string
}

func (e *DateParseError) validationError() {}
func (e *DateParseError) Error() string {
	return fmt.Sprintf("%q is not a valid ISO8601 date", e.Value)
}

// InvalidValidationWrapError surfaces a build-time failure (e.g. a failed
// variant-index build) that was discovered mid-validate.
type InvalidValidationWrapError struct {
	ForWhat string
	Inner   InvalidValidationError
}

func (e *InvalidValidationWrapError) validationError() {}
func (e *InvalidValidationWrapError) Error() string {
	return fmt.Sprintf("%s: %s", e.ForWhat, e.Inner)
}
func (e *InvalidValidationWrapError) Unwrap() error { return e.Inner }

// RestrictionNotSatisfiedError means a value equaled none of the declared
// restriction values.
type RestrictionNotSatisfiedError struct{}

func (e *RestrictionNotSatisfiedError) validationError() {}
func (e *RestrictionNotSatisfiedError) Error() string {
	return "value does not satisfy any restriction"
}

// AggregatedValidationError is a flattened list of ValidationErrors.
type AggregatedValidationError struct {
	Errors []ValidationError
}

func (e *AggregatedValidationError) validationError() {}
func (e *AggregatedValidationError) Error() string {
	return fmt.Sprintf("%d validation errors", len(e.Errors))
}

// --- InvalidValidationError variants ----------------------------------------

// DuplicatedEnumValueError means an EnumDef was constructed with a repeated
// value.
type DuplicatedEnumValueError struct {
	Value string
}

func (e *DuplicatedEnumValueError) invalidValidationError() {}
func (e *DuplicatedEnumValueError) Error() string {
	return fmt.Sprintf("duplicated enum value %q", e.Value)
}

// ValidationWrapError surfaces a ValidationError encountered while validating
// a restriction, example, or default at build time.
type ValidationWrapError struct {
	ForWhat string
	Inner   ValidationError
}

func (e *ValidationWrapError) invalidValidationError() {}
func (e *ValidationWrapError) Error() string {
	return fmt.Sprintf("%s: %s", e.ForWhat, e.Inner)
}
func (e *ValidationWrapError) Unwrap() error { return e.Inner }

// AlreadyDefinedTypeError means Reg was called twice for the same typename.
type AlreadyDefinedTypeError struct {
	Typename string
}

func (e *AlreadyDefinedTypeError) invalidValidationError() {}
func (e *AlreadyDefinedTypeError) Error() string {
	return fmt.Sprintf("type %q is already defined", e.Typename)
}

// UndefinedTypeError means a typename referenced while building a Validation
// or a variant index has no registered definition.
type UndefinedTypeError struct {
	Typename string
}

func (e *UndefinedTypeError) invalidValidationError() {}
func (e *UndefinedTypeError) Error() string {
	return fmt.Sprintf("type definition for %q not found", e.Typename)
}

// InstanceNotFoundError means a reference resolver could not find the target
// of a JSON pointer or anchor lookup.
type InstanceNotFoundError struct {
	Path string
}

func (e *InstanceNotFoundError) invalidValidationError() {}
func (e *InstanceNotFoundError) Error() string {
	return fmt.Sprintf("instance not found: %s", e.Path)
}

// RelativeURIWithoutBaseError means a relative reference was resolved with
// no current base URI available.
type RelativeURIWithoutBaseError struct {
	Relative string
}

func (e *RelativeURIWithoutBaseError) invalidValidationError() {}
func (e *RelativeURIWithoutBaseError) Error() string {
	return fmt.Sprintf("relative uri %q used without a base", e.Relative)
}

// InvalidURIError wraps a URI parse failure.
type InvalidURIError struct {
	Cause error
}

func (e *InvalidURIError) invalidValidationError() {}
func (e *InvalidURIError) Error() string {
	return fmt.Sprintf("invalid uri: %s", e.Cause)
}
func (e *InvalidURIError) Unwrap() error { return e.Cause }

// AggregatedInvalidValidationError is a flattened list of
// InvalidValidationErrors.
type AggregatedInvalidValidationError struct {
	Errors []InvalidValidationError
}

func (e *AggregatedInvalidValidationError) invalidValidationError() {}
func (e *AggregatedInvalidValidationError) Error() string {
	return fmt.Sprintf("%d invalid-validation errors", len(e.Errors))
}

// --- aggregation helpers (component A) --------------------------------------
//
// Mirrors the Rust AggregatableError trait, implemented once per taxonomy:
// Go favors this small duplication over forcing a shared generic constraint
// across two otherwise-unrelated interfaces.

// asManyValidation unwraps an already-aggregated error into its flat slice.
func asManyValidation(err ValidationError) ([]ValidationError, bool) {
	if agg, ok := err.(*AggregatedValidationError); ok {
		return agg.Errors, true
	}
	return nil, false
}

// AggregateValidationErrors wraps a slice of errors without flattening
// (mirrors Rust's `aggregate`, which is unconditionally `Self::Aggregated`,
// used by the Collect* helpers below). A single-error slice is still wrapped:
// there is no singleton special case.
func AggregateValidationErrors(errs []ValidationError) ValidationError {
	if len(errs) == 0 {
		return nil
	}
	return &AggregatedValidationError{Errors: errs}
}

// MergeValidationError flattens one level when combining two errors, so that
// e.g. a struct's field-errors and tag-errors end up as sibling leaves in one
// Aggregated list rather than nested two deep.
func MergeValidationError(a, b ValidationError) ValidationError {
	aMany, aIsMany := asManyValidation(a)
	bMany, bIsMany := asManyValidation(b)
	switch {
	case aIsMany && bIsMany:
		return AggregateValidationErrors(append(append([]ValidationError{}, aMany...), bMany...))
	case aIsMany && !bIsMany:
		return AggregateValidationErrors(append(append([]ValidationError{}, aMany...), b))
	case !aIsMany && bIsMany:
		return AggregateValidationErrors(append([]ValidationError{a}, bMany...))
	default:
		return AggregateValidationErrors([]ValidationError{a, b})
	}
}

// MergeValidationResult merges two (possibly nil) ValidationErrors the way
// StructDef merges its field and tag error sets: both run to completion,
// never short-circuiting on the first failure.
func MergeValidationResult(a, b ValidationError) ValidationError {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return MergeValidationError(a, b)
	}
}

// CollectValidationErrors runs f over each item, aggregating every failure
// (never stopping at the first).
func CollectValidationErrors[T any](items []T, f func(T) ValidationError) ValidationError {
	var errs []ValidationError
	for _, item := range items {
		if err := f(item); err != nil {
			errs = append(errs, err)
		}
	}
	return AggregateValidationErrors(errs)
}

// asManyInvalid unwraps an already-aggregated error into its flat slice.
func asManyInvalid(err InvalidValidationError) ([]InvalidValidationError, bool) {
	if agg, ok := err.(*AggregatedInvalidValidationError); ok {
		return agg.Errors, true
	}
	return nil, false
}

// AggregateInvalidValidationErrors wraps a slice of errors without
// flattening. A single-error slice is still wrapped: there is no singleton
// special case.
func AggregateInvalidValidationErrors(errs []InvalidValidationError) InvalidValidationError {
	if len(errs) == 0 {
		return nil
	}
	return &AggregatedInvalidValidationError{Errors: errs}
}

// MergeInvalidValidationError flattens one level, mirroring
// MergeValidationError.
func MergeInvalidValidationError(a, b InvalidValidationError) InvalidValidationError {
	aMany, aIsMany := asManyInvalid(a)
	bMany, bIsMany := asManyInvalid(b)
	switch {
	case aIsMany && bIsMany:
		return AggregateInvalidValidationErrors(append(append([]InvalidValidationError{}, aMany...), bMany...))
	case aIsMany && !bIsMany:
		return AggregateInvalidValidationErrors(append(append([]InvalidValidationError{}, aMany...), b))
	case !aIsMany && bIsMany:
		return AggregateInvalidValidationErrors(append([]InvalidValidationError{a}, bMany...))
	default:
		return AggregateInvalidValidationErrors([]InvalidValidationError{a, b})
	}
}

// MergeInvalidValidationResult merges two (possibly nil) results, flattening
// aggregates.
func MergeInvalidValidationResult(a, b InvalidValidationError) InvalidValidationError {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return MergeInvalidValidationError(a, b)
	}
}

// CollectInvalidValidationErrors runs f over each item, aggregating every
// failure.
func CollectInvalidValidationErrors[T any](items []T, f func(T) InvalidValidationError) InvalidValidationError {
	var errs []InvalidValidationError
	for _, item := range items {
		if err := f(item); err != nil {
			errs = append(errs, err)
		}
	}
	return AggregateInvalidValidationErrors(errs)
}
