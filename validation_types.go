package typedb

import "time"

// Each concrete Validation below pairs a base validator with the uniform
// Restricted refinement wrapper, and implements ValidateJSON by coercing the
// generic JSON value into the category's target shape (component B) before
// delegating to Restricted.Validate.

// AnyValidation accepts any JSON value, optionally restricted to a finite set.
type AnyValidation struct{ Restricted[AnyBase, any] }

// NewAnyValidation builds an AnyValidation, validating restrictions against
// AnyBase (which always succeeds, so this constructor never fails).
func NewAnyValidation(restrictions []any, db *TypeDb) (*AnyValidation, InvalidValidationError) {
	r, err := NewRestrictedWith[AnyBase, any](AnyBase{}, restrictions, db)
	if err != nil {
		return nil, err
	}
	return &AnyValidation{r}, nil
}

func (v *AnyValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	return v.Validate(value, db)
}

// ArrayValidation validates a JSON array element-wise.
type ArrayValidation struct{ Restricted[ArrayBase, []any] }

// NewArrayValidation builds an ArrayValidation over element, optionally
// restricted to a finite set of whole arrays.
func NewArrayValidation(element Validation, restrictions [][]any, db *TypeDb) (*ArrayValidation, InvalidValidationError) {
	r, err := NewRestrictedWith[ArrayBase, []any](ArrayBase{Element: element}, restrictions, db)
	if err != nil {
		return nil, err
	}
	return &ArrayValidation{r}, nil
}

func (v *ArrayValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	arr, err := AsArray(value)
	if err != nil {
		return err
	}
	return v.Validate(arr, db)
}

// BoolValidation validates a JSON boolean.
type BoolValidation struct{ Restricted[BoolBase, bool] }

// NewBoolValidation builds a BoolValidation, optionally restricted.
func NewBoolValidation(restrictions []bool, db *TypeDb) (*BoolValidation, InvalidValidationError) {
	r, err := NewRestrictedWith[BoolBase, bool](BoolBase{}, restrictions, db)
	if err != nil {
		return nil, err
	}
	return &BoolValidation{r}, nil
}

func (v *BoolValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	b, err := AsBool(value)
	if err != nil {
		return err
	}
	return v.Validate(b, db)
}

// DateTimeValidation validates an RFC3339 date-time string.
type DateTimeValidation struct{ Restricted[DateTimeBase, time.Time] }

// NewDateTimeValidation builds a DateTimeValidation, optionally restricted.
func NewDateTimeValidation(restrictions []time.Time, db *TypeDb) (*DateTimeValidation, InvalidValidationError) {
	r, err := NewRestrictedWith[DateTimeBase, time.Time](DateTimeBase{}, restrictions, db)
	if err != nil {
		return nil, err
	}
	return &DateTimeValidation{r}, nil
}

func (v *DateTimeValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	t, err := AsRFC3339(value)
	if err != nil {
		return err
	}
	return v.Validate(t, db)
}

// DateValidation validates an ISO8601 date-only string.
type DateValidation struct{ Restricted[DateBase, time.Time] }

// NewDateValidation builds a DateValidation, optionally restricted.
func NewDateValidation(restrictions []time.Time, db *TypeDb) (*DateValidation, InvalidValidationError) {
	r, err := NewRestrictedWith[DateBase, time.Time](DateBase{}, restrictions, db)
	if err != nil {
		return nil, err
	}
	return &DateValidation{r}, nil
}

func (v *DateValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	t, err := AsISODate(value)
	if err != nil {
		return err
	}
	return v.Validate(t, db)
}

// EnumValidation validates a string against a named EnumDef.
type EnumValidation struct{ Restricted[EnumBase, string] }

// NewEnumValidation builds an EnumValidation over typename, optionally
// restricted to a subset of the enum's values.
func NewEnumValidation(typename string, restrictions []string, db *TypeDb) (*EnumValidation, InvalidValidationError) {
	base, err := NewEnumBase(typename, db)
	if err != nil {
		return nil, err
	}
	r, err := NewRestrictedWith[EnumBase, string](base, restrictions, db)
	if err != nil {
		return nil, err
	}
	return &EnumValidation{r}, nil
}

func (v *EnumValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	s, err := AsString(value)
	if err != nil {
		return err
	}
	return v.Validate(s, db)
}

// FloatValidation validates a JSON number as a float64.
type FloatValidation struct{ Restricted[FloatBase, float64] }

// NewFloatValidation builds a FloatValidation, optionally restricted.
func NewFloatValidation(restrictions []float64, db *TypeDb) (*FloatValidation, InvalidValidationError) {
	r, err := NewRestrictedWith[FloatBase, float64](FloatBase{}, restrictions, db)
	if err != nil {
		return nil, err
	}
	return &FloatValidation{r}, nil
}

func (v *FloatValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	f, err := AsFloat64(value)
	if err != nil {
		return err
	}
	return v.Validate(f, db)
}

// IntegerValidation validates a JSON number as a signed integer.
type IntegerValidation struct{ Restricted[IntegerBase, int64] }

// NewIntegerValidation builds an IntegerValidation, optionally restricted.
func NewIntegerValidation(restrictions []int64, db *TypeDb) (*IntegerValidation, InvalidValidationError) {
	r, err := NewRestrictedWith[IntegerBase, int64](IntegerBase{}, restrictions, db)
	if err != nil {
		return nil, err
	}
	return &IntegerValidation{r}, nil
}

func (v *IntegerValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	i, err := AsInt64(value)
	if err != nil {
		return err
	}
	return v.Validate(i, db)
}

// MapValidation validates every value of a JSON object against a single
// inner Validation.
type MapValidation struct{ Restricted[MapBase, map[string]any] }

// NewMapValidation builds a MapValidation over value, optionally restricted.
func NewMapValidation(value Validation, restrictions []map[string]any, db *TypeDb) (*MapValidation, InvalidValidationError) {
	r, err := NewRestrictedWith[MapBase, map[string]any](MapBase{Value: value}, restrictions, db)
	if err != nil {
		return nil, err
	}
	return &MapValidation{r}, nil
}

func (v *MapValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	obj, err := AsObject(value)
	if err != nil {
		return err
	}
	return v.Validate(obj, db)
}

// NewtypeValidation validates a JSON value against a named NewtypeDef.
type NewtypeValidation struct{ Restricted[NewtypeBase, any] }

// NewNewtypeValidation builds a NewtypeValidation over typename, optionally
// restricted.
func NewNewtypeValidation(typename string, restrictions []any, db *TypeDb) (*NewtypeValidation, InvalidValidationError) {
	base, err := NewNewtypeBase(typename, db)
	if err != nil {
		return nil, err
	}
	r, err := NewRestrictedWith[NewtypeBase, any](base, restrictions, db)
	if err != nil {
		return nil, err
	}
	return &NewtypeValidation{r}, nil
}

func (v *NewtypeValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	return v.Validate(value, db)
}

// OptionalValidation skips validation on JSON null; otherwise delegates.
type OptionalValidation struct{ Restricted[OptionalBase, any] }

// NewOptionalValidation builds an OptionalValidation over element.
func NewOptionalValidation(element Validation, restrictions []any, db *TypeDb) (*OptionalValidation, InvalidValidationError) {
	r, err := NewRestrictedWith[OptionalBase, any](OptionalBase{Element: element}, restrictions, db)
	if err != nil {
		return nil, err
	}
	return &OptionalValidation{r}, nil
}

func (v *OptionalValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	return v.Validate(value, db)
}

// SetValidation validates a JSON array element-wise (Category differs from
// ArrayValidation only).
type SetValidation struct{ Restricted[SetBase, []any] }

// NewSetValidation builds a SetValidation over element, optionally restricted.
func NewSetValidation(element Validation, restrictions [][]any, db *TypeDb) (*SetValidation, InvalidValidationError) {
	r, err := NewRestrictedWith[SetBase, []any](SetBase{Element: element}, restrictions, db)
	if err != nil {
		return nil, err
	}
	return &SetValidation{r}, nil
}

func (v *SetValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	arr, err := AsArray(value)
	if err != nil {
		return err
	}
	return v.Validate(arr, db)
}

// StringValidation validates a JSON string.
type StringValidation struct{ Restricted[StringBase, string] }

// NewStringValidation builds a StringValidation, optionally restricted.
func NewStringValidation(restrictions []string, db *TypeDb) (*StringValidation, InvalidValidationError) {
	r, err := NewRestrictedWith[StringBase, string](StringBase{}, restrictions, db)
	if err != nil {
		return nil, err
	}
	return &StringValidation{r}, nil
}

func (v *StringValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	s, err := AsString(value)
	if err != nil {
		return err
	}
	return v.Validate(s, db)
}

// StructValidation validates a JSON object against a named StructDef.
type StructValidation struct{ Restricted[StructBase, map[string]any] }

// NewStructValidation builds a StructValidation over typename, optionally
// restricted.
func NewStructValidation(typename string, restrictions []map[string]any, db *TypeDb) (*StructValidation, InvalidValidationError) {
	base, err := NewStructBase(typename, db)
	if err != nil {
		return nil, err
	}
	r, err := NewRestrictedWith[StructBase, map[string]any](base, restrictions, db)
	if err != nil {
		return nil, err
	}
	return &StructValidation{r}, nil
}

func (v *StructValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	obj, err := AsObject(value)
	if err != nil {
		return err
	}
	return v.Validate(obj, db)
}

// TupleValidation validates a fixed-length JSON array position by position.
type TupleValidation struct{ Restricted[TupleBase, []any] }

// NewTupleValidation builds a TupleValidation over values, optionally
// restricted.
func NewTupleValidation(values []Validation, restrictions [][]any, db *TypeDb) (*TupleValidation, InvalidValidationError) {
	r, err := NewRestrictedWith[TupleBase, []any](TupleBase{Values: values}, restrictions, db)
	if err != nil {
		return nil, err
	}
	return &TupleValidation{r}, nil
}

func (v *TupleValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	arr, err := AsArray(value)
	if err != nil {
		return err
	}
	return v.Validate(arr, db)
}

// UnsignedValidation validates a JSON number as an unsigned integer.
type UnsignedValidation struct{ Restricted[UnsignedBase, uint64] }

// NewUnsignedValidation builds an UnsignedValidation, optionally restricted.
func NewUnsignedValidation(restrictions []uint64, db *TypeDb) (*UnsignedValidation, InvalidValidationError) {
	r, err := NewRestrictedWith[UnsignedBase, uint64](UnsignedBase{}, restrictions, db)
	if err != nil {
		return nil, err
	}
	return &UnsignedValidation{r}, nil
}

func (v *UnsignedValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	u, err := AsUint64(value)
	if err != nil {
		return err
	}
	return v.Validate(u, db)
}
