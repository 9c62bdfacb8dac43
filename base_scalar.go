package typedb

import "time"

// AnyBase accepts any JSON value unconditionally.
type AnyBase struct{}

func (AnyBase) Category() Category { return CategoryAny }
func (AnyBase) Validate(any, *TypeDb) ValidationError { return nil }

// BoolBase accepts any boolean value unconditionally.
type BoolBase struct{}

func (BoolBase) Category() Category { return CategoryBool }
func (BoolBase) Validate(bool, *TypeDb) ValidationError { return nil }

// FloatBase accepts any floating-point value unconditionally.
type FloatBase struct{}

func (FloatBase) Category() Category { return CategoryFloat }
func (FloatBase) Validate(float64, *TypeDb) ValidationError { return nil }

// IntegerBase accepts any signed integer value unconditionally.
type IntegerBase struct{}

func (IntegerBase) Category() Category { return CategoryInteger }
func (IntegerBase) Validate(int64, *TypeDb) ValidationError { return nil }

// UnsignedBase accepts any unsigned integer value unconditionally.
type UnsignedBase struct{}

func (UnsignedBase) Category() Category { return CategoryUnsigned }
func (UnsignedBase) Validate(uint64, *TypeDb) ValidationError { return nil }

// StringBase accepts any string value unconditionally.
type StringBase struct{}

func (StringBase) Category() Category { return CategoryString }
func (StringBase) Validate(string, *TypeDb) ValidationError { return nil }

// DateBase accepts any (already-parsed) date value unconditionally; the
// coercion layer (fromjson.go, AsISODate) is what rejects malformed strings.
type DateBase struct{}

func (DateBase) Category() Category { return CategoryDate }
func (DateBase) Validate(time.Time, *TypeDb) ValidationError { return nil }

// DateTimeBase accepts any (already-parsed) date-time value unconditionally.
type DateTimeBase struct{}

func (DateTimeBase) Category() Category { return CategoryDateTime }
func (DateTimeBase) Validate(time.Time, *TypeDb) ValidationError { return nil }
