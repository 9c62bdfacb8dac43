package typedb

import "time"

// RFC3339Layout is the layout used to project a JSON string into the
// date_time category. Delegated to the standard library the same way teacher
// (jsontypedef-json-typedef-go, TypeTimestamp) does.
const RFC3339Layout = time.RFC3339

// ISODateLayout is the layout used to project a JSON string into the date
// category.
const ISODateLayout = "2006-01-02"

// AsBool projects a JSON value into a Go bool.
func AsBool(value any) (bool, ValidationError) {
	b, ok := value.(bool)
	if !ok {
		return false, &InstanceTypeMismatchError{Value: value, Expected: "boolean"}
	}
	return b, nil
}

// AsInt64 projects a JSON value (decoded as float64) into a signed 64-bit
// integer, rejecting non-integral numbers.
func AsInt64(value any) (int64, ValidationError) {
	f, ok := value.(float64)
	if !ok {
		return 0, &InstanceTypeMismatchError{Value: value, Expected: "integer"}
	}
	i := int64(f)
	if float64(i) != f {
		return 0, &InstanceTypeMismatchError{Value: value, Expected: "integer"}
	}
	return i, nil
}

// AsUint64 projects a JSON value into an unsigned 64-bit integer, rejecting
// negative or non-integral numbers.
func AsUint64(value any) (uint64, ValidationError) {
	f, ok := value.(float64)
	if !ok || f < 0 {
		return 0, &InstanceTypeMismatchError{Value: value, Expected: "integer"}
	}
	u := uint64(f)
	if float64(u) != f {
		return 0, &InstanceTypeMismatchError{Value: value, Expected: "integer"}
	}
	return u, nil
}

// AsFloat64 projects a JSON value into a float64.
func AsFloat64(value any) (float64, ValidationError) {
	f, ok := value.(float64)
	if !ok {
		return 0, &InstanceTypeMismatchError{Value: value, Expected: "number"}
	}
	return f, nil
}

// AsString projects a JSON value into a string.
func AsString(value any) (string, ValidationError) {
	s, ok := value.(string)
	if !ok {
		return "", &InstanceTypeMismatchError{Value: value, Expected: "string"}
	}
	return s, nil
}

// AsArray projects a JSON value into a slice of JSON values.
func AsArray(value any) ([]any, ValidationError) {
	arr, ok := value.([]any)
	if !ok {
		return nil, &InstanceTypeMismatchError{Value: value, Expected: "array"}
	}
	return arr, nil
}

// AsObject projects a JSON value into a JSON object.
func AsObject(value any) (map[string]any, ValidationError) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &InstanceTypeMismatchError{Value: value, Expected: "object"}
	}
	return obj, nil
}

// AsRFC3339 projects a JSON string into a time.Time via RFC3339 parsing.
func AsRFC3339(value any) (time.Time, ValidationError) {
	s, err := AsString(value)
	if err != nil {
		return time.Time{}, err
	}
	t, parseErr := time.Parse(RFC3339Layout, s)
	if parseErr != nil {
		return time.Time{}, &DateTimeParseError{Value: s}
	}
	return t, nil
}

// AsISODate projects a JSON string into a time.Time via ISO8601 date-only
// parsing.
func AsISODate(value any) (time.Time, ValidationError) {
	s, err := AsString(value)
	if err != nil {
		return time.Time{}, err
	}
	t, parseErr := time.Parse(ISODateLayout, s)
	if parseErr != nil {
		return time.Time{}, &DateParseError{Value: s}
	}
	return t, nil
}

// AsOptional projects JSON null to absence (ok=false); any other value is
// passed through unchanged.
func AsOptional(value any) (result any, present bool) {
	if value == nil {
		return nil, false
	}
	return value, true
}
