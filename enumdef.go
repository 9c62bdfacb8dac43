package typedb

// EnumDef is a named, ordered set of permitted string values.
type EnumDef struct {
	values      []string
	description string
	hasDesc     bool
}

// NewEnumDef builds an EnumDef, rejecting duplicate values. Every duplicate
// is reported, not just the first.
func NewEnumDef(values []string) (*EnumDef, InvalidValidationError) {
	seen := make(map[string]int, len(values))
	for _, v := range values {
		seen[v]++
	}
	var dups []string
	for _, v := range values {
		if seen[v] > 1 {
			dups = append(dups, v)
			seen[v] = 1 // report each repeated value once
		}
	}
	if len(dups) > 0 {
		errs := make([]InvalidValidationError, 0, len(dups))
		for _, d := range dups {
			errs = append(errs, &DuplicatedEnumValueError{Value: d})
		}
		return nil, AggregateInvalidValidationErrors(errs)
	}
	return &EnumDef{values: append([]string{}, values...)}, nil
}

// Values returns the enum's ordered values.
func (e *EnumDef) Values() []string { return append([]string{}, e.values...) }

// Description returns the enum's description, if set.
func (e *EnumDef) Description() (string, bool) { return e.description, e.hasDesc }

// SetDescription sets the enum's description.
func (e *EnumDef) SetDescription(desc string) {
	e.description = desc
	e.hasDesc = true
}

// Category reports CategoryEnum.
func (e *EnumDef) Category() Category { return CategoryEnum }

// Validate checks that value is one of the enum's declared values.
func (e *EnumDef) Validate(value string, _ *TypeDb) ValidationError {
	for _, v := range e.values {
		if v == value {
			return nil
		}
	}
	return &UnknownEnumValueError{Value: value, Candidates: e.Values()}
}
