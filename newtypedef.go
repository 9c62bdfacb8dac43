package typedb

// NewtypeDef is a named alias over an inner Validation, carrying an optional
// description and a list of examples that are validated at insertion time.
type NewtypeDef struct {
	validation  Validation
	description string
	hasDesc     bool
	examples    []any
}

// NewNewtypeDef builds a NewtypeDef wrapping the given inner Validation.
func NewNewtypeDef(validation Validation) *NewtypeDef {
	return &NewtypeDef{validation: validation}
}

// Validation returns the inner Validation.
func (n *NewtypeDef) Validation() Validation { return n.validation }

// Description returns the newtype's description, if set.
func (n *NewtypeDef) Description() (string, bool) { return n.description, n.hasDesc }

// SetDescription sets the newtype's description.
func (n *NewtypeDef) SetDescription(desc string) {
	n.description = desc
	n.hasDesc = true
}

// Examples returns the accepted example values, in insertion order.
func (n *NewtypeDef) Examples() []any { return append([]any{}, n.examples...) }

// PushExample validates value against the inner Validation and, on success,
// appends it to the example list.
func (n *NewtypeDef) PushExample(value any, db *TypeDb) ValidationError {
	if err := n.Validate(value, db); err != nil {
		return err
	}
	n.examples = append(n.examples, value)
	return nil
}

// PushExamples validates and appends each value in turn, aggregating every
// failure (never stopping at the first bad example).
func (n *NewtypeDef) PushExamples(values []any, db *TypeDb) ValidationError {
	return CollectValidationErrors(values, func(v any) ValidationError {
		return n.PushExample(v, db)
	})
}

// ClearExamples removes all recorded examples.
func (n *NewtypeDef) ClearExamples() { n.examples = nil }

// Category reports CategoryNewtype.
func (n *NewtypeDef) Category() Category { return CategoryNewtype }

// Validate delegates to the inner Validation.
func (n *NewtypeDef) Validate(value any, db *TypeDb) ValidationError {
	return n.validation.ValidateJSON(value, db)
}
