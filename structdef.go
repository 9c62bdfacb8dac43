package typedb

import "sort"

// StructTag is a required or optional discriminator field: the JSON value at
// Name must equal Value for Required tags; Optional tags are only checked
// when present.
type StructTag struct {
	required bool
	value    string
}

// RequiredTag builds a Required struct tag with the given literal value.
func RequiredTag(value string) StructTag { return StructTag{required: true, value: value} }

// OptionalTag builds an Optional struct tag with the given literal value.
func OptionalTag(value string) StructTag { return StructTag{required: false, value: value} }

// IsRequired reports whether this tag is Required.
func (t StructTag) IsRequired() bool { return t.required }

// IsOptional reports whether this tag is Optional.
func (t StructTag) IsOptional() bool { return !t.required }

// Value returns the tag's literal value.
func (t StructTag) Value() string { return t.value }

// Field is a single declared struct field: a Validation, an optional default
// value, and an optional description.
type Field struct {
	validation  Validation
	def         any
	hasDefault  bool
	description string
	hasDesc     bool
}

// NewField builds a Field with no default and no description.
func NewField(validation Validation) *Field {
	return &Field{validation: validation}
}

// Validation returns the field's Validation.
func (f *Field) Validation() Validation { return f.validation }

// DefaultValue returns the field's default value, if set.
func (f *Field) DefaultValue() (any, bool) { return f.def, f.hasDefault }

// SetDefault validates value against the field's Validation and, on success,
// records it as the field's default.
func (f *Field) SetDefault(value any, db *TypeDb) ValidationError {
	if err := f.validation.ValidateJSON(value, db); err != nil {
		return err
	}
	f.def = value
	f.hasDefault = true
	return nil
}

// ClearDefault removes the field's default value.
func (f *Field) ClearDefault() {
	f.def = nil
	f.hasDefault = false
}

// Description returns the field's description, if set.
func (f *Field) Description() (string, bool) { return f.description, f.hasDesc }

// SetDescription sets the field's description.
func (f *Field) SetDescription(desc string) {
	f.description = desc
	f.hasDesc = true
}

// IsRequired reports whether the field must be present on an instance.
//
// spec.md §9 documents a bug in the Rust source here (is_required returns
// true whenever the validation is Optional, which is backwards) and
// instructs implementers to use the corrected semantics below: a field is
// required iff its validation is not Optional AND it has no default.
func (f *Field) IsRequired() bool {
	if _, ok := f.validation.(*OptionalValidation); ok {
		return false
	}
	return !f.hasDefault
}

// StructDef is a named record type: a set of declared fields plus a set of
// literal-valued discriminator tags.
type StructDef struct {
	fields      map[string]*Field
	tags        map[string]StructTag
	description string
	hasDesc     bool
	examples    []any
}

// NewStructDef builds a StructDef from its fields and tags.
func NewStructDef(fields map[string]*Field, tags map[string]StructTag) *StructDef {
	if fields == nil {
		fields = map[string]*Field{}
	}
	if tags == nil {
		tags = map[string]StructTag{}
	}
	return &StructDef{fields: fields, tags: tags}
}

// Fields returns the struct's declared fields.
func (s *StructDef) Fields() map[string]*Field { return s.fields }

// Tags returns the struct's declared discriminator tags.
func (s *StructDef) Tags() map[string]StructTag { return s.tags }

// SortedFieldNames returns field names in ascending order, for deterministic
// iteration (error ordering, serialization).
func (s *StructDef) SortedFieldNames() []string {
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SortedTagNames returns tag names in ascending order.
func (s *StructDef) SortedTagNames() []string {
	names := make([]string, 0, len(s.tags))
	for name := range s.tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Description returns the struct's description, if set.
func (s *StructDef) Description() (string, bool) { return s.description, s.hasDesc }

// SetDescription sets the struct's description.
func (s *StructDef) SetDescription(desc string) {
	s.description = desc
	s.hasDesc = true
}

// Examples returns the struct's recorded example values.
func (s *StructDef) Examples() []any { return append([]any{}, s.examples...) }

// Category reports CategoryStruct.
func (s *StructDef) Category() Category { return CategoryStruct }

// Validate checks a JSON object against every declared field and tag. Field
// errors and tag errors are collected independently and merged, so a caller
// observes every problem at once rather than stopping at the first.
func (s *StructDef) Validate(value map[string]any, db *TypeDb) ValidationError {
	fieldErr := CollectValidationErrors(s.SortedFieldNames(), func(name string) ValidationError {
		return s.validateField(value, name, s.fields[name], db)
	})
	tagErr := CollectValidationErrors(s.SortedTagNames(), func(name string) ValidationError {
		return s.validateTag(value, name, s.tags[name])
	})
	return MergeValidationResult(fieldErr, tagErr)
}

func (s *StructDef) validateField(value map[string]any, name string, field *Field, db *TypeDb) ValidationError {
	if v, ok := value[name]; ok {
		if err := field.validation.ValidateJSON(v, db); err != nil {
			return &OnPropertyValueError{Name: name, Inner: err}
		}
		return nil
	}
	if field.IsRequired() {
		return &MissingPropertyError{Name: name}
	}
	return nil
}

func (s *StructDef) validateTag(value map[string]any, name string, tag StructTag) ValidationError {
	v, ok := value[name]
	if !ok {
		if tag.IsRequired() {
			return &MissingPropertyError{Name: name}
		}
		return nil
	}
	str, ok := v.(string)
	if !ok {
		return &InstanceTypeMismatchError{Value: v, Expected: "string"}
	}
	if str != tag.value {
		return &TagMismatchError{Name: name, Expected: tag.value, Actual: str}
	}
	return nil
}
