package typedb

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// This file is the self-describing on-disk form of the whole algebra: every
// Validation, TypeDef, StructTag and the TypeDb itself round-trips through
// JSON using a "type"/"kind" discriminator, following the same hand-written
// Marshaler/Unmarshaler idiom the teacher uses for its own Schema type.
// Decoding a Validation or TypeDef needs a *TypeDb (named categories
// revalidate against it, same as every other builder in this package), so
// unmarshaling is exposed as plain functions rather than the
// json.Unmarshaler interface, which carries no such context.

type validationEnvelope struct {
	Category     Category        `json:"type"`
	Restrictions json.RawMessage `json:"restrictions,omitempty"`
	Typename     string          `json:"typename,omitempty"`
	Element      json.RawMessage `json:"element,omitempty"`
	Value        json.RawMessage `json:"value,omitempty"`
	Values       json.RawMessage `json:"values,omitempty"`
	Variants     json.RawMessage `json:"variants,omitempty"`
}

func marshalRestrictions(restr any, ok bool) (json.RawMessage, error) {
	if !ok {
		return nil, nil
	}
	return json.Marshal(restr)
}

func (v *AnyValidation) MarshalJSON() ([]byte, error) {
	restr, ok := v.Restrictions()
	r, err := marshalRestrictions(restr, ok)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategoryAny, Restrictions: r})
}

func (v *ArrayValidation) MarshalJSON() ([]byte, error) {
	elem, err := json.Marshal(v.Base().Element)
	if err != nil {
		return nil, err
	}
	restr, ok := v.Restrictions()
	r, err := marshalRestrictions(restr, ok)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategoryArray, Element: elem, Restrictions: r})
}

func (v *BoolValidation) MarshalJSON() ([]byte, error) {
	restr, ok := v.Restrictions()
	r, err := marshalRestrictions(restr, ok)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategoryBool, Restrictions: r})
}

func (v *DateTimeValidation) MarshalJSON() ([]byte, error) {
	restr, ok := v.Restrictions()
	r, err := marshalRestrictions(restr, ok)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategoryDateTime, Restrictions: r})
}

func (v *DateValidation) MarshalJSON() ([]byte, error) {
	restr, ok := v.Restrictions()
	dates := make([]string, 0, len(restr))
	for _, d := range restr {
		dates = append(dates, d.Format(ISODateLayout))
	}
	r, err := marshalRestrictions(dates, ok)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategoryDate, Restrictions: r})
}

func (v *EnumValidation) MarshalJSON() ([]byte, error) {
	restr, ok := v.Restrictions()
	r, err := marshalRestrictions(restr, ok)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategoryEnum, Typename: v.Base().Typename, Restrictions: r})
}

func (v *FloatValidation) MarshalJSON() ([]byte, error) {
	restr, ok := v.Restrictions()
	r, err := marshalRestrictions(restr, ok)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategoryFloat, Restrictions: r})
}

func (v *IntegerValidation) MarshalJSON() ([]byte, error) {
	restr, ok := v.Restrictions()
	r, err := marshalRestrictions(restr, ok)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategoryInteger, Restrictions: r})
}

func (v *MapValidation) MarshalJSON() ([]byte, error) {
	value, err := json.Marshal(v.Base().Value)
	if err != nil {
		return nil, err
	}
	restr, ok := v.Restrictions()
	r, err := marshalRestrictions(restr, ok)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategoryMap, Value: value, Restrictions: r})
}

func (v *NewtypeValidation) MarshalJSON() ([]byte, error) {
	restr, ok := v.Restrictions()
	r, err := marshalRestrictions(restr, ok)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategoryNewtype, Typename: v.Base().Typename, Restrictions: r})
}

func (v *OptionalValidation) MarshalJSON() ([]byte, error) {
	elem, err := json.Marshal(v.Base().Element)
	if err != nil {
		return nil, err
	}
	restr, ok := v.Restrictions()
	r, err := marshalRestrictions(restr, ok)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategoryOptional, Element: elem, Restrictions: r})
}

func (v *SetValidation) MarshalJSON() ([]byte, error) {
	elem, err := json.Marshal(v.Base().Element)
	if err != nil {
		return nil, err
	}
	restr, ok := v.Restrictions()
	r, err := marshalRestrictions(restr, ok)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategorySet, Element: elem, Restrictions: r})
}

func (v *StringValidation) MarshalJSON() ([]byte, error) {
	restr, ok := v.Restrictions()
	r, err := marshalRestrictions(restr, ok)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategoryString, Restrictions: r})
}

func (v *StructValidation) MarshalJSON() ([]byte, error) {
	restr, ok := v.Restrictions()
	r, err := marshalRestrictions(restr, ok)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategoryStruct, Typename: v.Base().Typename, Restrictions: r})
}

func (v *TupleValidation) MarshalJSON() ([]byte, error) {
	values := v.Base().Values
	raws := make([]json.RawMessage, len(values))
	for i, val := range values {
		b, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		raws[i] = b
	}
	valuesJSON, err := json.Marshal(raws)
	if err != nil {
		return nil, err
	}
	restr, ok := v.Restrictions()
	r, err := marshalRestrictions(restr, ok)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategoryTuple, Values: valuesJSON, Restrictions: r})
}

func (v *UnsignedValidation) MarshalJSON() ([]byte, error) {
	restr, ok := v.Restrictions()
	r, err := marshalRestrictions(restr, ok)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategoryUnsigned, Restrictions: r})
}

func (v *VariantValidation) MarshalJSON() ([]byte, error) {
	variants := v.Variants()
	raws := make([]json.RawMessage, len(variants))
	for i, val := range variants {
		b, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		raws[i] = b
	}
	variantsJSON, err := json.Marshal(raws)
	if err != nil {
		return nil, err
	}
	return json.Marshal(validationEnvelope{Category: CategoryVariant, Variants: variantsJSON})
}

// UnmarshalValidation decodes a Validation from its discriminated-union JSON
// form, resolving any named (Enum/Newtype/Struct) leaves and revalidating
// any restriction list against db.
func UnmarshalValidation(data []byte, db *TypeDb) (Validation, error) {
	var env validationEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if !env.Category.valid() {
		return nil, fmt.Errorf("unknown validation category %q", env.Category)
	}
	switch env.Category {
	case CategoryAny:
		var restr []any
		if err := decodeRestrictions(env.Restrictions, &restr); err != nil {
			return nil, err
		}
		return NewAnyValidation(restr, db)
	case CategoryArray:
		elem, err := UnmarshalValidation(env.Element, db)
		if err != nil {
			return nil, err
		}
		var restr [][]any
		if err := decodeRestrictions(env.Restrictions, &restr); err != nil {
			return nil, err
		}
		return NewArrayValidation(elem, restr, db)
	case CategoryBool:
		var restr []bool
		if err := decodeRestrictions(env.Restrictions, &restr); err != nil {
			return nil, err
		}
		return NewBoolValidation(restr, db)
	case CategoryDateTime:
		var raw []string
		if err := decodeRestrictions(env.Restrictions, &raw); err != nil {
			return nil, err
		}
		restr, err := parseTimes(raw, RFC3339Layout)
		if err != nil {
			return nil, err
		}
		return NewDateTimeValidation(restr, db)
	case CategoryDate:
		var raw []string
		if err := decodeRestrictions(env.Restrictions, &raw); err != nil {
			return nil, err
		}
		restr, err := parseTimes(raw, ISODateLayout)
		if err != nil {
			return nil, err
		}
		return NewDateValidation(restr, db)
	case CategoryEnum:
		var restr []string
		if err := decodeRestrictions(env.Restrictions, &restr); err != nil {
			return nil, err
		}
		return NewEnumValidation(env.Typename, restr, db)
	case CategoryFloat:
		var restr []float64
		if err := decodeRestrictions(env.Restrictions, &restr); err != nil {
			return nil, err
		}
		return NewFloatValidation(restr, db)
	case CategoryInteger:
		var restr []int64
		if err := decodeRestrictions(env.Restrictions, &restr); err != nil {
			return nil, err
		}
		return NewIntegerValidation(restr, db)
	case CategoryMap:
		value, err := UnmarshalValidation(env.Value, db)
		if err != nil {
			return nil, err
		}
		var restr []map[string]any
		if err := decodeRestrictions(env.Restrictions, &restr); err != nil {
			return nil, err
		}
		return NewMapValidation(value, restr, db)
	case CategoryNewtype:
		var restr []any
		if err := decodeRestrictions(env.Restrictions, &restr); err != nil {
			return nil, err
		}
		return NewNewtypeValidation(env.Typename, restr, db)
	case CategoryOptional:
		elem, err := UnmarshalValidation(env.Element, db)
		if err != nil {
			return nil, err
		}
		var restr []any
		if err := decodeRestrictions(env.Restrictions, &restr); err != nil {
			return nil, err
		}
		return NewOptionalValidation(elem, restr, db)
	case CategorySet:
		elem, err := UnmarshalValidation(env.Element, db)
		if err != nil {
			return nil, err
		}
		var restr [][]any
		if err := decodeRestrictions(env.Restrictions, &restr); err != nil {
			return nil, err
		}
		return NewSetValidation(elem, restr, db)
	case CategoryString:
		var restr []string
		if err := decodeRestrictions(env.Restrictions, &restr); err != nil {
			return nil, err
		}
		return NewStringValidation(restr, db)
	case CategoryStruct:
		var restr []map[string]any
		if err := decodeRestrictions(env.Restrictions, &restr); err != nil {
			return nil, err
		}
		return NewStructValidation(env.Typename, restr, db)
	case CategoryTuple:
		var rawValues []json.RawMessage
		if err := json.Unmarshal(env.Values, &rawValues); err != nil {
			return nil, err
		}
		values := make([]Validation, len(rawValues))
		for i, raw := range rawValues {
			val, err := UnmarshalValidation(raw, db)
			if err != nil {
				return nil, err
			}
			values[i] = val
		}
		var restr [][]any
		if err := decodeRestrictions(env.Restrictions, &restr); err != nil {
			return nil, err
		}
		return NewTupleValidation(values, restr, db)
	case CategoryUnsigned:
		var restr []uint64
		if err := decodeRestrictions(env.Restrictions, &restr); err != nil {
			return nil, err
		}
		return NewUnsignedValidation(restr, db)
	case CategoryVariant:
		var rawVariants []json.RawMessage
		if err := json.Unmarshal(env.Variants, &rawVariants); err != nil {
			return nil, err
		}
		variants := make([]Validation, len(rawVariants))
		for i, raw := range rawVariants {
			val, err := UnmarshalValidation(raw, db)
			if err != nil {
				return nil, err
			}
			variants[i] = val
		}
		return NewVariantValidation(variants), nil
	default:
		return nil, fmt.Errorf("unhandled validation category %q", env.Category)
	}
}

func decodeRestrictions[T any](raw json.RawMessage, out *[]T) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// parseTimes decodes the date/date_time wire shape — RFC3339 or ISO8601
// strings — through the same layout validate uses, so a restriction list
// round-trips exactly the way an instance value would be coerced.
func parseTimes(raw []string, layout string) ([]time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		t, err := time.Parse(layout, s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// --- TypeDef, StructTag, Field, TypeDb serialization ------------------------

type typeDefEnvelope struct {
	Kind        string          `json:"kind"`
	Values      []string        `json:"values,omitempty"`
	Description string          `json:"description,omitempty"`
	Validation  json.RawMessage `json:"validation,omitempty"`
	Examples    []any           `json:"examples,omitempty"`
	Fields      json.RawMessage `json:"fields,omitempty"`
	Tags        json.RawMessage `json:"tags,omitempty"`
}

// MarshalTypeDef encodes a TypeDef using a "kind" discriminator.
func MarshalTypeDef(def TypeDef) ([]byte, error) {
	switch d := def.(type) {
	case *EnumDef:
		desc, _ := d.Description()
		return json.Marshal(typeDefEnvelope{Kind: "enum", Values: d.Values(), Description: desc})
	case *NewtypeDef:
		desc, _ := d.Description()
		inner, err := json.Marshal(d.Validation())
		if err != nil {
			return nil, err
		}
		return json.Marshal(typeDefEnvelope{Kind: "newtype", Validation: inner, Description: desc, Examples: d.Examples()})
	case *StructDef:
		desc, _ := d.Description()
		fields := map[string]json.RawMessage{}
		for name, field := range d.Fields() {
			b, err := marshalField(field)
			if err != nil {
				return nil, err
			}
			fields[name] = b
		}
		fieldsJSON, err := json.Marshal(fields)
		if err != nil {
			return nil, err
		}
		tags := map[string]structTagWire{}
		for name, tag := range d.Tags() {
			tags[name] = structTagWire{Type: tagKind(tag), Value: tag.Value()}
		}
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return nil, err
		}
		return json.Marshal(typeDefEnvelope{Kind: "struct", Fields: fieldsJSON, Tags: tagsJSON, Description: desc, Examples: d.Examples()})
	default:
		return nil, fmt.Errorf("unknown TypeDef implementation %T", def)
	}
}

type fieldWire struct {
	Validation  json.RawMessage `json:"validation"`
	Default     json.RawMessage `json:"default,omitempty"`
	Description string          `json:"description,omitempty"`
}

func marshalField(f *Field) ([]byte, error) {
	val, err := json.Marshal(f.Validation())
	if err != nil {
		return nil, err
	}
	wire := fieldWire{Validation: val}
	if def, ok := f.DefaultValue(); ok {
		b, err := json.Marshal(def)
		if err != nil {
			return nil, err
		}
		wire.Default = b
	}
	if desc, ok := f.Description(); ok {
		wire.Description = desc
	}
	return json.Marshal(wire)
}

// structTagWire mirrors the original's `#[serde(tag = "type", content =
// "value")]` encoding of StructTag: {"type": "required"|"optional", "value":
// "<literal>"}.
type structTagWire struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func tagKind(tag StructTag) string {
	if tag.IsRequired() {
		return "required"
	}
	return "optional"
}

// UnmarshalTypeDef decodes a TypeDef, resolving inner Validations (and their
// named references) against db. It does not register the result; callers
// call db.Reg with the typename from the surrounding envelope.
func UnmarshalTypeDef(data []byte, db *TypeDb) (TypeDef, error) {
	var env typeDefEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	switch env.Kind {
	case "enum":
		def, err := NewEnumDef(env.Values)
		if err != nil {
			return nil, err
		}
		if env.Description != "" {
			def.SetDescription(env.Description)
		}
		return def, nil
	case "newtype":
		inner, err := UnmarshalValidation(env.Validation, db)
		if err != nil {
			return nil, err
		}
		def := NewNewtypeDef(inner)
		if env.Description != "" {
			def.SetDescription(env.Description)
		}
		if err := def.PushExamples(env.Examples, db); err != nil {
			return nil, err
		}
		return def, nil
	case "struct":
		var rawFields map[string]json.RawMessage
		if err := json.Unmarshal(env.Fields, &rawFields); err != nil {
			return nil, err
		}
		fields := map[string]*Field{}
		for name, raw := range rawFields {
			field, err := unmarshalField(raw, db)
			if err != nil {
				return nil, err
			}
			fields[name] = field
		}
		var rawTags map[string]structTagWire
		if err := json.Unmarshal(env.Tags, &rawTags); err != nil {
			return nil, err
		}
		tags := map[string]StructTag{}
		for name, wire := range rawTags {
			switch wire.Type {
			case "required":
				tags[name] = RequiredTag(wire.Value)
			case "optional":
				tags[name] = OptionalTag(wire.Value)
			default:
				return nil, fmt.Errorf("unknown struct tag type %q", wire.Type)
			}
		}
		def := NewStructDef(fields, tags)
		if env.Description != "" {
			def.SetDescription(env.Description)
		}
		return def, nil
	default:
		return nil, fmt.Errorf("unknown type-def kind %q", env.Kind)
	}
}

func unmarshalField(data []byte, db *TypeDb) (*Field, error) {
	var wire fieldWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	validation, err := UnmarshalValidation(wire.Validation, db)
	if err != nil {
		return nil, err
	}
	field := NewField(validation)
	if len(wire.Default) > 0 {
		var def any
		if err := json.Unmarshal(wire.Default, &def); err != nil {
			return nil, err
		}
		if err := field.SetDefault(def, db); err != nil {
			return nil, err
		}
	}
	if wire.Description != "" {
		field.SetDescription(wire.Description)
	}
	return field, nil
}

// MarshalTypeDb encodes the registry as a bare object mapping typename to
// TypeDef, with no wrapper key, mirroring the original's #[serde(transparent)]
// BTreeMap. encoding/json sorts map keys lexicographically on marshal, which
// gives the same deterministic, BTreeMap-like key order without any manual
// sorting here.
func MarshalTypeDb(db *TypeDb) ([]byte, error) {
	entries := make(map[string]json.RawMessage, len(db.Names()))
	for _, name := range db.Names() {
		def, _ := db.Get(name)
		defJSON, err := MarshalTypeDef(def)
		if err != nil {
			return nil, err
		}
		entries[name] = defJSON
	}
	return json.Marshal(entries)
}

// UnmarshalTypeDb decodes a registry encoded by MarshalTypeDb. Named-type
// lookups (enum/newtype/struct references) resolve against types already
// registered, so entries are replayed in sorted key order, the same order
// BTreeMap iteration produces on the original side.
func UnmarshalTypeDb(data []byte) (*TypeDb, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	db := NewTypeDb()
	for _, name := range names {
		def, err := UnmarshalTypeDef(entries[name], db)
		if err != nil {
			return nil, err
		}
		if err := db.Reg(name, def); err != nil {
			return nil, err
		}
	}
	return db, nil
}
