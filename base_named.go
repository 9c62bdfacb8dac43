package typedb

// EnumBase validates a string against a named, registered EnumDef.
type EnumBase struct {
	Typename string
}

// NewEnumBase checks typename resolves to an EnumDef before returning.
func NewEnumBase(typename string, db *TypeDb) (EnumBase, InvalidValidationError) {
	if _, ok := db.GetEnumDef(typename); !ok {
		return EnumBase{}, &UndefinedTypeError{Typename: typename}
	}
	return EnumBase{Typename: typename}, nil
}

func (b EnumBase) Category() Category { return CategoryEnum }

func (b EnumBase) Validate(value string, db *TypeDb) ValidationError {
	def, ok := db.GetEnumDef(b.Typename)
	if !ok {
		return &TypeDefNotFoundError{Typename: b.Typename}
	}
	return def.Validate(value, db)
}

// NewtypeBase validates a JSON value against a named, registered
// NewtypeDef, wrapping any inner failure as a NewtypeError.
type NewtypeBase struct {
	Typename string
}

// NewNewtypeBase checks typename resolves to a NewtypeDef before returning.
func NewNewtypeBase(typename string, db *TypeDb) (NewtypeBase, InvalidValidationError) {
	if _, ok := db.GetNewtypeDef(typename); !ok {
		return NewtypeBase{}, &UndefinedTypeError{Typename: typename}
	}
	return NewtypeBase{Typename: typename}, nil
}

func (b NewtypeBase) Category() Category { return CategoryNewtype }

func (b NewtypeBase) Validate(value any, db *TypeDb) ValidationError {
	def, ok := db.GetNewtypeDef(b.Typename)
	if !ok {
		return &TypeDefNotFoundError{Typename: b.Typename}
	}
	if err := def.Validate(value, db); err != nil {
		return &NewtypeError{Typename: b.Typename, Inner: err}
	}
	return nil
}

// StructBase validates a JSON object against a named, registered StructDef.
type StructBase struct {
	Typename string
}

// NewStructBase checks typename resolves to a StructDef before returning.
func NewStructBase(typename string, db *TypeDb) (StructBase, InvalidValidationError) {
	if _, ok := db.GetStructDef(typename); !ok {
		return StructBase{}, &UndefinedTypeError{Typename: typename}
	}
	return StructBase{Typename: typename}, nil
}

func (b StructBase) Category() Category { return CategoryStruct }

func (b StructBase) Validate(value map[string]any, db *TypeDb) ValidationError {
	def, ok := db.GetStructDef(b.Typename)
	if !ok {
		return &TypeDefNotFoundError{Typename: b.Typename}
	}
	return def.Validate(value, db)
}
