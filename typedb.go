package typedb

// TypeDb is the authoritative name→TypeDef registry. Insertion order is
// preserved and reported by Names; a name can never be registered twice.
type TypeDb struct {
	order   []string
	records map[string]TypeDef
}

// NewTypeDb builds an empty registry.
func NewTypeDb() *TypeDb {
	return &TypeDb{records: map[string]TypeDef{}}
}

// Reg registers typedef under typename. Re-registering an existing name
// fails with AlreadyDefinedTypeError.
func (db *TypeDb) Reg(typename string, typedef TypeDef) InvalidValidationError {
	if _, ok := db.records[typename]; ok {
		return &AlreadyDefinedTypeError{Typename: typename}
	}
	db.records[typename] = typedef
	db.order = append(db.order, typename)
	return nil
}

// Get returns the TypeDef registered under typename, if any.
func (db *TypeDb) Get(typename string) (TypeDef, bool) {
	def, ok := db.records[typename]
	return def, ok
}

// GetEnumDef returns the EnumDef registered under typename, or ok=false if
// absent or registered under a different kind.
func (db *TypeDb) GetEnumDef(typename string) (*EnumDef, bool) {
	def, ok := db.records[typename]
	if !ok {
		return nil, false
	}
	e, ok := def.(*EnumDef)
	return e, ok
}

// GetNewtypeDef returns the NewtypeDef registered under typename, or
// ok=false if absent or registered under a different kind.
func (db *TypeDb) GetNewtypeDef(typename string) (*NewtypeDef, bool) {
	def, ok := db.records[typename]
	if !ok {
		return nil, false
	}
	n, ok := def.(*NewtypeDef)
	return n, ok
}

// GetStructDef returns the StructDef registered under typename, or
// ok=false if absent or registered under a different kind.
func (db *TypeDb) GetStructDef(typename string) (*StructDef, bool) {
	def, ok := db.records[typename]
	if !ok {
		return nil, false
	}
	s, ok := def.(*StructDef)
	return s, ok
}

// Contains reports whether typename is registered.
func (db *TypeDb) Contains(typename string) bool {
	_, ok := db.records[typename]
	return ok
}

// Names returns every registered typename in insertion order.
func (db *TypeDb) Names() []string {
	return append([]string{}, db.order...)
}
