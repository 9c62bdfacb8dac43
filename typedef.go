package typedb

// TypeDef is the closed sum of named, registrable type definitions:
// EnumDef, NewtypeDef, or StructDef.
type TypeDef interface {
	typeDefKind() string
}

func (*EnumDef) typeDefKind() string    { return "enum" }
func (*NewtypeDef) typeDefKind() string { return "newtype" }
func (*StructDef) typeDefKind() string  { return "struct" }
