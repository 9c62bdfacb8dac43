package typedb

// Category names the family a Validation belongs to. The set is closed: every
// Validation reports exactly one of these seventeen values.
type Category string

const (
	CategoryAny      Category = "any"
	CategoryArray    Category = "array"
	CategoryBool     Category = "bool"
	CategoryDateTime Category = "date_time"
	CategoryDate     Category = "date"
	CategoryEnum     Category = "enum"
	CategoryFloat    Category = "float"
	CategoryInteger  Category = "integer"
	CategoryMap      Category = "map"
	CategoryNewtype  Category = "newtype"
	CategoryOptional Category = "optional"
	CategorySet      Category = "set"
	CategoryString   Category = "string"
	CategoryStruct   Category = "struct"
	CategoryTuple    Category = "tuple"
	CategoryUnsigned Category = "unsigned"
	CategoryVariant  Category = "variant"
)

func (c Category) String() string {
	return string(c)
}

// validCategories is used only for sanity-checking deserialized tags.
var validCategories = map[Category]struct{}{
	CategoryAny: {}, CategoryArray: {}, CategoryBool: {}, CategoryDateTime: {},
	CategoryDate: {}, CategoryEnum: {}, CategoryFloat: {}, CategoryInteger: {},
	CategoryMap: {}, CategoryNewtype: {}, CategoryOptional: {}, CategorySet: {},
	CategoryString: {}, CategoryStruct: {}, CategoryTuple: {}, CategoryUnsigned: {},
	CategoryVariant: {},
}

func (c Category) valid() bool {
	_, ok := validCategories[c]
	return ok
}
