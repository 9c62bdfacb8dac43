package typedb

// Validation is the top-level sum over the seventeen validator categories.
// It is the uniform type every builder constructs and every Validate call
// consumes.
type Validation interface {
	Category() Category
	// ValidateJSON checks value (a generic JSON tree, as produced by
	// encoding/json's decode-into-any) against this validator, consulting db
	// for any Enum/Newtype/Struct/Variant lookups.
	ValidateJSON(value any, db *TypeDb) ValidationError
}
