package typedb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	typedb "github.com/go-typedb/typedb"
)

func buildABColorVariant(t *testing.T) (*typedb.VariantValidation, *typedb.TypeDb) {
	t.Helper()
	db := typedb.NewTypeDb()

	defA := typedb.NewStructDef(nil, map[string]typedb.StructTag{
		"kind": typedb.RequiredTag("a"),
	})
	assert.NoError(t, db.Reg("A", defA))

	defB := typedb.NewStructDef(nil, map[string]typedb.StructTag{
		"kind": typedb.RequiredTag("b"),
		"mode": typedb.OptionalTag("fast"),
	})
	assert.NoError(t, db.Reg("B", defB))

	colorDef, err := typedb.NewEnumDef([]string{"red", "green", "blue"})
	assert.NoError(t, err)
	assert.NoError(t, db.Reg("Color", colorDef))

	a, err := typedb.NewStructValidation("A", nil, db)
	assert.NoError(t, err)
	b, err := typedb.NewStructValidation("B", nil, db)
	assert.NoError(t, err)
	color, err := typedb.NewEnumValidation("Color", nil, db)
	assert.NoError(t, err)

	return typedb.NewVariantValidation([]typedb.Validation{a, b, color}), db
}

func TestVariantDispatchSelectsStructByTags(t *testing.T) {
	v, db := buildABColorVariant(t)

	err := v.ValidateJSON(map[string]any{"kind": "b", "mode": "fast"}, db)
	assert.NoError(t, err, "required kind=b plus matching optional mode=fast selects B")
}

func TestVariantDispatchSelectsEnumForNonObjectInput(t *testing.T) {
	v, db := buildABColorVariant(t)

	err := v.ValidateJSON("red", db)
	assert.NoError(t, err, "a bare string input must still be able to select the Enum alternative")
}

func TestVariantDispatchMismatchWhenNoAlternativeFits(t *testing.T) {
	v, db := buildABColorVariant(t)

	err := v.ValidateJSON(map[string]any{"kind": "c"}, db)
	assert.IsType(t, &typedb.VariantMismatchError{}, err)
}

func TestVariantDispatchRequiredTagMustMatchExactly(t *testing.T) {
	v, db := buildABColorVariant(t)

	// kind=a selects A even when an unrelated extra field is present.
	assert.NoError(t, v.ValidateJSON(map[string]any{"kind": "a", "extra": true}, db))

	// kind=b with mode present but set to something other than "fast" fails
	// every candidate in B's bucket, since the underlying struct validator
	// checks every declared tag regardless of which optional subset selected
	// it, and no other alternative's required tags match "kind"=="b" either.
	err := v.ValidateJSON(map[string]any{"kind": "b", "mode": "slow"}, db)
	assert.IsType(t, &typedb.VariantMismatchError{}, err)
}
