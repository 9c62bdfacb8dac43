package typedb_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	typedb "github.com/go-typedb/typedb"
)

func TestValidationRoundTripScalarWithRestrictions(t *testing.T) {
	v, err := typedb.NewIntegerValidation([]int64{1, 2, 3}, nil)
	assert.NoError(t, err)

	data, err := json.Marshal(v)
	assert.NoError(t, err)

	decoded, err := typedb.UnmarshalValidation(data, nil)
	assert.NoError(t, err)

	assert.NoError(t, decoded.ValidateJSON(float64(2), nil))
	assert.Error(t, decoded.ValidateJSON(float64(9), nil))
}

func TestValidationRoundTripContainer(t *testing.T) {
	elem, _ := typedb.NewStringValidation(nil, nil)
	v, err := typedb.NewArrayValidation(elem, nil, nil)
	assert.NoError(t, err)

	data, err := json.Marshal(v)
	assert.NoError(t, err)

	decoded, err := typedb.UnmarshalValidation(data, nil)
	assert.NoError(t, err)
	assert.Equal(t, typedb.CategoryArray, decoded.Category())
	assert.NoError(t, decoded.ValidateJSON([]any{"a", "b"}, nil))
}

func TestValidationRoundTripDateTime(t *testing.T) {
	v, err := typedb.NewDateTimeValidation(nil, nil)
	assert.NoError(t, err)

	data, err := json.Marshal(v)
	assert.NoError(t, err)

	decoded, err := typedb.UnmarshalValidation(data, nil)
	assert.NoError(t, err)
	assert.NoError(t, decoded.ValidateJSON("2024-01-02T03:04:05Z", nil))
}

func TestTypeDbRoundTrip(t *testing.T) {
	db := typedb.NewTypeDb()

	colorDef, err := typedb.NewEnumDef([]string{"red", "green", "blue"})
	assert.NoError(t, err)
	assert.NoError(t, db.Reg("Color", colorDef))

	xVal, _ := typedb.NewIntegerValidation(nil, nil)
	pointDef := typedb.NewStructDef(map[string]*typedb.Field{"x": typedb.NewField(xVal)}, map[string]typedb.StructTag{
		"kind": typedb.RequiredTag("point"),
	})
	assert.NoError(t, db.Reg("Point", pointDef))

	colorRef, err := typedb.NewEnumValidation("Color", nil, db)
	assert.NoError(t, err)
	sizeDef := typedb.NewNewtypeDef(colorRef)
	assert.NoError(t, db.Reg("Size", sizeDef))

	data, err := typedb.MarshalTypeDb(db)
	assert.NoError(t, err)

	decoded, err := typedb.UnmarshalTypeDb(data)
	assert.NoError(t, err)

	assert.Equal(t, db.Names(), decoded.Names())

	gotColor, ok := decoded.GetEnumDef("Color")
	assert.True(t, ok)
	assert.Equal(t, []string{"red", "green", "blue"}, gotColor.Values())

	gotPoint, ok := decoded.GetStructDef("Point")
	assert.True(t, ok)
	assert.NoError(t, gotPoint.Validate(map[string]any{"kind": "point", "x": float64(1)}, decoded))

	gotSize, ok := decoded.GetNewtypeDef("Size")
	assert.True(t, ok)
	assert.NoError(t, gotSize.Validate("red", decoded))
	assert.Error(t, gotSize.Validate("purple", decoded))
}

func TestVariantValidationRoundTrip(t *testing.T) {
	db := typedb.NewTypeDb()
	enumDef, err := typedb.NewEnumDef([]string{"on", "off"})
	assert.NoError(t, err)
	assert.NoError(t, db.Reg("Switch", enumDef))

	boolVal, _ := typedb.NewBoolValidation(nil, nil)
	assert.NoError(t, db.Reg("Flag", typedb.NewNewtypeDef(boolVal)))

	enumRef, err := typedb.NewEnumValidation("Switch", nil, db)
	assert.NoError(t, err)
	flagRef, err := typedb.NewNewtypeValidation("Flag", nil, db)
	assert.NoError(t, err)

	// Only Enum, Newtype, and Struct alternatives are dispatchable via tags
	// (spec §4.E); other shapes are silently excluded from the index, so
	// both alternatives here are chosen to actually participate in dispatch.
	variant := typedb.NewVariantValidation([]typedb.Validation{enumRef, flagRef})

	data, err := json.Marshal(variant)
	assert.NoError(t, err)

	decoded, err := typedb.UnmarshalValidation(data, db)
	assert.NoError(t, err)
	assert.Equal(t, typedb.CategoryVariant, decoded.Category())
	assert.NoError(t, decoded.ValidateJSON("on", db))
	assert.NoError(t, decoded.ValidateJSON(true, db))
}
