package typedb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	typedb "github.com/go-typedb/typedb"
)

// buildPointDef mirrors the worked example: a struct with a required "kind"
// tag literal "point", a required integer field "x", and an optional integer
// field "y".
func buildPointDef(t *testing.T) *typedb.StructDef {
	t.Helper()
	xVal, err := typedb.NewIntegerValidation(nil, nil)
	assert.NoError(t, err)
	yInt, err := typedb.NewIntegerValidation(nil, nil)
	assert.NoError(t, err)
	yOpt, err := typedb.NewOptionalValidation(yInt, nil, nil)
	assert.NoError(t, err)

	fields := map[string]*typedb.Field{
		"x": typedb.NewField(xVal),
		"y": typedb.NewField(yOpt),
	}
	tags := map[string]typedb.StructTag{
		"kind": typedb.RequiredTag("point"),
	}
	return typedb.NewStructDef(fields, tags)
}

func TestStructDefValidateAcceptsRequiredFieldPresent(t *testing.T) {
	def := buildPointDef(t)
	err := def.Validate(map[string]any{"kind": "point", "x": float64(1)}, nil)
	assert.NoError(t, err)
}

func TestStructDefValidateReportsMissingRequiredField(t *testing.T) {
	def := buildPointDef(t)
	err := def.Validate(map[string]any{"kind": "point", "y": float64(2)}, nil)

	agg, ok := err.(*typedb.AggregatedValidationError)
	if !assert.True(t, ok, "expected AggregatedValidationError, got %T: %v", err, err) {
		return
	}
	assert.Len(t, agg.Errors, 1)
	missing, ok := agg.Errors[0].(*typedb.MissingPropertyError)
	if assert.True(t, ok) {
		assert.Equal(t, "x", missing.Name)
	}
}

func TestStructDefValidateReportsTagMismatch(t *testing.T) {
	def := buildPointDef(t)
	err := def.Validate(map[string]any{"kind": "line", "x": float64(1)}, nil)

	agg, ok := err.(*typedb.AggregatedValidationError)
	if !assert.True(t, ok, "expected AggregatedValidationError, got %T: %v", err, err) {
		return
	}
	assert.Len(t, agg.Errors, 1)
	mismatch, ok := agg.Errors[0].(*typedb.TagMismatchError)
	if assert.True(t, ok) {
		assert.Equal(t, "kind", mismatch.Name)
		assert.Equal(t, "point", mismatch.Expected)
		assert.Equal(t, "line", mismatch.Actual)
	}
}

func TestStructDefValidateOptionalFieldMayBeAbsent(t *testing.T) {
	def := buildPointDef(t)
	assert.NoError(t, def.Validate(map[string]any{"kind": "point", "x": float64(1)}, nil))
}

func TestFieldIsRequiredCorrectedSemantics(t *testing.T) {
	intVal, _ := typedb.NewIntegerValidation(nil, nil)
	required := typedb.NewField(intVal)
	assert.True(t, required.IsRequired())

	optVal, _ := typedb.NewOptionalValidation(intVal, nil, nil)
	optionalField := typedb.NewField(optVal)
	assert.False(t, optionalField.IsRequired())

	withDefault := typedb.NewField(intVal)
	assert.NoError(t, withDefault.SetDefault(float64(3), nil))
	assert.False(t, withDefault.IsRequired())

	withDefault.ClearDefault()
	assert.True(t, withDefault.IsRequired())
}
