package typedb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	typedb "github.com/go-typedb/typedb"
)

func TestNewtypeDefValidateDelegatesToInner(t *testing.T) {
	inner, err := typedb.NewIntegerValidation(nil, nil)
	assert.NoError(t, err)
	def := typedb.NewNewtypeDef(inner)

	assert.NoError(t, def.Validate(float64(42), nil))
	assert.Error(t, def.Validate("not an integer", nil))
}

func TestNewtypeDefPushExamplesAggregatesFailures(t *testing.T) {
	inner, _ := typedb.NewIntegerValidation(nil, nil)
	def := typedb.NewNewtypeDef(inner)

	err := def.PushExamples([]any{float64(1), "bad", float64(2), "also bad"}, nil)
	agg, ok := err.(*typedb.AggregatedValidationError)
	if assert.True(t, ok) {
		assert.Len(t, agg.Errors, 2)
	}
	assert.Equal(t, []any{float64(1), float64(2)}, def.Examples(), "only valid examples are recorded")
}

func TestNewtypeDefClearExamples(t *testing.T) {
	inner, _ := typedb.NewIntegerValidation(nil, nil)
	def := typedb.NewNewtypeDef(inner)
	assert.NoError(t, def.PushExample(float64(1), nil))
	assert.Len(t, def.Examples(), 1)

	def.ClearExamples()
	assert.Empty(t, def.Examples())
}
