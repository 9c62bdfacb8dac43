package typedb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	typedb "github.com/go-typedb/typedb"
)

func TestNoUpdateIsIdentity(t *testing.T) {
	v, _ := typedb.NewStringValidation([]string{"a", "b"}, nil)
	rewritten, err := (typedb.NoUpdate{}).Rewrite(v, nil)
	assert.NoError(t, err)
	assert.Same(t, typedb.Validation(v), rewritten)
}

func TestIgnoreRestrictionsStripsRestrictions(t *testing.T) {
	v, _ := typedb.NewStringValidation([]string{"a", "b"}, nil)
	rewritten, err := (typedb.IgnoreRestrictions{}).Rewrite(v, nil)
	assert.NoError(t, err)

	s, ok := rewritten.(*typedb.StringValidation)
	if assert.True(t, ok) {
		_, hasRestrict := s.Restrictions()
		assert.False(t, hasRestrict)
	}
	assert.NoError(t, rewritten.ValidateJSON("anything at all", nil))
}

func TestKeepRestrictionsPreservesThem(t *testing.T) {
	v, _ := typedb.NewStringValidation([]string{"a", "b"}, nil)
	rewritten, err := (typedb.KeepRestrictions{}).Rewrite(v, nil)
	assert.NoError(t, err)

	assert.NoError(t, rewritten.ValidateJSON("a", nil))
	assert.IsType(t, &typedb.RestrictionNotSatisfiedError{}, rewritten.ValidateJSON("z", nil))
}

func TestTypeOnlyPreservesContainerChildVerbatim(t *testing.T) {
	elem, _ := typedb.NewIntegerValidation([]int64{1, 2, 3}, nil)
	arr, _ := typedb.NewArrayValidation(elem, [][]any{{float64(1)}}, nil)

	rewritten, err := (typedb.TypeOnly{}).Rewrite(arr, nil)
	assert.NoError(t, err)

	a, ok := rewritten.(*typedb.ArrayValidation)
	if !assert.True(t, ok) {
		return
	}
	_, hasRestrict := a.Restrictions()
	assert.False(t, hasRestrict, "TypeOnly strips the outer restriction layer")
	assert.Same(t, typedb.Validation(elem), a.Base().Element, "inner element is preserved verbatim, not recursively rewritten")
}

func TestKeepRestrictionsOnNoRestrictionValidatorIsNoop(t *testing.T) {
	v, _ := typedb.NewIntegerValidation(nil, nil)
	rewritten, err := (typedb.KeepRestrictions{}).Rewrite(v, nil)
	assert.NoError(t, err)
	assert.NoError(t, rewritten.ValidateJSON(float64(99), nil))
}
