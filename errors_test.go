package typedb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	typedb "github.com/go-typedb/typedb"
)

func TestMergeValidationResultNilCases(t *testing.T) {
	assert.Nil(t, typedb.MergeValidationResult(nil, nil))

	a := &typedb.MissingPropertyError{Name: "x"}
	assert.Same(t, error(a), error(typedb.MergeValidationResult(a, nil)))
	assert.Same(t, error(a), error(typedb.MergeValidationResult(nil, a)))
}

func TestMergeValidationResultFlattensAggregates(t *testing.T) {
	a := &typedb.MissingPropertyError{Name: "x"}
	b := &typedb.MissingPropertyError{Name: "y"}
	c := &typedb.MissingPropertyError{Name: "z"}

	merged := typedb.MergeValidationResult(typedb.AggregateValidationErrors([]typedb.ValidationError{a, b}), c)
	agg, ok := merged.(*typedb.AggregatedValidationError)
	if assert.True(t, ok, "expected *AggregatedValidationError, got %T", merged) {
		assert.Equal(t, []typedb.ValidationError{a, b, c}, agg.Errors)
	}
}

func TestAggregateValidationErrorsSingleStaysWrapped(t *testing.T) {
	a := &typedb.MissingPropertyError{Name: "x"}
	agg, ok := typedb.AggregateValidationErrors([]typedb.ValidationError{a}).(*typedb.AggregatedValidationError)
	if assert.True(t, ok, "a single error is still wrapped in Aggregated, never unwrapped") {
		assert.Equal(t, []typedb.ValidationError{a}, agg.Errors)
	}
	assert.Nil(t, typedb.AggregateValidationErrors(nil))
}

func TestCollectValidationErrorsRunsEveryItem(t *testing.T) {
	items := []string{"a", "b", "c"}
	err := typedb.CollectValidationErrors(items, func(s string) typedb.ValidationError {
		if s == "b" {
			return nil
		}
		return &typedb.MissingPropertyError{Name: s}
	})
	agg, ok := err.(*typedb.AggregatedValidationError)
	if assert.True(t, ok) {
		assert.Len(t, agg.Errors, 2)
	}
}

func TestMergeInvalidValidationResultFlattens(t *testing.T) {
	a := &typedb.UndefinedTypeError{Typename: "A"}
	b := &typedb.UndefinedTypeError{Typename: "B"}
	c := &typedb.UndefinedTypeError{Typename: "C"}

	merged := typedb.MergeInvalidValidationResult(typedb.AggregateInvalidValidationErrors([]typedb.InvalidValidationError{a, b}), c)
	agg, ok := merged.(*typedb.AggregatedInvalidValidationError)
	if assert.True(t, ok) {
		assert.Equal(t, []typedb.InvalidValidationError{a, b, c}, agg.Errors)
	}
}

func TestErrorMessagesMentionTheirFields(t *testing.T) {
	assert.Contains(t, (&typedb.UnknownEnumValueError{Value: "purple", Candidates: []string{"red", "blue"}}).Error(), "purple")
	assert.Contains(t, (&typedb.TagMismatchError{Name: "kind", Expected: "point", Actual: "line"}).Error(), "line")
	assert.Contains(t, (&typedb.TupleDimensionMismatchError{Expected: 2, Actual: 3}).Error(), "3")
}
