package typedb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	typedb "github.com/go-typedb/typedb"
)

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "struct", typedb.CategoryStruct.String())
	assert.Equal(t, "date_time", typedb.CategoryDateTime.String())
}

func TestCategoryAllSeventeenDistinct(t *testing.T) {
	all := []typedb.Category{
		typedb.CategoryAny, typedb.CategoryArray, typedb.CategoryBool,
		typedb.CategoryDateTime, typedb.CategoryDate, typedb.CategoryEnum,
		typedb.CategoryFloat, typedb.CategoryInteger, typedb.CategoryMap,
		typedb.CategoryNewtype, typedb.CategoryOptional, typedb.CategorySet,
		typedb.CategoryString, typedb.CategoryStruct, typedb.CategoryTuple,
		typedb.CategoryUnsigned, typedb.CategoryVariant,
	}
	seen := map[typedb.Category]bool{}
	for _, c := range all {
		assert.False(t, seen[c], "duplicate category %s", c)
		seen[c] = true
	}
	assert.Len(t, all, 17)
}
