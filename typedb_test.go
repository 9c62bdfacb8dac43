package typedb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	typedb "github.com/go-typedb/typedb"
)

func TestTypeDbRegAndGet(t *testing.T) {
	db := typedb.NewTypeDb()
	def, err := typedb.NewEnumDef([]string{"red", "green", "blue"})
	assert.NoError(t, err)

	assert.NoError(t, db.Reg("Color", def))
	assert.True(t, db.Contains("Color"))

	got, ok := db.GetEnumDef("Color")
	assert.True(t, ok)
	assert.Equal(t, def, got)

	_, ok = db.GetStructDef("Color")
	assert.False(t, ok, "Color is an enum, not a struct")
}

func TestTypeDbRejectsDuplicateRegistration(t *testing.T) {
	db := typedb.NewTypeDb()
	def, _ := typedb.NewEnumDef([]string{"a"})
	assert.NoError(t, db.Reg("Thing", def))

	err := db.Reg("Thing", def)
	assert.IsType(t, &typedb.AlreadyDefinedTypeError{}, err)
}

func TestTypeDbNamesPreservesInsertionOrder(t *testing.T) {
	db := typedb.NewTypeDb()
	def, _ := typedb.NewEnumDef([]string{"a"})
	assert.NoError(t, db.Reg("Third", def))
	assert.NoError(t, db.Reg("First", def))
	assert.NoError(t, db.Reg("Second", def))

	assert.Equal(t, []string{"Third", "First", "Second"}, db.Names())
}
