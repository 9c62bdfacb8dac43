package typedb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	typedb "github.com/go-typedb/typedb"
)

func TestVisitReferencePointer(t *testing.T) {
	root := map[string]any{
		"defs": map[string]any{
			"point": map[string]any{"type": "object"},
		},
	}
	visitor := typedb.NewRefVisitor("", false, root, nil)

	cur, err := visitor.VisitReference("#/defs/point")
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "object"}, cur.Value())
}

func TestVisitReferencePointerNotFound(t *testing.T) {
	visitor := typedb.NewRefVisitor("", false, map[string]any{}, nil)
	_, err := visitor.VisitReference("#/nope")
	assert.IsType(t, &typedb.InstanceNotFoundError{}, err)
}

func TestVisitReferenceAnchorQuirkVerbatimKey(t *testing.T) {
	// The anchor lookup key is built as base_id+"#anchor" verbatim, even
	// though base_id here already carries its own fragment — this is the
	// documented quirk, not a bug to paper over.
	anchored := map[string]any{"type": "string"}
	resources := map[string]any{
		"https://example.com/schema.json#/already/has/fragment#point": anchored,
	}
	root := map[string]any{"x": 1}
	visitor := typedb.NewRefVisitor("https://example.com/schema.json#/already/has/fragment", true, root, resources)

	// Resolving "#/x" against the root returns a cursor whose CurrentID is
	// unchanged (pointer resolution doesn't move the base id), so its own
	// "#point" anchor lookup uses the same verbatim key.
	cur, err := visitor.VisitReference("#/x")
	assert.NoError(t, err)

	anchorCur, err := cur.VisitReference("#point")
	assert.NoError(t, err)
	assert.Equal(t, anchored, anchorCur.Value())
}

func TestVisitReferenceAnchorNotFound(t *testing.T) {
	visitor := typedb.NewRefVisitor("https://example.com/schema.json", true, map[string]any{"x": 1}, nil)
	cur, err := visitor.VisitReference("#/x")
	assert.NoError(t, err)

	_, err = cur.VisitReference("#missing")
	assert.IsType(t, &typedb.InstanceNotFoundError{}, err)
}

func TestVisitReferenceRelativeURIRequiresBase(t *testing.T) {
	visitor := typedb.NewRefVisitor("", false, map[string]any{}, nil)
	cur, err := visitor.VisitReference("/other.json")
	assert.Nil(t, cur)
	assert.IsType(t, &typedb.RelativeURIWithoutBaseError{}, err)
}

func TestVisitReferenceRelativeURIJoinsAgainstBase(t *testing.T) {
	target := map[string]any{"type": "boolean"}
	resources := map[string]any{
		"https://example.com/other.json": target,
	}
	root := map[string]any{"x": 1}
	visitor := typedb.NewRefVisitor("https://example.com/schema.json", true, root, resources)

	cur, err := visitor.VisitReference("#/x")
	assert.NoError(t, err)

	joined, err := cur.VisitReference("/other.json")
	assert.NoError(t, err)
	assert.Equal(t, target, joined.Value())
}

func TestVisitReferenceFullURINoFragmentTerminatesDirectly(t *testing.T) {
	target := map[string]any{"type": "integer"}
	resources := map[string]any{
		"https://example.com/other.json": target,
	}
	visitor := typedb.NewRefVisitor("https://example.com/root.json", true, map[string]any{}, resources)

	cur, err := visitor.VisitReference("https://example.com/other.json")
	assert.NoError(t, err)
	assert.Equal(t, target, cur.Value())
	id, hasID := cur.CurrentID()
	assert.True(t, hasID)
	assert.Equal(t, "https://example.com/other.json", id)
}

func TestVisitReferenceFullURIWithFragmentResolvesDocumentThenPointer(t *testing.T) {
	doc := map[string]any{
		"defs": map[string]any{"id": map[string]any{"type": "string"}},
	}
	resources := map[string]any{
		"https://example.com/other.json": doc,
	}
	visitor := typedb.NewRefVisitor("https://example.com/root.json", true, map[string]any{}, resources)

	cur, err := visitor.VisitReference("https://example.com/other.json#/defs/id")
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "string"}, cur.Value())
}
