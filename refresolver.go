package typedb

import (
	"fmt"
	"net/url"
	"strings"

	jsonpointer "github.com/ucarion/json-pointer"
)

// VisitReference is the adapter schema ingesters implement so the registry
// can resolve $ref-style references against a preloaded resource map. It is
// the only external collaborator in the package: nothing in the validator
// algebra or variant engine calls it directly.
type VisitReference interface {
	// CurrentID returns the base URI of the node this cursor is positioned
	// at, if any.
	CurrentID() (string, bool)
	// Value returns the JSON node this cursor is positioned at.
	Value() any
	// VisitReference resolves reference relative to this cursor, per the
	// four rules below.
	VisitReference(reference string) (VisitReference, InvalidValidationError)
}

// RefVisitor is the root of a resolution session: a root document plus a
// preloaded map of resource URI (or "base#anchor" key) to JSON value.
type RefVisitor struct {
	rootID     string
	hasRootID  bool
	rootSchema any
	resources  map[string]any
}

// NewRefVisitor builds a RefVisitor. resources must already contain every
// anchor and external document the root schema's references may reach; the
// resolver never fetches anything itself.
func NewRefVisitor(rootID string, hasRootID bool, rootSchema any, resources map[string]any) *RefVisitor {
	if resources == nil {
		resources = map[string]any{}
	}
	return &RefVisitor{rootID: rootID, hasRootID: hasRootID, rootSchema: rootSchema, resources: resources}
}

func (m *RefVisitor) CurrentID() (string, bool) { return m.rootID, m.hasRootID }
func (m *RefVisitor) Value() any                { return m.rootSchema }

// VisitReference implements the root-level resolution entry point with the
// same four rules as a cursor's VisitReference: a document-internal pointer
// (`#/...`) is evaluated against the root schema, an `#anchor` and a `/...`
// path resolve against the root id, and anything else is parsed as a full URI.
func (m *RefVisitor) VisitReference(reference string) (VisitReference, InvalidValidationError) {
	switch {
	case strings.HasPrefix(reference, "#/"):
		return visitPointer(m, m.rootSchema, m.rootID, m.hasRootID, reference[1:])
	case strings.HasPrefix(reference, "#"):
		return visitAnchor(m, m.rootID, m.hasRootID, reference)
	case strings.HasPrefix(reference, "/"):
		return visitRelativeURI(m, m.rootID, m.hasRootID, reference)
	default:
		return visitFullURI(m, m, reference)
	}
}

// refVisitorCursor is the result of one reference resolution: a new node
// (value, root document it belongs to, and base id) that can itself be
// visited further.
type refVisitorCursor struct {
	master *RefVisitor
	root   any
	value  any
	id     string
	hasID  bool
}

func (c *refVisitorCursor) CurrentID() (string, bool) { return c.id, c.hasID }
func (c *refVisitorCursor) Value() any                { return c.value }

func (c *refVisitorCursor) VisitReference(reference string) (VisitReference, InvalidValidationError) {
	switch {
	case strings.HasPrefix(reference, "#/"):
		return visitPointer(c.master, c.root, c.id, c.hasID, reference[1:])
	case strings.HasPrefix(reference, "#"):
		return visitAnchor(c.master, c.id, c.hasID, reference)
	case strings.HasPrefix(reference, "/"):
		return visitRelativeURI(c.master, c.id, c.hasID, reference)
	default:
		return visitFullURI(c.master, c, reference)
	}
}

// visitPointer evaluates a leading-"#/"-stripped JSON Pointer against root.
func visitPointer(master *RefVisitor, root any, id string, hasID bool, pointer string) (VisitReference, InvalidValidationError) {
	ptr, perr := jsonpointer.New(pointer)
	if perr != nil {
		return nil, &InvalidURIError{Cause: perr}
	}
	value, err := ptr.Eval(root)
	if err != nil {
		return nil, &InstanceNotFoundError{Path: resolvedPath(id, hasID, "#"+pointer)}
	}
	return &refVisitorCursor{master: master, root: root, value: *value, id: id, hasID: hasID}, nil
}

// visitAnchor resolves an `#anchor` reference (a fragment not starting with
// "/") via a direct key lookup in the preloaded resource map, under
// base_id+"#anchor" — verbatim, even if base_id already carries a fragment
// of its own (documented original behavior, see spec §9).
func visitAnchor(master *RefVisitor, id string, hasID bool, reference string) (VisitReference, InvalidValidationError) {
	anchoredID := resolvedPath(id, hasID, reference)
	value, ok := master.resources[anchoredID]
	if !ok {
		return nil, &InstanceNotFoundError{Path: anchoredID}
	}
	return &refVisitorCursor{master: master, root: value, value: value, id: id, hasID: hasID}, nil
}

// visitRelativeURI resolves a `/...` absolute-path reference (no scheme) by
// joining it against the current base id and looking up the joined URI in
// the resource map. Only references literally beginning with "/" take this
// path (spec §9) — e.g. "foo.json" falls through to full-URI parsing.
func visitRelativeURI(master *RefVisitor, id string, hasID bool, reference string) (VisitReference, InvalidValidationError) {
	if !hasID {
		return nil, &RelativeURIWithoutBaseError{Relative: reference}
	}
	base, err := url.Parse(id)
	if err != nil {
		return nil, &InvalidURIError{Cause: err}
	}
	rel, err := url.Parse(reference)
	if err != nil {
		return nil, &InvalidURIError{Cause: err}
	}
	joined := base.ResolveReference(rel).String()
	value, ok := master.resources[joined]
	if !ok {
		return nil, &InstanceNotFoundError{Path: joined}
	}
	return &refVisitorCursor{master: master, root: value, value: value, id: joined, hasID: true}, nil
}

// visitFullURI parses reference as a complete URI. A reference without a
// scheme (e.g. "foo.json") is rejected as relative. With no fragment, it is
// looked up directly as a resource; with a fragment, the document is
// resolved first and the fragment is then resolved against it.
func visitFullURI(master *RefVisitor, visitor VisitReference, reference string) (VisitReference, InvalidValidationError) {
	parsed, err := url.Parse(reference)
	if err != nil {
		return nil, &InvalidURIError{Cause: err}
	}
	if !parsed.IsAbs() {
		return nil, &InvalidURIError{Cause: fmt.Errorf("relative uri %q without a base", reference)}
	}
	if parsed.Fragment == "" {
		value, ok := master.resources[parsed.String()]
		if !ok {
			return nil, &InstanceNotFoundError{Path: parsed.String()}
		}
		return &refVisitorCursor{master: master, root: value, value: value, id: parsed.String(), hasID: true}, nil
	}
	fragment := parsed.Fragment
	parsed.Fragment = ""
	doc, vErr := visitor.VisitReference(parsed.String())
	if vErr != nil {
		return nil, vErr
	}
	return doc.VisitReference("#" + fragment)
}

func resolvedPath(id string, hasID bool, suffix string) string {
	if hasID {
		return id + suffix
	}
	return suffix
}
