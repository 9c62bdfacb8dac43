package typedb

import "sort"

// VariantBase is the base validator for the variant category: an unordered
// list of alternatives, dispatched by struct-tag discriminators.
type VariantBase struct {
	Variants []Validation
}

func (b VariantBase) Category() Category { return CategoryVariant }

// requiredTagMatcher is the bucket key: the exact set of a struct's required
// tags (name, literal value), sorted by name. Two matchers with the same
// sorted (name, value) pairs are the same bucket.
type requiredTagMatcher struct {
	pairs [][2]string // (name, value), sorted by name
}

// isMatch reports whether obj satisfies every required tag. A matcher with
// no required tags (the bucket used by Enum/Newtype alternatives) matches
// any instance, including non-object ones — those alternatives validate
// shapes other than objects.
func (m requiredTagMatcher) isMatch(obj map[string]any, ok bool) bool {
	if len(m.pairs) == 0 {
		return true
	}
	if !ok {
		return false
	}
	for _, p := range m.pairs {
		v, present := obj[p[0]]
		s, isStr := v.(string)
		if !present || !isStr || s != p[1] {
			return false
		}
	}
	return true
}

func (m requiredTagMatcher) equal(o requiredTagMatcher) bool {
	if len(m.pairs) != len(o.pairs) {
		return false
	}
	for i := range m.pairs {
		if m.pairs[i] != o.pairs[i] {
			return false
		}
	}
	return true
}

// less implements the ordering over required-tag matchers used to keep
// variant determinism independent of declaration order: lexicographic
// comparison over the sorted (name, value) pairs, shorter-is-less on a
// common prefix.
func (m requiredTagMatcher) less(o requiredTagMatcher) bool {
	for i := 0; i < len(m.pairs) && i < len(o.pairs); i++ {
		if m.pairs[i] != o.pairs[i] {
			return m.pairs[i][0] < o.pairs[i][0] ||
				(m.pairs[i][0] == o.pairs[i][0] && m.pairs[i][1] < o.pairs[i][1])
		}
	}
	return len(m.pairs) < len(o.pairs)
}

// subsetMatcher is a candidate within a bucket: a chosen subset of a
// struct's optional tags, used to rank alternatives by specificity.
type subsetMatcher struct {
	pairs [][2]string // (name, value), in the order generated (may be unsorted)
}

func (m subsetMatcher) isMatch(obj map[string]any, ok bool) bool {
	if !ok {
		return false
	}
	for _, p := range m.pairs {
		v, present := obj[p[0]]
		s, isStr := v.(string)
		if !present || !isStr || s != p[1] {
			return false
		}
	}
	return true
}

// sortedByName reports whether pairs is strictly increasing by name, mirroring the
// Rust source's `tuple_windows().all(|(f,s)| f < s)` check.
func (m subsetMatcher) sortedByName() bool {
	for i := 1; i < len(m.pairs); i++ {
		if !(m.pairs[i-1][0] < m.pairs[i][0]) {
			return false
		}
	}
	return true
}

func sortedCopy(pairs [][2]string) [][2]string {
	cp := append([][2]string{}, pairs...)
	sort.Slice(cp, func(i, j int) bool {
		if cp[i][0] != cp[j][0] {
			return cp[i][0] < cp[j][0]
		}
		return cp[i][1] < cp[j][1]
	})
	return cp
}

func pairsLess(a, b [][2]string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i][0] < b[i][0] || (a[i][0] == b[i][0] && a[i][1] < b[i][1])
		}
	}
	return len(a) < len(b)
}

// less orders subset matchers first by length (more tags sort later, i.e.
// more specific candidates are tried after less specific ones within a
// bucket — see spec §4.E "Subset-matcher ordering"), then lexicographically.
func (m subsetMatcher) less(o subsetMatcher) bool {
	if len(m.pairs) != len(o.pairs) {
		return len(m.pairs) < len(o.pairs)
	}
	if m.sortedByName() && o.sortedByName() {
		return pairsLess(m.pairs, o.pairs)
	}
	return pairsLess(sortedCopy(m.pairs), sortedCopy(o.pairs))
}

type variantCandidate struct {
	matcher    subsetMatcher
	validation Validation
}

type variantBucket struct {
	required   requiredTagMatcher
	candidates []variantCandidate
}

// variantIndex groups a variant's alternatives into buckets keyed by
// required-tag matcher, each holding subset-matcher-ordered candidates.
func (b VariantBase) variantIndex(db *TypeDb) ([]variantBucket, InvalidValidationError) {
	var buckets []variantBucket
	var errs []InvalidValidationError

	findOrAdd := func(key requiredTagMatcher) *variantBucket {
		for i := range buckets {
			if buckets[i].required.equal(key) {
				return &buckets[i]
			}
		}
		buckets = append(buckets, variantBucket{required: key})
		return &buckets[len(buckets)-1]
	}

	for i := len(b.Variants) - 1; i >= 0; i-- {
		validation := b.Variants[i]
		switch v := validation.(type) {
		case *EnumValidation:
			bucket := findOrAdd(requiredTagMatcher{})
			bucket.candidates = append(bucket.candidates, variantCandidate{subsetMatcher{}, v})
		case *NewtypeValidation:
			bucket := findOrAdd(requiredTagMatcher{})
			bucket.candidates = append(bucket.candidates, variantCandidate{subsetMatcher{}, v})
		case *StructValidation:
			typedef, ok := db.GetStructDef(v.Base().Typename)
			if !ok {
				errs = append(errs, &UndefinedTypeError{Typename: v.Base().Typename})
				continue
			}
			registerStructVariant(findOrAdd, v, typedef)
		default:
			// any other shape cannot be dispatched via tags and is excluded
			// from the index (spec §4.E).
		}
	}
	if len(errs) > 0 {
		return nil, AggregateInvalidValidationErrors(errs)
	}

	for i := range buckets {
		sort.SliceStable(buckets[i].candidates, func(a, c int) bool {
			return buckets[i].candidates[a].matcher.less(buckets[i].candidates[c].matcher)
		})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].required.less(buckets[j].required)
	})
	return buckets, nil
}

func registerStructVariant(findOrAdd func(requiredTagMatcher) *variantBucket, v *StructValidation, typedef *StructDef) {
	var required [][2]string
	var optional [][2]string
	for _, name := range typedef.SortedTagNames() {
		tag := typedef.Tags()[name]
		if tag.IsRequired() {
			required = append(required, [2]string{name, tag.Value()})
		} else {
			optional = append(optional, [2]string{name, tag.Value()})
		}
	}
	bucket := findOrAdd(requiredTagMatcher{pairs: required})
	for _, subset := range powerset(optional) {
		bucket.candidates = append(bucket.candidates, variantCandidate{subsetMatcher{pairs: subset}, v})
	}
}

// powerset returns every subset of pairs, including the empty subset and the
// full set itself (spec §4.E: "the full powerset, including the empty set").
func powerset(pairs [][2]string) [][][2]string {
	n := len(pairs)
	result := make([][][2]string, 0, 1<<uint(n))
	for mask := 0; mask < (1 << uint(n)); mask++ {
		var subset [][2]string
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				subset = append(subset, pairs[i])
			}
		}
		result = append(result, subset)
	}
	return result
}

// Validate runs the full dispatch: filter buckets whose required tags match,
// then within each matching bucket try candidates in subset-matcher order,
// accepting the first whose full Validate succeeds. Per-candidate failures
// are never reported individually.
func (b VariantBase) Validate(value any, db *TypeDb) ValidationError {
	buckets, err := b.variantIndex(db)
	if err != nil {
		return &InvalidValidationWrapError{ForWhat: "generate variant validator", Inner: err}
	}
	obj, isObj := value.(map[string]any)
	for _, bucket := range buckets {
		if !bucket.required.isMatch(obj, isObj) {
			continue
		}
		for _, cand := range bucket.candidates {
			if len(cand.matcher.pairs) > 0 && !cand.matcher.isMatch(obj, isObj) {
				continue
			}
			if cand.validation.ValidateJSON(value, db) == nil {
				return nil
			}
		}
	}
	return &VariantMismatchError{Value: value}
}

// VariantValidation is the top-level variant validator. It has no
// restriction wrapper (spec §4.D's RestrictedValueValidation applies to the
// sixteen other categories; a variant's own alternatives already restrict
// what it accepts).
type VariantValidation struct {
	base VariantBase
}

// NewVariantValidation builds a VariantValidation over the given alternatives.
func NewVariantValidation(variants []Validation) *VariantValidation {
	return &VariantValidation{base: VariantBase{Variants: variants}}
}

func (v *VariantValidation) Variants() []Validation { return v.base.Variants }

func (v *VariantValidation) Category() Category { return CategoryVariant }

func (v *VariantValidation) ValidateJSON(value any, db *TypeDb) ValidationError {
	return v.base.Validate(value, db)
}
