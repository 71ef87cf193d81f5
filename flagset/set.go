package flagset

import mapset "github.com/deckarep/golang-set"

// Set is an unordered collection of flags with O(1) membership testing.
// It wraps mapset.Set the way eroatta's Samurai splitter wraps it for
// prefix/suffix membership: a typed facade over an interface{}-keyed set
// so call sites never need an unsafe type assertion.
type Set struct {
	inner mapset.Set
}

// New returns an empty Set.
func New() Set {
	return Set{inner: mapset.NewThreadUnsafeSet()}
}

// NewFromSlice returns a Set containing every flag in flags.
func NewFromSlice(flags []Flag) Set {
	s := New()
	for _, f := range flags {
		s.Add(f)
	}
	return s
}

// Add inserts f into the set.
func (s Set) Add(f Flag) {
	if s.inner == nil {
		return
	}
	s.inner.Add(f)
}

// Contains reports whether f is a member of the set.
func (s Set) Contains(f Flag) bool {
	if s.inner == nil || f == "" {
		return false
	}
	return s.inner.Contains(f)
}

// Len returns the number of flags in the set.
func (s Set) Len() int {
	if s.inner == nil {
		return 0
	}
	return s.inner.Cardinality()
}

// Empty reports whether the set has no members.
func (s Set) Empty() bool {
	return s.Len() == 0
}

// Intersects reports whether s and other share at least one flag.
func (s Set) Intersects(other Set) bool {
	if s.inner == nil || other.inner == nil {
		return false
	}
	return s.inner.Intersect(other.inner).Cardinality() > 0
}

// Union returns a new Set containing every flag from s and other.
func (s Set) Union(other Set) Set {
	out := New()
	s.Each(func(f Flag) { out.Add(f) })
	other.Each(func(f Flag) { out.Add(f) })
	return out
}

// Each calls fn once per flag in the set. Iteration order is unspecified.
func (s Set) Each(fn func(Flag)) {
	if s.inner == nil {
		return
	}
	s.inner.Each(func(v interface{}) bool {
		if f, ok := v.(Flag); ok {
			fn(f)
		}
		return false
	})
}

// Slice returns the set's members as a slice in unspecified order.
func (s Set) Slice() []Flag {
	out := make([]Flag, 0, s.Len())
	s.Each(func(f Flag) { out = append(out, f) })
	return out
}
