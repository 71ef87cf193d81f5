// Package dictionary implements the stem -> homonym-list store that backs
// lookup and suggest (spec.md §3 "Dictionary Store").
package dictionary

import "github.com/az-ai-labs/huncheck/flagset"

// WordEntry is one stem record from the .dic word list (spec.md §3).
type WordEntry struct {
	// Stem is the surface form as stored, after any AF alias expansion.
	Stem string
	// Flags is the set of affix/property flags attached to this entry.
	Flags flagset.Set
	// Morphology holds key->value morphological tags (e.g. "po:noun"),
	// including "ph:" alternate-spelling tags.
	Morphology map[string][]string
	// AltSpellings lists alternate spellings derived from "ph:" tags. The
	// suggest package does not generate candidates from them; it only
	// uses them to exclude entries with an empty Stem from n-gram seeding.
	AltSpellings []string
}

// HasFlag reports whether the entry carries flag.
func (w *WordEntry) HasFlag(flag flagset.Flag) bool {
	if flag == "" {
		return false
	}
	return w.Flags.Contains(flag)
}

// Store maps a surface stem to its ordered list of homonym WordEntries.
// Multiple WordEntry values may share a Stem (homonyms): they are tried
// independently by lookup. Iteration order for a stem's homonym list is
// insertion order from the source .dic file.
type Store struct {
	byStem map[string][]*WordEntry
	// order preserves the file's stem insertion order, for n-gram's
	// whole-dictionary scan (spec.md §4.6 step 1).
	order []string
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{byStem: make(map[string][]*WordEntry)}
}

// Add inserts entry under its Stem, preserving insertion order both within
// the homonym list and across distinct stems.
func (s *Store) Add(entry *WordEntry) {
	if _, exists := s.byStem[entry.Stem]; !exists {
		s.order = append(s.order, entry.Stem)
	}
	s.byStem[entry.Stem] = append(s.byStem[entry.Stem], entry)
}

// Lookup returns the homonym list for stem, or nil if stem is unknown.
func (s *Store) Lookup(stem string) []*WordEntry {
	return s.byStem[stem]
}

// Len returns the number of distinct stems in the store.
func (s *Store) Len() int {
	return len(s.order)
}

// Each calls fn once per distinct stem, in file insertion order, with that
// stem's full homonym list. Stopping early is not supported: fn is always
// called for every stem, which is what suggest's n-gram whole-dictionary
// scan (spec.md §4.6) needs.
func (s *Store) Each(fn func(stem string, entries []*WordEntry)) {
	for _, stem := range s.order {
		fn(stem, s.byStem[stem])
	}
}
