// Package affix implements the affix index: the reverse-suffix and
// forward-prefix tries that map a candidate word's boundary text to the
// PFX/SFX entries that might apply to it (spec.md §4.3).
package affix

import (
	"fmt"

	"github.com/coregx/coregex"

	"github.com/az-ai-labs/huncheck/flagset"
)

// Kind distinguishes prefixes from suffixes.
type Kind int

// The two affix kinds.
const (
	Suffix Kind = iota
	Prefix
)

// Entry is one PFX or SFX rule line (spec.md §3 "Affix Entry").
type Entry struct {
	Flag           flagset.Flag
	Kind           Kind
	Strip          string
	Add            string
	Condition      string // raw condition text, as written in the .aff file
	CrossProduct   bool
	FlagsOnResult  flagset.Set
	Morphology     map[string]string

	condRe *coregex.Regex // compiled Condition, nil if Condition is "" or "."
}

// compileCondition turns a Hunspell affix condition into an anchored
// regular expression. For suffixes the condition matches at the end of the
// stripped stem; for prefixes, at the start. Hunspell conditions are
// already a restricted regex dialect (character classes, "." and
// literals), so coregex.Compile — a stdlib-regexp-compatible engine reused
// from the retrieval pack's coregx-coregex rather than a hand-rolled
// condition matcher — takes them directly once anchored.
func compileCondition(cond string, kind Kind) (*coregex.Regex, error) {
	if cond == "" || cond == "." {
		return nil, nil
	}
	pattern := cond
	if kind == Suffix {
		pattern += "$"
	} else {
		pattern = "^" + pattern
	}
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("affix: compiling condition %q: %w", cond, err)
	}
	return re, nil
}

// NewEntry builds an Entry from parsed fields, compiling its condition.
func NewEntry(flag flagset.Flag, kind Kind, strip, add, condition string, crossProduct bool, flagsOnResult flagset.Set, morph map[string]string) (*Entry, error) {
	e := &Entry{
		Flag:          flag,
		Kind:          kind,
		Strip:         strip,
		Add:           add,
		Condition:     condition,
		CrossProduct:  crossProduct,
		FlagsOnResult: flagsOnResult,
		Morphology:    morph,
	}
	re, err := compileCondition(condition, kind)
	if err != nil {
		return nil, err
	}
	e.condRe = re
	return e, nil
}

// MatchesStem reports whether stem's boundary satisfies e's condition.
// An entry with no condition (or ".") matches anything.
func (e *Entry) MatchesStem(stem string) bool {
	if e.condRe == nil {
		return true
	}
	return e.condRe.MatchString(stem)
}

// Apply derives the candidate stem from word for this affix entry: for a
// suffix, strip is removed from (and add was appended to) the word's tail;
// for a prefix, the head. Returns ok=false if word doesn't actually carry
// this entry's Add text at the relevant boundary, or if the resulting stem
// would be empty and fullStrip is false.
func (e *Entry) Apply(word string, fullStrip bool) (stem string, ok bool) {
	switch e.Kind {
	case Suffix:
		if len(word) < len(e.Add) {
			return "", false
		}
		tail := word[len(word)-len(e.Add):]
		if tail != e.Add {
			return "", false
		}
		stem = word[:len(word)-len(e.Add)] + e.Strip
	case Prefix:
		if len(word) < len(e.Add) {
			return "", false
		}
		head := word[:len(e.Add)]
		if head != e.Add {
			return "", false
		}
		stem = e.Strip + word[len(e.Add):]
	}
	if stem == "" && !fullStrip {
		return "", false
	}
	if !e.MatchesStem(stem) {
		return "", false
	}
	return stem, true
}

// Group is all affix entries sharing one flag (spec.md §3 "Affix Group").
type Group struct {
	Flag         flagset.Flag
	Kind         Kind
	CrossProduct bool
	Entries      []*Entry
}
