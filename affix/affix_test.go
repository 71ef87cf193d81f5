package affix

import (
	"testing"

	"github.com/az-ai-labs/huncheck/flagset"
)

func mustEntry(t *testing.T, flag flagset.Flag, kind Kind, strip, add, cond string, cross bool) *Entry {
	t.Helper()
	e, err := NewEntry(flag, kind, strip, add, cond, cross, flagset.New(), nil)
	if err != nil {
		t.Fatalf("NewEntry: %v", err)
	}
	return e
}

func TestSuffixApply(t *testing.T) {
	e := mustEntry(t, "S", Suffix, "", "s", ".", true)
	stem, ok := e.Apply("cats", false)
	if !ok || stem != "cat" {
		t.Errorf("Apply(cats) = (%q, %v), want (cat, true)", stem, ok)
	}
}

func TestSuffixApplyConditionReject(t *testing.T) {
	// Only applies after a consonant: the stem's final "y" must not follow a vowel.
	e := mustEntry(t, "Y", Suffix, "y", "ies", "[^aeiou]y", true)
	if stem, ok := e.Apply("flies", false); !ok || stem != "fly" {
		t.Errorf("Apply(flies) = (%q, %v), want (fly, true)", stem, ok)
	}
	// "toies" -> stem "toy", whose "y" follows a vowel, so condition rejects.
	if _, ok := e.Apply("toies", false); ok {
		t.Error("Apply(toies) = true, want false (y follows a vowel)")
	}
}

func TestPrefixApply(t *testing.T) {
	e := mustEntry(t, "U", Prefix, "", "un", ".", false)
	stem, ok := e.Apply("undo", false)
	if !ok || stem != "do" {
		t.Errorf("Apply(undo) = (%q, %v), want (do, true)", stem, ok)
	}
}

func TestIndexSuffixWalk(t *testing.T) {
	e1 := mustEntry(t, "S", Suffix, "", "s", ".", true)
	e2 := mustEntry(t, "D", Suffix, "", "ed", ".", true)
	idx := NewIndex([]*Entry{e1, e2})

	cands := idx.Suffixes("walked", false)
	found := false
	for _, c := range cands {
		if c.Stem == "walk" && c.Entry.Flag == "D" {
			found = true
		}
	}
	if !found {
		t.Errorf("Suffixes(walked) = %+v, missing walk/D", cands)
	}
}

func TestIndexPrefixWalk(t *testing.T) {
	e := mustEntry(t, "U", Prefix, "", "un", ".", false)
	idx := NewIndex([]*Entry{e})
	cands := idx.Prefixes("unhappy", false)
	if len(cands) != 1 || cands[0].Stem != "happy" {
		t.Errorf("Prefixes(unhappy) = %+v, want one candidate stem=happy", cands)
	}
}

func TestIndexNoMatch(t *testing.T) {
	e := mustEntry(t, "S", Suffix, "", "s", ".", true)
	idx := NewIndex([]*Entry{e})
	if cands := idx.Suffixes("dog", false); len(cands) != 0 {
		t.Errorf("Suffixes(dog) = %+v, want none", cands)
	}
}

func TestFullStripAllowsEmptyStem(t *testing.T) {
	e := mustEntry(t, "S", Suffix, "", "cats", ".", true)
	if _, ok := e.Apply("cats", false); ok {
		t.Error("Apply without fullStrip on empty stem = true, want false")
	}
	if stem, ok := e.Apply("cats", true); !ok || stem != "" {
		t.Errorf("Apply with fullStrip = (%q, %v), want (\"\", true)", stem, ok)
	}
}
