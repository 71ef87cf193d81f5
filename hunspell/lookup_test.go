package hunspell

import (
	"testing"

	"github.com/az-ai-labs/huncheck/affconfig"
	"github.com/az-ai-labs/huncheck/affix"
	"github.com/az-ai-labs/huncheck/dictionary"
	"github.com/az-ai-labs/huncheck/flagset"
	"github.com/az-ai-labs/huncheck/strutil"
)

// newEntry fails the test on error: test fixtures use conditions known to compile.
func newEntry(t testing.TB, flag flagset.Flag, kind affix.Kind, strip, add, cond string, crossProduct bool) *affix.Entry {
	t.Helper()
	e, err := affix.NewEntry(flag, kind, strip, add, cond, crossProduct, flagset.New(), nil)
	if err != nil {
		t.Fatalf("NewEntry(%s): %v", flag, err)
	}
	return e
}

func baseDictionary(t testing.TB) (*affconfig.Config, *dictionary.Store) {
	t.Helper()
	cfg := affconfig.New()
	store := dictionary.NewStore()
	return cfg, store
}

func TestLookupPlainStem(t *testing.T) {
	cfg, store := baseDictionary(t)
	store.Add(&dictionary.WordEntry{Stem: "cat", Flags: flagset.New()})
	cfg.Index = affix.NewIndex(nil)
	d := NewDictionary(cfg, store)

	if !d.Lookup("cat") {
		t.Error("Lookup(cat) = false, want true")
	}
	if d.Lookup("dog") {
		t.Error("Lookup(dog) = true, want false")
	}
}

func TestLookupSuffix(t *testing.T) {
	cfg, store := baseDictionary(t)
	sfxS := newEntry(t, "S", affix.Suffix, "", "s", ".", true)
	cfg.Index = affix.NewIndex([]*affix.Entry{sfxS})
	store.Add(&dictionary.WordEntry{Stem: "cat", Flags: flagset.NewFromSlice([]flagset.Flag{"S"})})
	d := NewDictionary(cfg, store)

	if !d.Lookup("cat") {
		t.Error("Lookup(cat) = false, want true")
	}
	if !d.Lookup("cats") {
		t.Error("Lookup(cats) = false, want true")
	}
	if d.Lookup("cads") {
		t.Error("Lookup(cads) = true, want false")
	}
}

func TestLookupForbiddenWord(t *testing.T) {
	cfg, store := baseDictionary(t)
	cfg.ForbiddenWord = "F"
	cfg.Index = affix.NewIndex(nil)
	store.Add(&dictionary.WordEntry{Stem: "bad", Flags: flagset.NewFromSlice([]flagset.Flag{"F"})})
	d := NewDictionary(cfg, store)

	if d.Lookup("bad") {
		t.Error("Lookup(bad) = true, want false (FORBIDDENWORD)")
	}
}

func TestLookupNeedAffix(t *testing.T) {
	cfg, store := baseDictionary(t)
	cfg.NeedAffix = "N"
	sfxS := newEntry(t, "S", affix.Suffix, "", "s", ".", true)
	cfg.Index = affix.NewIndex([]*affix.Entry{sfxS})
	store.Add(&dictionary.WordEntry{Stem: "run", Flags: flagset.NewFromSlice([]flagset.Flag{"N", "S"})})
	d := NewDictionary(cfg, store)

	if d.Lookup("run") {
		t.Error("Lookup(run) = true, want false (NEEDAFFIX with no affix applied)")
	}
	if !d.Lookup("runs") {
		t.Error("Lookup(runs) = false, want true (NEEDAFFIX satisfied by suffix)")
	}
}

func TestLookupCompoundByFlag(t *testing.T) {
	cfg, store := baseDictionary(t)
	cfg.CompoundFlag = "C"
	cfg.Index = affix.NewIndex(nil)
	store.Add(&dictionary.WordEntry{Stem: "sun", Flags: flagset.NewFromSlice([]flagset.Flag{"C"})})
	store.Add(&dictionary.WordEntry{Stem: "flower", Flags: flagset.NewFromSlice([]flagset.Flag{"C"})})
	d := NewDictionary(cfg, store)

	if !d.Lookup("sunflower") {
		t.Error("Lookup(sunflower) = false, want true (compound by flag)")
	}
}

func TestLookupCompoundRequiresFlag(t *testing.T) {
	cfg, store := baseDictionary(t)
	cfg.CompoundFlag = "C"
	cfg.Index = affix.NewIndex(nil)
	store.Add(&dictionary.WordEntry{Stem: "sun", Flags: flagset.NewFromSlice([]flagset.Flag{"C"})})
	store.Add(&dictionary.WordEntry{Stem: "flower", Flags: flagset.New()})
	d := NewDictionary(cfg, store)

	if d.Lookup("sunflower") {
		t.Error("Lookup(sunflower) = true, want false (flower lacks COMPOUNDFLAG)")
	}
}

func TestLookupBreak(t *testing.T) {
	cfg, store := baseDictionary(t)
	cfg.Break = []strutil.BreakPattern{{Text: "-"}}
	cfg.Index = affix.NewIndex(nil)
	store.Add(&dictionary.WordEntry{Stem: "foo", Flags: flagset.New()})
	store.Add(&dictionary.WordEntry{Stem: "bar", Flags: flagset.New()})
	d := NewDictionary(cfg, store)

	if !d.Lookup("foo-bar") {
		t.Error("Lookup(foo-bar) = false, want true (BREAK on -)")
	}
	if d.Lookup("foo-baz") {
		t.Error("Lookup(foo-baz) = true, want false")
	}
}

func TestLookupEmptyInputVacuouslyTrue(t *testing.T) {
	cfg, store := baseDictionary(t)
	cfg.Index = affix.NewIndex(nil)
	d := NewDictionary(cfg, store)

	if !d.Lookup("") {
		t.Error("Lookup(\"\") = false, want true (spec.md §7 InvalidInput)")
	}
}

func TestLookupNumericAccepted(t *testing.T) {
	cfg, store := baseDictionary(t)
	cfg.Index = affix.NewIndex(nil)
	d := NewDictionary(cfg, store)

	for _, w := range []string{"123", "3.14", "1,234", "12/31", "2024-01-01"} {
		if !d.Lookup(w) {
			t.Errorf("Lookup(%q) = false, want true (numeric)", w)
		}
	}
}

func TestLookupKeepCaseRejectsAllCapsToLower(t *testing.T) {
	cfg, store := baseDictionary(t)
	cfg.KeepCase = "K"
	cfg.Index = affix.NewIndex(nil)
	store.Add(&dictionary.WordEntry{Stem: "nato", Flags: flagset.NewFromSlice([]flagset.Flag{"K"})})
	d := NewDictionary(cfg, store)

	if !d.Lookup("nato") {
		t.Error("Lookup(nato) = false, want true (exact case honored)")
	}
	if d.Lookup("NATO") {
		t.Error("Lookup(NATO) = true, want false (KEEPCASE rejects the ALL-to-lower hit)")
	}
}
