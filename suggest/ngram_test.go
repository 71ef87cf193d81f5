package suggest

import (
	"testing"

	"github.com/az-ai-labs/huncheck/affconfig"
	"github.com/az-ai-labs/huncheck/affix"
	"github.com/az-ai-labs/huncheck/dictionary"
	"github.com/az-ai-labs/huncheck/flagset"
	"github.com/az-ai-labs/huncheck/hunspell"
)

func TestNGramFindsCloseStem(t *testing.T) {
	cfg := affconfig.New()
	cfg.Index = affix.NewIndex(nil)
	store := dictionary.NewStore()
	store.Add(&dictionary.WordEntry{Stem: "elephant", Flags: flagset.New()})
	store.Add(&dictionary.WordEntry{Stem: "giraffe", Flags: flagset.New()})
	d := hunspell.NewDictionary(cfg, store)

	got := NGram(d, "elefant", 4)
	if len(got) == 0 || got[0] != "elephant" {
		t.Errorf("NGram(elefant) = %v, want elephant ranked first", got)
	}
}

func TestNGramExpandsAffixedForms(t *testing.T) {
	cfg := affconfig.New()
	sfxS, err := affix.NewEntry("S", affix.Suffix, "", "s", ".", true, flagset.New(), nil)
	if err != nil {
		t.Fatalf("NewEntry: %v", err)
	}
	cfg.Index = affix.NewIndex([]*affix.Entry{sfxS})
	store := dictionary.NewStore()
	store.Add(&dictionary.WordEntry{Stem: "cat", Flags: flagset.NewFromSlice([]flagset.Flag{"S"})})
	d := hunspell.NewDictionary(cfg, store)

	got := NGram(d, "catz", 4)
	found := false
	for _, g := range got {
		if g == "cats" {
			found = true
		}
	}
	if !found {
		t.Errorf("NGram(catz) = %v, want cats among expanded surface forms", got)
	}
}

func TestNGramExcludesForbidden(t *testing.T) {
	cfg := affconfig.New()
	cfg.ForbiddenWord = "F"
	cfg.Index = affix.NewIndex(nil)
	store := dictionary.NewStore()
	store.Add(&dictionary.WordEntry{Stem: "badword", Flags: flagset.NewFromSlice([]flagset.Flag{"F"})})
	d := hunspell.NewDictionary(cfg, store)

	got := NGram(d, "badwor", 4)
	for _, g := range got {
		if g == "badword" {
			t.Errorf("NGram(badwor) = %v, want FORBIDDENWORD stem excluded", got)
		}
	}
}
