package hunspell

import (
	"testing"

	"github.com/az-ai-labs/huncheck/affix"
	"github.com/az-ai-labs/huncheck/dictionary"
	"github.com/az-ai-labs/huncheck/flagset"
)

func fuzzDictionary(t testing.TB) *Dictionary {
	t.Helper()
	cfg, store := baseDictionary(t)
	sfxS, err := affix.NewEntry("S", affix.Suffix, "", "s", ".", true, flagset.New(), nil)
	if err != nil {
		t.Fatalf("NewEntry: %v", err)
	}
	cfg.Index = affix.NewIndex([]*affix.Entry{sfxS})
	store.Add(&dictionary.WordEntry{Stem: "cat", Flags: flagset.NewFromSlice([]flagset.Flag{"S"})})
	store.Add(&dictionary.WordEntry{Stem: "dog", Flags: flagset.New()})
	return NewDictionary(cfg, store)
}

func FuzzLookup(f *testing.F) {
	f.Add("cat")
	f.Add("cats")
	f.Add("")
	f.Add("123")
	f.Add("foo-bar")
	f.Add("CATS")
	f.Add("Ünïcödé")

	d := fuzzDictionary(f)
	f.Fuzz(func(t *testing.T, word string) {
		_ = d.Lookup(word)
	})
}
