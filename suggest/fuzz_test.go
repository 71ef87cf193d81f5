package suggest

import (
	"testing"

	"github.com/az-ai-labs/huncheck/affconfig"
	"github.com/az-ai-labs/huncheck/affix"
	"github.com/az-ai-labs/huncheck/dictionary"
	"github.com/az-ai-labs/huncheck/flagset"
	"github.com/az-ai-labs/huncheck/hunspell"
)

func fuzzSuggestDict(t testing.TB) *hunspell.Dictionary {
	t.Helper()
	cfg := affconfig.New()
	sfxS, err := affix.NewEntry("S", affix.Suffix, "", "s", ".", true, flagset.New(), nil)
	if err != nil {
		t.Fatalf("NewEntry: %v", err)
	}
	cfg.Index = affix.NewIndex([]*affix.Entry{sfxS})
	store := dictionary.NewStore()
	store.Add(&dictionary.WordEntry{Stem: "cat", Flags: flagset.NewFromSlice([]flagset.Flag{"S"})})
	store.Add(&dictionary.WordEntry{Stem: "dog", Flags: flagset.New()})
	return hunspell.NewDictionary(cfg, store)
}

func FuzzSuggestSlice(f *testing.F) {
	f.Add("catt")
	f.Add("")
	f.Add("dogg")
	f.Add("CATT")
	f.Add("Ünïcödé")

	d := fuzzSuggestDict(f)
	f.Fuzz(func(t *testing.T, word string) {
		_ = SuggestSlice(d, word, 15)
	})
}
