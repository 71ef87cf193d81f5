package suggest

import (
	"testing"

	"github.com/az-ai-labs/huncheck/affconfig"
	"github.com/az-ai-labs/huncheck/affix"
	"github.com/az-ai-labs/huncheck/dictionary"
	"github.com/az-ai-labs/huncheck/flagset"
	"github.com/az-ai-labs/huncheck/hunspell"
)

func TestSuggestSliceReturnsCorrection(t *testing.T) {
	d := baseDict(t, "cat")
	got := SuggestSlice(d, "catt", 5)
	found := false
	for _, g := range got {
		if g == "cat" {
			found = true
		}
	}
	if !found {
		t.Errorf("SuggestSlice(catt) = %v, want to contain cat", got)
	}
}

func TestSuggestRestoresAllCaps(t *testing.T) {
	d := baseDict(t, "cat")
	got := SuggestSlice(d, "CATT", 5)
	found := false
	for _, g := range got {
		if g == "CAT" {
			found = true
		}
	}
	if !found {
		t.Errorf("SuggestSlice(CATT) = %v, want CAT (uppercase restored)", got)
	}
}

func TestSuggestRestoresTitleCase(t *testing.T) {
	d := baseDict(t, "cat")
	got := SuggestSlice(d, "Catt", 5)
	found := false
	for _, g := range got {
		if g == "Cat" {
			found = true
		}
	}
	if !found {
		t.Errorf("SuggestSlice(Catt) = %v, want Cat (title case restored)", got)
	}
}

func TestSuggestNeverReturnsInputItself(t *testing.T) {
	d := baseDict(t, "cat", "cats")
	got := SuggestSlice(d, "cat", 5)
	for _, g := range got {
		if g == "cat" {
			t.Errorf("SuggestSlice(cat) = %v, should not suggest the input itself", got)
		}
	}
}

func TestSuggestIteratorStopsEarly(t *testing.T) {
	d := baseDict(t, "cat", "bat", "cot")
	count := 0
	for range Suggest(d, "cbt") {
		count++
		break
	}
	if count != 1 {
		t.Errorf("early break from Suggest iterator observed %d items, want 1", count)
	}
}

func TestSuggestRespectsMaxCpdSugs(t *testing.T) {
	cfg := affconfig.New()
	cfg.CompoundFlag = "C"
	cfg.CompoundMin = 2
	cfg.MaxCpdSugs = 1
	cfg.Index = affix.NewIndex(nil)
	store := dictionary.NewStore()
	for _, s := range []string{"ab", "cd", "ef", "gh"} {
		store.Add(&dictionary.WordEntry{Stem: s, Flags: flagset.NewFromSlice([]flagset.Flag{"C"})})
	}
	d := hunspell.NewDictionary(cfg, store)

	got := SuggestSlice(d, "abxcd", 10)
	cpdCount := 0
	for _, g := range got {
		if len(g) == 4 {
			cpdCount++
		}
	}
	if cpdCount > cfg.MaxCpdSugs {
		t.Errorf("SuggestSlice produced %d compound-length suggestions, want <= %d", cpdCount, cfg.MaxCpdSugs)
	}
}
