package suggest

import (
	"sort"

	"github.com/az-ai-labs/huncheck/dictionary"
	"github.com/az-ai-labs/huncheck/hunspell"
	"github.com/az-ai-labs/huncheck/strutil"
)

// defaultMaxPhonetSugs bounds phonetic candidates. It is a fixed cap,
// independent of MAXNGRAMSUGS: Hunspell has no PHONE-specific directive
// for it.
const defaultMaxPhonetSugs = 2

// Phonet implements spec.md §4.7: active only when the dictionary carries a
// PHONE table, scoring every stem by a blend of raw and phonetic-code
// n-gram similarity and keeping a small handful of the best matches.
func Phonet(d *hunspell.Dictionary, misspelling string) []string {
	cfg := d.Config
	if cfg.Phone == nil {
		return nil
	}

	misCode := cfg.Phone.Encode(misspelling)
	misRunes := len([]rune(misspelling))

	type hit struct {
		stem  string
		score int
	}
	var hits []hit

	d.Store.Each(func(stem string, entries []*dictionary.WordEntry) {
		eligible := false
		for _, e := range entries {
			if stemEligible(cfg, e) {
				eligible = true
				break
			}
		}
		if !eligible {
			return
		}
		code := cfg.Phone.Encode(stem)
		lengthPenalty := misRunes - len([]rune(stem))
		if lengthPenalty < 0 {
			lengthPenalty = -lengthPenalty
		}
		score := strutil.NGram(3, stem, misspelling, strutil.NGramOptions{}) +
			strutil.NGram(3, code, misCode, strutil.NGramOptions{}) -
			lengthPenalty
		hits = append(hits, hit{stem: stem, score: score})
	})

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	limit := defaultMaxPhonetSugs
	if len(hits) < limit {
		limit = len(hits)
	}

	out := make([]string, 0, limit)
	for _, h := range hits[:limit] {
		if accept(d, h.stem) {
			out = append(out, h.stem)
		}
	}
	return out
}
