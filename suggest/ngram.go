package suggest

import (
	"sort"
	"strings"

	"github.com/az-ai-labs/huncheck/affconfig"
	"github.com/az-ai-labs/huncheck/affix"
	"github.com/az-ai-labs/huncheck/dictionary"
	"github.com/az-ai-labs/huncheck/hunspell"
	"github.com/az-ai-labs/huncheck/strutil"
)

// scored pairs a candidate surface form with its rescoring weight.
type scored struct {
	text  string
	score int
}

// stemEligible applies spec.md §4.6 step 1's exclusions: a stem carrying
// FORBIDDENWORD, NOSUGGEST, or ONLYINCOMPOUND, or one that exists only to
// carry a ph: alternate spelling, never seeds an n-gram candidate.
func stemEligible(cfg *affconfig.Config, e *dictionary.WordEntry) bool {
	if cfg.ForbiddenWord != "" && e.HasFlag(cfg.ForbiddenWord) {
		return false
	}
	if cfg.NoSuggest != "" && e.HasFlag(cfg.NoSuggest) {
		return false
	}
	if cfg.OnlyInCompound != "" && e.HasFlag(cfg.OnlyInCompound) {
		return false
	}
	if e.Stem == "" && len(e.AltSpellings) > 0 {
		return false
	}
	return true
}

// composeWord applies e to stem in the forward (generation) direction: the
// inverse of Entry.Apply, which decomposes a word back to its stem.
func composeWord(stem string, e *affix.Entry) (string, bool) {
	if !e.MatchesStem(stem) {
		return "", false
	}
	switch e.Kind {
	case affix.Suffix:
		if !strings.HasSuffix(stem, e.Strip) {
			return "", false
		}
		return stem[:len(stem)-len(e.Strip)] + e.Add, true
	case affix.Prefix:
		if !strings.HasPrefix(stem, e.Strip) {
			return "", false
		}
		return e.Add + stem[len(e.Strip):], true
	}
	return "", false
}

// expandStem generates every surface form reachable from e's stem via a
// single compatible prefix or suffix, plus the bare stem itself (spec.md
// §4.6 step 4). Two-level (double-affix) expansion is intentionally not
// attempted here: n-gram candidates only need to be plausible near-matches,
// not exhaustive, and affix_forms remains the authority for full analysis.
func expandStem(cfg *affconfig.Config, e *dictionary.WordEntry) []string {
	out := []string{e.Stem}
	if cfg.Index == nil {
		return out
	}
	for _, entry := range cfg.Index.AllEntries() {
		if !e.HasFlag(entry.Flag) {
			continue
		}
		if form, ok := composeWord(e.Stem, entry); ok {
			out = append(out, form)
		}
	}
	return out
}

// NGram implements spec.md §4.6: scan every stem, score by ngram+leftcommon,
// keep the top maxCandidates, expand each survivor through its affixes, and
// rescore the expanded surface forms with the weighted metric.
func NGram(d *hunspell.Dictionary, misspelling string, maxCandidates int) []string {
	cfg := d.Config
	if maxCandidates <= 0 {
		maxCandidates = affconfig.DefaultMaxNGramSugs
	}

	type stemHit struct {
		entry *dictionary.WordEntry
		score int
	}
	var hits []stemHit

	d.Store.Each(func(stem string, entries []*dictionary.WordEntry) {
		for _, e := range entries {
			if !stemEligible(cfg, e) {
				continue
			}
			score := strutil.NGram(3, misspelling, stem, strutil.NGramOptions{}) + strutil.LeftCommonSubstring(misspelling, stem)
			hits = append(hits, stemHit{entry: e, score: score})
		}
	})

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > maxCandidates {
		hits = hits[:maxCandidates]
	}

	seen := make(map[string]struct{})
	var forms []string
	for _, h := range hits {
		for _, form := range expandStem(cfg, h.entry) {
			if _, dup := seen[form]; dup {
				continue
			}
			seen[form] = struct{}{}
			forms = append(forms, form)
		}
	}

	misRunes := len([]rune(misspelling))
	results := make([]scored, 0, len(forms))
	for _, form := range forms {
		lengthPenalty := misRunes - len([]rune(form))
		if lengthPenalty < 0 {
			lengthPenalty = -lengthPenalty
		}
		score := 2*strutil.NGram(misRunes, misspelling, form, strutil.NGramOptions{Weighted: true}) +
			strutil.LeftCommonSubstring(misspelling, form) +
			strutil.CommonCharacterPositions(misspelling, form) -
			lengthPenalty
		results = append(results, scored{text: form, score: score})
	}

	if cfg.MaxDiff > 0 {
		threshold := normalizeThreshold(results, cfg.MaxDiff)
		if cfg.OnlyMaxDiff {
			filtered := results[:0]
			for _, r := range results {
				if r.score >= threshold {
					filtered = append(filtered, r)
				}
			}
			results = filtered
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })

	out := make([]string, 0, len(results))
	for _, r := range results {
		if accept(d, r.text) {
			out = append(out, r.text)
		}
	}
	return out
}

// normalizeThreshold maps cfg.MaxDiff (0..10) onto the score range actually
// observed in results, per spec.md §4.6 step 5.
func normalizeThreshold(results []scored, maxDiff int) int {
	if len(results) == 0 {
		return 0
	}
	lo, hi := results[0].score, results[0].score
	for _, r := range results {
		if r.score < lo {
			lo = r.score
		}
		if r.score > hi {
			hi = r.score
		}
	}
	if hi == lo {
		return lo
	}
	return lo + (hi-lo)*maxDiff/10
}
