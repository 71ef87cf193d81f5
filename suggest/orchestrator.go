package suggest

import (
	"iter"
	"strings"

	"github.com/az-ai-labs/huncheck/affconfig"
	"github.com/az-ai-labs/huncheck/casing"
	"github.com/az-ai-labs/huncheck/hunspell"
)

// Suggest implements spec.md §4.8's orchestrator: permutation candidates
// first, then n-gram candidates if permutation fell short of MAXNGRAMSUGS,
// then phonet candidates if PHONE is configured, each pass restoring
// casing, applying OCONV, de-duplicating, and respecting the compound and
// global suggestion caps. It returns an iter.Seq[string]: the candidate
// list is built once up to the global cap, then replayed through a
// range-over-func iterator so callers can still stop early without the
// orchestrator doing unbounded work up front for large dictionaries.
func Suggest(d *hunspell.Dictionary, word string) iter.Seq[string] {
	list := build(d, word)
	return func(yield func(string) bool) {
		for _, s := range list {
			if !yield(s) {
				return
			}
		}
	}
}

// SuggestSlice is the convenience, fully-materialized form of Suggest.
func SuggestSlice(d *hunspell.Dictionary, word string, limit int) []string {
	list := build(d, word)
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}

func build(d *hunspell.Dictionary, word string) []string {
	cfg := d.Config

	hadDot := cfg.SugsWithDots && strings.HasSuffix(word, ".")
	iconvWord := cfg.ICONV.Rewrite(word)

	captype := casing.Classify(iconvWord)
	variants := casing.Variants(iconvWord, captype, cfg.Lang, cfg.CheckSharps)

	maxSuggestions := cfg.MaxSuggestions
	if maxSuggestions <= 0 {
		maxSuggestions = affconfig.DefaultMaxSuggestions
	}
	maxNGramSugs := cfg.MaxNGramSugs
	if maxNGramSugs <= 0 {
		maxNGramSugs = affconfig.DefaultMaxNGramSugs
	}
	maxCpdSugs := cfg.MaxCpdSugs
	if maxCpdSugs <= 0 {
		maxCpdSugs = affconfig.DefaultMaxCpdSugs
	}

	seen := map[string]struct{}{iconvWord: {}}
	var out []string
	cpdCount := 0
	nonCompoundGood := 0

	emit := func(raw string) bool {
		if len(out) >= maxSuggestions {
			return true
		}
		if _, dup := seen[raw]; dup {
			return false
		}
		an, ok := d.Analyze(raw, hunspell.WithAllowNoSuggest(false))
		if !ok {
			return false
		}
		seen[raw] = struct{}{}

		restored := restoreCase(raw, captype, an, cfg)
		isCompound := len(an.CompoundParts) > 0
		if isCompound {
			if cpdCount >= maxCpdSugs {
				return false
			}
			cpdCount++
		} else {
			nonCompoundGood++
		}

		restored = cfg.OCONV.Rewrite(restored)
		if hadDot {
			restored += "."
		}
		out = append(out, restored)
		return len(out) >= maxSuggestions
	}

	for _, v := range variants {
		for _, cand := range Permutations(d, v.Text, maxSuggestions) {
			if emit(cand) {
				return out
			}
		}
	}

	if nonCompoundGood < maxNGramSugs {
		for _, cand := range NGram(d, iconvWord, maxNGramSugs) {
			if emit(cand) {
				return out
			}
		}
	}

	if cfg.Phone != nil {
		for _, cand := range Phonet(d, iconvWord) {
			if emit(cand) {
				return out
			}
		}
	}

	return out
}

// restoreCase reapplies the misspelling's captype to candidate, unless the
// accepting analysis carries KEEPCASE, per spec.md §4.8 step 5.
func restoreCase(candidate string, captype casing.Captype, an *hunspell.Analysis, cfg *affconfig.Config) string {
	if cfg.KeepCase != "" && an != nil && an.Flags().Contains(cfg.KeepCase) {
		return candidate
	}
	switch captype {
	case casing.ALL:
		return casing.ToUpper(candidate, cfg.Lang)
	case casing.INIT, casing.HUHINIT:
		return casing.ToTitle(candidate, cfg.Lang)
	default:
		return candidate
	}
}
