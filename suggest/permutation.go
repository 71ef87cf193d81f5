// Package suggest implements the three candidate generators spec.md
// §4.5-§4.8 describe (permutation, n-gram, phonetic) and the orchestrator
// that sequences them, ranks, de-duplicates, and bounds their output.
package suggest

import (
	"strings"

	"github.com/az-ai-labs/huncheck/casing"
	"github.com/az-ai-labs/huncheck/hunspell"
)

// accept reports whether candidate is a word, excluding NOSUGGEST-flagged
// stems (suggest never offers those, spec.md §7).
func accept(d *hunspell.Dictionary, candidate string) bool {
	if candidate == "" {
		return false
	}
	return d.Lookup(candidate, hunspell.WithAllowNoSuggest(false))
}

// collector accumulates candidates in category order, de-duplicating
// against everything already emitted and stopping once limit is reached.
type collector struct {
	dict   *hunspell.Dictionary
	seen   map[string]struct{}
	limit  int
	misspelling string
	out    []string
}

func newCollector(d *hunspell.Dictionary, misspelling string, limit int) *collector {
	return &collector{dict: d, seen: make(map[string]struct{}), limit: limit, misspelling: misspelling}
}

func (c *collector) full() bool {
	return c.limit > 0 && len(c.out) >= c.limit
}

// try tests candidate and, if it's a new accepted word, appends it.
// Returns true if the collector is now full.
func (c *collector) try(candidate string) bool {
	if c.full() {
		return true
	}
	if candidate == "" || candidate == c.misspelling {
		return false
	}
	if _, dup := c.seen[candidate]; dup {
		return false
	}
	if !accept(c.dict, candidate) {
		return false
	}
	c.seen[candidate] = struct{}{}
	c.out = append(c.out, candidate)
	return c.full()
}

// Permutations implements spec.md §4.5's fixed ordered pipeline of
// edit-based candidate categories, each validated by Lookup and
// deduplicated against everything emitted by earlier categories.
func Permutations(d *hunspell.Dictionary, word string, limit int) []string {
	cfg := d.Config
	c := newCollector(d, word, limit)
	runes := []rune(word)
	n := len(runes)

	// 1. uppercase
	if c.try(casing.ToUpper(word, cfg.Lang)) {
		return c.out
	}

	// 2. REP replacements
	for _, rep := range cfg.Rep {
		for _, cand := range repCandidates(word, rep.From, rep.To, rep.AnchorStart, rep.AnchorEnd) {
			if c.try(cand) {
				return c.out
			}
		}
	}

	// 3. MAP substitutions
	for _, group := range cfg.Map {
		for i := range group {
			for j := range group {
				if i == j {
					continue
				}
				if strings.Contains(word, group[i]) {
					if c.try(strings.Replace(word, group[i], group[j], 1)) {
						return c.out
					}
				}
			}
		}
	}

	// 4. adjacent swap, plus a two-swap variant for 4-5 letter words
	for i := 0; i+1 < n; i++ {
		if c.try(swapRunes(runes, i, i+1)) {
			return c.out
		}
	}
	if n == 4 || n == 5 {
		if c.try(doubleAdjacentSwap(runes)) {
			return c.out
		}
	}

	// 5. KEY neighbor replacement, TRY single-char replacement
	for i := 0; i < n; i++ {
		for _, neighbor := range keyNeighbors(cfg.Key, runes[i]) {
			if c.try(replaceRune(runes, i, neighbor)) {
				return c.out
			}
		}
		for _, r := range cfg.Try {
			if c.try(replaceRune(runes, i, r)) {
				return c.out
			}
		}
	}

	// 6. delete one, delete adjacent-duplicate pair
	for i := 0; i < n; i++ {
		if c.try(deleteRune(runes, i)) {
			return c.out
		}
	}
	for i := 0; i+1 < n; i++ {
		if runes[i] == runes[i+1] {
			if c.try(string(append(append([]rune{}, runes[:i]...), runes[i+2:]...))) {
				return c.out
			}
		}
	}

	// 7. insert dash / space between every pair, both sides must be words
	if !cfg.NoSplitSugs {
		for i := 1; i < n; i++ {
			left, right := string(runes[:i]), string(runes[i:])
			if accept(d, left) && accept(d, right) {
				if c.try(left + " " + right) {
					return c.out
				}
				if c.try(left + "-" + right) {
					return c.out
				}
			}
		}
	}

	// 8. TRY-alphabet single-char insertion
	for i := 0; i <= n; i++ {
		for _, r := range cfg.Try {
			if c.try(insertRune(runes, i, r)) {
				return c.out
			}
		}
	}

	// 9. move one char to another position
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if c.try(moveRune(runes, i, j)) {
				return c.out
			}
		}
	}

	// 10. long-word (non-adjacent) swap
	if n >= 5 {
		for i := 0; i < n; i++ {
			for j := i + 2; j < n; j++ {
				if c.try(swapRunes(runes, i, j)) {
					return c.out
				}
			}
		}
	}

	return c.out
}

func repCandidates(word, from, to string, anchorStart, anchorEnd bool) []string {
	if from == "" {
		return nil
	}
	var out []string
	search := 0
	for {
		rel := strings.Index(word[search:], from)
		if rel < 0 {
			break
		}
		idx := search + rel
		end := idx + len(from)
		if (!anchorStart || idx == 0) && (!anchorEnd || end == len(word)) {
			out = append(out, word[:idx]+to+word[end:])
		}
		search = idx + 1
		if search > len(word) {
			break
		}
	}
	return out
}

func swapRunes(runes []rune, i, j int) string {
	out := append([]rune{}, runes...)
	out[i], out[j] = out[j], out[i]
	return string(out)
}

func doubleAdjacentSwap(runes []rune) string {
	if len(runes) < 4 {
		return ""
	}
	out := append([]rune{}, runes...)
	out[0], out[1] = out[1], out[0]
	out[len(out)-2], out[len(out)-1] = out[len(out)-1], out[len(out)-2]
	return string(out)
}

func replaceRune(runes []rune, i int, r rune) string {
	out := append([]rune{}, runes...)
	out[i] = r
	return string(out)
}

func deleteRune(runes []rune, i int) string {
	out := append([]rune{}, runes[:i]...)
	out = append(out, runes[i+1:]...)
	return string(out)
}

func insertRune(runes []rune, i int, r rune) string {
	out := append([]rune{}, runes[:i]...)
	out = append(out, r)
	out = append(out, runes[i:]...)
	return string(out)
}

func moveRune(runes []rune, from, to int) string {
	out := append([]rune{}, runes[:from]...)
	out = append(out, runes[from+1:]...)
	if to > from {
		to--
	}
	result := append([]rune{}, out[:to]...)
	result = append(result, runes[from])
	result = append(result, out[to:]...)
	return string(result)
}

// keyNeighbors returns the adjacent characters to r within whichever KEY
// group contains it (e.g. "asdf" -> 's' neighbors 'a' and 'd').
func keyNeighbors(groups []string, r rune) []rune {
	for _, g := range groups {
		gr := []rune(g)
		for i, c := range gr {
			if c != r {
				continue
			}
			var out []rune
			if i > 0 {
				out = append(out, gr[i-1])
			}
			if i+1 < len(gr) {
				out = append(out, gr[i+1])
			}
			return out
		}
	}
	return nil
}
