package hunspell

import (
	"github.com/az-ai-labs/huncheck/casing"
	"github.com/az-ai-labs/huncheck/strutil"
)

// tryBreak attempts spec.md §4.4 step 3's BREAK fallback: splitting word
// on a configured BREAK pattern such that both sides are themselves
// lookup-valid, recursing up to strutil.DefaultBreakDepth.
func (d *Dictionary) tryBreak(word string, captype casing.Captype, variantKind casing.VariantKind, allowNoSuggest bool) bool {
	if len(d.Config.Break) == 0 {
		return false
	}
	isWord := func(s string) bool {
		return d.Lookup(s, WithAllowNoSuggest(allowNoSuggest), WithAllowBreak(false))
	}
	return strutil.Break(d.Config.Break, word, isWord)
}
