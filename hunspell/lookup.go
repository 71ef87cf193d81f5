package hunspell

import (
	"unicode"

	"github.com/az-ai-labs/huncheck/casing"
	"github.com/az-ai-labs/huncheck/strutil"
)

// Lookup reports whether word is a correctly spelled word, implementing
// spec.md §4.4 steps 1-3: ICONV/IGNORE normalization, numeric short
// circuit, then the case-variant ladder, each tried via good_forms.
func (d *Dictionary) Lookup(word string, opts ...LookupOption) bool {
	o := defaultLookupOptions()
	for _, opt := range opts {
		opt(&o)
	}

	word = d.Config.ICONV.Rewrite(word)
	word = strutil.Ignore(d.Config.Ignore, word)
	if word == "" {
		return true
	}
	if isNumeric(word) {
		return true
	}

	captype := casing.Classify(word)
	variants := casing.Variants(word, captype, d.Config.Lang, d.Config.CheckSharps)
	if !o.Capitalization {
		variants = variants[:1]
	}

	for _, v := range variants {
		_, forbidden, ok := d.goodForms(v.Text, captype, v.Kind, o.AllowNoSuggest, o.AllowBreak)
		if forbidden {
			return false
		}
		if ok {
			return true
		}
	}
	return false
}

// isNumeric reports whether s is composed entirely of digits with
// internal separators (., ,, -, /), matching spec.md §4.4 step 1's
// "numeric grammar" short-circuit (e.g. dates, decimals, fractions).
func isNumeric(s string) bool {
	runes := []rune(s)
	sawDigit := false
	for i, r := range runes {
		switch {
		case unicode.IsDigit(r):
			sawDigit = true
		case r == '.' || r == ',' || r == '-' || r == '/':
			if i == 0 || i == len(runes)-1 {
				return false
			}
		default:
			return false
		}
	}
	return sawDigit
}

// goodForms implements spec.md §4.4 step 3: try affix_forms, then
// compound_forms, then BREAK, in that order, returning on the first
// accepting analysis. forbidden short-circuits the whole variant (and,
// via Lookup, causes an immediate false) per the FORBIDDENWORD rejection.
func (d *Dictionary) goodForms(word string, captype casing.Captype, variantKind casing.VariantKind, allowNoSuggest, allowBreak bool) (*Analysis, bool, bool) {
	if an, forbidden, ok := d.affixForms(word, captype, variantKind, allowNoSuggest, true); forbidden {
		return an, true, false
	} else if ok {
		return an, false, true
	}

	if d.Config.HasCompounding() {
		if an, ok := d.compoundForms(word, captype, allowNoSuggest); ok {
			return an, false, true
		}
	}

	if allowBreak && d.tryBreak(word, captype, variantKind, allowNoSuggest) {
		return &Analysis{Stem: word, Captype: captype, VariantKind: variantKind}, false, true
	}

	return nil, false, false
}
