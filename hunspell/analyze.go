package hunspell

import (
	"github.com/az-ai-labs/huncheck/casing"
	"github.com/az-ai-labs/huncheck/strutil"
)

// Analyze is Lookup's analysis-returning counterpart: it runs the same
// ICONV/IGNORE/numeric/case-variant pipeline (spec.md §4.4 steps 1-3) but
// hands back the accepting Analysis instead of discarding it, for callers
// that need more than a yes/no answer — chiefly suggest, which needs to
// know whether a candidate's acceptance came from compounding (to cap
// MAXCPDSUGS) and whether KEEPCASE forbids restoring the input's casing.
func (d *Dictionary) Analyze(word string, opts ...LookupOption) (*Analysis, bool) {
	o := defaultLookupOptions()
	for _, opt := range opts {
		opt(&o)
	}

	word = d.Config.ICONV.Rewrite(word)
	word = strutil.Ignore(d.Config.Ignore, word)
	if word == "" {
		return &Analysis{}, true
	}
	if isNumeric(word) {
		return &Analysis{Stem: word}, true
	}

	captype := casing.Classify(word)
	variants := casing.Variants(word, captype, d.Config.Lang, d.Config.CheckSharps)
	if !o.Capitalization {
		variants = variants[:1]
	}

	for _, v := range variants {
		an, forbidden, ok := d.goodForms(v.Text, captype, v.Kind, o.AllowNoSuggest, o.AllowBreak)
		if forbidden {
			return nil, false
		}
		if ok {
			return an, true
		}
	}
	return nil, false
}
