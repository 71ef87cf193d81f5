// Package hunspell implements lookup: deciding whether a word is valid
// against a loaded dictionary, by search over stems, prefixes/suffixes
// (possibly two levels deep), and compounding, threaded through flag-gated
// policies and casing rules.
package hunspell

import (
	"github.com/az-ai-labs/huncheck/affix"
	"github.com/az-ai-labs/huncheck/casing"
	"github.com/az-ai-labs/huncheck/dictionary"
	"github.com/az-ai-labs/huncheck/flagset"
)

// compoundRole names the position-dependent role a compound segment plays,
// used to pick which COMPOUNDBEGIN/MIDDLE/LAST flag it must carry.
type compoundRole int

const (
	roleBegin compoundRole = iota
	roleMiddle
	roleLast
)

// CompoundPart is one segment of a compound Analysis.
type CompoundPart struct {
	Text     string
	Analysis *Analysis
}

// Analysis is the proof that a word is valid: the stem found, the
// affixes applied to reach the surface form (up to two levels), or the
// compound parts if the word was accepted as a compound.
type Analysis struct {
	Stem     string
	Prefix   *affix.Entry
	Prefix2  *affix.Entry
	Suffix   *affix.Entry
	Suffix2  *affix.Entry

	CompoundParts []CompoundPart

	Captype     casing.Captype
	VariantKind casing.VariantKind
	WordEntry   *dictionary.WordEntry
}

// Flags returns the union of flags in effect for this analysis: the
// matched WordEntry's own flags plus every applied affix's FlagsOnResult
// (the continuation-class flags Hunspell uses to permit double affixation,
// compounding roles, and the other per-affix property flags).
func (a *Analysis) Flags() flagset.Set {
	out := flagset.New()
	if a.WordEntry != nil {
		a.WordEntry.Flags.Each(out.Add)
	}
	for _, e := range [...]*affix.Entry{a.Prefix, a.Prefix2, a.Suffix, a.Suffix2} {
		if e != nil {
			e.FlagsOnResult.Each(out.Add)
		}
	}
	for _, p := range a.CompoundParts {
		if p.Analysis != nil {
			p.Analysis.Flags().Each(out.Add)
		}
	}
	return out
}
