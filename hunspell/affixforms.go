package hunspell

import (
	"github.com/az-ai-labs/huncheck/affix"
	"github.com/az-ai-labs/huncheck/casing"
	"github.com/az-ai-labs/huncheck/dictionary"
)

// affixForms implements spec.md §4.4's affix_forms contract: try the word
// as-is, then every (prefix?, suffix?) decomposition, then prefix-of-prefix
// (COMPLEXPREFIXES) or suffix-of-suffix, in that fixed order. Returns the
// first accepting Analysis, or forbidden=true if a FORBIDDENWORD stem was
// encountered along the way.
func (d *Dictionary) affixForms(word string, captype casing.Captype, variantKind casing.VariantKind, allowNoSuggest, topLevel bool) (*Analysis, bool, bool) {
	cfg := d.Config

	if an, forbidden, ok := d.tryStem(word, nil, nil, captype, variantKind, topLevel, allowNoSuggest); forbidden {
		return an, true, false
	} else if ok {
		return an, false, true
	}

	for _, cand := range cfg.Index.Suffixes(word, cfg.FullStrip) {
		if an, forbidden, ok := d.tryStem(cand.Stem, nil, cand.Entry, captype, variantKind, topLevel, allowNoSuggest); forbidden {
			return an, true, false
		} else if ok {
			return an, false, true
		}
	}

	for _, cand := range cfg.Index.Prefixes(word, cfg.FullStrip) {
		if an, forbidden, ok := d.tryStem(cand.Stem, cand.Entry, nil, captype, variantKind, topLevel, allowNoSuggest); forbidden {
			return an, true, false
		} else if ok {
			return an, false, true
		}
	}

	for _, pc := range cfg.Index.Prefixes(word, cfg.FullStrip) {
		if !pc.Entry.CrossProduct {
			continue
		}
		for _, sc := range cfg.Index.Suffixes(pc.Stem, cfg.FullStrip) {
			if !sc.Entry.CrossProduct {
				continue
			}
			if an, forbidden, ok := d.tryStem(sc.Stem, pc.Entry, sc.Entry, captype, variantKind, topLevel, allowNoSuggest); forbidden {
				return an, true, false
			} else if ok {
				return an, false, true
			}
		}
	}

	if cfg.ComplexPrefixes {
		for _, pc1 := range cfg.Index.Prefixes(word, cfg.FullStrip) {
			for _, pc2 := range cfg.Index.Prefixes(pc1.Stem, cfg.FullStrip) {
				if !pc2.Entry.FlagsOnResult.Contains(pc1.Entry.Flag) {
					continue
				}
				if an, forbidden, ok := d.tryDoublePrefix(pc2.Stem, pc2.Entry, pc1.Entry, captype, variantKind, topLevel, allowNoSuggest); forbidden {
					return an, true, false
				} else if ok {
					return an, false, true
				}
			}
		}
	} else {
		for _, sc1 := range cfg.Index.Suffixes(word, cfg.FullStrip) {
			for _, sc2 := range cfg.Index.Suffixes(sc1.Stem, cfg.FullStrip) {
				if !sc2.Entry.FlagsOnResult.Contains(sc1.Entry.Flag) {
					continue
				}
				if an, forbidden, ok := d.tryDoubleSuffix(sc2.Stem, sc2.Entry, sc1.Entry, captype, variantKind, topLevel, allowNoSuggest); forbidden {
					return an, true, false
				} else if ok {
					return an, false, true
				}
			}
		}
	}

	return nil, false, false
}

// tryStem tests every homonym of stem against pfx/sfx's flag requirements
// and the acceptance rules, returning the first accepting Analysis.
func (d *Dictionary) tryStem(stem string, pfx, sfx *affix.Entry, captype casing.Captype, variantKind casing.VariantKind, topLevel, allowNoSuggest bool) (*Analysis, bool, bool) {
	cfg := d.Config
	for _, e := range d.Store.Lookup(stem) {
		if pfx != nil && !e.HasFlag(pfx.Flag) {
			continue
		}
		if sfx != nil && !e.HasFlag(sfx.Flag) {
			continue
		}
		if pfx != nil && sfx != nil && !(pfx.CrossProduct && sfx.CrossProduct) {
			continue
		}
		if e.HasFlag(cfg.ForbiddenWord) {
			return nil, true, false
		}
		if !d.acceptEntry(e, pfx, sfx, captype, variantKind, topLevel, allowNoSuggest) {
			continue
		}
		return &Analysis{Stem: stem, Prefix: pfx, Suffix: sfx, Captype: captype, VariantKind: variantKind, WordEntry: e}, false, true
	}
	return nil, false, false
}

// tryDoubleSuffix tests a suffix-of-suffix decomposition: stem must carry
// the innermost suffix's flag (sfx1), which must itself permit the outer
// suffix (sfx2) via its FlagsOnResult continuation class.
func (d *Dictionary) tryDoubleSuffix(stem string, sfx1, sfx2 *affix.Entry, captype casing.Captype, variantKind casing.VariantKind, topLevel, allowNoSuggest bool) (*Analysis, bool, bool) {
	cfg := d.Config
	for _, e := range d.Store.Lookup(stem) {
		if !e.HasFlag(sfx1.Flag) {
			continue
		}
		if e.HasFlag(cfg.ForbiddenWord) {
			return nil, true, false
		}
		if !d.acceptEntry(e, nil, sfx1, captype, variantKind, topLevel, allowNoSuggest) {
			continue
		}
		return &Analysis{Stem: stem, Suffix: sfx1, Suffix2: sfx2, Captype: captype, VariantKind: variantKind, WordEntry: e}, false, true
	}
	return nil, false, false
}

// tryDoublePrefix is tryDoubleSuffix's mirror for COMPLEXPREFIXES.
func (d *Dictionary) tryDoublePrefix(stem string, pfx1, pfx2 *affix.Entry, captype casing.Captype, variantKind casing.VariantKind, topLevel, allowNoSuggest bool) (*Analysis, bool, bool) {
	cfg := d.Config
	for _, e := range d.Store.Lookup(stem) {
		if !e.HasFlag(pfx1.Flag) {
			continue
		}
		if e.HasFlag(cfg.ForbiddenWord) {
			return nil, true, false
		}
		if !d.acceptEntry(e, pfx1, nil, captype, variantKind, topLevel, allowNoSuggest) {
			continue
		}
		return &Analysis{Stem: stem, Prefix: pfx1, Prefix2: pfx2, Captype: captype, VariantKind: variantKind, WordEntry: e}, false, true
	}
	return nil, false, false
}

// acceptEntry applies affix_forms' per-analysis rejection rules from
// spec.md §4.4, minus FORBIDDENWORD (handled earlier, since it aborts the
// whole variant rather than just this candidate).
func (d *Dictionary) acceptEntry(e *dictionary.WordEntry, pfx, sfx *affix.Entry, captype casing.Captype, variantKind casing.VariantKind, topLevel, allowNoSuggest bool) bool {
	cfg := d.Config

	if cfg.NeedAffix != "" && e.HasFlag(cfg.NeedAffix) && pfx == nil && sfx == nil {
		return false
	}
	if cfg.OnlyInCompound != "" && e.HasFlag(cfg.OnlyInCompound) && topLevel {
		return false
	}
	if !allowNoSuggest && cfg.NoSuggest != "" && e.HasFlag(cfg.NoSuggest) {
		return false
	}
	if cfg.KeepCase != "" && e.HasFlag(cfg.KeepCase) {
		if variantKind == casing.TitleCase {
			return false
		}
		if variantKind == casing.FullLower && captype == casing.ALL {
			return false
		}
	}
	if cfg.Circumfix != "" {
		sfxCircum := sfx != nil && sfx.FlagsOnResult.Contains(cfg.Circumfix)
		pfxCircum := pfx != nil && pfx.FlagsOnResult.Contains(cfg.Circumfix)
		if sfxCircum != pfxCircum {
			return false
		}
	}
	if cfg.Warn != "" && cfg.ForbidWarn && e.HasFlag(cfg.Warn) {
		return false
	}
	return true
}
