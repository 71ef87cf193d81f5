package hunspell

import (
	"strings"
	"unicode"

	"github.com/az-ai-labs/huncheck/affix"
	"github.com/az-ai-labs/huncheck/casing"
	"github.com/az-ai-labs/huncheck/flagset"
)

// compoundForms implements spec.md §4.4's compound_forms contract:
// partition word into >=2 segments, each gated by flag role or
// COMPOUNDRULE, and validated against the additional compounding checks.
func (d *Dictionary) compoundForms(word string, captype casing.Captype, allowNoSuggest bool) (*Analysis, bool) {
	cfg := d.Config
	maxParts := cfg.CompoundWordMax
	if maxParts <= 0 {
		maxParts = len([]rune(word))
	}
	n := len([]rune(word))
	for k := 2; k <= maxParts; k++ {
		if parts := d.findCompoundSplit(word, nil, k, captype, allowNoSuggest); parts != nil {
			return &Analysis{Stem: word, CompoundParts: parts, Captype: captype}, true
		}
		if cfg.CompoundMin > 0 && k*cfg.CompoundMin >= n {
			break
		}
	}
	return nil, false
}

// findCompoundSplit searches split positions left to right, depth-first,
// for a partition of at most maxParts parts. compoundForms calls it with
// an increasing maxParts, so partitions with fewer parts are found first,
// per spec.md §4.4's ordering note.
func (d *Dictionary) findCompoundSplit(remaining string, prevParts []CompoundPart, maxParts int, captype casing.Captype, allowNoSuggest bool) []CompoundPart {
	cfg := d.Config
	runes := []rune(remaining)
	n := len(runes)

	if len(prevParts) >= 1 && n >= cfg.CompoundMin {
		if an, ok := d.analyzeCompoundSegment(remaining, roleLast, captype, allowNoSuggest); ok {
			parts := append(append([]CompoundPart{}, prevParts...), CompoundPart{Text: remaining, Analysis: an})
			if d.validateCompoundPartition(parts, captype) {
				return parts
			}
		}
	}

	if len(prevParts)+1 >= maxParts {
		return nil
	}

	role := roleMiddle
	if len(prevParts) == 0 {
		role = roleBegin
	}

	for i := cfg.CompoundMin; i <= n-cfg.CompoundMin; i++ {
		segment := string(runes[:i])
		rest := string(runes[i:])
		an, ok := d.analyzeCompoundSegment(segment, role, captype, allowNoSuggest)
		if !ok {
			continue
		}
		nextParts := append(append([]CompoundPart{}, prevParts...), CompoundPart{Text: segment, Analysis: an})
		if found := d.findCompoundSplit(rest, nextParts, maxParts, captype, allowNoSuggest); found != nil {
			return found
		}
	}
	return nil
}

// analyzeCompoundSegment runs affix_forms on segment (not top-level, so
// ONLYINCOMPOUND stems are admitted) and checks its role-flag gating,
// deferring entirely to COMPOUNDRULE matching when rules are configured.
func (d *Dictionary) analyzeCompoundSegment(segment string, role compoundRole, captype casing.Captype, allowNoSuggest bool) (*Analysis, bool) {
	an, forbidden, ok := d.affixForms(segment, captype, casing.Exact, allowNoSuggest, false)
	if forbidden || !ok {
		return nil, false
	}
	if !d.compoundAffixesPermitted(an) {
		return nil, false
	}
	if len(d.Config.CompoundRules) == 0 && !d.hasCompoundRole(an, role) {
		return nil, false
	}
	return an, true
}

func (d *Dictionary) hasCompoundRole(an *Analysis, role compoundRole) bool {
	cfg := d.Config
	flags := an.Flags()
	if cfg.CompoundFlag != "" && flags.Contains(cfg.CompoundFlag) {
		return true
	}
	switch role {
	case roleBegin:
		return cfg.CompoundBegin != "" && flags.Contains(cfg.CompoundBegin)
	case roleMiddle:
		return cfg.CompoundMiddle != "" && flags.Contains(cfg.CompoundMiddle)
	case roleLast:
		return cfg.CompoundLast != "" && flags.Contains(cfg.CompoundLast)
	}
	return false
}

// compoundAffixesPermitted applies spec.md §4.4's "affixes inside a
// compound are permitted only if the affix carries COMPOUNDPERMITFLAG;
// affixes carrying COMPOUNDFORBIDFLAG disqualify" rule to every affix
// applied within this segment's analysis.
func (d *Dictionary) compoundAffixesPermitted(an *Analysis) bool {
	cfg := d.Config
	for _, e := range [...]*affix.Entry{an.Prefix, an.Prefix2, an.Suffix, an.Suffix2} {
		if e == nil {
			continue
		}
		if cfg.CompoundForbid != "" && e.FlagsOnResult.Contains(cfg.CompoundForbid) {
			return false
		}
		if cfg.CompoundPermit != "" && !e.FlagsOnResult.Contains(cfg.CompoundPermit) {
			return false
		}
	}
	return true
}

// validateCompoundPartition applies spec.md §4.4's additional checks to a
// complete candidate partition: COMPOUNDRULE (if no by-flag role gating
// already passed), CHECKCOMPOUNDDUP/REP/CASE/TRIPLE, CHECKCOMPOUNDPATTERN,
// FORCEUCASE, and COMPOUNDROOT-at-most-once.
func (d *Dictionary) validateCompoundPartition(parts []CompoundPart, captype casing.Captype) bool {
	cfg := d.Config

	if len(cfg.CompoundRules) > 0 {
		segFlags := make([]flagset.Set, len(parts))
		for i, p := range parts {
			segFlags[i] = p.Analysis.Flags()
		}
		matched := false
		for _, rule := range cfg.CompoundRules {
			if rule.Matches(segFlags) {
				matched = true
				break
			}
		}
		if !matched {
			allRoled := true
			for i, p := range parts {
				role := roleMiddle
				if i == 0 {
					role = roleBegin
				}
				if i == len(parts)-1 {
					role = roleLast
				}
				if !d.hasCompoundRole(p.Analysis, role) {
					allRoled = false
					break
				}
			}
			if !allRoled {
				return false
			}
		}
	}

	if cfg.CheckCompoundDup {
		for i := 1; i < len(parts); i++ {
			if parts[i].Text == parts[i-1].Text {
				return false
			}
		}
	}

	if cfg.CheckCompoundRep {
		whole := joinParts(parts)
		for _, rep := range cfg.Rep {
			if candidate, ok := applyRepOnce(whole, rep.From, rep.To, rep.AnchorStart, rep.AnchorEnd); ok {
				if d.Lookup(candidate) {
					return false
				}
			}
		}
	}

	if cfg.CheckCompoundCase {
		for i := 1; i < len(parts); i++ {
			left := lastRune(parts[i-1].Text)
			right := firstRune(parts[i].Text)
			if unicode.IsUpper(left) || unicode.IsUpper(right) {
				return false
			}
		}
	}

	if cfg.CheckCompoundTriple {
		for i := 1; i < len(parts); i++ {
			if tripleAtBoundary(parts[i-1].Text, parts[i].Text) && !cfg.SimplifiedTriple {
				return false
			}
		}
	}

	for i := 1; i < len(parts); i++ {
		for _, pat := range cfg.CompoundPatterns {
			if !strings.HasSuffix(parts[i-1].Text, pat.EndChars) || !strings.HasPrefix(parts[i].Text, pat.BeginChars) {
				continue
			}
			if pat.EndFlag != "" && !parts[i-1].Analysis.Flags().Contains(pat.EndFlag) {
				continue
			}
			if pat.BeginFlag != "" && !parts[i].Analysis.Flags().Contains(pat.BeginFlag) {
				continue
			}
			return false
		}
	}

	if cfg.ForceUCase != "" {
		forced := false
		for _, p := range parts {
			if p.Analysis.Flags().Contains(cfg.ForceUCase) {
				forced = true
				break
			}
		}
		if forced && captype != casing.INIT && captype != casing.ALL {
			return false
		}
	}

	if cfg.CompoundRoot != "" {
		count := 0
		for _, p := range parts {
			if p.Analysis.Flags().Contains(cfg.CompoundRoot) {
				count++
			}
		}
		if count > 1 {
			return false
		}
	}

	return true
}

func joinParts(parts []CompoundPart) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// applyRepOnce replaces the first occurrence of from in whole that
// satisfies the anchor constraints, mirroring Hunspell's single-position
// REP application used by CHECKCOMPOUNDREP.
func applyRepOnce(whole, from, to string, anchorStart, anchorEnd bool) (string, bool) {
	if from == "" {
		return "", false
	}
	search := 0
	for {
		rel := strings.Index(whole[search:], from)
		if rel == -1 {
			return "", false
		}
		idx := search + rel
		end := idx + len(from)
		if (!anchorStart || idx == 0) && (!anchorEnd || end == len(whole)) {
			return whole[:idx] + to + whole[end:], true
		}
		search = idx + 1
		if search > len(whole) {
			return "", false
		}
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}

// tripleAtBoundary reports whether three identical runes span the
// boundary between left and right (CHECKCOMPOUNDTRIPLE).
func tripleAtBoundary(left, right string) bool {
	l := []rune(left)
	r := []rune(right)
	window := append(lastN(l, 2), firstN(r, 2)...)
	for i := 0; i+2 < len(window); i++ {
		if window[i] == window[i+1] && window[i+1] == window[i+2] {
			return true
		}
	}
	return false
}

func lastN(r []rune, n int) []rune {
	if len(r) < n {
		return append([]rune{}, r...)
	}
	return append([]rune{}, r[len(r)-n:]...)
}

func firstN(r []rune, n int) []rune {
	if len(r) < n {
		return r
	}
	return r[:n]
}
