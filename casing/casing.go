// Package casing classifies the case pattern of a word and enumerates the
// alternate-case variants that Hunspell's lookup tries in sequence.
//
// Most of the standard library's unicode/strings casing primitives are
// locale-blind, which is wrong for the Turkic dotted/dotless-I family
// (tr, az, crh): plain unicode.ToLower('I') yields 'i', but Azerbaijani and
// Turkish both require 'ı' (dotless). golang.org/x/text/cases ships the
// correct per-locale tables, so that is what backs the Turkish-family path
// here instead of a hand-rolled rune-swap table (the teacher's
// internal/azcase package hand-rolls exactly this swap for Azerbaijani
// alone; golang.org/x/text/cases generalizes it to every locale Hunspell
// dictionaries ship for, including tr and crh, from one table).
package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Captype classifies the capitalization pattern of a word, per spec.
type Captype int

const (
	// NO means no letter in the word is capitalized.
	NO Captype = iota
	// INIT means only the first letter is capitalized.
	INIT
	// ALL means every (non-neutral) letter is capitalized.
	ALL
	// HUHINIT means the first letter and at least one other letter are
	// capitalized, but not all letters (e.g. "McDonald").
	HUHINIT
	// HUH means some letter other than the first is capitalized, and the
	// first is not (e.g. "mcDonald").
	HUH
)

// turkicFamily lists the locale codes that use dotted/dotless-I casing.
var turkicFamily = map[string]language.Tag{
	"tr":  language.Turkish,
	"az":  language.Und, // x/text has no built-in az.Tag; fall back to Turkish rules.
	"crh": language.Und,
}

// caserFor returns the locale-appropriate case-folder for lower/upper/title
// conversions. Non-Turkic locales use language.Und, which x/text resolves
// to Unicode's default casing (equivalent to unicode.To{Lower,Upper,Title}).
func caserFor(locale string) (lower, upper, title cases.Caser) {
	tag := language.Und
	if t, ok := turkicFamily[locale]; ok && t != language.Und {
		tag = t
	} else if locale == "tr" || locale == "az" || locale == "crh" {
		tag = language.Turkish
	}
	return cases.Lower(tag), cases.Upper(tag), cases.Title(tag)
}

// ToLower returns the locale-aware lowercase form of s.
func ToLower(s, locale string) string {
	lower, _, _ := caserFor(locale)
	return lower.String(s)
}

// ToUpper returns the locale-aware uppercase form of s.
func ToUpper(s, locale string) string {
	_, upper, _ := caserFor(locale)
	return upper.String(s)
}

// ToTitle returns s with its first letter uppercased (locale-aware) and the
// remainder lowercased, matching Hunspell's definition of title case.
func ToTitle(s, locale string) string {
	if s == "" {
		return s
	}
	lower, _, _ := caserFor(locale)
	rest := lower.String(s)
	r, size := firstRune(rest)
	if r == 0 {
		return s
	}
	_, upper, _ := caserFor(locale)
	return upper.String(rest[:size]) + rest[size:]
}

func firstRune(s string) (rune, int) {
	for _, r := range s {
		return r, len(string(r))
	}
	return 0, 0
}

// Classify reports the Captype of s.
func Classify(s string) Captype {
	var hasUpper, hasLower bool
	firstUpper := false
	seenFirst := false
	otherUpper := false

	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		up := unicode.IsUpper(r)
		if !seenFirst {
			firstUpper = up
			seenFirst = true
		} else if up {
			otherUpper = true
		} else {
			hasLower = true
		}
		if up {
			hasUpper = true
		} else {
			hasLower = true
		}
	}

	if !seenFirst {
		return NO
	}
	if !hasUpper {
		return NO
	}
	if firstUpper {
		if otherUpper {
			if hasLower {
				return HUHINIT
			}
			return ALL
		}
		return INIT
	}
	// first letter is lowercase
	if otherUpper {
		return HUH
	}
	return NO
}

// Variant is one alternate spelling of a word tried against lookup, tagged
// with the rule that produced it so callers can apply the matching
// case-restoration policy (e.g. reject a title-case hit on a KEEPCASE stem).
type Variant struct {
	Text string
	Kind VariantKind
}

// VariantKind names which case-variant rule produced a Variant.
type VariantKind int

const (
	// Exact is the input unchanged.
	Exact VariantKind = iota
	// InitLower lowercases only the first letter (tried for INIT words).
	InitLower
	// FullLower lowercases the whole word (tried for ALL and INIT words).
	FullLower
	// TitleCase title-cases the whole word.
	TitleCase
	// SharpS replaces "ss" with "ß" (CHECKSHARPS).
	SharpS
	// SharpSReverse replaces "ß" with "ss" (CHECKSHARPS).
	SharpSReverse
)

// Variants enumerates the case-variants to try against lookup, in the fixed
// order spec.md §4.1 mandates: exact; init-lower (INIT only); full-lower
// (ALL and INIT); title-case; and, under checkSharps, the ß/ss swaps.
func Variants(s string, captype Captype, locale string, checkSharps bool) []Variant {
	out := []Variant{{Text: s, Kind: Exact}}

	switch captype {
	case INIT:
		r, size := firstRune(s)
		if size > 0 {
			lowered := ToLower(s[:size], locale) + s[size:]
			out = append(out, Variant{Text: lowered, Kind: InitLower})
		}
		_ = r
		out = append(out, Variant{Text: ToLower(s, locale), Kind: FullLower})
		out = append(out, Variant{Text: ToTitle(s, locale), Kind: TitleCase})
	case ALL:
		out = append(out, Variant{Text: ToLower(s, locale), Kind: FullLower})
		out = append(out, Variant{Text: ToTitle(s, locale), Kind: TitleCase})
	case HUHINIT, HUH:
		out = append(out, Variant{Text: ToTitle(s, locale), Kind: TitleCase})
	}

	if checkSharps {
		if strings.Contains(s, "ss") {
			out = append(out, Variant{Text: strings.ReplaceAll(s, "ss", "ß"), Kind: SharpS})
		}
		if strings.Contains(s, "SS") {
			out = append(out, Variant{Text: strings.ReplaceAll(s, "SS", "ß"), Kind: SharpS})
		}
		for i := 0; i+2 <= len(s); i++ {
			if s[i:i+2] == "ss" || s[i:i+2] == "SS" {
				out = append(out, Variant{Text: s[:i] + "ß" + s[i+2:], Kind: SharpS})
			}
		}
		if strings.Contains(s, "ß") {
			out = append(out, Variant{Text: strings.ReplaceAll(s, "ß", "ss"), Kind: SharpSReverse})
		}
	}

	return dedupVariants(out)
}

func dedupVariants(vs []Variant) []Variant {
	seen := make(map[string]struct{}, len(vs))
	out := vs[:0:0]
	for _, v := range vs {
		if _, ok := seen[v.Text]; ok {
			continue
		}
		seen[v.Text] = struct{}{}
		out = append(out, v)
	}
	return out
}
