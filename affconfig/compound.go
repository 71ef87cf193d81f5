package affconfig

import (
	"fmt"
	"strings"

	"github.com/coregx/coregex"

	"github.com/az-ai-labs/huncheck/flagset"
)

// CompoundRule is one COMPOUNDRULE pattern: a regular expression over flag
// sequences (syntax "flag*", "flag?", "(flag)", alternation — spec.md §3).
// Each flag in the source pattern is mapped to a private-use-area rune so
// the pattern can be compiled with an ordinary regex engine: flags are
// multi-character tokens, but regex engines match rune-by-rune, so a
// sequence of flags is encoded as a string of single runes before
// compilation and matching.
type CompoundRule struct {
	Source string
	re     *coregex.Regex
	encode map[flagset.Flag]rune
}

// compoundRuleTokenBase is the first private-use-area codepoint used to
// represent a flag as a single matchable rune (U+E000, start of the BMP
// Private Use Area, so it can never collide with a real dictionary flag
// expressed in UTF-8 syntax).
const compoundRuleTokenBase = 0xE000

// CompileCompoundRule parses a COMPOUNDRULE pattern into a CompoundRule.
// pattern is the raw directive value, e.g. "A*B?(C|D)"; syntax controls
// how multi-character flag tokens are recognized within it.
func CompileCompoundRule(pattern string, syntax flagset.Syntax) (*CompoundRule, error) {
	cr := &CompoundRule{Source: pattern, encode: make(map[flagset.Flag]rune)}
	regexSrc, err := cr.translate(pattern, syntax)
	if err != nil {
		return nil, err
	}
	// Anchor at compile time: Matches needs a whole-sequence match, not a
	// substring search, so ^...$ must be part of the compiled pattern
	// itself rather than literal characters added to the text at match
	// time (coregex.MatchString, like stdlib regexp, finds anywhere).
	re, err := coregex.Compile("^(?:" + regexSrc + ")$")
	if err != nil {
		return nil, fmt.Errorf("affconfig: compiling COMPOUNDRULE %q: %w", pattern, err)
	}
	cr.re = re
	return cr, nil
}

// translate walks pattern left to right, copying regex metacharacters
// (*, ?, (, ), |) through unchanged and mapping every flag token to its
// assigned private-use rune.
func (cr *CompoundRule) translate(pattern string, syntax flagset.Syntax) (string, error) {
	var b strings.Builder
	runes := []rune(pattern)
	next := rune(compoundRuleTokenBase)

	tokenLen := 1
	if syntax == flagset.Long {
		tokenLen = 2
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		switch r {
		case '*', '?', '(', ')', '|':
			b.WriteRune(r)
			i++
			continue
		}
		if syntax == flagset.Num {
			j := i
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			if j == i {
				i++
				continue
			}
			flag := flagset.Flag(string(runes[i:j]))
			b.WriteRune(cr.tokenFor(flag, &next))
			i = j
			continue
		}
		end := i + tokenLen
		if end > len(runes) {
			end = len(runes)
		}
		flag := flagset.Flag(string(runes[i:end]))
		b.WriteRune(cr.tokenFor(flag, &next))
		i = end
	}
	return b.String(), nil
}

func (cr *CompoundRule) tokenFor(flag flagset.Flag, next *rune) rune {
	if r, ok := cr.encode[flag]; ok {
		return r
	}
	r := *next
	cr.encode[flag] = r
	*next++
	return r
}

// Matches reports whether the ordered sequence of per-segment stem flags
// satisfies the rule: each segment contributes every flag its stem and
// applied affixes carry, and the rule matches if some combination of one
// flag per segment, read in order, matches the compiled pattern.
func (cr *CompoundRule) Matches(segmentFlags []flagset.Set) bool {
	return cr.matchRec(segmentFlags, 0, "")
}

// matchRec expands segmentFlags into every encodable flag string and tests
// each against the compiled pattern; dictionaries have at most a handful
// of flags per segment and compounds are short, so this stays cheap.
func (cr *CompoundRule) matchRec(segmentFlags []flagset.Set, i int, prefix string) bool {
	if i == len(segmentFlags) {
		return cr.re.MatchString(prefix)
	}
	matched := false
	segmentFlags[i].Each(func(f flagset.Flag) {
		if matched {
			return
		}
		if r, ok := cr.encode[f]; ok {
			if cr.matchRec(segmentFlags, i+1, prefix+string(r)) {
				matched = true
			}
		}
	})
	return matched
}
