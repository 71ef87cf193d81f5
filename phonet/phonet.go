// Package phonet implements Hunspell's PHONE-table metaphone-style
// encoder, used by suggest's phonetic similarity scan (spec.md §4.7).
//
// A PHONE table is an ordered list of rules of the form
// "pattern replacement", where pattern may use "^"/"$" anchors and "<" to
// mean "not preceded by a vowel". Digits in a pattern are not interpreted
// as context markers: they are matched as literal characters. Rules are
// tried in file order at every position of the input; the first matching rule's
// replacement (which may be empty, deleting the matched text) is applied
// and scanning resumes after the consumed text.
package phonet

import "strings"

// Rule is one compiled PHONE rule.
type Rule struct {
	Pattern     string
	Replacement string
	AnchorStart bool
	AnchorEnd   bool
	// NotAfterVowel corresponds to the "<" marker: the rule only applies
	// when the matched text is not immediately preceded by a vowel.
	NotAfterVowel bool
	// Priority is stored with the rule but not consulted by Encode, which
	// tries rules strictly in file order.
	Priority int
}

// Encoder holds a compiled PHONE table.
type Encoder struct {
	rules []Rule
}

// Compile builds an Encoder from rules in file order.
func Compile(rules []Rule) *Encoder {
	return &Encoder{rules: append([]Rule(nil), rules...)}
}

// vowels is the default Latin vowel set consulted for NotAfterVowel rules.
// Dictionaries with non-Latin alphabets should rely on rules that don't
// use "<", since Hunspell's own PHONE tables are Latin-script only.
const vowels = "AEIOUaeiou"

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

// Encode returns the phonetic code for word by applying the compiled rule
// table left to right, matching Hunspell's PHONET algorithm: at each
// position, the first rule (in file order) whose pattern matches
// is applied, its replacement appended to the output, and scanning resumes
// after the consumed run; unmatched runes pass through verbatim.
func (e *Encoder) Encode(word string) string {
	if e == nil || len(e.rules) == 0 {
		return word
	}
	runes := []rune(word)
	var out strings.Builder
	out.Grow(len(word))

	for i := 0; i < len(runes); {
		rule, n := e.matchAt(runes, i)
		if rule == nil {
			out.WriteRune(runes[i])
			i++
			continue
		}
		out.WriteString(rule.Replacement)
		if n == 0 {
			n = 1 // guarantee forward progress on zero-width patterns
		}
		i += n
	}
	return out.String()
}

func (e *Encoder) matchAt(runes []rune, i int) (*Rule, int) {
	for idx := range e.rules {
		r := &e.rules[idx]
		if r.AnchorStart && i != 0 {
			continue
		}
		pr := []rune(r.Pattern)
		if i+len(pr) > len(runes) {
			continue
		}
		if r.AnchorEnd && i+len(pr) != len(runes) {
			continue
		}
		matched := true
		for j, pc := range pr {
			if runes[i+j] != pc {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if r.NotAfterVowel && i > 0 && isVowel(runes[i-1]) {
			continue
		}
		return r, len(pr)
	}
	return nil, 0
}
