// Package flagset implements Hunspell's flag encodings and the flag-set
// membership tests that gate affix and compound rules.
//
// A Flag is an opaque token: depending on the affix file's FLAG directive it
// is carried as a single ASCII character (the default), two ASCII characters
// ("long" syntax), a decimal integer ("num" syntax), or a single UTF-8 rune
// ("UTF-8" syntax). Whatever the encoding, once parsed a flag is just a
// comparable value — nothing downstream needs to know which syntax produced
// it.
package flagset

import (
	"fmt"
	"strconv"
	"strings"
)

// Flag is a parsed flag in its syntax-independent canonical form.
type Flag string

// Syntax identifies how flags are encoded in the affix file's FLAG option.
type Syntax int

// Recognized flag syntaxes, per the .aff FLAG directive.
const (
	ASCII Syntax = iota // default: one ASCII (or single-byte) character per flag
	Long                // FLAG long: two ASCII characters per flag
	Num                 // FLAG num: comma-separated decimal integers
	UTF8                // FLAG UTF-8: one UTF-8 rune per flag
)

// ParseString parses syntax from the literal value of a FLAG directive
// (e.g. "long", "num", "UTF-8"). An unrecognized or empty value yields
// ASCII, matching Hunspell's default.
func ParseString(s string) Syntax {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long":
		return Long
	case "num":
		return Num
	case "utf-8", "utf8":
		return UTF8
	default:
		return ASCII
	}
}

// ParseFlags splits s into its component flags according to syntax. s is
// the raw string found after a "/" in a .dic entry or inside an AF/PFX/SFX
// line. An empty s yields an empty, non-nil Set.
func ParseFlags(syntax Syntax, s string) (Set, error) {
	out := New()
	if s == "" {
		return out, nil
	}

	switch syntax {
	case Long:
		runes := []rune(s)
		if len(runes)%2 != 0 {
			return out, fmt.Errorf("flagset: long-syntax flag string %q has odd rune length", s)
		}
		for i := 0; i < len(runes); i += 2 {
			out.Add(Flag(string(runes[i : i+2])))
		}
	case Num:
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, err := strconv.Atoi(part); err != nil {
				return out, fmt.Errorf("flagset: invalid num flag %q: %w", part, err)
			}
			out.Add(Flag(part))
		}
	case UTF8, ASCII:
		for _, r := range s {
			out.Add(Flag(string(r)))
		}
	default:
		return out, fmt.Errorf("flagset: unknown syntax %d", syntax)
	}
	return out, nil
}

// String renders the flag in a human-readable form, used by diagnostics
// and tests; it is not guaranteed to round-trip through ParseFlags for
// every syntax (Num flags round-trip, ASCII/Long/UTF8 flags are just the
// original rune(s)).
func (f Flag) String() string {
	return string(f)
}
