// Package affconfig holds the fully parsed contents of a .aff file: flag
// syntax, alias tables, suggestion tables, compounding policy, and the
// special-meaning flags lookup and suggest consult (spec.md §3
// "AffConfig").
package affconfig

import (
	"github.com/az-ai-labs/huncheck/affix"
	"github.com/az-ai-labs/huncheck/flagset"
	"github.com/az-ai-labs/huncheck/phonet"
	"github.com/az-ai-labs/huncheck/strutil"
)

// RepRule is one REP table entry: replace From with To wherever it
// occurs (or, if anchored, only at the word boundary it names). "_" in the
// source file denotes a literal space; that translation happens in the
// loader, not here.
type RepRule struct {
	From        string
	To          string
	AnchorStart bool
	AnchorEnd   bool
}

// CompoundPattern is one CHECKCOMPOUNDPATTERN forbidden boundary pair.
type CompoundPattern struct {
	EndChars   string
	EndFlag    flagset.Flag
	BeginChars string
	BeginFlag  flagset.Flag
}

// Config is the complete parsed .aff settings object.
type Config struct {
	// Encoding is the declared charset of the .dic/.aff files (informational
	// here: callers are expected to hand huncheck already-decoded UTF-8).
	Encoding   string
	Lang       string // LANG value, e.g. "tr", "az", "de_DE".
	FlagSyntax flagset.Syntax

	// Alias tables (AF/AM) as read from the .aff file. The loader resolves
	// numeric .dic flag fields through FlagAliases; MorphAliases is only
	// recorded, and numeric AM references in .dic lines are not expanded.
	FlagAliases  [][]flagset.Flag
	MorphAliases [][]string

	// Suggestion tables.
	ICONV  *strutil.ConvTable
	OCONV  *strutil.ConvTable
	Ignore string
	Key    []string // KEY groups, e.g. []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}
	Try    string   // TRY alphabet, in preference order
	Rep    []RepRule
	Map    [][]string // MAP groups of interchangeable characters
	Phone  *phonet.Encoder

	// Suggestion flags/limits.
	NoSuggest      flagset.Flag
	NoSplitSugs    bool
	SugsWithDots   bool
	MaxCpdSugs     int
	MaxNGramSugs   int
	MaxDiff        int
	OnlyMaxDiff    bool
	ForbidWarn     bool
	Warn           flagset.Flag
	MaxSuggestions int

	// Compounding.
	Break               []strutil.BreakPattern
	CompoundRules       []*CompoundRule
	CompoundMin         int
	CompoundFlag        flagset.Flag
	CompoundBegin       flagset.Flag
	CompoundMiddle      flagset.Flag
	CompoundLast        flagset.Flag
	OnlyInCompound      flagset.Flag
	CompoundPermit      flagset.Flag
	CompoundForbid      flagset.Flag
	CompoundRoot        flagset.Flag
	CompoundWordMax     int
	CheckCompoundDup    bool
	CheckCompoundRep    bool
	CheckCompoundCase   bool
	CheckCompoundTriple bool
	SimplifiedTriple    bool
	CompoundPatterns    []CompoundPattern
	ForceUCase          flagset.Flag

	// Stemming.
	Circumfix       flagset.Flag
	NeedAffix       flagset.Flag
	ForbiddenWord   flagset.Flag
	KeepCase        flagset.Flag
	ComplexPrefixes bool
	FullStrip       bool
	CheckSharps     bool

	// Affix data, indexed for lookup.
	Prefixes map[flagset.Flag]*affix.Group
	Suffixes map[flagset.Flag]*affix.Group
	Index    *affix.Index
}

// DefaultMaxSuggestions is MAXSUGGESTIONS' default per spec.md §6.
const DefaultMaxSuggestions = 15

// DefaultMaxNGramSugs is MAXNGRAMSUGS' default per spec.md §4.6.
const DefaultMaxNGramSugs = 4

// DefaultMaxCpdSugs is MAXCPDSUGS' default.
const DefaultMaxCpdSugs = 3

// DefaultCompoundMin is COMPOUNDMIN's default.
const DefaultCompoundMin = 3

// New returns a Config with spec-mandated defaults applied; the loader
// overwrites fields as it parses directives.
func New() *Config {
	return &Config{
		FlagSyntax:      flagset.ASCII,
		MaxSuggestions:  DefaultMaxSuggestions,
		MaxNGramSugs:    DefaultMaxNGramSugs,
		MaxCpdSugs:      DefaultMaxCpdSugs,
		CompoundMin:     DefaultCompoundMin,
		CompoundWordMax: 0, // 0 means unlimited
		Prefixes:        make(map[flagset.Flag]*affix.Group),
		Suffixes:        make(map[flagset.Flag]*affix.Group),
	}
}

// HasCompounding reports whether any compounding mechanism is configured,
// per spec.md §4.4 step: "if any of COMPOUNDFLAG, COMPOUNDBEGIN,
// COMPOUNDRULE is set".
func (c *Config) HasCompounding() bool {
	return c.CompoundFlag != "" || c.CompoundBegin != "" || len(c.CompoundRules) > 0
}
