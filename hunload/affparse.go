package hunload

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/az-ai-labs/huncheck/affconfig"
	"github.com/az-ai-labs/huncheck/affix"
	"github.com/az-ai-labs/huncheck/flagset"
	"github.com/az-ai-labs/huncheck/phonet"
	"github.com/az-ai-labs/huncheck/strutil"
)

// affParser accumulates state across the line-by-line .aff scan: most
// directives set a Config field directly, but affix/REP/MAP/BREAK/
// COMPOUNDRULE/CHECKCOMPOUNDPATTERN/PHONE/ICONV/OCONV are multi-line blocks
// that must be fully collected before they can be compiled or installed.
type affParser struct {
	cfg    *affconfig.Config
	logger *zap.Logger

	prefixEntries []*affix.Entry
	suffixEntries []*affix.Entry

	iconvEntries []strutil.ConvEntry
	oconvEntries []strutil.ConvEntry

	compoundRulePatterns []string
	phoneRules           []phonet.Rule

	flagSyntaxSeen bool
}

func newAffParser(cfg *affconfig.Config, logger *zap.Logger) *affParser {
	return &affParser{cfg: cfg, logger: logger}
}

// parseAff scans the full .aff text. It makes two passes over directive
// lines: the first only looks for FLAG (which must be known before any
// flag-valued directive, including AF/affix lines, can be parsed), the
// second does the real work.
func (p *affParser) parseAff(text string) error {
	lines := strings.Split(text, "\n")

	for _, raw := range lines {
		line := stripComment(raw)
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if strings.EqualFold(fields[0], "FLAG") && len(fields) >= 2 {
			p.cfg.FlagSyntax = flagset.ParseString(fields[1])
			p.flagSyntaxSeen = true
			break
		}
	}

	for i := 0; i < len(lines); i++ {
		line := stripComment(lines[i])
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		directive := strings.ToUpper(fields[0])

		consumed, err := p.dispatchBlock(directive, fields, lines, i)
		if err != nil {
			return &DictionaryLoadError{File: "aff", Line: i + 1, Text: line, Err: err}
		}
		if consumed > 0 {
			i += consumed
			continue
		}

		if err := p.dispatchScalar(directive, fields); err != nil {
			return &DictionaryLoadError{File: "aff", Line: i + 1, Text: line, Err: err}
		}
	}

	p.cfg.Prefixes = affix.GroupEntries(p.prefixEntries)
	p.cfg.Suffixes = affix.GroupEntries(p.suffixEntries)
	p.cfg.Index = affix.NewIndex(append(append([]*affix.Entry{}, p.prefixEntries...), p.suffixEntries...))
	if len(p.iconvEntries) > 0 {
		p.cfg.ICONV = strutil.CompileConv(p.iconvEntries)
	} else {
		p.cfg.ICONV = strutil.CompileConv(nil)
	}
	if len(p.oconvEntries) > 0 {
		p.cfg.OCONV = strutil.CompileConv(p.oconvEntries)
	} else {
		p.cfg.OCONV = strutil.CompileConv(nil)
	}
	if len(p.phoneRules) > 0 {
		p.cfg.Phone = phonet.Compile(p.phoneRules)
	}
	for _, pattern := range p.compoundRulePatterns {
		rule, err := affconfig.CompileCompoundRule(pattern, p.cfg.FlagSyntax)
		if err != nil {
			return err
		}
		p.cfg.CompoundRules = append(p.cfg.CompoundRules, rule)
	}

	return nil
}

func stripComment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func (p *affParser) parseFlag(s string) (flagset.Flag, error) {
	set, err := flagset.ParseFlags(p.cfg.FlagSyntax, s)
	if err != nil {
		return "", err
	}
	var first flagset.Flag
	set.Each(func(f flagset.Flag) {
		if first == "" {
			first = f
		}
	})
	return first, nil
}

// dispatchBlock handles directives that introduce a "count" line followed
// by that many detail lines (PFX/SFX/REP/MAP/BREAK/COMPOUNDRULE/
// CHECKCOMPOUNDPATTERN/PHONE/ICONV/OCONV). It returns how many following
// lines it consumed, or 0 if directive isn't a block directive at all.
func (p *affParser) dispatchBlock(directive string, fields, lines []string, i int) (int, error) {
	switch directive {
	case "PFX", "SFX":
		return p.parseAffixBlock(directive, fields, lines, i)
	case "REP":
		return p.parseCountedBlock(directive, fields, lines, i, p.parseRepLine)
	case "MAP":
		return p.parseCountedBlock(directive, fields, lines, i, p.parseMapLine)
	case "BREAK":
		return p.parseCountedBlock(directive, fields, lines, i, p.parseBreakLine)
	case "COMPOUNDRULE":
		return p.parseCountedBlock(directive, fields, lines, i, p.parseCompoundRuleLine)
	case "CHECKCOMPOUNDPATTERN":
		return p.parseCountedBlock(directive, fields, lines, i, p.parseCompoundPatternLine)
	case "PHONE":
		return p.parseCountedBlock(directive, fields, lines, i, p.parsePhoneLine)
	case "ICONV":
		return p.parseCountedBlock(directive, fields, lines, i, p.parseIconvLine)
	case "OCONV":
		return p.parseCountedBlock(directive, fields, lines, i, p.parseOconvLine)
	case "AF":
		return p.parseCountedBlock(directive, fields, lines, i, p.parseAfLine)
	case "AM":
		return p.parseCountedBlock(directive, fields, lines, i, p.parseAmLine)
	}
	return 0, nil
}

func (p *affParser) parseAfLine(f []string) error {
	if len(f) == 0 {
		return nil
	}
	set, err := flagset.ParseFlags(p.cfg.FlagSyntax, f[0])
	if err != nil {
		return err
	}
	p.cfg.FlagAliases = append(p.cfg.FlagAliases, set.Slice())
	return nil
}

func (p *affParser) parseAmLine(f []string) error {
	p.cfg.MorphAliases = append(p.cfg.MorphAliases, append([]string{}, f...))
	return nil
}

// parseCountedBlock is the shared "NAME count" + count detail lines shape.
// Each detail line repeats the directive keyword as its first token
// (matching PFX/SFX and every other Hunspell table directive), which this
// strips before handing the remaining fields to handle.
func (p *affParser) parseCountedBlock(directive string, fields, lines []string, i int, handle func(fields []string) error) (int, error) {
	if len(fields) < 2 {
		return 0, nil
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, nil // not actually a counted block (e.g. a single REP-style directive with no count)
	}
	consumed := 0
	for j := 1; j <= n && i+j < len(lines); j++ {
		detail := strings.Fields(stripComment(lines[i+j]))
		if len(detail) == 0 {
			continue
		}
		if strings.EqualFold(detail[0], directive) {
			detail = detail[1:]
		}
		if err := handle(detail); err != nil {
			return 0, err
		}
		consumed++
	}
	return consumed, nil
}

func (p *affParser) parseAffixBlock(directive string, header, lines []string, i int) (int, error) {
	if len(header) < 4 {
		return 0, nil
	}
	flag, err := p.parseFlag(header[1])
	if err != nil {
		return 0, err
	}
	crossProduct := strings.EqualFold(header[2], "Y")
	n, err := strconv.Atoi(header[3])
	if err != nil {
		return 0, err
	}

	kind := affix.Suffix
	if directive == "PFX" {
		kind = affix.Prefix
	}

	consumed := 0
	for j := 1; j <= n && i+j < len(lines); j++ {
		detail := strings.Fields(stripComment(lines[i+j]))
		if len(detail) < 5 {
			continue
		}
		strip := detail[2]
		if strip == "0" {
			strip = ""
		}
		addField := detail[3]
		add, flagsOnResult, morph := splitAffixAddField(addField, p.cfg.FlagSyntax)
		if add == "0" {
			add = ""
		}
		cond := detail[4]
		if cond == "0" {
			cond = "."
		}

		entry, err := affix.NewEntry(flag, kind, strip, add, cond, crossProduct, flagsOnResult, morph)
		if err != nil {
			if p.logger != nil {
				p.logger.Debug("skipping affix entry with uncompilable condition", zap.String("flag", string(flag)), zap.Error(err))
			}
			consumed++
			continue
		}
		if kind == affix.Prefix {
			p.prefixEntries = append(p.prefixEntries, entry)
		} else {
			p.suffixEntries = append(p.suffixEntries, entry)
		}
		consumed++
	}
	return consumed, nil
}

// splitAffixAddField splits an affix line's "add" field on "/" into the
// surface addition and its continuation-class flags (FlagsOnResult). The
// add field never carries "key:value" morphology tags, so the returned
// morph map is always nil.
func splitAffixAddField(field string, syntax flagset.Syntax) (add string, flagsOnResult flagset.Set, morph map[string]string) {
	flagsOnResult = flagset.New()
	parts := strings.SplitN(field, "/", 2)
	add = parts[0]
	if len(parts) == 2 {
		set, err := flagset.ParseFlags(syntax, parts[1])
		if err == nil {
			flagsOnResult = set
		}
	}
	return add, flagsOnResult, nil
}

func (p *affParser) parseRepLine(f []string) error {
	if len(f) < 2 {
		return nil
	}
	rule := affconfig.RepRule{From: unescapeUnderscoreSpace(f[0]), To: unescapeUnderscoreSpace(f[1])}
	if strings.HasPrefix(rule.From, "^") {
		rule.AnchorStart = true
		rule.From = rule.From[1:]
	}
	if strings.HasSuffix(rule.From, "$") {
		rule.AnchorEnd = true
		rule.From = rule.From[:len(rule.From)-1]
	}
	p.cfg.Rep = append(p.cfg.Rep, rule)
	return nil
}

func unescapeUnderscoreSpace(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

func (p *affParser) parseMapLine(f []string) error {
	if len(f) == 0 {
		return nil
	}
	p.cfg.Map = append(p.cfg.Map, splitMapGroup(f[0]))
	return nil
}

// splitMapGroup splits a MAP group into its members: "(ab)(cd)e" style
// parenthesized multi-character members, or else one member per rune.
func splitMapGroup(group string) []string {
	if !strings.Contains(group, "(") {
		var out []string
		for _, r := range group {
			out = append(out, string(r))
		}
		return out
	}
	var out []string
	var cur strings.Builder
	inParen := false
	for _, r := range group {
		switch {
		case r == '(':
			inParen = true
		case r == ')':
			inParen = false
			out = append(out, cur.String())
			cur.Reset()
		case inParen:
			cur.WriteRune(r)
		default:
			out = append(out, string(r))
		}
	}
	return out
}

func (p *affParser) parseBreakLine(f []string) error {
	if len(f) == 0 {
		return nil
	}
	pat := strutil.BreakPattern{Text: f[0]}
	if strings.HasPrefix(pat.Text, "^") {
		pat.AnchorStart = true
		pat.Text = pat.Text[1:]
	}
	if strings.HasSuffix(pat.Text, "$") {
		pat.AnchorEnd = true
		pat.Text = pat.Text[:len(pat.Text)-1]
	}
	p.cfg.Break = append(p.cfg.Break, pat)
	return nil
}

func (p *affParser) parseCompoundRuleLine(f []string) error {
	if len(f) == 0 {
		return nil
	}
	p.compoundRulePatterns = append(p.compoundRulePatterns, f[0])
	return nil
}

func (p *affParser) parseCompoundPatternLine(f []string) error {
	if len(f) < 2 {
		return nil
	}
	endChars, endFlag := splitCharsFlag(f[0])
	beginChars, beginFlag := splitCharsFlag(f[1])
	ef, _ := p.parseFlag(endFlag)
	bf, _ := p.parseFlag(beginFlag)
	p.cfg.CompoundPatterns = append(p.cfg.CompoundPatterns, affconfig.CompoundPattern{
		EndChars: endChars, EndFlag: ef, BeginChars: beginChars, BeginFlag: bf,
	})
	return nil
}

func splitCharsFlag(s string) (chars, flag string) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}

func (p *affParser) parsePhoneLine(f []string) error {
	if len(f) < 2 {
		return nil
	}
	pattern := f[0]
	replacement := f[1]
	if replacement == "_" {
		replacement = ""
	}
	rule := phonet.Rule{Pattern: pattern, Replacement: replacement}
	if strings.HasPrefix(rule.Pattern, "^") {
		rule.AnchorStart = true
		rule.Pattern = rule.Pattern[1:]
	}
	if strings.HasSuffix(rule.Pattern, "$") {
		rule.AnchorEnd = true
		rule.Pattern = rule.Pattern[:len(rule.Pattern)-1]
	}
	if strings.HasPrefix(rule.Pattern, "<") {
		rule.NotAfterVowel = true
		rule.Pattern = rule.Pattern[1:]
	}
	p.phoneRules = append(p.phoneRules, rule)
	return nil
}

func (p *affParser) parseIconvLine(f []string) error {
	if len(f) < 2 {
		return nil
	}
	p.iconvEntries = append(p.iconvEntries, strutil.ConvEntry{From: f[0], To: f[1]})
	return nil
}

func (p *affParser) parseOconvLine(f []string) error {
	if len(f) < 2 {
		return nil
	}
	p.oconvEntries = append(p.oconvEntries, strutil.ConvEntry{From: f[0], To: f[1]})
	return nil
}

// dispatchScalar handles every directive that is a single line setting one
// Config field: either a bare boolean flag, or "DIRECTIVE value".
func (p *affParser) dispatchScalar(directive string, fields []string) error {
	val := ""
	if len(fields) > 1 {
		val = fields[1]
	}

	flagVal := func() (flagset.Flag, error) { return p.parseFlag(val) }
	intVal := func() (int, error) { return strconv.Atoi(val) }

	switch directive {
	case "SET":
		p.cfg.Encoding = val
	case "LANG":
		p.cfg.Lang = val
	case "FLAG":
		// already handled in the pre-scan.
	case "TRY":
		p.cfg.Try = val
	case "KEY":
		p.cfg.Key = strings.Split(val, "|")
	case "IGNORE":
		p.cfg.Ignore = val
	case "WORDCHARS":
		// informational only; huncheck tokenizes by the caller's convention.
	case "NOSUGGEST":
		f, err := flagVal()
		if err != nil {
			return err
		}
		p.cfg.NoSuggest = f
	case "NOSPLITSUGS":
		p.cfg.NoSplitSugs = true
	case "SUGSWITHDOTS":
		p.cfg.SugsWithDots = true
	case "MAXCPDSUGS":
		n, err := intVal()
		if err != nil {
			return err
		}
		p.cfg.MaxCpdSugs = n
	case "MAXNGRAMSUGS":
		n, err := intVal()
		if err != nil {
			return err
		}
		p.cfg.MaxNGramSugs = n
	case "MAXDIFF":
		n, err := intVal()
		if err != nil {
			return err
		}
		p.cfg.MaxDiff = n
	case "ONLYMAXDIFF":
		p.cfg.OnlyMaxDiff = true
	case "MAXSUGGESTIONS":
		n, err := intVal()
		if err != nil {
			return err
		}
		p.cfg.MaxSuggestions = n
	case "FORBIDWARN":
		p.cfg.ForbidWarn = true
	case "WARN":
		f, err := flagVal()
		if err != nil {
			return err
		}
		p.cfg.Warn = f
	case "COMPOUNDMIN":
		n, err := intVal()
		if err != nil {
			return err
		}
		p.cfg.CompoundMin = n
	case "COMPOUNDWORDMAX":
		n, err := intVal()
		if err != nil {
			return err
		}
		p.cfg.CompoundWordMax = n
	case "COMPOUNDFLAG":
		f, err := flagVal()
		if err != nil {
			return err
		}
		p.cfg.CompoundFlag = f
	case "COMPOUNDBEGIN":
		f, err := flagVal()
		if err != nil {
			return err
		}
		p.cfg.CompoundBegin = f
	case "COMPOUNDMIDDLE":
		f, err := flagVal()
		if err != nil {
			return err
		}
		p.cfg.CompoundMiddle = f
	case "COMPOUNDLAST":
		f, err := flagVal()
		if err != nil {
			return err
		}
		p.cfg.CompoundLast = f
	case "ONLYINCOMPOUND":
		f, err := flagVal()
		if err != nil {
			return err
		}
		p.cfg.OnlyInCompound = f
	case "COMPOUNDPERMITFLAG":
		f, err := flagVal()
		if err != nil {
			return err
		}
		p.cfg.CompoundPermit = f
	case "COMPOUNDFORBIDFLAG":
		f, err := flagVal()
		if err != nil {
			return err
		}
		p.cfg.CompoundForbid = f
	case "COMPOUNDROOT":
		f, err := flagVal()
		if err != nil {
			return err
		}
		p.cfg.CompoundRoot = f
	case "CHECKCOMPOUNDDUP":
		p.cfg.CheckCompoundDup = true
	case "CHECKCOMPOUNDREP":
		p.cfg.CheckCompoundRep = true
	case "CHECKCOMPOUNDCASE":
		p.cfg.CheckCompoundCase = true
	case "CHECKCOMPOUNDTRIPLE":
		p.cfg.CheckCompoundTriple = true
	case "SIMPLIFIEDTRIPLE":
		p.cfg.SimplifiedTriple = true
	case "FORCEUCASE":
		f, err := flagVal()
		if err != nil {
			return err
		}
		p.cfg.ForceUCase = f
	case "CIRCUMFIX":
		f, err := flagVal()
		if err != nil {
			return err
		}
		p.cfg.Circumfix = f
	case "NEEDAFFIX", "PSEUDOROOT":
		f, err := flagVal()
		if err != nil {
			return err
		}
		p.cfg.NeedAffix = f
	case "FORBIDDENWORD":
		f, err := flagVal()
		if err != nil {
			return err
		}
		p.cfg.ForbiddenWord = f
	case "KEEPCASE":
		f, err := flagVal()
		if err != nil {
			return err
		}
		p.cfg.KeepCase = f
	case "COMPLEXPREFIXES":
		p.cfg.ComplexPrefixes = true
	case "FULLSTRIP":
		p.cfg.FullStrip = true
	case "CHECKSHARPS":
		p.cfg.CheckSharps = true
	case "AF", "AM":
		// Alias tables are expanded inline by dicparse as it reads each
		// word's flag field; nothing to do at the Config level beyond
		// recording them for diagnostics.
	default:
		if p.logger != nil {
			p.logger.Debug("unrecognized .aff directive", zap.String("directive", directive))
		}
	}
	return nil
}
