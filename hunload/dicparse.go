package hunload

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/az-ai-labs/huncheck/affconfig"
	"github.com/az-ai-labs/huncheck/dictionary"
	"github.com/az-ai-labs/huncheck/flagset"
)

// parseDic scans a .dic file: a first line giving an (approximate, per
// Hunspell convention) entry count, then one word per line as
// "stem[/flags] [morph...]". flags may be a literal flag string in cfg's
// syntax, or — if AF aliases are defined — a bare decimal index into
// cfg.FlagAliases (1-based, matching Hunspell's AF numbering).
func parseDic(cfg *affconfig.Config, text string, logger *zap.Logger) (*dictionary.Store, error) {
	store := dictionary.NewStore()
	lines := strings.Split(text, "\n")

	start := 0
	if len(lines) > 0 {
		if _, err := strconv.Atoi(strings.TrimSpace(stripComment(lines[0]))); err == nil {
			start = 1
		}
	}

	for i := start; i < len(lines); i++ {
		line := stripComment(lines[i])
		if line == "" {
			continue
		}
		entry, err := parseDicLine(cfg, line)
		if err != nil {
			if logger != nil {
				logger.Debug("skipping unparsable dictionary line", zap.Int("line", i+1), zap.Error(err))
			}
			continue
		}
		store.Add(entry)
	}

	return store, nil
}

func parseDicLine(cfg *affconfig.Config, line string) (*dictionary.WordEntry, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}

	stemField := fields[0]
	stem := stemField
	flags := flagset.New()

	if slash := strings.Index(stemField, "/"); slash >= 0 {
		stem = stemField[:slash]
		flagField := stemField[slash+1:]
		set, err := resolveFlagField(cfg, flagField)
		if err != nil {
			return nil, err
		}
		flags = set
	}

	entry := &dictionary.WordEntry{Stem: stem, Flags: flags}

	if len(fields) > 1 {
		entry.Morphology = make(map[string][]string)
		for _, tag := range fields[1:] {
			kv := strings.SplitN(tag, ":", 2)
			if len(kv) != 2 {
				continue
			}
			key, val := kv[0], kv[1]
			entry.Morphology[key] = append(entry.Morphology[key], val)
			if key == "ph" {
				entry.AltSpellings = append(entry.AltSpellings, val)
			}
		}
	}

	return entry, nil
}

// resolveFlagField interprets a .dic entry's flag field: either a literal
// flag string in cfg.FlagSyntax, or, when it's purely decimal and AF
// aliases were declared, the 1-based index into cfg.FlagAliases.
func resolveFlagField(cfg *affconfig.Config, field string) (flagset.Set, error) {
	if n, err := strconv.Atoi(field); err == nil && len(cfg.FlagAliases) > 0 {
		if n < 1 || n > len(cfg.FlagAliases) {
			return flagset.New(), nil
		}
		return flagset.NewFromSlice(cfg.FlagAliases[n-1]), nil
	}
	return flagset.ParseFlags(cfg.FlagSyntax, field)
}
