package hunload

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/az-ai-labs/huncheck/affconfig"
	"github.com/az-ai-labs/huncheck/dictionary"
)

// Load reads basePath+".aff" and basePath+".dic" from disk and parses them
// into a ready-to-use Config/Store pair, matching Hunspell's own
// single-base-path loading convention. logger may be nil, in which case
// non-fatal parse diagnostics are dropped rather than logged.
func Load(basePath string, logger *zap.Logger) (*affconfig.Config, *dictionary.Store, error) {
	affBytes, err := os.ReadFile(basePath + ".aff")
	if err != nil {
		return nil, nil, fmt.Errorf("hunload: reading %s.aff: %w", basePath, err)
	}
	dicBytes, err := os.ReadFile(basePath + ".dic")
	if err != nil {
		return nil, nil, fmt.Errorf("hunload: reading %s.dic: %w", basePath, err)
	}
	return LoadBytes(affBytes, dicBytes, logger)
}

// LoadBytes is Load's in-memory counterpart, for callers that already have
// the .aff/.dic contents (embedded assets, fetched dictionaries, tests).
func LoadBytes(aff, dic []byte, logger *zap.Logger) (*affconfig.Config, *dictionary.Store, error) {
	cfg := affconfig.New()
	p := newAffParser(cfg, logger)
	if err := p.parseAff(string(aff)); err != nil {
		return nil, nil, err
	}

	store, err := parseDic(cfg, string(dic), logger)
	if err != nil {
		return nil, nil, err
	}

	return cfg, store, nil
}
