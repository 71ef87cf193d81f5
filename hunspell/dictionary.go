package hunspell

import (
	"github.com/az-ai-labs/huncheck/affconfig"
	"github.com/az-ai-labs/huncheck/dictionary"
)

// Dictionary bundles a loaded AffConfig with its Dictionary Store: the
// complete, immutable input to lookup and suggest (spec.md §3 Lifecycle,
// §5 Concurrency — built once, read by any number of concurrent callers).
type Dictionary struct {
	Config *affconfig.Config
	Store  *dictionary.Store
}

// NewDictionary bundles cfg and store into a Dictionary. Callers are
// expected to have finished populating both before any concurrent use;
// huncheck itself never mutates either afterward.
func NewDictionary(cfg *affconfig.Config, store *dictionary.Store) *Dictionary {
	return &Dictionary{Config: cfg, Store: store}
}
