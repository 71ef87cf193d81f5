package affix

import "github.com/az-ai-labs/huncheck/flagset"

// GroupEntries buckets entries by flag into Groups, matching spec.md §3's
// "Affix Group": all entries sharing the same flag share its
// cross_product bit.
func GroupEntries(entries []*Entry) map[flagset.Flag]*Group {
	groups := make(map[flagset.Flag]*Group)
	for _, e := range entries {
		g, ok := groups[e.Flag]
		if !ok {
			g = &Group{Flag: e.Flag, Kind: e.Kind, CrossProduct: e.CrossProduct}
			groups[e.Flag] = g
		}
		g.Entries = append(g.Entries, e)
	}
	return groups
}
