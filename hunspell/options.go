package hunspell

// LookupOptions tunes a single Lookup call, per spec.md §6.
type LookupOptions struct {
	// Capitalization enables trying the case-variant ladder (§4.1); when
	// false only the exact input is checked.
	Capitalization bool
	// AllowNoSuggest permits matching stems carrying NOSUGGEST. Suggest
	// calls Lookup internally with this false to keep NOSUGGEST entries
	// out of suggestion candidates while still allowing plain lookup to
	// see them.
	AllowNoSuggest bool
	// AllowBreak enables the BREAK fallback (§4.4 step 3).
	AllowBreak bool
}

// LookupOption mutates a LookupOptions value.
type LookupOption func(*LookupOptions)

func defaultLookupOptions() LookupOptions {
	return LookupOptions{Capitalization: true, AllowNoSuggest: true, AllowBreak: true}
}

// WithCapitalization toggles the case-variant ladder.
func WithCapitalization(v bool) LookupOption {
	return func(o *LookupOptions) { o.Capitalization = v }
}

// WithAllowNoSuggest toggles whether NOSUGGEST stems may satisfy lookup.
func WithAllowNoSuggest(v bool) LookupOption {
	return func(o *LookupOptions) { o.AllowNoSuggest = v }
}

// WithAllowBreak toggles the BREAK fallback.
func WithAllowBreak(v bool) LookupOption {
	return func(o *LookupOptions) { o.AllowBreak = v }
}
