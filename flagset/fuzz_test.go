package flagset

import "testing"

func FuzzParseFlags(f *testing.F) {
	f.Add(int(ASCII), "abc")
	f.Add(int(Long), "AaBb")
	f.Add(int(Num), "1,2,3")
	f.Add(int(UTF8), "gözəl")
	f.Add(int(ASCII), "")
	f.Add(int(Num), ",,,")

	f.Fuzz(func(t *testing.T, syntax int, s string) {
		// Must not panic on any input, including out-of-range syntax values.
		_, _ = ParseFlags(Syntax(syntax), s)
	})
}
