package strutil

import "testing"

func FuzzRewrite(f *testing.F) {
	f.Add("abc", "a", "1")
	f.Add("", "x", "y")
	f.Add("gözəl", "ö", "o")

	f.Fuzz(func(t *testing.T, s, from, to string) {
		table := CompileConv([]ConvEntry{{From: from, To: to}})
		// Must not panic regardless of input, including empty From.
		_ = table.Rewrite(s)
	})
}

func FuzzNGram(f *testing.F) {
	f.Add(3, "hello", "world")
	f.Add(0, "", "")
	f.Add(5, "a", "bbbbbbbbbb")

	f.Fuzz(func(t *testing.T, n int, s1, s2 string) {
		_ = NGram(n, s1, s2, NGramOptions{AnyMismatchPenalty: true, LongerWorse: true, Weighted: true})
	})
}
