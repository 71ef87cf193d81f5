package casing

import "testing"

func TestClassify(t *testing.T) {
	cases := map[string]Captype{
		"word":     NO,
		"Word":     INIT,
		"WORD":     ALL,
		"WoRd":     HUHINIT,
		"woRd":     HUH,
		"123":      NO,
		"":         NO,
		"McDonald": HUHINIT,
	}
	for in, want := range cases {
		if got := Classify(in); got != want {
			t.Errorf("Classify(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestVariantsOrderAllCap(t *testing.T) {
	vs := Variants("WORD", ALL, "en", false)
	if len(vs) < 2 {
		t.Fatalf("Variants = %v, want at least 2", vs)
	}
	if vs[0].Text != "WORD" || vs[0].Kind != Exact {
		t.Errorf("first variant = %+v, want exact WORD", vs[0])
	}
	foundLower := false
	for _, v := range vs {
		if v.Kind == FullLower && v.Text == "word" {
			foundLower = true
		}
	}
	if !foundLower {
		t.Errorf("Variants(%q) = %v, missing full-lower", "WORD", vs)
	}
}

func TestToLowerTurkish(t *testing.T) {
	got := ToLower("I", "tr")
	if got != "ı" {
		t.Errorf("ToLower(%q, tr) = %q, want %q", "I", got, "ı")
	}
}

func TestVariantsSharpS(t *testing.T) {
	vs := Variants("AUSSTOSS", ALL, "de", true)
	found := false
	for _, v := range vs {
		if v.Text == "AUSSTOß" {
			found = true
		}
	}
	if !found {
		t.Errorf("Variants(AUSSTOSS, checkSharps) = %v, missing ß swap", vs)
	}
}

func TestVariantsNoDuplicates(t *testing.T) {
	vs := Variants("word", NO, "en", false)
	if len(vs) != 1 {
		t.Errorf("Variants(%q, NO) = %v, want just the exact form", "word", vs)
	}
}
