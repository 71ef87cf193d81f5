package flagset

import "testing"

func TestParseFlagsASCII(t *testing.T) {
	set, err := ParseFlags(ASCII, "ABC")
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	for _, f := range []Flag{"A", "B", "C"} {
		if !set.Contains(f) {
			t.Errorf("set missing flag %q", f)
		}
	}
	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3", set.Len())
	}
}

func TestParseFlagsLong(t *testing.T) {
	set, err := ParseFlags(Long, "AaBb")
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if !set.Contains("Aa") || !set.Contains("Bb") {
		t.Errorf("set = %v, want {Aa, Bb}", set.Slice())
	}
}

func TestParseFlagsLongOddLength(t *testing.T) {
	if _, err := ParseFlags(Long, "AaB"); err == nil {
		t.Error("ParseFlags(Long, odd-length) = nil error, want error")
	}
}

func TestParseFlagsNum(t *testing.T) {
	set, err := ParseFlags(Num, "101,202,303")
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	for _, f := range []Flag{"101", "202", "303"} {
		if !set.Contains(f) {
			t.Errorf("set missing flag %q", f)
		}
	}
}

func TestParseFlagsNumInvalid(t *testing.T) {
	if _, err := ParseFlags(Num, "12,abc"); err == nil {
		t.Error("ParseFlags(Num, \"12,abc\") = nil error, want error")
	}
}

func TestParseFlagsEmpty(t *testing.T) {
	set, err := ParseFlags(ASCII, "")
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if !set.Empty() {
		t.Errorf("set = %v, want empty", set.Slice())
	}
}

func TestSetIntersects(t *testing.T) {
	a := NewFromSlice([]Flag{"A", "B"})
	b := NewFromSlice([]Flag{"B", "C"})
	c := NewFromSlice([]Flag{"X"})

	if !a.Intersects(b) {
		t.Error("a.Intersects(b) = false, want true")
	}
	if a.Intersects(c) {
		t.Error("a.Intersects(c) = true, want false")
	}
}

func TestSetUnion(t *testing.T) {
	a := NewFromSlice([]Flag{"A"})
	b := NewFromSlice([]Flag{"B"})
	u := a.Union(b)
	if u.Len() != 2 || !u.Contains("A") || !u.Contains("B") {
		t.Errorf("Union = %v, want {A, B}", u.Slice())
	}
}

func TestParseString(t *testing.T) {
	cases := map[string]Syntax{
		"":       ASCII,
		"long":   Long,
		"num":    Num,
		"UTF-8":  UTF8,
		"utf8":   UTF8,
		"garbly": ASCII,
	}
	for in, want := range cases {
		if got := ParseString(in); got != want {
			t.Errorf("ParseString(%q) = %v, want %v", in, got, want)
		}
	}
}
