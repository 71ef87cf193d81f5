package main

import (
	"strings"
	"testing"

	"github.com/az-ai-labs/huncheck/affconfig"
	"github.com/az-ai-labs/huncheck/affix"
	"github.com/az-ai-labs/huncheck/dictionary"
	"github.com/az-ai-labs/huncheck/flagset"
	"github.com/az-ai-labs/huncheck/hunspell"
)

func testDict(t *testing.T) *hunspell.Dictionary {
	t.Helper()
	cfg := affconfig.New()
	sfxS, err := affix.NewEntry("S", affix.Suffix, "", "s", ".", true, flagset.New(), nil)
	if err != nil {
		t.Fatalf("NewEntry: %v", err)
	}
	cfg.Index = affix.NewIndex([]*affix.Entry{sfxS})
	store := dictionary.NewStore()
	store.Add(&dictionary.WordEntry{Stem: "cat", Flags: flagset.NewFromSlice([]flagset.Flag{"S"})})
	store.Add(&dictionary.WordEntry{Stem: "dog", Flags: flagset.New()})
	return hunspell.NewDictionary(cfg, store)
}

func TestRunCorrectWord(t *testing.T) {
	d := testDict(t)
	var out strings.Builder
	if err := run(d, strings.NewReader("cat\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "*\n" {
		t.Errorf("output = %q, want %q", out.String(), "*\n")
	}
}

func TestRunMisspelledWordWithSuggestions(t *testing.T) {
	d := testDict(t)
	var out strings.Builder
	if err := run(d, strings.NewReader("catt\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "& catt ") {
		t.Errorf("output = %q, want prefix %q", out.String(), "& catt ")
	}
	if !strings.Contains(out.String(), "cat") {
		t.Errorf("output = %q, want it to contain a suggestion of cat", out.String())
	}
}

func TestRunBlankLine(t *testing.T) {
	d := testDict(t)
	var out strings.Builder
	if err := run(d, strings.NewReader("\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "\n" {
		t.Errorf("output = %q, want a single blank line", out.String())
	}
}
