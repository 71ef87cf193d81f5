// Command hunspipe is a Hunspell "-a" pipe-mode driver: it loads a
// dictionary from a .aff/.dic base path and then, for each line of stdin,
// writes a Hunspell-compatible verdict line to stdout.
//
//	go run ./cmd/hunspipe -dict /usr/share/hunspell/en_US
//
// Output per input line follows Hunspell's own pipe protocol:
//
//	*                          word found as-is
//	& word N 0: s1, s2, ...    word misspelled, N suggestions follow
//	# word 0                   word misspelled, no suggestions
//
// A blank input line produces a blank output line (Hunspell's paragraph
// separator convention).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/az-ai-labs/huncheck/hunload"
	"github.com/az-ai-labs/huncheck/hunspell"
	"github.com/az-ai-labs/huncheck/suggest"
)

const maxSuggestionsShown = 15

func main() {
	dictPath := flag.String("dict", "", "base path to .aff/.dic pair (without extension)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hunspipe: logger init: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *dictPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: hunspipe -dict <path-without-extension>\n")
		os.Exit(1)
	}

	cfg, store, err := hunload.Load(*dictPath, logger)
	if err != nil {
		logger.Error("failed to load dictionary", zap.String("path", *dictPath), zap.Error(err))
		os.Exit(1)
	}
	dict := hunspell.NewDictionary(cfg, store)

	if err := run(dict, os.Stdin, os.Stdout); err != nil {
		logger.Error("pipe-mode run failed", zap.Error(err))
		os.Exit(1)
	}
}

// run drains in line by line, writing one verdict line per input line to
// out, until in is exhausted or a write fails.
func run(dict *hunspell.Dictionary, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	w := bufio.NewWriter(out)
	defer w.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			continue
		}
		if err := checkLine(dict, line, w); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func checkLine(dict *hunspell.Dictionary, word string, w *bufio.Writer) error {
	if dict.Lookup(word) {
		_, err := fmt.Fprintln(w, "*")
		return err
	}

	sugs := suggest.SuggestSlice(dict, word, maxSuggestionsShown)
	if len(sugs) == 0 {
		_, err := fmt.Fprintf(w, "# %s 0\n", word)
		return err
	}
	_, err := fmt.Fprintf(w, "& %s %d 0: %s\n", word, len(sugs), strings.Join(sugs, ", "))
	return err
}
