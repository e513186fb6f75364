// Command postcodec is a thin demonstration binary around the
// postcodec library: it reads plain-text posting rows, encodes them,
// optionally merges several encoded lists together, and prints a
// human-readable summary.
//
// It stands in for the "embedding boundary" mentioned in spec.md §1 —
// the host-language binding layer is explicitly out of scope for the
// core library, but something has to call it end to end, and this is
// that something.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/nilsson-labs/postcodec"
	"github.com/nilsson-labs/postcodec/internal/fingerprint"
	"github.com/nilsson-labs/postcodec/posting"
)

func main() {
	var (
		sortKeys     = pflag.StringP("sort-keys", "k", "", "sort-keys DSL, e.g. \"(-1, -0)\"; defaults to content_freq desc, doc_id desc")
		assumeSorted = pflag.BoolP("assume-sorted", "a", false, "treat input rows as already in the desired order")
		merge        = pflag.BoolP("merge", "m", false, "treat each input file as its own posting list and merge them")
		verbose      = pflag.BoolP("verbose", "v", false, "enable debug logging")
	)
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	files := pflag.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	if err := run(logger, files, *assumeSorted, *sortKeys, *merge); err != nil {
		logger.Fatal("postcodec failed", "error", err)
	}
}

func run(logger *log.Logger, files []string, assumeSorted bool, sortKeys string, doMerge bool) error {
	var encodedLists [][]byte

	for _, path := range files {
		postings, err := readPostings(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		logger.Debug("loaded postings", "path", path, "count", len(postings))

		encoded, err := postcodec.EncodePostingList(postings, assumeSorted, sortKeys)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", path, err)
		}

		logger.Info("encoded posting list", "path", path, "bytes", len(encoded), "fingerprint", fmt.Sprintf("%016x", fingerprint.Of(encoded)))
		encodedLists = append(encodedLists, encoded)
	}

	if !doMerge {
		return nil
	}

	merged, err := postcodec.MergePostingLists(encodedLists, sortKeys)
	if err != nil {
		return fmt.Errorf("merging: %w", err)
	}

	decoded, err := postcodec.DecodePostingList(merged)
	if err != nil {
		return fmt.Errorf("decoding merged result: %w", err)
	}

	logger.Info("merged posting list", "inputs", len(encodedLists), "bytes", len(merged), "postings", len(decoded), "fingerprint", fmt.Sprintf("%016x", fingerprint.Of(merged)))

	return nil
}

// readPostings parses lines of "doc_id,content_freq,title_freq" from
// path ("-" for stdin), skipping blank lines.
func readPostings(path string) ([]posting.Posting, error) {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}

	var postings []posting.Posting

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		ints := make([]int64, len(fields))
		for i, f := range fields {
			n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing %q: %w", line, err)
			}
			ints[i] = n
		}

		p, err := posting.FromInts(ints)
		if err != nil {
			return nil, err
		}

		postings = append(postings, p)
	}

	return postings, scanner.Err()
}
