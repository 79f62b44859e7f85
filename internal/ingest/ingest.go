// Package ingest reads raw surname lists from text files, CSV exports and
// voter roll SQLite databases.
package ingest

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/standardbeagle/thar/internal/debug"
	tharerrors "github.com/standardbeagle/thar/internal/errors"
)

// DefaultSQLiteQuery selects full names from the voter roll schema.
const DefaultSQLiteQuery = "SELECT name FROM voterdetails"

// DefaultColumn is the CSV header looked up when no column is configured.
const DefaultColumn = "surname"

// Options controls how raw values become surname strings.
type Options struct {
	Column         string // CSV header holding the value; falls back to the first column
	LastToken      bool   // keep only the last whitespace-separated token of each value
	FoldDiacritics bool   // strip combining marks (é -> e)
	SQLiteQuery    string // query whose first column is read
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Column:         DefaultColumn,
		FoldDiacritics: true,
		SQLiteQuery:    DefaultSQLiteQuery,
	}
}

// Expand resolves glob patterns (doublestar syntax, so rolls/**/*.csv works)
// to file paths. Plain paths pass through unchanged. A pattern matching no
// file is an error. The result keeps pattern order with duplicates removed.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}

	for _, pattern := range patterns {
		if !isGlob(pattern) {
			add(pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, tharerrors.NewInputError("expand", pattern, err)
		}
		if len(matches) == 0 {
			return nil, tharerrors.NewInputError("expand", pattern, fmt.Errorf("no files match"))
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}
	return paths, nil
}

func isGlob(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// ReadAll reads every path concurrently and concatenates the surnames in path
// order.
func ReadAll(ctx context.Context, paths []string, opts Options) ([]string, error) {
	results := make([][]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			names, err := ReadFile(ctx, path, opts)
			if err != nil {
				return err
			}
			results[i] = names
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]string, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}
	debug.LogIngest("read %d surnames from %d sources\n", len(all), len(paths))
	return all, nil
}

// ReadFile picks a reader from the file extension: .csv and .tsv are
// delimited, .db/.sqlite/.sqlite3 are SQLite, anything else is one surname
// per line.
func ReadFile(ctx context.Context, path string, opts Options) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return ReadSQLite(ctx, path, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, tharerrors.NewInputError("open", path, err)
	}
	defer f.Close()

	br := bufio.NewReaderSize(f, headerSize)
	if head, _ := br.Peek(headerSize); isBinaryData(head) {
		return nil, tharerrors.NewInputError("validate", path, errBinaryInput)
	}

	var names []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		names, err = ReadCSV(br, ',', opts)
	case ".tsv":
		names, err = ReadCSV(br, '\t', opts)
	default:
		names, err = ReadText(br, opts)
	}
	if err != nil {
		if inErr, ok := err.(*tharerrors.InputError); ok {
			inErr.Path = path
			return nil, inErr
		}
		return nil, tharerrors.NewInputError("read", path, err)
	}
	debug.LogIngest("%s: %d surnames\n", path, len(names))
	return names, nil
}

// Clean trims a raw value and applies the token and folding options. It may
// return "".
func Clean(raw string, opts Options) string {
	s := strings.TrimSpace(raw)
	if opts.LastToken {
		s = Surname(s)
	}
	if opts.FoldDiacritics {
		s = Fold(s)
	}
	return s
}

// Surname returns the last whitespace-separated token of a full name.
func Surname(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// Fold removes combining marks after canonical decomposition, turning
// "Gurung̃" or "Śarma" into plain Latin letters.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
