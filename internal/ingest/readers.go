package ingest

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/standardbeagle/thar/internal/debug"
	tharerrors "github.com/standardbeagle/thar/internal/errors"
)

// ReadText reads one value per line. Blank lines and lines starting with #
// are skipped.
func ReadText(r io.Reader, opts Options) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if s := Clean(line, opts); s != "" {
			names = append(names, s)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// ReadCSV reads a delimited file with a header row. Values come from the
// opts.Column header (case-insensitive); when the header has no such column
// the first column is used.
func ReadCSV(r io.Reader, comma rune, opts Options) ([]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, tharerrors.NewInputError("read header", "", err)
	}

	col := columnIndex(header, opts.Column)
	debug.LogIngest("csv column %q -> index %d\n", opts.Column, col)

	var names []string
	line := 1
	for {
		record, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, tharerrors.NewInputError("read", "", err).WithLine(line)
		}
		if col >= len(record) {
			continue
		}
		if s := Clean(record[col], opts); s != "" {
			names = append(names, s)
		}
	}
	return names, nil
}

func columnIndex(header []string, name string) int {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return 0
	}
	for i, h := range header {
		// exports from spreadsheet tools often start with a BOM
		h = strings.TrimPrefix(h, "\ufeff")
		if strings.ToLower(strings.TrimSpace(h)) == want {
			return i
		}
	}
	return 0
}

// ReadSQLite runs opts.SQLiteQuery against the database at path and reads the
// first column of every row. NULL values are skipped.
func ReadSQLite(ctx context.Context, path string, opts Options) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, tharerrors.NewInputError("open", path, err)
	}
	if err := checkSQLiteHeader(path); err != nil {
		return nil, tharerrors.NewInputError("validate", path, err)
	}

	query := opts.SQLiteQuery
	if strings.TrimSpace(query) == "" {
		query = DefaultSQLiteQuery
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, tharerrors.NewInputError("open", path, err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, tharerrors.NewInputError("query", path, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, tharerrors.NewInputError("query", path, err)
	}
	if len(cols) == 0 {
		return nil, tharerrors.NewInputError("query", path, fmt.Errorf("query returns no columns"))
	}

	dest := make([]any, len(cols))
	var first sql.NullString
	dest[0] = &first
	for i := 1; i < len(dest); i++ {
		dest[i] = new(sql.RawBytes)
	}

	var names []string
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, tharerrors.NewInputError("scan", path, err)
		}
		if !first.Valid {
			continue
		}
		if s := Clean(first.String, opts); s != "" {
			names = append(names, s)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, tharerrors.NewInputError("query", path, err)
	}
	debug.LogIngest("%s: %d rows from %q\n", path, len(names), query)
	return names, nil
}
