package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// headerSize is how much of an input is inspected before it is read.
const headerSize = 8 * 1024

// sqliteMagic starts every SQLite 3 database file.
var sqliteMagic = []byte("SQLite format 3\x00")

var errBinaryInput = errors.New("file appears to be binary, not text")

// checkSQLiteHeader rejects a non-empty file whose signature is not SQLite's.
// Empty files are left to the driver.
func checkSQLiteHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	header := make([]byte, len(sqliteMagic))
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return fmt.Errorf("failed to read header: %w", err)
	}
	if n == 0 {
		return nil
	}
	if !bytes.Equal(header[:n], sqliteMagic) {
		return fmt.Errorf("not a SQLite database (bad file signature)")
	}
	return nil
}

// isBinaryData reports whether more than 30% of data are control bytes other
// than tab, LF and CR.
func isBinaryData(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	nonPrintable := 0
	for _, b := range data {
		if b < 9 || (b > 13 && b < 32) || b == 127 {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(data)) > 0.3
}
