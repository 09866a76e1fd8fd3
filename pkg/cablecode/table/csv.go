package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV reads a table whose first record is the header. A comma of 0
// detects ';' or ',' from the header line, since spreadsheet exports in
// decimal-comma locales use ';'.
func ReadCSV(r io.Reader, comma rune) (*Table, error) {
	br := bufio.NewReader(r)

	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, err
		}
	}

	if comma == 0 {
		comma = detectComma(br)
	}

	cr := csv.NewReader(br)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read csv: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	t := New(trimAll(header)...)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", t.Len()+1, err)
		}
		t.Append(rec...)
	}
	return t, nil
}

// WriteCSV writes the header and every row
func WriteCSV(w io.Writer, t *Table, comma rune) error {
	if comma == 0 {
		comma = ','
	}
	cw := csv.NewWriter(w)
	cw.Comma = comma

	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for r := range t.Rows {
		rec := make([]string, len(t.Columns))
		for c := range t.Columns {
			rec[c] = t.Cell(r, c)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func detectComma(br *bufio.Reader) rune {
	// Peek returns what is available even on a short read.
	line, _ := br.Peek(4096)
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

func trimAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
