// Package csv serializes the final record table as semicolon-delimited
// UTF-8 text.
package csv

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"sintagrab"
)

// Header is the exact column set of the export, in order. "No" is a
// 1-based sequential row index assigned after deduplication.
var Header = []string{"No", "Judul Artikel", "Tahun", "Authors", "Nama Jurnal", "Sinta", "DOI", "SourceFile"}

// Write serializes records to w with a semicolon field separator.
// Commas inside field values pass through unescaped since they are not
// the delimiter.
func Write(w io.Writer, records []sintagrab.Record) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(Header); err != nil {
		return err
	}
	for i, r := range records {
		row := []string{
			strconv.Itoa(i + 1),
			r.Title,
			r.Year,
			r.Authors,
			r.Journal,
			r.Tier,
			r.DOI,
			r.SourcePage,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the export to path, creating or truncating the file.
func WriteFile(path string, records []sintagrab.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
