package rgbfeatures

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CSVHeader is the column header of the CSV output.
var CSVHeader = []string{"filename", "folder", "Blue", "Green", "Red", "Concentration_Label"}

// Export writes records to path, as SQLite for .db/.sqlite/.sqlite3 and as
// CSV for anything else.
func Export(path string, records []ImageRecord) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return SaveSQLite(path, records)
	default:
		return SaveCSV(path, records)
	}
}

// SaveCSV creates or truncates path and writes records to it as CSV.
func SaveCSV(path string, records []ImageRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}

// WriteCSV writes the header followed by one row per record. Means use the
// shortest form that round-trips and always carry a decimal point or an
// exponent ("10.0", "85.33333333333333", "5e-05"), so existing consumers of
// the pandas-written files see identical text. A missing label is an empty
// field.
func WriteCSV(w io.Writer, records []ImageRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Filename,
			r.Folder,
			formatMean(r.Blue),
			formatMean(r.Green),
			formatMean(r.Red),
			r.LabelString(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", r.RelPath(), err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

func formatMean(v float64) string {
	if v != 0 && math.Abs(v) < 1e-4 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
