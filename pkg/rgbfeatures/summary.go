package rgbfeatures

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// FormatHead renders the first n records as a table with the CSV columns
// and a leading row index. It returns "" when n <= 0 or there are no records.
func FormatHead(records []ImageRecord, n int) string {
	if n <= 0 || len(records) == 0 {
		return ""
	}
	if n > len(records) {
		n = len(records)
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	header := table.Row{""}
	for _, col := range CSVHeader {
		header = append(header, col)
	}
	t.AppendHeader(header)
	for i, r := range records[:n] {
		t.AppendRow(table.Row{
			i,
			r.Filename,
			r.Folder,
			fmt.Sprintf("%.2f", r.Blue),
			fmt.Sprintf("%.2f", r.Green),
			fmt.Sprintf("%.2f", r.Red),
			r.LabelString(),
		})
	}
	return t.Render()
}
