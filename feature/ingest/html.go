package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"shopzada-etl/core/table"

	"github.com/PuerkitoBio/goquery"
)

// LoadHTML extracts the first <table> of an HTML document. Header cells
// come from the first row (th or td); every following row becomes one table
// row. Documents without a table yield an error so the file is reported and
// skipped rather than landing an empty staging table silently.
func LoadHTML(data []byte) (*table.Table, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	sel := doc.Find("table").First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("no table found in html document")
	}

	rows := sel.Find("tr")
	if rows.Length() == 0 {
		return table.New(), nil
	}

	var header []string
	rows.First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		header = append(header, strings.TrimSpace(cell.Text()))
	})

	t := table.New(header...)
	rows.Slice(1, rows.Length()).Each(func(_ int, tr *goquery.Selection) {
		row := make(table.Row, len(header))
		cells := tr.Find("th, td")
		for i, col := range header {
			if i >= cells.Length() {
				row[col] = table.Null()
				continue
			}
			text := strings.TrimSpace(cells.Eq(i).Text())
			if text == "" {
				row[col] = table.Null()
			} else {
				row[col] = table.Scalar(text)
			}
		}
		t.Rows = append(t.Rows, row)
	})
	return t, nil
}
