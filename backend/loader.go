package backend

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"git.sr.ht/~whereswaldon/stepchart/render"
)

// LoadCSV parses a category table. The header row names the category
// column followed by one column per series; every other row holds one
// category label and a value per series. Blank cells are gaps, not
// errors.
func LoadCSV(r io.Reader) (*render.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	return tableFromRecords(records)
}

// LoadXLSX reads the same table shape from the first sheet of a
// workbook.
func LoadXLSX(path string) (*render.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading workbook rows: %w", err)
	}
	return tableFromRecords(rows)
}

func tableFromRecords(records [][]string) (*render.Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("table has no header row")
	}
	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("table needs a category column and at least one series, got %d columns", len(header))
	}
	records = records[1:]

	categories := make([]string, len(records))
	cells := make([][]float64, len(records))
	for i, rec := range records {
		if len(rec) == 0 {
			return nil, fmt.Errorf("row %d is empty", i+2)
		}
		categories[i] = rec[0]
		vals := make([]float64, len(header)-1)
		for s := range vals {
			vals[s] = render.Absent
			if s+1 >= len(rec) {
				continue
			}
			cell := strings.TrimSpace(rec[s+1])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, series %q: parsing %q: %w", i+2, header[s+1], cell, err)
			}
			vals[s] = v
		}
		cells[i] = vals
	}

	t := render.NewTable(categories...)
	for s := 1; s < len(header); s++ {
		vals := make([]float64, len(records))
		for i := range records {
			vals[i] = cells[i][s-1]
		}
		t.AddSeries(header[s], vals...)
	}
	return t, nil
}
