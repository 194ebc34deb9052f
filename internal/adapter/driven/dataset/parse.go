package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/diillson/payments-dashboard-go/internal/domain/analytics"
	"github.com/diillson/payments-dashboard-go/internal/domain/entity"
	"github.com/diillson/payments-dashboard-go/internal/shared/types"
	"github.com/extrame/xls"
)

// cellStats counts metric cells that will normalize to 0 without being a literal zero.
type cellStats struct {
	blank     int
	malformed int
}

func readDelimited(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xEF\xBB\xBF"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// maxWorkbookColumns is the column limit of the BIFF8 format.
const maxWorkbookColumns = 256

func readWorkbook(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "cp1252")
	if err != nil {
		return nil, fmt.Errorf("error creating workbook: %w", err)
	}
	if workbook == nil {
		return nil, fmt.Errorf("no workbook stream found")
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("no sheet found in workbook")
	}

	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheetRow(sheet, i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}

		// Rows written without a ROW record report no column bounds.
		width := row.LastCol()
		if width == 0 {
			width = maxWorkbookColumns
		}
		cells := make([]string, width)
		for c := row.FirstCol(); c < width; c++ {
			cells[c] = row.Col(c)
		}
		for len(cells) > 0 && cells[len(cells)-1] == "" {
			cells = cells[:len(cells)-1]
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// sheetRow returns row i, or nil when the sheet holds nothing at that index.
// WorkSheet.Row dereferences a missing row instead of returning nil.
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

// cleanCell trims whitespace and one pair of surrounding double quotes.
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if cleanCell(cell) != "" {
			return false
		}
	}
	return true
}

// buildDataset maps raw rows to records by header name. The first non-blank row is the
// header; both classification columns must be present. Unknown columns are ignored and
// missing metric cells read as empty text.
func buildDataset(rows [][]string) (entity.Dataset, cellStats, error) {
	var stats cellStats

	start := 0
	for start < len(rows) && blankRow(rows[start]) {
		start++
	}
	if start == len(rows) {
		return entity.Dataset{}, stats, fmt.Errorf("%w: %s", types.ErrMissingColumn, entity.CategoryColumn)
	}

	index := make(map[string]int)
	for i, name := range rows[start] {
		name = strings.TrimPrefix(cleanCell(name), "\uFEFF")
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, required := range []string{entity.CategoryColumn, entity.SubCategoryColumn} {
		if _, ok := index[required]; !ok {
			return entity.Dataset{}, stats, fmt.Errorf("%w: %s", types.ErrMissingColumn, required)
		}
	}

	cell := func(row []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		return cleanCell(row[i])
	}

	keys := entity.MetricKeys()
	records := make([]entity.Record, 0, len(rows)-start-1)
	for _, row := range rows[start+1:] {
		if blankRow(row) {
			continue
		}
		rec := entity.Record{
			Category:    cell(row, entity.CategoryColumn),
			SubCategory: cell(row, entity.SubCategoryColumn),
			Metrics:     make(map[entity.PeriodMetricKey]string, len(keys)),
		}
		for _, key := range keys {
			raw := cell(row, key.Column())
			rec.Metrics[key] = raw
			switch _, clean := analytics.NormalizeChecked(raw); {
			case raw == "":
				stats.blank++
			case !clean:
				stats.malformed++
			}
		}
		records = append(records, rec)
	}

	return entity.Dataset{Records: records}, stats, nil
}
