package docgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode"

	"github.com/tidwall/gjson"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// XlsxMIME is the content type for .xlsx attachments.
const XlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheetName = "Relatório IA"

// BuildSpreadsheet renders a JSON array of flat objects as a styled
// worksheet: bold white-on-blue header row, 20-wide columns. Column order
// follows the key order of the generated JSON, which is why the rows are
// walked with gjson instead of decoded into Go maps.
func BuildSpreadsheet(data json.RawMessage) (*bytes.Buffer, error) {
	rows := gjson.ParseBytes(data).Array()
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows to write")
	}

	// Collect headers in first-seen order across all rows.
	var headers []string
	seen := map[string]bool{}
	for _, row := range rows {
		row.ForEach(func(key, _ gjson.Result) bool {
			name := key.String()
			if !seen[name] {
				seen[name] = true
				headers = append(headers, name)
			}
			return true
		})
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("rows have no columns")
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1E3A8A"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	colIndex := map[string]int{}
	for i, h := range headers {
		colIndex[h] = i + 1
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, RemoveAccents(h)); err != nil {
			return nil, err
		}
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, colName, colName, 20); err != nil {
			return nil, err
		}
	}

	lastHeaderCell, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeaderCell, headerStyle); err != nil {
		return nil, err
	}

	for r, row := range rows {
		var walkErr error
		row.ForEach(func(key, value gjson.Result) bool {
			cell, err := excelize.CoordinatesToCellName(colIndex[key.String()], r+2)
			if err != nil {
				walkErr = err
				return false
			}
			walkErr = f.SetCellValue(sheetName, cell, value.Value())
			return walkErr == nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to build spreadsheet: %w", err)
	}
	return &buf, nil
}

// RemoveAccents strips combining marks so header names stay readable in
// spreadsheet tooling that mangles non-ASCII ("Descrição" -> "Descricao").
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
