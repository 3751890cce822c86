package excel

import (
	"bytes"
	"os"
	"regexp"
	"strings"

	"weldwatch/app/apperr"

	"github.com/xuri/excelize/v2"
)

// ReadParams pins the cell region the equipment writes results into.
type ReadParams struct {
	SheetName        string
	StartCell        string
	NumCols          int
	BlankRowsToCheck int
}

var (
	leadingNonDigits = regexp.MustCompile(`^[^\d]+`)
	trailingSuffix   = regexp.MustCompile(`(\d+)([^\d]+)$`)
	digitRun         = regexp.MustCompile(`\d+`)
)

// Extract walks the configured region of the named sheet and returns cleaned
// rows plus the raw file bytes (stored with the record so the original file
// can be reopened later). Cells use "" for absent values.
//
// Scanning stops after BlankRowsToCheck consecutive blank rows; any non-blank
// row resets the run. A row is dropped when either of its first two cells is
// empty or the second cell is the literal "NULL" the equipment writes for
// unused slots.
func Extract(path string, p ReadParams) ([][]string, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, apperr.IO("read spreadsheet "+path, err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, apperr.IO("open spreadsheet "+path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(p.SheetName)
	if err != nil || idx < 0 {
		return nil, nil, apperr.NotFound("sheet %s not found in %s", p.SheetName, path)
	}
	startCol, startRow, err := excelize.CellNameToCoordinates(p.StartCell)
	if err != nil {
		return nil, nil, apperr.Validation("bad start cell %q", p.StartCell)
	}

	var rows [][]string
	blankRun := 0
	for r := startRow; blankRun < p.BlankRowsToCheck; r++ {
		rowData := make([]string, 0, p.NumCols)
		blank := true
		for c := startCol; c < startCol+p.NumCols; c++ {
			name, _ := excelize.CoordinatesToCellName(c, r)
			v, _ := f.GetCellValue(p.SheetName, name)
			rowData = append(rowData, v)
			if v != "" {
				blank = false
			}
		}

		if !skipRow(rowData) {
			rows = append(rows, expandRow(rowData)...)
		}

		if blank {
			blankRun++
		} else {
			blankRun = 0
		}
	}
	return rows, raw, nil
}

func skipRow(row []string) bool {
	return row[0] == "" || row[1] == "" || row[1] == "NULL"
}

// expandRow applies the column-3 splitting rule. A hyphenated welding-point
// cell like "P1-3-5S" is a compact run sharing the non-digit prefix and
// suffix; it expands to one row per segment (P1S, P3S, P5S). A plain cell is
// just trimmed.
func expandRow(row []string) [][]string {
	point := row[2]
	if !strings.Contains(point, "-") {
		out := append([]string(nil), row...)
		out[2] = strings.TrimSpace(out[2])
		return [][]string{out}
	}

	suffixMatch := trailingSuffix.FindStringSubmatch(point)
	if suffixMatch == nil {
		return nil
	}
	prefix := leadingNonDigits.FindString(point)
	suffix := suffixMatch[2]

	var out [][]string
	for _, part := range strings.Split(point, "-") {
		digits := digitRun.FindString(part)
		if digits == "" {
			continue
		}
		derived := append([]string(nil), row...)
		derived[2] = strings.TrimSpace(prefix + digits + suffix)
		out = append(out, derived)
	}
	return out
}
