package excel

import "strings"

// resultCol is the extra result-channel column some equipment revisions
// append past the fixed five; anything but "OK" there is treated as a
// failure before merging.
const resultCol = 5

// MergeRows collapses rows sharing the col0-col1-col2 key. Later non-empty
// cells overwrite earlier ones at the same index; empty cells never
// overwrite. Output keeps first-seen key order.
func MergeRows(rows [][]string) [][]string {
	grouped := make(map[string][]string, len(rows))
	order := make([]string, 0, len(rows))

	for _, src := range rows {
		row := append([]string(nil), src...)
		if len(row) > resultCol && row[resultCol] != "OK" {
			row[resultCol] = "NG"
		}

		key := strings.Join([]string{cell(row, 0), cell(row, 1), cell(row, 2)}, "-")
		existing, ok := grouped[key]
		if !ok {
			grouped[key] = row
			order = append(order, key)
			continue
		}
		for i, c := range row {
			if c == "" {
				continue
			}
			for len(existing) <= i {
				existing = append(existing, "")
			}
			existing[i] = c
		}
		grouped[key] = existing
	}

	out := make([][]string, 0, len(order))
	for _, key := range order {
		out = append(out, grouped[key])
	}
	return out
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
