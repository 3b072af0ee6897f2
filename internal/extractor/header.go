package extractor

import (
	"fmt"
	"strings"
)

const (
	headerScanRows  = 3
	headerThreshold = 0.5
)

// ScoreHeaderRow rates how much a row looks like a header in [0,1]. Header keywords and subject codes
// raise the score, cells shaped like student data (registration numbers, names, grades, marks) lower it.
func ScoreHeaderRow(cells []string) float64 {
	var nonEmpty, headerLike, dataLike int

	for _, c := range cells {
		c = normalizeCell(c)
		if c == "" {
			continue
		}
		nonEmpty++

		switch {
		case isHeaderLike(c):
			headerLike++
		case classifyValue(c) != ColumnUnknown:
			dataLike++
		}
	}

	if nonEmpty == 0 {
		return 0
	}

	score := (float64(headerLike) - 0.5*float64(dataLike)) / float64(nonEmpty)

	return clamp(score, 0, 1)
}

// FindHeaderRow scans the first three rows and returns the index of the best scoring one,
// or -1 if no row scores above the threshold.
func FindHeaderRow(rows [][]string) int {
	best, bestScore := -1, headerThreshold

	for i := 0; i < len(rows) && i < headerScanRows; i++ {
		if score := ScoreHeaderRow(rows[i]); score > bestScore {
			best, bestScore = i, score
		}
	}

	return best
}

// GenerateSmartHeaders labels columns by sniffing their values when the document has no usable header.
func GenerateSmartHeaders(rows [][]string) []string {
	width := maxWidth(rows)
	headers := make([]string, width)

	for col := range width {
		values := make([]string, 0, len(rows))
		for _, row := range rows {
			if col < len(row) {
				values = append(values, row[col])
			}
		}

		headers[col] = DetectColumnType(values).Label()
	}

	return dedupeHeaders(headers)
}

func normalizeHeaders(cells []string, width int) []string {
	headers := make([]string, max(width, len(cells)))
	for i := range headers {
		if i < len(cells) {
			headers[i] = normalizeCell(cells[i])
		}
	}

	return dedupeHeaders(headers)
}

// dedupeHeaders fills blanks with positional names and suffixes repeated labels so every header
// can be used as a map key. A suffixed name never takes a label that appears later in the row.
func dedupeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		if h == "" {
			h = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = h
	}

	reserved := make(map[string]bool, len(out))
	for _, h := range out {
		reserved[strings.ToLower(h)] = true
	}

	used := make(map[string]bool, len(out))
	for i, h := range out {
		name := h
		for n := 2; used[strings.ToLower(name)]; n++ {
			name = fmt.Sprintf("%s %d", h, n)
			if reserved[strings.ToLower(name)] {
				name = h
			}
		}

		used[strings.ToLower(name)] = true
		out[i] = name
	}

	return out
}

func maxWidth(rows [][]string) int {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	return width
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
