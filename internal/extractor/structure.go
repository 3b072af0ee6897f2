package extractor

import (
	"fmt"
	"math"

	"github.com/kurochkinivan/results_portal/internal/domain"
)

var methodConfidence = map[domain.ExtractionMethod]float64{
	domain.MethodCSV:        1.0,
	domain.MethodExcel:      1.0,
	domain.MethodStructured: 0.9,
	domain.MethodText:       0.75,
	domain.MethodOCR:        0.6,
}

const noHeaderPenalty = 0.1

type sourcedRow struct {
	cells  []string
	index  int
	source string
}

// Structure turns candidate tables into headers and keyed rows. Tables are read in order as one
// stream of rows so headers repeated on every page are recognized and dropped.
func Structure(tables []domain.Table, method domain.ExtractionMethod) (*domain.ExtractedResult, error) {
	rows := flatten(tables)
	if len(rows) == 0 {
		return nil, domain.ErrNoTableData
	}

	var (
		headers []string
		issues  []string
		data    []sourcedRow
	)

	headerIdx := FindHeaderRow(cellsOf(rows[:min(len(rows), headerScanRows)]))
	if headerIdx >= 0 {
		data = dropHeaderRows(rows[headerIdx+1:])
		headers = normalizeHeaders(rows[headerIdx].cells, maxWidth(cellsOf(data)))
	} else {
		data = dropHeaderRows(rows)
		headers = GenerateSmartHeaders(cellsOf(data))
		issues = append(issues, "no header row detected, column names were inferred from their values")
	}

	if len(data) == 0 {
		return nil, domain.ErrNoTableData
	}

	regCol := registrationColumn(headers)

	result := &domain.ExtractedResult{
		Headers: headers,
		Rows:    make([]domain.ResultRow, 0, len(data)),
	}

	withIssues := 0
	for _, r := range data {
		row := buildRow(r, headers, regCol)
		if len(row.Issues) > 0 {
			withIssues++
		}
		result.Rows = append(result.Rows, row)
	}

	if withIssues > 0 {
		issues = append(issues, fmt.Sprintf("%d of %d rows have issues", withIssues, len(data)))
	}

	result.Metadata = domain.ExtractionMetadata{
		Confidence:       confidence(method, withIssues, len(data), headerIdx >= 0),
		TotalRows:        len(result.Rows),
		ExtractionMethod: method,
		Issues:           issues,
	}

	return result, nil
}

func buildRow(r sourcedRow, headers []string, regCol int) domain.ResultRow {
	row := domain.ResultRow{
		Data:          make(map[string]string, len(headers)),
		Issues:        []string{},
		OriginalIndex: r.index,
		ColumnCount:   len(r.cells),
		Source:        r.source,
	}

	missing := 0
	for i, h := range headers {
		var v string
		if i < len(r.cells) {
			v = r.cells[i]
		}
		if v == "" {
			missing++
		}
		row.Data[h] = v
	}

	if len(r.cells) != len(headers) {
		row.Issues = append(row.Issues, fmt.Sprintf("column count mismatch: expected %d, found %d", len(headers), len(r.cells)))
	}

	if missing > 0 {
		row.Issues = append(row.Issues, fmt.Sprintf("missing values in %d column(s)", missing))
	}

	if regCol >= 0 {
		if v := row.Data[headers[regCol]]; v != "" && !IsRegistrationNumber(v) {
			row.Issues = append(row.Issues, fmt.Sprintf("unrecognized registration number %q", v))
		}
	}

	return row
}

func flatten(tables []domain.Table) []sourcedRow {
	var rows []sourcedRow

	index := 0
	for _, t := range tables {
		for _, raw := range t.Rows {
			cells := make([]string, len(raw))
			for i, c := range raw {
				cells[i] = normalizeCell(c)
			}

			for len(cells) > 0 && cells[len(cells)-1] == "" {
				cells = cells[:len(cells)-1]
			}

			if len(cells) > 0 {
				rows = append(rows, sourcedRow{cells: cells, index: index, source: t.Source})
			}
			index++
		}
	}

	return rows
}

func dropHeaderRows(rows []sourcedRow) []sourcedRow {
	out := make([]sourcedRow, 0, len(rows))
	for _, r := range rows {
		if ScoreHeaderRow(r.cells) > headerThreshold {
			continue
		}
		out = append(out, r)
	}
	return out
}

func registrationColumn(headers []string) int {
	for i, h := range headers {
		if reRegistrationHeader.MatchString(h) {
			return i
		}
	}
	return -1
}

func cellsOf(rows []sourcedRow) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = r.cells
	}
	return out
}

func confidence(method domain.ExtractionMethod, withIssues, total int, headerFound bool) float64 {
	base, ok := methodConfidence[method]
	if !ok {
		base = 0.5
	}

	c := base
	if total > 0 {
		c *= 1 - 0.5*float64(withIssues)/float64(total)
	}

	if !headerFound {
		c -= noHeaderPenalty
	}

	return math.Round(clamp(c, 0, 1)*100) / 100
}
