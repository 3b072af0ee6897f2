package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/kurochkinivan/results_portal/internal/domain"
	"github.com/ledongthuc/pdf"
)

var errNotPDF = fmt.Errorf("%w: missing pdf header", domain.ErrUnsupportedFile)

func isPDF(data []byte) bool {
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}

// structuredTables reads text with positions from every page and rebuilds tables from the layout.
// It also returns the plain page text so the caller can fall back to line splitting.
func structuredTables(data []byte) (tables []domain.Table, text string, err error) {
	if !isPDF(data) {
		return nil, "", errNotPDF
	}

	// the pdf reader panics on some malformed documents
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: pdf reader: %v", domain.ErrExtractionFailed, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to open pdf: %w", domain.ErrExtractionFailed, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		source := fmt.Sprintf("page %d", i)

		pageTables := PositionedTables(GlyphLines(pageGlyphs(page)), source)
		if len(pageTables) == 0 {
			pageTables = PositionedTables(rowLines(page), source)
		}
		tables = append(tables, pageTables...)

		plain, err := page.GetPlainText(nil)
		if err == nil {
			sb.WriteString(plain)
			sb.WriteByte('\n')
		}
	}

	return tables, strings.TrimSpace(sb.String()), nil
}

func pageGlyphs(page pdf.Page) []Glyph {
	content := page.Content()

	glyphs := make([]Glyph, 0, len(content.Text))
	for _, t := range content.Text {
		glyphs = append(glyphs, Glyph{X: t.X, Y: t.Y, W: t.W, FontSize: t.FontSize, Text: t.S})
	}

	return glyphs
}

// rowLines uses the reader's own row grouping. It only tracks Tm positioning, so it is kept for
// documents where the content stream yields nothing usable.
func rowLines(page pdf.Page) [][]Fragment {
	rows, err := page.GetTextByRow()
	if err != nil {
		return nil
	}

	lines := make([][]Fragment, 0, len(rows))
	for _, row := range rows {
		line := make([]Fragment, 0, len(row.Content))
		for _, t := range row.Content {
			line = append(line, Fragment{X: t.X, W: t.W, FontSize: t.FontSize, Text: t.S})
		}
		lines = append(lines, line)
	}

	return lines
}
