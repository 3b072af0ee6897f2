package extractor

import (
	"cmp"
	"math"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/kurochkinivan/results_portal/internal/domain"
)

const (
	defaultFontSize = 10.0

	// relative to the font size of the text on the left of the gap
	wordGapRatio = 0.15
	cellGapRatio = 1.0

	// absolute tolerance in PDF points when clustering column anchors
	anchorTolerance = 12.0

	minTableRows  = 2
	minTableCells = 2

	// relative to the font size
	lineToleranceRatio = 0.3
	glyphWidthRatio    = 0.5
)

// Glyph is one shown character placed in page space, Y growing up the page.
type Glyph struct {
	X, Y, W  float64
	FontSize float64
	Text     string
}

// Fragment is a positioned piece of text as reported by the PDF reader for one visual line.
type Fragment struct {
	X, W     float64
	FontSize float64
	Text     string
}

type cell struct {
	x, end float64
	text   string
}

type glyphRun struct {
	x, y, lastX, end float64
	size             float64
	text             string
	runes            int
}

func (r *glyphRun) continues(g Glyph, size float64) bool {
	return math.Abs(g.Y-r.y) <= size*lineToleranceRatio &&
		g.X >= r.lastX-0.5 &&
		g.X <= max(r.end, r.lastX)+size*glyphWidthRatio
}

func (r *glyphRun) fragment() Fragment {
	w := r.end - r.x
	if w <= 0 {
		// the font has no width table, every glyph of a string shares one X
		w = float64(r.runes) * r.size * glyphWidthRatio
	}
	return Fragment{X: r.x, W: w, FontSize: r.size, Text: r.text}
}

var reTextColumnSeparator = regexp.MustCompile(`\t+|\s{2,}`)

// GlyphLines joins glyphs shown one after another into fragments and groups the fragments into
// visual lines, top of the page first.
func GlyphLines(glyphs []Glyph) [][]Fragment {
	var (
		runs []*glyphRun
		cur  *glyphRun
	)

	for _, g := range glyphs {
		if g.Text == "" {
			continue
		}

		size := g.FontSize
		if size <= 0 {
			size = defaultFontSize
		}

		if cur == nil || !cur.continues(g, size) {
			cur = &glyphRun{x: g.X, y: g.Y, size: size}
			runs = append(runs, cur)
		}

		cur.text += g.Text
		cur.runes += utf8.RuneCountInString(g.Text)
		cur.lastX = g.X
		if g.W > 0 {
			cur.end = max(cur.end, g.X+g.W)
		}
	}

	slices.SortStableFunc(runs, func(a, b *glyphRun) int {
		if c := cmp.Compare(b.y, a.y); c != 0 {
			return c
		}
		return cmp.Compare(a.x, b.x)
	})

	var (
		lines [][]Fragment
		lineY float64
	)
	for _, r := range runs {
		if len(lines) == 0 || lineY-r.y > max(r.size*lineToleranceRatio, 1) {
			lines = append(lines, nil)
			lineY = r.y
		}
		lines[len(lines)-1] = append(lines[len(lines)-1], r.fragment())
	}

	return lines
}

// mergeFragments joins fragments of one line into cells. Small gaps become spaces inside a cell,
// gaps wider than the font size start a new cell.
func mergeFragments(fragments []Fragment) []cell {
	frags := slices.Clone(fragments)
	slices.SortStableFunc(frags, func(a, b Fragment) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		default:
			return 0
		}
	})

	var (
		cells []cell
		cur   *cell
		sb    strings.Builder
	)

	flush := func() {
		if cur == nil {
			return
		}
		if text := normalizeCell(sb.String()); text != "" {
			cur.text = text
			cells = append(cells, *cur)
		}
		cur = nil
		sb.Reset()
	}

	for _, f := range frags {
		if f.Text == "" {
			continue
		}

		size := f.FontSize
		if size <= 0 {
			size = defaultFontSize
		}

		if cur != nil {
			gap := f.X - cur.end
			switch {
			case gap > size*cellGapRatio:
				flush()
			case gap > size*wordGapRatio:
				sb.WriteByte(' ')
			}
		}

		if cur == nil {
			cur = &cell{x: f.X}
		}

		sb.WriteString(f.Text)
		cur.end = math.Max(cur.end, f.X+f.W)
	}
	flush()

	return cells
}

// reconstructColumns aligns cells of consecutive lines into a grid by clustering their left edges.
// Anchors used by a single line only are dropped, so stray text joins the nearest real column.
func reconstructColumns(lines [][]cell) [][]string {
	var xs []float64
	for _, line := range lines {
		for _, c := range line {
			xs = append(xs, c.x)
		}
	}
	slices.Sort(xs)

	var anchors []float64
	for _, x := range xs {
		if len(anchors) == 0 || x-anchors[len(anchors)-1] > anchorTolerance {
			anchors = append(anchors, x)
		}
	}

	usage := make([]int, len(anchors))
	for _, line := range lines {
		used := make(map[int]bool)
		for _, c := range line {
			used[nearest(anchors, c.x)] = true
		}
		for i := range used {
			usage[i]++
		}
	}

	kept := anchors[:0:0]
	for i, a := range anchors {
		if usage[i] >= 2 || len(lines) < 2 {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		kept = anchors
	}

	grid := make([][]string, 0, len(lines))
	for _, line := range lines {
		row := make([]string, len(kept))
		for _, c := range line {
			i := nearest(kept, c.x)
			if row[i] != "" {
				row[i] += " "
			}
			row[i] += c.text
		}
		grid = append(grid, row)
	}

	return grid
}

func nearest(anchors []float64, x float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, a := range anchors {
		if d := math.Abs(a - x); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// PositionedTables turns the lines of one page into tables. A table is a run of at least two lines
// that each hold at least two cells.
func PositionedTables(lines [][]Fragment, source string) []domain.Table {
	cells := make([][]cell, len(lines))
	for i, line := range lines {
		cells[i] = mergeFragments(line)
	}

	var tables []domain.Table
	for _, block := range blocks(len(cells), func(i int) bool { return len(cells[i]) >= minTableCells }) {
		tables = append(tables, domain.Table{
			Rows:   reconstructColumns(cells[block[0]:block[1]]),
			Source: source,
		})
	}

	return tables
}

// TextTables splits plain text lines on tabs or runs of spaces and groups them like PositionedTables.
func TextTables(text, source string) []domain.Table {
	var rows [][]string
	for line := range strings.SplitSeq(text, "\n") {
		var cells []string
		for _, part := range reTextColumnSeparator.Split(strings.TrimSpace(line), -1) {
			if part = normalizeCell(part); part != "" {
				cells = append(cells, part)
			}
		}
		rows = append(rows, cells)
	}

	var tables []domain.Table
	for _, block := range blocks(len(rows), func(i int) bool { return len(rows[i]) >= minTableCells }) {
		tables = append(tables, domain.Table{
			Rows:   rows[block[0]:block[1]],
			Source: source,
		})
	}

	return tables
}

// blocks returns [start, end) ranges of consecutive indexes accepted by ok, at least minTableRows long.
func blocks(n int, ok func(i int) bool) [][2]int {
	var out [][2]int

	start := -1
	for i := 0; i <= n; i++ {
		if i < n && ok(i) {
			if start < 0 {
				start = i
			}
			continue
		}

		if start >= 0 && i-start >= minTableRows {
			out = append(out, [2]int{start, i})
		}
		start = -1
	}

	return out
}
