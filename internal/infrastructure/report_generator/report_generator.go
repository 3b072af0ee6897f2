package report_generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/results_portal/internal/analysis"
)

var headerBackground = &props.Color{Red: 220, Green: 220, Blue: 220}

type ReportGenerator struct {
	now func() time.Time
}

func New() *ReportGenerator {
	return &ReportGenerator{now: time.Now}
}

// Generate renders an analysis summary as a PDF document.
func (g *ReportGenerator) Generate(title string, summary analysis.Summary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.titleRows(title)...)
	m.AddRows(overallRows(summary)...)
	m.AddRows(subjectRows(summary.Subjects)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	return doc.GetBytes(), nil
}

// GenerateReport writes the analysis of sourceFile to outputPath, creating parent directories.
func (g *ReportGenerator) GenerateReport(outputPath, sourceFile string, summary analysis.Summary) error {
	data, err := g.Generate("Result analysis: "+filepath.Base(sourceFile), summary)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %q: %w", outputPath, err)
	}

	return nil
}

func (g *ReportGenerator) titleRows(title string) []core.Row {
	return []core.Row{
		row.New(12).Add(
			text.NewCol(12, title, props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}),
		),
		row.New(8).Add(
			text.NewCol(12, "Generated "+g.now().Format(time.DateTime), props.Text{Size: 8, Align: align.Center}),
		),
	}
}

func overallRows(s analysis.Summary) []core.Row {
	label := props.Text{Size: 10, Style: fontstyle.Bold}
	value := props.Text{Size: 10}

	return []core.Row{
		row.New(8).Add(
			text.NewCol(4, "Students analysed", label),
			text.NewCol(2, strconv.Itoa(s.TotalStudents), value),
			text.NewCol(4, "Starting from row", label),
			text.NewCol(2, strconv.Itoa(s.StartIndex+1), value),
		),
		row.New(8).Add(
			text.NewCol(4, "Passed all subjects", label),
			text.NewCol(2, strconv.Itoa(s.PassedStudents), value),
			text.NewCol(4, "Overall pass rate", label),
			text.NewCol(2, formatPercent(s.OverallPassRate), value),
		),
		row.New(6),
	}
}

func subjectRows(subjects []analysis.SubjectStats) []core.Row {
	head := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Center}
	cell := props.Text{Size: 9, Align: align.Center}

	rows := make([]core.Row, 0, len(subjects)+1)
	rows = append(rows, row.New(8).Add(
		text.NewCol(4, "Subject", head),
		text.NewCol(2, "Appeared", head),
		text.NewCol(2, "Passed", head),
		text.NewCol(2, "Failed", head),
		text.NewCol(2, "Pass %", head),
	).WithStyle(&props.Cell{BackgroundColor: headerBackground}))

	for _, s := range subjects {
		rows = append(rows, row.New(7).Add(
			text.NewCol(4, s.Subject, props.Text{Size: 9}),
			text.NewCol(2, strconv.Itoa(s.Appeared), cell),
			text.NewCol(2, strconv.Itoa(s.Passed), cell),
			text.NewCol(2, strconv.Itoa(s.Failed), cell),
			text.NewCol(2, formatPercent(s.PassPercentage), cell),
		))
	}

	return rows
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}
