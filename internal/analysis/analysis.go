package analysis

import (
	"strings"

	"github.com/kurochkinivan/results_portal/internal/domain"
	"github.com/kurochkinivan/results_portal/internal/extractor"
)

// FailGrade marks a subject as failed. Compared case-insensitively.
const FailGrade = "U"

type StudentGrades struct {
	RegistrationNumber string            `json:"registrationNumber"`
	Name               string            `json:"name"`
	Grades             map[string]string `json:"grades"`
}

type SubjectStats struct {
	Subject        string  `json:"subject"`
	Appeared       int     `json:"appeared"`
	Passed         int     `json:"passed"`
	Failed         int     `json:"failed"`
	PassPercentage float64 `json:"passPercentage"`
}

type Summary struct {
	Subjects        []SubjectStats `json:"subjects"`
	TotalStudents   int            `json:"totalStudents"`
	PassedStudents  int            `json:"passedStudents"`
	FailedStudents  int            `json:"failedStudents"`
	OverallPassRate float64        `json:"overallPassRate"`
	StartIndex      int            `json:"startIndex"`
}

// Analyze aggregates pass statistics for students[startIndex:]. A student passes overall when none of
// their grades in subjects is a fail grade; a subject counts as appeared only when the grade cell is
// non-empty. Grades for other columns are ignored.
func Analyze(subjects []string, students []StudentGrades, startIndex int) Summary {
	startIndex = min(max(startIndex, 0), len(students))
	students = students[startIndex:]

	summary := Summary{
		Subjects:      make([]SubjectStats, 0, len(subjects)),
		TotalStudents: len(students),
		StartIndex:    startIndex,
	}

	for _, subject := range subjects {
		stats := SubjectStats{Subject: subject}

		for _, s := range students {
			grade := strings.TrimSpace(s.Grades[subject])
			if grade == "" {
				continue
			}

			stats.Appeared++
			if isFail(grade) {
				stats.Failed++
			} else {
				stats.Passed++
			}
		}

		stats.PassPercentage = percentage(stats.Passed, stats.Appeared)
		summary.Subjects = append(summary.Subjects, stats)
	}

	for _, s := range students {
		if passedAll(s, subjects) {
			summary.PassedStudents++
		}
	}

	summary.FailedStudents = summary.TotalStudents - summary.PassedStudents
	summary.OverallPassRate = percentage(summary.PassedStudents, summary.TotalStudents)

	return summary
}

// StudentsFromResult reads the subject columns and per-student grades out of a processed table.
// Identity and bookkeeping columns (serial, registration number, name, department and so on)
// are not subjects.
func StudentsFromResult(headers []string, rows []domain.ResultRow) ([]string, []StudentGrades) {
	var (
		subjects []string
		regCol   string
		nameCol  string
	)

	for _, h := range headers {
		switch extractor.HeaderColumnType(h) {
		case extractor.ColumnRegistrationNumber:
			if regCol == "" {
				regCol = h
			}
		case extractor.ColumnName:
			if nameCol == "" {
				nameCol = h
			}
		}

		if !extractor.IsMetaHeader(h) {
			subjects = append(subjects, h)
		}
	}

	students := make([]StudentGrades, 0, len(rows))
	for _, row := range rows {
		s := StudentGrades{
			Grades: make(map[string]string, len(subjects)),
		}
		if regCol != "" {
			s.RegistrationNumber = row.Data[regCol]
		}
		if nameCol != "" {
			s.Name = row.Data[nameCol]
		}
		for _, subject := range subjects {
			s.Grades[subject] = row.Data[subject]
		}

		students = append(students, s)
	}

	return subjects, students
}

func passedAll(s StudentGrades, subjects []string) bool {
	for _, subject := range subjects {
		if isFail(s.Grades[subject]) {
			return false
		}
	}
	return true
}

func isFail(grade string) bool {
	return strings.EqualFold(strings.TrimSpace(grade), FailGrade)
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
