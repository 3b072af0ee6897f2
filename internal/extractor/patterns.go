package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

type ColumnType int

const (
	ColumnUnknown ColumnType = iota
	ColumnSerial
	ColumnRegistrationNumber
	ColumnName
	ColumnGrade
	ColumnSubjectCode
	ColumnMarks
)

func (t ColumnType) Label() string {
	switch t {
	case ColumnSerial:
		return "S.No"
	case ColumnRegistrationNumber:
		return "Registration Number"
	case ColumnName:
		return "Student Name"
	case ColumnGrade:
		return "Grade"
	case ColumnSubjectCode:
		return "Subject Code"
	case ColumnMarks:
		return "Marks"
	default:
		return ""
	}
}

var (
	reRegistrationNumber = regexp.MustCompile(`^(?:\d{6,}|\d{2,4}[A-Z]{2,5}\d{2,5}|[A-Z]{2,5}\d{6,})$`)
	reSubjectCode        = regexp.MustCompile(`^[A-Z]{2,4}[ -]?\d{3,4}[A-Z]?$`)
	reGrade              = regexp.MustCompile(`^(?:O|S|A\+\+|A\+|A|B\+|B|C\+|C|D|E|F|P|U|RA|AB|SA|W|I)$`)
	reMarks              = regexp.MustCompile(`^\d{1,3}(?:\.\d{1,2})?$`)
	reName               = regexp.MustCompile(`^[A-Z][A-Za-z.'\-]*(?:\s+[A-Z][A-Za-z.'\-]*)*$`)

	reHeaderKeyword = regexp.MustCompile(`(?i)^(?:` +
		`s\.?\s*no\.?|sl\.?\s*no\.?|serial(?:\s*no\.?)?|` +
		`reg(?:istration|ister)?\.?\s*(?:no\.?|number|num)?|roll\s*(?:no\.?|number)?|` +
		`(?:student\s*)?name|grades?|result|status|` +
		`subject(?:\s*code)?|code|course(?:\s*code)?|marks?|total|` +
		`gpa|cgpa|sgpa|dept\.?|department|branch|sem(?:ester)?|credits?` +
		`)$`)

	reRegistrationHeader = regexp.MustCompile(`(?i)^(?:reg|roll)`)
	reNameHeader         = regexp.MustCompile(`(?i)name$`)
	reSerialHeader       = regexp.MustCompile(`(?i)^(?:s\.?\s*no|sl\.?\s*no|serial)`)
	reMetaHeader         = regexp.MustCompile(`(?i)^(?:dept\.?|department|branch|sem(?:ester)?|total|gpa|cgpa|sgpa|result|status|credits?|remarks?|marks?)$`)

	reSpaces = regexp.MustCompile(`\s+`)
)

func normalizeCell(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

func isHeaderLike(cell string) bool {
	return reHeaderKeyword.MatchString(cell) || reSubjectCode.MatchString(strings.ToUpper(cell))
}

// classifyValue reports what a single data cell looks like. Order matters: a lone "A" is a grade,
// not a name, and "2021001" is a registration number, not marks.
func classifyValue(value string) ColumnType {
	v := normalizeCell(value)
	if v == "" {
		return ColumnUnknown
	}

	upper := strings.ToUpper(strings.ReplaceAll(v, " ", ""))

	switch {
	case reRegistrationNumber.MatchString(upper):
		return ColumnRegistrationNumber
	case reSubjectCode.MatchString(strings.ToUpper(v)):
		return ColumnSubjectCode
	case reGrade.MatchString(strings.ToUpper(v)):
		return ColumnGrade
	case reMarks.MatchString(v):
		return ColumnMarks
	case reName.MatchString(v) && len(v) > 2:
		return ColumnName
	default:
		return ColumnUnknown
	}
}

func IsRegistrationNumber(value string) bool {
	return reRegistrationNumber.MatchString(strings.ToUpper(strings.ReplaceAll(normalizeCell(value), " ", "")))
}

// HeaderColumnType maps a column header to the identity columns of a result sheet. Anything else,
// including subject columns, is ColumnUnknown.
func HeaderColumnType(header string) ColumnType {
	h := normalizeCell(header)

	switch {
	case reSerialHeader.MatchString(h):
		return ColumnSerial
	case reRegistrationHeader.MatchString(h):
		return ColumnRegistrationNumber
	case reNameHeader.MatchString(h):
		return ColumnName
	default:
		return ColumnUnknown
	}
}

// IsMetaHeader reports headers that describe the student rather than a graded subject.
func IsMetaHeader(header string) bool {
	return HeaderColumnType(header) != ColumnUnknown || reMetaHeader.MatchString(normalizeCell(header))
}

// DetectColumnType sniffs sample values of one column and returns the type shared by the majority
// of non-empty values, or ColumnUnknown.
func DetectColumnType(values []string) ColumnType {
	counts := make(map[ColumnType]int)
	nonEmpty := 0

	for _, v := range values {
		if normalizeCell(v) == "" {
			continue
		}
		nonEmpty++
		counts[classifyValue(v)]++
	}

	if nonEmpty == 0 {
		return ColumnUnknown
	}

	best, bestCount := ColumnUnknown, 0
	for _, t := range []ColumnType{
		ColumnRegistrationNumber,
		ColumnSubjectCode,
		ColumnGrade,
		ColumnMarks,
		ColumnName,
	} {
		if counts[t] > bestCount {
			best, bestCount = t, counts[t]
		}
	}

	if bestCount*2 <= nonEmpty {
		return ColumnUnknown
	}

	if best == ColumnMarks && isSerial(values) {
		return ColumnSerial
	}

	return best
}

func isSerial(values []string) bool {
	expected := 0
	for _, v := range values {
		v = strings.TrimSuffix(normalizeCell(v), ".")
		if v == "" {
			continue
		}

		n, err := strconv.Atoi(v)
		if err != nil {
			return false
		}

		if expected == 0 {
			expected = n
		}
		if n != expected {
			return false
		}
		expected++
	}

	return expected > 1
}
