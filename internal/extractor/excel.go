package extractor

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/kurochkinivan/results_portal/internal/domain"
	"github.com/xuri/excelize/v2"
)

func excelTables(data []byte) (_ []domain.Table, err error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open workbook: %w", domain.ErrExtractionFailed, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	var tables []domain.Table
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}

		if len(rows) == 0 {
			continue
		}

		tables = append(tables, domain.Table{Rows: rows, Source: "sheet " + sheet})
	}

	return tables, nil
}
