package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Field is one field/value row of a status workbook.
type Field struct {
	Name  string
	Value string
}

// ReadFields returns the field/value rows of a status workbook written by
// Writer, without the header row. An empty sheet yields no fields.
func ReadFields(path string) ([]Field, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", SheetName, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	fields := make([]Field, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		field := Field{Name: row[0]}
		if len(row) > 1 {
			field.Value = row[1]
		}
		fields = append(fields, field)
	}
	return fields, nil
}
