package csvkit

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"randomtools/internal/common"
	"randomtools/internal/fileops"
)

// CopiesFromCSV copies a template file once per row of a
// semicolon-delimited CSV, named after the value in the given column
// plus the template's extension. Copies land next to the template.
func CopiesFromCSV(csvPath, templatePath string, column int, dropFirst bool, msgOut io.Writer) error {
	template, err := filepath.Abs(templatePath)
	if err != nil {
		return common.WrapError(err, common.ErrorTypeValidation, "path_invalid", "invalid template path")
	}
	if _, err := os.Stat(template); err != nil {
		return common.WrapError(err, common.ErrorTypeStorage, "template_missing", "template file not found: "+template)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return common.WrapError(err, common.ErrorTypeStorage, "csv_read", "failed to open "+csvPath)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	parent := filepath.Dir(template)
	suffix := filepath.Ext(template)

	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return common.WrapError(err, common.ErrorTypeValidation, "csv_parse", "failed to parse "+csvPath)
		}
		if dropFirst && first {
			first = false
			continue
		}
		if column >= len(row) {
			return common.NewValidationError("csv_parse",
				fmt.Sprintf("row has no column %d", column))
		}

		name := strings.TrimSpace(row[column])
		target := filepath.Join(parent, name+suffix)

		fmt.Fprintf(msgOut, "Copying %s into %s...\n", template, target)
		if err := fileops.CopyFile(template, target); err != nil {
			return err
		}
	}
	return nil
}
