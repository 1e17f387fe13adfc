package csvkit

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"randomtools/internal/common"
)

// MapToCSV writes a JSON map as a two-column CSV in the map's key
// order. A title row is written when either title is set.
func MapToCSV(mapPath, outPath, keyTitle, valueTitle string) error {
	entries, err := ReadOrderedMap(mapPath)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return common.WrapError(err, common.ErrorTypeStorage, "csv_write", "failed to create "+outPath)
	}
	defer out.Close()

	writer := csv.NewWriter(out)
	defer writer.Flush()

	if keyTitle != "" || valueTitle != "" {
		if err := writer.Write([]string{keyTitle, valueTitle}); err != nil {
			return common.WrapError(err, common.ErrorTypeStorage, "csv_write", "failed to write title row")
		}
	}

	for _, entry := range entries {
		if err := writer.Write([]string{entry.Key, entry.Value}); err != nil {
			return common.WrapError(err, common.ErrorTypeStorage, "csv_write", "failed to write row")
		}
	}
	return writer.Error()
}

// MapToCSVColumn copies a CSV adding one column looked up in a JSON
// map by the value of the key column. The firstRow text, when set,
// fills the new column of the first row instead of a lookup. Missing
// keys are reported to msgOut and produce an empty cell.
func MapToCSVColumn(inPath, mapPath, outPath, firstRow string, column int, msgOut io.Writer) error {
	mapping, err := ReadMap(mapPath)
	if err != nil {
		return err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return common.WrapError(err, common.ErrorTypeStorage, "csv_read", "failed to open "+inPath)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return common.WrapError(err, common.ErrorTypeStorage, "csv_write", "failed to create "+outPath)
	}
	defer out.Close()

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	writer := csv.NewWriter(out)
	defer writer.Flush()

	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return common.WrapError(err, common.ErrorTypeValidation, "csv_parse", "failed to parse "+inPath)
		}
		if column >= len(row) {
			return common.NewValidationError("csv_parse",
				fmt.Sprintf("row has no column %d", column))
		}

		text := ""
		if first && firstRow != "" {
			text = firstRow
			first = false
		} else {
			key := row[column]
			value, ok := mapping[key]
			if !ok {
				fmt.Fprintf(msgOut, "Not found: %s\n", key)
			}
			text = value
		}

		if err := writer.Write(append(row, text)); err != nil {
			return common.WrapError(err, common.ErrorTypeStorage, "csv_write", "failed to write row")
		}
	}
	return writer.Error()
}
