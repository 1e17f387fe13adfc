package fileops

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"randomtools/internal/common"
)

// PDFRepeat concatenates n copies of a PDF using the external
// pdfunite binary. When output is empty the result lands next to the
// input as <name>-<n>.pdf.
func PDFRepeat(file string, n int, output string) (string, error) {
	path, err := filepath.Abs(file)
	if err != nil {
		return "", common.WrapError(err, common.ErrorTypeValidation, "path_invalid", "invalid input path")
	}
	if _, err := os.Stat(path); err != nil {
		return "", common.WrapError(err, common.ErrorTypeStorage, "file_missing", "input file not found: "+path)
	}

	binary, err := exec.LookPath("pdfunite")
	if err != nil {
		return "", common.NewConfigurationError("pdfunite_missing", "pdfunite is not installed, please install")
	}

	if output == "" {
		suffix := filepath.Ext(path)
		stem := strings.TrimSuffix(filepath.Base(path), suffix)
		output = filepath.Join(filepath.Dir(path), fmt.Sprintf("%s-%d%s", stem, n, suffix))
	}

	args := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		args = append(args, path)
	}
	args = append(args, output)

	cmd := exec.Command(binary, args...)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", common.WrapError(err, common.ErrorTypeInternal, "pdfunite_failed", "pdfunite failed")
	}
	return output, nil
}
