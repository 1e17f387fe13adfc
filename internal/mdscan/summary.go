package mdscan

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"randomtools/internal/common"
)

// ignoredSummaryFiles are never listed in a summary.
var ignoredSummaryFiles = map[string]bool{
	"README.md": true,
}

// OneLineSummary writes a Markdown link list for every .md document
// directly under dir. The link targets are relative to cwd so the list
// can be pasted into a document living there.
func OneLineSummary(out io.Writer, dir, cwd string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return common.WrapError(err, common.ErrorTypeValidation, "summary_path_invalid", "failed to resolve path")
	}
	rel, err := filepath.Rel(cwd, abs)
	if err != nil {
		return common.WrapError(err, common.ErrorTypeValidation, "summary_path_invalid", "path is not below the working directory")
	}

	matches, err := filepath.Glob(filepath.Join(rel, "*.md"))
	if err != nil {
		return common.WrapError(err, common.ErrorTypeStorage, "summary_glob_failed", "failed to list documents")
	}
	sort.Strings(matches)

	for _, item := range matches {
		name := filepath.Base(item)
		if ignoredSummaryFiles[name] {
			continue
		}
		fmt.Fprintf(out, "- [%s](%s)\n", name, item)
	}
	return nil
}
