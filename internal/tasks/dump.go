package tasks

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"randomtools/internal/common"
	"randomtools/internal/interfaces"
	"randomtools/internal/models"
)

// DumpObservations fetches every observation (optionally limited to one
// year) and writes each as a Markdown file named after its date and a
// slug of the situation text.
func DumpObservations(client interfaces.TasksClient, dir, year string, out io.Writer) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return common.NewValidationError("dump_path_invalid",
			fmt.Sprintf("%s is not a directory", dir))
	}

	observations, err := client.Observations(year)
	if err != nil {
		return err
	}

	for i := range observations {
		filename, err := writeObservation(&observations[i], dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Create %s\n", filename)
	}
	return nil
}

func writeObservation(o *models.Observation, dir string) (string, error) {
	text := fmt.Sprintf(observationTemplate,
		o.PubDate, o.Thread, o.Type, o.Situation, o.Interpretation, o.Approach)

	filename := fmt.Sprintf("%s-%s.md", o.PubDate, situationSlug(o.Situation))

	if err := os.WriteFile(filepath.Join(dir, filename), []byte(text), 0o644); err != nil {
		return "", common.WrapError(err, common.ErrorTypeStorage, "dump_write_failed", "failed to write observation file")
	}
	return filename, nil
}

// situationSlug slugs the situation text and truncates it at a word
// boundary to keep filenames readable.
func situationSlug(text string) string {
	s := slug.Make(text)
	if len(s) <= 32 {
		return s
	}
	s = s[:32]
	if i := strings.LastIndex(s, "-"); i > 0 {
		s = s[:i]
	}
	return s
}
