package tasks

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"randomtools/internal/common"
	"randomtools/internal/interfaces"
)

var (
	metaRE             = regexp.MustCompile(`^> (Date|Thread|Type): (.*)$`)
	observationTitleRE = regexp.MustCompile(`^# (Situation|Interpretation|Approach)`)
	journalTitleRE     = regexp.MustCompile(`^# (Good|Better|Best)`)
)

// Composer drives the edit-then-post flow for observation and journal
// entries: render a template into a temp file, hand it to $EDITOR,
// parse the result back and post it to the collector.
type Composer struct {
	client interfaces.TasksClient
	config *common.TasksConfig
	out    io.Writer
}

func NewComposer(client interfaces.TasksClient, config *common.TasksConfig, out io.Writer) *Composer {
	return &Composer{client: client, config: config, out: out}
}

// Observation composes and posts one observation entry. An empty date
// means today.
func (c *Composer) Observation(date, thread, entryType string) error {
	template := ObservationTemplate(defaultDate(date), thread, entryType)

	path, err := c.editEntry(template)
	if err != nil {
		return err
	}

	payload, err := parseEntry(path, observationTitleRE)
	if err != nil {
		return err
	}

	if payload["situation"] == "" {
		fmt.Fprintln(c.out, "No changes were made to the Situation field.")
		os.Remove(path)
		return nil
	}

	created, err := c.client.CreateEntry(payload)
	if err != nil {
		// The draft is kept on disk so nothing composed is lost.
		c.reportFailure(err)
		fmt.Fprintf(c.out, "The temporary file was saved at %s\n", path)
		return nil
	}

	fmt.Fprint(c.out, RenderObservation(created))
	fmt.Fprintf(c.out, "\nSee more:\n- %s/observations/\n", c.config.URL)
	os.Remove(path)
	return nil
}

// Journal composes and posts one journal entry. The temp file is
// removed before posting, unlike observations.
func (c *Composer) Journal(date, thread string) error {
	template := JournalTemplate(defaultDate(date), thread)

	path, err := c.editEntry(template)
	if err != nil {
		return err
	}

	payload, err := parseEntry(path, journalTitleRE)
	if err != nil {
		return err
	}
	os.Remove(path)

	if payload["situation"] == "" {
		fmt.Fprintln(c.out, "No changes were made to the Situation field.")
		return nil
	}

	created, err := c.client.CreateEntry(payload)
	if err != nil {
		c.reportFailure(err)
		return nil
	}

	fmt.Fprint(c.out, RenderJournal(created))
	fmt.Fprintf(c.out, "\nSee more:\n- %s/periodical/\n", c.config.URL)
	return nil
}

// editEntry writes the template to a temp Markdown file and opens it in
// the user's editor. The file is left in place for the caller.
func (c *Composer) editEntry(template string) (string, error) {
	tmpfile, err := os.CreateTemp("", "*.md")
	if err != nil {
		return "", common.WrapError(err, common.ErrorTypeStorage, "tempfile_failed", "failed to create temporary file")
	}
	if _, err := tmpfile.WriteString(template); err != nil {
		tmpfile.Close()
		return "", common.WrapError(err, common.ErrorTypeStorage, "tempfile_failed", "failed to write temporary file")
	}
	if err := tmpfile.Close(); err != nil {
		return "", common.WrapError(err, common.ErrorTypeStorage, "tempfile_failed", "failed to write temporary file")
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	cmd := exec.Command(editor, tmpfile.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", common.WrapError(err, common.ErrorTypeConfiguration, "editor_failed", "editor exited with an error")
	}
	return tmpfile.Name(), nil
}

// parseEntry reads the edited file back into a payload. Meta lines fill
// the pub_date/thread/type keys, titled sections accumulate everything
// up to the next title. Unfilled keys stay null so the API treats them
// as absent.
func parseEntry(path string, titleRE *regexp.Regexp) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, common.WrapError(err, common.ErrorTypeStorage, "tempfile_failed", "failed to read temporary file")
	}
	defer f.Close()

	payload := map[string]any{
		"pub_date":       nil,
		"thread":         nil,
		"type":           nil,
		"situation":      nil,
		"interpretation": nil,
		"approach":       nil,
	}

	currentName := ""
	var currentStack []string

	flush := func() {
		if currentName != "" {
			payload[strings.ToLower(currentName)] = strings.TrimSpace(strings.Join(currentStack, "\n"))
		}
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if m := metaRE.FindStringSubmatch(line); m != nil {
			key := strings.ToLower(m[1])
			if key == "date" {
				key = "pub_date"
			}
			payload[key] = strings.TrimSpace(m[2])
		} else if m := titleRE.FindStringSubmatch(line); m != nil {
			flush()
			currentName = m[1]
			currentStack = nil
		} else {
			currentStack = append(currentStack, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, common.WrapError(err, common.ErrorTypeStorage, "tempfile_failed", "failed to read temporary file")
	}
	flush()

	return payload, nil
}

func (c *Composer) reportFailure(err error) {
	var toolErr *common.ToolError
	if errors.As(err, &toolErr) && toolErr.Cause == nil {
		// Try pretty-printing an API error body carried in the message.
		if i := strings.Index(toolErr.Message, "{"); i >= 0 {
			var body any
			if json.Unmarshal([]byte(toolErr.Message[i:]), &body) == nil {
				pretty, _ := json.MarshalIndent(body, "", "    ")
				fmt.Fprintln(c.out, string(pretty))
				return
			}
		}
	}
	fmt.Fprintln(c.out, err.Error())
}

func defaultDate(date string) string {
	if date == "" {
		return time.Now().Format("2006-01-02")
	}
	return date
}
