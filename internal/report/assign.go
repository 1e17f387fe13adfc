package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"randomtools/internal/models"
)

// AssignSections interactively assigns a section to every issue not
// yet in the sections map. Menus and prompts go to out (stderr in the
// CLI); answers are read line by line from in. A numeric answer picks
// from the known section names, anything else becomes a new section,
// an empty answer skips the issue.
func AssignSections(byIssue map[string]*models.IssueWorklogs, sections map[string]string, in io.Reader, out io.Writer) (map[string]string, error) {
	known := knownSectionNames(sections)
	reader := bufio.NewReader(in)

	keys := make([]string, 0, len(byIssue))
	for key := range byIssue {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, ok := sections[key]; ok {
			continue
		}

		fmt.Fprintf(out, "\n%s: %s\n", key, byIssue[key].Summary)
		fmt.Fprintln(out, "What section does this belong to?")
		for i, name := range known {
			fmt.Fprintf(out, "  %d) %s\n", i+1, name)
		}

		if len(known) > 0 {
			fmt.Fprintf(out, "[1-%d or write section name] > ", len(known))
		} else {
			fmt.Fprint(out, "[write section name] > ")
		}

		answer, err := readAnswer(reader)
		if err != nil {
			return nil, err
		}
		if answer == "" {
			fmt.Fprintln(out, "No section provided, skipping.")
			continue
		}

		name := answer
		if idx, err := strconv.Atoi(answer); err == nil && idx >= 1 && idx <= len(known) {
			name = known[idx-1]
		}

		sections[key] = name
		known = knownSectionNames(sections)
	}

	return sections, nil
}

func knownSectionNames(sections map[string]string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, name := range sections {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func readAnswer(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
