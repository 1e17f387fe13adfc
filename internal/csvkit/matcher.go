package csvkit

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"randomtools/internal/common"
)

// MatcherOptions configure the interactive CSV-to-file matcher.
type MatcherOptions struct {
	// Column is the zero-indexed CSV column holding the value to match.
	Column int
	// KeepFirst keeps the first row instead of dropping it as a header.
	KeepFirst bool
	// Default is the map key used when the user answers "d".
	Default string
	// Pattern renders a matched file into a link; %s is replaced with
	// the file's mapped value.
	Pattern string
	// MapPath persists the resulting link map as JSON when set.
	MapPath string
}

// Matcher interactively matches CSV values (typically e-mails) against
// the file names of a GUID map, producing a value-to-link map. Matches
// already present in the persisted map are skipped.
type Matcher struct {
	options MatcherOptions
	in      *bufio.Reader
	out     io.Writer
}

func NewMatcher(options MatcherOptions, in io.Reader, out io.Writer) *Matcher {
	return &Matcher{
		options: options,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run processes the CSV and returns the resulting link map. The user
// answers per row with a candidate number, an exact file name, "d" for
// the default file, or "s" to skip.
func (m *Matcher) Run(csvPath, mapPath string) (map[string]string, error) {
	guids, err := ReadMap(mapPath)
	if err != nil {
		return nil, err
	}

	// Choices are file names with their extension stripped.
	choiceValues := make(map[string]string, len(guids))
	var choices []string
	for name, value := range guids {
		base := stripSuffix(name)
		choiceValues[base] = value
		choices = append(choices, base)
	}

	linkMap := make(map[string]string)
	if m.options.MapPath != "" {
		if data, err := os.ReadFile(m.options.MapPath); err == nil {
			if err := json.Unmarshal(data, &linkMap); err != nil {
				return nil, common.WrapError(err, common.ErrorTypeStorage, "map_parse",
					"failed to parse persisted map "+m.options.MapPath)
			}
		}
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return nil, common.WrapError(err, common.ErrorTypeStorage, "csv_read", "failed to open "+csvPath)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, common.WrapError(err, common.ErrorTypeValidation, "csv_parse", "failed to parse "+csvPath)
		}
		if first && !m.options.KeepFirst {
			first = false
			continue
		}
		if m.options.Column >= len(row) {
			return nil, common.NewValidationError("csv_parse",
				fmt.Sprintf("row has no column %d", m.options.Column))
		}

		value := row[m.options.Column]
		if _, ok := linkMap[value]; ok {
			continue
		}

		link, stop, err := m.matchOne(value, row, choices, choiceValues, guids)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
		linkMap[value] = link
	}

	if m.options.MapPath != "" {
		data, err := json.MarshalIndent(linkMap, "", "  ")
		if err != nil {
			return nil, common.WrapError(err, common.ErrorTypeStorage, "map_encode", "failed to encode link map")
		}
		if err := os.WriteFile(m.options.MapPath, data, 0o644); err != nil {
			return nil, common.WrapError(err, common.ErrorTypeStorage, "map_write",
				"failed to write "+m.options.MapPath)
		}
	}
	return linkMap, nil
}

func (m *Matcher) matchOne(value string, row, choices []string, choiceValues, guids map[string]string) (link string, stop bool, err error) {
	fmt.Fprintln(m.out, strings.Join(row, ","))

	matches := fuzzy.Find(value, choices)
	if len(matches) > 5 {
		matches = matches[:5]
	}
	for i, match := range matches {
		fmt.Fprintf(m.out, "%d) %s (score %d)\n", i, match.Str, match.Score)
	}

	fmt.Fprint(m.out, "Choice [number/filename/D/S]: ")
	answer, err := m.in.ReadString('\n')
	if err != nil && answer == "" {
		return "", true, nil
	}
	answer = strings.TrimSpace(answer)

	var file string
	switch {
	case strings.EqualFold(answer, "s"):
		return "", false, nil
	case strings.EqualFold(answer, "d"):
		file = guids[m.options.Default]
	default:
		if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 0 && n < len(matches) {
			file = choiceValues[matches[n].Str]
		} else {
			var ok bool
			file, ok = guids[answer]
			if !ok {
				fmt.Fprintf(m.out, "Unknown file: %s, skipping\n", answer)
				return "", false, nil
			}
		}
	}

	if file == "" || m.options.Pattern == "" {
		return file, false, nil
	}
	return fmt.Sprintf(m.options.Pattern, file), false, nil
}

func stripSuffix(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return name
	}
	return strings.Join(parts[:len(parts)-1], ".")
}
