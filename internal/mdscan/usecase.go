package mdscan

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"randomtools/internal/common"
	"randomtools/internal/models"
)

var (
	reVersion    = regexp.MustCompile(`^#{1,3} \(v([\d.\-\w]+)\)`)
	reCases      = regexp.MustCompile(`^#{1,3} Cases`)
	reCase       = regexp.MustCompile(`^#{1,3} (\d+)\. (.+)$`)
	reCaseSimple = regexp.MustCompile(`^(\d+)\. (.+)$`)
)

// ReadScenario parses the cases out of one Markdown file. It returns nil
// when the file holds no cases.
//
// A version marker heading like "# (v1.2)" applies to every case that
// follows it. Cases whose name starts with "." are hidden. Bare numbered
// list items count as cases until a regular heading interrupts them; the
// "Cases" heading or a version marker re-enables them.
func ReadScenario(path string) (*models.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, common.WrapError(err, common.ErrorTypeStorage, "scenario_read_failed", "failed to read scenario file")
	}
	defer f.Close()

	var cases []models.Case
	version := ""
	inCases := true

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case reVersion.MatchString(line):
			version = reVersion.FindStringSubmatch(line)[1]
			inCases = true
		case reCases.MatchString(line):
			inCases = true
		case reCase.MatchString(line):
			m := reCase.FindStringSubmatch(line)
			if strings.HasPrefix(m[2], ".") {
				continue
			}
			cases = append(cases, models.Case{
				Name:                m[2],
				Simple:              false,
				OriginalEnumeration: m[1],
				Version:             version,
			})
		case inCases && reCaseSimple.MatchString(line):
			m := reCaseSimple.FindStringSubmatch(line)
			if strings.HasPrefix(m[2], ".") {
				continue
			}
			cases = append(cases, models.Case{
				Name:                m[2],
				Simple:              true,
				OriginalEnumeration: m[1],
				Version:             version,
			})
		case strings.HasPrefix(line, "#"):
			inCases = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, common.WrapError(err, common.ErrorTypeStorage, "scenario_read_failed", "failed to read scenario file")
	}

	if len(cases) == 0 {
		return nil, nil
	}
	return &models.Scenario{Path: path, Cases: cases}, nil
}

// ReadScenarios collects scenarios from a single Markdown file or from
// every .md file under a directory.
func ReadScenarios(path string) ([]*models.Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, common.WrapError(err, common.ErrorTypeValidation, "scenario_path_invalid", "path does not exist")
	}

	var paths []string
	if info.IsDir() {
		err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(p, ".md") {
				paths = append(paths, p)
			}
			return nil
		})
		if err != nil {
			return nil, common.WrapError(err, common.ErrorTypeStorage, "scenario_walk_failed", "failed to scan directory")
		}
		sort.Strings(paths)
	} else {
		paths = []string{path}
	}

	var scenarios []*models.Scenario
	for _, p := range paths {
		scenario, err := ReadScenario(p)
		if err != nil {
			return nil, err
		}
		if scenario != nil {
			scenarios = append(scenarios, scenario)
		}
	}
	return scenarios, nil
}

// NameFunc renders the heading for one scenario.
type NameFunc func(*models.Scenario) string

// BaseName names a scenario by its file name.
func BaseName(s *models.Scenario) string {
	return filepath.Base(s.Path)
}

// WikiName names a scenario as a Github Wiki link.
func WikiName(s *models.Scenario) string {
	base := filepath.Base(s.Path)
	return fmt.Sprintf("[[%s]]", strings.TrimSuffix(base, filepath.Ext(base)))
}

// RelativeName names scenarios by their path relative to root.
func RelativeName(root string) NameFunc {
	return func(s *models.Scenario) string {
		rel, err := filepath.Rel(root, s.Path)
		if err != nil {
			return s.Path
		}
		return rel
	}
}

// WithColon appends a colon to the rendered name.
func WithColon(f NameFunc) NameFunc {
	return func(s *models.Scenario) string {
		return f(s) + ":"
	}
}

// WithHeader renders the name as a Markdown heading of the given level.
func WithHeader(f NameFunc, level int) NameFunc {
	return func(s *models.Scenario) string {
		return strings.Repeat("#", level) + " " + f(s) + "\n"
	}
}

// PrintScenario writes one scenario as a numbered Markdown list. Cases
// are renumbered from 1 regardless of their enumeration in the file.
func PrintScenario(out io.Writer, s *models.Scenario, name NameFunc) {
	fmt.Fprintln(out, name(s))
	for i, c := range s.Cases {
		version := ""
		if c.Version != "" {
			version = fmt.Sprintf(" (v%s)", c.Version)
		}
		fmt.Fprintf(out, "%d. %s%s\n", i+1, c.Name, version)
	}
	fmt.Fprintln(out)
}

// PrintScenarios writes each scenario in turn.
func PrintScenarios(out io.Writer, scenarios []*models.Scenario, name NameFunc) {
	for _, s := range scenarios {
		PrintScenario(out, s, name)
	}
}
