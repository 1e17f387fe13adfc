package snippets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/chzyer/readline"

	"randomtools/internal/common"
)

// Shell is the interactive snippet picker: type a section name (or a
// unique prefix) to copy its content to the clipboard.
type Shell struct {
	config *Config
	out    io.Writer
}

func NewShell(config *Config, out io.Writer) *Shell {
	return &Shell{config: config, out: out}
}

// Run starts the picker loop until Ctrl+D or Ctrl+C.
func (s *Shell) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("copier [%s]> ", s.config.Name),
		HistoryFile:     filepath.Join(common.SnippetsDir(), ".copier_history"),
		HistoryLimit:    1000,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return common.WrapError(err, common.ErrorTypeInternal, "readline_init", "failed to initialize line editor")
	}
	defer rl.Close()

	fmt.Fprintf(s.out, "Loaded configuration from ~/.info/%s.yaml\n", s.config.Name)
	fmt.Fprintln(s.out, "Type 'list' to see available sections, 'help' for commands, or enter a section name to copy it.")
	s.listSections()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(s.out, "\nExiting...")
			return nil
		}
		line = strings.TrimSpace(line)

		switch line {
		case "":
		case "list":
			s.listSections()
		case "config":
			s.showConfig()
		case "help":
			s.showHelp()
		default:
			s.copySection(line)
		}
	}
}

func (s *Shell) listSections() {
	fmt.Fprintln(s.out, "Available sections:")
	for _, section := range s.config.Sections {
		fmt.Fprintf(s.out, "  %s (%s)\n", common.Bold(section.Name), section.Type)
	}
}

func (s *Shell) showConfig() {
	data, err := os.ReadFile(s.config.Path)
	if err != nil {
		fmt.Fprintf(s.out, "Error reading configuration file: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Configuration from %s:\n", s.config.Path)
	fmt.Fprintln(s.out, strings.Repeat("-", 40))
	fmt.Fprint(s.out, string(data))
	fmt.Fprintln(s.out, strings.Repeat("-", 40))
}

func (s *Shell) showHelp() {
	fmt.Fprintln(s.out, `Available commands:
  SECTION          - Copy section content to clipboard
  list             - Show available sections
  config           - Show the raw YAML configuration
  help             - Show this help

Quit by pressing Ctrl+D or Ctrl+C.`)
}

func (s *Shell) copySection(input string) {
	section, matches := s.config.Find(input)
	if section == nil {
		if len(matches) == 0 {
			fmt.Fprintf(s.out, "No sections found matching '%s'\n", input)
			fmt.Fprintln(s.out, "Use 'list' to see available sections")
			return
		}
		fmt.Fprintf(s.out, "Ambiguous prefix '%s' matches multiple sections:\n", input)
		for _, match := range matches {
			fmt.Fprintf(s.out, "  %s (%s)\n", common.Bold(match.Name), match.Type)
		}
		fmt.Fprintln(s.out, "Please be more specific.")
		return
	}
	if section.Name != input {
		fmt.Fprintf(s.out, "Matched section: %s\n", common.Bold(section.Name))
	}

	content, err := section.Resolve()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	if err := clipboard.WriteAll(content); err != nil {
		fmt.Fprintf(s.out, "Error copying to clipboard: %v\n", err)
		return
	}

	lines := strings.Count(content, "\n") + 1
	fmt.Fprintf(s.out, "Copied section '%s' to clipboard (%d lines, %d characters)\n",
		common.Bold(section.Name), lines, len(content))
}
