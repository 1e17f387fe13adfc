// Package snippets loads clipboard snippet configurations from
// ~/.info/<name>.yaml and resolves section content.
package snippets

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"randomtools/internal/common"
)

// Section is one entry of a snippet file. A bare string value becomes
// a text section; mappings choose their type explicitly.
type Section struct {
	Name    string
	Type    string // text, file or program
	Content string
	File    string
	Command string
}

// Config is an ordered snippet configuration, keeping the YAML
// document's section order for listing.
type Config struct {
	Name     string
	Path     string
	Sections []Section
}

// Load reads ~/.info/<name>.yaml.
func Load(name string) (*Config, error) {
	path := filepath.Join(common.SnippetsDir(), name+".yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(err, common.ErrorTypeConfiguration, "snippets_read",
			"configuration file not found: "+path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, common.WrapError(err, common.ErrorTypeConfiguration, "snippets_parse",
			"error parsing YAML configuration")
	}

	config := &Config{Name: name, Path: path}
	if len(doc.Content) == 0 {
		return config, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, common.NewConfigurationError("snippets_invalid",
			"snippet configuration must be a mapping of sections")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		section, err := parseSection(key.Value, value)
		if err != nil {
			return nil, err
		}
		config.Sections = append(config.Sections, section)
	}
	return config, nil
}

func parseSection(name string, value *yaml.Node) (Section, error) {
	section := Section{Name: name, Type: "text"}

	if value.Kind == yaml.ScalarNode {
		section.Content = value.Value
		return section, nil
	}
	if value.Kind != yaml.MappingNode {
		return section, common.NewConfigurationError("snippets_invalid",
			fmt.Sprintf("section '%s' must be a string or a mapping", name))
	}

	var fields struct {
		Type    string `yaml:"type"`
		Content string `yaml:"content"`
		File    string `yaml:"file"`
		Command string `yaml:"command"`
	}
	if err := value.Decode(&fields); err != nil {
		return section, common.WrapError(err, common.ErrorTypeConfiguration, "snippets_invalid",
			fmt.Sprintf("invalid section '%s'", name))
	}

	if fields.Type != "" {
		section.Type = fields.Type
	}
	section.Content = fields.Content
	section.File = fields.File
	section.Command = fields.Command
	return section, nil
}

// Find resolves a section by exact name first, then by unique prefix.
// When the prefix is ambiguous all matches are returned.
func (c *Config) Find(input string) (*Section, []Section) {
	for i := range c.Sections {
		if c.Sections[i].Name == input {
			return &c.Sections[i], nil
		}
	}

	var matches []Section
	for _, section := range c.Sections {
		if strings.HasPrefix(section.Name, input) {
			matches = append(matches, section)
		}
	}
	if len(matches) == 1 {
		return &matches[0], matches
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return nil, matches
}

// Resolve produces the text to copy for a section: literal content,
// a file's contents (relative paths resolve under ~/.info), or the
// output of a shell command.
func (s *Section) Resolve() (string, error) {
	switch s.Type {
	case "text":
		if s.Content == "" {
			return "", common.NewConfigurationError("snippets_invalid",
				fmt.Sprintf("section '%s' of type 'text' requires 'content' attribute", s.Name))
		}
		return s.Content, nil

	case "file":
		if s.File == "" {
			return "", common.NewConfigurationError("snippets_invalid",
				fmt.Sprintf("section '%s' of type 'file' requires 'file' attribute", s.Name))
		}
		path := common.ExpandUser(s.File)
		if !filepath.IsAbs(path) {
			path = filepath.Join(common.SnippetsDir(), path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", common.WrapError(err, common.ErrorTypeStorage, "snippets_file_read",
				"file not found: "+path)
		}
		return string(data), nil

	case "program":
		if s.Command == "" {
			return "", common.NewConfigurationError("snippets_invalid",
				fmt.Sprintf("section '%s' of type 'program' requires 'command' attribute", s.Name))
		}
		output, err := exec.Command("sh", "-c", s.Command).Output()
		if err != nil {
			return "", common.WrapError(err, common.ErrorTypeInternal, "snippets_command_failed",
				fmt.Sprintf("command failed for section '%s'", s.Name))
		}
		return string(output), nil

	default:
		return "", common.NewConfigurationError("snippets_invalid",
			fmt.Sprintf("unknown section type '%s' in section '%s'", s.Type, s.Name))
	}
}
