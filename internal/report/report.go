// Package report renders grouped Markdown reports of Jira worklogs.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"randomtools/internal/models"
	"randomtools/internal/services"
)

type node struct {
	issues   map[string]*models.IssueWorklogs
	children map[string]*node
}

func newNode() *node {
	return &node{
		issues:   make(map[string]*models.IssueWorklogs),
		children: make(map[string]*node),
	}
}

func (n *node) insert(parts []string, issues map[string]*models.IssueWorklogs) {
	current := n
	for _, part := range parts {
		child, ok := current.children[part]
		if !ok {
			child = newNode()
			current.children[part] = child
		}
		current = child
	}
	for key, info := range issues {
		current.issues[key] = info
	}
}

func (n *node) totalSeconds() int {
	total := 0
	for _, info := range n.issues {
		total += info.TotalSeconds()
	}
	for _, child := range n.children {
		total += child.totalSeconds()
	}
	return total
}

// Generate renders the Markdown report for the period. Issues are
// grouped under their assigned section paths, truncated to level
// segments; unassigned issues fall under "Other".
func Generate(from, to time.Time, byIssue map[string]*models.IssueWorklogs, sections map[string]string, skipWorklogs bool, level int) string {
	var lines []string

	lines = append(lines,
		fmt.Sprintf("# Report from %s to %s", from.Format("2006-01-02"), to.Format("2006-01-02")),
		"")

	grandTotal := 0
	for _, info := range byIssue {
		grandTotal += info.TotalSeconds()
	}
	lines = append(lines, fmt.Sprintf("Total: %s", services.FormatDuration(grandTotal)), "")

	bySection := make(map[string]map[string]*models.IssueWorklogs)
	for key, info := range byIssue {
		section, ok := sections[key]
		if !ok {
			section = "Other"
		}
		parts := strings.Split(section, ":")
		if len(parts) > level {
			parts = parts[:level]
		}
		truncated := strings.Join(parts, ":")
		if bySection[truncated] == nil {
			bySection[truncated] = make(map[string]*models.IssueWorklogs)
		}
		bySection[truncated][key] = info
	}

	root := newNode()
	for sectionPath, issues := range bySection {
		root.insert(strings.Split(sectionPath, ":"), issues)
	}

	lines = renderNode(root, nil, 0, grandTotal, lines, skipWorklogs)

	return strings.Join(lines, "\n")
}

// renderNode walks the section tree depth-first. A node with no direct
// issues and exactly one child collapses into that child, joining the
// headings with ":".
func renderNode(n *node, pathParts []string, depth, grandTotal int, lines []string, skipWorklogs bool) []string {
	if len(n.issues) == 0 && len(n.children) == 1 {
		for name, child := range n.children {
			return renderNode(child, childPath(pathParts, name), depth, grandTotal, lines, skipWorklogs)
		}
	}

	if len(pathParts) > 0 {
		total := n.totalSeconds()
		pct := 0.0
		if grandTotal > 0 {
			pct = float64(total) / float64(grandTotal) * 100
		}
		heading := strings.Repeat("#", depth+1)
		lines = append(lines,
			fmt.Sprintf("%s %s (%s, %.0f%%)", heading, strings.Join(pathParts, ":"), services.FormatDuration(total), pct),
			"")
	}

	keys := make([]string, 0, len(n.issues))
	for key := range n.issues {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		info := n.issues[key]
		lines = append(lines, fmt.Sprintf("- %s: %s - %s", key, services.FormatDuration(info.TotalSeconds()), info.Summary))
		if !skipWorklogs {
			for _, wl := range info.Worklogs {
				if wl.Comment != "" {
					lines = append(lines, fmt.Sprintf("  - %s", wl.Comment))
				}
			}
		}
	}
	if len(keys) > 0 {
		lines = append(lines, "")
	}

	childNames := make([]string, 0, len(n.children))
	for name := range n.children {
		childNames = append(childNames, name)
	}
	sort.Strings(childNames)

	for _, name := range childNames {
		lines = renderNode(n.children[name], childPath(pathParts, name), depth+1, grandTotal, lines, skipWorklogs)
	}
	return lines
}

func childPath(pathParts []string, name string) []string {
	path := make([]string, 0, len(pathParts)+1)
	path = append(path, pathParts...)
	return append(path, name)
}
