package gitbatch

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Synchronizer iterates first-level subdirectories and brings each
// repository in sync with its remote. Repositories on other branches
// are only touched when clean, and processing stops on the first
// rebase or stash-pop conflict.
type Synchronizer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewSynchronizer(in io.Reader, out io.Writer) *Synchronizer {
	return &Synchronizer{in: bufio.NewReader(in), out: out}
}

// Run returns the name of the repository that failed, or "" when all
// were processed.
func (s *Synchronizer) Run(searchPath, commitMessage string) (string, error) {
	subdirs, err := Subdirectories(searchPath)
	if err != nil {
		return "", err
	}
	if len(subdirs) == 0 {
		fmt.Fprintln(s.out, "No subdirectories found.")
		return "", nil
	}
	fmt.Fprintf(s.out, "Found %d subdirectories\n", len(subdirs))

	for _, dir := range subdirs {
		if !s.processRepository(dir, commitMessage) {
			return filepath.Base(dir), nil
		}
	}
	return "", nil
}

func (s *Synchronizer) processRepository(dir, commitMessage string) bool {
	name := filepath.Base(dir)
	fmt.Fprintf(s.out, "\nProcessing repository: %s\n", name)

	if !IsRepository(dir) {
		fmt.Fprintln(s.out, "  Not a git repository, skipping")
		return true
	}

	branch := CurrentBranch(dir)
	if branch != "main" {
		return s.handleOtherBranch(dir, branch)
	}

	if !HasChanges(dir) {
		fmt.Fprintln(s.out, "  ✓ No changes detected, pulling latest changes...")
		if ok, _, stderr := Git(dir, "pull"); !ok {
			fmt.Fprintf(s.out, "  ✗ Failed to pull: %s\n", stderr)
			return false
		}
		fmt.Fprintln(s.out, "  ✓ Pulled latest changes")
		return true
	}

	status := Status(dir)
	fmt.Fprintf(s.out, "  Changes in %s:\n", name)
	for _, line := range strings.Split(status, "\n") {
		fmt.Fprintf(s.out, "    %s\n", line)
	}

	switch s.strategy() {
	case "a":
		return s.commitRebasePush(dir, commitMessage)
	case "b":
		return s.stashPullPop(dir)
	default:
		fmt.Fprintln(s.out, "  Skipping repository")
		return true
	}
}

// handleOtherBranch offers to switch a clean repository back to main.
func (s *Synchronizer) handleOtherBranch(dir, branch string) bool {
	fmt.Fprintf(s.out, "  Not on main branch (currently on '%s')\n", branch)

	if HasChanges(dir) {
		fmt.Fprintln(s.out, "  Has uncommitted changes, skipping")
		return true
	}
	fmt.Fprintln(s.out, "  No uncommitted changes detected")

	for {
		fmt.Fprint(s.out, "  Switch to main branch and pull? (y/n/s): ")
		answer, err := s.in.ReadString('\n')
		if err != nil && answer == "" {
			return true
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y":
			if ok, _, stderr := Git(dir, "checkout", "main"); !ok {
				fmt.Fprintf(s.out, "  ✗ Failed to checkout main: %s\n", stderr)
				return false
			}
			fmt.Fprintln(s.out, "  ✓ Switched to main branch")
			if ok, _, stderr := Git(dir, "pull"); !ok {
				fmt.Fprintf(s.out, "  ✗ Failed to pull: %s\n", stderr)
				return false
			}
			fmt.Fprintln(s.out, "  ✓ Pulled latest changes")
			return true
		case "n":
			fmt.Fprintf(s.out, "  Staying on '%s' branch\n", branch)
			return true
		case "s":
			fmt.Fprintln(s.out, "  Skipping repository")
			return true
		}
		fmt.Fprintln(s.out, "  Invalid choice. Please enter 'y', 'n', or 's'.")
	}
}

func (s *Synchronizer) strategy() string {
	for {
		fmt.Fprintln(s.out, "\nChoose synchronization strategy:")
		fmt.Fprintln(s.out, "  a) Commit + pull with rebase + push")
		fmt.Fprintln(s.out, "  b) Stash + pull + stash pop")
		fmt.Fprintln(s.out, "  s) Skip this repository")
		fmt.Fprint(s.out, "Enter choice (a/b/s): ")

		line, err := s.in.ReadString('\n')
		if err != nil && line == "" {
			return "s"
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "a":
			return "a"
		case "b":
			return "b"
		case "s":
			return "s"
		}
		fmt.Fprintln(s.out, "Invalid choice. Please enter 'a', 'b', or 's'.")
	}
}

func (s *Synchronizer) commitRebasePush(dir, commitMessage string) bool {
	fmt.Fprintln(s.out, "  → Executing commit + rebase + push strategy...")

	if ok, _, stderr := Git(dir, "add", "."); !ok {
		fmt.Fprintf(s.out, "  ✗ Failed to stage changes: %s\n", stderr)
		return false
	}
	if ok, _, stderr := Git(dir, "commit", "-m", commitMessage); !ok {
		fmt.Fprintf(s.out, "  ✗ Failed to commit changes: %s\n", stderr)
		return false
	}
	fmt.Fprintln(s.out, "  ✓ Committed changes")

	if ok, _, stderr := Git(dir, "pull", "--rebase"); !ok {
		fmt.Fprintf(s.out, "  ✗ Rebase failed: %s\n", stderr)
		fmt.Fprintf(s.out, "  Manual intervention required in %s\n", filepath.Base(dir))
		return false
	}
	fmt.Fprintln(s.out, "  ✓ Pulled with rebase")

	if ok, _, stderr := Git(dir, "push"); !ok {
		fmt.Fprintf(s.out, "  ✗ Failed to push: %s\n", stderr)
		return false
	}
	fmt.Fprintln(s.out, "  ✓ Pushed changes")
	return true
}

func (s *Synchronizer) stashPullPop(dir string) bool {
	fmt.Fprintln(s.out, "  → Executing stash + pull + stash pop strategy...")

	if ok, _, stderr := Git(dir, "stash", "push", "-m", "github-synchronize auto-stash"); !ok {
		fmt.Fprintf(s.out, "  ✗ Failed to stash changes: %s\n", stderr)
		return false
	}
	fmt.Fprintln(s.out, "  ✓ Stashed changes")

	if ok, _, stderr := Git(dir, "pull"); !ok {
		fmt.Fprintf(s.out, "  ✗ Failed to pull: %s\n", stderr)
		return false
	}
	fmt.Fprintln(s.out, "  ✓ Pulled changes")

	if ok, _, stderr := Git(dir, "stash", "pop"); !ok {
		fmt.Fprintf(s.out, "  ✗ Stash pop failed (conflicts): %s\n", stderr)
		fmt.Fprintf(s.out, "  Manual intervention required in %s\n", filepath.Base(dir))
		return false
	}
	fmt.Fprintln(s.out, "  ✓ Applied stashed changes")
	return true
}
