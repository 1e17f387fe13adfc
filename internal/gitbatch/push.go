package gitbatch

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Pusher walks repositories with uncommitted changes and, per
// repository, lets the user commit-and-push automatically, commit
// manually, skip, or stop.
type Pusher struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPusher(in io.Reader, out io.Writer) *Pusher {
	return &Pusher{in: bufio.NewReader(in), out: out}
}

// Run processes all repositories under searchPath and returns how
// many were handled before finishing or stopping.
func (p *Pusher) Run(searchPath, commitMessage string) (int, error) {
	repos, err := FindRepositories(searchPath)
	if err != nil {
		return 0, err
	}
	if len(repos) == 0 {
		fmt.Fprintln(p.out, "No git repositories found in the search directory or subdirectories")
		return 0, nil
	}
	fmt.Fprintf(p.out, "Found %d git repositories\n", len(repos))

	var withChanges []string
	for _, repo := range repos {
		if HasChanges(repo) {
			withChanges = append(withChanges, repo)
		}
	}
	if len(withChanges) == 0 {
		fmt.Fprintln(p.out, "No repositories have uncommitted changes")
		return 0, nil
	}
	fmt.Fprintf(p.out, "Found %d repositories with changes\n", len(withChanges))

	processed := 0
	for _, repo := range withChanges {
		if !p.processRepository(repo, commitMessage) {
			break
		}
		processed++
	}

	fmt.Fprintf(p.out, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(p.out, "Processed %d of %d repositories\n", processed, len(withChanges))
	fmt.Fprintln(p.out, "Done!")
	return processed, nil
}

// processRepository returns false when the user chose to stop.
func (p *Pusher) processRepository(repo, commitMessage string) bool {
	fmt.Fprintf(p.out, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(p.out, "Repository: %s\n", filepath.Base(repo))
	fmt.Fprintf(p.out, "Path: %s\n", repo)
	fmt.Fprintf(p.out, "%s\n", strings.Repeat("=", 60))

	status := Status(repo)
	if status == "" {
		fmt.Fprintln(p.out, "No changes detected")
		return true
	}
	fmt.Fprintln(p.out, "Changes:")
	for _, line := range strings.Split(status, "\n") {
		fmt.Fprintf(p.out, "  %s\n", line)
	}

	switch p.choice() {
	case "1":
		fmt.Fprintf(p.out, "\nCommitting with message: '%s'\n", commitMessage)
		p.commitAllAndPush(repo, commitMessage)
	case "2":
		fmt.Fprintln(p.out, "\nOpening interactive commit...")
		p.commitManuallyAndPush(repo)
	case "3":
		fmt.Fprintln(p.out, "\nSkipping repository")
	case "4":
		fmt.Fprintln(p.out, "\nStopping processing")
		return false
	}
	return true
}

func (p *Pusher) choice() string {
	for {
		fmt.Fprintln(p.out, "\nChoose an action:")
		fmt.Fprintln(p.out, "  1. Commit all and push with default message")
		fmt.Fprintln(p.out, "  2. Commit manually and then push")
		fmt.Fprintln(p.out, "  3. Skip this repository")
		fmt.Fprintln(p.out, "  4. Stop processing")
		fmt.Fprint(p.out, "Enter choice (1-4): ")

		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return "4"
		}
		line = strings.TrimSpace(line)
		switch line {
		case "1", "2", "3", "4":
			return line
		}
		fmt.Fprintln(p.out, "Invalid choice. Please enter 1, 2, 3, or 4.")
	}
}

func (p *Pusher) commitAllAndPush(repo, commitMessage string) bool {
	if ok, _, stderr := Git(repo, "add", "."); !ok {
		fmt.Fprintf(p.out, "  ✗ Error: %s\n", stderr)
		return false
	}
	if ok, _, stderr := Git(repo, "commit", "-m", commitMessage); !ok {
		fmt.Fprintf(p.out, "  ✗ Error: %s\n", stderr)
		return false
	}
	if ok, _, stderr := Git(repo, "push"); !ok {
		fmt.Fprintf(p.out, "  ✗ Push failed: %s\n", stderr)
		return false
	}
	fmt.Fprintln(p.out, "  ✓ Successfully committed and pushed")
	return true
}

func (p *Pusher) commitManuallyAndPush(repo string) bool {
	if ok, _, stderr := Git(repo, "add", "."); !ok {
		fmt.Fprintf(p.out, "  ✗ Error: %s\n", stderr)
		return false
	}
	fmt.Fprintln(p.out, "  Added all changes to staging area")

	if !GitInteractive(repo, "commit") {
		fmt.Fprintln(p.out, "  ⚠ Commit cancelled or failed")
		return false
	}
	if ok, _, stderr := Git(repo, "push"); !ok {
		fmt.Fprintf(p.out, "  ✗ Push failed: %s\n", stderr)
		return false
	}
	fmt.Fprintln(p.out, "  ✓ Successfully committed and pushed")
	return true
}
