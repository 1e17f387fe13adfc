// Package gitbatch implements batch git operations over a directory
// of repositories.
package gitbatch

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// Git runs one git command in a repository and returns its trimmed
// stdout and stderr. ok is false on a non-zero exit.
func Git(repoPath string, args ...string) (ok bool, stdout, stderr string) {
	cmd := exec.Command("git", args...)
	cmd.Dir = repoPath

	var outBuf, errBuf strings.Builder
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	return err == nil, strings.TrimSpace(outBuf.String()), strings.TrimSpace(errBuf.String())
}

// GitInteractive runs git attached to the terminal, for commands that
// open an editor.
func GitInteractive(repoPath string, args ...string) bool {
	cmd := exec.Command("git", args...)
	cmd.Dir = repoPath
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run() == nil
}

// IsRepository reports whether the directory carries a .git entry.
func IsRepository(path string) bool {
	_, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil
}

// CurrentBranch returns the checked-out branch name, or "" when it
// cannot be determined.
func CurrentBranch(repoPath string) string {
	ok, out, _ := Git(repoPath, "branch", "--show-current")
	if !ok {
		return ""
	}
	return out
}

// HasChanges reports staged, unstaged or untracked changes.
func HasChanges(repoPath string) bool {
	if ok, _, _ := Git(repoPath, "diff", "--cached", "--quiet"); !ok {
		return true
	}
	if ok, _, _ := Git(repoPath, "diff", "--quiet"); !ok {
		return true
	}
	ok, out, _ := Git(repoPath, "ls-files", "--others", "--exclude-standard")
	return ok && out != ""
}

// Status returns the porcelain status output.
func Status(repoPath string) string {
	_, out, _ := Git(repoPath, "status", "--porcelain")
	return out
}

// FindRepositories returns the search directory itself (when it is a
// repository) followed by its first-level repository subdirectories.
// Hidden directories are skipped.
func FindRepositories(searchPath string) ([]string, error) {
	root, err := filepath.Abs(searchPath)
	if err != nil {
		return nil, err
	}

	var repos []string
	if IsRepository(root) {
		repos = append(repos, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if IsRepository(path) {
			repos = append(repos, path)
		}
	}
	return repos, nil
}

// Subdirectories returns the sorted non-hidden first-level
// subdirectories of a path.
func Subdirectories(searchPath string) ([]string, error) {
	root, err := filepath.Abs(searchPath)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			dirs = append(dirs, filepath.Join(root, entry.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}
