// Package gitcmd implements the gate's collaborators on top of the git
// command line tools.
package gitcmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// runGit runs a git subcommand and returns its stdout. When gitDir is
// non-empty it overrides GIT_DIR for the call.
func runGit(gitDir string, args ...string) ([]byte, error) {
	cmd := exec.Command("git", args...)
	if gitDir != "" {
		cmd.Env = append(os.Environ(), "GIT_DIR="+gitDir)
	}
	return cmd.Output()
}

// Config reads configuration keys via `git config`
type Config struct {
	// GitDir overrides the repository the lookups run against. Empty
	// means the process environment decides.
	GitDir string
}

// GetString returns the raw value of a key, or "" when it is unset
func (c *Config) GetString(key string) string {
	out, err := runGit(c.GitDir, "config", "--get", key)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// GetBool returns the canonicalized boolean value of a key; unset or
// unparseable values read as false
func (c *Config) GetBool(key string) bool {
	out, err := runGit(c.GitDir, "config", "--get", "--bool", key)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "true"
}

// Differ lists changed paths using the git diff machinery
type Differ struct {
	GitDir string
}

// ListChangedPaths returns the file paths changed across rangeSpec.
// Output is requested NUL-separated so paths arrive as raw bytes,
// without the display quoting core.quotepath would otherwise apply.
func (d *Differ) ListChangedPaths(rangeSpec string) ([]string, error) {
	out, err := runGit(d.GitDir, "diff", "--name-only", "-z", rangeSpec)
	if err != nil {
		return nil, fmt.Errorf("diff lookup for %s failed: %w", rangeSpec, err)
	}
	return splitNullTerminated(out), nil
}

// splitNullTerminated splits NUL-separated command output into paths
func splitNullTerminated(out []byte) []string {
	var paths []string
	for _, p := range bytes.Split(out, []byte{0}) {
		if len(p) > 0 {
			paths = append(paths, string(p))
		}
	}
	return paths
}
