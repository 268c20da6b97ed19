// Package scan audits an existing worktree for file names that the push
// gate would reject, so repositories can be cleaned up before the hook
// is enabled.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/codimo/refgate/internal/gate"
	"golang.org/x/sync/errgroup"
)

// Worktree walks root and returns the relative paths of all entries
// whose names violate the file naming policy, sorted. Subdirectories
// are scanned in parallel.
func Worktree(root string) ([]string, error) {
	var (
		g         errgroup.Group
		mu        sync.Mutex
		offenders []string
	)

	var scanDir func(dir string) error
	scanDir = func(dir string) error {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() && entry.Name() == ".git" {
				continue
			}

			path := filepath.Join(dir, entry.Name())

			if gate.Disallowed(entry.Name()) {
				rel, err := filepath.Rel(root, path)
				if err != nil {
					rel = path
				}
				mu.Lock()
				offenders = append(offenders, rel)
				mu.Unlock()
			}

			if entry.IsDir() {
				subdir := path
				g.Go(func() error {
					return scanDir(subdir)
				})
			}
		}

		return nil
	}

	if err := scanDir(root); err != nil {
		return nil, err
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(offenders)
	return offenders, nil
}
