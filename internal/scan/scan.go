// Package scan collects candidate utility classes from slide sources.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/slidetheme/tw"
)

// DefaultConcurrency bounds how many files are read at once.
const DefaultConcurrency = 8

// Scanner walks content paths and extracts class candidates.
type Scanner struct {
	Extensions  []string
	Concurrency int
}

// Files expands paths into the list of files to scan. Directories are walked
// recursively and filtered by extension; explicit files are always kept.
// Paths that do not exist are skipped. Hidden directories and node_modules
// are not descended into.
func (s Scanner) Files(paths []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if s.matches(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// Scan reads every file under paths and returns the sorted, de-duplicated
// class candidates found in them.
func (s Scanner) Scan(ctx context.Context, paths []string) ([]string, error) {
	files, err := s.Files(paths)
	if err != nil {
		return nil, err
	}

	limit := s.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{})
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			classes := tw.Extract(string(data))

			mu.Lock()
			defer mu.Unlock()
			for _, c := range classes {
				seen[c] = struct{}{}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	slices.Sort(out)
	return out, nil
}

func (s Scanner) matches(path string) bool {
	if len(s.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(s.Extensions, ext)
}

func skipDir(name string) bool {
	return name == "node_modules" || (strings.HasPrefix(name, ".") && name != ".")
}
