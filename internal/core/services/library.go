package services

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/docserve/internal/core/domain"
	"github.com/custodia-labs/docserve/internal/core/ports/driving"
	"github.com/custodia-labs/docserve/internal/logger"
)

// Ensure Library implements the interface.
var _ driving.LibraryService = (*Library)(nil)

// servableExtensions are the file types the docs:// resource serves.
// Listing, search, and indexing cover only .md files.
var servableExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// ScanOutcome reports one file visited during a markdown walk. Err is
// set when the entry could not be visited; callers decide whether to
// skip it or record it.
type ScanOutcome struct {
	AbsPath string
	RelPath string
	Err     error
}

// Library serves documents from the docs root. All reads are
// open-read-close; no handles are held across calls.
type Library struct {
	root  string
	cache *MetadataCache
}

// NewLibrary creates a library rooted at root, sharing cache with the
// other services.
func NewLibrary(root string, cache *MetadataCache) *Library {
	return &Library{root: root, cache: cache}
}

// Root returns the documentation root directory.
func (l *Library) Root() string {
	return l.root
}

// Cache returns the shared metadata cache.
func (l *Library) Cache() *MetadataCache {
	return l.cache
}

// List returns metadata for every markdown file under directory,
// sorted by path. A non-existent directory yields an empty list.
// Files whose metadata cannot be derived are skipped.
func (l *Library) List(ctx context.Context, directory string) ([]domain.DocumentInfo, error) {
	dir := l.root
	if directory != "" {
		resolved, err := l.resolve(directory)
		if err != nil {
			return nil, err
		}
		dir = resolved
	}

	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return []domain.DocumentInfo{}, nil
	}

	outcomes := l.ScanMarkdown(dir)

	docs := make([]domain.DocumentInfo, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			logger.Debug("list: skipping %s: %v", o.RelPath, o.Err)
			continue
		}
		info, err := l.cache.Metadata(o.AbsPath, o.RelPath)
		if err != nil {
			logger.Debug("list: skipping %s: %v", o.RelPath, err)
			continue
		}
		docs = append(docs, info)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Path < docs[j].Path
	})

	return docs, nil
}

// Read returns the raw text of the documentation file at path.
func (l *Library) Read(ctx context.Context, path string) (string, error) {
	abs, err := l.resolve(path)
	if err != nil {
		return "", err
	}

	if ext := strings.ToLower(filepath.Ext(abs)); !servableExtensions[ext] {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedType, filepath.Ext(abs))
	}

	fi, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("documentation file %s: %w", path, domain.ErrNotFound)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return "", fmt.Errorf("path %s: %w", path, domain.ErrNotFile)
	}

	raw, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(raw), nil
}

// ScanMarkdown walks dir recursively and returns one outcome per .md
// file found. Unreadable directory entries are reported as outcomes
// with Err set rather than aborting the walk.
func (l *Library) ScanMarkdown(dir string) []ScanOutcome {
	var outcomes []ScanOutcome

	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			rel, relErr := filepath.Rel(l.root, path)
			if relErr != nil {
				rel = path
			}
			outcomes = append(outcomes, ScanOutcome{
				AbsPath: path,
				RelPath: filepath.ToSlash(rel),
				Err:     err,
			})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) != ".md" {
			return nil
		}

		rel, relErr := filepath.Rel(l.root, path)
		if relErr != nil {
			outcomes = append(outcomes, ScanOutcome{AbsPath: path, RelPath: path, Err: relErr})
			return nil
		}
		outcomes = append(outcomes, ScanOutcome{
			AbsPath: path,
			RelPath: filepath.ToSlash(rel),
		})
		return nil
	})

	return outcomes
}

// resolve joins path onto the root and verifies it stays inside it.
func (l *Library) resolve(path string) (string, error) {
	abs := filepath.Join(l.root, filepath.FromSlash(path))

	rootAbs, err := filepath.Abs(l.root)
	if err != nil {
		return "", fmt.Errorf("resolve root: %w", err)
	}
	pathAbs, err := filepath.Abs(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	if pathAbs != rootAbs && !strings.HasPrefix(pathAbs, rootAbs+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s escapes the docs root: %w", path, domain.ErrInvalidInput)
	}
	return pathAbs, nil
}
