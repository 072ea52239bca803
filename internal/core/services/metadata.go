package services

import (
	"bufio"
	"bytes"
	"crypto/md5" //nolint:gosec // change detection, not security
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/custodia-labs/docserve/internal/core/domain"
)

// titleScanLimit bounds how many lines are inspected for an H1 heading.
const titleScanLimit = 10

// MetadataCache memoises document metadata keyed by absolute file path.
// Entries are never invalidated individually; Clear drops everything at
// once. A file modified after first access therefore reports stale
// title/size/hash until the next rebuild - that is the documented
// contract, matching the indexer's full-invalidation granularity.
type MetadataCache struct {
	mu      sync.RWMutex
	entries map[string]domain.DocumentInfo
}

// NewMetadataCache creates an empty metadata cache.
func NewMetadataCache() *MetadataCache {
	return &MetadataCache{
		entries: make(map[string]domain.DocumentInfo),
	}
}

// Get returns the cached metadata for absPath, if present.
func (c *MetadataCache) Get(absPath string) (domain.DocumentInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info, ok := c.entries[absPath]
	return info, ok
}

// Clear drops all cached entries. This is the only invalidation
// granularity the cache supports.
func (c *MetadataCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]domain.DocumentInfo)
}

// Len returns the number of cached entries.
func (c *MetadataCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *MetadataCache) put(absPath string, info domain.DocumentInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[absPath] = info
}

// Metadata derives the metadata record for the file at absPath, using
// the cache when possible. relPath is stored as the document path.
// Title extraction fails soft (filename fallback); stat or read
// failures propagate as errors and nothing is cached.
func (c *MetadataCache) Metadata(absPath, relPath string) (domain.DocumentInfo, error) {
	if info, ok := c.Get(absPath); ok {
		return info, nil
	}

	fi, err := os.Stat(absPath)
	if err != nil {
		return domain.DocumentInfo{}, fmt.Errorf("stat %s: %w", relPath, err)
	}

	raw, err := os.ReadFile(absPath)
	if err != nil {
		return domain.DocumentInfo{}, fmt.Errorf("read %s: %w", relPath, err)
	}

	sum := md5.Sum(raw) //nolint:gosec // change detection, not security
	info := domain.DocumentInfo{
		Title:    extractTitle(raw, relPath),
		Path:     filepath.ToSlash(relPath),
		Modified: fi.ModTime(),
		Size:     fi.Size(),
		Hash:     hex.EncodeToString(sum[:]),
	}

	c.put(absPath, info)
	return info, nil
}

// extractTitle returns the text of the first H1 heading within the
// first titleScanLimit lines, or a filename-derived fallback.
func extractTitle(raw []byte, relPath string) string {
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for line := 0; line < titleScanLimit && scanner.Scan(); line++ {
		text := scanner.Text()
		if strings.HasPrefix(text, "# ") {
			if title := strings.TrimSpace(text[2:]); title != "" {
				return title
			}
		}
	}
	return fallbackTitle(relPath)
}

// fallbackTitle derives a deterministic title from the filename:
// extension stripped, separators replaced by spaces, words title-cased.
func fallbackTitle(relPath string) string {
	name := filepath.Base(relPath)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")

	words := strings.Fields(name)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
