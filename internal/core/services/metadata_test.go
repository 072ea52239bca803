package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDoc creates a file at rel under dir, creating parent directories.
func writeDoc(t *testing.T, dir, rel, content string) string {
	t.Helper()
	abs := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0644))
	return abs
}

func TestMetadataCache_Metadata(t *testing.T) {
	t.Run("extracts first heading as title", func(t *testing.T) {
		dir := t.TempDir()
		content := "# Getting Started\n\nSome intro.\n"
		abs := writeDoc(t, dir, "guide.md", content)

		cache := NewMetadataCache()
		info, err := cache.Metadata(abs, "guide.md")

		require.NoError(t, err)
		assert.Equal(t, "Getting Started", info.Title)
		assert.Equal(t, "guide.md", info.Path)
		assert.Equal(t, int64(len(content)), info.Size)
		assert.Len(t, info.Hash, 32)
		assert.False(t, info.Modified.IsZero())
	})

	t.Run("heading beyond line ten is ignored", func(t *testing.T) {
		dir := t.TempDir()
		content := strings.Repeat("text\n", 10) + "# Late Heading\n"
		abs := writeDoc(t, dir, "late.md", content)

		cache := NewMetadataCache()
		info, err := cache.Metadata(abs, "late.md")

		require.NoError(t, err)
		assert.Equal(t, "Late", info.Title)
	})

	t.Run("heading on line ten counts", func(t *testing.T) {
		dir := t.TempDir()
		content := strings.Repeat("text\n", 9) + "# Just In Time\n"
		abs := writeDoc(t, dir, "tenth.md", content)

		cache := NewMetadataCache()
		info, err := cache.Metadata(abs, "tenth.md")

		require.NoError(t, err)
		assert.Equal(t, "Just In Time", info.Title)
	})

	t.Run("filename fallback title-cases separators", func(t *testing.T) {
		dir := t.TempDir()
		abs := writeDoc(t, dir, "getting-started_guide.md", "no heading here\n")

		cache := NewMetadataCache()
		info, err := cache.Metadata(abs, "getting-started_guide.md")

		require.NoError(t, err)
		assert.Equal(t, "Getting Started Guide", info.Title)
	})

	t.Run("relative path is slash separated", func(t *testing.T) {
		dir := t.TempDir()
		rel := filepath.Join("guides", "setup.md")
		abs := writeDoc(t, dir, "guides/setup.md", "# Setup\n")

		cache := NewMetadataCache()
		info, err := cache.Metadata(abs, rel)

		require.NoError(t, err)
		assert.Equal(t, "guides/setup.md", info.Path)
	})

	t.Run("cached entry survives file changes until Clear", func(t *testing.T) {
		dir := t.TempDir()
		abs := writeDoc(t, dir, "doc.md", "# Original\n")

		cache := NewMetadataCache()
		first, err := cache.Metadata(abs, "doc.md")
		require.NoError(t, err)

		writeDoc(t, dir, "doc.md", "# Rewritten\n")

		stale, err := cache.Metadata(abs, "doc.md")
		require.NoError(t, err)
		assert.Equal(t, first.Title, stale.Title)
		assert.Equal(t, first.Hash, stale.Hash)

		cache.Clear()
		fresh, err := cache.Metadata(abs, "doc.md")
		require.NoError(t, err)
		assert.Equal(t, "Rewritten", fresh.Title)
		assert.NotEqual(t, first.Hash, fresh.Hash)
	})

	t.Run("missing file returns error and caches nothing", func(t *testing.T) {
		dir := t.TempDir()
		abs := filepath.Join(dir, "absent.md")

		cache := NewMetadataCache()
		_, err := cache.Metadata(abs, "absent.md")

		require.Error(t, err)
		assert.Equal(t, 0, cache.Len())
	})
}

func TestFallbackTitle(t *testing.T) {
	tests := []struct {
		rel      string
		expected string
	}{
		{"getting-started.md", "Getting Started"},
		{"api_reference.md", "Api Reference"},
		{"README.md", "README"},
		{"guides/deep-dive.md", "Deep Dive"},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.expected, fallbackTitle(tt.rel))
		})
	}
}
