package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docserve/internal/adapters/driven/config/file"
)

func newTestStore(t *testing.T) *file.ConfigStore {
	t.Helper()
	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

// pointContainerDirAway keeps the shared /app/docs candidate out of the
// way so each subtest controls exactly which candidates exist.
func pointContainerDirAway(t *testing.T) {
	t.Helper()
	original := containerDocsDir
	containerDocsDir = filepath.Join(t.TempDir(), "appdocs")
	t.Cleanup(func() { containerDocsDir = original })
}

func TestResolveDocsRoot(t *testing.T) {
	t.Run("flag is an explicit override", func(t *testing.T) {
		pointContainerDirAway(t)
		t.Setenv("DOCS_DIR", "/elsewhere")
		store := newTestStore(t)
		require.NoError(t, store.Set(file.KeyDocsDir, "/config-docs"))

		dir := t.TempDir()
		root, err := resolveDocsRoot(dir, store)

		require.NoError(t, err)
		assert.Equal(t, dir, root)
	})

	t.Run("existing environment directory wins over config", func(t *testing.T) {
		pointContainerDirAway(t)
		dir := t.TempDir()
		t.Setenv("DOCS_DIR", dir)
		store := newTestStore(t)
		require.NoError(t, store.Set(file.KeyDocsDir, t.TempDir()))

		root, err := resolveDocsRoot("", store)

		require.NoError(t, err)
		assert.Equal(t, dir, root)
	})

	t.Run("missing environment directory falls through to an existing candidate", func(t *testing.T) {
		pointContainerDirAway(t)
		cwd := t.TempDir()
		t.Chdir(cwd)
		require.NoError(t, os.Mkdir(filepath.Join(cwd, "docs"), 0755))
		t.Setenv("DOCS_DIR", filepath.Join(t.TempDir(), "does-not-exist"))
		store := newTestStore(t)

		root, err := resolveDocsRoot("", store)

		require.NoError(t, err)
		assert.Equal(t, "docs", filepath.Base(root))
		fi, err := os.Stat(root)
		require.NoError(t, err)
		assert.True(t, fi.IsDir())
	})

	t.Run("existing config directory applies when env is empty", func(t *testing.T) {
		pointContainerDirAway(t)
		t.Setenv("DOCS_DIR", "")
		dir := t.TempDir()
		store := newTestStore(t)
		require.NoError(t, store.Set(file.KeyDocsDir, dir))

		root, err := resolveDocsRoot("", store)

		require.NoError(t, err)
		assert.Equal(t, dir, root)
	})

	t.Run("container directory wins over docs fallback when it exists", func(t *testing.T) {
		pointContainerDirAway(t)
		require.NoError(t, os.MkdirAll(containerDocsDir, 0755))
		cwd := t.TempDir()
		t.Chdir(cwd)
		require.NoError(t, os.Mkdir(filepath.Join(cwd, "docs"), 0755))
		t.Setenv("DOCS_DIR", "")
		store := newTestStore(t)

		root, err := resolveDocsRoot("", store)

		require.NoError(t, err)
		assert.Equal(t, containerDocsDir, root)
	})

	t.Run("no existing candidate creates the first one", func(t *testing.T) {
		pointContainerDirAway(t)
		t.Chdir(t.TempDir())
		envDir := filepath.Join(t.TempDir(), "env-docs")
		t.Setenv("DOCS_DIR", envDir)
		store := newTestStore(t)

		root, err := resolveDocsRoot("", store)

		require.NoError(t, err)
		assert.Equal(t, envDir, root)

		fi, err := os.Stat(root)
		require.NoError(t, err)
		assert.True(t, fi.IsDir())
	})

	t.Run("nothing configured creates the docs fallback", func(t *testing.T) {
		pointContainerDirAway(t)
		t.Setenv("DOCS_DIR", "")
		cwd := t.TempDir()
		t.Chdir(cwd)
		store := newTestStore(t)

		root, err := resolveDocsRoot("", store)

		require.NoError(t, err)
		assert.Equal(t, "docs", filepath.Base(root))

		fi, err := os.Stat(root)
		require.NoError(t, err)
		assert.True(t, fi.IsDir())
	})
}

func TestBuildGenerator(t *testing.T) {
	t.Run("no key anywhere yields nil generator", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		store := newTestStore(t)

		gen, err := buildGenerator(store)

		require.NoError(t, err)
		assert.Nil(t, gen)
	})

	t.Run("environment key enables generation", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-env")
		store := newTestStore(t)

		gen, err := buildGenerator(store)

		require.NoError(t, err)
		require.NotNil(t, gen)
		assert.Equal(t, "gpt-4o-mini", gen.ModelName())
	})

	t.Run("config key and model apply without env", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		store := newTestStore(t)
		require.NoError(t, store.Set(file.KeyOpenAIAPIKey, "sk-config"))
		require.NoError(t, store.Set(file.KeyOpenAIModel, "gpt-4"))

		gen, err := buildGenerator(store)

		require.NoError(t, err)
		require.NotNil(t, gen)
		assert.Equal(t, "gpt-4", gen.ModelName())
	})
}
