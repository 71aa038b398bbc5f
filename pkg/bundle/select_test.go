package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func relPaths(candidates []Candidate) []string {
	paths := make([]string, len(candidates))
	for i, c := range candidates {
		paths[i] = c.RelPath
	}
	return paths
}

func TestSelectFilesFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.cs", []byte("class A {}"))
	writeTestFile(t, dir, "b.txt", []byte("notes"))
	writeTestFile(t, dir, "c.cs", []byte("class C {}"))

	candidates, err := SelectFiles(dir, ParseExtensions("cs"), DefaultMatcher(), zap.NewNop())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.cs", "c.cs"}, relPaths(candidates))
}

func TestSelectFilesExtensionMatchingIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "Upper.CS", []byte("class U {}"))

	candidates, err := SelectFiles(dir, ParseExtensions(".Cs"), DefaultMatcher(), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"Upper.CS"}, relPaths(candidates))
}

func TestSelectFilesIgnoresUnknownRequestedExtension(t *testing.T) {
	// The command path does not cross-validate requested extensions
	// against the tree; unknown entries simply match nothing.
	dir := t.TempDir()
	writeTestFile(t, dir, "a.cs", []byte("class A {}"))

	candidates, err := SelectFiles(dir, ParseExtensions("cs,nonexistent"), DefaultMatcher(), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"a.cs"}, relPaths(candidates))
}

func TestSelectFilesAllSentinelBypassesExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.cs", []byte("class A {}"))
	writeTestFile(t, dir, "b.txt", []byte("notes"))
	writeTestFile(t, dir, "noext", []byte("raw text"))

	candidates, err := SelectFiles(dir, ParseExtensions("all"), DefaultMatcher(), zap.NewNop())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.cs", "b.txt", "noext"}, relPaths(candidates))
}

func TestSelectFilesExcludesBinaryFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.txt", []byte("text"))
	writeTestFile(t, dir, "b.bin", []byte{0x00, 0xFF, 0x13, 0x37})

	candidates, err := SelectFiles(dir, ParseExtensions("all"), DefaultMatcher(), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt"}, relPaths(candidates))
}

func TestSelectFilesExcludesHiddenFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "visible.txt", []byte("text"))
	writeTestFile(t, dir, ".hidden.txt", []byte("text"))

	candidates, err := SelectFiles(dir, ParseExtensions("all"), DefaultMatcher(), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"visible.txt"}, relPaths(candidates))
}

func TestSelectFilesSkipsExcludedDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bin"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	writeTestFile(t, filepath.Join(dir, "src"), "app.cs", []byte("class App {}"))
	writeTestFile(t, filepath.Join(dir, "bin"), "app.cs", []byte("built"))
	writeTestFile(t, filepath.Join(dir, ".git"), "config.cs", []byte("x"))

	candidates, err := SelectFiles(dir, ParseExtensions("cs"), DefaultMatcher(), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"src/app.cs"}, relPaths(candidates))
}

func TestSelectFilesMissingSource(t *testing.T) {
	_, err := SelectFiles(filepath.Join(t.TempDir(), "missing"), ParseExtensions("all"), DefaultMatcher(), zap.NewNop())

	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestSelectFilesSourceIsAFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "file.txt", []byte("x"))

	_, err := SelectFiles(path, ParseExtensions("all"), DefaultMatcher(), zap.NewNop())

	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestSelectFilesNoMatches(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.txt", []byte("text"))

	_, err := SelectFiles(dir, ParseExtensions("cs"), DefaultMatcher(), zap.NewNop())

	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestDiscoverExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bin"), 0o755))
	writeTestFile(t, dir, "a.cs", []byte("class A {}"))
	writeTestFile(t, dir, "b.TXT", []byte("notes"))
	writeTestFile(t, dir, "c.cs", []byte("class C {}"))
	writeTestFile(t, dir, "noext", []byte("raw"))
	writeTestFile(t, filepath.Join(dir, "bin"), "d.dll.txt", []byte("ignored dir"))

	exts, err := DiscoverExtensions(dir, DefaultMatcher(), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"cs", "txt"}, exts)
}

func TestDiscoverExtensionsEmptyTree(t *testing.T) {
	exts, err := DiscoverExtensions(t.TempDir(), DefaultMatcher(), zap.NewNop())

	require.NoError(t, err)
	assert.Empty(t, exts)
}
