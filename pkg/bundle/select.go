package bundle

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Candidate is a file that survived every exclusion filter and is eligible
// for bundling. Candidates are computed per run and never persisted.
type Candidate struct {
	Path    string // absolute path
	RelPath string // path relative to the source root, forward slashes
	Name    string // base file name
	Ext     string // normalized extension, may be empty
}

var (
	// ErrSourceNotFound reports a missing or non-directory source root.
	ErrSourceNotFound = errors.New("source directory not found")
	// ErrNoFiles reports that no candidate survived filtering.
	ErrNoFiles = errors.New("no files found")
	// ErrOutputDirNotFound reports a missing output parent directory.
	// The tool never creates directories.
	ErrOutputDirNotFound = errors.New("output directory not found")
)

// SelectFiles walks the source tree and returns every candidate file:
// not under an excluded directory, not hidden, not locked by another
// process, classified as text, and matching the requested extension set.
func SelectFiles(source string, exts ExtensionSet, m *Matcher, logger *zap.Logger) ([]Candidate, error) {
	absSource, err := filepath.Abs(source)
	if err != nil {
		return nil, ErrSourceNotFound
	}
	info, err := os.Stat(absSource)
	if err != nil || !info.IsDir() {
		return nil, ErrSourceNotFound
	}

	var candidates []Candidate
	err = filepath.WalkDir(absSource, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during scan", zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == absSource {
			return nil
		}

		relPath, relErr := filepath.Rel(absSource, path)
		if relErr != nil {
			logger.Warn("Unable to determine relative path", zap.String("path", path), zap.Error(relErr))
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if m.Matches(relPath + "/") {
				logger.Debug("Skipping excluded directory", zap.String("directory", relPath))
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") {
			logger.Debug("Skipping hidden file", zap.String("file", relPath))
			return nil
		}
		if m.Matches(relPath) {
			logger.Debug("Skipping excluded file", zap.String("file", relPath))
			return nil
		}

		locked, lockErr := IsLocked(path)
		if lockErr != nil {
			logger.Warn("Failed to probe file lock", zap.String("file", relPath), zap.Error(lockErr))
			return nil
		}
		if locked {
			logger.Debug("Skipping locked file", zap.String("file", relPath))
			return nil
		}

		if !IsTextFile(path) {
			logger.Debug("Skipping non-text file", zap.String("file", relPath))
			return nil
		}

		ext := NormalizeExt(filepath.Ext(name))
		if !exts.Contains(ext) {
			return nil
		}

		candidates = append(candidates, Candidate{
			Path:    path,
			RelPath: relPath,
			Name:    name,
			Ext:     ext,
		})
		logger.Debug("Selected candidate file", zap.String("file", relPath))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return nil, ErrNoFiles
	}
	return candidates, nil
}

// DiscoverExtensions returns the sorted distinct extensions of every text
// file under the source root, applying the same exclusion rules as
// SelectFiles. Files without an extension are not reported.
func DiscoverExtensions(source string, m *Matcher, logger *zap.Logger) ([]string, error) {
	candidates, err := SelectFiles(source, ExtensionSet{all: true}, m, logger)
	if err != nil {
		if errors.Is(err, ErrNoFiles) {
			return nil, nil
		}
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, c := range candidates {
		if c.Ext != "" {
			seen[c.Ext] = struct{}{}
		}
	}

	exts := make([]string, 0, len(seen))
	for ext := range seen {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts, nil
}
