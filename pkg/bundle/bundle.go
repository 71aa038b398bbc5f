// Package bundle implements the scan, filter, sort, and write pipeline that
// concatenates the text files of a source tree into a single output file.
package bundle

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Run executes the full bundling pipeline for the given options: validate the
// output location, select candidate files, order them, and write the bundle.
// The pipeline is a single synchronous pass; no two files are processed
// concurrently.
func Run(opts Options, logger *zap.Logger) error {
	startTime := time.Now()
	logger.Info("Starting bundle run",
		zap.String("source", opts.Source),
		zap.String("output", opts.Output),
		zap.String("languages", opts.Extensions.String()),
		zap.String("sort", string(opts.SortMode)))

	// The output parent directory must already exist; directories are
	// never created on the caller's behalf.
	if info, err := os.Stat(filepath.Dir(opts.Output)); err != nil || !info.IsDir() {
		return ErrOutputDirNotFound
	}

	candidates, err := SelectFiles(opts.Source, opts.Extensions, DefaultMatcher(), logger)
	if err != nil {
		return err
	}

	SortCandidates(candidates, opts.SortMode)

	if err := WriteBundle(opts, candidates, logger); err != nil {
		return err
	}

	logger.Info("Bundle run completed",
		zap.Int("files", len(candidates)),
		zap.String("output", opts.Output),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}
