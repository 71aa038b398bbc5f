package bundle

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// separator is the fixed line written after every bundled file.
var separator = strings.Repeat("-", 80)

// WriteBundle streams the sorted candidates into the output file: an optional
// author banner first, then per file an optional source comment, the file's
// text, and the separator line. A candidate that fails to read is reported as
// skipped and does not abort the run.
func WriteBundle(opts Options, candidates []Candidate, logger *zap.Logger) error {
	outFile, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Warn("Failed to close output file", zap.String("file", opts.Output), zap.Error(closeErr))
		}
	}()

	writer := bufio.NewWriter(outFile)

	if opts.Author != "" {
		if _, err := fmt.Fprintf(writer, "Bundle created by: %s\n", opts.Author); err != nil {
			return fmt.Errorf("writing banner: %w", err)
		}
	}

	for _, c := range candidates {
		content, readErr := os.ReadFile(c.Path)
		if readErr != nil {
			fmt.Printf("Skipped %s: %v\n", c.RelPath, readErr)
			logger.Warn("Skipped unreadable file", zap.String("file", c.RelPath), zap.Error(readErr))
			continue
		}

		if opts.IncludeComments {
			if _, err := fmt.Fprintf(writer, "// Source: %s\n", c.RelPath); err != nil {
				return fmt.Errorf("writing source comment: %w", err)
			}
		}

		text := string(content)
		if opts.RemoveEmptyLines {
			text = stripEmptyLines(text)
		}
		if text != "" && !strings.HasSuffix(text, "\n") {
			text += "\n"
		}

		if _, err := writer.WriteString(text); err != nil {
			return fmt.Errorf("writing content of %s: %w", c.RelPath, err)
		}
		if _, err := writer.WriteString(separator + "\n"); err != nil {
			return fmt.Errorf("writing separator: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing output file: %w", err)
	}
	return nil
}

// stripEmptyLines drops every line that is empty or all-whitespace and
// rejoins the remaining lines with a newline. Relative order is preserved.
func stripEmptyLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
