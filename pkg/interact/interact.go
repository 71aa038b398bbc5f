// Package interact implements the conversational configurator: a sequence of
// console prompts, each validated in a retry loop, whose answers are
// persisted as a response file replayable by the bundle command.
package interact

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"bundlex/pkg/bundle"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// outputSuffix is the only extension accepted for the bundle output file.
const outputSuffix = ".txt"

// Configurator collects bundle options through a strictly sequential series
// of console prompts and writes them to a response file. Every prompt
// re-asks until the typed answer satisfies its validator.
type Configurator struct {
	in     *bufio.Reader
	out    io.Writer
	dir    string // directory receiving the response file
	logger *zap.Logger
}

// New returns a Configurator reading answers from in, printing prompts to
// out, and writing the response file into dir.
func New(in io.Reader, out io.Writer, dir string, logger *zap.Logger) *Configurator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Configurator{
		in:     bufio.NewReader(in),
		out:    out,
		dir:    dir,
		logger: logger,
	}
}

// Run walks through every prompt in order and writes the collected answers
// to the response file. It returns an error only for input or write
// failures; invalid answers are handled by re-prompting.
func (c *Configurator) Run() error {
	heading := color.New(color.FgCyan, color.Bold)
	heading.Fprintln(c.out, "Bundle configurator")
	fmt.Fprintln(c.out, "Answer each question; press Enter to accept a default.")
	fmt.Fprintln(c.out)

	output, err := c.askOutputPath()
	if err != nil {
		return err
	}
	source, err := c.askSourcePath()
	if err != nil {
		return err
	}
	languages, err := c.askLanguages(source)
	if err != nil {
		return err
	}
	comments, err := c.askYesNo("Prepend a source comment to every file?")
	if err != nil {
		return err
	}
	sortByType, err := c.askYesNo("Sort files by type instead of name?")
	if err != nil {
		return err
	}
	removeEmpty, err := c.askYesNo("Remove empty lines from file contents?")
	if err != nil {
		return err
	}
	author, err := c.askLine("Author for the bundle banner (optional): ")
	if err != nil {
		return err
	}

	answers := Answers{
		Output:           output,
		Languages:        languages,
		Source:           source,
		IncludeComments:  comments,
		SortByType:       sortByType,
		RemoveEmptyLines: removeEmpty,
		Author:           author,
	}

	rspPath := filepath.Join(c.dir, ResponseFileName)
	if err := WriteResponseFile(rspPath, answers); err != nil {
		return fmt.Errorf("writing response file: %w", err)
	}

	c.logger.Info("Wrote response file", zap.String("file", rspPath))
	fmt.Fprintf(c.out, "Response file written to %s. Replay it with: bundlex bundle @%s\n",
		rspPath, ResponseFileName)
	return nil
}

// askLine prints the prompt and returns the trimmed answer. An input failure
// (closed stdin) is the only error path.
func (c *Configurator) askLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	answer, err := c.in.ReadString('\n')
	if err != nil && answer == "" {
		return "", fmt.Errorf("reading console input: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

// askOutputPath re-prompts until the answer names a writable bundle target:
// non-empty, fixed suffix, an existing parent directory, and, if the file
// already exists, not locked by another process.
func (c *Configurator) askOutputPath() (string, error) {
	for {
		answer, err := c.askLine(fmt.Sprintf("Output file path (%s): ", outputSuffix))
		if err != nil {
			return "", err
		}
		if answer == "" {
			fmt.Fprintln(c.out, "The output path must not be empty.")
			continue
		}
		if !strings.EqualFold(filepath.Ext(answer), outputSuffix) {
			fmt.Fprintf(c.out, "The output file must have the %s extension.\n", outputSuffix)
			continue
		}
		if info, err := os.Stat(filepath.Dir(answer)); err != nil || !info.IsDir() {
			fmt.Fprintln(c.out, "The output directory does not exist.")
			continue
		}
		if _, err := os.Stat(answer); err == nil {
			locked, lockErr := bundle.IsLocked(answer)
			if lockErr != nil || locked {
				fmt.Fprintln(c.out, "The output file is locked by another process.")
				continue
			}
		}
		return answer, nil
	}
}

// askSourcePath re-prompts until the answer names an existing directory.
// An empty answer defaults to the current working directory.
func (c *Configurator) askSourcePath() (string, error) {
	for {
		answer, err := c.askLine("Source directory (empty for current directory): ")
		if err != nil {
			return "", err
		}
		if answer == "" {
			wd, wdErr := os.Getwd()
			if wdErr != nil {
				return "", fmt.Errorf("resolving working directory: %w", wdErr)
			}
			return wd, nil
		}
		if info, statErr := os.Stat(answer); statErr == nil && info.IsDir() {
			return answer, nil
		}
		fmt.Fprintln(c.out, "The source directory does not exist.")
	}
}

// askLanguages lists the distinct extensions discovered under the source
// directory and re-prompts until the answer is the "all" sentinel or a
// comma-separated list fully contained in the discovered set.
func (c *Configurator) askLanguages(source string) (string, error) {
	discovered, err := bundle.DiscoverExtensions(source, bundle.DefaultMatcher(), c.logger)
	if err != nil {
		return "", fmt.Errorf("discovering extensions: %w", err)
	}
	if len(discovered) > 0 {
		fmt.Fprintf(c.out, "Extensions found under %s: %s\n", source, strings.Join(discovered, ", "))
	} else {
		fmt.Fprintf(c.out, "No file extensions found under %s.\n", source)
	}
	known := make(map[string]struct{}, len(discovered))
	for _, ext := range discovered {
		known[ext] = struct{}{}
	}

	for {
		answer, err := c.askLine(fmt.Sprintf("Languages (comma-separated, or %q): ", bundle.AllLanguages))
		if err != nil {
			return "", err
		}
		if strings.EqualFold(answer, bundle.AllLanguages) {
			return bundle.AllLanguages, nil
		}
		if answer == "" || strings.Contains(answer, " ") {
			fmt.Fprintln(c.out, "Enter a comma-separated list without spaces, or \"all\".")
			continue
		}

		valid := true
		for _, part := range strings.Split(answer, ",") {
			ext := bundle.NormalizeExt(part)
			if ext == "" {
				valid = false
				break
			}
			if _, ok := known[ext]; !ok {
				fmt.Fprintf(c.out, "Extension %q was not found under the source directory.\n", part)
				valid = false
				break
			}
		}
		if valid {
			return answer, nil
		}
	}
}

// askYesNo re-prompts until the answer is empty (yes) or "n" (no).
func (c *Configurator) askYesNo(question string) (bool, error) {
	for {
		answer, err := c.askLine(question + " [Y/n]: ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(c.out, "Press Enter for yes, or type \"n\" for no.")
	}
}
