package cmd

import (
	"errors"
	"fmt"

	"bundlex/pkg/bundle"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var bundleFlags struct {
	output           string
	languages        string
	source           string
	includeComments  bool
	sortMode         string
	removeEmptyLines bool
	author           string
}

// bundleCmd runs the scan, filter, sort, and write pipeline. Every failure
// path prints a plain message on stdout and returns normally; the command
// does not set a failure exit code.
var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Combine the text files of a source tree into a single output file",
	Long: `Bundle recursively scans the source directory, keeps files that match the
requested languages and pass the text classifier, sorts them, and writes
their concatenated contents to the output file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sortMode, err := bundle.ParseSortMode(bundleFlags.sortMode)
		if err != nil {
			fmt.Println(err)
			return nil
		}

		opts := bundle.Options{
			Output:           bundleFlags.output,
			Source:           bundleFlags.source,
			Extensions:       bundle.ParseExtensions(bundleFlags.languages),
			IncludeComments:  bundleFlags.includeComments,
			SortMode:         sortMode,
			RemoveEmptyLines: bundleFlags.removeEmptyLines,
			Author:           bundleFlags.author,
		}

		if err := bundle.Run(opts, logger); err != nil {
			switch {
			case errors.Is(err, bundle.ErrSourceNotFound):
				fmt.Printf("Source directory %s not found.\n", opts.Source)
			case errors.Is(err, bundle.ErrOutputDirNotFound):
				fmt.Printf("The directory for output file %s does not exist.\n", opts.Output)
			case errors.Is(err, bundle.ErrNoFiles):
				fmt.Println("No files found to bundle.")
			default:
				fmt.Printf("Bundling failed: %v\n", err)
				logger.Error("Bundle run failed", zap.Error(err))
			}
			return nil
		}

		color.Green("Bundle written to %s", opts.Output)
		return nil
	},
}

func init() {
	bundleCmd.Flags().StringVarP(&bundleFlags.output, "output", "o", "", "Path of the bundle output file")
	bundleCmd.Flags().StringVarP(&bundleFlags.languages, "languages", "l", "", `Comma-separated extensions to include, or "all"`)
	bundleCmd.Flags().StringVarP(&bundleFlags.source, "source", "s", "", "Source directory to scan")
	bundleCmd.Flags().BoolVarP(&bundleFlags.includeComments, "include-source-comments", "c", false, "Prepend a source path comment to every file")
	bundleCmd.Flags().StringVarP(&bundleFlags.sortMode, "sort", "t", "name", "Sort order: name or type")
	bundleCmd.Flags().BoolVarP(&bundleFlags.removeEmptyLines, "remove-empty-lines", "r", false, "Drop empty and all-whitespace lines")
	bundleCmd.Flags().StringVarP(&bundleFlags.author, "author", "a", "", "Author named in the bundle banner")

	_ = bundleCmd.MarkFlagRequired("output")
	_ = bundleCmd.MarkFlagRequired("languages")
	_ = bundleCmd.MarkFlagRequired("source")

	RootCmd.AddCommand(bundleCmd)
}
