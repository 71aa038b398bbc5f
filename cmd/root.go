package cmd

import (
	"os"

	"bundlex/pkg/interact"
	"bundlex/pkg/logging"
	"bundlex/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger  *zap.Logger
	verbose bool
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "bundlex",
	Short: "Bundlex concatenates the text files of a source tree into one file",
	Long: `Bundlex walks a source directory, filters files by extension and content,
and concatenates their text into a single bundle file. The create-rsp
subcommand collects the same options interactively and saves them as a
response file, replayable with "bundlex bundle @args.rsp".`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			if l, err := logging.Setup(true, "bundlex", version.Version); err == nil {
				logger = l
			}
		}
	},
}

// Execute wires the logger into the command tree, expands any @file
// response-file arguments, and runs the root command.
func Execute(l *zap.Logger) error {
	logger = l

	args, err := interact.ExpandArgs(os.Args[1:])
	if err != nil {
		return err
	}
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}
