package cmd

import (
	"fmt"
	"os"

	"bundlex/pkg/interact"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// createRspCmd collects every bundle option through console prompts and
// persists the answers as a response file in the working directory.
var createRspCmd = &cobra.Command{
	Use:   "create-rsp",
	Short: "Interactively build a reusable argument file",
	Long: `Create-rsp asks for every bundle option on the console, validating each
answer, and writes the result to ` + interact.ResponseFileName + ` in the current
directory. Replay it with "bundlex bundle @` + interact.ResponseFileName + `".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			fmt.Println("create-rsp needs an interactive terminal.")
			return nil
		}

		workDir, err := os.Getwd()
		if err != nil {
			fmt.Printf("Cannot determine the working directory: %v\n", err)
			return nil
		}

		configurator := interact.New(os.Stdin, os.Stdout, workDir, logger)
		if err := configurator.Run(); err != nil {
			fmt.Printf("Configuration failed: %v\n", err)
			logger.Error("Interactive configuration failed", zap.Error(err))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(createRspCmd)
}
