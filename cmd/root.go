package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tt "github.com/listex/listex/internal/types"
)

var (
	cfgFile string
	timeout time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "listex <path> <variable> <mode>",
	Short:            "listex - extract list literals from source files as JSON",
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'listex' is entered
			_ = cmd.Help()
			return
		}
		// Format: listex <path> <variable> <mode> => the legacy single-script
		// invocation, routed to the matching subcommand.
		if len(args) != 3 {
			fmt.Println("error: expected <path> <variable> <mode>")
			os.Exit(1)
		}
		switch tt.Mode(args[2]) {
		case tt.ModeSubstrings:
			extractCmd.Run(extractCmd, args[:2])
		case tt.ModeEvaluate:
			evalCmd.Run(evalCmd, args[:2])
		default:
			fmt.Printf("error: unknown mode: %s\n", args[2])
			os.Exit(1)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	logger, _ = zap.NewProduction()

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", ".listex.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Set a timeout for extraction")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(evalCmd)
}
