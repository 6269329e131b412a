package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/listex/listex/extract"
	"github.com/listex/listex/formatter"
	tt "github.com/listex/listex/internal/types"
)

var (
	verbose bool
	outPath string
)

var extractCmd = &cobra.Command{
	Use:   "extract <path> <variable> [paths...]",
	Short: "Scan source text for list literals bound to the variable",
	Long: `Scans the raw text for bracketed literals following each occurrence of the
variable name, parses them without executing anything, and prints the
concatenated elements as one JSON array.
Example) listex extract settings.py ADMINS`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			fmt.Println("error: Please provide a file or directory path and a variable name")
			os.Exit(1)
		}
		paths := append([]string{args[0]}, args[2:]...)
		variable := args[1]

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, config, err := extract.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize extraction engine", zap.Error(err))
		}

		if verbose || config.Verbose {
			engine.OnCandidate = func(c tt.Candidate) {
				fmt.Fprint(os.Stderr, formatter.FormatCandidate(c))
			}
		}

		runExtractProcess(ctx, logger, engine, paths, variable, config.Extensions, outPath)
	},
}

func init() {
	extractCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Write each candidate region to stderr before parsing it")
	extractCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (default: stdout)")
}

func runExtractProcess(ctx context.Context, logger *zap.Logger, engine extract.Extractor, paths []string, variable string, extensions []string, outPath string) {
	items, err := extract.ProcessFiles(ctx, logger, engine, paths, variable, extensions)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(1)
	}

	printResult(logger, items, outPath)
}

func printResult(logger *zap.Logger, items []any, outPath string) {
	payload, err := formatter.MarshalResult(items)
	if err != nil {
		logger.Error("Error marshalling result to JSON", zap.Error(err))
		os.Exit(1)
	}

	if outPath == "" {
		fmt.Print(payload)
		return
	}

	f, err := os.Create(outPath)
	if err != nil {
		logger.Error("Error creating output file", zap.Error(err))
		os.Exit(1)
	}
	defer f.Close()
	if _, err := f.WriteString(payload); err != nil {
		logger.Error("Error writing output file", zap.Error(err))
		os.Exit(1)
	}
}
