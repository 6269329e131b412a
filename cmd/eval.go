package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/listex/listex/internal/evaluate"
)

var evalCmd = &cobra.Command{
	Use:   "eval <path> <expression>",
	Short: "Run the source as a program and serialize the expression",
	Long: `Executes the file as a program, evaluates the expression against the
program's final state, and prints the serialized value. The file is fully
trusted: it runs with the same file, network, and process access as any
local program.
Example) listex eval settings.py ADMINS`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println("error: Please provide a file path and an expression")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		out, err := evaluate.Run(ctx, args[0], args[1])
		if err != nil {
			logger.Fatal("Error evaluating source", zap.String("path", args[0]), zap.Error(err))
		}

		fmt.Println(out)
	},
}
