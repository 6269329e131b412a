// Package evaluate implements the execution-based extraction strategy: the
// source file runs as a program, and the named expression is serialized from
// the program's final state. The input is fully trusted; nothing here
// sandboxes or restricts what the executed code can do.
package evaluate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Run executes the file at path and returns the JSON serialization of expr
// evaluated against the program's state after it finishes. The runner is
// picked by file extension: .go sources run in-process through the yaegi
// interpreter, anything else is treated as a Python script and fed to
// python3. Any error raised by the program itself is fatal to the call.
func Run(ctx context.Context, path, expr string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".go":
		return runGo(ctx, source, expr)
	default:
		return runPython(ctx, source, expr)
	}
}
