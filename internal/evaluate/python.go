package evaluate

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const pythonInterpreter = "python3"

// runPython appends a json.dump of expr to the script and pipes the combined
// text into python3 on stdin. The script's stdout becomes the payload;
// stderr passes through so the script's own diagnostics stay visible.
func runPython(ctx context.Context, source []byte, expr string) (string, error) {
	var program strings.Builder
	program.Write(source)
	program.WriteString("\nimport json, sys\n")
	program.WriteString("json.dump(" + expr + ", sys.stdout)\n")

	cmd := exec.CommandContext(ctx, pythonInterpreter, "-")
	cmd.Stdin = strings.NewReader(program.String())
	cmd.Stderr = os.Stderr

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s: %w", pythonInterpreter, err)
	}
	return out.String(), nil
}
