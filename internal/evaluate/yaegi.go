package evaluate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// runGo evaluates the source in a fresh yaegi interpreter, then evaluates
// expr in the same interpreter and JSON-marshals the resulting value. The
// interpreter gets the full stdlib: the file is trusted, so file, network,
// and process access all stay available to it, same as running it for real.
func runGo(ctx context.Context, source []byte, expr string) (string, error) {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return "", fmt.Errorf("loading interpreter stdlib: %w", err)
	}

	type evalResult struct {
		payload string
		err     error
	}
	resultChan := make(chan evalResult, 1)

	go func() {
		if _, err := i.Eval(string(source)); err != nil {
			resultChan <- evalResult{err: fmt.Errorf("executing source: %w", err)}
			return
		}
		v, err := i.Eval(expr)
		if err != nil {
			resultChan <- evalResult{err: fmt.Errorf("evaluating %q: %w", expr, err)}
			return
		}
		data, err := json.Marshal(v.Interface())
		if err != nil {
			resultChan <- evalResult{err: fmt.Errorf("serializing %q: %w", expr, err)}
			return
		}
		resultChan <- evalResult{payload: string(data)}
	}()

	select {
	case r := <-resultChan:
		return r.payload, r.err
	case <-ctx.Done():
		return "", fmt.Errorf("evaluation timed out: %w", ctx.Err())
	}
}
