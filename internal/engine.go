package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/listex/listex/internal/literal"
	"github.com/listex/listex/internal/scan"
	tt "github.com/listex/listex/internal/types"
)

// ErrUnmatchedBracket is returned when a candidate region opens a bracket
// that never closes anywhere in the remaining text. It aborts the whole
// extraction, not just the current occurrence.
var ErrUnmatchedBracket = errors.New("no matching closing bracket found")

// Engine manages the extraction process for one variable name.
type Engine struct {
	// OnCandidate, when set, observes every candidate region before it is
	// parsed. Used for the stderr diagnostics path.
	OnCandidate func(tt.Candidate)
}

// NewEngine creates a new extraction engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Run reads the file and extracts every list literal bound to variable,
// concatenated in file order. A trailing newline is appended to the content
// so scanning never has to special-case the end of input.
func (e *Engine) Run(filename, variable string) ([]any, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	items, err := e.extract(string(content)+"\n", filename, variable)
	if err != nil {
		return nil, fmt.Errorf("error extracting from %s: %w", filename, err)
	}
	return items, nil
}

// RunSource behaves like Run on in-memory source.
func (e *Engine) RunSource(source []byte, variable string) ([]any, error) {
	return e.extract(string(source)+"\n", "", variable)
}

// extract walks the text left to right. For each occurrence of variable it
// locates the following bracketed region, parses it as a list literal, and
// appends the elements to the result. Elements keep their literal order, and
// repeated occurrences of the variable all concatenate into one result.
func (e *Engine) extract(text, filename, variable string) ([]any, error) {
	items := []any{}

	cursor := 0
	for {
		rel := strings.Index(text[cursor:], variable)
		if rel < 0 {
			return items, nil
		}

		openPos := scan.NextOpen(text, cursor+rel)
		if openPos < 0 {
			// occurrence with no bracket after it, nothing left to scan
			return items, nil
		}

		closePos, parsed, err := e.parseCandidate(text, filename, openPos)
		if err != nil {
			return nil, err
		}
		items = append(items, parsed...)
		cursor = closePos
	}
}

// parseCandidate parses the bracketed region starting at openPos and returns
// the offset just past its closing bracket along with the parsed elements.
//
// The primary path finds the balanced close bracket while tracking string
// quoting, so a ']' inside a string element is skipped outright. When that
// region still fails to parse (or never closes), it falls back to the
// lexical widening loop: take the next plain ']', try the substring, and on
// failure widen to the following ']' until the text runs out.
func (e *Engine) parseCandidate(text, filename string, openPos int) (int, []any, error) {
	if end, ok := scan.Balanced(text, openPos); ok {
		candidate := text[openPos:end]
		e.observe(filename, openPos, end, candidate)
		if parsed, err := literal.ParseList(candidate); err == nil {
			return end, parsed, nil
		}
	}

	closePos := scan.NextClose(text, openPos)
	for {
		if closePos < 0 {
			return 0, nil, fmt.Errorf("%w after offset %d", ErrUnmatchedBracket, openPos)
		}
		candidate := text[openPos : closePos+1]
		e.observe(filename, openPos, closePos+1, candidate)
		if parsed, err := literal.ParseList(candidate); err == nil {
			return closePos + 1, parsed, nil
		}
		closePos = scan.NextClose(text, closePos+1)
	}
}

func (e *Engine) observe(filename string, start, end int, text string) {
	if e.OnCandidate == nil {
		return
	}
	e.OnCandidate(tt.Candidate{
		Filename: filename,
		Start:    start,
		End:      end,
		Text:     text,
	})
}
