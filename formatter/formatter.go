package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"

	tt "github.com/listex/listex/internal/types"
)

var (
	labelStyle  = color.New(color.FgYellow, color.Bold)
	fileStyle   = color.New(color.FgCyan, color.Bold)
	offsetStyle = color.New(color.FgHiBlue)
)

// MarshalResult renders the extracted values as a compact JSON array
// terminated by a newline. A nil slice still renders as [] so the empty
// result stays a valid array.
func MarshalResult(values []any) (string, error) {
	if values == nil {
		values = []any{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("serializing result: %w", err)
	}
	return string(data) + "\n", nil
}

// FormatCandidate renders one candidate region for the stderr diagnostics
// stream: a styled header with the location, then the raw substring.
func FormatCandidate(c tt.Candidate) string {
	var builder strings.Builder
	builder.WriteString(labelStyle.Sprint("candidate"))
	if c.Filename != "" {
		builder.WriteString(" ")
		builder.WriteString(fileStyle.Sprint(c.Filename))
	}
	builder.WriteString(offsetStyle.Sprintf(" [%d:%d]", c.Start, c.End))
	builder.WriteString(": ")
	builder.WriteString(c.Text)
	builder.WriteString("\n")
	return builder.String()
}
