package commands

import (
	"fmt"
	"strings"

	"github.com/ib-77/railway/pkg/rop/problem"
)

// ValidateCmd implements the 'validate' command. Repeated fields keep
// every message in order.
type ValidateCmd struct {
	Fields []string `arg:"" help:"field=message pairs"`
}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	fields := make([]problem.FieldError, 0, len(v.Fields))
	for _, pair := range v.Fields {
		field, message, ok := strings.Cut(pair, "=")
		if !ok || field == "" {
			return fmt.Errorf("invalid pair %q: want field=message", pair)
		}
		fields = append(fields, problem.Field(field, message))
	}
	return encode(g.Out, root.Format, problem.Validation(fields...))
}
