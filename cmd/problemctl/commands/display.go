package commands

import (
	"fmt"

	"github.com/ib-77/railway/pkg/rop/problem"
)

// DisplayCmd implements the 'display' command. The problem is read in the
// --format encoding.
type DisplayCmd struct {
	Input    string            `arg:"" optional:"" help:"Problem file; stdin when omitted or -"`
	Messages map[string]string `short:"m" help:"Error code to message overrides (code=message)"`
	Default  string            `help:"Message used when the problem has neither detail nor title"`
}

func (d *DisplayCmd) Run(g *Global, root *CLI) error {
	data, err := readInput(g, d.Input)
	if err != nil {
		return err
	}
	p, err := decodeProblem(data, root.Format)
	if err != nil {
		return err
	}

	opts := []problem.DisplayOption{problem.WithDefault(d.Default)}
	if len(d.Messages) > 0 {
		opts = append(opts, problem.WithMessages(d.Messages))
	}
	_, err = fmt.Fprintln(g.Out, p.DisplayMessage(opts...))
	return err
}
