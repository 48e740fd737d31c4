package commands

import (
	"github.com/ib-77/railway/pkg/rop/problem"
)

// StatusCmd implements the 'status' command.
type StatusCmd struct {
	Code     int    `arg:"" help:"HTTP-like status code"`
	Detail   string `short:"d" help:"Detail text"`
	Instance string `short:"i" help:"Instance identifier, e.g. a request path"`
}

func (s *StatusCmd) Run(g *Global, root *CLI) error {
	p := problem.FromStatus(s.Code, s.Detail)
	p.Instance = s.Instance
	return encode(g.Out, root.Format, p)
}
