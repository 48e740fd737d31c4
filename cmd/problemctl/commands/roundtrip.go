package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/ib-77/railway/pkg/rop/problem"
)

var ErrRoundTrip = errors.New("problem changed during round trip")

// RoundtripCmd implements the 'roundtrip' command. The input is read as
// JSON, written in --format, read back and compared member by member.
type RoundtripCmd struct {
	Input string `arg:"" optional:"" help:"Problem JSON file; stdin when omitted or -"`
}

func (r *RoundtripCmd) Run(g *Global, root *CLI) error {
	data, err := readInput(g, r.Input)
	if err != nil {
		return err
	}
	p, err := decodeProblem(data, FormatJSON)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := encode(&buf, root.Format, p); err != nil {
		return err
	}
	back, err := decodeProblem(buf.Bytes(), root.Format)
	if err != nil {
		return err
	}

	diff, err := changedMembers(p, back)
	if err != nil {
		return err
	}
	if len(diff) > 0 {
		slog.Warn("Round trip changed members", "members", diff)
		return fmt.Errorf("%w: %v", ErrRoundTrip, diff)
	}

	_, err = g.Out.Write(buf.Bytes())
	return err
}

// changedMembers compares the JSON views of a and b, which normalizes
// numbers and nested containers across encodings.
func changedMembers(a, b *problem.Problem) ([]string, error) {
	va, err := jsonView(a)
	if err != nil {
		return nil, err
	}
	vb, err := jsonView(b)
	if err != nil {
		return nil, err
	}
	var diff []string
	for k, v := range va {
		if !reflect.DeepEqual(v, vb[k]) {
			diff = append(diff, k)
		}
	}
	for k := range vb {
		if _, ok := va[k]; !ok {
			diff = append(diff, k)
		}
	}
	return diff, nil
}

func jsonView(p *problem.Problem) (map[string]any, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode problem: %w", err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode problem: %w", err)
	}
	return out, nil
}
