package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/railway/pkg/rop/paging"
	"github.com/ib-77/railway/pkg/rop/problem"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Global carries the streams commands read from and write to.
type Global struct {
	Out io.Writer
	In  io.Reader
}

// CLI definition & global flags.
type CLI struct {
	Config   string   `short:"c" help:"Configuration file holding a pagination section" default:"railway.yaml"`
	EnvFiles []string `name:"env-file" help:"Env files loaded before the configuration is expanded" default:".env"`
	Format   string   `short:"f" help:"Output format" enum:"json,yaml" default:"json"`
	Verbose  bool     `short:"v" help:"Enable verbose logging"`

	Status    StatusCmd    `cmd:"" help:"Print the problem for a status code"`
	Validate  ValidateCmd  `cmd:"" help:"Build a validation problem from field=message pairs"`
	Paginate  PaginateCmd  `cmd:"" help:"Compute the page for a skip/take or page request"`
	Display   DisplayCmd   `cmd:"" help:"Print the user facing message of a problem"`
	Roundtrip RoundtripCmd `cmd:"" help:"Encode and decode a problem and report lost members"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// PagingOptions loads the configured pagination bounds. A missing
// configuration file means DefaultOptions.
func (c *CLI) PagingOptions() (paging.Options, error) {
	if _, err := os.Stat(c.Config); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return paging.Options{}, fmt.Errorf("stat config %s: %w", c.Config, err)
		}
		slog.Debug("Pagination config not found, using defaults", "path", c.Config)
		return paging.DefaultOptions(), nil
	}
	return paging.LoadOptions(c.Config, c.EnvFiles...)
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

func decodeProblem(data []byte, format string) (*problem.Problem, error) {
	var p problem.Problem
	var err error
	if format == FormatYAML {
		err = yaml.Unmarshal(data, &p)
	} else {
		err = json.Unmarshal(data, &p)
	}
	if err != nil {
		return nil, fmt.Errorf("decode problem: %w", err)
	}
	return &p, nil
}

// readInput reads path, or the global input when path is "" or "-".
func readInput(g *Global, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(g.In)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
