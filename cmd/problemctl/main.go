package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ib-77/railway/cmd/problemctl/commands"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("problemctl"),
		kong.Description("Inspect problem details, validation problems and pagination."),
		kong.UsageOnError(),
	)

	if err := ctx.Run(&commands.Global{Out: os.Stdout, In: os.Stdin}, &cli); err != nil {
		slog.Error("Command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}
