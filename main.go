package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/Mixology/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Mixology"), kong.Description("Mixology is a cocktail recipe catalog and bookmarking service."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
