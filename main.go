package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"droscher.com/Vinlogg/cmd"
)

func main() {
	// A missing .env is fine, the environment may already be populated.
	_ = godotenv.Load()

	ctx := kong.Parse(&cmd.CLI, kong.Name("Vinlogg"), kong.Description("Vinlogg is a shared wine journal and cellar tracker."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
