// Package main is the entry point for the six contact database.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/six/cmd/six/commands"
	"go.trai.ch/six/internal/app"
	_ "go.trai.ch/six/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		return fail(err)
	}

	cli := commands.New(components.App, components.Settings, args)
	if err := cli.Execute(ctx); err != nil {
		return fail(err)
	}
	return 0
}

func fail(err error) int {
	_, _ = os.Stderr.WriteString("six: " + err.Error() + "\n")
	return 1
}
