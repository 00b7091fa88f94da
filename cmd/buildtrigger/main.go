// Package main is the entry point for the buildtrigger function.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildtrigger/cmd/buildtrigger/commands"
	"go.trai.ch/buildtrigger/internal/app"
	"go.trai.ch/buildtrigger/internal/core/domain"
	_ "go.trai.ch/buildtrigger/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer, opts ...commands.Option) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, opts...)
	cli.SetOutput(stdout, stderr)
	cli.SetArgs(args)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrInvocationFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
