// Package main is the entry point for the hbuild CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/graft"
	"github.com/hackeros/hbuild/cmd/hbuild/commands"
	"github.com/hackeros/hbuild/internal/adapters/shell"
	"github.com/hackeros/hbuild/internal/app"
	_ "github.com/hackeros/hbuild/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	components, err := provider(ctx)
	if err != nil {
		// Logger is not available if initialization failed; write directly.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	// The registry-backed interrupt handler is the only mechanism keeping
	// compiler and linker children from outliving a cancelled build.
	shell.InstallInterruptHandler(components.Registry)

	cli := commands.New(components.App)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		// zerr prints a report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(stderr, "%+v\n", err)
		_ = components.App.Close()
		return 1
	}

	_ = components.App.Close()
	return 0
}
