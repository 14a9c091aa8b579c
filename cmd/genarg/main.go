package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	rootcmd "github.com/go-ports/genarg/cmd/genarg/root"
	"github.com/go-ports/genarg/internal/lifecycle"
)

func main() {
	code := 0
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code = 1
	}
	lifecycle.Exit(code)
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	lifecycle.Install(cancel, func(sig os.Signal) {
		slog.Warn("interrupted", "signal", sig.String())
		cancel()
	})
	return rootcmd.New().ExecuteContext(ctx)
}
