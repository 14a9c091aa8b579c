// Package versioncmd implements the `genarg version` command.
package versioncmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/genarg/cmd/genarg/shared"
	"github.com/go-ports/genarg/internal/buildinfo"
	"github.com/go-ports/genarg/internal/printer"
)

// Command implements `genarg version`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the version command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (*Command) run(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, p := range buildinfo.Pairs() {
		fmt.Fprint(out, printer.SprintVar(p.Name, p.Value))
	}
	return nil
}
