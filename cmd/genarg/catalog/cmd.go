// Package catalogcmd implements the `genarg catalog` command.
package catalogcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ports/genarg/cmd/genarg/shared"
	"github.com/go-ports/genarg/internal/printer"
	"github.com/go-ports/genarg/internal/stock"
)

// Command implements `genarg catalog`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the catalog command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "catalog",
		Short: "List the stock options programs can request",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	cfg, err := c.ctx.LoadConfig()
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	printer.ColumnWidth = cfg.Print.ColumnWidth

	out := cmd.OutOrStdout()
	width := printer.ColumnWidth + 2
	for _, s := range stock.Catalog() {
		def := s.Default
		if v, ok := cfg.StockDefaults[string(s.Name)]; ok {
			def = v
		}
		fmt.Fprintf(out, "--%s\n", s.Name)
		fmt.Fprint(out, printer.SprintVarx("type", s.Kind, 2, width))
		fmt.Fprint(out, printer.SprintVarx("default", def, 2, width))
		fmt.Fprint(out, printer.SprintVarx("choices", strings.Join(s.Choices, " | "), 2, width))
		fmt.Fprint(out, printer.SprintVarx("help", s.HelpText(cmd.Root().Name(), def), 2, width))
	}
	return nil
}
