// Package showcmd implements the `genarg show` command.
package showcmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/genarg/cmd/genarg/shared"
	"github.com/go-ports/genarg/internal/args"
	"github.com/go-ports/genarg/internal/printer"
)

// Command implements `genarg show`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the show command. Its flags are parsed by args.Process rather
// than cobra so the stock defaults can come from the config file.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:                "show [--quiet 0|1] [--test_mode 0|1] [--debug 0|1] [--loglevel LEVEL] [--format text|yaml] [--indent N]",
		Short:              "Parse the stock options and print the parsed arguments",
		DisableFlagParsing: true,
		RunE:               c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, argv []string) error {
	cfg, err := c.ctx.LoadConfig()
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	printer.ColumnWidth = cfg.Print.ColumnWidth

	out := cmd.OutOrStdout()
	fs := pflag.NewFlagSet(cmd.CommandPath(), pflag.ContinueOnError)
	fs.SetOutput(cmd.ErrOrStderr())
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage of %s:\n%s", fs.Name(), fs.FlagUsages())
	}
	format := fs.String("format", "text", "Output format: text | yaml")
	indent := fs.Int("indent", 0, "Indent each parsed argument by this many spaces")

	vars := args.Vars{}
	st, err := args.Process(fs, argv, cfg.Requests(), vars)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	c.ctx.Vars = vars

	logger := st.Logger(cmd.ErrOrStderr())
	logger.Debug("arguments processed", "prog", fs.Name(), "test_mode", st.TestMode)

	switch *format {
	case "yaml":
		b, err := yaml.Marshal(st.Args)
		if err != nil {
			return fmt.Errorf("show: %w", err)
		}
		fmt.Fprint(out, string(b))
	case "text":
		if st.Quiet == 1 {
			return nil
		}
		fmt.Fprintf(out, "Running %s.\n", fs.Name())
		fmt.Fprintln(out, "Parameters:")
		fmt.Fprint(out, args.Sprint(st.Args, *indent))
		if st.Debug == 1 {
			fmt.Fprintln(out, "State:")
			fmt.Fprint(out, printer.SprintVarx("quiet", st.Quiet, *indent, printer.ColumnWidth+*indent))
			fmt.Fprint(out, printer.SprintVarx("test_mode", st.TestMode, *indent, printer.ColumnWidth+*indent))
			fmt.Fprint(out, printer.SprintVarx("debug", st.Debug, *indent, printer.ColumnWidth+*indent))
			fmt.Fprint(out, printer.SprintVarx("loglevel", st.LogLevel, *indent, printer.ColumnWidth+*indent))
		}
	default:
		return fmt.Errorf("show: unknown format %q", *format)
	}
	return nil
}
