// Package rootcmd wires the root cobra.Command for the genarg CLI binary.
package rootcmd

import (
	"github.com/spf13/cobra"

	catalogcmd "github.com/go-ports/genarg/cmd/genarg/catalog"
	"github.com/go-ports/genarg/cmd/genarg/shared"
	showcmd "github.com/go-ports/genarg/cmd/genarg/show"
	versioncmd "github.com/go-ports/genarg/cmd/genarg/version"
)

// New creates and returns the root cobra.Command for the genarg CLI.
func New() *cobra.Command {
	return NewWithContext(&shared.Context{})
}

// NewWithContext creates the root command around an existing shared context.
func NewWithContext(ctx *shared.Context) *cobra.Command {
	root := &cobra.Command{
		Use:           "genarg",
		Short:         "genarg: stock command-line options for every program",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	root.AddCommand(
		showcmd.New(ctx).Cmd(),
		catalogcmd.New(ctx).Cmd(),
		versioncmd.New(ctx).Cmd(),
	)

	return root
}
