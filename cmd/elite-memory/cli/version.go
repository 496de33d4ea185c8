package cli

import (
	"fmt"

	"github.com/felixgeelhaar/elite-memory/internal/buildinfo"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "elite-memory %s\n", buildinfo.Summary())
			return err
		},
	}
}
