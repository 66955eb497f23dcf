package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/motorpool/pkg/motorpool"
)

const modulePath = "github.com/mesh-intelligence/motorpool"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the motorpool version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "motorpool v%s\nmodule: %s\n", motorpool.Version, modulePath)
			return nil
		},
	}
}
