package cli

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/motorpool/internal/composer"
	"github.com/mesh-intelligence/motorpool/pkg/types"
)

type kindInfo struct {
	Kind  types.Kind         `json:"kind"`
	Order []types.Capability `json:"order"`
}

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List entity kinds and their layer order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]kindInfo, 0, len(types.StandardKinds))
			for _, k := range types.StandardKinds {
				res, err := composer.KindOrder(k)
				if err != nil {
					return &exitError{code: exitSysError, err: err}
				}
				infos = append(infos, kindInfo{Kind: res.Kind, Order: res.Order})
			}

			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				data, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return &exitError{code: exitSysError, err: fmt.Errorf("encode kinds: %w", err)}
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			for _, info := range infos {
				names := make([]string, len(info.Order))
				for i, c := range info.Order {
					names[i] = c.String()
				}
				fmt.Fprintf(out, "%-14s %s\n", info.Kind, strings.Join(names, " -> "))
			}
			return nil
		},
	}
}
