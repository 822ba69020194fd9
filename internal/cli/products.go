package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProductsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Mantenimiento de productos",
	}
	cmd.AddCommand(withStore(s, &cobra.Command{
		Use:   "recompute",
		Short: "Recalcula los campos derivados de todos los productos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := s.app.Products.RecomputeAll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d productos actualizados\n", n)
			return nil
		},
	}))
	return cmd
}
