package cmd

import (
	"github.com/spf13/cobra"
)

func newOrdersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireSession(); err != nil {
				return err
			}
			orders, err := a.client.ListOrders(cmd.Context())
			if err != nil {
				return a.check(err)
			}
			return a.renderer(cmd).Orders(orders)
		},
	}
}
