package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/artisan/internal/catalog"
	apperrors "github.com/wexinc/artisan/internal/errors"
)

func newCheckoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart",
		Long: `Turn the active cart into an order.

An empty cart is rejected before anything is sent to the server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireSession(); err != nil {
				return err
			}

			cart, err := a.client.LoadCart(cmd.Context())
			if err != nil {
				return a.check(err)
			}
			if catalog.CartCount(cart) == 0 {
				return apperrors.EmptyCart()
			}

			res, err := a.client.Checkout(cmd.Context())
			if err != nil {
				return a.check(err)
			}
			return a.renderer(cmd).Checkout(res)
		},
	}
}
