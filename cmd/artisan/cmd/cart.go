package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wexinc/artisan/internal/catalog"
	apperrors "github.com/wexinc/artisan/internal/errors"
)

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and change the shopping cart",
		Long: `Show the active cart with per-line subtotals and the total.

Examples:
  artisan cart                 # Show the cart
  artisan cart add 3 --qty 2   # Add two units of item 3
  artisan cart remove 3        # Remove item 3 from the cart`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireSession(); err != nil {
				return err
			}
			cart, err := a.client.LoadCart(cmd.Context())
			if err != nil {
				return a.check(err)
			}
			return a.renderer(cmd).Cart(cart)
		},
	}

	cmd.AddCommand(newCartAddCmd(a), newCartRemoveCmd(a))
	return cmd
}

func newCartAddCmd(a *app) *cobra.Command {
	var qty int

	cmd := &cobra.Command{
		Use:   "add <item-id>",
		Short: "Add an item to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			if err := catalog.ValidateQuantity(qty); err != nil {
				return err
			}
			if _, err := a.requireSession(); err != nil {
				return err
			}

			cart, err := a.client.AddToCart(cmd.Context(), id, qty)
			if err != nil {
				return a.check(err)
			}
			return a.renderer(cmd).Cart(cart)
		},
	}

	cmd.Flags().IntVarP(&qty, "qty", "q", 1, "Quantity to add")
	return cmd
}

func newCartRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <item-id>",
		Aliases: []string{"rm"},
		Short:   "Remove an item from the cart",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			if _, err := a.requireSession(); err != nil {
				return err
			}

			msg, err := a.client.RemoveFromCart(cmd.Context(), id)
			if err != nil {
				return a.check(err)
			}
			if msg == "" {
				msg = fmt.Sprintf("Item %d removed from cart", id)
			}
			return a.renderer(cmd).Message(msg)
		},
	}
}

func parseItemID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 0)
	if err != nil || id == 0 {
		return 0, apperrors.Validation(fmt.Sprintf("invalid item id %q", s))
	}
	return uint(id), nil
}
