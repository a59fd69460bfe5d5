package catalog

import (
	"slices"

	"github.com/shopspring/decimal"

	apperrors "github.com/wexinc/artisan/internal/errors"
)

// CartCount returns the number of units in the cart. A nil cart counts as empty.
func CartCount(cart *Cart) int {
	if cart == nil {
		return 0
	}
	count := 0
	for _, line := range cart.Items {
		count += line.Quantity
	}
	return count
}

// CartTotal returns the sum of captured price times quantity over all lines.
// A nil cart totals zero.
func CartTotal(cart *Cart) decimal.Decimal {
	total := decimal.Zero
	if cart == nil {
		return total
	}
	for _, line := range cart.Items {
		total = total.Add(LineSubtotal(line))
	}
	return total
}

// LineSubtotal returns the captured unit price times quantity.
func LineSubtotal(line CartLine) decimal.Decimal {
	return line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// ValidateQuantity rejects quantities below one.
func ValidateQuantity(qty int) error {
	if qty < 1 {
		return apperrors.InvalidQuantity(qty)
	}
	return nil
}

// AddToCart returns a copy of lines with qty units of item added. An existing
// line keeps its captured price; a new line captures item.Price. Callers must
// check qty with ValidateQuantity first; a non-positive qty leaves the copy unchanged.
func AddToCart(lines []CartLine, item Item, qty int) []CartLine {
	result := slices.Clone(lines)
	if qty < 1 {
		return result
	}

	if i := indexOfItem(result, item.ID); i >= 0 {
		result[i].Quantity += qty
		return result
	}

	return append(result, CartLine{
		ItemID:   item.ID,
		Item:     item,
		Quantity: qty,
		Price:    item.Price,
	})
}

// RemoveFromCart returns lines without the line for itemID. If no such line
// exists, lines is returned unchanged.
func RemoveFromCart(lines []CartLine, itemID uint) []CartLine {
	i := indexOfItem(lines, itemID)
	if i < 0 {
		return lines
	}
	result := make([]CartLine, 0, len(lines)-1)
	result = append(result, lines[:i]...)
	return append(result, lines[i+1:]...)
}

// FindLine returns the line for itemID, if present.
func FindLine(cart *Cart, itemID uint) (CartLine, bool) {
	if cart == nil {
		return CartLine{}, false
	}
	if i := indexOfItem(cart.Items, itemID); i >= 0 {
		return cart.Items[i], true
	}
	return CartLine{}, false
}

func indexOfItem(lines []CartLine, itemID uint) int {
	return slices.IndexFunc(lines, func(l CartLine) bool {
		return l.ItemID == itemID
	})
}
