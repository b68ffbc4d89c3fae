package cart

import (
	"context"

	"utflykt/models"
)

// CartService manages visitors' carts of excursion bookings. A cart is an
// ordered list of items, unique by (excursionId, startDate, endDate); the
// same key is used for upsert matching and removal. Every mutation is pushed
// to the persistence facility; cart state is restored lazily per cart ID.
type CartService interface {
	// Upsert inserts the item, or replaces the existing item with the same
	// identity key in place at its current position. Items arriving without
	// a booking ID get one minted.
	Upsert(ctx context.Context, cartID string, item models.CartItem) (models.CartItem, error)
	// Remove deletes all items matching the key. Removing a missing item is
	// a no-op, not an error.
	Remove(ctx context.Context, cartID string, key models.CartItemKey) error
	// Clear empties the cart. Idempotent.
	Clear(ctx context.Context, cartID string) error
	// Items returns the cart's items in order.
	Items(ctx context.Context, cartID string) ([]models.CartItem, error)
	// IsEmpty reports whether the cart has no items.
	IsEmpty(ctx context.Context, cartID string) (bool, error)
	// ItemCount returns the number of items in the cart.
	ItemCount(ctx context.Context, cartID string) (int, error)
}
