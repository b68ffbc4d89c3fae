package cartRepo

import (
	"context"

	"utflykt/models"
)

// CartRepository defines the key-value persistence facility for cart state.
// Implementations save the full item list after every cart mutation and
// restore it at process start; last write wins on restore.
type CartRepository interface {
	// Save persists the full item list under the given cart ID.
	Save(ctx context.Context, cartID string, items []models.CartItem) error
	// Load restores the item list for the given cart ID. A missing cart is
	// not an error and yields an empty list.
	Load(ctx context.Context, cartID string) ([]models.CartItem, error)
	// Delete removes the persisted cart entirely.
	Delete(ctx context.Context, cartID string) error
}
