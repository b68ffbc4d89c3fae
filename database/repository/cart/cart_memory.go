package cartRepo

import (
	"context"
	"sync"

	"utflykt/models"
)

// MemoryCartRepo implements CartRepository in process memory. Used in tests
// and for development without a Redis or MongoDB instance.
type MemoryCartRepo struct {
	mu    sync.Mutex
	carts map[string][]models.CartItem
}

// NewMemoryCartRepo creates an in-memory CartRepository.
func NewMemoryCartRepo() *MemoryCartRepo {
	return &MemoryCartRepo{carts: make(map[string][]models.CartItem)}
}

func (r *MemoryCartRepo) Save(ctx context.Context, cartID string, items []models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]models.CartItem, len(items))
	copy(stored, items)
	r.carts[cartID] = stored
	return nil
}

func (r *MemoryCartRepo) Load(ctx context.Context, cartID string) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items, ok := r.carts[cartID]
	if !ok {
		return nil, nil
	}
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (r *MemoryCartRepo) Delete(ctx context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, cartID)
	return nil
}
