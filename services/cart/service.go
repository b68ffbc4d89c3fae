package cart

import (
	"context"
	"fmt"
	"sort"
	"sync"

	cartRepo "utflykt/database/repository/cart"
	"utflykt/models"
	"utflykt/utils"

	"go.uber.org/zap"
)

// DefaultCartService implements CartService with in-memory aggregates backed
// by a CartRepository. SortOnInsert keeps each cart ordered by start date
// after every upsert; left off, items keep insertion order.
type DefaultCartService struct {
	Repo         cartRepo.CartRepository
	SortOnInsert bool

	mu    sync.Mutex
	carts map[string][]models.CartItem
}

// NewDefaultCartService creates a cart service over the given repository.
func NewDefaultCartService(repo cartRepo.CartRepository, sortOnInsert bool) *DefaultCartService {
	return &DefaultCartService{
		Repo:         repo,
		SortOnInsert: sortOnInsert,
		carts:        make(map[string][]models.CartItem),
	}
}

// itemsLocked returns the in-memory items for a cart, restoring them from the
// repository on first access. Unreadable persisted state degrades to an empty
// cart rather than failing the request.
func (s *DefaultCartService) itemsLocked(ctx context.Context, cartID string) []models.CartItem {
	if items, ok := s.carts[cartID]; ok {
		return items
	}
	items, err := s.Repo.Load(ctx, cartID)
	if err != nil {
		utils.GetLogger().Warn("Failed to restore cart, starting empty",
			zap.String("cartID", cartID), zap.Error(err))
		items = nil
	}
	s.carts[cartID] = items
	return items
}

func (s *DefaultCartService) saveLocked(ctx context.Context, cartID string) error {
	if err := s.Repo.Save(ctx, cartID, s.carts[cartID]); err != nil {
		return fmt.Errorf("failed to persist cart %s: %w", cartID, err)
	}
	return nil
}

func (s *DefaultCartService) Upsert(ctx context.Context, cartID string, item models.CartItem) (models.CartItem, error) {
	if item.BookingID == "" {
		id, err := utils.ShortID(utils.ShortIDLength)
		if err != nil {
			return models.CartItem{}, fmt.Errorf("failed to mint booking id: %w", err)
		}
		item.BookingID = id
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.itemsLocked(ctx, cartID)
	key := item.Key()
	replaced := false
	for i := range items {
		if items[i].Key() == key {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	if s.SortOnInsert {
		// Start dates are "YYYY-MM-DD", so lexicographic order is date order.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].StartDate < items[j].StartDate
		})
	}
	s.carts[cartID] = items

	if err := s.saveLocked(ctx, cartID); err != nil {
		return models.CartItem{}, err
	}
	return item, nil
}

func (s *DefaultCartService) Remove(ctx context.Context, cartID string, key models.CartItemKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.itemsLocked(ctx, cartID)
	kept := items[:0:0]
	for _, it := range items {
		if it.Key() != key {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		// Nothing matched; the cart is unchanged and no save is needed.
		return nil
	}
	s.carts[cartID] = kept
	return s.saveLocked(ctx, cartID)
}

func (s *DefaultCartService) Clear(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[cartID] = nil
	if err := s.Repo.Delete(ctx, cartID); err != nil {
		return fmt.Errorf("failed to clear cart %s: %w", cartID, err)
	}
	return nil
}

func (s *DefaultCartService) Items(ctx context.Context, cartID string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.itemsLocked(ctx, cartID)
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (s *DefaultCartService) IsEmpty(ctx context.Context, cartID string) (bool, error) {
	n, err := s.ItemCount(ctx, cartID)
	return n == 0, err
}

func (s *DefaultCartService) ItemCount(ctx context.Context, cartID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.itemsLocked(ctx, cartID)), nil
}
