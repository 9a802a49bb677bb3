package memory

import (
	"context"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// cartRepository implements repository.CartRepository with a guarded map keyed
// by user id. The cart id counter lives under the same guard as the map, so no
// operation ever holds one lock while acquiring another.
type cartRepository struct {
	mu     sync.RWMutex
	carts  map[int64]*entity.Cart
	nextID int64
}

// NewCartRepository is the constructor for cartRepository.
// It returns the implementation as a repository.CartRepository interface.
func NewCartRepository() repository.CartRepository {
	return &cartRepository{
		carts:  make(map[int64]*entity.Cart),
		nextID: 1,
	}
}

// getOrCreateLocked returns the live cart for the user, creating one on first
// access. Callers must hold the write lock.
func (repo *cartRepository) getOrCreateLocked(userID int64) *entity.Cart {
	if cart, ok := repo.carts[userID]; ok {
		return cart
	}

	cart := &entity.Cart{
		ID:     repo.nextID,
		UserID: userID,
		Items:  []entity.CartItem{},
	}
	repo.nextID++
	repo.carts[userID] = cart

	return cart
}

// GetOrCreate returns a copy of the user's cart, creating an empty one with a
// freshly allocated id on first access.
func (repo *cartRepository) GetOrCreate(_ context.Context, userID int64) (*entity.Cart, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return repo.getOrCreateLocked(userID).Clone(), nil
}

// Find returns a copy of the user's cart, or repository.ErrCartNotFound.
func (repo *cartRepository) Find(_ context.Context, userID int64) (*entity.Cart, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	cart, ok := repo.carts[userID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}

	return cart.Clone(), nil
}

// AddItem accumulates quantity onto an existing line for the product, or
// appends a new line carrying a name/price snapshot taken from product at call
// time. Later catalog changes never touch lines already in the cart.
func (repo *cartRepository) AddItem(_ context.Context, userID int64, product entity.Product, quantity int64) (*entity.Cart, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	cart := repo.getOrCreateLocked(userID)
	if i := cart.FindItem(product.ID); i >= 0 {
		cart.Items[i].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, entity.CartItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    quantity,
		})
	}

	return cart.Clone(), nil
}

// RemoveItem drops the matching line if present. A cart that exists but lacks
// the line is simply returned unchanged.
func (repo *cartRepository) RemoveItem(_ context.Context, userID int64, productID int64) (*entity.Cart, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	cart, ok := repo.carts[userID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}

	if i := cart.FindItem(productID); i >= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	}

	return cart.Clone(), nil
}

// Clear empties the cart's items in place, preserving its id and owner.
func (repo *cartRepository) Clear(_ context.Context, userID int64) (*entity.Cart, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	cart, ok := repo.carts[userID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}

	cart.Items = cart.Items[:0]

	return cart.Clone(), nil
}
