// Package memory contains the concrete implementation of the storage layer
// backed by process memory. All state lives here for the process lifetime and
// is lost on restart; durability is an explicit non-goal of this service.
//
// Every store guards its structures with narrow, independent critical sections
// that are never held simultaneously, and every value handed out is a copy
// taken before the guard is released. Mutations are compute-then-commit: no
// partially mutated state is ever observable, so a failed operation leaves the
// store exactly as it was (fail-closed by construction).
package memory

import (
	"context"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// catalogRepository implements repository.CatalogRepository with a guarded
// product slice. The id allocator has its own lock so that id allocation never
// contends with, or nests inside, the product list's critical section.
type catalogRepository struct {
	mu       sync.RWMutex
	products []entity.Product

	idMu   sync.Mutex
	nextID int64
}

// NewCatalogRepository is the constructor for catalogRepository.
// It returns the implementation as a repository.CatalogRepository interface.
func NewCatalogRepository() repository.CatalogRepository {
	return &catalogRepository{nextID: 1}
}

// allocateID hands out the next product id under its own narrow lock.
func (repo *catalogRepository) allocateID() int64 {
	repo.idMu.Lock()
	defer repo.idMu.Unlock()

	id := repo.nextID
	repo.nextID++

	return id
}

// Create allocates the next product id, appends the full record and returns a copy.
func (repo *catalogRepository) Create(_ context.Context, product *entity.Product) (*entity.Product, error) {
	record := entity.Product{
		ID:             repo.allocateID(),
		Name:           product.Name,
		Description:    product.Description,
		Price:          product.Price,
		InventoryCount: product.InventoryCount,
	}

	repo.mu.Lock()
	repo.products = append(repo.products, record)
	repo.mu.Unlock()

	return &record, nil
}

// FindAll returns an independent snapshot of every product.
func (repo *catalogRepository) FindAll(_ context.Context) ([]entity.Product, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	snapshot := make([]entity.Product, len(repo.products))
	copy(snapshot, repo.products)

	return snapshot, nil
}

// FindByID retrieves a single product, or repository.ErrProductNotFound.
func (repo *catalogRepository) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for i := range repo.products {
		if repo.products[i].ID == id {
			product := repo.products[i]

			return &product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

// UpdateInventory replaces the product's inventory count. A negative count is
// rejected before the guard is even taken, leaving the product unchanged.
func (repo *catalogRepository) UpdateInventory(_ context.Context, id int64, count int64) (*entity.Product, error) {
	if count < 0 {
		return nil, repository.ErrNegativeInventory
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.products {
		if repo.products[i].ID == id {
			repo.products[i].InventoryCount = count
			product := repo.products[i]

			return &product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

// Filter returns every product for which all present criteria hold.
func (repo *catalogRepository) Filter(_ context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	matched := make([]entity.Product, 0, len(repo.products))
	for _, product := range repo.products {
		if filter.Matches(product) {
			matched = append(matched, product)
		}
	}

	return matched, nil
}

// Delete removes the product if present and reports whether a removal occurred.
func (repo *catalogRepository) Delete(_ context.Context, id int64) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.products {
		if repo.products[i].ID == id {
			repo.products = append(repo.products[:i], repo.products[i+1:]...)

			return true, nil
		}
	}

	return false, nil
}
