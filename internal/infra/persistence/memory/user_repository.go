package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// userRepository implements repository.UserRepository with a guarded user
// slice and its own id allocator, following the same locking discipline as the
// other stores.
type userRepository struct {
	mu    sync.RWMutex
	users []entity.User

	idMu   sync.Mutex
	nextID int64
}

// NewUserRepository is the constructor for userRepository.
// It returns the implementation as a repository.UserRepository interface.
func NewUserRepository() repository.UserRepository {
	return &userRepository{nextID: 1}
}

func (repo *userRepository) allocateID() int64 {
	repo.idMu.Lock()
	defer repo.idMu.Unlock()

	id := repo.nextID
	repo.nextID++

	return id
}

// Create stores the account with a freshly allocated id. Usernames and emails
// are unique case-insensitively; duplicates are rejected with ErrUserExists.
func (repo *userRepository) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	record := entity.User{
		ID:           repo.allocateID(),
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now(),
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.users {
		if strings.EqualFold(repo.users[i].Username, record.Username) || strings.EqualFold(repo.users[i].Email, record.Email) {
			return nil, repository.ErrUserExists
		}
	}
	repo.users = append(repo.users, record)

	return &record, nil
}

// FindByID retrieves a single user by their unique id.
func (repo *userRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for i := range repo.users {
		if repo.users[i].ID == id {
			user := repo.users[i]

			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// FindByUsername retrieves a single user by their login name.
func (repo *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for i := range repo.users {
		if strings.EqualFold(repo.users[i].Username, username) {
			user := repo.users[i]

			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}
