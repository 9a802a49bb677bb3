package memory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: "$argon2id$..."})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := repo.FindByUsername(ctx, "ALICE")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID, "username lookup is case-insensitive")

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_RejectsDuplicates(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &entity.User{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &entity.User{Username: "Alice", Email: "other@example.com"})
	assert.ErrorIs(t, err, repository.ErrUserExists)

	_, err = repo.Create(ctx, &entity.User{Username: "bob", Email: "ALICE@example.com"})
	assert.ErrorIs(t, err, repository.ErrUserExists)
}

func TestUserRepository_PasswordHashNeverSerialized(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: "super-secret-hash"})
	require.NoError(t, err)

	body, err := json.Marshal(created)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "super-secret-hash")
}
