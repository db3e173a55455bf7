package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoga-studio/front/internal/models"
)

func TestMemoryUserRepository(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	admin, err := repo.Create(ctx, &UserRecord{
		User:         models.User{ID: 1, Email: "yoga@studio.com", Admin: true, Password: "plain"},
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Empty(t, admin.Password)

	_, err = repo.Create(ctx, &UserRecord{User: models.User{Email: " YOGA@studio.com "}})
	assert.ErrorIs(t, err, ErrEmailTaken)

	toto, err := repo.Create(ctx, &UserRecord{User: models.User{Email: "toto3@toto.com"}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), toto.ID)

	byEmail, err := repo.GetByEmail(ctx, "Yoga@Studio.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	require.NoError(t, repo.Delete(ctx, 2))
	_, err = repo.GetByID(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetByEmail(ctx, "toto3@toto.com")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 2), ErrNotFound)
}

func TestMemoryTeacherRepository(t *testing.T) {
	repo := NewMemoryTeacherRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.Teacher{ID: 2, FirstName: "Hélène", LastName: "THIERCELIN"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Teacher{ID: 1, FirstName: "Margot", LastName: "DELAHAYE"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Margot", list[0].FirstName)

	_, err = repo.GetByID(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}
