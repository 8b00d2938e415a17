package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/userconsole/internal/common"
	"github.com/dmitrijs2005/userconsole/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, r *MemoryRepository, users ...models.User) {
	t.Helper()
	for i := range users {
		_, err := r.Create(context.Background(), &users[i])
		require.NoError(t, err)
	}
}

func TestMemory_CreateRejectsEmailInAnyCase(t *testing.T) {
	r := NewMemoryRepository()
	seed(t, r, models.User{ID: "u-1", Email: "ann@x.io"})

	_, err := r.Create(context.Background(), &models.User{ID: "u-2", Email: "ANN@X.IO"})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestMemory_ListKeepsInsertionOrder(t *testing.T) {
	r := NewMemoryRepository()
	seed(t, r,
		models.User{ID: "u-2", Email: "b@x.io"},
		models.User{ID: "u-1", Email: "a@x.io"},
		models.User{ID: "u-3", Email: "c@x.io"},
	)
	require.NoError(t, r.Delete(context.Background(), "u-1"))

	got, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "u-2", got[0].ID)
	assert.Equal(t, "u-3", got[1].ID)
}

func TestMemory_UpdateKeepsPasswordAndCatchesConflict(t *testing.T) {
	r := NewMemoryRepository()
	seed(t, r,
		models.User{ID: "u-1", Name: "Ann", Email: "ann@x.io", PasswordHash: []byte("h")},
		models.User{ID: "u-2", Email: "bob@x.io"},
	)
	ctx := context.Background()

	require.NoError(t, r.Update(ctx, &models.User{ID: "u-1", Name: "Anna", Email: "ANN@x.io"}))
	got, err := r.GetByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.Name)
	assert.Equal(t, []byte("h"), got.PasswordHash)

	assert.ErrorIs(t, r.Update(ctx, &models.User{ID: "u-1", Email: "bob@x.io"}), common.ErrAlreadyExists)
	assert.ErrorIs(t, r.Update(ctx, &models.User{ID: "u-9"}), common.ErrNotFound)
}

func TestMemory_GetByEmailIgnoresCase(t *testing.T) {
	r := NewMemoryRepository()
	seed(t, r, models.User{ID: "u-1", Email: "ann@x.io"})

	got, err := r.GetByEmail(context.Background(), "Ann@X.io")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)

	_, err = r.GetByEmail(context.Background(), "bob@x.io")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorIs(t, r.Delete(context.Background(), "u-9"), common.ErrNotFound)
}
