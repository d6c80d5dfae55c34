package repository

import (
	"context"
	"testing"

	"github.com/koldo-a/backend-2/models"
	"github.com/koldo-a/backend-2/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *GormStore {
	t.Helper()
	return NewStore(testutil.NewDB(t))
}

func TestUserRepo_CreateAndFind(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	user := &models.User{Email: "a@x.com"}
	require.NoError(t, store.Users().Create(ctx, user))
	assert.NotZero(t, user.ID, "ID should be set after creation")

	byEmail, err := store.Users().FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := store.Users().FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
}

func TestUserRepo_NotFound(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.Users().FindByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Users().FindByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_EmailMatchIsExact(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Users().Create(ctx, &models.User{Email: "a@x.com"}))

	_, err := store.Users().FindByEmail(ctx, "a@x.co")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Users().FindByEmail(ctx, "%@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Users().Create(ctx, &models.User{Email: "dup@x.com"}))

	err := store.Users().Create(ctx, &models.User{Email: "dup@x.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRepo_ListOrderedByID(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	empty, err := store.Users().List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, email := range []string{"c@x.com", "a@x.com", "b@x.com"} {
		require.NoError(t, store.Users().Create(ctx, &models.User{Email: email}))
	}

	users, err := store.Users().List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	for i := 1; i < len(users); i++ {
		assert.Less(t, users[i-1].ID, users[i].ID)
	}
	assert.Equal(t, "c@x.com", users[0].Email)
}

func TestItemRepo_CreateAndList(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	owner := &models.User{Email: "owner@x.com"}
	require.NoError(t, store.Users().Create(ctx, owner))

	item := &models.Item{Name: "lamp", OwnerID: owner.ID}
	require.NoError(t, store.Items().Create(ctx, item))
	assert.NotZero(t, item.ID)

	items, err := store.Items().List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "lamp", items[0].Name)
	assert.Equal(t, owner.ID, items[0].OwnerID)
}

func TestItemRepo_CreateWithUnknownOwner(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	err := store.Items().Create(ctx, &models.Item{Name: "orphan", OwnerID: 999})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicate)

	items, err := store.Items().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemRepo_UpdateName(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	owner := &models.User{Email: "owner@x.com"}
	require.NoError(t, store.Users().Create(ctx, owner))
	first := &models.Item{Name: "first", OwnerID: owner.ID}
	second := &models.Item{Name: "second", OwnerID: owner.ID}
	require.NoError(t, store.Items().Create(ctx, first))
	require.NoError(t, store.Items().Create(ctx, second))

	n, err := store.Items().UpdateName(ctx, first.ID, "renamed")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	items, err := store.Items().List(ctx)
	require.NoError(t, err)
	names := map[uint]string{}
	for _, it := range items {
		names[it.ID] = it.Name
	}
	assert.Equal(t, "renamed", names[first.ID])
	assert.Equal(t, "second", names[second.ID])

	n, err = store.Items().UpdateName(ctx, 12345, "ghost")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestItemRepo_Delete(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	owner := &models.User{Email: "owner@x.com"}
	require.NoError(t, store.Users().Create(ctx, owner))
	item := &models.Item{Name: "doomed", OwnerID: owner.ID}
	require.NoError(t, store.Items().Create(ctx, item))

	n, err := store.Items().Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// deleting again matches nothing but is not an error
	n, err = store.Items().Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	items, err := store.Items().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGormStore_Ping(t *testing.T) {
	store := setupStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}
