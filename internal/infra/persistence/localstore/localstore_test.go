package localstore

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_GetMissingKey(t *testing.T) {
	kv := OpenMem()

	_, err := kv.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestStore_SetGetDelete(t *testing.T) {
	kv := OpenMem()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("v1")))
	require.NoError(t, kv.Set(ctx, "k", []byte("v2")))

	raw, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), raw)

	require.NoError(t, kv.Delete(ctx, "k"))
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, kv.Delete(ctx, "k"))
}

func TestCartRepository_RoundTrip(t *testing.T) {
	kv := OpenMem()
	repo := NewCartRepository(kv, newTestLogger())
	ctx := context.Background()

	cart, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	cart.Add(entity.CartLine{
		Product:  entity.Product{ID: "m1", Name: "Shirt", Price: 1499},
		Quantity: 2,
		Size:     "M",
		Color:    "White",
	})
	require.NoError(t, repo.Save(ctx, cart))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
	assert.Equal(t, int64(2998), loaded.Total())
}

func TestCartRepository_CorruptBlobYieldsEmptyCart(t *testing.T) {
	kv := OpenMem()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, cartKey, []byte("{not json")))

	cart, err := NewCartRepository(kv, newTestLogger()).Load(ctx)

	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestWishlistRepository_CorruptBlobYieldsEmptyWishlist(t *testing.T) {
	kv := OpenMem()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, wishlistKey, []byte("]")))

	wishlist, err := NewWishlistRepository(kv, newTestLogger()).Load(ctx)

	require.NoError(t, err)
	assert.Empty(t, wishlist.Items)
}

func TestIdentityRepository_CurrentUserLifecycle(t *testing.T) {
	kv := OpenMem()
	repo := NewIdentityRepository(kv, newTestLogger())
	ctx := context.Background()

	_, err := repo.CurrentUser(ctx)
	assert.ErrorIs(t, err, repository.ErrNoCurrentUser)

	user := &entity.User{ID: uuid.New(), Name: "Asha", Email: "asha@example.com"}
	require.NoError(t, repo.SaveCurrentUser(ctx, user))

	loaded, err := repo.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, loaded.ID)

	require.NoError(t, repo.ClearCurrentUser(ctx))
	_, err = repo.CurrentUser(ctx)
	assert.ErrorIs(t, err, repository.ErrNoCurrentUser)
}

func TestIdentityRepository_CorruptCurrentUser(t *testing.T) {
	kv := OpenMem()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, userKey, []byte("garbage")))

	_, err := NewIdentityRepository(kv, newTestLogger()).CurrentUser(ctx)

	assert.ErrorIs(t, err, repository.ErrNoCurrentUser)
}

func TestIdentityRepository_RosterRoundTrip(t *testing.T) {
	kv := OpenMem()
	repo := NewIdentityRepository(kv, newTestLogger())
	ctx := context.Background()

	roster, err := repo.Roster(ctx)
	require.NoError(t, err)
	assert.Empty(t, roster)

	roster = append(roster, entity.Credential{
		User:         entity.User{ID: uuid.New(), Name: "Asha", Email: "asha@example.com"},
		PasswordHash: "hash",
	})
	require.NoError(t, repo.SaveRoster(ctx, roster))

	loaded, err := repo.Roster(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "asha@example.com", loaded[0].Email)
}

func TestIdentityRepository_CorruptRosterYieldsEmpty(t *testing.T) {
	kv := OpenMem()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, usersKey, []byte("{{")))

	roster, err := NewIdentityRepository(kv, newTestLogger()).Roster(ctx)

	require.NoError(t, err)
	assert.Empty(t, roster)
}

func TestOrderRepository_SingleSlot(t *testing.T) {
	kv := OpenMem()
	repo := NewOrderRepository(kv, newTestLogger())
	ctx := context.Background()

	_, err := repo.Last(ctx)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	first := entity.NewOrder("receipt_1", nil, 100, entity.ShippingAddress{}, time.Now().UTC())
	require.NoError(t, repo.Save(ctx, first))

	second := entity.NewOrder("receipt_2", nil, 200, entity.ShippingAddress{}, time.Now().UTC())
	require.NoError(t, repo.Save(ctx, second))

	last, err := repo.Last(ctx)
	require.NoError(t, err)
	assert.Equal(t, "receipt_2", last.OrderID, "each save overwrites the single slot")
}

func TestOrderRepository_CorruptBlobIsNotFound(t *testing.T) {
	kv := OpenMem()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, lastOrderKey, []byte("oops")))

	_, err := NewOrderRepository(kv, newTestLogger()).Last(ctx)

	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestShopModeRepository_DefaultAndRoundTrip(t *testing.T) {
	kv := OpenMem()
	repo := NewShopModeRepository(kv, newTestLogger())
	ctx := context.Background()

	mode, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultShopMode, mode)

	require.NoError(t, repo.Save(ctx, entity.ModeKids))

	mode, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ModeKids, mode)
}

func TestShopModeRepository_UnknownValueFallsBack(t *testing.T) {
	kv := OpenMem()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, shopModeKey, []byte("pets")))

	mode, err := NewShopModeRepository(kv, newTestLogger()).Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultShopMode, mode)
}
