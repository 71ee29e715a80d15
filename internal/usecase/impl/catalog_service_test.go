package impl

import (
	"context"
	"sort"
	"testing"

	"stylemart/internal/domain/entity"
	domainerrors "stylemart/internal/domain/errors"
	"stylemart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (usecase.CatalogUsecase, usecase.ShopModeUsecase, *stores) {
	t.Helper()

	st := newStores(t)

	return NewCatalogService(st.catalog, st.mode), NewShopModeService(st.mode), st
}

func TestCatalogService_List_FiltersByMode(t *testing.T) {
	svc, _, _ := createTestCatalogService(t)

	products, err := svc.List(context.Background(), usecase.ListProductsInput{Mode: "women"})

	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, entity.ModeWomen, p.Mode)
	}
}

func TestCatalogService_List_EmptyModeUsesPersisted(t *testing.T) {
	svc, modeSvc, _ := createTestCatalogService(t)
	ctx := context.Background()

	require.NoError(t, modeSvc.Set(ctx, entity.ModeKids))

	products, err := svc.List(ctx, usecase.ListProductsInput{})

	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, entity.ModeKids, p.Mode)
	}
}

func TestCatalogService_List_RejectsUnknownMode(t *testing.T) {
	svc, _, _ := createTestCatalogService(t)

	_, err := svc.List(context.Background(), usecase.ListProductsInput{Mode: "pets"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidShopMode)
}

func TestCatalogService_List_DiscountedOnly(t *testing.T) {
	svc, _, _ := createTestCatalogService(t)

	products, err := svc.List(context.Background(), usecase.ListProductsInput{Mode: "men", DiscountedOnly: true})

	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.True(t, p.OnSale())
	}
}

func TestCatalogService_List_PriceRange(t *testing.T) {
	svc, _, _ := createTestCatalogService(t)

	products, err := svc.List(context.Background(), usecase.ListProductsInput{Mode: "men", MinPrice: 1000, MaxPrice: 2000})

	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Price, int64(1000))
		assert.LessOrEqual(t, p.Price, int64(2000))
	}
}

func TestCatalogService_List_SortOrders(t *testing.T) {
	svc, _, _ := createTestCatalogService(t)
	ctx := context.Background()

	asc, err := svc.List(ctx, usecase.ListProductsInput{Mode: "men", SortBy: usecase.SortPriceLow})
	require.NoError(t, err)
	assert.True(t, sort.SliceIsSorted(asc, func(i, j int) bool { return asc[i].Price < asc[j].Price }))

	desc, err := svc.List(ctx, usecase.ListProductsInput{Mode: "men", SortBy: usecase.SortPriceHigh})
	require.NoError(t, err)
	assert.True(t, sort.SliceIsSorted(desc, func(i, j int) bool { return desc[i].Price > desc[j].Price }))

	byRating, err := svc.List(ctx, usecase.ListProductsInput{Mode: "men", SortBy: usecase.SortRating})
	require.NoError(t, err)
	assert.True(t, sort.SliceIsSorted(byRating, func(i, j int) bool { return byRating[i].Rating > byRating[j].Rating }))
}

func TestCatalogService_GetBySlug(t *testing.T) {
	svc, _, _ := createTestCatalogService(t)

	product, err := svc.GetBySlug(context.Background(), "floral-midi-dress")
	require.NoError(t, err)
	assert.Equal(t, "w1", product.ID)

	_, err = svc.GetBySlug(context.Background(), "no-such-slug")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_Categories_DistinctPerMode(t *testing.T) {
	svc, _, _ := createTestCatalogService(t)

	categories, err := svc.Categories(context.Background(), "kids")

	require.NoError(t, err)
	assert.Equal(t, []string{"Hoodies", "Leggings", "Shorts", "Jackets"}, categories)
}

func TestShopModeService_DefaultsToMen(t *testing.T) {
	_, modeSvc, _ := createTestCatalogService(t)

	mode, err := modeSvc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.ModeMen, mode)
}

func TestShopModeService_SetAndGet(t *testing.T) {
	_, modeSvc, _ := createTestCatalogService(t)
	ctx := context.Background()

	require.NoError(t, modeSvc.Set(ctx, entity.ModeWomen))

	mode, err := modeSvc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ModeWomen, mode)
}

func TestShopModeService_RejectsUnknownMode(t *testing.T) {
	_, modeSvc, _ := createTestCatalogService(t)

	err := modeSvc.Set(context.Background(), "pets")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidShopMode)
}
