package memory

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, s *ProductStore, name, category string, price int64, stock int) *domain.Product {
	t.Helper()
	p, err := domain.NewProduct(name, "", decimal.NewFromInt(price), stock, category)
	require.NoError(t, err)
	require.NoError(t, s.Create(context.Background(), p))
	return p
}

func TestProductStore_CreateAndList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewProductStore()

	mug := seedProduct(t, s, "Mug", "kitchen", 10, 5)
	shirt := seedProduct(t, s, "Shirt", "apparel", 20, 1)
	plate := seedProduct(t, s, "Plate", "kitchen", 4, 0)

	assert.Equal(t, []int64{1, 2, 3}, []int64{mug.ID, shirt.ID, plate.ID})

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Mug", all[0].Name)
	assert.Equal(t, "Plate", all[2].Name)

	kitchen, err := s.List(ctx, "kitchen")
	require.NoError(t, err)
	require.Len(t, kitchen, 2)
	assert.Equal(t, mug.ID, kitchen[0].ID)
	assert.Equal(t, plate.ID, kitchen[1].ID)

	none, err := s.List(ctx, "Kitchen")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = s.GetByID(ctx, 99)
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestProductStore_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewProductStore()

	mug := seedProduct(t, s, "Mug", "kitchen", 10, 5)
	created := mug.CreatedAt

	require.NoError(t, mug.Revise("Mug", "", decimal.NewFromInt(15), 0, "kitchen"))
	mug.CreatedAt = created.AddDate(1, 0, 0)
	require.NoError(t, s.Update(ctx, mug))

	got, err := s.GetByID(ctx, mug.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15).Equal(got.Price))
	assert.False(t, got.IsAvailable)
	assert.Equal(t, created, got.CreatedAt)

	missing := *mug
	missing.ID = 99
	assert.ErrorIs(t, s.Update(ctx, &missing), store.ErrProductNotFound)
}

func TestProductStore_ReserveStock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("reduces every line", func(t *testing.T) {
		s := NewProductStore()
		mug := seedProduct(t, s, "Mug", "kitchen", 10, 5)
		shirt := seedProduct(t, s, "Shirt", "apparel", 20, 1)

		reserved, err := s.ReserveStock(ctx, []domain.CartLine{
			{ProductID: mug.ID, Quantity: 3},
			{ProductID: shirt.ID, Quantity: 1},
		})
		require.NoError(t, err)
		require.Len(t, reserved, 2)
		assert.Equal(t, mug.ID, reserved[0].ID)
		assert.True(t, decimal.NewFromInt(10).Equal(reserved[0].Price))

		gotMug, _ := s.GetByID(ctx, mug.ID)
		gotShirt, _ := s.GetByID(ctx, shirt.ID)
		assert.Equal(t, 2, gotMug.Stock)
		assert.Equal(t, 0, gotShirt.Stock)
		assert.False(t, gotShirt.IsAvailable)
	})

	t.Run("insufficient later line leaves earlier lines untouched", func(t *testing.T) {
		s := NewProductStore()
		mug := seedProduct(t, s, "Mug", "kitchen", 10, 5)
		shirt := seedProduct(t, s, "Shirt", "apparel", 20, 2)

		_, err := s.ReserveStock(ctx, []domain.CartLine{
			{ProductID: mug.ID, Quantity: 3},
			{ProductID: shirt.ID, Quantity: 10},
		})
		require.ErrorIs(t, err, domain.ErrInsufficientStock)

		gotMug, _ := s.GetByID(ctx, mug.ID)
		gotShirt, _ := s.GetByID(ctx, shirt.ID)
		assert.Equal(t, 5, gotMug.Stock)
		assert.Equal(t, 2, gotShirt.Stock)
	})

	t.Run("missing product aborts the whole reservation", func(t *testing.T) {
		s := NewProductStore()
		mug := seedProduct(t, s, "Mug", "kitchen", 10, 5)

		_, err := s.ReserveStock(ctx, []domain.CartLine{
			{ProductID: mug.ID, Quantity: 1},
			{ProductID: 404, Quantity: 1},
		})
		require.ErrorIs(t, err, store.ErrProductNotFound)

		gotMug, _ := s.GetByID(ctx, mug.ID)
		assert.Equal(t, 5, gotMug.Stock)
	})

	t.Run("repeated product lines are summed", func(t *testing.T) {
		s := NewProductStore()
		mug := seedProduct(t, s, "Mug", "kitchen", 10, 5)

		_, err := s.ReserveStock(ctx, []domain.CartLine{
			{ProductID: mug.ID, Quantity: 3},
			{ProductID: mug.ID, Quantity: 3},
		})
		var stockErr *domain.StockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 6, stockErr.Requested)
		assert.Equal(t, 5, stockErr.Available)
	})

	t.Run("huge repeated quantity does not wrap the running total", func(t *testing.T) {
		s := NewProductStore()
		mug := seedProduct(t, s, "Mug", "kitchen", 10, 5)

		_, err := s.ReserveStock(ctx, []domain.CartLine{
			{ProductID: mug.ID, Quantity: 3},
			{ProductID: mug.ID, Quantity: math.MaxInt},
		})
		var stockErr *domain.StockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, math.MaxInt, stockErr.Requested)
		assert.Equal(t, 5, stockErr.Available)

		gotMug, err := s.GetByID(ctx, mug.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, gotMug.Stock, "a rejected reservation must not consume stock")
	})
}

func TestProductStore_ConcurrentReservationsNeverOversell(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewProductStore()
	mug := seedProduct(t, s, "Mug", "kitchen", 10, 50)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.ReserveStock(ctx, []domain.CartLine{{ProductID: mug.ID, Quantity: 1}}); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	got, err := s.GetByID(ctx, mug.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, succeeded)
	assert.Equal(t, 0, got.Stock)
	assert.False(t, got.IsAvailable)
}
