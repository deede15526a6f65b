//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"wescoot-api/internal/infra"
	"wescoot-api/internal/pkg/errs"
	"wescoot-api/internal/usecase/queries"
	queriesmock "wescoot-api/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func TestResolveSortColumn(t *testing.T) {
	testCases := []struct {
		sortBy   string
		expected string
	}{
		{"name", "name"},
		{"price", "price"},
		{"brand", "brand"},
		{"createdAt", "created_at"},
		{"", "created_at"},
		{"id; DROP TABLE scooters", "created_at"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, queries.ResolveSortColumn(tc.sortBy), "sortBy=%q", tc.sortBy)
	}
}

func TestValidatePageSize(t *testing.T) {
	assert.Equal(t, queries.DefaultPageSize, queries.ValidatePageSize(0))
	assert.Equal(t, queries.DefaultPageSize, queries.ValidatePageSize(-5))
	assert.Equal(t, 24, queries.ValidatePageSize(24))
	assert.Equal(t, queries.MaxPageSize, queries.ValidatePageSize(10_000))
}

func TestParsePriceRange(t *testing.T) {
	testCases := []struct {
		input    string
		min, max float64
		ok       bool
	}{
		{"50-150", 50, 150, true},
		{"0-99.99", 0, 99.99, true},
		{" 10 - 20 ", 10, 20, true},
		{"abc", 0, 0, false},
		{"50-", 0, 0, false},
		{"-150", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tc := range testCases {
		minPrice, maxPrice, ok := queries.ParsePriceRange(tc.input)
		assert.Equal(t, tc.ok, ok, "input=%q", tc.input)
		if tc.ok {
			assert.Equal(t, tc.min, minPrice, "input=%q", tc.input)
			assert.Equal(t, tc.max, maxPrice, "input=%q", tc.input)
		}
	}
}

func TestScooterQueries_List(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (queries.ScooterQueries, *queriesmock.MockScooterReadStore) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockScooterReadStore(ctrl)
		return queries.NewScooterQueries(repo), repo
	}

	t.Run("defaults: first page, grid size, newest first", func(t *testing.T) {
		q, repo := setup(t)

		var captured queries.ScooterPageQuery
		repo.EXPECT().FindPage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pq queries.ScooterPageQuery) ([]*queries.ScooterView, int64, error) {
				captured = pq
				return []*queries.ScooterView{}, 0, nil
			})

		page, err := q.List(ctx, queries.ScooterListParams{})
		require.NoError(t, err)

		assert.Equal(t, "created_at", captured.SortColumn)
		assert.True(t, captured.Descending)
		assert.Equal(t, queries.DefaultPageSize, captured.Limit)
		assert.Equal(t, 0, captured.Offset)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, 0, page.TotalPages)
		assert.NotNil(t, page.Scooters)
	})

	t.Run("explicit sort and ascending order", func(t *testing.T) {
		q, repo := setup(t)

		var captured queries.ScooterPageQuery
		repo.EXPECT().FindPage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pq queries.ScooterPageQuery) ([]*queries.ScooterView, int64, error) {
				captured = pq
				return []*queries.ScooterView{}, 0, nil
			})

		_, err := q.List(ctx, queries.ScooterListParams{SortBy: "price", Order: "asc"})
		require.NoError(t, err)

		assert.Equal(t, "price", captured.SortColumn)
		assert.False(t, captured.Descending)
	})

	t.Run("page math and offset", func(t *testing.T) {
		q, repo := setup(t)

		var captured queries.ScooterPageQuery
		repo.EXPECT().FindPage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pq queries.ScooterPageQuery) ([]*queries.ScooterView, int64, error) {
				captured = pq
				return []*queries.ScooterView{}, 25, nil
			})

		page, err := q.List(ctx, queries.ScooterListParams{Page: 3})
		require.NoError(t, err)

		assert.Equal(t, 24, captured.Offset)
		assert.Equal(t, int64(25), page.TotalItems)
		assert.Equal(t, 3, page.TotalPages) // ceil(25/12)
		assert.Equal(t, 3, page.CurrentPage)
	})

	t.Run("non-positive page is clamped to one", func(t *testing.T) {
		q, repo := setup(t)

		var captured queries.ScooterPageQuery
		repo.EXPECT().FindPage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pq queries.ScooterPageQuery) ([]*queries.ScooterView, int64, error) {
				captured = pq
				return []*queries.ScooterView{}, 0, nil
			})

		page, err := q.List(ctx, queries.ScooterListParams{Page: -2})
		require.NoError(t, err)
		assert.Equal(t, 0, captured.Offset)
		assert.Equal(t, 1, page.CurrentPage)
	})

	t.Run("speed and range thresholds become lower bounds", func(t *testing.T) {
		q, repo := setup(t)

		var captured queries.ScooterPageQuery
		repo.EXPECT().FindPage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pq queries.ScooterPageQuery) ([]*queries.ScooterView, int64, error) {
				captured = pq
				return []*queries.ScooterView{}, 0, nil
			})

		_, err := q.List(ctx, queries.ScooterListParams{
			Brand:    ptr("Xiaomi"),
			Motor:    ptr("hub"),
			MaxSpeed: ptr(25.0),
			MaxRange: ptr(40.0),
		})
		require.NoError(t, err)

		require.NotNil(t, captured.MinSpeed)
		assert.Equal(t, 25.0, *captured.MinSpeed)
		require.NotNil(t, captured.MinRange)
		assert.Equal(t, 40.0, *captured.MinRange)
		require.NotNil(t, captured.Brand)
		assert.Equal(t, "Xiaomi", *captured.Brand)
	})

	t.Run("price range is parsed into bounds", func(t *testing.T) {
		q, repo := setup(t)

		var captured queries.ScooterPageQuery
		repo.EXPECT().FindPage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pq queries.ScooterPageQuery) ([]*queries.ScooterView, int64, error) {
				captured = pq
				return []*queries.ScooterView{}, 0, nil
			})

		_, err := q.List(ctx, queries.ScooterListParams{Price: ptr("50-150")})
		require.NoError(t, err)

		require.NotNil(t, captured.MinPrice)
		assert.Equal(t, 50.0, *captured.MinPrice)
		require.NotNil(t, captured.MaxPrice)
		assert.Equal(t, 150.0, *captured.MaxPrice)
	})

	t.Run("malformed price range is dropped", func(t *testing.T) {
		q, repo := setup(t)

		var captured queries.ScooterPageQuery
		repo.EXPECT().FindPage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pq queries.ScooterPageQuery) ([]*queries.ScooterView, int64, error) {
				captured = pq
				return []*queries.ScooterView{}, 0, nil
			})

		_, err := q.List(ctx, queries.ScooterListParams{Price: ptr("cheap")})
		require.NoError(t, err)
		assert.Nil(t, captured.MinPrice)
		assert.Nil(t, captured.MaxPrice)
	})

	t.Run("known category resolves to its id", func(t *testing.T) {
		q, repo := setup(t)

		repo.EXPECT().CategoryIDByName(gomock.Any(), "Commuter").Return(int64(7), nil)

		var captured queries.ScooterPageQuery
		repo.EXPECT().FindPage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pq queries.ScooterPageQuery) ([]*queries.ScooterView, int64, error) {
				captured = pq
				return []*queries.ScooterView{}, 0, nil
			})

		_, err := q.List(ctx, queries.ScooterListParams{Category: ptr("Commuter")})
		require.NoError(t, err)
		require.NotNil(t, captured.CategoryID)
		assert.Equal(t, int64(7), *captured.CategoryID)
	})

	t.Run("unknown category is silently dropped", func(t *testing.T) {
		q, repo := setup(t)

		repo.EXPECT().CategoryIDByName(gomock.Any(), "hoverboards").
			Return(int64(0), infra.WrapRepoErr("category not found", errors.New("no rows"), infra.KindNotFound))

		var captured queries.ScooterPageQuery
		repo.EXPECT().FindPage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pq queries.ScooterPageQuery) ([]*queries.ScooterView, int64, error) {
				captured = pq
				return []*queries.ScooterView{}, 0, nil
			})

		_, err := q.List(ctx, queries.ScooterListParams{Category: ptr("hoverboards")})
		require.NoError(t, err)
		assert.Nil(t, captured.CategoryID)
	})

	t.Run("category lookup failure aborts the query", func(t *testing.T) {
		q, repo := setup(t)

		repo.EXPECT().CategoryIDByName(gomock.Any(), "Commuter").
			Return(int64(0), infra.WrapRepoErr("connection reset", errors.New("boom")))

		_, err := q.List(ctx, queries.ScooterListParams{Category: ptr("Commuter")})
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})

	t.Run("read store failure surfaces as database error", func(t *testing.T) {
		q, repo := setup(t)

		repo.EXPECT().FindPage(gomock.Any(), gomock.Any()).
			Return(nil, int64(0), infra.WrapRepoErr("connection reset", errors.New("boom")))

		_, err := q.List(ctx, queries.ScooterListParams{})
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

func TestScooterQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockScooterReadStore(ctrl)
	q := queries.NewScooterQueries(repo)

	t.Run("returns the view", func(t *testing.T) {
		view := &queries.ScooterView{ID: 1, Name: "Mi Pro 2"}
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(view, nil)

		got, err := q.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), int64(99)).
			Return(nil, infra.WrapRepoErr("scooter not found", errors.New("no rows"), infra.KindNotFound))

		_, err := q.GetByID(ctx, 99)
		assert.ErrorIs(t, err, errs.ErrScooterNotFound)
	})

	t.Run("wraps other failures", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).
			Return(nil, infra.WrapRepoErr("connection reset", errors.New("boom")))

		_, err := q.GetByID(ctx, 1)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

func TestScooterQueries_Brands(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockScooterReadStore(ctrl)
	q := queries.NewScooterQueries(repo)

	t.Run("passes brands through", func(t *testing.T) {
		repo.EXPECT().DistinctBrands(gomock.Any()).Return([]string{"Ninebot", "Xiaomi"}, nil)

		brands, err := q.Brands(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ninebot", "Xiaomi"}, brands)
	})

	t.Run("wraps failures", func(t *testing.T) {
		repo.EXPECT().DistinctBrands(gomock.Any()).
			Return(nil, infra.WrapRepoErr("connection reset", errors.New("boom")))

		_, err := q.Brands(ctx)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
