//go:build unit

package readstore

import (
	"strings"
	"testing"

	"wescoot-api/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestBuildScooterWhere(t *testing.T) {
	t.Run("no filters yields no clause", func(t *testing.T) {
		where, args := buildScooterWhere(queries.ScooterPageQuery{})
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("single filter", func(t *testing.T) {
		where, args := buildScooterWhere(queries.ScooterPageQuery{Brand: ptr("Xiaomi")})
		assert.Equal(t, " WHERE s.brand = $1", where)
		if diff := cmp.Diff([]any{"Xiaomi"}, args); diff != "" {
			t.Errorf("args mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("all filters in positional order", func(t *testing.T) {
		where, args := buildScooterWhere(queries.ScooterPageQuery{
			Brand:      ptr("Xiaomi"),
			CategoryID: ptr(int64(7)),
			Motor:      ptr("hub"),
			MinSpeed:   ptr(25.0),
			MinRange:   ptr(40.0),
			MinPrice:   ptr(50.0),
			MaxPrice:   ptr(150.0),
		})

		expected := " WHERE s.brand = $1 AND s.category_id = $2 AND s.motor_type = $3" +
			" AND s.max_speed >= $4 AND s.max_range >= $5 AND s.price >= $6 AND s.price <= $7"
		assert.Equal(t, expected, where)

		wantArgs := []any{"Xiaomi", int64(7), "hub", 25.0, 40.0, 50.0, 150.0}
		if diff := cmp.Diff(wantArgs, args); diff != "" {
			t.Errorf("args mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestBuildScooterPageQuery(t *testing.T) {
	t.Run("descending window with stable tiebreak", func(t *testing.T) {
		sql, args := buildScooterPageQuery(queries.ScooterPageQuery{
			SortColumn: "created_at",
			Descending: true,
			Limit:      12,
			Offset:     24,
		})

		assert.True(t, strings.HasSuffix(sql, " ORDER BY s.created_at DESC, s.id DESC LIMIT $1 OFFSET $2"), sql)
		if diff := cmp.Diff([]any{12, 24}, args); diff != "" {
			t.Errorf("args mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("filters shift the window placeholders", func(t *testing.T) {
		sql, args := buildScooterPageQuery(queries.ScooterPageQuery{
			Brand:      ptr("Xiaomi"),
			SortColumn: "price",
			Descending: false,
			Limit:      12,
			Offset:     0,
		})

		assert.Contains(t, sql, " WHERE s.brand = $1")
		assert.True(t, strings.HasSuffix(sql, " ORDER BY s.price ASC, s.id ASC LIMIT $2 OFFSET $3"), sql)
		if diff := cmp.Diff([]any{"Xiaomi", 12, 0}, args); diff != "" {
			t.Errorf("args mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestBuildScooterCountQuery(t *testing.T) {
	t.Run("unfiltered", func(t *testing.T) {
		sql, args := buildScooterCountQuery(queries.ScooterPageQuery{})
		assert.Equal(t, "SELECT count(*) FROM scooters s", sql)
		assert.Empty(t, args)
	})

	t.Run("filtered", func(t *testing.T) {
		sql, args := buildScooterCountQuery(queries.ScooterPageQuery{
			MinPrice: ptr(50.0),
			MaxPrice: ptr(150.0),
		})
		assert.Equal(t, "SELECT count(*) FROM scooters s WHERE s.price >= $1 AND s.price <= $2", sql)
		if diff := cmp.Diff([]any{50.0, 150.0}, args); diff != "" {
			t.Errorf("args mismatch (-want +got):\n%s", diff)
		}
	})
}
