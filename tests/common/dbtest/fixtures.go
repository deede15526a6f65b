//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestCategory(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO categories (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`, name).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestSafetyInfo(t *testing.T, db DBLike, helmetRequired bool, minAge int32, guidelines string) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO safety_info (helmet_required, min_age_required, general_guidelines)
		VALUES ($1, $2, $3)
		RETURNING id`, helmetRequired, minAge, guidelines).Scan(&id)
	require.NoError(t, err)

	return id
}

// ScooterSeed carries the columns tests care about; everything else
// falls back to the schema defaults.
type ScooterSeed struct {
	Name         string
	Brand        string
	MotorType    string
	MaxSpeed     float64
	MaxRange     float64
	Price        float64
	Stock        int32
	CategoryID   *int64
	SafetyInfoID *int64
}

func CreateTestScooter(t *testing.T, db DBLike, seed ScooterSeed) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO scooters (name, brand, motor_type, max_speed, max_range, price, stock, category_id, safety_info_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		seed.Name, seed.Brand, seed.MotorType, seed.MaxSpeed, seed.MaxRange,
		seed.Price, seed.Stock, seed.CategoryID, seed.SafetyInfoID).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestDiscount(t *testing.T, db DBLike, scooterID int64, percentage float64, validFrom, validUntil time.Time) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO discounts (scooter_id, discount_percentage, valid_from, valid_until)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, scooterID, percentage, validFrom, validUntil).Scan(&id)
	require.NoError(t, err)

	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO categories (name) VALUES
		    ('Commuter'),
		    ('Off-Road'),
		    ('Performance')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
