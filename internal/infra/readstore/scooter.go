package readstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"wescoot-api/internal/infra"
	"wescoot-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// DB is the subset of pgxpool.Pool the catalog needs.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ScooterReadStore struct {
	db DB
}

func NewScooterReadStore(db DB) *ScooterReadStore {
	return &ScooterReadStore{db: db}
}

var _ queries.ScooterReadStore = (*ScooterReadStore)(nil)

// Numeric columns are cast to float8 so pgx scans them straight into Go
// floats; discounts come back as a JSON array built per row, which keeps
// the whole page a single round trip.
const scooterSelect = `
SELECT s.id, s.name, s.brand, s.battery, s.charge_time::float8, s.weight::float8,
       s.tyres, s.motor_type, s.max_speed::float8, s.max_range::float8, s.max_load::float8,
       s.length_cm, s.width_cm, s.height_cm, s.description, s.price::float8, s.stock,
       s.category_id, c.name,
       s.safety_info_id, si.helmet_required, si.min_age_required, si.general_guidelines,
       (SELECT COALESCE(json_agg(json_build_object(
                'id', d.id,
                'scooter_id', d.scooter_id,
                'discount_percentage', d.discount_percentage::float8,
                'valid_from', d.valid_from,
                'valid_until', d.valid_until) ORDER BY d.valid_from), '[]'::json)
          FROM discounts d
         WHERE d.scooter_id = s.id) AS discounts,
       s.created_at, s.updated_at
  FROM scooters s
  LEFT JOIN categories c ON c.id = s.category_id
  LEFT JOIN safety_info si ON si.id = s.safety_info_id`

// buildScooterWhere assembles the conjunctive filter clause. Every
// supplied filter must hold for a row to be included.
func buildScooterWhere(q queries.ScooterPageQuery) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(format string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}

	if q.Brand != nil {
		add("s.brand = $%d", *q.Brand)
	}
	if q.CategoryID != nil {
		add("s.category_id = $%d", *q.CategoryID)
	}
	if q.Motor != nil {
		add("s.motor_type = $%d", *q.Motor)
	}
	if q.MinSpeed != nil {
		add("s.max_speed >= $%d", *q.MinSpeed)
	}
	if q.MinRange != nil {
		add("s.max_range >= $%d", *q.MinRange)
	}
	if q.MinPrice != nil {
		add("s.price >= $%d", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		add("s.price <= $%d", *q.MaxPrice)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// buildScooterPageQuery renders the windowed fetch. SortColumn is taken
// from the whitelist in the queries layer, never from raw input, so it
// is safe to interpolate.
func buildScooterPageQuery(q queries.ScooterPageQuery) (string, []any) {
	where, args := buildScooterWhere(q)

	dir := "ASC"
	if q.Descending {
		dir = "DESC"
	}

	sql := scooterSelect + where +
		fmt.Sprintf(" ORDER BY s.%s %s, s.id %s LIMIT $%d OFFSET $%d",
			q.SortColumn, dir, dir, len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset)
	return sql, args
}

func buildScooterCountQuery(q queries.ScooterPageQuery) (string, []any) {
	where, args := buildScooterWhere(q)
	return "SELECT count(*) FROM scooters s" + where, args
}

// FindPage runs the count-then-fetch pair. The pair is not transactional;
// a concurrent write may skew the count by a row, which is acceptable for
// catalog browsing.
func (r *ScooterReadStore) FindPage(ctx context.Context, q queries.ScooterPageQuery) ([]*queries.ScooterView, int64, error) {
	countSQL, countArgs := buildScooterCountQuery(q)

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count scooters", err)
	}

	pageSQL, pageArgs := buildScooterPageQuery(q)
	rows, err := r.db.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to fetch scooter page", err)
	}
	defer rows.Close()

	items := make([]*queries.ScooterView, 0, q.Limit)
	for rows.Next() {
		view, err := scanScooterRow(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan scooter row", err)
		}
		items = append(items, view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate scooter rows", err)
	}

	return items, total, nil
}

func (r *ScooterReadStore) FindByID(ctx context.Context, id int64) (*queries.ScooterView, error) {
	row := r.db.QueryRow(ctx, scooterSelect+" WHERE s.id = $1", id)

	view, err := scanScooterRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("scooter not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find scooter by id", err)
	}
	return view, nil
}

func (r *ScooterReadStore) DistinctBrands(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		"SELECT DISTINCT brand FROM scooters WHERE brand <> '' ORDER BY brand ASC")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch brands", err)
	}
	defer rows.Close()

	brands := make([]string, 0)
	for rows.Next() {
		var brand string
		if err := rows.Scan(&brand); err != nil {
			return nil, infra.WrapRepoErr("failed to scan brand", err)
		}
		brands = append(brands, brand)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate brands", err)
	}

	return brands, nil
}

func (r *ScooterReadStore) CategoryIDByName(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, "SELECT id FROM categories WHERE name = $1", name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to look up category by name", err)
	}
	return id, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScooterRow(row rowScanner) (*queries.ScooterView, error) {
	var (
		view         queries.ScooterView
		categoryID   pgtype.Int8
		categoryName pgtype.Text
		safetyID     pgtype.Int8
		helmet       pgtype.Bool
		minAge       pgtype.Int4
		guidelines   pgtype.Text
		discountsRaw []byte
	)

	err := row.Scan(
		&view.ID, &view.Name, &view.Brand, &view.Battery, &view.ChargeTime, &view.Weight,
		&view.Tyres, &view.MotorType, &view.MaxSpeed, &view.MaxRange, &view.MaxLoad,
		&view.LengthCm, &view.WidthCm, &view.HeightCm, &view.Description, &view.Price, &view.Stock,
		&categoryID, &categoryName,
		&safetyID, &helmet, &minAge, &guidelines,
		&discountsRaw,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		view.CategoryID = &categoryID.Int64
		view.Category = &queries.CategoryView{
			ID:   categoryID.Int64,
			Name: categoryName.String,
		}
	}

	if safetyID.Valid {
		view.SafetyInfo = &queries.SafetyInfoView{
			ID:                safetyID.Int64,
			HelmetRequired:    helmet.Bool,
			MinAgeRequired:    minAge.Int32,
			GeneralGuidelines: guidelines.String,
		}
	}

	view.Discounts = []queries.DiscountView{}
	if len(discountsRaw) > 0 {
		if err := json.Unmarshal(discountsRaw, &view.Discounts); err != nil {
			return nil, fmt.Errorf("failed to decode discounts json: %w", err)
		}
	}

	return &view, nil
}
