package queries

import (
	"context"
	"strconv"
	"strings"
	"time"

	"wescoot-api/internal/infra"
	"wescoot-api/internal/pkg/errs"
)

const (
	// DefaultPageSize matches the storefront product grid.
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// CategoryView is the joined category of a catalog item.
type CategoryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SafetyInfoView struct {
	ID                int64  `json:"id"`
	HelmetRequired    bool   `json:"helmet_required"`
	MinAgeRequired    int32  `json:"min_age_required"`
	GeneralGuidelines string `json:"general_guidelines"`
}

type DiscountView struct {
	ID         int64     `json:"id"`
	ScooterID  int64     `json:"scooter_id"`
	Percentage float64   `json:"discount_percentage"`
	ValidFrom  time.Time `json:"valid_from"`
	ValidUntil time.Time `json:"valid_until"`
}

// ScooterView is the read-optimized catalog item with its joined
// sub-entities. Discounts are returned as stored; validity windows are
// not evaluated here.
type ScooterView struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Battery     string          `json:"battery"`
	ChargeTime  float64         `json:"charge_time"`
	Weight      float64         `json:"weight"`
	Tyres       string          `json:"tyres"`
	MotorType   string          `json:"motor_type"`
	MaxSpeed    float64         `json:"max_speed"`
	MaxRange    float64         `json:"max_range"`
	MaxLoad     float64         `json:"max_load"`
	LengthCm    int32           `json:"length_cm"`
	WidthCm     int32           `json:"width_cm"`
	HeightCm    int32           `json:"height_cm"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Stock       int32           `json:"stock"`
	CategoryID  *int64          `json:"category_id,omitempty"`
	Category    *CategoryView   `json:"category"`
	SafetyInfo  *SafetyInfoView `json:"safetyInfo"`
	Discounts   []DiscountView  `json:"discount"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ScooterListParams carries the raw, untrusted request parameters.
// Nil pointer means the filter was not supplied (or was malformed and
// got dropped at the boundary).
type ScooterListParams struct {
	Page   int
	Limit  int
	SortBy string
	Order  string

	Brand    *string
	Category *string
	Motor    *string
	// MaxSpeed/MaxRange keep their request-side names but are applied as
	// lower bounds (>=). Historical quirk of the public API; do not invert.
	MaxSpeed *float64
	MaxRange *float64
	Price    *string // "<min>-<max>"
}

type ScooterPage struct {
	TotalItems  int64          `json:"totalItems"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Limit       int            `json:"limit"`
	Scooters    []*ScooterView `json:"scooters"`
}

// ScooterPageQuery is the normalized, trusted form handed to the read
// store. SortColumn is always one of the whitelisted column names.
type ScooterPageQuery struct {
	Brand      *string
	CategoryID *int64
	Motor      *string
	MinSpeed   *float64
	MinRange   *float64
	MinPrice   *float64
	MaxPrice   *float64

	SortColumn string
	Descending bool
	Limit      int
	Offset     int
}

type ScooterReadStore interface {
	FindPage(ctx context.Context, q ScooterPageQuery) ([]*ScooterView, int64, error)
	FindByID(ctx context.Context, id int64) (*ScooterView, error)
	DistinctBrands(ctx context.Context) ([]string, error)
	CategoryIDByName(ctx context.Context, name string) (int64, error)
}

type ScooterQueries interface {
	List(ctx context.Context, params ScooterListParams) (*ScooterPage, error)
	GetByID(ctx context.Context, id int64) (*ScooterView, error)
	Brands(ctx context.Context) ([]string, error)
}

type scooterQueriesImpl struct {
	repo ScooterReadStore
}

func NewScooterQueries(repo ScooterReadStore) ScooterQueries {
	return &scooterQueriesImpl{repo: repo}
}

var sortColumns = map[string]string{
	"name":      "name",
	"price":     "price",
	"brand":     "brand",
	"createdAt": "created_at",
}

// ResolveSortColumn maps a request sort key to a column name. Unknown
// keys fall back to created_at rather than erroring.
func ResolveSortColumn(sortBy string) string {
	if col, ok := sortColumns[sortBy]; ok {
		return col
	}
	return "created_at"
}

func ValidatePageSize(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

// ParsePriceRange parses "<min>-<max>". Malformed input reports ok=false
// and the caller drops the filter entirely.
func ParsePriceRange(s string) (minPrice, maxPrice float64, ok bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	minPrice, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	maxPrice, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return minPrice, maxPrice, true
}

func (q *scooterQueriesImpl) List(ctx context.Context, params ScooterListParams) (*ScooterPage, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := ValidatePageSize(params.Limit)

	pq := ScooterPageQuery{
		Brand:      params.Brand,
		Motor:      params.Motor,
		MinSpeed:   params.MaxSpeed,
		MinRange:   params.MaxRange,
		SortColumn: ResolveSortColumn(params.SortBy),
		Descending: !strings.EqualFold(params.Order, "ASC"),
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}

	if params.Price != nil {
		if minPrice, maxPrice, ok := ParsePriceRange(*params.Price); ok {
			pq.MinPrice = &minPrice
			pq.MaxPrice = &maxPrice
		}
	}

	if params.Category != nil && *params.Category != "" {
		id, err := q.repo.CategoryIDByName(ctx, *params.Category)
		switch {
		case err == nil:
			pq.CategoryID = &id
		case infra.IsKind(err, infra.KindNotFound):
			// Unknown category name: the filter is silently dropped.
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	items, total, err := q.repo.FindPage(ctx, pq)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &ScooterPage{
		TotalItems:  total,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		CurrentPage: page,
		Limit:       limit,
		Scooters:    items,
	}, nil
}

func (q *scooterQueriesImpl) GetByID(ctx context.Context, id int64) (*ScooterView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrScooterNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *scooterQueriesImpl) Brands(ctx context.Context) ([]string, error) {
	brands, err := q.repo.DistinctBrands(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return brands, nil
}
