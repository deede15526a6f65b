package response

import (
	"time"

	"wescoot-api/internal/usecase/queries"
)

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SafetyInfoResponse struct {
	ID                int64  `json:"id"`
	HelmetRequired    bool   `json:"helmet_required"`
	MinAgeRequired    int32  `json:"min_age_required"`
	GeneralGuidelines string `json:"general_guidelines"`
}

type DiscountResponse struct {
	ID         int64     `json:"id"`
	ScooterID  int64     `json:"scooter_id"`
	Percentage float64   `json:"discount_percentage"`
	ValidFrom  time.Time `json:"valid_from"`
	ValidUntil time.Time `json:"valid_until"`
}

type ScooterResponse struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Brand       string              `json:"brand"`
	Battery     string              `json:"battery"`
	ChargeTime  float64             `json:"charge_time"`
	Weight      float64             `json:"weight"`
	Tyres       string              `json:"tyres"`
	MotorType   string              `json:"motor_type"`
	MaxSpeed    float64             `json:"max_speed"`
	MaxRange    float64             `json:"max_range"`
	MaxLoad     float64             `json:"max_load"`
	LengthCm    int32               `json:"length_cm"`
	WidthCm     int32               `json:"width_cm"`
	HeightCm    int32               `json:"height_cm"`
	Description string              `json:"description"`
	Price       float64             `json:"price"`
	Stock       int32               `json:"stock"`
	CategoryID  *int64              `json:"category_id,omitempty"`
	Category    *CategoryResponse   `json:"category"`
	SafetyInfo  *SafetyInfoResponse `json:"safetyInfo"`
	Discounts   []DiscountResponse  `json:"discount"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type ScooterPageResponse struct {
	TotalItems  int64              `json:"totalItems"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
	Limit       int                `json:"limit"`
	Scooters    []*ScooterResponse `json:"scooters"`
}

func FromScooterView(v *queries.ScooterView) *ScooterResponse {
	resp := &ScooterResponse{
		ID:          v.ID,
		Name:        v.Name,
		Brand:       v.Brand,
		Battery:     v.Battery,
		ChargeTime:  v.ChargeTime,
		Weight:      v.Weight,
		Tyres:       v.Tyres,
		MotorType:   v.MotorType,
		MaxSpeed:    v.MaxSpeed,
		MaxRange:    v.MaxRange,
		MaxLoad:     v.MaxLoad,
		LengthCm:    v.LengthCm,
		WidthCm:     v.WidthCm,
		HeightCm:    v.HeightCm,
		Description: v.Description,
		Price:       v.Price,
		Stock:       v.Stock,
		CategoryID:  v.CategoryID,
		Discounts:   make([]DiscountResponse, 0, len(v.Discounts)),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}

	if v.Category != nil {
		resp.Category = &CategoryResponse{ID: v.Category.ID, Name: v.Category.Name}
	}
	if v.SafetyInfo != nil {
		resp.SafetyInfo = &SafetyInfoResponse{
			ID:                v.SafetyInfo.ID,
			HelmetRequired:    v.SafetyInfo.HelmetRequired,
			MinAgeRequired:    v.SafetyInfo.MinAgeRequired,
			GeneralGuidelines: v.SafetyInfo.GeneralGuidelines,
		}
	}
	for _, d := range v.Discounts {
		resp.Discounts = append(resp.Discounts, DiscountResponse{
			ID:         d.ID,
			ScooterID:  d.ScooterID,
			Percentage: d.Percentage,
			ValidFrom:  d.ValidFrom,
			ValidUntil: d.ValidUntil,
		})
	}

	return resp
}

func FromScooterPage(page *queries.ScooterPage) *ScooterPageResponse {
	scooters := make([]*ScooterResponse, 0, len(page.Scooters))
	for _, v := range page.Scooters {
		scooters = append(scooters, FromScooterView(v))
	}
	return &ScooterPageResponse{
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		Limit:       page.Limit,
		Scooters:    scooters,
	}
}
