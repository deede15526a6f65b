package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "wescoot-api/internal/handler/dto/response"
	"wescoot-api/internal/handler/httperr"
	"wescoot-api/internal/pkg/errs"
	"wescoot-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScooterHandler struct {
	q queries.ScooterQueries
}

func NewScooterHandler(q queries.ScooterQueries) *ScooterHandler {
	return &ScooterHandler{q: q}
}

// @Summary List scooters
// @Description List catalog scooters with filtering, sorting and pagination
// @Tags scooters
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 12, max 100)"
// @Param sortBy query string false "Sort key: name, price, brand, createdAt"
// @Param order query string false "ASC or DESC (default DESC)"
// @Param brand query string false "Exact brand match"
// @Param category query string false "Category name"
// @Param motor query string false "Exact motor type match"
// @Param maxSpeed query number false "Minimum top speed threshold"
// @Param maxRange query number false "Minimum range threshold"
// @Param price query string false "Inclusive price range, e.g. 50-150"
// @Success 200 {object} resdto.ScooterPageResponse
// @Failure 500 {object} map[string]string
// @Router /scooters [get]
func (h *ScooterHandler) List(c *gin.Context) {
	params := parseListParams(c)

	page, err := h.q.List(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list scooters", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScooterPage(page))
}

// @Summary Get scooter
// @Description Get a scooter by id with category, safety info and discounts
// @Tags scooters
// @Produce json
// @Param id path int true "Scooter ID"
// @Success 200 {object} resdto.ScooterResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /scooters/{id} [get]
func (h *ScooterHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrScooterNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Scooter not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get scooter", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScooterView(view))
}

// @Summary List scooter brands
// @Description Distinct brand values for filter facets, sorted ascending
// @Tags scooters
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} map[string]string
// @Router /scooters/brands [get]
func (h *ScooterHandler) Brands(c *gin.Context) {
	brands, err := h.q.Brands(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list brands", nil)
		return
	}
	if brands == nil {
		brands = []string{}
	}
	c.JSON(http.StatusOK, brands)
}

// Malformed numeric values are treated as absent filters, never as
// errors; sortBy/order fall back to defaults in the queries layer.
func parseListParams(c *gin.Context) queries.ScooterListParams {
	params := queries.ScooterListParams{
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
	}

	if v := c.Query("page"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			params.Page = iv
		}
	}
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			params.Limit = iv
		}
	}
	if v := c.Query("brand"); v != "" {
		params.Brand = &v
	}
	if v := c.Query("category"); v != "" {
		params.Category = &v
	}
	if v := c.Query("motor"); v != "" {
		params.Motor = &v
	}
	if v := c.Query("maxSpeed"); v != "" {
		if fv, err := strconv.ParseFloat(v, 64); err == nil {
			params.MaxSpeed = &fv
		}
	}
	if v := c.Query("maxRange"); v != "" {
		if fv, err := strconv.ParseFloat(v, 64); err == nil {
			params.MaxRange = &fv
		}
	}
	if v := c.Query("price"); v != "" {
		params.Price = &v
	}

	return params
}
