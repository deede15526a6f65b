package api

import (
	"errors"
	"net/http"

	reqdto "wescoot-api/internal/handler/dto/request"
	resdto "wescoot-api/internal/handler/dto/response"
	"wescoot-api/internal/handler/httperr"
	"wescoot-api/internal/pkg/errs"
	"wescoot-api/internal/usecase/commands"
	"wescoot-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Create payment intent
// @Description Create a mock payment intent for the given amount
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePaymentIntentRequest true "Create payment intent request"
// @Success 201 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} map[string]string
// @Router /payments/create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req reqdto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Valid amount is required", nil)
		return
	}

	intent, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to create payment intent", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromIntent(intent, true, ""))
}

// @Summary Confirm payment
// @Description Confirm a payment intent with a card; deterministic accept/decline
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmPaymentRequest true "Confirm payment request"
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments/confirm-payment [post]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Payment intent ID and payment method are required", nil)
		return
	}

	result, err := h.cmds.Confirm(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrIntentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Payment intent not found", nil)
		case errors.Is(err, errs.ErrIntentFinalized):
			httperr.AbortWithError(c, http.StatusConflict, err, "Payment intent already finalized", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to confirm payment", nil)
		}
		return
	}
	// A decline is a successful confirmation call with success=false.
	c.JSON(http.StatusOK, resdto.FromIntent(result.Intent, result.Approved, result.Message))
}

// @Summary Get payment intent
// @Description Retrieve a payment intent by id
// @Tags payments
// @Produce json
// @Param id path string true "Payment intent ID"
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 404 {object} map[string]string
// @Router /payments/payment-intent/{id} [get]
func (h *PaymentHandler) GetIntent(c *gin.Context) {
	intent, err := h.q.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrIntentNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Payment intent not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to retrieve payment intent", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIntent(intent, true, ""))
}
