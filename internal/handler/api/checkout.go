package api

import (
	"net/http"

	reqdto "book-courier/internal/handler/dto/request"
	resdto "book-courier/internal/handler/dto/response"
	"book-courier/internal/handler/httperr"
	"book-courier/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Create checkout session
// @Description Request a hosted payment page for one book
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCheckoutSessionRequest true "Purchase"
// @Success 200 {object} resdto.CheckoutSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /create-checkout-session [post]
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req reqdto.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	url, err := h.cmds.CreateSession(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Failed to create checkout session")
		return
	}
	c.JSON(http.StatusOK, resdto.CheckoutSessionResponse{URL: url})
}

// @Summary Confirm payment
// @Description Turn a paid checkout session into an order. Safe to retry.
// @Tags checkout
// @Produce json
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} resdto.PaymentSuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /dashboard/payment-success [patch]
func (h *CheckoutHandler) ConfirmPayment(c *gin.Context) {
	h.confirm(c, c.Query("session_id"))
}

// @Summary Confirm payment (body)
// @Description Same as the PATCH form with the session id in the body
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmPaymentRequest true "Session"
// @Success 200 {object} resdto.PaymentSuccessResponse
// @Failure 400 {object} httperr.Response
// @Router /dashboard/payment-success [post]
func (h *CheckoutHandler) ConfirmPaymentBody(c *gin.Context) {
	var req reqdto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.confirm(c, req.SessionID)
}

func (h *CheckoutHandler) confirm(c *gin.Context, sessionID string) {
	result, err := h.cmds.ConfirmPayment(c.Request.Context(), sessionID)
	if err != nil {
		httperr.Abort(c, err, "Error processing order")
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmPaymentResult(result))
}
