package api

import (
	"net/http"

	reqdto "book-courier/internal/handler/dto/request"
	resdto "book-courier/internal/handler/dto/response"
	"book-courier/internal/handler/httperr"
	"book-courier/internal/handler/middleware"
	"book-courier/internal/usecase/commands"
	"book-courier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary My orders
// @Description List the caller's orders, newest first. The path email must match the caller.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param email path string false "Customer email"
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /dashboard/my-orders/{email} [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	actor, _ := middleware.GetUserEmail(c)
	customer := c.Param("email")
	if customer == "" {
		customer = actor
	}
	views, err := h.q.ListByCustomer(c.Request.Context(), customer, actor)
	if err != nil {
		httperr.Abort(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderList(views))
}

// @Summary Seller orders
// @Tags orders
// @Produce json
// @Param email path string true "Seller email"
// @Success 200 {array} resdto.OrderResponse
// @Router /dashboard/manage-orders/{email} [get]
func (h *OrderHandler) ListBySeller(c *gin.Context) {
	views, err := h.q.ListBySeller(c.Request.Context(), c.Param("email"))
	if err != nil {
		httperr.Abort(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderList(views))
}

// @Summary Update order status
// @Tags orders
// @Accept json
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		httperr.Abort(c, err, "Failed to update order")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel order
// @Tags orders
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [delete]
func (h *OrderHandler) Cancel(c *gin.Context) {
	if err := h.cmds.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Abort(c, err, "Failed to cancel order")
		return
	}
	c.Status(http.StatusNoContent)
}
