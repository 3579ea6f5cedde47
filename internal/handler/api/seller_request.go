package api

import (
	"net/http"

	resdto "book-courier/internal/handler/dto/response"
	"book-courier/internal/handler/httperr"
	"book-courier/internal/handler/middleware"
	"book-courier/internal/usecase/commands"
	"book-courier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SellerRequestHandler struct {
	cmds commands.SellerRequestCommands
	q    queries.SellerRequestQueries
}

func NewSellerRequestHandler(cmds commands.SellerRequestCommands, q queries.SellerRequestQueries) *SellerRequestHandler {
	return &SellerRequestHandler{cmds: cmds, q: q}
}

// @Summary Request seller privileges
// @Tags seller-requests
// @Security BearerAuth
// @Success 201 "Created"
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /become-seller [post]
func (h *SellerRequestHandler) Request(c *gin.Context) {
	email, _ := middleware.GetUserEmail(c)
	if err := h.cmds.Request(c.Request.Context(), email); err != nil {
		httperr.Abort(c, err, "Failed to submit seller request")
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary Promotion status
// @Tags seller-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SellerRequestStatusResponse
// @Router /seller-request/status [get]
func (h *SellerRequestHandler) Status(c *gin.Context) {
	email, _ := middleware.GetUserEmail(c)
	pending, err := h.q.IsPending(c.Request.Context(), email)
	if err != nil {
		httperr.Abort(c, err, "Failed to load seller request")
		return
	}
	c.JSON(http.StatusOK, resdto.SellerRequestStatusResponse{Pending: pending})
}

// @Summary List seller requests
// @Description Every request with the requester's current role and derived status
// @Tags seller-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SellerRequestResponse
// @Failure 403 {object} httperr.Response
// @Router /seller-requests [get]
func (h *SellerRequestHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to list seller requests")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSellerRequestList(views))
}

// @Summary Approve seller request
// @Tags seller-requests
// @Security BearerAuth
// @Param email path string true "Requester email"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /seller-requests/{email}/approve [patch]
func (h *SellerRequestHandler) Approve(c *gin.Context) {
	if err := h.cmds.Approve(c.Request.Context(), c.Param("email")); err != nil {
		httperr.Abort(c, err, "Failed to approve seller request")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reject seller request
// @Tags seller-requests
// @Security BearerAuth
// @Param email path string true "Requester email"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /seller-requests/{email} [delete]
func (h *SellerRequestHandler) Reject(c *gin.Context) {
	if err := h.cmds.Reject(c.Request.Context(), c.Param("email")); err != nil {
		httperr.Abort(c, err, "Failed to reject seller request")
		return
	}
	c.Status(http.StatusNoContent)
}
