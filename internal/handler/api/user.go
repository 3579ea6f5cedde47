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

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Register user
// @Description Insert a first-time user as customer or refresh the login of a known one
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterUserRequest true "User"
// @Success 200 {object} resdto.RegisterUserResponse
// @Failure 400 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req reqdto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Failed to save user")
		return
	}
	c.JSON(http.StatusOK, resdto.RegisterUserResponse{Created: result.Created})
}

// @Summary Caller role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RoleResponse
// @Failure 401 {object} httperr.Response
// @Router /users/role [get]
func (h *UserHandler) GetRole(c *gin.Context) {
	email, _ := middleware.GetUserEmail(c)
	role, err := h.q.GetRole(c.Request.Context(), email)
	if err != nil {
		httperr.Abort(c, err, "Failed to load role")
		return
	}
	c.JSON(http.StatusOK, resdto.RoleResponse{Role: role.String()})
}

// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserResponse
// @Failure 403 {object} httperr.Response
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserList(views))
}

// @Summary Update profile
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param request body reqdto.UpdateProfileRequest true "Profile fields"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{email} [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateProfile(c.Request.Context(), c.Param("email"), req.ToDomain()); err != nil {
		httperr.Abort(c, err, "Failed to update profile")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update role
// @Description Set any valid role and clear a pending promotion request
// @Tags users
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.UpdateRoleRequest true "Role change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /update-role [patch]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req reqdto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateRole(c.Request.Context(), req.Email, req.Role); err != nil {
		httperr.Abort(c, err, "Failed to update role")
		return
	}
	c.Status(http.StatusNoContent)
}
