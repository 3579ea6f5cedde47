package api

import (
	"net/http"
	"strconv"

	reqdto "book-courier/internal/handler/dto/request"
	resdto "book-courier/internal/handler/dto/response"
	"book-courier/internal/handler/httperr"
	"book-courier/internal/handler/middleware"
	"book-courier/internal/usecase/commands"
	"book-courier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	cmds commands.BookCommands
	q    queries.BookQueries
}

func NewBookHandler(cmds commands.BookCommands, q queries.BookQueries) *BookHandler {
	return &BookHandler{cmds: cmds, q: q}
}

// @Summary List books
// @Description List books, newest first, with optional filters
// @Tags books
// @Produce json
// @Param email query string false "Seller email"
// @Param status query string false "draft or published"
// @Param category query string false "Category"
// @Param search query string false "Case-insensitive title match"
// @Param limit query int false "Max items (default 100)"
// @Success 200 {array} resdto.BookResponse
// @Failure 500 {object} httperr.Response
// @Router /books [get]
func (h *BookHandler) List(c *gin.Context) {
	filter := queries.BookFilter{
		SellerEmail: c.Query("email"),
		Status:      c.Query("status"),
		Category:    c.Query("category"),
		Search:      c.Query("search"),
	}
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			filter.Limit = iv
		}
	}
	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err, "Failed to list books")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookList(views))
}

// @Summary Get book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} resdto.BookResponse
// @Failure 404 {object} httperr.Response
// @Router /books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, "Failed to load book")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookView(view))
}

// @Summary Create book
// @Description Add a book to the caller's inventory
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookRequest true "Book"
// @Success 201 {object} resdto.CreateBookResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	email, _ := middleware.GetUserEmail(c)
	var req reqdto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToDomain(), email)
	if err != nil {
		httperr.Abort(c, err, "Failed to create book")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateBookResponse{InsertedID: result.ID})
}

// @Summary Update book
// @Tags books
// @Accept json
// @Param id path string true "Book ID"
// @Param request body reqdto.UpdateBookRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /books/{id} [patch]
func (h *BookHandler) Update(c *gin.Context) {
	var req reqdto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), c.Param("id"), req.ToDomain()); err != nil {
		httperr.Abort(c, err, "Failed to update book")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Seller inventory
// @Tags books
// @Produce json
// @Param email path string true "Seller email"
// @Success 200 {array} resdto.BookResponse
// @Router /dashboard/my-inventory/{email} [get]
func (h *BookHandler) ListBySeller(c *gin.Context) {
	views, err := h.q.ListBySeller(c.Request.Context(), c.Param("email"))
	if err != nil {
		httperr.Abort(c, err, "Failed to list inventory")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookList(views))
}
