//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"book-courier/internal/handler/api"
	resdto "book-courier/internal/handler/dto/response"
	"book-courier/internal/usecase/commands"
	"book-courier/internal/usecase/queries"
	"book-courier/tests/common/builder"
	"book-courier/tests/common/httptest"
	commandsmock "book-courier/tests/mock/commands"
	queriesmock "book-courier/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	handler := api.NewOrderHandler(s.mockCommands, s.mockQueries)

	auth := fakeAuth("reader@example.com")
	s.router.GET("/dashboard/my-orders", auth, handler.ListMine)
	s.router.GET("/dashboard/my-orders/:email", auth, handler.ListMine)
	s.router.GET("/dashboard/manage-orders/:email", handler.ListBySeller)
	s.router.PATCH("/orders/:id", handler.UpdateStatus)
	s.router.DELETE("/orders/:id", handler.Cancel)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestListMine() {
	view := builder.NewOrderBuilder().BuildView()

	s.Run("success: defaults to the caller", func() {
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), "reader@example.com", "reader@example.com").
			Return([]*queries.OrderView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard/my-orders", nil, "token")
		var body []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(view.ID, body[0].ID)
		s.Equal(35.5, body[0].Price)
		s.Equal("seller@example.com", body[0].Seller.Email)
	})

	s.Run("error: 403 for another customer", func() {
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), "other@example.com", "reader@example.com").
			Return(nil, queries.ErrOrderAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard/my-orders/other@example.com", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another account")
	})

	s.Run("success: empty list is an array", func() {
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard/my-orders", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *OrderHandlerTestSuite) TestListBySeller() {
	s.mockQueries.EXPECT().ListBySeller(gomock.Any(), "seller@example.com").
		Return([]*queries.OrderView{builder.NewOrderBuilder().BuildView()}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard/manage-orders/seller@example.com", nil, "")
	var body []resdto.OrderResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body, 1)
}

func (s *OrderHandlerTestSuite) TestUpdateStatus() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), "o1", "shipped").Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/orders/o1", map[string]string{"status": "shipped"}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 without status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/orders/o1", map[string]string{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: usecase errors", func() {
		cases := []struct {
			err    error
			status int
		}{
			{err: commands.ErrInvalidOrderStatus, status: http.StatusBadRequest},
			{err: commands.ErrOrderNotFound, status: http.StatusNotFound},
		}
		for _, tc := range cases {
			s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/orders/o1", map[string]string{"status": "x"}, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.err.Error())
		}
	})
}

func (s *OrderHandlerTestSuite) TestCancel() {
	s.mockCommands.EXPECT().Cancel(gomock.Any(), "o1").Return(nil).Times(1)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/orders/o1", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)

	s.mockCommands.EXPECT().Cancel(gomock.Any(), "o2").Return(commands.ErrOrderNotFound).Times(1)
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/orders/o2", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "order not found")
}
