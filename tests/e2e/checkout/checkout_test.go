//go:build e2e

package checkout_test

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"book-courier/internal/domain/user"
	"book-courier/internal/handler/dto/request"
	"book-courier/internal/handler/dto/response"
	"book-courier/tests/common/httptest"
	"book-courier/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	checkoutURL       = "/create-checkout-session"
	paymentSuccessURL = "/dashboard/payment-success"
	myOrdersURL       = "/dashboard/my-orders"
)

type CheckoutSuite struct {
	e2e.SharedSuite
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CheckoutSuite))
}

type fixture struct {
	bookID      string
	buyerToken  string
	buyerEmail  string
	sellerEmail string
}

func (s *CheckoutSuite) setupListing(t *testing.T, quantity int) fixture {
	t.Helper()

	sellerToken := s.RegisterUser(t, "seller@example.com", "Shop Owner", user.RoleSeller)
	bookID := s.CreateBook(t, sellerToken, request.CreateBookRequest{
		Title:    "Concurrency in Go",
		Category: "Programming",
		Author:   "Katherine Cox-Buday",
		Price:    decimal.RequireFromString("12.50"),
		Quantity: quantity,
		Status:   "published",
	})
	buyerToken := s.RegisterUser(t, "reader@example.com", "Avid Reader", user.RoleCustomer)

	return fixture{
		bookID:      bookID,
		buyerToken:  buyerToken,
		buyerEmail:  "reader@example.com",
		sellerEmail: "seller@example.com",
	}
}

// startCheckout returns the provider session id behind the hosted page URL.
func (s *CheckoutSuite) startCheckout(t *testing.T, f fixture) string {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, request.CreateCheckoutSessionRequest{
		BookID:   f.bookID,
		Title:    "Concurrency in Go",
		Price:    decimal.RequireFromString("12.50"),
		Customer: request.CheckoutCustomer{Email: f.buyerEmail},
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.CheckoutSessionResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	require.NotEmpty(t, res.URL)
	return res.URL[strings.LastIndex(res.URL, "/")+1:]
}

func (s *CheckoutSuite) confirm(t *testing.T, sessionID string) (int, response.PaymentSuccessResponse) {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPatch, paymentSuccessURL+"?session_id="+sessionID, nil, "")
	var res response.PaymentSuccessResponse
	if w.Code == http.StatusOK {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	}
	return w.Code, res
}

func (s *CheckoutSuite) TestConfirmPayment() {
	s.Run("正常系: 支払い済みセッションから注文が1件作成される", func() {
		t := s.T()
		f := s.setupListing(t, 2)

		sessionID := s.startCheckout(t, f)
		s.Gateway.Pay(t, sessionID, "pi_e2e_first")

		code, first := s.confirm(t, sessionID)
		require.Equal(t, http.StatusOK, code)
		require.False(t, first.IsExisting)
		require.Equal(t, "pi_e2e_first", first.TransactionID)
		require.NotEmpty(t, first.OrderID)

		require.Equal(t, 1, s.GetBook(t, f.bookID).Quantity)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, myOrdersURL, nil, f.buyerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var orders []response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &orders))

		expected := []response.OrderResponse{{
			ID:            first.OrderID,
			BookID:        f.bookID,
			Title:         "Concurrency in Go",
			Category:      "Programming",
			TransactionID: "pi_e2e_first",
			Customer:      f.buyerEmail,
			Seller:        response.SellerResponse{Name: "Shop Owner", Email: f.sellerEmail},
			Status:        "pending",
			Quantity:      1,
			Price:         12.5,
		}}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.OrderResponse{}, "CreatedAt"),
		}
		if diff := cmp.Diff(expected, orders, opts...); diff != "" {
			t.Errorf("Order list mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("正常系: 同じセッションの再確認は既存の注文を返す", func() {
		t := s.T()
		f := s.setupListing(t, 2)

		sessionID := s.startCheckout(t, f)
		s.Gateway.Pay(t, sessionID, "pi_e2e_retry")

		_, first := s.confirm(t, sessionID)
		code, second := s.confirm(t, sessionID)
		require.Equal(t, http.StatusOK, code)
		require.True(t, second.IsExisting)
		require.Equal(t, "Order already exists", second.Message)
		require.Equal(t, first.OrderID, second.OrderID)

		// 在庫は一度だけ減る
		require.Equal(t, 1, s.GetBook(t, f.bookID).Quantity)
	})

	s.Run("正常系: 同時確認でも注文は1件だけ", func() {
		t := s.T()
		f := s.setupListing(t, 10)

		sessionID := s.startCheckout(t, f)
		s.Gateway.Pay(t, sessionID, "pi_e2e_parallel")

		const workers = 5
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			codes   []int
			results []response.PaymentSuccessResponse
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPatch, paymentSuccessURL+"?session_id="+sessionID, nil, "")
				mu.Lock()
				defer mu.Unlock()
				codes = append(codes, w.Code)
				if w.Code == http.StatusOK {
					var res response.PaymentSuccessResponse
					if err := httptest.DecodeResponseBody(t, w.Body, &res); err == nil {
						results = append(results, res)
					}
				}
			}()
		}
		wg.Wait()

		for _, code := range codes {
			require.Equal(t, http.StatusOK, code)
		}
		require.Len(t, results, workers)

		created := 0
		for _, res := range results {
			require.Equal(t, results[0].OrderID, res.OrderID)
			if !res.IsExisting {
				created++
			}
		}
		require.Equal(t, 1, created)
		require.Equal(t, 9, s.GetBook(t, f.bookID).Quantity)
	})

	s.Run("異常系: 未払いのセッションは400", func() {
		t := s.T()
		f := s.setupListing(t, 1)

		sessionID := s.startCheckout(t, f)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, paymentSuccessURL+"?session_id="+sessionID, nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "payment not completed")
		require.Equal(t, 1, s.GetBook(t, f.bookID).Quantity)
	})

	s.Run("異常系: 在庫切れの書籍は注文できない", func() {
		t := s.T()
		f := s.setupListing(t, 1)

		first := s.startCheckout(t, f)
		s.Gateway.Pay(t, first, "pi_e2e_last_copy")
		code, _ := s.confirm(t, first)
		require.Equal(t, http.StatusOK, code)

		second := s.startCheckout(t, f)
		s.Gateway.Pay(t, second, "pi_e2e_too_late")
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, paymentSuccessURL+"?session_id="+second, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "book out of stock")
		require.Equal(t, 0, s.GetBook(t, f.bookID).Quantity)
	})

	s.Run("異常系: セッションIDなしは400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, paymentSuccessURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "session id is required")
	})
}

func (s *CheckoutSuite) TestConfirmPaymentBody() {
	s.Run("正常系: POSTのボディでも確認できる", func() {
		t := s.T()
		f := s.setupListing(t, 1)

		sessionID := s.startCheckout(t, f)
		s.Gateway.Pay(t, sessionID, "pi_e2e_body")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentSuccessURL,
			request.ConfirmPaymentRequest{SessionID: sessionID}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "application/json; charset=utf-8"})

		var res response.PaymentSuccessResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.True(t, res.Success)
		require.Equal(t, "pi_e2e_body", res.TransactionID)
	})
}
