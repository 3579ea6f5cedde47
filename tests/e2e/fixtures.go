//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"book-courier/internal/domain/user"
	"book-courier/internal/handler/dto/request"
	"book-courier/internal/handler/dto/response"
	"book-courier/internal/infra/db"
	"book-courier/internal/pkg/errs"
	"book-courier/internal/usecase/commands"
	"book-courier/tests/common/authtest"
	"book-courier/tests/common/httptest"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// FakeGateway stands in for the hosted checkout provider.
type FakeGateway struct {
	mu       sync.Mutex
	seq      int
	sessions map[string]commands.CheckoutSession
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{sessions: make(map[string]commands.CheckoutSession)}
}

func (g *FakeGateway) CreateCheckoutSession(_ context.Context, params commands.CheckoutSessionParams) (*commands.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.seq++
	id := fmt.Sprintf("cs_test_e2e_%d", g.seq)
	metadata := make(map[string]string, len(params.Metadata))
	for k, v := range params.Metadata {
		metadata[k] = v
	}
	session := commands.CheckoutSession{
		ID:            id,
		URL:           "https://checkout.example.test/pay/" + id,
		PaymentStatus: "unpaid",
		CustomerEmail: params.CustomerEmail,
		AmountTotal:   params.LineItem.UnitAmount * params.LineItem.Quantity,
		Currency:      "usd",
		Metadata:      metadata,
	}
	g.sessions[id] = session
	return &session, nil
}

func (g *FakeGateway) RetrieveCheckoutSession(_ context.Context, sessionID string) (*commands.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	session, ok := g.sessions[sessionID]
	if !ok {
		return nil, errs.New("no such checkout session: " + sessionID)
	}
	return &session, nil
}

// Pay marks a session as paid the way the provider does after a successful charge.
func (g *FakeGateway) Pay(t *testing.T, sessionID, paymentIntentID string) {
	t.Helper()
	g.mu.Lock()
	defer g.mu.Unlock()

	session, ok := g.sessions[sessionID]
	require.True(t, ok, "unknown checkout session %s", sessionID)
	session.PaymentStatus = commands.PaymentStatusPaid
	session.PaymentIntentID = paymentIntentID
	g.sessions[sessionID] = session
}

func (g *FakeGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions = make(map[string]commands.CheckoutSession)
}

// ------------------------------------------------------------
// テストデータ作成ヘルパー
// ------------------------------------------------------------

// Token signs an identity token for email with the suite's JWT settings.
func (s *SharedSuite) Token(t *testing.T, email string) string {
	t.Helper()
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, email, "")
}

// RegisterUser goes through the public registration endpoint and optionally promotes the account.
func (s *SharedSuite) RegisterUser(t *testing.T, email, name string, role user.Role) string {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/users",
		request.RegisterUserRequest{Email: email, Name: name}, "")
	require.Equal(t, http.StatusOK, w.Code, "ユーザー登録に失敗: %s", w.Body.String())

	if role != user.RoleCustomer {
		s.SetRole(t, email, role)
	}
	return s.Token(t, email)
}

// SetRole writes the role directly, bypassing the admin endpoint.
func (s *SharedSuite) SetRole(t *testing.T, email string, role user.Role) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := s.DB.Collection(db.UsersCollection).UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role.String()}})
	require.NoError(t, err)
	require.Equal(t, int64(1), res.MatchedCount, "user %s not found", email)
}

// CreateBook lists a book as the seller behind token and returns its id.
func (s *SharedSuite) CreateBook(t *testing.T, token string, req request.CreateBookRequest) string {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/books", req, token)
	require.Equal(t, http.StatusCreated, w.Code, "書籍の登録に失敗: %s", w.Body.String())

	var created response.CreateBookResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotEmpty(t, created.InsertedID)
	return created.InsertedID
}

func (s *SharedSuite) GetBook(t *testing.T, id string) response.BookResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/books/"+id, nil, "")
	require.Equal(t, http.StatusOK, w.Code, "書籍の取得に失敗: %s", w.Body.String())

	var book response.BookResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &book))
	return book
}
