//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for usecase tests.
// Errors carry the same repository kinds the Mongo repositories return.
package memstore

import (
	"context"
	"sync"
	"time"

	"book-courier/internal/domain/book"
	"book-courier/internal/domain/order"
	"book-courier/internal/domain/sellerrequest"
	"book-courier/internal/domain/user"
	"book-courier/internal/infra"
	"book-courier/internal/infra/document"
	"book-courier/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Book struct {
	ID            string
	Title         string
	Image         string
	Category      string
	Price         decimal.Decimal
	Quantity      int
	Status        string
	PaymentStatus string
	Seller        book.Seller
	UpdatedAt     time.Time
}

type Order struct {
	ID            string
	BookID        string
	TransactionID string
	Customer      string
	Status        order.Status
	Price         decimal.Decimal
	Seller        book.Seller
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type User struct {
	Email        string
	Name         string
	Image        string
	Role         user.Role
	LastLoggedIn time.Time
}

type Store struct {
	mu             sync.Mutex
	transactional  bool
	books          map[string]*Book
	orders         map[string]*Order
	users          map[string]*User
	sellerRequests map[string]time.Time

	// BeforeOrderInsert runs ahead of every order insert, outside any unit of work.
	BeforeOrderInsert func(s *Store, o *order.Order)
	// FailRoleUpdate makes UserRepository.UpdateRole fail with this error.
	FailRoleUpdate error

	restores int
}

type Option func(*Store)

// Transactional makes a failed unit of work discard its writes.
func Transactional() Option {
	return func(s *Store) { s.transactional = true }
}

func New(opts ...Option) *Store {
	s := &Store{
		books:          map[string]*Book{},
		orders:         map[string]*Order{},
		users:          map[string]*User{},
		sellerRequests: map[string]time.Time{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	t := &tx{store: s}
	if err := fn(ctx, t); err != nil {
		if s.transactional {
			t.rollback()
		}
		return err
	}
	return nil
}

// Seed helpers

func (s *Store) PutBook(b Book) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == "" {
		b.ID = primitive.NewObjectID().Hex()
	}
	s.books[b.ID] = &b
	return b.ID
}

func (s *Store) PutUser(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.Email = user.NormalizeEmail(u.Email)
	s.users[u.Email] = &u
}

func (s *Store) PutSellerRequest(email string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sellerRequests[user.NormalizeEmail(email)] = at
}

// PutOrder inserts an order directly, as a concurrent writer would.
func (s *Store) PutOrder(o Order) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == "" {
		o.ID = primitive.NewObjectID().Hex()
	}
	s.orders[o.ID] = &o
	return o.ID
}

// Inspection helpers

func (s *Store) Book(id string) (Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return Book{}, false
	}
	return *b, true
}

func (s *Store) User(email string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[user.NormalizeEmail(email)]
	if !ok {
		return User{}, false
	}
	return *u, true
}

func (s *Store) Order(id string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return Order{}, false
	}
	return *o, true
}

func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, *o)
	}
	return out
}

func (s *Store) HasSellerRequest(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sellerRequests[user.NormalizeEmail(email)]
	return ok
}

// Restores counts compensating RestoreStock calls.
func (s *Store) Restores() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restores
}

type tx struct {
	store *Store
	mu    sync.Mutex
	undo  []func()
}

func (t *tx) Books() shared.BookRepository                   { return bookRepo{t} }
func (t *tx) Orders() shared.OrderRepository                 { return orderRepo{t} }
func (t *tx) Users() shared.UserRepository                   { return userRepo{t} }
func (t *tx) SellerRequests() shared.SellerRequestRepository { return sellerRequestRepo{t} }
func (t *tx) Transactional() bool                            { return t.store.transactional }

// record must be called with store.mu held.
func (t *tx) record(undo func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.undo = append(t.undo, undo)
}

func (t *tx) rollback() {
	t.mu.Lock()
	undo := t.undo
	t.undo = nil
	t.mu.Unlock()

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for i := len(undo) - 1; i >= 0; i-- {
		undo[i]()
	}
}

func notFound(msg string) error {
	return infra.WrapRepoErr(infra.KindNotFound, msg, nil)
}

type bookRepo struct{ t *tx }

func (r bookRepo) Create(_ context.Context, b *book.Book) (string, error) {
	s := r.t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	id := primitive.NewObjectID().Hex()
	s.books[id] = &Book{
		ID:        id,
		Title:     b.Title().String(),
		Image:     b.Image(),
		Category:  b.Category(),
		Price:     b.Price().Decimal(),
		Quantity:  b.Quantity().Int(),
		Status:    b.Status().String(),
		Seller:    b.Seller(),
		UpdatedAt: b.UpdatedAt(),
	}
	r.t.record(func() { delete(s.books, id) })
	return id, nil
}

func (r bookRepo) Update(_ context.Context, id string, p book.Patch, now time.Time) error {
	if _, err := document.ParseID(id); err != nil {
		return err
	}
	s := r.t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return notFound("book not found")
	}
	prev := *b
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Image != nil {
		b.Image = *p.Image
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.Quantity != nil {
		b.Quantity = *p.Quantity
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	b.UpdatedAt = now
	r.t.record(func() { *s.books[id] = prev })
	return nil
}

func (r bookRepo) FindByID(_ context.Context, id string) (*shared.BookSnapshot, error) {
	if _, err := document.ParseID(id); err != nil {
		return nil, err
	}
	s := r.t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return nil, notFound("failed to find book")
	}
	return &shared.BookSnapshot{
		ID:       b.ID,
		Title:    b.Title,
		Image:    b.Image,
		Category: b.Category,
		Price:    b.Price,
		Quantity: b.Quantity,
		Seller:   b.Seller,
	}, nil
}

func (r bookRepo) DecrementStock(_ context.Context, id, paymentStatus string, now time.Time) (bool, error) {
	if _, err := document.ParseID(id); err != nil {
		return false, err
	}
	s := r.t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok || b.Quantity < 1 {
		return false, nil
	}
	prev := *b
	b.Quantity--
	b.PaymentStatus = paymentStatus
	b.UpdatedAt = now
	r.t.record(func() {
		s.books[id].Quantity++
		s.books[id].PaymentStatus = prev.PaymentStatus
	})
	return true, nil
}

func (r bookRepo) RestoreStock(_ context.Context, id string, now time.Time) error {
	s := r.t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restores++
	if b, ok := s.books[id]; ok {
		b.Quantity++
		b.UpdatedAt = now
		r.t.record(func() { s.books[id].Quantity-- })
	}
	return nil
}

type orderRepo struct{ t *tx }

func (r orderRepo) Create(_ context.Context, o *order.Order) (string, error) {
	s := r.t.store
	if hook := s.BeforeOrderInsert; hook != nil {
		hook(s, o)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.orders {
		if existing.TransactionID == o.TransactionID() {
			return "", infra.WrapRepoErr(infra.KindDuplicateKey, "failed to insert order", nil)
		}
	}
	id := primitive.NewObjectID().Hex()
	s.orders[id] = &Order{
		ID:            id,
		BookID:        o.BookID(),
		TransactionID: o.TransactionID(),
		Customer:      o.Customer(),
		Status:        o.Status(),
		Price:         o.Price(),
		Seller:        o.Seller(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
	r.t.record(func() { delete(s.orders, id) })
	return id, nil
}

func (r orderRepo) FindByTransactionID(_ context.Context, transactionID string) (*shared.OrderSnapshot, error) {
	s := r.t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.TransactionID == transactionID {
			return &shared.OrderSnapshot{
				ID:            o.ID,
				BookID:        o.BookID,
				TransactionID: o.TransactionID,
				Customer:      o.Customer,
				Status:        o.Status.String(),
			}, nil
		}
	}
	return nil, notFound("failed to find order by transaction id")
}

func (r orderRepo) UpdateStatus(_ context.Context, id string, status order.Status, now time.Time) error {
	if _, err := document.ParseID(id); err != nil {
		return err
	}
	s := r.t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return notFound("order not found")
	}
	prev := *o
	o.Status = status
	o.UpdatedAt = now
	r.t.record(func() { *s.orders[id] = prev })
	return nil
}

func (r orderRepo) Delete(_ context.Context, id string) error {
	if _, err := document.ParseID(id); err != nil {
		return err
	}
	s := r.t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return notFound("order not found")
	}
	delete(s.orders, id)
	r.t.record(func() { s.orders[id] = o })
	return nil
}

type userRepo struct{ t *tx }

func (r userRepo) FindByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	s := r.t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[user.NormalizeEmail(email)]
	if !ok {
		return nil, notFound("failed to find user")
	}
	return &shared.UserSnapshot{Email: u.Email, Name: u.Name, Image: u.Image, Role: u.Role}, nil
}

func (r userRepo) Upsert(_ context.Context, u *user.User) (bool, error) {
	s := r.t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	email := u.Email().Value()
	if existing, ok := s.users[email]; ok {
		prev := *existing
		existing.LastLoggedIn = u.LastLoggedIn()
		if u.Name() != "" {
			existing.Name = u.Name()
		}
		if u.Image() != "" {
			existing.Image = u.Image()
		}
		r.t.record(func() { *s.users[email] = prev })
		return false, nil
	}
	s.users[email] = &User{
		Email:        email,
		Name:         u.Name(),
		Image:        u.Image(),
		Role:         u.Role(),
		LastLoggedIn: u.LastLoggedIn(),
	}
	r.t.record(func() { delete(s.users, email) })
	return true, nil
}

func (r userRepo) UpdateProfile(_ context.Context, email string, p user.Profile, _ time.Time) error {
	s := r.t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	email = user.NormalizeEmail(email)
	u, ok := s.users[email]
	if !ok {
		return notFound("user not found")
	}
	prev := *u
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Image != nil {
		u.Image = *p.Image
	}
	r.t.record(func() { *s.users[email] = prev })
	return nil
}

func (r userRepo) UpdateRole(_ context.Context, email string, role user.Role, _ time.Time) error {
	s := r.t.store
	if s.FailRoleUpdate != nil {
		return s.FailRoleUpdate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	email = user.NormalizeEmail(email)
	u, ok := s.users[email]
	if !ok {
		return notFound("user not found")
	}
	prev := u.Role
	u.Role = role
	r.t.record(func() { s.users[email].Role = prev })
	return nil
}

type sellerRequestRepo struct{ t *tx }

func (r sellerRequestRepo) Create(_ context.Context, req *sellerrequest.SellerRequest) error {
	s := r.t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	email := req.Email().Value()
	if _, ok := s.sellerRequests[email]; ok {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "failed to insert seller request", nil)
	}
	s.sellerRequests[email] = req.CreatedAt()
	r.t.record(func() { delete(s.sellerRequests, email) })
	return nil
}

func (r sellerRequestRepo) DeleteByEmail(_ context.Context, email string) (bool, error) {
	s := r.t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	email = user.NormalizeEmail(email)
	at, ok := s.sellerRequests[email]
	if !ok {
		return false, nil
	}
	delete(s.sellerRequests, email)
	r.t.record(func() { s.sellerRequests[email] = at })
	return true, nil
}
