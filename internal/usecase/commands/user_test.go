//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"book-courier/internal/domain/user"
	"book-courier/internal/pkg/clock"
	"book-courier/internal/pkg/ptr"
	"book-courier/internal/usecase/commands"
	"book-courier/tests/common/memstore"
	commandsmock "book-courier/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	publisher *commandsmock.MockEventPublisher
	clock     *clock.MockClock
	store     *memstore.Store
	uc        commands.UserCommands
}

func (s *UserCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.publisher = commandsmock.NewMockEventPublisher(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	s.store = memstore.New()
	s.uc = commands.NewUserCommands(s.store, s.publisher, s.clock)
}

func (s *UserCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserCommandsSuite(t *testing.T) {
	suite.Run(t, new(UserCommandsTestSuite))
}

func (s *UserCommandsTestSuite) TestRegister() {
	s.Run("first login creates a customer", func() {
		res, err := s.uc.Register(context.Background(), commands.RegisterUserRequest{
			Email: " New@Example.com ",
			Name:  "New Reader",
		})
		s.Require().NoError(err)
		s.True(res.Created)

		u, ok := s.store.User("new@example.com")
		s.Require().True(ok)
		s.Equal(user.RoleCustomer, u.Role)
		s.Equal("New Reader", u.Name)
	})

	s.Run("repeat login keeps the role", func() {
		s.store.PutUser(memstore.User{Email: "seller@example.com", Name: "Old", Role: user.RoleSeller})
		s.clock.Add(time.Hour)

		res, err := s.uc.Register(context.Background(), commands.RegisterUserRequest{Email: "seller@example.com"})
		s.Require().NoError(err)
		s.False(res.Created)

		u, _ := s.store.User("seller@example.com")
		s.Equal(user.RoleSeller, u.Role)
		s.Equal("Old", u.Name)
		s.Equal(s.clock.Now(), u.LastLoggedIn)
	})

	s.Run("invalid input", func() {
		_, err := s.uc.Register(context.Background(), commands.RegisterUserRequest{Email: "bad"})
		s.ErrorIs(err, commands.ErrInvalidUser)

		_, err = s.uc.Register(context.Background(), commands.RegisterUserRequest{
			Email: "long@example.com",
			Name:  strings.Repeat("a", user.MaxNameLength+1),
		})
		s.ErrorIs(err, commands.ErrInvalidUser)
	})
}

func (s *UserCommandsTestSuite) TestUpdateProfile() {
	s.store.PutUser(memstore.User{Email: "reader@example.com", Name: "Reader", Image: "a.png"})

	s.Run("partial update", func() {
		err := s.uc.UpdateProfile(context.Background(), "reader@example.com", user.Profile{Image: ptr.Of("b.png")})
		s.Require().NoError(err)
		u, _ := s.store.User("reader@example.com")
		s.Equal("Reader", u.Name)
		s.Equal("b.png", u.Image)
	})

	s.Run("empty patch", func() {
		err := s.uc.UpdateProfile(context.Background(), "reader@example.com", user.Profile{})
		s.ErrorIs(err, commands.ErrInvalidUser)
	})

	s.Run("unknown user", func() {
		err := s.uc.UpdateProfile(context.Background(), "ghost@example.com", user.Profile{Name: ptr.Of("x")})
		s.ErrorIs(err, commands.ErrUserNotFound)
	})
}

func (s *UserCommandsTestSuite) TestUpdateRole() {
	s.Run("promotion clears a pending request and publishes", func() {
		s.store.PutUser(memstore.User{Email: "reader@example.com", Role: user.RoleCustomer})
		s.store.PutSellerRequest("reader@example.com", s.clock.Now())
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		err := s.uc.UpdateRole(context.Background(), "reader@example.com", "Seller")
		s.Require().NoError(err)

		u, _ := s.store.User("reader@example.com")
		s.Equal(user.RoleSeller, u.Role)
		s.False(s.store.HasSellerRequest("reader@example.com"))
	})

	s.Run("demotion publishes nothing", func() {
		s.store.PutUser(memstore.User{Email: "admin@example.com", Role: user.RoleAdmin})

		err := s.uc.UpdateRole(context.Background(), "admin@example.com", "customer")
		s.Require().NoError(err)
		u, _ := s.store.User("admin@example.com")
		s.Equal(user.RoleCustomer, u.Role)
	})

	s.Run("unknown role", func() {
		err := s.uc.UpdateRole(context.Background(), "reader@example.com", "superuser")
		s.ErrorIs(err, commands.ErrInvalidRole)
	})

	s.Run("unknown user", func() {
		err := s.uc.UpdateRole(context.Background(), "ghost@example.com", "seller")
		s.ErrorIs(err, commands.ErrUserNotFound)
	})
}
