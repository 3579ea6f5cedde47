//go:build unit

package user_test

import (
	"strings"
	"testing"

	"book-courier/internal/domain/user"
	"book-courier/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewUserBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "reader@example.com", actual.Email().Value())
		assert.Equal(t, "Test Reader", actual.Name())
		assert.Equal(t, user.RoleCustomer, actual.Role())
		assert.Equal(t, b.Now, actual.LastLoggedIn())
		assert.Equal(t, b.Now, actual.CreatedAt())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "大文字と空白は正規化OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  Valid@Example.COM ") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("名前検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "名前なしOK",
				mutate: func(b *builder.UserBuilder) { b.WithName("") },
			},
			{
				name:   "上限ちょうどOK",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", user.MaxNameLength)) },
			},
			{
				name:   "上限超過NG",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", user.MaxNameLength+1)) },
				errIs:  user.ErrNameTooLong,
			},
		})
	})

	t.Run("ロールは常にcustomerで開始", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().AsAdmin().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, user.RoleCustomer, actual.Role())
	})
}

func TestRole(t *testing.T) {
	for _, in := range []string{"customer", "Seller", " ADMIN "} {
		_, err := user.NewRole(in)
		assert.NoError(t, err, in)
	}
	for _, in := range []string{"", "viewer", "super admin"} {
		_, err := user.NewRole(in)
		assert.ErrorIs(t, err, user.ErrInvalidRole, in)
	}

	assert.Equal(t, user.RoleCustomer, user.ParseRole(""))
	assert.Equal(t, user.RoleCustomer, user.ParseRole("unknown"))
	assert.Equal(t, user.RoleSeller, user.ParseRole("SELLER"))
}

func TestProfile(t *testing.T) {
	name := strings.Repeat("a", user.MaxNameLength+1)
	assert.ErrorIs(t, user.Profile{Name: &name}.Validate(), user.ErrNameTooLong)
	assert.True(t, user.Profile{}.IsEmpty())

	image := "x.png"
	p := user.Profile{Image: &image}
	assert.NoError(t, p.Validate())
	assert.False(t, p.IsEmpty())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
