//go:build unit

package book_test

import (
	"strings"
	"testing"

	"book-courier/internal/domain/book"
	"book-courier/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookBuilder)
	errIs  error
}

func TestBook(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		b := builder.NewBookBuilder().With(func(b *builder.BookBuilder) {
			b.Title = "  Padded Title "
			b.Status = ""
			b.Price = decimal.RequireFromString("10.005")
		})
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Padded Title", actual.Title().String())
		assert.Equal(t, book.StatusPublished, actual.Status())
		assert.True(t, decimal.RequireFromString("10.01").Equal(actual.Price().Decimal()))
		assert.Equal(t, b.Seller, actual.Seller())
		assert.Equal(t, b.Now, actual.CreatedAt())
	})

	runCases(t, []testCase{
		{name: "title required", mutate: func(b *builder.BookBuilder) { b.Title = " " }, errIs: book.ErrTitleRequired},
		{name: "title at limit", mutate: func(b *builder.BookBuilder) { b.Title = strings.Repeat("t", book.MaxTitleLength) }},
		{name: "title too long", mutate: func(b *builder.BookBuilder) { b.Title = strings.Repeat("t", book.MaxTitleLength+1) }, errIs: book.ErrTitleTooLong},
		{name: "zero price", mutate: func(b *builder.BookBuilder) { b.Price = decimal.Zero }, errIs: book.ErrInvalidPrice},
		{name: "zero quantity", mutate: func(b *builder.BookBuilder) { b.Quantity = 0 }},
		{name: "negative quantity", mutate: func(b *builder.BookBuilder) { b.Quantity = -1 }, errIs: book.ErrInvalidQuantity},
		{name: "draft", mutate: func(b *builder.BookBuilder) { b.Status = "Draft" }},
		{name: "unknown status", mutate: func(b *builder.BookBuilder) { b.Status = "archived" }, errIs: book.ErrInvalidStatus},
		{name: "seller required", mutate: func(b *builder.BookBuilder) { b.Seller.Email = "" }, errIs: book.ErrSellerRequired},
	})
}

func TestPatch(t *testing.T) {
	title := "  New "
	price := decimal.RequireFromString("5.555")
	status := "DRAFT"

	normalized, err := book.Patch{Title: &title, Price: &price, Status: &status}.Normalize()
	require.NoError(t, err)

	want := book.Patch{}
	wantTitle, wantPrice, wantStatus := "New", decimal.RequireFromString("5.56"), "draft"
	want.Title, want.Price, want.Status = &wantTitle, &wantPrice, &wantStatus
	if diff := cmp.Diff(want, normalized, cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("Patch mismatch (-want +got):\n%s", diff)
	}

	negative := -1
	_, err = book.Patch{Quantity: &negative}.Normalize()
	assert.ErrorIs(t, err, book.ErrInvalidQuantity)

	assert.True(t, book.Patch{}.IsEmpty())
	assert.False(t, normalized.IsEmpty())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
