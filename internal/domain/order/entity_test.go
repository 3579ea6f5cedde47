//go:build unit

package order_test

import (
	"testing"

	"book-courier/internal/domain/order"
	"book-courier/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("starts pending with one unit", func(t *testing.T) {
		b := builder.NewOrderBuilder().WithCustomer(" Reader@Example.com ")
		o, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.UnitQuantity, o.Quantity())
		assert.Equal(t, "reader@example.com", o.Customer())
		assert.Equal(t, b.Now, o.CreatedAt())
	})

	t.Run("fills display fallbacks", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Title = ""
			b.Category = " "
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Unknown Book", o.Title())
		assert.Equal(t, "N/A", o.Category())
	})

	cases := []struct {
		name   string
		mutate func(*builder.OrderBuilder)
		errIs  error
	}{
		{name: "transaction id required", mutate: func(b *builder.OrderBuilder) { b.TransactionID = "" }, errIs: order.ErrTransactionIDRequired},
		{name: "book id required", mutate: func(b *builder.OrderBuilder) { b.BookID = " " }, errIs: order.ErrBookIDRequired},
		{name: "customer required", mutate: func(b *builder.OrderBuilder) { b.Customer = "" }, errIs: order.ErrCustomerRequired},
		{name: "negative price", mutate: func(b *builder.OrderBuilder) { b.Price = decimal.NewFromInt(-1) }, errIs: order.ErrInvalidPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := builder.NewOrderBuilder().With(tc.mutate).BuildDomain()
			require.Nil(t, o)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestStatus(t *testing.T) {
	for _, in := range []string{"pending", "Processing", " shipped ", "DELIVERED", "cancelled"} {
		_, err := order.NewStatus(in)
		assert.NoError(t, err, in)
	}
	_, err := order.NewStatus("lost")
	assert.ErrorIs(t, err, order.ErrInvalidStatus)
}
