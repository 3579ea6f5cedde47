//go:build unit

package money_test

import (
	"testing"

	"book-courier/internal/pkg/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{in: "0", want: 0},
		{in: "12", want: 1200},
		{in: "12.34", want: 1234},
		{in: "0.005", want: 1},
		{in: "19.994", want: 1999},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := money.ToMinorUnits(decimal.RequireFromString(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := money.ToMinorUnits(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, money.ErrNegativeAmount)
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	assert.True(t, decimal.RequireFromString("35.50").Equal(money.FromMinorUnits(3550)))
	assert.Equal(t, 35.5, money.ToFloat(money.FromMinorUnits(3550)))
	assert.True(t, decimal.RequireFromString("0.1").Equal(money.FromFloat(0.1)))
	assert.True(t, decimal.RequireFromString("19.99").Equal(money.FromFloat(19.989999)))
}
