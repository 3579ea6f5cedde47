//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"book-courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var (
	errOutOfStock   = errs.Classified("book out of stock", errs.ErrValidation)
	errUnpaid       = errs.Classified("payment not completed", errs.ErrValidation)
	errBookMissing  = errs.Classified("book not found", errs.ErrNotFound)
	errOrderMissing = errs.Classified("order not found", errs.ErrNotFound)
)

func TestClassified(t *testing.T) {
	t.Run("同じクラスの別エラーとは一致しない", func(t *testing.T) {
		assert.False(t, errs.Is(errOutOfStock, errUnpaid))
		assert.False(t, errs.Is(errUnpaid, errOutOfStock))
		assert.False(t, errs.Is(errBookMissing, errOrderMissing))
	})

	t.Run("ラップ後も自身とクラスに一致する", func(t *testing.T) {
		err := errs.Wrap(errOutOfStock, "decrement stock")

		assert.True(t, errs.Is(err, errOutOfStock))
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.False(t, errs.Is(err, errUnpaid))
		assert.False(t, errs.Is(err, errs.ErrNotFound))
		assert.True(t, errors.Is(err, errOutOfStock))
		assert.True(t, errors.Is(err, errs.ErrValidation))
	})

	t.Run("メッセージはそのまま", func(t *testing.T) {
		assert.Equal(t, "book out of stock", errOutOfStock.Error())
		assert.Equal(t, "decrement stock: book out of stock", errs.Wrap(errOutOfStock, "decrement stock").Error())
	})
}

func TestMark(t *testing.T) {
	base := errs.New("token expired")
	marked := errs.Mark(base, errs.ErrForbidden)

	assert.True(t, errs.Is(marked, errs.ErrForbidden))
	assert.True(t, errs.Is(marked, base))
	assert.Equal(t, errs.ErrForbidden, errs.Mark(nil, errs.ErrForbidden))
}
