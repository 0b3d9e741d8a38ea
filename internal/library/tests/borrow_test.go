package tests

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ninaveva/lendhub/internal/domain/models"
	"github.com/ninaveva/lendhub/internal/library"
	"github.com/ninaveva/lendhub/internal/library/mocks"
	storerrors "github.com/ninaveva/lendhub/internal/storage/errors"
)

func TestBorrow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	clk := &fakeClock{now: base}
	svc := library.New(mockStorage, nil, clk)

	t.Run("invalid patron id", func(t *testing.T) {
		for _, id := range []string{"", "12345", "1234567", "12a456"} {
			_, err := svc.Borrow(id, 1)
			assert.ErrorIs(t, err, library.ErrInvalidPatronID)
		}
	})

	t.Run("book not found", func(t *testing.T) {
		mockStorage.EXPECT().GetBook(int64(42)).Return(models.Book{}, storerrors.ErrBookNotFound)

		_, err := svc.Borrow("123456", 42)

		assert.ErrorIs(t, err, storerrors.ErrBookNotFound)
	})

	t.Run("no copies available", func(t *testing.T) {
		mockStorage.EXPECT().GetBook(int64(1)).Return(models.Book{ID: 1, Title: "Dune", AvailableCopies: 0}, nil)

		_, err := svc.Borrow("123456", 1)

		assert.ErrorIs(t, err, library.ErrBookNotAvailable)
	})

	t.Run("borrow limit exceeded", func(t *testing.T) {
		mockStorage.EXPECT().GetBook(int64(1)).Return(models.Book{ID: 1, Title: "Dune", AvailableCopies: 2}, nil)
		mockStorage.EXPECT().ActiveBorrowCount("123456").Return(6, nil)

		_, err := svc.Borrow("123456", 1)

		assert.ErrorIs(t, err, library.ErrBorrowLimitReached)
	})

	t.Run("success at the limit boundary", func(t *testing.T) {
		// Exactly five active loans still passes the "> 5" check.
		mockStorage.EXPECT().GetBook(int64(1)).Return(models.Book{ID: 1, Title: "Dune", AvailableCopies: 2}, nil)
		mockStorage.EXPECT().ActiveBorrowCount("123456").Return(5, nil)
		var saved models.BorrowRecord
		mockStorage.EXPECT().SaveBorrowRecord(gomock.Any()).DoAndReturn(func(rec models.BorrowRecord) error {
			saved = rec
			return nil
		})
		mockStorage.EXPECT().AdjustAvailable(int64(1), -1).Return(nil)

		msg, err := svc.Borrow("123456", 1)

		assert.NoError(t, err)
		assert.Contains(t, msg, "Dune")
		assert.Contains(t, msg, "2024-03-15")
		assert.Equal(t, base, saved.BorrowDate)
		assert.Equal(t, base.Add(day(14)), saved.DueDate)
		assert.Nil(t, saved.ReturnDate)
	})

	t.Run("availability update failure after insert", func(t *testing.T) {
		mockStorage.EXPECT().GetBook(int64(1)).Return(models.Book{ID: 1, Title: "Dune", AvailableCopies: 2}, nil)
		mockStorage.EXPECT().ActiveBorrowCount("123456").Return(0, nil)
		mockStorage.EXPECT().SaveBorrowRecord(gomock.Any()).Return(nil)
		mockStorage.EXPECT().AdjustAvailable(int64(1), -1).Return(errors.New("db error"))

		_, err := svc.Borrow("123456", 1)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "availability")
	})
}
