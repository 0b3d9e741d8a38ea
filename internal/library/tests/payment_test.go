package tests

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ninaveva/lendhub/internal/domain/models"
	"github.com/ninaveva/lendhub/internal/library"
	"github.com/ninaveva/lendhub/internal/library/mocks"
	"github.com/ninaveva/lendhub/internal/payment"
	paymocks "github.com/ninaveva/lendhub/internal/payment/mocks"
	storerrors "github.com/ninaveva/lendhub/internal/storage/errors"
)

func overdueRecord(bookID int64, days int) []models.BorrowRecord {
	return []models.BorrowRecord{{BookID: bookID, DueDate: base.Add(-day(days))}}
}

func TestPayLateFees(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	mockProc := paymocks.NewMockProcessor(ctrl)
	clk := &fakeClock{now: base}
	svc := library.New(mockStorage, mockProc, clk)

	t.Run("invalid patron id skips everything", func(t *testing.T) {
		_, _, err := svc.PayLateFees("abc123", 1, nil)
		assert.ErrorIs(t, err, library.ErrInvalidPatronID)
	})

	t.Run("zero fee never reaches the gateway", func(t *testing.T) {
		mockStorage.EXPECT().PatronRecords("123456").Return([]models.BorrowRecord{
			{BookID: 1, DueDate: base.Add(day(7))},
		}, nil)

		_, _, err := svc.PayLateFees("123456", 1, nil)

		assert.ErrorIs(t, err, library.ErrNoLateFees)
	})

	t.Run("book lookup failure", func(t *testing.T) {
		mockStorage.EXPECT().PatronRecords("123456").Return(overdueRecord(1, 10), nil)
		mockStorage.EXPECT().GetBook(int64(1)).Return(models.Book{}, storerrors.ErrBookNotFound)

		_, _, err := svc.PayLateFees("123456", 1, nil)

		assert.ErrorIs(t, err, storerrors.ErrBookNotFound)
	})

	t.Run("successful charge returns the transaction token", func(t *testing.T) {
		mockStorage.EXPECT().PatronRecords("123456").Return(overdueRecord(1, 10), nil)
		mockStorage.EXPECT().GetBook(int64(1)).Return(models.Book{ID: 1, Title: "Mock Book"}, nil)
		mockProc.EXPECT().Charge("123456", 5.00, `Late fees for "Mock Book"`).
			Return(payment.ChargeResult{Approved: true, TransactionID: "txn_001", Message: "approved"}, nil)

		txnID, msg, err := svc.PayLateFees("123456", 1, nil)

		assert.NoError(t, err)
		assert.Equal(t, "txn_001", txnID)
		assert.Contains(t, msg, "payment successful")
	})

	t.Run("gateway decline", func(t *testing.T) {
		mockStorage.EXPECT().PatronRecords("123456").Return(overdueRecord(1, 10), nil)
		mockStorage.EXPECT().GetBook(int64(1)).Return(models.Book{ID: 1, Title: "Decline Test"}, nil)
		mockProc.EXPECT().Charge("123456", 5.00, gomock.Any()).
			Return(payment.ChargeResult{Message: "card declined"}, nil)

		txnID, _, err := svc.PayLateFees("123456", 1, nil)

		assert.Empty(t, txnID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "payment failed: card declined")
	})

	t.Run("gateway fault is converted, not propagated", func(t *testing.T) {
		mockStorage.EXPECT().PatronRecords("123456").Return(overdueRecord(1, 10), nil)
		mockStorage.EXPECT().GetBook(int64(1)).Return(models.Book{ID: 1, Title: "Mock Book"}, nil)
		mockProc.EXPECT().Charge("123456", 5.00, gomock.Any()).
			Return(payment.ChargeResult{}, errors.New("network timeout"))

		_, _, err := svc.PayLateFees("123456", 1, nil)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "payment processing error: network timeout")
	})

	t.Run("explicit processor overrides the default", func(t *testing.T) {
		other := paymocks.NewMockProcessor(ctrl)
		mockStorage.EXPECT().PatronRecords("123456").Return(overdueRecord(1, 10), nil)
		mockStorage.EXPECT().GetBook(int64(1)).Return(models.Book{ID: 1, Title: "Mock Book"}, nil)
		other.EXPECT().Charge("123456", 5.00, gomock.Any()).
			Return(payment.ChargeResult{Approved: true, TransactionID: "txn_002", Message: "approved"}, nil)

		txnID, _, err := svc.PayLateFees("123456", 1, other)

		assert.NoError(t, err)
		assert.Equal(t, "txn_002", txnID)
	})
}

func TestRefundLateFeePayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	mockProc := paymocks.NewMockProcessor(ctrl)
	svc := library.New(mockStorage, mockProc, &fakeClock{now: base})

	t.Run("invalid transaction id", func(t *testing.T) {
		_, err := svc.RefundLateFeePayment("abc_123", 5.00, nil)
		assert.ErrorIs(t, err, library.ErrInvalidTxnID)
	})

	t.Run("non positive amount", func(t *testing.T) {
		_, err := svc.RefundLateFeePayment("txn_123456_0001", 0, nil)
		assert.ErrorIs(t, err, library.ErrInvalidRefundAmount)
	})

	t.Run("amount above the cap never reaches the gateway", func(t *testing.T) {
		_, err := svc.RefundLateFeePayment("txn_123456_0001", 20.00, nil)
		assert.ErrorIs(t, err, library.ErrRefundCapExceeded)
	})

	t.Run("successful refund", func(t *testing.T) {
		mockProc.EXPECT().Refund("txn_123456_0001", 5.00).
			Return(payment.RefundResult{Approved: true, Message: "refund of $5.00 processed successfully"}, nil)

		msg, err := svc.RefundLateFeePayment("txn_123456_0001", 5.00, nil)

		assert.NoError(t, err)
		assert.Contains(t, msg, "refund of $5.00")
	})

	t.Run("gateway decline", func(t *testing.T) {
		mockProc.EXPECT().Refund("txn_123456_0001", 5.00).
			Return(payment.RefundResult{Message: "transaction expired"}, nil)

		_, err := svc.RefundLateFeePayment("txn_123456_0001", 5.00, nil)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "refund failed: transaction expired")
	})

	t.Run("gateway fault is converted", func(t *testing.T) {
		mockProc.EXPECT().Refund("txn_123456_0001", 5.00).
			Return(payment.RefundResult{}, errors.New("connection reset"))

		_, err := svc.RefundLateFeePayment("txn_123456_0001", 5.00, nil)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "refund processing error: connection reset")
	})
}
