package library

import (
	"fmt"
	"strings"

	"github.com/ninaveva/lendhub/internal/domain/consts"
	"github.com/ninaveva/lendhub/internal/logger"
	"github.com/ninaveva/lendhub/internal/payment"
)

// PayLateFees charges the patron's late fee for one book through the payment
// gateway. A nil processor falls back to the service default. Gateway declines
// and gateway faults both come back as plain errors, never as panics.
func (s *Service) PayLateFees(patronID string, bookID int64, proc payment.Processor) (txnID string, msg string, err error) {
	log := logger.Get()
	if proc == nil {
		proc = s.payments
	}

	if !validPatronID(patronID) {
		return "", "", ErrInvalidPatronID
	}

	fee := s.CalculateLateFee(patronID, bookID)
	if fee.Status == "" {
		return "", "", ErrFeeUnavailable
	}
	if fee.FeeAmount <= 0 {
		return "", "", ErrNoLateFees
	}

	book, err := s.storage.GetBook(bookID)
	if err != nil {
		return "", "", err
	}

	res, err := proc.Charge(patronID, fee.FeeAmount, fmt.Sprintf("Late fees for %q", book.Title))
	if err != nil {
		log.Error().Err(err).Str("patron", patronID).Msg("payment gateway fault")
		return "", "", fmt.Errorf("payment processing error: %v", err)
	}
	if !res.Approved {
		return "", "", fmt.Errorf("payment failed: %s", res.Message)
	}

	log.Info().Str("txn", res.TransactionID).Float64("amount", fee.FeeAmount).Msg("late fee paid")
	return res.TransactionID, fmt.Sprintf("payment successful, %s", res.Message), nil
}

// RefundLateFeePayment reverses a prior late-fee charge. The amount cap is a
// business ceiling checked before the gateway is ever invoked.
func (s *Service) RefundLateFeePayment(txnID string, amount float64, proc payment.Processor) (string, error) {
	log := logger.Get()
	if proc == nil {
		proc = s.payments
	}

	if !strings.HasPrefix(txnID, payment.TokenPrefix) {
		return "", ErrInvalidTxnID
	}
	if amount <= 0 {
		return "", ErrInvalidRefundAmount
	}
	if amount > consts.MaxLateFeePerBook {
		return "", ErrRefundCapExceeded
	}

	res, err := proc.Refund(txnID, amount)
	if err != nil {
		log.Error().Err(err).Str("txn", txnID).Msg("refund gateway fault")
		return "", fmt.Errorf("refund processing error: %v", err)
	}
	if !res.Approved {
		return "", fmt.Errorf("refund failed: %s", res.Message)
	}

	log.Info().Str("txn", txnID).Float64("amount", amount).Msg("late fee refunded")
	return res.Message, nil
}
