package library

import "errors"

var (
	ErrInvalidPatronID     = errors.New("invalid patron ID, must be exactly 6 digits")
	ErrBookNotAvailable    = errors.New("this book is currently not available")
	ErrBorrowLimitReached  = errors.New("maximum borrowing limit of 5 books reached")
	ErrNotBorrowed         = errors.New("this book was not borrowed by the patron")
	ErrFeeUnavailable      = errors.New("unable to calculate late fees")
	ErrNoLateFees          = errors.New("no late fees to pay for this book")
	ErrInvalidTxnID        = errors.New("invalid transaction ID")
	ErrInvalidRefundAmount = errors.New("refund amount must be greater than 0")
	ErrRefundCapExceeded   = errors.New("refund amount exceeds maximum late fee")
)
