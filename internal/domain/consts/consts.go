package consts

import "time"

const (
	DBCtxTimeout = 5 * time.Second

	// LoanPeriod is the fixed lending policy: due date = borrow date + 14 days.
	LoanPeriod = 14 * 24 * time.Hour

	// MaxActiveLoans is the borrowing limit. The check rejects only when the
	// active count already exceeds this value, so a patron can in fact reach
	// six outstanding loans. Kept as the requirements state it.
	MaxActiveLoans = 5

	// MaxLateFeePerBook caps refunds, independent of any computed fee.
	MaxLateFeePerBook = 15.00
)
