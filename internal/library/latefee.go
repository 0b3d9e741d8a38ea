package library

import (
	"github.com/shopspring/decimal"

	"github.com/ninaveva/lendhub/internal/domain/models"
	"github.com/ninaveva/lendhub/internal/logger"
)

// Fee statuses are user-facing labels, not errors.
const (
	FeeStatusNoRecord = "Borrow record not found."
	FeeStatusNone     = "No late fee."
	FeeStatusApplied  = "Late fee applied."

	ReportStatusInvalidPatron = "Invalid patron ID."
	ReportStatusNoBooks       = "No borrowed books."
	ReportStatusOK            = "Report generated successfully."
)

var dailyLateFee = decimal.NewFromFloat(0.50)

// CalculateLateFee computes the fee for the patron's record of the book.
// For an outstanding loan the fee keeps accruing against the current time.
// Pure read; nothing is persisted.
func (s *Service) CalculateLateFee(patronID string, bookID int64) models.LateFee {
	log := logger.Get()

	records, err := s.storage.PatronRecords(patronID)
	if err != nil {
		log.Error().Err(err).Str("patron", patronID).Msg("failed to load borrow records")
		return models.LateFee{Status: FeeStatusNoRecord}
	}
	var rec *models.BorrowRecord
	for i := range records {
		if records[i].BookID == bookID {
			rec = &records[i]
			break
		}
	}
	if rec == nil {
		return models.LateFee{Status: FeeStatusNoRecord}
	}

	end := s.clock.Now()
	if rec.ReturnDate != nil {
		end = *rec.ReturnDate
	}
	if !end.After(rec.DueDate) {
		return models.LateFee{Status: FeeStatusNone}
	}

	days := wholeDays(end.Sub(rec.DueDate))
	fee := dailyLateFee.Mul(decimal.NewFromInt(int64(days))).Round(2)
	return models.LateFee{
		FeeAmount:   fee.InexactFloat64(),
		DaysOverdue: days,
		Status:      FeeStatusApplied,
	}
}

// PatronStatus folds the patron's whole borrow history into a report. The
// detail list carries no ordering promise.
func (s *Service) PatronStatus(patronID string) models.StatusReport {
	report := models.StatusReport{
		PatronID:      patronID,
		BorrowedBooks: []models.BorrowedBook{},
	}
	if !validPatronID(patronID) {
		report.Status = ReportStatusInvalidPatron
		return report
	}

	records, err := s.storage.PatronRecords(patronID)
	if err != nil || len(records) == 0 {
		report.Status = ReportStatusNoBooks
		return report
	}

	total := decimal.Zero
	for _, rec := range records {
		fee := s.CalculateLateFee(patronID, rec.BookID)
		total = total.Add(decimal.NewFromFloat(fee.FeeAmount))
		if fee.DaysOverdue > 0 {
			report.OverdueCount++
		}

		detail := models.BorrowedBook{
			BookTitle: rec.BookTitle,
			DueDate:   rec.DueDate.Format(dateLayout),
			FeeAmount: fee.FeeAmount,
		}
		if rec.ReturnDate != nil {
			returned := rec.ReturnDate.Format(dateLayout)
			detail.ReturnDate = &returned
		}
		report.BorrowedBooks = append(report.BorrowedBooks, detail)
	}

	report.TotalBooksBorrowed = len(records)
	report.TotalLateFees = total.Round(2).InexactFloat64()
	report.Status = ReportStatusOK
	return report
}
