package library

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/ninaveva/lendhub/internal/domain/consts"
	"github.com/ninaveva/lendhub/internal/domain/models"
	"github.com/ninaveva/lendhub/internal/logger"
	"github.com/ninaveva/lendhub/internal/payment"
	storerrors "github.com/ninaveva/lendhub/internal/storage/errors"
)

//go:generate mockgen -source=service.go -destination=./mocks/storage_mock.go -package=mocks

const dateLayout = "2006-01-02"

// Storage is the persistence gateway consumed by the service. Every call is
// atomic on its own; there are no transactions spanning calls.
type Storage interface {
	SaveBook(models.Book) (int64, error)
	GetBook(int64) (models.Book, error)
	GetBookByISBN(string) (models.Book, error)
	GetBooks() ([]models.Book, error)
	SaveBorrowRecord(models.BorrowRecord) error
	PatronRecords(string) ([]models.BorrowRecord, error)
	ActiveBorrowCount(string) (int, error)
	SetReturnDate(patronID string, bookID int64, returnedAt time.Time) error
	AdjustAvailable(bookID int64, delta int) error
}

type Service struct {
	storage  Storage
	payments payment.Processor
	clock    Clock
}

// New wires the service. A nil processor falls back to the simulated
// gateway, a nil clock to the system clock.
func New(stor Storage, proc payment.Processor, clk Clock) *Service {
	if proc == nil {
		proc = payment.New()
	}
	if clk == nil {
		clk = systemClock{}
	}
	return &Service{storage: stor, payments: proc, clock: clk}
}

func validPatronID(patronID string) bool {
	if len(patronID) != 6 {
		return false
	}
	for _, r := range patronID {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// AddBook validates a catalog entry, enforces ISBN uniqueness and persists
// the book with all copies available.
func (s *Service) AddBook(book models.Book) (string, error) {
	log := logger.Get()

	book.Title = strings.TrimSpace(book.Title)
	book.Author = strings.TrimSpace(book.Author)
	if book.Title == "" {
		return "", fmt.Errorf("title is required")
	}
	if len(book.Title) > 200 {
		return "", fmt.Errorf("title must be less than 200 characters")
	}
	if book.Author == "" {
		return "", fmt.Errorf("author is required")
	}
	if len(book.Author) > 100 {
		return "", fmt.Errorf("author must be less than 100 characters")
	}
	if len(book.ISBN) != 13 {
		return "", fmt.Errorf("ISBN must be exactly 13 characters")
	}
	if book.TotalCopies <= 0 {
		return "", fmt.Errorf("total copies must be a positive integer")
	}

	if _, err := s.storage.GetBookByISBN(book.ISBN); err == nil {
		return "", storerrors.ErrDuplicateISBN
	}

	book.AvailableCopies = book.TotalCopies
	id, err := s.storage.SaveBook(book)
	if err != nil {
		return "", fmt.Errorf("add book: %w", err)
	}
	log.Info().Int64("book", id).Str("isbn", book.ISBN).Msg("book added to catalog")
	return fmt.Sprintf("book %q has been successfully added to the catalog", book.Title), nil
}

// Borrow creates a borrow record due in 14 days and decrements availability.
// The two writes are independent storage calls: if the second fails after the
// first succeeded, the catalog is left inconsistent and the error is reported
// without rollback.
func (s *Service) Borrow(patronID string, bookID int64) (string, error) {
	log := logger.Get()

	if !validPatronID(patronID) {
		return "", ErrInvalidPatronID
	}

	book, err := s.storage.GetBook(bookID)
	if err != nil {
		return "", err
	}
	if book.AvailableCopies <= 0 {
		return "", ErrBookNotAvailable
	}

	count, err := s.storage.ActiveBorrowCount(patronID)
	if err != nil {
		return "", fmt.Errorf("count active borrows: %w", err)
	}
	// Strictly greater than the limit, as the requirements state it. A patron
	// with exactly MaxActiveLoans outstanding loans still gets one more.
	if count > consts.MaxActiveLoans {
		return "", ErrBorrowLimitReached
	}

	now := s.clock.Now()
	due := now.Add(consts.LoanPeriod)
	rec := models.BorrowRecord{
		PatronID:   patronID,
		BookID:     bookID,
		BorrowDate: now,
		DueDate:    due,
	}
	if err := s.storage.SaveBorrowRecord(rec); err != nil {
		return "", fmt.Errorf("create borrow record: %w", err)
	}
	if err := s.storage.AdjustAvailable(bookID, -1); err != nil {
		return "", fmt.Errorf("update book availability: %w", err)
	}

	log.Info().Str("patron", patronID).Int64("book", bookID).Time("due", due).Msg("book borrowed")
	return fmt.Sprintf("successfully borrowed %q, due date %s", book.Title, due.Format(dateLayout)), nil
}

// Return stamps the return date on the patron's record of the book and
// increments availability. The lookup scans the patron's full borrow history,
// not just outstanding loans.
func (s *Service) Return(patronID string, bookID int64) (string, error) {
	log := logger.Get()

	if !validPatronID(patronID) {
		return "", ErrInvalidPatronID
	}

	records, err := s.storage.PatronRecords(patronID)
	if err != nil {
		return "", fmt.Errorf("get borrow records: %w", err)
	}
	var rec *models.BorrowRecord
	for i := range records {
		if records[i].BookID == bookID {
			rec = &records[i]
			break
		}
	}
	if rec == nil {
		return "", ErrNotBorrowed
	}

	now := s.clock.Now()
	if err := s.storage.SetReturnDate(patronID, bookID, now); err != nil {
		return "", fmt.Errorf("update return record: %w", err)
	}
	if err := s.storage.AdjustAvailable(bookID, 1); err != nil {
		return "", fmt.Errorf("update book availability: %w", err)
	}

	log.Info().Str("patron", patronID).Int64("book", bookID).Msg("book returned")
	if now.After(rec.DueDate) {
		overdue := wholeDays(now.Sub(rec.DueDate))
		return fmt.Sprintf("book returned %d days late, check for late fees", overdue), nil
	}
	return fmt.Sprintf("book returned successfully on %s", now.Format(dateLayout)), nil
}

// Books lists the whole catalog.
func (s *Service) Books() ([]models.Book, error) {
	return s.storage.GetBooks()
}

func (s *Service) BookInfo(id int64) (models.Book, error) {
	return s.storage.GetBook(id)
}

// Search filters the catalog by title, author or isbn substring. An empty
// term returns everything, an unknown search type returns nothing.
func (s *Service) Search(term, searchType string) ([]models.Book, error) {
	books, err := s.storage.GetBooks()
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return books, nil
	}
	if searchType != "title" && searchType != "author" && searchType != "isbn" {
		return nil, nil
	}

	var results []models.Book
	for _, book := range books {
		var field string
		switch searchType {
		case "title":
			field = book.Title
		case "author":
			field = book.Author
		case "isbn":
			field = book.ISBN
		}
		if strings.Contains(strings.ToLower(field), term) {
			results = append(results, book)
		}
	}
	return results, nil
}

func wholeDays(d time.Duration) int {
	return int(d.Hours() / 24)
}
