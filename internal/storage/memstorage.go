package storage

import (
	"time"

	"github.com/ninaveva/lendhub/internal/domain/models"
	"github.com/ninaveva/lendhub/internal/logger"
	storerrors "github.com/ninaveva/lendhub/internal/storage/errors"
)

// MemStorage mirrors DBStorage for tests and for running without a database.
type MemStorage struct {
	books      map[int64]models.Book
	records    []models.BorrowRecord
	nextBookID int64
	nextRecID  int64
}

func New() *MemStorage {
	return &MemStorage{
		books:      make(map[int64]models.Book),
		nextBookID: 1,
		nextRecID:  1,
	}
}

func (ms *MemStorage) SaveBook(book models.Book) (int64, error) {
	book.ID = ms.nextBookID
	ms.nextBookID++
	ms.books[book.ID] = book
	return book.ID, nil
}

func (ms *MemStorage) GetBook(id int64) (models.Book, error) {
	book, ok := ms.books[id]
	if !ok {
		return models.Book{}, storerrors.ErrBookNotFound
	}
	return book, nil
}

func (ms *MemStorage) GetBookByISBN(isbn string) (models.Book, error) {
	for _, book := range ms.books {
		if book.ISBN == isbn {
			return book, nil
		}
	}
	return models.Book{}, storerrors.ErrBookNotFound
}

func (ms *MemStorage) GetBooks() ([]models.Book, error) {
	var books []models.Book
	for _, book := range ms.books {
		books = append(books, book)
	}
	if len(books) < 1 {
		return nil, storerrors.ErrEmptyBooksList
	}
	return books, nil
}

func (ms *MemStorage) SaveBorrowRecord(rec models.BorrowRecord) error {
	rec.ID = ms.nextRecID
	ms.nextRecID++
	if book, ok := ms.books[rec.BookID]; ok {
		rec.BookTitle = book.Title
	}
	ms.records = append(ms.records, rec)
	return nil
}

func (ms *MemStorage) PatronRecords(patronID string) ([]models.BorrowRecord, error) {
	var records []models.BorrowRecord
	for _, rec := range ms.records {
		if rec.PatronID == patronID {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (ms *MemStorage) ActiveBorrowCount(patronID string) (int, error) {
	count := 0
	for _, rec := range ms.records {
		if rec.PatronID == patronID && rec.ReturnDate == nil {
			count++
		}
	}
	return count, nil
}

func (ms *MemStorage) SetReturnDate(patronID string, bookID int64, returnedAt time.Time) error {
	log := logger.Get()
	for i, rec := range ms.records {
		if rec.PatronID == patronID && rec.BookID == bookID {
			ms.records[i].ReturnDate = &returnedAt
			return nil
		}
	}
	log.Warn().Str("patron", patronID).Int64("book", bookID).Msg("borrow record not found")
	return storerrors.ErrRecordNotFound
}

func (ms *MemStorage) AdjustAvailable(bookID int64, delta int) error {
	book, ok := ms.books[bookID]
	if !ok {
		return storerrors.ErrBookNotFound
	}
	book.AvailableCopies += delta
	ms.books[bookID] = book
	return nil
}
