package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninaveva/lendhub/internal/domain/models"
	storerrors "github.com/ninaveva/lendhub/internal/storage/errors"
)

func TestMemStorageBooks(t *testing.T) {
	ms := New()

	_, err := ms.GetBooks()
	assert.ErrorIs(t, err, storerrors.ErrEmptyBooksList)

	id, err := ms.SaveBook(models.Book{Title: "Dune", Author: "Frank Herbert", ISBN: "1234567890123", TotalCopies: 2, AvailableCopies: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	book, err := ms.GetBook(id)
	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)

	_, err = ms.GetBook(99)
	assert.ErrorIs(t, err, storerrors.ErrBookNotFound)

	book, err = ms.GetBookByISBN("1234567890123")
	require.NoError(t, err)
	assert.Equal(t, id, book.ID)

	_, err = ms.GetBookByISBN("0000000000000")
	assert.ErrorIs(t, err, storerrors.ErrBookNotFound)
}

func TestMemStorageAdjustAvailable(t *testing.T) {
	ms := New()
	id, _ := ms.SaveBook(models.Book{Title: "Dune", AvailableCopies: 2})

	require.NoError(t, ms.AdjustAvailable(id, -1))
	book, _ := ms.GetBook(id)
	assert.Equal(t, 1, book.AvailableCopies)

	require.NoError(t, ms.AdjustAvailable(id, 1))
	book, _ = ms.GetBook(id)
	assert.Equal(t, 2, book.AvailableCopies)

	assert.ErrorIs(t, ms.AdjustAvailable(99, 1), storerrors.ErrBookNotFound)
}

func TestMemStorageBorrowRecords(t *testing.T) {
	ms := New()
	id, _ := ms.SaveBook(models.Book{Title: "Dune", AvailableCopies: 2})

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(14 * 24 * time.Hour)
	require.NoError(t, ms.SaveBorrowRecord(models.BorrowRecord{
		PatronID:   "123456",
		BookID:     id,
		BorrowDate: now,
		DueDate:    due,
	}))

	count, err := ms.ActiveBorrowCount("123456")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	records, err := ms.PatronRecords("123456")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Dune", records[0].BookTitle, "title filled from the catalog")
	assert.Nil(t, records[0].ReturnDate)

	records, err = ms.PatronRecords("654321")
	require.NoError(t, err)
	assert.Empty(t, records)

	returned := due.Add(24 * time.Hour)
	require.NoError(t, ms.SetReturnDate("123456", id, returned))

	count, _ = ms.ActiveBorrowCount("123456")
	assert.Zero(t, count)

	records, _ = ms.PatronRecords("123456")
	require.NotNil(t, records[0].ReturnDate)
	assert.Equal(t, returned, *records[0].ReturnDate)

	assert.ErrorIs(t, ms.SetReturnDate("123456", 99, returned), storerrors.ErrRecordNotFound)
}
