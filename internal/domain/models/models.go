package models

import "time"

type Book struct {
	ID              int64  `json:"id,omitempty"`
	Title           string `json:"title" validate:"required,max=200"`
	Author          string `json:"author" validate:"required,max=100"`
	ISBN            string `json:"isbn" validate:"required,len=13"`
	TotalCopies     int    `json:"total_copies" validate:"required,gt=0"`
	AvailableCopies int    `json:"available_copies"`
}

// BorrowRecord is one loan of one book by one patron. ReturnDate stays nil
// while the loan is outstanding. BookTitle is filled by the storage join,
// it is not a column of borrow_records.
type BorrowRecord struct {
	ID         int64      `json:"id,omitempty"`
	PatronID   string     `json:"patron_id"`
	BookID     int64      `json:"book_id"`
	BookTitle  string     `json:"book_title,omitempty"`
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
}

// LateFee is computed on demand and never persisted.
type LateFee struct {
	FeeAmount   float64 `json:"fee_amount"`
	DaysOverdue int     `json:"days_overdue"`
	Status      string  `json:"status"`
}

type BorrowedBook struct {
	BookTitle  string  `json:"book_title"`
	DueDate    string  `json:"due_date"`
	ReturnDate *string `json:"return_date"`
	FeeAmount  float64 `json:"fee_amount"`
}

type StatusReport struct {
	PatronID           string         `json:"patron_id"`
	BorrowedBooks      []BorrowedBook `json:"borrowed_books"`
	TotalBooksBorrowed int            `json:"total_books_borrowed"`
	OverdueCount       int            `json:"overdue_count"`
	TotalLateFees      float64        `json:"total_late_fees"`
	Status             string         `json:"status"`
}
