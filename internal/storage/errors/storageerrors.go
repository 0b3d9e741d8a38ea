package storerrors

import "errors"

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrDuplicateISBN  = errors.New("a book with this ISBN already exists")
	ErrRecordNotFound = errors.New("borrow record not found")
	ErrEmptyBooksList = errors.New("empty books list")
)
