package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ninaveva/lendhub/internal/domain/consts"
	"github.com/ninaveva/lendhub/internal/domain/models"
	"github.com/ninaveva/lendhub/internal/logger"
	storerrors "github.com/ninaveva/lendhub/internal/storage/errors"
)

type DBStorage struct {
	pool *pgxpool.Pool
}

func NewDB(ctx context.Context, addr string) (*DBStorage, error) {
	config, err := pgxpool.ParseConfig(addr)
	if err != nil {
		return nil, err
	}
	config.MaxConns = 20
	config.MinConns = 2
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}
	return &DBStorage{pool: pool}, nil
}

func (dbs *DBStorage) SaveBook(book models.Book) (int64, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	var id int64
	err := dbs.pool.QueryRow(ctx,
		`INSERT INTO books (title, author, isbn, total_copies, available_copies)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		book.Title, book.Author, book.ISBN, book.TotalCopies, book.AvailableCopies).Scan(&id)
	if err != nil {
		log.Error().Err(err).Msg("save book failed")
		return 0, err
	}
	return id, nil
}

func (dbs *DBStorage) GetBook(id int64) (models.Book, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	row := dbs.pool.QueryRow(ctx,
		`SELECT id, title, author, isbn, total_copies, available_copies FROM books WHERE id = $1`, id)

	var book models.Book
	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.ISBN, &book.TotalCopies, &book.AvailableCopies); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Book{}, storerrors.ErrBookNotFound
		}
		log.Error().Err(err).Msg("failed to scan data from db")
		return models.Book{}, err
	}
	return book, nil
}

func (dbs *DBStorage) GetBookByISBN(isbn string) (models.Book, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	row := dbs.pool.QueryRow(ctx,
		`SELECT id, title, author, isbn, total_copies, available_copies FROM books WHERE isbn = $1`, isbn)

	var book models.Book
	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.ISBN, &book.TotalCopies, &book.AvailableCopies); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Book{}, storerrors.ErrBookNotFound
		}
		log.Error().Err(err).Msg("failed to scan data from db")
		return models.Book{}, err
	}
	return book, nil
}

func (dbs *DBStorage) GetBooks() ([]models.Book, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	rows, err := dbs.pool.Query(ctx,
		`SELECT id, title, author, isbn, total_copies, available_copies FROM books`)
	if err != nil {
		log.Error().Err(err).Msg("failed get all books from db")
		return nil, err
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.ISBN, &book.TotalCopies, &book.AvailableCopies); err != nil {
			log.Error().Err(err).Msg("failed to scan data from db")
			return nil, err
		}
		books = append(books, book)
	}
	if len(books) == 0 {
		return nil, storerrors.ErrEmptyBooksList
	}
	return books, nil
}

func (dbs *DBStorage) SaveBorrowRecord(rec models.BorrowRecord) error {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	_, err := dbs.pool.Exec(ctx,
		`INSERT INTO borrow_records (patron_id, book_id, borrow_date, due_date)
		VALUES ($1, $2, $3, $4)`,
		rec.PatronID, rec.BookID, rec.BorrowDate, rec.DueDate)
	if err != nil {
		log.Error().Err(err).Msg("save borrow record failed")
		return err
	}
	return nil
}

func (dbs *DBStorage) PatronRecords(patronID string) ([]models.BorrowRecord, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	rows, err := dbs.pool.Query(ctx,
		`SELECT br.id, br.patron_id, br.book_id, b.title, br.borrow_date, br.due_date, br.return_date
		FROM borrow_records br
		JOIN books b ON b.id = br.book_id
		WHERE br.patron_id = $1`, patronID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get patron records from db")
		return nil, err
	}
	defer rows.Close()

	var records []models.BorrowRecord
	for rows.Next() {
		var rec models.BorrowRecord
		if err := rows.Scan(&rec.ID, &rec.PatronID, &rec.BookID, &rec.BookTitle, &rec.BorrowDate, &rec.DueDate, &rec.ReturnDate); err != nil {
			log.Error().Err(err).Msg("failed to scan data from db")
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (dbs *DBStorage) ActiveBorrowCount(patronID string) (int, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	var count int
	err := dbs.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM borrow_records WHERE patron_id = $1 AND return_date IS NULL`,
		patronID).Scan(&count)
	if err != nil {
		log.Error().Err(err).Msg("failed to count active borrows")
		return 0, err
	}
	return count, nil
}

// SetReturnDate stamps the oldest borrow record of the book for the patron,
// returned or not. Matching by (patron, book) rather than by record id keeps
// the original lookup semantics.
func (dbs *DBStorage) SetReturnDate(patronID string, bookID int64, returnedAt time.Time) error {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	res, err := dbs.pool.Exec(ctx,
		`UPDATE borrow_records SET return_date = $3
		WHERE id = (SELECT id FROM borrow_records
			WHERE patron_id = $1 AND book_id = $2
			ORDER BY borrow_date LIMIT 1)`,
		patronID, bookID, returnedAt)
	if err != nil {
		log.Error().Err(err).Msg("failed to update return date")
		return err
	}
	if res.RowsAffected() == 0 {
		log.Warn().Str("patron", patronID).Int64("book", bookID).Msg("borrow record not found")
		return storerrors.ErrRecordNotFound
	}
	return nil
}

func (dbs *DBStorage) AdjustAvailable(bookID int64, delta int) error {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	res, err := dbs.pool.Exec(ctx,
		`UPDATE books SET available_copies = available_copies + $1 WHERE id = $2`,
		delta, bookID)
	if err != nil {
		log.Error().Err(err).Msg("failed to update book availability")
		return err
	}
	if res.RowsAffected() == 0 {
		log.Warn().Int64("book", bookID).Msg("book not found")
		return storerrors.ErrBookNotFound
	}
	return nil
}

func Migrations(dbDsn string, migrationsPath string) error {
	log := logger.Get()
	migratePath := fmt.Sprintf("file://%s", migrationsPath)
	m, err := migrate.New(migratePath, dbDsn)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("no migrations apply")
			return nil
		}
		return err
	}
	log.Info().Msg("all migrations apply")
	return nil
}
