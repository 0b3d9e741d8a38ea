package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ninaveva/lendhub/internal/domain/models"
	"github.com/ninaveva/lendhub/internal/library"
	"github.com/ninaveva/lendhub/internal/logger"
	storerrors "github.com/ninaveva/lendhub/internal/storage/errors"
)

type addBookRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Author      string `json:"author" validate:"required,max=100"`
	ISBN        string `json:"isbn" validate:"required,len=13"`
	TotalCopies int    `json:"total_copies" validate:"required,gt=0"`
}

type lendingRequest struct {
	PatronID string `json:"patron_id" validate:"required"`
	BookID   int64  `json:"book_id" validate:"required"`
}

type refundRequest struct {
	TransactionID string  `json:"transaction_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required"`
}

// errStatus maps core errors onto HTTP codes: bad input 400, missing things
// 404, domain rule rejections 409, anything else 500.
func errStatus(err error) int {
	switch {
	case errors.Is(err, library.ErrInvalidPatronID),
		errors.Is(err, library.ErrInvalidTxnID),
		errors.Is(err, library.ErrInvalidRefundAmount):
		return http.StatusBadRequest
	case errors.Is(err, storerrors.ErrBookNotFound),
		errors.Is(err, storerrors.ErrRecordNotFound),
		errors.Is(err, storerrors.ErrEmptyBooksList),
		errors.Is(err, library.ErrNotBorrowed):
		return http.StatusNotFound
	case errors.Is(err, library.ErrBookNotAvailable),
		errors.Is(err, library.ErrBorrowLimitReached),
		errors.Is(err, library.ErrNoLateFees),
		errors.Is(err, library.ErrRefundCapExceeded),
		errors.Is(err, storerrors.ErrDuplicateISBN):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) AddBook(ctx *gin.Context) {
	log := logger.Get()

	var req addBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "incorrectly entered data"})
		return
	}
	if err := s.valid.Struct(req); err != nil {
		log.Error().Err(err).Msg("invalid add book request")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := s.Library.AddBook(models.Book{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		TotalCopies: req.TotalCopies,
	})
	if err != nil {
		log.Error().Err(err).Msg("add book failed")
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": msg})
}

func (s *Server) AllBooks(ctx *gin.Context) {
	books, err := s.Library.Books()
	if err != nil {
		if errors.Is(err, storerrors.ErrEmptyBooksList) {
			ctx.String(http.StatusNotFound, err.Error())
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, books)
}

func (s *Server) SearchBooks(ctx *gin.Context) {
	term := ctx.DefaultQuery("search", "")
	searchType := ctx.DefaultQuery("type", "title")

	books, err := s.Library.Search(term, searchType)
	if err != nil {
		if errors.Is(err, storerrors.ErrEmptyBooksList) {
			ctx.String(http.StatusNotFound, err.Error())
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, books)
}

func (s *Server) BookInfo(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}
	book, err := s.Library.BookInfo(id)
	if err != nil {
		if errors.Is(err, storerrors.ErrBookNotFound) {
			ctx.String(http.StatusNotFound, err.Error())
			return
		}
		ctx.String(http.StatusInternalServerError, err.Error())
		return
	}
	ctx.JSON(http.StatusOK, book)
}

func (s *Server) BorrowBook(ctx *gin.Context) {
	log := logger.Get()

	var req lendingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "incorrectly entered data"})
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := s.Library.Borrow(req.PatronID, req.BookID)
	if err != nil {
		log.Error().Err(err).Str("patron", req.PatronID).Int64("book", req.BookID).Msg("borrow failed")
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": msg})
}

func (s *Server) ReturnBook(ctx *gin.Context) {
	log := logger.Get()

	var req lendingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "incorrectly entered data"})
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := s.Library.Return(req.PatronID, req.BookID)
	if err != nil {
		log.Error().Err(err).Str("patron", req.PatronID).Int64("book", req.BookID).Msg("return failed")
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": msg})
}

func (s *Server) PatronStatus(ctx *gin.Context) {
	report := s.Library.PatronStatus(ctx.Param("id"))
	if report.Status == library.ReportStatusInvalidPatron {
		ctx.JSON(http.StatusBadRequest, report)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

func (s *Server) LateFee(ctx *gin.Context) {
	bookID, err := strconv.ParseInt(ctx.Param("bookID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}
	fee := s.Library.CalculateLateFee(ctx.Param("id"), bookID)
	ctx.JSON(http.StatusOK, fee)
}

func (s *Server) PayLateFees(ctx *gin.Context) {
	log := logger.Get()

	var req lendingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "incorrectly entered data"})
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txnID, msg, err := s.Library.PayLateFees(req.PatronID, req.BookID, nil)
	if err != nil {
		log.Error().Err(err).Str("patron", req.PatronID).Int64("book", req.BookID).Msg("payment failed")
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": msg, "transaction_id": txnID})
}

func (s *Server) RefundPayment(ctx *gin.Context) {
	log := logger.Get()

	var req refundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "incorrectly entered data"})
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := s.Library.RefundLateFeePayment(req.TransactionID, req.Amount, nil)
	if err != nil {
		log.Error().Err(err).Str("txn", req.TransactionID).Msg("refund failed")
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": msg})
}
