package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"

	"github.com/ninaveva/lendhub/internal/config"
	"github.com/ninaveva/lendhub/internal/domain/models"
	"github.com/ninaveva/lendhub/internal/logger"
	"github.com/ninaveva/lendhub/internal/payment"
)

//go:generate mockgen -source=server.go -destination=./mocks/library_mock.go -package=mocks

// Library is the lending core consumed by the handlers.
type Library interface {
	AddBook(models.Book) (string, error)
	Books() ([]models.Book, error)
	BookInfo(int64) (models.Book, error)
	Search(term, searchType string) ([]models.Book, error)
	Borrow(patronID string, bookID int64) (string, error)
	Return(patronID string, bookID int64) (string, error)
	CalculateLateFee(patronID string, bookID int64) models.LateFee
	PatronStatus(patronID string) models.StatusReport
	PayLateFees(patronID string, bookID int64, proc payment.Processor) (string, string, error)
	RefundLateFeePayment(txnID string, amount float64, proc payment.Processor) (string, error)
}

type Server struct {
	serv    *http.Server
	valid   *validator.Validate
	Library Library
	ErrChan chan error
}

func New(cfg config.Config, lib Library) *Server {
	server := http.Server{ //nolint:gosec // not today
		Addr: cfg.Addr,
	}
	valid := validator.New()
	return &Server{
		serv:    &server,
		valid:   valid,
		Library: lib,
		ErrChan: make(chan error),
	}
}

func (s *Server) ShutdownServer() error {
	return s.serv.Shutdown(context.Background())
}

func (s *Server) Run(_ context.Context) error {
	log := logger.Get()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))
	router.GET("/", func(ctx *gin.Context) { ctx.String(http.StatusOK, "Hello") })

	books := router.Group("/books")
	{
		books.POST("/", s.AddBook)
		books.GET("/", s.AllBooks)
		books.GET("/search", s.SearchBooks)
		books.GET("/:id", s.BookInfo)
	}
	router.POST("/borrow", s.BorrowBook)
	router.POST("/return", s.ReturnBook)

	patrons := router.Group("/patrons")
	{
		patrons.GET("/:id/status", s.PatronStatus)
		patrons.GET("/:id/fees/:bookID", s.LateFee)
	}
	router.POST("/payments", s.PayLateFees)
	router.POST("/refunds", s.RefundPayment)

	s.serv.Handler = router
	log.Info().Str("host", s.serv.Addr).Msg("server started")
	if err := s.serv.ListenAndServe(); err != nil {
		return err
	}
	return nil
}

func (s *Server) Close() error {
	return s.serv.Shutdown(context.TODO())
}
