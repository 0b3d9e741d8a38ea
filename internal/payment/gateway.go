package payment

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ninaveva/lendhub/internal/logger"
)

//go:generate mockgen -source=gateway.go -destination=./mocks/processor_mock.go -package=mocks

// TokenPrefix marks every transaction token issued by the gateway.
const TokenPrefix = "txn_"

// amountLimit is the gateway's own per-transaction ceiling, independent of
// any library policy.
const amountLimit = 1000.00

const (
	StatusCompleted = "completed"
	StatusNotFound  = "not_found"
)

type ChargeResult struct {
	Approved      bool
	TransactionID string
	Message       string
}

type RefundResult struct {
	Approved bool
	Message  string
}

type StatusResult struct {
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	Amount        float64   `json:"amount,omitempty"`
	Timestamp     time.Time `json:"timestamp,omitempty"`
	Message       string    `json:"message,omitempty"`
}

// Processor is the external payment collaborator. Declines come back in the
// result with Approved false; an error means the gateway itself faulted.
type Processor interface {
	Charge(patronID string, amount float64, description string) (ChargeResult, error)
	Refund(transactionID string, amount float64) (RefundResult, error)
	Status(transactionID string) (StatusResult, error)
}

var patronIDPattern = regexp.MustCompile(`^\d{6}$`)

// Gateway is the simulated processor. It validates by rule and keeps issued
// transactions in memory for status queries.
type Gateway struct {
	transactions map[string]StatusResult
}

func New() *Gateway {
	return &Gateway{transactions: make(map[string]StatusResult)}
}

func (g *Gateway) Charge(patronID string, amount float64, description string) (ChargeResult, error) {
	log := logger.Get()

	if !patronIDPattern.MatchString(patronID) {
		return ChargeResult{Message: "invalid patron ID format"}, nil
	}
	if amount <= 0 {
		return ChargeResult{Message: "payment amount must be greater than 0"}, nil
	}
	if amount > amountLimit {
		return ChargeResult{Message: fmt.Sprintf("payment amount exceeds limit of $%.2f", amountLimit)}, nil
	}

	token := fmt.Sprintf("%s%s_%s", TokenPrefix, patronID, uuid.NewString()[:8])
	g.transactions[token] = StatusResult{
		TransactionID: token,
		Status:        StatusCompleted,
		Amount:        amount,
		Timestamp:     time.Now(),
	}
	log.Info().Str("txn", token).Float64("amount", amount).Str("desc", description).Msg("payment processed")
	return ChargeResult{
		Approved:      true,
		TransactionID: token,
		Message:       fmt.Sprintf("payment of $%.2f processed successfully", amount),
	}, nil
}

func (g *Gateway) Refund(transactionID string, amount float64) (RefundResult, error) {
	log := logger.Get()

	if !strings.HasPrefix(transactionID, TokenPrefix) {
		return RefundResult{Message: "invalid transaction ID format"}, nil
	}
	if amount <= 0 {
		return RefundResult{Message: "invalid refund amount"}, nil
	}

	log.Info().Str("txn", transactionID).Float64("amount", amount).Msg("refund processed")
	return RefundResult{
		Approved: true,
		Message:  fmt.Sprintf("refund of $%.2f processed successfully", amount),
	}, nil
}

// Status answers from the transaction map. A well-formed token the gateway
// never issued still reports completed, matching the simulator's optimistic
// policy; only malformed tokens come back not_found.
func (g *Gateway) Status(transactionID string) (StatusResult, error) {
	if !strings.HasPrefix(transactionID, TokenPrefix) {
		return StatusResult{Status: StatusNotFound, Message: "transaction not found"}, nil
	}
	if res, ok := g.transactions[transactionID]; ok {
		return res, nil
	}
	return StatusResult{
		TransactionID: transactionID,
		Status:        StatusCompleted,
		Timestamp:     time.Now(),
	}, nil
}
