package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGatewayCharge(t *testing.T) {
	g := New()

	t.Run("success", func(t *testing.T) {
		res, err := g.Charge("123456", 100.0, "Late fee payment")

		assert.NoError(t, err)
		assert.True(t, res.Approved)
		assert.True(t, strings.HasPrefix(res.TransactionID, "txn_123456_"))
		assert.Contains(t, res.Message, "processed successfully")
	})

	t.Run("zero amount declined", func(t *testing.T) {
		res, err := g.Charge("123456", 0, "Late fee payment")

		assert.NoError(t, err)
		assert.False(t, res.Approved)
		assert.Empty(t, res.TransactionID)
		assert.Contains(t, res.Message, "greater than 0")
	})

	t.Run("amount over the ceiling declined", func(t *testing.T) {
		res, err := g.Charge("123456", 1500.0, "Large payment")

		assert.NoError(t, err)
		assert.False(t, res.Approved)
		assert.Contains(t, res.Message, "exceeds limit")
	})

	t.Run("malformed patron id declined", func(t *testing.T) {
		res, err := g.Charge("12", 10.0, "Invalid ID")

		assert.NoError(t, err)
		assert.False(t, res.Approved)
		assert.Contains(t, res.Message, "invalid patron ID")
	})
}

func TestGatewayRefund(t *testing.T) {
	g := New()

	t.Run("success", func(t *testing.T) {
		res, err := g.Refund("txn_123456_1000", 10.0)

		assert.NoError(t, err)
		assert.True(t, res.Approved)
		assert.Contains(t, res.Message, "refund of $10.00 processed successfully")
	})

	t.Run("malformed token declined", func(t *testing.T) {
		res, err := g.Refund("abc_123", 10.0)

		assert.NoError(t, err)
		assert.False(t, res.Approved)
		assert.Contains(t, res.Message, "invalid transaction ID")
	})

	t.Run("non positive amount declined", func(t *testing.T) {
		res, err := g.Refund("txn_123456_1000", 0)

		assert.NoError(t, err)
		assert.False(t, res.Approved)
		assert.Contains(t, res.Message, "invalid refund amount")
	})
}

func TestGatewayStatus(t *testing.T) {
	g := New()

	t.Run("malformed token not found", func(t *testing.T) {
		res, err := g.Status("abc_123")

		assert.NoError(t, err)
		assert.Equal(t, StatusNotFound, res.Status)
	})

	t.Run("issued transaction reports amount and timestamp", func(t *testing.T) {
		charge, err := g.Charge("123456", 7.5, "Late fee payment")
		assert.NoError(t, err)

		res, err := g.Status(charge.TransactionID)

		assert.NoError(t, err)
		assert.Equal(t, StatusCompleted, res.Status)
		assert.Equal(t, charge.TransactionID, res.TransactionID)
		assert.InDelta(t, 7.5, res.Amount, 0.001)
		assert.False(t, res.Timestamp.IsZero())
	})

	t.Run("well formed unknown token still completed", func(t *testing.T) {
		res, err := g.Status("txn_123456_12345")

		assert.NoError(t, err)
		assert.Equal(t, StatusCompleted, res.Status)
	})
}
