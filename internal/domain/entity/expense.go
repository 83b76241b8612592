package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense é uma despesa operacional avulsa (nota de fornecedor, conta, etc).
type Expense struct {
	ID            string
	Date          time.Time
	InvoiceNumber string
	InvoiceType   string
	Amount        decimal.Decimal
	Supplier      string
	Department    string
	Notes         string
	CreatedAt     time.Time
}
