package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de uma parcela de faturamento.
const (
	ReceivableStatusPending = "PENDENTE"
	ReceivableStatusPaid    = "PAGO"
)

// Receivable é uma parcela a receber, gerada em lote pelo lançamento de
// faturamento. DocumentNumber carrega o número composto "{doc}/{n}".
type Receivable struct {
	ID                 string
	CustomerID         string
	DocumentNumber     string
	InstallmentAmount  decimal.Decimal
	InstallmentNumber  int
	TotalInstallments  int
	Status             string // PENDENTE | PAGO
	IssuedAt           time.Time
	DueDate            time.Time
}
