package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

// CustomerResponse cliente na forma consumida pelo front.
type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"nomeRazaoSocial"`
	TaxID string `json:"cnpjCpf"`
	Phone string `json:"telefone"`
}

// CreateCustomerRequest cadastro de cliente.
type CreateCustomerRequest struct {
	Name  string `json:"nome" validate:"required"`
	TaxID string `json:"cnpj"`
	Phone string `json:"telefone"`
}

// ReceivableResponse parcela de faturamento com os dados do cliente.
type ReceivableResponse struct {
	ID                string          `json:"id"`
	CustomerID        string          `json:"clienteId"`
	CustomerName      string          `json:"cliente"`
	CustomerTaxID     string          `json:"cnpjCpf"`
	DocumentNumber    string          `json:"numeroDocumento"`
	InstallmentAmount decimal.Decimal `json:"valorParcela"`
	InstallmentNumber int             `json:"numeroParcela"`
	TotalInstallments int             `json:"totalParcelas"`
	Status            string          `json:"status"`
	IssuedAt          time.Time       `json:"dataLancamento"`
	DueDate           time.Time       `json:"dataVencimento"`
}

// IssueReceivablesRequest lançamento de faturamento parcelado.
// FirstDueDate no formato "2006-01-02".
type IssueReceivablesRequest struct {
	CustomerID     string          `json:"clienteId" validate:"required"`
	TotalAmount    decimal.Decimal `json:"valorTotal" validate:"required,gt=0"`
	Installments   int             `json:"qtdeParcelas" validate:"required,min=1"`
	DocumentNumber string          `json:"numeroDocumento" validate:"required"`
	FirstDueDate   string          `json:"dataPrimeiroVencimento" validate:"required"`
}

// ExpenseResponse despesa na forma consumida pelo front.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"dataDespesa"`
	InvoiceNumber string          `json:"numeroNf"`
	InvoiceType   string          `json:"tipoNf"`
	Amount        decimal.Decimal `json:"valor"`
	Supplier      string          `json:"fornecedor"`
	Department    string          `json:"departamento"`
	Notes         string          `json:"observacoes"`
}

// CreateExpenseRequest cadastro de despesa. Date no formato "2006-01-02".
type CreateExpenseRequest struct {
	Date          string          `json:"dataDespesa" validate:"required"`
	InvoiceNumber string          `json:"numeroNf"`
	InvoiceType   string          `json:"tipoNf"`
	Amount        decimal.Decimal `json:"valor" validate:"required,gt=0"`
	Supplier      string          `json:"fornecedor"`
	Department    string          `json:"departamento"`
	Notes         string          `json:"observacoes"`
}

// ToCustomerResponse projeta o cliente.
func ToCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, TaxID: c.TaxID, Phone: c.Phone}
}

// ToReceivableResponse projeta a parcela com os dados do cliente.
func ToReceivableResponse(row repository.ReceivableRow) ReceivableResponse {
	return ReceivableResponse{
		ID:                row.ID,
		CustomerID:        row.CustomerID,
		CustomerName:      row.CustomerName,
		CustomerTaxID:     row.CustomerTaxID,
		DocumentNumber:    row.DocumentNumber,
		InstallmentAmount: row.InstallmentAmount,
		InstallmentNumber: row.InstallmentNumber,
		TotalInstallments: row.TotalInstallments,
		Status:            row.Status,
		IssuedAt:          row.IssuedAt,
		DueDate:           row.DueDate,
	}
}

// ToExpenseResponse projeta a despesa.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		Date:          e.Date,
		InvoiceNumber: e.InvoiceNumber,
		InvoiceType:   e.InvoiceType,
		Amount:        e.Amount,
		Supplier:      e.Supplier,
		Department:    e.Department,
		Notes:         e.Notes,
	}
}
