package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oficinapro/oficina-api/internal/application/dto"
	"github.com/oficinapro/oficina-api/internal/domain"
	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
	"github.com/oficinapro/oficina-api/pkg/validator"
)

// dueDateLayout formato da data do primeiro vencimento no request.
const dueDateLayout = "2006-01-02"

// ReceivableUseCase gera e mantém parcelas de faturamento.
type ReceivableUseCase struct {
	receivableRepo repository.ReceivableRepository
	customerRepo   repository.CustomerRepository
}

// NewReceivableUseCase constrói o caso de uso.
func NewReceivableUseCase(receivableRepo repository.ReceivableRepository, customerRepo repository.CustomerRepository) *ReceivableUseCase {
	return &ReceivableUseCase{receivableRepo: receivableRepo, customerRepo: customerRepo}
}

// Issue gera as parcelas de um lançamento e as insere em lote.
//
// O valor de cada parcela é total/qtde arredondado em 2 casas, igual para
// todas: a última parcela NÃO absorve a sobra do arredondamento (comportamento
// herdado do sistema antigo, preservado de propósito). Vencimentos avançam de
// mês em mês por aritmética de calendário a partir do primeiro vencimento.
func (uc *ReceivableUseCase) Issue(in dto.IssueReceivablesRequest) ([]dto.ReceivableResponse, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	firstDue, err := time.Parse(dueDateLayout, in.FirstDueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	// Meio-dia UTC: blinda a aritmética de meses contra deslocamento de fuso.
	firstDue = time.Date(firstDue.Year(), firstDue.Month(), firstDue.Day(), 12, 0, 0, 0, time.UTC)

	amount := in.TotalAmount.Div(decimal.NewFromInt(int64(in.Installments))).Round(2)
	now := time.Now()

	batch := make([]*entity.Receivable, 0, in.Installments)
	for i := 1; i <= in.Installments; i++ {
		batch = append(batch, &entity.Receivable{
			ID:                uuid.New().String(),
			CustomerID:        in.CustomerID,
			DocumentNumber:    fmt.Sprintf("%s/%d", in.DocumentNumber, i),
			InstallmentAmount: amount,
			InstallmentNumber: i,
			TotalInstallments: in.Installments,
			Status:            entity.ReceivableStatusPending,
			IssuedAt:          now,
			DueDate:           firstDue.AddDate(0, i-1, 0),
		})
	}
	if err := uc.receivableRepo.CreateBatch(batch); err != nil {
		return nil, err
	}

	out := make([]dto.ReceivableResponse, 0, len(batch))
	for _, rec := range batch {
		out = append(out, dto.ToReceivableResponse(repository.ReceivableRow{
			Receivable:    *rec,
			CustomerName:  customer.Name,
			CustomerTaxID: customer.TaxID,
		}))
	}
	return out, nil
}

// List lista as parcelas com os dados do cliente, ordenadas pelo vencimento.
func (uc *ReceivableUseCase) List() ([]dto.ReceivableResponse, error) {
	rows, err := uc.receivableRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReceivableResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ToReceivableResponse(row))
	}
	return out, nil
}

// MarkPaid dá baixa numa parcela (PENDENTE -> PAGO; repetir não é erro).
func (uc *ReceivableUseCase) MarkPaid(id string) error {
	return uc.receivableRepo.MarkPaid(id)
}

// Delete remove uma parcela.
func (uc *ReceivableUseCase) Delete(id string) error {
	return uc.receivableRepo.Delete(id)
}
