package repository

import (
	"github.com/oficinapro/oficina-api/internal/domain/entity"
)

// ReceivableRow é uma parcela já com os dados do cliente para listagem.
type ReceivableRow struct {
	entity.Receivable
	CustomerName  string
	CustomerTaxID string
}

// ReceivableRepository define o porto de persistência para parcelas de faturamento.
type ReceivableRepository interface {
	// CreateBatch insere todas as parcelas de um lançamento de uma vez.
	CreateBatch(receivables []*entity.Receivable) error
	List() ([]ReceivableRow, error)
	// MarkPaid muda o status para PAGO incondicionalmente (idempotente).
	MarkPaid(id string) error
	Delete(id string) error
}
