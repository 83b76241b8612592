package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oficinapro/oficina-api/internal/application/billing"
	"github.com/oficinapro/oficina-api/internal/application/dto"
	"github.com/oficinapro/oficina-api/internal/domain"
	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

// fakeReceivableRepo guarda as parcelas em memória.
type fakeReceivableRepo struct {
	byID map[string]*entity.Receivable
}

func newFakeReceivableRepo() *fakeReceivableRepo {
	return &fakeReceivableRepo{byID: map[string]*entity.Receivable{}}
}

func (r *fakeReceivableRepo) CreateBatch(receivables []*entity.Receivable) error {
	for _, rec := range receivables {
		cp := *rec
		r.byID[rec.ID] = &cp
	}
	return nil
}

func (r *fakeReceivableRepo) List() ([]repository.ReceivableRow, error) {
	out := make([]repository.ReceivableRow, 0, len(r.byID))
	for _, rec := range r.byID {
		out = append(out, repository.ReceivableRow{Receivable: *rec})
	}
	return out, nil
}

func (r *fakeReceivableRepo) MarkPaid(id string) error {
	rec, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	rec.Status = entity.ReceivableStatusPaid
	return nil
}

func (r *fakeReceivableRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// fakeCustomerRepo cadastro mínimo de clientes para os testes.
type fakeCustomerRepo struct {
	byID map[string]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{byID: map[string]*entity.Customer{}}
	for _, c := range customers {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.byID[id], nil
}

func (r *fakeCustomerRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func issueRequest(installments int, total string) dto.IssueReceivablesRequest {
	return dto.IssueReceivablesRequest{
		CustomerID:     "cli-1",
		TotalAmount:    decimal.RequireFromString(total),
		Installments:   installments,
		DocumentNumber: "NF-123",
		FirstDueDate:   "2024-01-31",
	}
}

func newIssueUC() (*billing.ReceivableUseCase, *fakeReceivableRepo) {
	repo := newFakeReceivableRepo()
	customers := newFakeCustomerRepo(&entity.Customer{ID: "cli-1", Name: "OFICINA SILVA LTDA", TaxID: "12345678000190"})
	return billing.NewReceivableUseCase(repo, customers), repo
}

func TestIssue_ParcelasUniformesArredondadas(t *testing.T) {
	uc, _ := newIssueUC()

	// 100 / 3 = 33.333... -> 33.33 em todas as parcelas, sem redistribuir a sobra.
	out, err := uc.Issue(issueRequest(3, "100.00"))
	require.NoError(t, err)
	require.Len(t, out, 3)

	expected := decimal.RequireFromString("33.33")
	for _, rec := range out {
		assert.True(t, expected.Equal(rec.InstallmentAmount),
			"parcela %d deve valer 33.33, veio %s", rec.InstallmentNumber, rec.InstallmentAmount)
		assert.Equal(t, entity.ReceivableStatusPending, rec.Status)
		assert.Equal(t, 3, rec.TotalInstallments)
	}

	// A deriva em relação ao total fica limitada a qtde × 0.01.
	sum := decimal.Zero
	for _, rec := range out {
		sum = sum.Add(rec.InstallmentAmount)
	}
	drift := decimal.RequireFromString("100.00").Sub(sum).Abs()
	bound := decimal.RequireFromString("0.01").Mul(decimal.NewFromInt(3))
	assert.True(t, drift.LessThanOrEqual(bound), "deriva %s acima do limite %s", drift, bound)
}

func TestIssue_NumerosDeDocumentoCompostos(t *testing.T) {
	uc, _ := newIssueUC()

	out, err := uc.Issue(issueRequest(2, "200.00"))
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "NF-123/1", out[0].DocumentNumber)
	assert.Equal(t, "NF-123/2", out[1].DocumentNumber)
	assert.Equal(t, "OFICINA SILVA LTDA", out[0].CustomerName)
	assert.Equal(t, "12345678000190", out[0].CustomerTaxID)
}

func TestIssue_VencimentosMensaisComRoloverDeCalendario(t *testing.T) {
	uc, _ := newIssueUC()

	// Primeiro vencimento 31/01: fevereiro não tem dia 31, a aritmética de
	// calendário rola para 02/03 (2024 é bissexto).
	out, err := uc.Issue(issueRequest(3, "300.00"))
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC), out[0].DueDate)
	assert.Equal(t, time.Date(2024, time.March, 2, 12, 0, 0, 0, time.UTC), out[1].DueDate)
	assert.Equal(t, time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC), out[2].DueDate)
}

func TestIssue_ClienteInexistente(t *testing.T) {
	uc, _ := newIssueUC()

	in := issueRequest(2, "100.00")
	in.CustomerID = "nao-existe"
	_, err := uc.Issue(in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIssue_EntradaInvalida(t *testing.T) {
	uc, _ := newIssueUC()

	in := issueRequest(0, "100.00")
	_, err := uc.Issue(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "qtde de parcelas zero é rejeitada")

	in = issueRequest(2, "100.00")
	in.FirstDueDate = "31/01/2024"
	_, err = uc.Issue(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "data fora do formato YYYY-MM-DD é rejeitada")

	in = issueRequest(2, "-10.00")
	_, err = uc.Issue(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "valor total negativo é rejeitado")
}

func TestMarkPaid_Idempotente(t *testing.T) {
	uc, repo := newIssueUC()

	out, err := uc.Issue(issueRequest(1, "50.00"))
	require.NoError(t, err)
	id := out[0].ID

	require.NoError(t, uc.MarkPaid(id))
	assert.Equal(t, entity.ReceivableStatusPaid, repo.byID[id].Status)

	// Repetir a baixa não é erro e não muda nada.
	require.NoError(t, uc.MarkPaid(id))
	assert.Equal(t, entity.ReceivableStatusPaid, repo.byID[id].Status)
}
