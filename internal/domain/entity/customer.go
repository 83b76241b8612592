package entity

import "time"

// Customer representa um cliente da oficina (pessoa física ou empresa).
type Customer struct {
	ID        string
	Name      string // razão social / nome, normalizado em maiúsculas
	TaxID     string // CNPJ ou CPF
	Phone     string
	CreatedAt time.Time
}
