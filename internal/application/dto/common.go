package dto

// ErrorResponse corpo de erro HTTP. Error carrega a mensagem no campo "error"
// que o front já consome; Code é um identificador estável para o cliente.
type ErrorResponse struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}
