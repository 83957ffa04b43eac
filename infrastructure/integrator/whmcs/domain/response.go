package whmcsdomain

// ResultError é o valor de "result" que sinaliza falha na API
const ResultError = "error"

// APIResponse contém os campos comuns a todas as respostas do WHMCS
type APIResponse struct {
	Result       string  `json:"result"`
	Message      string  `json:"message,omitempty"`
	TotalResults FlexInt `json:"totalresults,omitempty"`
	StartNumber  FlexInt `json:"startnumber,omitempty"`
	NumReturned  FlexInt `json:"numreturned,omitempty"`
}

// IsError indica se a API reportou erro
func (r APIResponse) IsError() bool {
	return r.Result == ResultError
}

// ErrorMessage retorna a mensagem de erro da API ou um texto padrão
func (r APIResponse) ErrorMessage() string {
	if r.Message == "" {
		return "WHMCS API Error"
	}
	return r.Message
}

type GetClientsResponse struct {
	APIResponse
	Clients ClientList `json:"clients"`
}

type GetInvoicesResponse struct {
	APIResponse
	Invoices InvoiceList `json:"invoices"`
}
