package domain

// ClientInvoice é uma fatura paga de um cliente com o total convertido
type ClientInvoice struct {
	ID         int     `json:"id"`
	InvoiceNum string  `json:"invoiceNum,omitempty"`
	DatePaid   string  `json:"datePaid,omitempty"`
	Currency   string  `json:"currency"`
	Total      float64 `json:"total"`
	TotalINR   float64 `json:"totalINR"`
}

// ClientInvoices é a resposta de GET /api/clients/:id/invoices
type ClientInvoices struct {
	ClientID     int             `json:"clientId"`
	InvoiceCount int             `json:"invoiceCount"`
	TotalINR     float64         `json:"totalINR"`
	Invoices     []ClientInvoice `json:"invoices"`
}
