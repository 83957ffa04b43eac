package domain

// RecentUserSales resume as vendas de hoje de um cliente novo.
// Total soma os valores das faturas sem conversão; TotalINR converte cada uma.
type RecentUserSales struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	InvoiceCount int     `json:"invoiceCount"`
	Total        float64 `json:"total"`
	TotalINR     float64 `json:"totalINR"`
}
