package whmcsdomain

import (
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// HomeCurrency é a moeda em que todos os totais são reportados
const HomeCurrency = "INR"

// DefaultInvoiceCurrency é assumida quando a fatura não informa currencycode
const DefaultInvoiceCurrency = "USD"

// Invoice é a fatura retornada pela ação GetInvoices
type Invoice struct {
	ID           FlexInt    `json:"id"`
	UserID       FlexInt    `json:"userid"`
	InvoiceNum   string     `json:"invoicenum,omitempty"`
	Total        FlexString `json:"total"`
	CurrencyCode string     `json:"currencycode"`
	DatePaid     string     `json:"datepaid"`
	Date         string     `json:"date"`
	DueDate      string     `json:"duedate,omitempty"`
	Status       string     `json:"status,omitempty"`
}

// Amount é o total numérico da fatura; valores não numéricos contam como zero
func (i Invoice) Amount() float64 {
	return utils.AmountOrZero(i.Total.String())
}

// Currency retorna a moeda da fatura, assumindo USD quando ausente
func (i Invoice) Currency() string {
	if i.CurrencyCode == "" {
		return DefaultInvoiceCurrency
	}
	return i.CurrencyCode
}

// InvoiceList é o container "invoices" da resposta
type InvoiceList struct {
	Invoice OneOrMany[Invoice] `json:"invoice"`
}

func (l *InvoiceList) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		*l = InvoiceList{Invoice: OneOrMany[Invoice]{}}
		return nil
	}

	type plain InvoiceList
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if decoded.Invoice == nil {
		decoded.Invoice = OneOrMany[Invoice]{}
	}

	*l = InvoiceList(decoded)
	return nil
}

// InvoicesOfClient filtra as faturas de um cliente; id zero (ilegível) não casa com nada
func InvoicesOfClient(invoices []Invoice, clientID int) []Invoice {
	filtered := make([]Invoice, 0)
	if clientID <= 0 {
		return filtered
	}
	for _, invoice := range invoices {
		if invoice.UserID.Int() == clientID {
			filtered = append(filtered, invoice)
		}
	}
	return filtered
}
