package whmcsclient

import (
	"context"
	"net/url"
	"strconv"

	whmcsdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/domain"
)

const actionGetInvoices = "GetInvoices"

// GetInvoicesParams são os filtros da ação GetInvoices
type GetInvoicesParams struct {
	Status     string
	UserID     int
	OrderBy    string
	Order      string
	LimitNum   int
	LimitStart int
}

func (p GetInvoicesParams) values() url.Values {
	values := url.Values{}
	if p.Status != "" {
		values.Set("status", p.Status)
	}
	if p.UserID > 0 {
		values.Set("userid", strconv.Itoa(p.UserID))
	}
	if p.OrderBy != "" {
		values.Set("orderby", p.OrderBy)
	}
	if p.Order != "" {
		values.Set("order", p.Order)
	}
	if p.LimitNum > 0 {
		values.Set("limitnum", strconv.Itoa(p.LimitNum))
		values.Set("limitstart", strconv.Itoa(p.LimitStart))
	}
	return values
}

// GetInvoices lista as faturas de acordo com os filtros
func (c *WHMCSClient) GetInvoices(ctx context.Context, params GetInvoicesParams) (*whmcsdomain.GetInvoicesResponse, error) {
	var resp whmcsdomain.GetInvoicesResponse
	if err := c.call(ctx, actionGetInvoices, params.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
