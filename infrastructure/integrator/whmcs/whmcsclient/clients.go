package whmcsclient

import (
	"context"
	"net/url"
	"strconv"

	whmcsdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/domain"
)

const actionGetClients = "GetClients"

// GetClientsParams são os filtros da ação GetClients
type GetClientsParams struct {
	Sorting  string
	OrderBy  string
	LimitNum int
}

func (p GetClientsParams) values() url.Values {
	values := url.Values{}
	if p.Sorting != "" {
		values.Set("sorting", p.Sorting)
	}
	if p.OrderBy != "" {
		values.Set("orderby", p.OrderBy)
	}
	if p.LimitNum > 0 {
		values.Set("limitnum", strconv.Itoa(p.LimitNum))
	}
	return values
}

// GetClients lista os clientes cadastrados
func (c *WHMCSClient) GetClients(ctx context.Context, params GetClientsParams) (*whmcsdomain.GetClientsResponse, error) {
	var resp whmcsdomain.GetClientsResponse
	if err := c.call(ctx, actionGetClients, params.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
