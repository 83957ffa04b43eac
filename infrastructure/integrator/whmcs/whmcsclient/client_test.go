package whmcsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.WHMCS{
		URL:        server.URL,
		Identifier: "ident",
		Secret:     "secret",
		Timeout:    2 * time.Second,
	})
}

func TestGetClients_SendsCredentialsAndFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, apiPath, r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ident", r.PostForm.Get("identifier"))
		assert.Equal(t, "secret", r.PostForm.Get("secret"))
		assert.Equal(t, "GetClients", r.PostForm.Get("action"))
		assert.Equal(t, "json", r.PostForm.Get("responsetype"))
		assert.Equal(t, "DESC", r.PostForm.Get("sorting"))
		assert.Equal(t, "id", r.PostForm.Get("orderby"))
		assert.Equal(t, "250", r.PostForm.Get("limitnum"))

		_, _ = w.Write([]byte(`{"result":"success","clients":{"client":{"id":"3","firstname":"Asha","lastname":"Rao","email":"asha@example.com","datecreated":"2024-01-14"}}}`))
	})

	resp, err := client.GetClients(context.Background(), GetClientsParams{Sorting: "DESC", OrderBy: "id", LimitNum: 250})
	require.NoError(t, err)
	require.Len(t, resp.Clients.Client, 1)
	assert.Equal(t, 3, resp.Clients.Client[0].ID.Int())
	assert.Equal(t, "Asha Rao", resp.Clients.Client[0].FullName())
}

func TestGetInvoices_Filters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "GetInvoices", r.PostForm.Get("action"))
		assert.Equal(t, "Paid", r.PostForm.Get("status"))
		assert.Equal(t, "42", r.PostForm.Get("userid"))
		assert.Empty(t, r.PostForm.Get("limitnum"))

		_, _ = w.Write([]byte(`{"result":"success","invoices":{"invoice":[{"id":1,"userid":42,"total":"10.00","currencycode":"USD"}]}}`))
	})

	resp, err := client.GetInvoices(context.Background(), GetInvoicesParams{Status: "Paid", UserID: 42})
	require.NoError(t, err)
	require.Len(t, resp.Invoices.Invoice, 1)
	assert.Equal(t, 10.0, resp.Invoices.Invoice[0].Amount())
}

func TestCall_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "result=error vira APIError com a mensagem da API",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"result":"error","message":"Authentication Failed"}`))
			},
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, "Authentication Failed", apiErr.Message)
				assert.Equal(t, "GetInvoices", apiErr.Action)
			},
		},
		{
			name: "result=error sem mensagem usa texto padrão",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"result":"error"}`))
			},
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, "WHMCS API Error", apiErr.Message)
			},
		},
		{
			name: "corpo inválido vira DecodeError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>maintenance</html>`))
			},
			check: func(t *testing.T, err error) {
				var decodeErr *DecodeError
				assert.True(t, errors.As(err, &decodeErr))
			},
		},
		{
			name: "status HTTP inesperado vira APIError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(`bad gateway`))
			},
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			_, err := client.GetInvoices(context.Background(), GetInvoicesParams{Status: "Paid"})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestCall_NotConfigured(t *testing.T) {
	client := NewClient(config.WHMCS{})

	_, err := client.GetClients(context.Background(), GetClientsParams{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
