package whmcs_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs"
	whmcsdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/domain"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/mocks"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/whmcsclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

// 15 de janeiro de 2024, meio-dia em Asia/Kolkata
func fixedCalendar() *utils.RegionalCalendar {
	now := time.Date(2024, 1, 15, 6, 30, 0, 0, time.UTC)
	return utils.NewRegionalCalendarWithClock(func() time.Time { return now })
}

func newService(client whmcsclient.Client) whmcs.Integrator {
	cfg := &config.Config{WHMCS: config.WHMCS{ClientsLimit: 250, InvoicesLimit: 1000}}
	return whmcs.New(cfg, client, fixedCalendar(), nil)
}

func TestRecentClients_FiltersByCreationDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		GetClients(gomock.Any(), whmcsclient.GetClientsParams{Sorting: "DESC", OrderBy: "id", LimitNum: 250}).
		Return(&whmcsdomain.GetClientsResponse{
			Clients: whmcsdomain.ClientList{Client: whmcsdomain.OneOrMany[whmcsdomain.Client]{
				{ID: 5, FirstName: "Hoje", DateCreated: "2024-01-15"},
				{ID: 4, FirstName: "Limite", DateCreated: "2024-01-08 09:00:00"},
				{ID: 3, FirstName: "Antigo", DateCreated: "2024-01-07"},
				{ID: 2, FirstName: "SemData", DateCreated: "0000-00-00 00:00:00"},
			}},
		}, nil)

	result := newService(client).RecentClients(context.Background())

	require.False(t, result.Failed())
	records := result.Records()
	require.Len(t, records, 2)
	assert.Equal(t, 5, records[0].ID.Int())
	assert.Equal(t, 4, records[1].ID.Int())
}

func TestInvoicesForClient_DropsNonPositiveTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		GetInvoices(gomock.Any(), whmcsclient.GetInvoicesParams{Status: "Paid", UserID: 9}).
		Return(&whmcsdomain.GetInvoicesResponse{
			Invoices: whmcsdomain.InvoiceList{Invoice: whmcsdomain.OneOrMany[whmcsdomain.Invoice]{
				{ID: 1, UserID: 9, Total: "50.00"},
				{ID: 2, UserID: 9, Total: "0.00"},
				{ID: 3, UserID: 9, Total: "-4"},
				{ID: 4, UserID: 9, Total: "abc"},
			}},
		}, nil)

	result := newService(client).InvoicesForClient(context.Background(), 9)

	records := result.Records()
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].ID.Int())
}

func TestAllPaidInvoices_RequestsLatestThousand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		GetInvoices(gomock.Any(), whmcsclient.GetInvoicesParams{Status: "Paid", OrderBy: "id", Order: "desc", LimitNum: 1000}).
		Return(&whmcsdomain.GetInvoicesResponse{
			Invoices: whmcsdomain.InvoiceList{Invoice: whmcsdomain.OneOrMany[whmcsdomain.Invoice]{
				{ID: 1, Total: "0.00"},
			}},
		}, nil)

	result := newService(client).AllPaidInvoices(context.Background())

	assert.Len(t, result.Records(), 1)
}

func TestFailuresDegradeToEmptyTaggedResults(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		reason whmcs.FailureReason
	}{
		{
			name:   "erro de rede",
			err:    errors.New("dial tcp: connection refused"),
			reason: whmcs.FailureTransport,
		},
		{
			name:   "erro reportado pela API",
			err:    &whmcsclient.APIError{Action: "GetInvoices", StatusCode: http.StatusOK, Message: "Invalid IP"},
			reason: whmcs.FailureAPI,
		},
		{
			name:   "resposta ilegível",
			err:    &whmcsclient.DecodeError{Action: "GetInvoices", Err: errors.New("unexpected token")},
			reason: whmcs.FailureDecode,
		},
		{
			name:   "sem configuração",
			err:    whmcsclient.ErrNotConfigured,
			reason: whmcs.FailureNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			client.EXPECT().GetInvoices(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			result := newService(client).AllPaidInvoices(context.Background())

			require.True(t, result.Failed())
			assert.Equal(t, tt.reason, result.Failure().Reason)
			assert.NotNil(t, result.Records())
			assert.Empty(t, result.Records())
			assert.ErrorIs(t, result.Err(), tt.err)
		})
	}
}

func TestResult_ZeroValueIsEmpty(t *testing.T) {
	var result whmcs.Result[whmcsdomain.Client]

	assert.False(t, result.Failed())
	assert.NotNil(t, result.Records())
	assert.NoError(t, result.Err())
}
