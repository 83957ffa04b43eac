package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	exchangeratemocks "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/exchangerate/mocks"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs"
	whmcsdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/domain"
	whmcsmocks "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestReportingService(ctrl *gomock.Controller) (*Service, *whmcsmocks.MockIntegrator, *exchangeratemocks.MockConverter) {
	whmcsService := whmcsmocks.NewMockIntegrator(ctrl)
	converter := exchangeratemocks.NewMockConverter(ctrl)

	cfg := &config.Config{Cache: config.Cache{SalesTTL: 5 * time.Minute}}
	service := NewService(cfg, whmcsService, converter, testCalendar(), nil)

	return service, whmcsService, converter
}

func TestService_ClearCacheForcesNewAggregation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, whmcsService, _ := newTestReportingService(ctrl)

	whmcsService.EXPECT().
		RecentClients(gomock.Any()).
		Return(whmcs.Success([]whmcsdomain.Client{{ID: 7, FirstName: "Asha"}})).
		Times(2)
	whmcsService.EXPECT().
		AllPaidInvoices(gomock.Any()).
		Return(invoices(whmcsdomain.Invoice{ID: 1, UserID: 7, Total: "100.00", CurrencyCode: "INR", DatePaid: "2024-01-15 10:00:00"})).
		Times(2)

	ctx := context.Background()

	summary, firstID, err := service.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.RecentUsersCount)
	assert.Equal(t, 100.0, summary.Today.Total)
	assert.Equal(t, 100.0, summary.Today.NewUserSales)
	assert.Equal(t, 14.29, summary.Week.DailyAverage)

	// dentro do TTL não há nova agregação
	_, secondID, err := service.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, firstID, secondID)

	service.ClearCache()

	_, thirdID, err := service.Summary(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, firstID, thirdID)
}

func TestService_RecentUserSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, whmcsService, converter := newTestReportingService(ctrl)

	whmcsService.EXPECT().RecentClients(gomock.Any()).Return(whmcs.Success([]whmcsdomain.Client{
		{ID: 7, FirstName: "Asha", LastName: "Rao", Email: "asha@example.com"},
		{ID: 8, FirstName: "Sem", LastName: "Vendas", Email: "none@example.com"},
	}))
	whmcsService.EXPECT().AllPaidInvoices(gomock.Any()).Return(invoices(
		whmcsdomain.Invoice{ID: 1, UserID: 7, Total: "100.00", CurrencyCode: "INR", DatePaid: "2024-01-15 10:00:00"},
		whmcsdomain.Invoice{ID: 2, UserID: 7, Total: "10.00", CurrencyCode: "USD", DatePaid: "2024-01-15 11:00:00"},
		whmcsdomain.Invoice{ID: 3, UserID: 8, Total: "40.00", CurrencyCode: "INR", DatePaid: "2024-01-14 11:00:00"},
	))
	converter.EXPECT().Convert(gomock.Any(), 10.0, "USD").Return(10.0 / 0.012).AnyTimes()

	users, snapshotID, err := service.RecentUserSales(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, snapshotID)

	require.Len(t, users, 1)
	assert.Equal(t, "Asha Rao", users[0].Name)
	assert.Equal(t, "asha@example.com", users[0].Email)
	assert.Equal(t, 2, users[0].InvoiceCount)
	assert.Equal(t, 110.0, users[0].Total)
	assert.Equal(t, 933.33, users[0].TotalINR)
}

func TestService_RecentUserSales_TotalIsNotConverted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, whmcsService, converter := newTestReportingService(ctrl)

	whmcsService.EXPECT().RecentClients(gomock.Any()).Return(whmcs.Success([]whmcsdomain.Client{
		{ID: 7, FirstName: "Asha", Email: "asha@example.com"},
	}))
	whmcsService.EXPECT().AllPaidInvoices(gomock.Any()).Return(invoices(
		whmcsdomain.Invoice{ID: 1, UserID: 7, Total: "10.00", CurrencyCode: "USD", DatePaid: "2024-01-15 10:00:00"},
	))
	converter.EXPECT().Convert(gomock.Any(), 10.0, "USD").Return(10.0 / 0.012).AnyTimes()

	users, _, err := service.RecentUserSales(context.Background())
	require.NoError(t, err)

	require.Len(t, users, 1)
	assert.Equal(t, 10.0, users[0].Total)
	assert.Equal(t, 833.33, users[0].TotalINR)
}

func TestService_RecentUserSales_EmptyWhenWHMCSFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, whmcsService, _ := newTestReportingService(ctrl)

	whmcsService.EXPECT().RecentClients(gomock.Any()).Return(whmcs.Failed[whmcsdomain.Client](errors.New("connection refused")))
	whmcsService.EXPECT().AllPaidInvoices(gomock.Any()).Return(whmcs.Failed[whmcsdomain.Invoice](errors.New("connection refused")))

	users, _, err := service.RecentUserSales(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestService_ClientInvoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, whmcsService, converter := newTestReportingService(ctrl)

	whmcsService.EXPECT().InvoicesForClient(gomock.Any(), 7).Return(invoices(
		whmcsdomain.Invoice{ID: 1, UserID: 7, InvoiceNum: "INV-1", Total: "100.00", CurrencyCode: "INR", DatePaid: "2024-01-15 10:00:00"},
		whmcsdomain.Invoice{ID: 2, UserID: 7, Total: "10.00", CurrencyCode: "USD", DatePaid: "0000-00-00 00:00:00"},
	))
	converter.EXPECT().Convert(gomock.Any(), 10.0, "USD").Return(10.0 / 0.012)

	result, err := service.ClientInvoices(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 7, result.ClientID)
	assert.Equal(t, 2, result.InvoiceCount)
	assert.Equal(t, 933.33, result.TotalINR)
	require.Len(t, result.Invoices, 2)
	assert.Equal(t, "2024-01-15", result.Invoices[0].DatePaid)
	assert.Equal(t, "INV-1", result.Invoices[0].InvoiceNum)
	assert.Equal(t, "", result.Invoices[1].DatePaid)
	assert.Equal(t, 10.0, result.Invoices[1].Total)
	assert.Equal(t, 833.33, result.Invoices[1].TotalINR)
}

func TestService_ClientInvoices_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestReportingService(ctrl)

	_, err := service.ClientInvoices(context.Background(), 0)
	require.Error(t, err)

	var reportErr *ReportError
	require.ErrorAs(t, err, &reportErr)
	assert.Equal(t, apiErrors.ErrInvalidRequest, reportErr.Code)
	assert.ErrorIs(t, err, ErrInvalidClientID)
}

func TestService_WarmCacheServesNextRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, whmcsService, _ := newTestReportingService(ctrl)

	whmcsService.EXPECT().RecentClients(gomock.Any()).Return(whmcs.Success([]whmcsdomain.Client{})).Times(1)
	whmcsService.EXPECT().AllPaidInvoices(gomock.Any()).Return(invoices()).Times(1)

	warmed, err := service.WarmCache(context.Background())
	require.NoError(t, err)

	snapshot, err := service.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, warmed.ID, snapshot.ID)
}

func TestService_RefreshAbortsOnCancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestReportingService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Refresh(ctx)
	assert.ErrorIs(t, err, ErrRefreshAborted)
}

func TestService_IDFailureIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, whmcsService, _ := newTestReportingService(ctrl)

	whmcsService.EXPECT().RecentClients(gomock.Any()).Return(whmcs.Success([]whmcsdomain.Client{})).Times(2)
	whmcsService.EXPECT().AllPaidInvoices(gomock.Any()).Return(invoices()).Times(2)

	service.newID = func() (string, error) { return "", errors.New("entropy unavailable") }

	_, _, err := service.Summary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate snapshot id")

	service.newID = func() (string, error) { return "snap000009", nil }

	_, snapshotID, err := service.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "snap000009", snapshotID)
}
