package whmcsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	whmcsdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const apiPath = "/includes/api.php"

// ErrNotConfigured indica que WHMCS_API_URL não foi definido
var ErrNotConfigured = errors.New("whmcs: api url not configured")

// APIError é um erro reportado pela própria API (result=error) ou um status HTTP inesperado
type APIError struct {
	Action     string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 && e.StatusCode != http.StatusOK {
		return fmt.Sprintf("whmcs %s: status %d: %s", e.Action, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("whmcs %s: %s", e.Action, e.Message)
}

// DecodeError indica uma resposta que não pôde ser interpretada
type DecodeError struct {
	Action string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("whmcs %s: decode response: %v", e.Action, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type response interface {
	IsError() bool
	ErrorMessage() string
}

type Client interface {
	GetClients(ctx context.Context, params GetClientsParams) (*whmcsdomain.GetClientsResponse, error)
	GetInvoices(ctx context.Context, params GetInvoicesParams) (*whmcsdomain.GetInvoicesResponse, error)
}

type WHMCSClient struct {
	httpClient *http.Client
	config     config.WHMCS
}

// NewClient cria o cliente da API do WHMCS
func NewClient(cfg config.WHMCS) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &WHMCSClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

// call envia a ação para o endpoint da API e decodifica a resposta em out
func (c *WHMCSClient) call(ctx context.Context, action string, params url.Values, out response) error {
	if c.config.URL == "" {
		return ErrNotConfigured
	}

	form := url.Values{}
	for key, values := range params {
		for _, value := range values {
			form.Add(key, value)
		}
	}
	form.Set("identifier", c.config.Identifier)
	form.Set("secret", c.config.Secret)
	form.Set("action", action)
	form.Set("responsetype", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL+apiPath, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrapf(err, "whmcs %s: create request", action)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "whmcs %s: execute request", action)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "whmcs %s: read response", action)
	}

	if err := json.Unmarshal(body, out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return &APIError{Action: action, StatusCode: resp.StatusCode, Message: truncate(string(body), 200)}
		}
		return &DecodeError{Action: action, Err: err}
	}

	if out.IsError() {
		return &APIError{Action: action, StatusCode: resp.StatusCode, Message: out.ErrorMessage()}
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{Action: action, StatusCode: resp.StatusCode, Message: resp.Status}
	}

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
