package ratesclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LatestResponse é o corpo de GET /latest/{base}
type LatestResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

type Client interface {
	GetLatest(ctx context.Context, base string) (*LatestResponse, error)
}

type RatesClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg config.ExchangeRate) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &RatesClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.URL,
	}
}

// GetLatest busca a tabela de cotações relativa à moeda base
func (c *RatesClient) GetLatest(ctx context.Context, base string) (*LatestResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "exchange rate: parse base url")
	}
	u.Path = path.Join(u.Path, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "exchange rate: create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "exchange rate: execute request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchange rate: unexpected status %d", resp.StatusCode)
	}

	var latest LatestResponse
	if err := json.NewDecoder(resp.Body).Decode(&latest); err != nil {
		return nil, errors.Wrap(err, "exchange rate: decode response")
	}

	if len(latest.Rates) == 0 {
		return nil, errors.New("exchange rate: response without rates")
	}

	return &latest, nil
}
