package exchangerate

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/exchangerate/ratesclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

const (
	integrationName = "exchangerate"

	// HomeCurrency é a moeda base da tabela de cotações
	HomeCurrency = "INR"

	// DefaultCurrency é assumida quando a moeda não é informada
	DefaultCurrency = "USD"

	defaultTTL = time.Hour
)

// fallbackRates são cotações aproximadas usadas quando o serviço externo falha
var fallbackRates = map[string]float64{
	"USD": 0.012,
	"EUR": 0.011,
	"GBP": 0.0095,
	"AUD": 0.018,
	"INR": 1,
}

// FallbackRates retorna uma cópia da tabela de contingência
func FallbackRates() map[string]float64 {
	return copyRates(fallbackRates)
}

// Converter converte valores para a moeda base. Nunca retorna erro.
type Converter interface {
	Rates(ctx context.Context) map[string]float64
	Convert(ctx context.Context, amount float64, from string) float64
}

type ExchangeRateService struct {
	Client  ratesclient.Client
	ttl     time.Duration
	metrics *metrics.Metrics
	now     func() time.Time

	mu        sync.RWMutex
	rates     map[string]float64
	fetchedAt time.Time

	group singleflight.Group
}

func New(cfg *config.Config, client ratesclient.Client, m *metrics.Metrics) *ExchangeRateService {
	ttl := cfg.ExchangeRate.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &ExchangeRateService{
		Client:  client,
		ttl:     ttl,
		metrics: m,
		now:     time.Now,
	}
}

// Rates retorna uma cópia da tabela em cache se ainda válida; senão busca de novo.
// Em caso de falha retorna a tabela de contingência sem renovar o cache.
func (s *ExchangeRateService) Rates(ctx context.Context) map[string]float64 {
	return copyRates(s.table(ctx))
}

// table retorna a tabela vigente sem copiar. O mapa nunca é alterado depois de
// publicado, só substituído, então pode ser lido sem lock.
func (s *ExchangeRateService) table(ctx context.Context) map[string]float64 {
	if rates, ok := s.cached(); ok {
		return rates
	}

	// a busca é compartilhada, então não herda o cancelamento de quem a iniciou
	shared := context.WithoutCancel(ctx)

	value, _, _ := s.group.Do("latest", func() (interface{}, error) {
		if rates, ok := s.cached(); ok {
			return rates, nil
		}
		return s.refresh(shared), nil
	})

	return value.(map[string]float64)
}

func (s *ExchangeRateService) cached() (map[string]float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.rates == nil || s.now().Sub(s.fetchedAt) >= s.ttl {
		return nil, false
	}
	return s.rates, true
}

func (s *ExchangeRateService) refresh(ctx context.Context) map[string]float64 {
	logger := log.ForContext(ctx).WithField("integration", integrationName)

	latest, err := s.Client.GetLatest(ctx, HomeCurrency)
	if err != nil {
		logger.WithError(err).Warn("failed to fetch exchange rates, using fallback table")
		s.metrics.IntegrationCall(integrationName, "GetLatest", metrics.OutcomeFallback)
		return FallbackRates()
	}

	s.metrics.IntegrationCall(integrationName, "GetLatest", metrics.OutcomeSuccess)

	rates := copyRates(latest.Rates)
	s.mu.Lock()
	s.rates = rates
	s.fetchedAt = s.now()
	s.mu.Unlock()

	logger.Debugf("exchange rates refreshed: %d currencies", len(rates))
	return rates
}

// Convert converte amount de from para a moeda base.
// NaN vira 0; moeda sem cotação (ou cotação não positiva) usa taxa 1.
func (s *ExchangeRateService) Convert(ctx context.Context, amount float64, from string) float64 {
	if math.IsNaN(amount) {
		return 0
	}

	from = strings.ToUpper(strings.TrimSpace(from))
	if from == "" {
		from = DefaultCurrency
	}

	if amount == 0 || from == HomeCurrency {
		return amount
	}

	rate, ok := s.table(ctx)[from]
	if !ok || rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		rate = 1
	}

	return amount / rate
}

func copyRates(rates map[string]float64) map[string]float64 {
	copied := make(map[string]float64, len(rates))
	for code, rate := range rates {
		copied[code] = rate
	}
	return copied
}
