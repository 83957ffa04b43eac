package reporting

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

// DefaultSnapshotTTL é o tempo que um snapshot agregado continua válido
const DefaultSnapshotTTL = 5 * time.Minute

// RefreshFunc agrega um snapshot novo
type RefreshFunc func(ctx context.Context) (*domain.SalesSnapshot, error)

// SnapshotCache guarda o último snapshot agregado.
// Misses simultâneos da mesma geração compartilham uma única agregação;
// Clear avança a geração, então nada calculado antes dele volta ao cache.
type SnapshotCache struct {
	ttl     time.Duration
	now     func() time.Time
	metrics *metrics.Metrics

	mu         sync.RWMutex
	snapshot   *domain.SalesSnapshot
	storedAt   time.Time
	generation uint64

	group singleflight.Group
}

func NewSnapshotCache(ttl time.Duration, m *metrics.Metrics) *SnapshotCache {
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}

	return &SnapshotCache{
		ttl:     ttl,
		now:     time.Now,
		metrics: m,
	}
}

// Get retorna o snapshot em cache se ainda estiver válido
func (c *SnapshotCache) Get() (*domain.SalesSnapshot, bool) {
	snapshot, _, ok := c.lookup()
	return snapshot, ok
}

func (c *SnapshotCache) lookup() (*domain.SalesSnapshot, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snapshot == nil || c.now().Sub(c.storedAt) >= c.ttl {
		return nil, c.generation, false
	}
	return c.snapshot, c.generation, true
}

// GetOrRefresh retorna o snapshot válido ou agrega um novo com refresh.
// Erros não são guardados no cache.
func (c *SnapshotCache) GetOrRefresh(ctx context.Context, refresh RefreshFunc) (*domain.SalesSnapshot, error) {
	snapshot, generation, ok := c.lookup()
	if ok {
		c.metrics.CacheHit()
		return snapshot, nil
	}
	c.metrics.CacheMiss()

	// a agregação é compartilhada, então não herda o cancelamento de quem a iniciou
	shared := context.WithoutCancel(ctx)

	value, err, _ := c.group.Do(strconv.FormatUint(generation, 10), func() (interface{}, error) {
		if snapshot, current, ok := c.lookup(); ok && current == generation {
			return snapshot, nil
		}

		started := time.Now()
		fresh, err := refresh(shared)
		c.metrics.ObserveRefresh(time.Since(started))
		if err != nil {
			return nil, err
		}

		c.Store(generation, fresh)
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}

	return value.(*domain.SalesSnapshot), nil
}

// Store guarda o snapshot se nenhum Clear aconteceu desde a geração informada
func (c *SnapshotCache) Store(generation uint64, snapshot *domain.SalesSnapshot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation || snapshot == nil {
		return false
	}
	c.snapshot = snapshot
	c.storedAt = c.now()
	return true
}

// Clear descarta o snapshot e avança a geração
func (c *SnapshotCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = nil
	c.storedAt = time.Time{}
	c.generation++
}

// Generation retorna a geração atual do cache
func (c *SnapshotCache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}
