package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/komsit37/fin/pkg/fin/types"
)

// MetricsSource fetches the fundamental metric set for a symbol.
type MetricsSource interface {
	Metrics(ctx context.Context, sym string) (types.MetricSet, error)
}

// CachedMetrics decorates a MetricsSource with a TTL+LRU cache so sector
// averaging does not refetch peers. The analytics stay cache-agnostic; this
// sits at the fetch boundary only.
type CachedMetrics struct {
	next MetricsSource
	ttl  time.Duration
	size int

	mu    sync.Mutex
	items map[string]metricsEntry
	order []string // LRU order, oldest at index 0
}

type metricsEntry struct {
	at time.Time
	m  types.MetricSet
}

func NewCachedMetrics(next MetricsSource, ttl time.Duration, size int) *CachedMetrics {
	return &CachedMetrics{next: next, ttl: ttl, size: size, items: make(map[string]metricsEntry)}
}

func (c *CachedMetrics) Metrics(ctx context.Context, sym string) (types.MetricSet, error) {
	now := time.Now()
	c.mu.Lock()
	if ent, ok := c.items[sym]; ok {
		if now.Sub(ent.at) <= c.ttl {
			c.touchLocked(sym)
			m := ent.m
			c.mu.Unlock()
			return m, nil
		}
		delete(c.items, sym)
		c.removeFromOrderLocked(sym)
	}
	c.mu.Unlock()

	m, err := c.next.Metrics(ctx, sym)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.items[sym] = metricsEntry{at: now, m: m}
	c.order = append(c.order, sym)
	for len(c.items) > c.size && len(c.order) > 0 {
		old := c.order[0]
		c.order = c.order[1:]
		delete(c.items, old)
	}
	c.mu.Unlock()
	return m, nil
}

func (c *CachedMetrics) touchLocked(k string) {
	for i, v := range c.order {
		if v == k {
			c.order = append(append(c.order[:i], c.order[i+1:]...), k)
			return
		}
	}
	c.order = append(c.order, k)
}

func (c *CachedMetrics) removeFromOrderLocked(k string) {
	for i, v := range c.order {
		if v == k {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
