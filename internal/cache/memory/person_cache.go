package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/person_sync/internal/domain"
	"github.com/Gunvolt24/person_sync/internal/ports"
	"github.com/Gunvolt24/person_sync/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу PersonCache.
var _ ports.PersonCache = (*LRUCacheTTL)(nil)

type entry struct {
	id        string
	person    *domain.Person
	expiresAt time.Time
}

// LRUCacheTTL — кэш персон: вытеснение по LRU, истечение по TTL (ttl <= 0 — без TTL).
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, id string) (*domain.Person, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[id]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	// продлеваем TTL при обращении
	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return clonePerson(ent.person), true
}

func (c *LRUCacheTTL) Set(_ context.Context, person *domain.Person) error {
	if person == nil || person.ID == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[person.ID]; ok {
		ent := elem.Value.(*entry)
		ent.person = clonePerson(person)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		id:        person.ID,
		person:    clonePerson(person),
		expiresAt: c.expiryFrom(now),
	})
	c.index[person.ID] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

func (c *LRUCacheTTL) WarmUp(ctx context.Context, persons []*domain.Person) error {
	for _, person := range persons {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := c.Set(ctx, person); err != nil {
			return err
		}
	}
	return nil
}
