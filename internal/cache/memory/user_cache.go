package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/warpy_users/internal/domain"
	"github.com/Gunvolt24/warpy_users/internal/ports"
	"github.com/Gunvolt24/warpy_users/pkg/metrics"
)

var _ ports.UserCache = (*UserLRU)(nil)

// cachedUser — элемент списка: копия записи без хеша пароля и момент истечения.
type cachedUser struct {
	user     domain.UserRecord
	deadline time.Time
}

// UserLRU — потокобезопасный LRU-кэш пользователей по ID с TTL (ttl <= 0 — без истечения).
// Хеш пароля в кэш не попадает; Get продлевает срок записи.
type UserLRU struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	order    *list.List // фронт — последний использованный
	byID     map[string]*list.Element
	now      func() time.Time
}

func NewUserLRU(capacity int, ttl time.Duration) *UserLRU {
	if capacity <= 0 {
		capacity = 1
	}
	return &UserLRU{
		capacity: capacity,
		ttl:      ttl,
		order:    list.New(),
		byID:     make(map[string]*list.Element, capacity),
		now:      time.Now,
	}
}

func (c *UserLRU) Get(_ context.Context, id string) (*domain.UserRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.byID[id]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	now := c.now()
	cu := elem.Value.(*cachedUser)
	if c.expired(cu, now) {
		c.drop(elem, "expired")
		return nil, false
	}
	cu.deadline = c.deadlineFrom(now)
	c.order.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	out := cu.user
	return &out, true
}

// Set — записи без ID игнорируются.
func (c *UserLRU) Set(_ context.Context, user *domain.UserRecord) error {
	if user == nil || user.ID == "" {
		return nil
	}
	rec := *user
	rec.Password = ""

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if elem, ok := c.byID[rec.ID]; ok {
		cu := elem.Value.(*cachedUser)
		cu.user, cu.deadline = rec, c.deadlineFrom(now)
		c.order.MoveToFront(elem)
		return nil
	}

	c.trimExpired(now)
	c.byID[rec.ID] = c.order.PushFront(&cachedUser{user: rec, deadline: c.deadlineFrom(now)})
	for c.order.Len() > c.capacity {
		c.drop(c.order.Back(), "evicted")
	}
	metrics.CacheSize.Set(float64(len(c.byID)))
	return nil
}

// Len — текущее число записей (включая ещё не вычищенные истёкшие).
func (c *UserLRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// drop — удаляет элемент и учитывает причину в метриках. Вызывается под mu.
func (c *UserLRU) drop(elem *list.Element, reason string) {
	delete(c.byID, elem.Value.(*cachedUser).user.ID)
	c.order.Remove(elem)
	metrics.CacheOps.WithLabelValues(reason).Inc()
	metrics.CacheSize.Set(float64(len(c.byID)))
}

// trimExpired — снимает истёкшие записи с хвоста до первой актуальной.
func (c *UserLRU) trimExpired(now time.Time) {
	for back := c.order.Back(); back != nil && c.expired(back.Value.(*cachedUser), now); back = c.order.Back() {
		c.drop(back, "expired")
	}
}

func (c *UserLRU) expired(cu *cachedUser, now time.Time) bool {
	return c.ttl > 0 && now.After(cu.deadline)
}

func (c *UserLRU) deadlineFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}
