package utils

import (
	"sync"
	"sync/atomic"

	"github.com/floatdrop/lru"
)

// Cache is a concurrency-safe key/value cache. Implementations may drop entries at any time.
type Cache[K comparable, T any] interface {
	Get(key K) (value T, ok bool)
	Set(key K, value T)
	Delete(key K)
	Clear()
	Stats() (hits, misses uint64)
}

type LRUCache[K comparable, T any] struct {
	lock   sync.Mutex
	values *lru.LRU[K, T]
	size   int

	hits, misses atomic.Uint64
}

func NewLRUCache[K comparable, T any](size int) *LRUCache[K, T] {
	return &LRUCache[K, T]{
		values: lru.New[K, T](size),
		size:   size,
	}
}

func (c *LRUCache[K, T]) Get(key K) (value T, ok bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if v := c.values.Get(key); v != nil {
		c.hits.Add(1)
		return *v, true
	}
	c.misses.Add(1)
	return value, false
}

func (c *LRUCache[K, T]) Set(key K, value T) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Set(key, value)
}

func (c *LRUCache[K, T]) Delete(key K) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Remove(key)
}

func (c *LRUCache[K, T]) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values = lru.New[K, T](c.size)
}

func (c *LRUCache[K, T]) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// NilCache never stores anything
type NilCache[K comparable, T any] struct {
	misses atomic.Uint64
}

func NewNilCache[K comparable, T any]() *NilCache[K, T] {
	return &NilCache[K, T]{}
}

func (c *NilCache[K, T]) Get(key K) (value T, ok bool) {
	c.misses.Add(1)
	return value, false
}

func (c *NilCache[K, T]) Set(key K, value T) {}

func (c *NilCache[K, T]) Delete(key K) {}

func (c *NilCache[K, T]) Clear() {}

func (c *NilCache[K, T]) Stats() (hits, misses uint64) {
	return 0, c.misses.Load()
}
