package service

import (
	"sync"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/madhu363/harvest-wheels-link/services/admin/interfaces"
)

type Cache struct {
	sync.RWMutex
	items map[string]cacheItem
}

type cacheItem struct {
	value      interface{}
	expiration time.Time
}

type AdminService struct {
	pool  *pgxpool.Pool
	cache *Cache
}

func NewAdminService(pool *pgxpool.Pool, cache *Cache) interfaces.AdminInterface {
	return &AdminService{pool: pool, cache: cache}
}

func NewCache() *Cache {
	return &Cache{
		items: make(map[string]cacheItem),
	}
}

func (c *Cache) Set(key string, value interface{}, duration time.Duration) {
	c.Lock()
	defer c.Unlock()
	c.items[key] = cacheItem{
		value:      value,
		expiration: time.Now().Add(duration),
	}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	c.RLock()
	defer c.RUnlock()
	item, found := c.items[key]
	if !found {
		return nil, false
	}
	if time.Now().After(item.expiration) {
		return nil, false
	}
	return item.value, true
}
