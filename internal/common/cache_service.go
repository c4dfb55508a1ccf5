package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheService is the in-memory Cache implementation, used when no Redis
// host is configured.
type CacheService struct {
	cache *cache.Cache
}

var _ Cache = (*CacheService)(nil)

func NewCacheService(defaultExpiration, cleanUpInterval time.Duration) *CacheService {
	return &CacheService{cache: cache.New(defaultExpiration, cleanUpInterval)}
}

func (cs *CacheService) Get(key string) (interface{}, bool) {
	return cs.cache.Get(key)
}

func (cs *CacheService) Set(key string, value interface{}, duration time.Duration) {
	cs.cache.Set(key, value, duration)
}
