package cache

import (
	"errors"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("cache: key not found")

// Singular caches exactly one value of type T.
type Singular[T any] struct {
	// m serializes the slow path of MutexGetSet
	m sync.Mutex

	key string

	c *cache.Cache
}

func NewSingular[T any](key string) *Singular[T] {
	return &Singular[T]{
		key: key,
		c:   cache.New(cache.NoExpiration, time.Minute*10),
	}
}

func (c *Singular[T]) Get(dest *T) error {
	result, ok := c.c.Get(c.key)
	if !ok {
		return ErrNotFound
	}
	*dest = result.(T)
	return nil
}

func (c *Singular[T]) Set(value T, expire time.Duration) {
	c.c.Set(c.key, value, expire)
}

// MutexGetSet writes the cached value to dest. On a miss valueFunc is called at most
// once across concurrent callers, and its result is cached for expire.
// It reports whether the value was calculated rather than read from the cache.
func (c *Singular[T]) MutexGetSet(dest *T, valueFunc func() (T, error), expire time.Duration) (calculated bool, err error) {
	if err := c.Get(dest); err == nil {
		return false, nil
	}

	c.m.Lock()
	defer c.m.Unlock()
	if err := c.Get(dest); err == nil {
		return false, nil
	}

	value, err := valueFunc()
	if err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to get value from valueFunc() in MutexGetSet")
		return false, err
	}

	c.Set(value, expire)
	*dest = value
	return true, nil
}

func (c *Singular[T]) Delete() {
	c.c.Flush()
}
