package kv

import (
	"context"
	"strings"
	"sync"

	cache "github.com/patrickmn/go-cache"
	"github.com/urandom/feedkeeper/log"
)

type memoryStore struct {
	cache *cache.Cache
	// serializes writes, go-cache has no atomic get-and-delete
	mu  *sync.Mutex
	log log.Log
}

// NewMemory creates a process-local store. Its content is lost on restart.
func NewMemory(log log.Log) Store {
	return memoryStore{
		cache: cache.New(cache.NoExpiration, 0),
		mu:    &sync.Mutex{},
		log:   log,
	}
}

func (s memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := s.cache.Get(key); ok {
		return v.([]byte), nil
	}

	return nil, ErrNotFound
}

func (s memoryStore) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cache.Add(key, value, cache.NoExpiration); err != nil {
		return false, nil
	}

	return true, nil
}

func (s memoryStore) GetDel(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.cache.Get(key)
	if !ok {
		return nil, ErrNotFound
	}

	s.cache.Delete(key)

	return v.([]byte), nil
}

func (s memoryStore) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := s.cache.Get(key)

	return ok, nil
}

func (s memoryStore) Values(ctx context.Context, prefix string) ([][]byte, error) {
	items := s.cache.Items()
	values := make([][]byte, 0, len(items))

	for k, item := range items {
		if strings.HasPrefix(k, prefix) {
			values = append(values, item.Object.([]byte))
		}
	}

	return values, nil
}

func (s memoryStore) Close() error {
	s.cache.Flush()

	return nil
}
