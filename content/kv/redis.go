package kv

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/urandom/feedkeeper/config"
	"github.com/urandom/feedkeeper/log"
)

const redisScanCount = 500

type redisStore struct {
	client *redis.Client
	log    log.Log
}

// NewRedis connects to a redis server and verifies the connection.
func NewRedis(cfg config.KV, log log.Log) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		DialTimeout: cfg.Converted.DialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Converted.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "connecting to redis at %s", cfg.RedisAddr)
	}

	log.Infof("Connected to redis at %s", cfg.RedisAddr)

	return redisStore{client: client, log: log}, nil
}

func (s redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, errors.Wrapf(err, "getting redis key %s", key)
	}

	return b, nil
}

func (s redisStore) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	ok, err := s.client.SetNX(ctx, key, value, 0).Result()
	if err != nil {
		return false, errors.Wrapf(err, "setting redis key %s", key)
	}

	return ok, nil
}

func (s redisStore) GetDel(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.GetDel(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, errors.Wrapf(err, "deleting redis key %s", key)
	}

	return b, nil
}

func (s redisStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, errors.Wrapf(err, "checking redis key %s", key)
	}

	return n > 0, nil
}

func (s redisStore) Values(ctx context.Context, prefix string) ([][]byte, error) {
	var keys []string
	seen := map[string]struct{}{}

	// SCAN may return a key more than once while the keyspace is rehashed.
	iter := s.client.Scan(ctx, 0, prefix+"*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		keys = appendUnique(keys, seen, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "scanning redis keys with prefix %s", prefix)
	}

	values := make([][]byte, 0, len(keys))
	for start := 0; start < len(keys); start += redisScanCount {
		end := start + redisScanCount
		if end > len(keys) {
			end = len(keys)
		}

		res, err := s.client.MGet(ctx, keys[start:end]...).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "getting redis values with prefix %s", prefix)
		}

		for _, v := range res {
			// Keys removed between the scan and the fetch come back as nil.
			if str, ok := v.(string); ok {
				values = append(values, []byte(str))
			}
		}
	}

	return values, nil
}

func appendUnique(keys []string, seen map[string]struct{}, key string) []string {
	if _, ok := seen[key]; ok {
		return keys
	}
	seen[key] = struct{}{}

	return append(keys, key)
}

func (s redisStore) Close() error {
	s.log.Infoln("Closing redis connection")

	return s.client.Close()
}
