package kv

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/log"
)

var boltBucket = []byte("content")

type boltStore struct {
	db  *bolt.DB
	log log.Log
}

// NewBolt opens, or creates, a bolt database at the given path.
func NewBolt(path string, log log.Log) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.Wrapf(err, "creating bolt directory for %s", path)
	}

	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "opening bolt db with path: %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)

		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating content bolt bucket")
	}

	log.Infof("Opened bolt store %s", path)

	return boltStore{db: db, log: log}, nil
}

func (s boltStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(boltBucket).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}

		// Values are only valid for the life of the transaction.
		value = append([]byte(nil), v...)
		return nil
	})

	if err == ErrNotFound {
		return nil, err
	} else if err != nil {
		return nil, errors.Wrapf(err, "getting bolt key %s", key)
	}

	return value, nil
}

func (s boltStore) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	set := false

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(boltBucket)
		if b.Get([]byte(key)) != nil {
			return nil
		}

		set = true
		return b.Put([]byte(key), value)
	})

	if err != nil {
		return false, errors.Wrapf(err, "setting bolt key %s", key)
	}

	return set, nil
}

func (s boltStore) GetDel(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(boltBucket)

		v := b.Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}

		value = append([]byte(nil), v...)
		return b.Delete([]byte(key))
	})

	if err == ErrNotFound {
		return nil, err
	} else if err != nil {
		return nil, errors.Wrapf(err, "deleting bolt key %s", key)
	}

	return value, nil
}

func (s boltStore) Exists(ctx context.Context, key string) (bool, error) {
	if _, err := s.Get(ctx, key); err == ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}

	return true, nil
}

func (s boltStore) Values(ctx context.Context, prefix string) ([][]byte, error) {
	var values [][]byte

	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(boltBucket).Cursor()
		p := []byte(prefix)

		for k, v := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, v = c.Next() {
			values = append(values, append([]byte(nil), v...))
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrapf(err, "getting bolt values with prefix %s", prefix)
	}

	return values, nil
}

func (s boltStore) Close() error {
	s.log.Infoln("Closing bolt store")

	return s.db.Close()
}
