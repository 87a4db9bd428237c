package token

import (
	"encoding/binary"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/log"
)

type BoltStorage struct {
	db  *bolt.DB
	log log.Log
}

var (
	bucket = []byte("revoked-tokens")
)

func NewBoltStorage(path string, log log.Log) (BoltStorage, error) {
	db, err := bolt.Open(path, 0660, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return BoltStorage{}, errors.Wrapf(err, "opening token bolt storage %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)

		return err
	})
	if err != nil {
		db.Close()
		return BoltStorage{}, errors.Wrap(err, "creating token bolt bucket")
	}

	return BoltStorage{db: db, log: log}, nil
}

func (b BoltStorage) Store(token string, expiration time.Time) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, uint64(expiration.Unix()))

		return tx.Bucket(bucket).Put([]byte(token), buf)
	})

	if err != nil {
		err = errors.Wrap(err, "writing revoked token to storage")
	}

	return err
}

func (b BoltStorage) Exists(token string) (bool, error) {
	exists := false

	err := b.db.View(func(tx *bolt.Tx) error {
		exists = tx.Bucket(bucket).Get([]byte(token)) != nil

		return nil
	})

	if err != nil {
		err = errors.Wrap(err, "looking up revoked token")
	}

	return exists, err
}

func (b BoltStorage) RemoveExpired() error {
	now := time.Now()
	removed := 0

	err := b.db.Update(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucket).Cursor()

		for k, v := c.First(); k != nil; k, v = c.Next() {
			if now.Before(time.Unix(int64(binary.LittleEndian.Uint64(v)), 0)) {
				continue
			}

			if err := c.Delete(); err != nil {
				return err
			}
			removed++
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "cleaning expired tokens")
	}

	if removed > 0 {
		b.log.Debugf("Removed %d expired revoked tokens", removed)
	}

	return nil
}

func (b BoltStorage) Close() error {
	return errors.Wrap(b.db.Close(), "closing token bolt storage")
}
