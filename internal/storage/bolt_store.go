package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	imageBucket      = "images"
	expiryValueBytes = 8
)

var errBucketMissing = errors.New("image bucket missing")

// boltStore implements a Store backed by BoltDB. Values are big-endian unix expiry times.
type boltStore struct {
	db              *bolt.DB
	cleanupMu       sync.Mutex
	lastCleanup     atomic.Int64
	imageTTL        time.Duration
	cleanupInterval time.Duration
	now             func() time.Time
}

// openBolt initializes a BoltDB-backed Store.
func openBolt(path string, opts Options) (*boltStore, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(imageBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}

	store := &boltStore{
		db:              db,
		imageTTL:        opts.ImageTTL,
		cleanupInterval: opts.CleanupInterval,
		now:             time.Now,
	}
	store.lastCleanup.Store(store.now().Unix())
	return store, nil
}

// Close closes the BoltDB store.
func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// SeenImage reports whether id was marked and has not expired. Expired entries are dropped.
func (b *boltStore) SeenImage(id string) (bool, error) {
	if b == nil || b.db == nil {
		return false, nil
	}

	now := b.now()
	if err := b.maybeCleanupExpired(now); err != nil {
		return false, err
	}

	var exists bool
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(imageBucket))
		if bucket == nil {
			return errBucketMissing
		}

		key := []byte(id)
		value := bucket.Get(key)
		if value == nil {
			return nil
		}

		expiry, ok := decodeExpiry(value)
		if !ok || !expiry.After(now) {
			return bucket.Delete(key)
		}

		exists = true
		return nil
	})
	return exists, err
}

// MarkImage records id as published until the TTL elapses.
func (b *boltStore) MarkImage(id string) error {
	if b == nil || b.db == nil {
		return nil
	}

	now := b.now()
	if err := b.maybeCleanupExpired(now); err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(imageBucket))
		if bucket == nil {
			return errBucketMissing
		}
		return bucket.Put([]byte(id), encodeExpiry(now.Add(b.imageTTL)))
	})
}

// maybeCleanupExpired sweeps expired ids at most once per cleanup interval.
func (b *boltStore) maybeCleanupExpired(now time.Time) error {
	last := time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	b.cleanupMu.Lock()
	defer b.cleanupMu.Unlock()

	last = time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(imageBucket))
		if bucket == nil {
			return errBucketMissing
		}

		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			expiry, ok := decodeExpiry(v)
			if !ok || !expiry.After(now) {
				if err := cursor.Delete(); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err == nil {
		b.lastCleanup.Store(now.Unix())
	}
	return err
}

func encodeExpiry(t time.Time) []byte {
	buf := make([]byte, expiryValueBytes)
	binary.BigEndian.PutUint64(buf, uint64(t.Unix()))
	return buf
}

func decodeExpiry(value []byte) (time.Time, bool) {
	if len(value) != expiryValueBytes {
		return time.Time{}, false
	}
	unix := int64(binary.BigEndian.Uint64(value))
	if unix <= 0 {
		return time.Time{}, false
	}
	return time.Unix(unix, 0), true
}

// count returns the number of stored ids, expired or not.
func (b *boltStore) count() (int, error) {
	n := 0
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(imageBucket))
		if bucket == nil {
			return errBucketMissing
		}
		return bucket.ForEach(func(_, _ []byte) error {
			n++
			return nil
		})
	})
	return n, err
}
