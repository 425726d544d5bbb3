package session

import (
	"context"
	"encoding/binary"
	"sync/atomic"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketSessions = []byte("sessions")

// BoltStore keeps sessions in a bucket of a bbolt database it does not own.
// Each value is the expiry in Unix nanoseconds (8 bytes, big-endian)
// followed by the session data.
type BoltStore struct {
	db     *bolt.DB
	now    func() time.Time
	closed atomic.Bool
}

// NewBoltStore creates the sessions bucket in db if needed.
func NewBoltStore(db *bolt.DB) (*BoltStore, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSessions)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &BoltStore{db: db, now: time.Now}, nil
}

func encodeEntry(data []byte, expiresAt time.Time) []byte {
	buf := make([]byte, 8+len(data))
	binary.BigEndian.PutUint64(buf, uint64(expiresAt.UnixNano()))
	copy(buf[8:], data)
	return buf
}

func decodeExpiry(v []byte) (time.Time, bool) {
	if len(v) < 8 {
		return time.Time{}, false
	}
	return time.Unix(0, int64(binary.BigEndian.Uint64(v))), true
}

func (b *BoltStore) update(fn func(*bolt.Bucket) error) error {
	if b.closed.Load() {
		return ErrStoreClosed{}
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return fn(tx.Bucket(bucketSessions))
	})
}

// Save implements Store.
func (b *BoltStore) Save(ctx context.Context, id string, data []byte, expiresAt time.Time) error {
	return b.update(func(bk *bolt.Bucket) error {
		return bk.Put([]byte(id), encodeEntry(data, expiresAt))
	})
}

// Load implements Store. Expired entries are left for Prune.
func (b *BoltStore) Load(ctx context.Context, id string) ([]byte, error) {
	if b.closed.Load() {
		return nil, ErrStoreClosed{}
	}
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketSessions).Get([]byte(id))
		exp, ok := decodeExpiry(v)
		if !ok || b.now().After(exp) {
			return nil
		}
		// v is only valid inside the transaction.
		out = append([]byte(nil), v[8:]...)
		return nil
	})
	return out, err
}

// Delete implements Store.
func (b *BoltStore) Delete(ctx context.Context, id string) error {
	return b.update(func(bk *bolt.Bucket) error {
		return bk.Delete([]byte(id))
	})
}

// Touch implements Store.
func (b *BoltStore) Touch(ctx context.Context, id string, expiresAt time.Time) error {
	return b.update(func(bk *bolt.Bucket) error {
		v := bk.Get([]byte(id))
		if _, ok := decodeExpiry(v); !ok {
			return nil
		}
		return bk.Put([]byte(id), encodeEntry(v[8:], expiresAt))
	})
}

// Prune deletes expired sessions and reports how many it removed.
func (b *BoltStore) Prune() (int, error) {
	n := 0
	err := b.update(func(bk *bolt.Bucket) error {
		now := b.now()
		var expired [][]byte
		err := bk.ForEach(func(k, v []byte) error {
			if exp, ok := decodeExpiry(v); !ok || now.After(exp) {
				expired = append(expired, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, k := range expired {
			if err := bk.Delete(k); err != nil {
				return err
			}
		}
		n = len(expired)
		return nil
	})
	return n, err
}

// Close marks the store closed. The database stays open.
func (b *BoltStore) Close() error {
	b.closed.Store(true)
	return nil
}
