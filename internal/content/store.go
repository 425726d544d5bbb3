package content

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	cerrors "github.com/samplecafe/cafe/internal/errors"
)

const (
	bucketSections      = "sections"
	bucketFeatures      = "features"
	bucketGallery       = "gallery"
	bucketAnnouncements = "announcements"
	bucketUsers         = "users"
)

// TimeLayout is how timestamps are stored: ISO 8601 without a zone, in UTC.
const TimeLayout = "2006-01-02T15:04:05"

var (
	// ErrNotFound is returned when a section, record or user does not exist.
	ErrNotFound = errors.New("content: not found")

	// ErrRequired is returned when a required field is empty.
	ErrRequired = errors.New("content: required field missing")
)

var initDB = map[string]func(*bolt.Tx) error{}

func init() {
	for _, name := range []string{bucketSections, bucketFeatures, bucketGallery, bucketAnnouncements, bucketUsers} {
		initDB["initialize "+name+" bucket"] = func(tx *bolt.Tx) error {
			_, err := tx.CreateBucketIfNotExists([]byte(name))
			return err
		}
	}
}

// Store is a bbolt-backed content store. It is safe for concurrent use.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens (creating if needed) the store at path.
func Open(path string, opts ...Option) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, cerrors.New("C200").Wrap(err)
		}
	}
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, cerrors.New("C200").WithDetail("Could not open " + path + ".").Wrap(err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return cerrors.Newf(cerrors.CategoryStore, "%s failed", name).Wrap(err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying database so other stores can keep their own
// buckets in the same file.
func (s *Store) DB() *bolt.DB {
	return s.db
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(TimeLayout)
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

// put stores v under a fresh sequence number and returns it.
func put[T any](b *bolt.Bucket, v *T, setID func(*T, int)) error {
	seq, err := b.NextSequence()
	if err != nil {
		return err
	}
	setID(v, int(seq))
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Put(marshalSeq(seq), data)
}

// all decodes every value in b in key order.
func all[T any](b *bolt.Bucket) ([]T, error) {
	var out []T
	err := b.ForEach(func(_, v []byte) error {
		var item T
		if err := json.Unmarshal(v, &item); err != nil {
			return err
		}
		out = append(out, item)
		return nil
	})
	return out, err
}

// deleteSeq removes id from bucket name. Missing ids are ErrNotFound.
func (s *Store) deleteSeq(name string, id int) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(name))
		key := marshalSeq(uint64(id))
		if b.Get(key) == nil {
			return ErrNotFound
		}
		return b.Delete(key)
	})
}

// Snapshot reads every section and list in one transaction.
func (s *Store) Snapshot() (*Snapshot, error) {
	snap := &Snapshot{Contents: make(map[string]Section)}
	err := s.db.View(func(tx *bolt.Tx) error {
		sections, err := all[Section](tx.Bucket([]byte(bucketSections)))
		if err != nil {
			return err
		}
		for _, sec := range sections {
			snap.Contents[sec.Key] = sec
		}
		if snap.Features, err = all[Feature](tx.Bucket([]byte(bucketFeatures))); err != nil {
			return err
		}
		if snap.Gallery, err = galleryIn(tx, 0); err != nil {
			return err
		}
		snap.Announcements, err = announcementsIn(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Stats counts gallery images, features and announcements.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.View(func(tx *bolt.Tx) error {
		st.GalleryCount = tx.Bucket([]byte(bucketGallery)).Stats().KeyN
		st.FeatureCount = tx.Bucket([]byte(bucketFeatures)).Stats().KeyN
		st.AnnouncementCount = tx.Bucket([]byte(bucketAnnouncements)).Stats().KeyN
		return nil
	})
	return st, err
}

func isEmpty(b *bolt.Bucket) bool {
	k, _ := b.Cursor().First()
	return k == nil
}

func sortStable[T any](items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}
