package content

import (
	"encoding/json"

	bolt "go.etcd.io/bbolt"
)

// Section returns the section stored under key.
func (s *Store) Section(key string) (Section, error) {
	var sec Section
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketSections)).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &sec)
	})
	return sec, err
}

// Sections returns every section ordered by key.
func (s *Store) Sections() ([]Section, error) {
	var out []Section
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		out, err = all[Section](tx.Bucket([]byte(bucketSections)))
		return err
	})
	return out, err
}

// UpdateSection replaces the editable fields of an existing section.
// Sections cannot be created this way; an unknown key is ErrNotFound.
func (s *Store) UpdateSection(key string, in SectionInput) (Section, error) {
	var sec Section
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSections))
		v := b.Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		if err := json.Unmarshal(v, &sec); err != nil {
			return err
		}
		sec.Title = in.Title
		sec.Subtitle = in.Subtitle
		sec.Body = in.Body
		sec.Highlight = in.Highlight
		sec.Image = in.Image
		sec.ExtraInfo = in.ExtraInfo
		data, err := json.Marshal(sec)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
	return sec, err
}

// insertSection stores sec unless its key already exists.
func insertSection(tx *bolt.Tx, sec Section) error {
	b := tx.Bucket([]byte(bucketSections))
	if b.Get([]byte(sec.Key)) != nil {
		return nil
	}
	seq, err := b.NextSequence()
	if err != nil {
		return err
	}
	sec.ID = int(seq)
	data, err := json.Marshal(sec)
	if err != nil {
		return err
	}
	return b.Put([]byte(sec.Key), data)
}
