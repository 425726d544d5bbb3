package content

import (
	"strings"

	bolt "go.etcd.io/bbolt"
)

// Features returns every feature card in creation order.
func (s *Store) Features() ([]Feature, error) {
	var out []Feature
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		out, err = all[Feature](tx.Bucket([]byte(bucketFeatures)))
		return err
	})
	return out, err
}

// AddFeature creates a feature card. Title and description are required;
// an empty icon becomes DefaultIcon.
func (s *Store) AddFeature(title, description, icon string) (Feature, error) {
	f := Feature{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Icon:        strings.TrimSpace(icon),
	}
	if f.Title == "" || f.Description == "" {
		return Feature{}, ErrRequired
	}
	if f.Icon == "" {
		f.Icon = DefaultIcon
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return put(tx.Bucket([]byte(bucketFeatures)), &f, func(f *Feature, id int) { f.ID = id })
	})
	return f, err
}

// DeleteFeature removes the feature with the given id.
func (s *Store) DeleteFeature(id int) error {
	return s.deleteSeq(bucketFeatures, id)
}
