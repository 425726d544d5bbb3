package content

import (
	"strings"

	bolt "go.etcd.io/bbolt"
)

// Announcements returns every announcement, newest first.
func (s *Store) Announcements() ([]Announcement, error) {
	var out []Announcement
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		out, err = announcementsIn(tx)
		return err
	})
	return out, err
}

func announcementsIn(tx *bolt.Tx) ([]Announcement, error) {
	items, err := all[Announcement](tx.Bucket([]byte(bucketAnnouncements)))
	if err != nil {
		return nil, err
	}
	sortStable(items, func(a, b Announcement) bool {
		if a.PublishedAt != b.PublishedAt {
			return a.PublishedAt > b.PublishedAt
		}
		return a.ID > b.ID
	})
	return items, nil
}

// AddAnnouncement publishes an announcement now. Title and content are
// required.
func (s *Store) AddAnnouncement(title, content string) (Announcement, error) {
	a := Announcement{
		Title:       strings.TrimSpace(title),
		Content:     strings.TrimSpace(content),
		PublishedAt: s.timestamp(),
	}
	if a.Title == "" || a.Content == "" {
		return Announcement{}, ErrRequired
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return put(tx.Bucket([]byte(bucketAnnouncements)), &a, func(a *Announcement, id int) { a.ID = id })
	})
	return a, err
}

// DeleteAnnouncement removes the announcement with the given id.
func (s *Store) DeleteAnnouncement(id int) error {
	return s.deleteSeq(bucketAnnouncements, id)
}
