package content

import (
	"encoding/json"
	"strings"

	bolt "go.etcd.io/bbolt"
)

// Gallery returns images ordered by display order, newest first within
// the same order. A positive limit caps the result.
func (s *Store) Gallery(limit int) ([]GalleryImage, error) {
	var out []GalleryImage
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		out, err = galleryIn(tx, limit)
		return err
	})
	return out, err
}

func galleryIn(tx *bolt.Tx, limit int) ([]GalleryImage, error) {
	images, err := all[GalleryImage](tx.Bucket([]byte(bucketGallery)))
	if err != nil {
		return nil, err
	}
	sortStable(images, func(a, b GalleryImage) bool {
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}
		if a.CreatedAt != b.CreatedAt {
			return a.CreatedAt > b.CreatedAt
		}
		return a.ID > b.ID
	})
	if limit > 0 && len(images) > limit {
		images = images[:limit]
	}
	return images, nil
}

// GalleryImage returns the image with the given id.
func (s *Store) GalleryImage(id int) (GalleryImage, error) {
	var img GalleryImage
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketGallery)).Get(marshalSeq(uint64(id)))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &img)
	})
	return img, err
}

// AddGalleryImage records an image already saved at filePath. New images
// get display order 0, so they sort ahead of the seeded ones.
func (s *Store) AddGalleryImage(filePath, caption string) (GalleryImage, error) {
	img := GalleryImage{
		FilePath:  strings.TrimSpace(filePath),
		Caption:   strings.TrimSpace(caption),
		CreatedAt: s.timestamp(),
	}
	if img.FilePath == "" {
		return GalleryImage{}, ErrRequired
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return put(tx.Bucket([]byte(bucketGallery)), &img, func(g *GalleryImage, id int) { g.ID = id })
	})
	return img, err
}

// SetGalleryThumb records the thumbnail generated for an image.
func (s *Store) SetGalleryThumb(id int, thumbPath string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketGallery))
		key := marshalSeq(uint64(id))
		v := b.Get(key)
		if v == nil {
			return ErrNotFound
		}
		var img GalleryImage
		if err := json.Unmarshal(v, &img); err != nil {
			return err
		}
		img.ThumbPath = thumbPath
		data, err := json.Marshal(img)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// DeleteGalleryImage removes the image record with the given id. The file
// itself is left to the caller.
func (s *Store) DeleteGalleryImage(id int) error {
	return s.deleteSeq(bucketGallery, id)
}
