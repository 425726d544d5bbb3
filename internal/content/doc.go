// Package content is the café CMS store.
//
// Sections, feature cards, gallery images, announcements and the admin
// account live in one bbolt file. Records are JSON-encoded with the same
// field names the public API serves, so handlers can pass them through
// unchanged.
//
//	s, err := content.Open("data/cafe.db")
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//	if err := s.Seed(false); err != nil {
//	    return err
//	}
//	top, err := s.Section(content.SectionTop)
package content
