package content

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// fakeClock returns successive minutes starting at a fixed instant.
func fakeClock() func() time.Time {
	t := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sub", "cafe.db"), WithClock(fakeClock()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSeed(t *testing.T) {
	s := openTestStore(t)
	if err := s.Seed(false); err != nil {
		t.Fatal(err)
	}
	// Seeding twice must not duplicate anything.
	if err := s.Seed(false); err != nil {
		t.Fatal(err)
	}

	sections, err := s.Sections()
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != len(SectionKeys) {
		t.Errorf("got %d sections, want %d", len(sections), len(SectionKeys))
	}
	st, err := s.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Stats{GalleryCount: 3, FeatureCount: 3, AnnouncementCount: 1}, st); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}

	top, err := s.Section(SectionTop)
	if err != nil {
		t.Fatal(err)
	}
	if top.Title != "Sample Cafe へようこそ" || top.Image != "/static/images/hero.svg" {
		t.Errorf("top = %+v", top)
	}
}

func TestSeedForce(t *testing.T) {
	s := openTestStore(t)
	if err := s.Seed(false); err != nil {
		t.Fatal(err)
	}
	if _, err := s.UpdateSection(SectionTop, SectionInput{Title: "edited"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddFeature("extra", "card", ""); err != nil {
		t.Fatal(err)
	}

	if err := s.Seed(true); err != nil {
		t.Fatal(err)
	}
	top, _ := s.Section(SectionTop)
	if top.Title == "edited" {
		t.Error("forced seed kept the edited section")
	}
	features, _ := s.Features()
	if len(features) != 3 {
		t.Errorf("got %d features after forced seed, want 3", len(features))
	}
}

func TestUpdateSection(t *testing.T) {
	s := openTestStore(t)
	if err := s.Seed(false); err != nil {
		t.Fatal(err)
	}

	in := SectionInput{
		Title:     "Access",
		Subtitle:  "sub",
		Body:      "body",
		Highlight: "9-5",
		Image:     "/x.png",
		ExtraInfo: "a=b",
	}
	got, err := s.UpdateSection(SectionAccess, in)
	if err != nil {
		t.Fatal(err)
	}
	reread, err := s.Section(SectionAccess)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(got, reread); diff != "" {
		t.Errorf("reread mismatch (-returned +stored):\n%s", diff)
	}
	if reread.Key != SectionAccess || reread.ID == 0 || reread.ExtraInfo != "a=b" {
		t.Errorf("section = %+v", reread)
	}

	if _, err := s.UpdateSection("menu", in); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateSection(unknown) = %v, want ErrNotFound", err)
	}
	if _, err := s.Section("menu"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Section(unknown) = %v, want ErrNotFound", err)
	}
}

func TestFeatures(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.AddFeature("", "desc", ""); !errors.Is(err, ErrRequired) {
		t.Errorf("AddFeature without title = %v, want ErrRequired", err)
	}
	if _, err := s.AddFeature("title", "  ", ""); !errors.Is(err, ErrRequired) {
		t.Errorf("AddFeature without description = %v, want ErrRequired", err)
	}

	a, err := s.AddFeature("Latte", "Art", "")
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.AddFeature("Beans", "Fresh", "fa-leaf")
	if err != nil {
		t.Fatal(err)
	}
	if a.Icon != DefaultIcon {
		t.Errorf("default icon = %q, want %q", a.Icon, DefaultIcon)
	}

	got, err := s.Features()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Feature{a, b}, got); diff != "" {
		t.Errorf("Features mismatch (-want +got):\n%s", diff)
	}

	if err := s.DeleteFeature(a.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteFeature(a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
	if err := s.DeleteFeature(0); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteFeature(0) = %v, want ErrNotFound", err)
	}
	got, _ = s.Features()
	if diff := cmp.Diff([]Feature{b}, got); diff != "" {
		t.Errorf("after delete (-want +got):\n%s", diff)
	}
}

func TestGalleryOrder(t *testing.T) {
	s := openTestStore(t)
	if err := s.Seed(false); err != nil {
		t.Fatal(err)
	}
	first, err := s.AddGalleryImage("/static/uploads/a.png", "a")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.AddGalleryImage("/static/uploads/b.png", "b")
	if err != nil {
		t.Fatal(err)
	}

	images, err := s.Gallery(0)
	if err != nil {
		t.Fatal(err)
	}
	var paths []string
	for _, img := range images {
		paths = append(paths, img.FilePath)
	}
	want := []string{
		second.FilePath, // order 0, newest
		first.FilePath,
		"/static/images/gallery1.svg",
		"/static/images/gallery2.svg",
		"/static/images/gallery3.svg",
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("gallery order (-want +got):\n%s", diff)
	}

	limited, err := s.Gallery(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 || limited[0].ID != second.ID {
		t.Errorf("Gallery(2) = %+v", limited)
	}

	if err := s.SetGalleryThumb(first.ID, "/static/uploads/thumb_a.jpg"); err != nil {
		t.Fatal(err)
	}
	got, err := s.GalleryImage(first.ID)
	if err != nil || got.Caption != "a" || got.ThumbPath != "/static/uploads/thumb_a.jpg" {
		t.Errorf("GalleryImage = %+v, %v", got, err)
	}
	if err := s.SetGalleryThumb(999, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetGalleryThumb(missing) = %v, want ErrNotFound", err)
	}
	if err := s.DeleteGalleryImage(first.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GalleryImage(first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted image lookup = %v, want ErrNotFound", err)
	}
	if _, err := s.AddGalleryImage(" ", "x"); !errors.Is(err, ErrRequired) {
		t.Errorf("empty path = %v, want ErrRequired", err)
	}
}

func TestAnnouncements(t *testing.T) {
	s := openTestStore(t)
	older, err := s.AddAnnouncement("Old", "news")
	if err != nil {
		t.Fatal(err)
	}
	newer, err := s.AddAnnouncement("New", "news")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddAnnouncement("", "x"); !errors.Is(err, ErrRequired) {
		t.Errorf("missing title = %v, want ErrRequired", err)
	}

	got, err := s.Announcements()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Announcement{newer, older}, got); diff != "" {
		t.Errorf("Announcements (-want +got):\n%s", diff)
	}
	if older.PublishedAt != "2024-05-01T09:01:00" {
		t.Errorf("PublishedAt = %q", older.PublishedAt)
	}

	if err := s.DeleteAnnouncement(newer.ID); err != nil {
		t.Fatal(err)
	}
	got, _ = s.Announcements()
	if len(got) != 1 || got[0].ID != older.ID {
		t.Errorf("after delete = %+v", got)
	}
}

func TestSnapshot(t *testing.T) {
	s := openTestStore(t)
	if err := s.Seed(false); err != nil {
		t.Fatal(err)
	}
	snap, err := s.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range SectionKeys {
		if _, ok := snap.Contents[key]; !ok {
			t.Errorf("snapshot missing section %q", key)
		}
	}
	if len(snap.Features) != 3 || len(snap.Gallery) != 3 || len(snap.Announcements) != 1 {
		t.Errorf("snapshot lists = %d/%d/%d", len(snap.Features), len(snap.Gallery), len(snap.Announcements))
	}
}

func TestAdminAccount(t *testing.T) {
	s := openTestStore(t)

	created, err := s.EnsureAdmin("admin", "admin1234")
	if err != nil || !created {
		t.Fatalf("EnsureAdmin = %v, %v", created, err)
	}
	created, err = s.EnsureAdmin("other", "whatever1")
	if err != nil || created {
		t.Fatalf("second EnsureAdmin = %v, %v; want no new account", created, err)
	}

	if _, err := s.Authenticate("admin", "admin1234"); err != nil {
		t.Errorf("Authenticate good = %v", err)
	}
	if _, err := s.Authenticate("admin", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Authenticate wrong password = %v", err)
	}
	if _, err := s.Authenticate("other", "whatever1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Authenticate unknown user = %v", err)
	}

	if err := s.SetPassword("admin", "short"); err == nil {
		t.Error("SetPassword accepted a short password")
	}
	if err := s.SetPassword("admin", "a-new-password"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Authenticate("admin", "admin1234"); err == nil {
		t.Error("old password still works")
	}
	u, err := s.Authenticate("admin", "a-new-password")
	if err != nil {
		t.Fatal(err)
	}
	if u.CreatedAt != "2024-05-01T09:01:00" {
		t.Errorf("SetPassword reset CreatedAt to %q", u.CreatedAt)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cafe.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	f, err := s.AddFeature("kept", "across reopen", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen after close: %v", err)
	}
	defer again.Close()
	got, err := again.Features()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Feature{f}, got); diff != "" {
		t.Errorf("after reopen (-want +got):\n%s", diff)
	}
}

func TestParseExtraInfo(t *testing.T) {
	tests := []struct {
		in   string
		want map[string]string
	}{
		{"", map[string]string{}},
		{"cta=Webで予約する|link=#", map[string]string{"cta": "Webで予約する", "link": "#"}},
		{"住所=x\r\n電話=000\n定休日=なし", map[string]string{"住所": "x", "電話": "000", "定休日": "なし"}},
		{" a = b=c ", map[string]string{"a": "b=c"}},
		{"noequals|=novalue|k=", map[string]string{"k": ""}},
		{"k=1|k=2", map[string]string{"k": "2"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ParseExtraInfo(tt.in)); diff != "" {
			t.Errorf("ParseExtraInfo(%q) (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"2024-05-01T09:00:00", "2024-05-01 09:00"},
		{"2024-05-01T09:00:00.123456", "2024-05-01 09:00"},
		{"2024-05-08T12:30:00Z", "2024-05-08 12:30"},
		{"2024-05-10", "2024-05-10 00:00"},
		{"someday T later", "someday   later"},
	}
	for _, tt := range tests {
		if got := FormatDateTime(tt.in); got != tt.want {
			t.Errorf("FormatDateTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
