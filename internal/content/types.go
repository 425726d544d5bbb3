package content

// Section keys.
const (
	SectionTop          = "top"
	SectionAccess       = "access"
	SectionReservations = "reservations"
	SectionAbout        = "about"
	SectionFeatures     = "features"
)

// SectionKeys lists every editable section in display order.
var SectionKeys = []string{
	SectionTop,
	SectionAccess,
	SectionReservations,
	SectionAbout,
	SectionFeatures,
}

// DefaultIcon is used for feature cards created without an icon.
const DefaultIcon = "fa-mug-hot"

// Section is the copy for one page of the site.
type Section struct {
	ID        int    `json:"id"`
	Key       string `json:"section"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Body      string `json:"body"`
	Highlight string `json:"highlight"`
	Image     string `json:"image"`

	// ExtraInfo holds key=value pairs separated by newlines or '|'.
	// See ParseExtraInfo.
	ExtraInfo string `json:"extra_info"`
}

// SectionInput is the editable part of a Section.
type SectionInput struct {
	Title     string
	Subtitle  string
	Body      string
	Highlight string
	Image     string
	ExtraInfo string
}

// Feature is a highlight card.
type Feature struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// GalleryImage is an uploaded or seeded photo.
type GalleryImage struct {
	ID           int    `json:"id"`
	FilePath     string `json:"file_path"`
	ThumbPath    string `json:"thumb_path,omitempty"`
	Caption      string `json:"caption"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    string `json:"created_at"`
}

// Announcement is a dated news item.
type Announcement struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	PublishedAt string `json:"published_at"`
}

// Snapshot is everything the public pages need, read in one transaction.
type Snapshot struct {
	Contents      map[string]Section `json:"contents"`
	Features      []Feature          `json:"features"`
	Gallery       []GalleryImage     `json:"gallery"`
	Announcements []Announcement     `json:"announcements"`
}

// Stats counts the records shown on the admin dashboard.
type Stats struct {
	GalleryCount      int `json:"gallery_count"`
	FeatureCount      int `json:"feature_count"`
	AnnouncementCount int `json:"announcement_count"`
}

// User is an admin account.
type User struct {
	Username     string `json:"username"`
	PasswordHash []byte `json:"password_hash"`
	CreatedAt    string `json:"created_at"`
}
