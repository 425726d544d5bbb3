package upload

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path"
	"regexp"
	"strings"
	"unicode"
)

var (
	// ErrTooLarge is returned when a file exceeds the size limit.
	ErrTooLarge = errors.New("upload: file too large")

	// ErrNoFile is returned when the form has no file, or an empty one.
	ErrNoFile = errors.New("upload: no file provided")

	// ErrNotAllowed is returned for extensions or content outside the
	// allow list.
	ErrNotAllowed = errors.New("upload: file type not allowed")

	// ErrNotFound is returned when deleting an object the store does not
	// own.
	ErrNotFound = errors.New("upload: not found")
)

// AllowedExtensions are the accepted image extensions, lower case and
// without the dot.
var AllowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// Store is implemented by upload backends.
type Store interface {
	// Save stores the content of r under a name derived from name and
	// returns where it ended up.
	Save(ctx context.Context, name, contentType string, r io.Reader) (Object, error)

	// Delete removes the object with the given key. Missing objects are
	// not an error.
	Delete(ctx context.Context, key string) error

	// KeyFromURL maps a URL returned in Object.URL back to its key. It
	// reports false for URLs the store did not produce.
	KeyFromURL(url string) (string, bool)
}

// Object is a stored file.
type Object struct {
	// Key identifies the object within its store.
	Key string

	// URL is where browsers can fetch it.
	URL string

	Size        int64
	ContentType string
}

// Allowed reports whether filename has an allowed extension.
func Allowed(filename string) bool {
	return AllowedExtensions[Ext(filename)]
}

// Ext returns the lower-cased extension of filename without the dot.
func Ext(filename string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SecureFilename reduces name to a safe ASCII file name. Directory parts
// are dropped, whitespace becomes "_", other unsafe characters are removed
// and leading dots are trimmed. The extension is kept lower-cased; when
// nothing of the base name survives, "image" stands in for it.
func SecureFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	ext := unsafeChars.ReplaceAllString(Ext(name), "")
	base := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, strings.TrimSuffix(name, path.Ext(name)))
	base = strings.Trim(unsafeChars.ReplaceAllString(base, ""), "._")
	if base == "" {
		base = "image"
	}
	if ext == "" {
		return base
	}
	return base + "." + ext
}

// Received is a file read from a request.
type Received struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Receive reads the multipart file field from r. The whole request body is
// capped at maxBytes plus room for the other form fields, and the file
// itself at maxBytes.
func Receive(w http.ResponseWriter, r *http.Request, field string, maxBytes int64) (*Received, error) {
	if maxBytes <= 0 {
		maxBytes = 16 << 20
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1<<20)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) || strings.Contains(err.Error(), "request body too large") {
			return nil, ErrTooLarge
		}
		return nil, ErrNoFile
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, ErrNoFile
	}
	defer file.Close()

	if header.Filename == "" {
		return nil, ErrNoFile
	}
	if !Allowed(header.Filename) {
		return nil, ErrNotAllowed
	}

	data, err := readLimited(file, maxBytes)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrNoFile
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAllowed
	}
	return &Received{Filename: header.Filename, ContentType: contentType, Data: data}, nil
}

// readLimited reads r fully, failing with ErrTooLarge past max bytes.
func readLimited(r io.Reader, max int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > max {
		return nil, ErrTooLarge
	}
	return data, nil
}
