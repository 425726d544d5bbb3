package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DiskStore keeps uploads in a directory served under urlPrefix.
type DiskStore struct {
	dir       string
	urlPrefix string
	maxSize   int64
}

// NewDiskStore creates dir if needed. maxSize of 0 means no limit.
func NewDiskStore(dir, urlPrefix string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{
		dir:       dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		maxSize:   maxSize,
	}, nil
}

// Dir returns the directory files are written to.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Save writes r to a new file named after name. If the name is taken,
// "_1", "_2", ... is appended to the base name until it is not.
func (s *DiskStore) Save(ctx context.Context, name, contentType string, r io.Reader) (Object, error) {
	f, key, err := s.create(SecureFilename(name))
	if err != nil {
		return Object{}, err
	}
	full := filepath.Join(s.dir, key)

	var reader io.Reader = r
	if s.maxSize > 0 {
		// One extra byte tells a file of exactly maxSize from a larger one.
		reader = io.LimitReader(r, s.maxSize+1)
	}
	written, err := io.Copy(f, reader)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && s.maxSize > 0 && written > s.maxSize {
		err = ErrTooLarge
	}
	if err != nil {
		os.Remove(full)
		return Object{}, err
	}

	return Object{
		Key:         key,
		URL:         s.urlPrefix + "/" + key,
		Size:        written,
		ContentType: contentType,
	}, nil
}

// create opens the first free variant of name with O_EXCL, so concurrent
// saves of the same name never share a file.
func (s *DiskStore) create(name string) (*os.File, string, error) {
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	candidate := name
	for i := 1; ; i++ {
		f, err := os.OpenFile(filepath.Join(s.dir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, candidate, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", err
		}
		if i > 10000 {
			return nil, "", fmt.Errorf("upload: no free name for %q", name)
		}
		candidate = fmt.Sprintf("%s_%d%s", base, i, ext)
	}
}

// Delete removes the file with the given key.
func (s *DiskStore) Delete(ctx context.Context, key string) error {
	if key == "" || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return ErrNotFound
	}
	err := os.Remove(filepath.Join(s.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// KeyFromURL implements Store.
func (s *DiskStore) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, s.urlPrefix+"/")
	if !ok || key == "" || strings.ContainsAny(key, "/\\") {
		return "", false
	}
	return key, true
}
