package upload

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"path"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ThumbnailQuality is the JPEG quality of generated thumbnails.
const ThumbnailQuality = 82

// Thumbnail decodes an image from r and returns a JPEG no wider than
// maxWidth. Smaller images keep their size but are still re-encoded.
// Transparent areas come out white.
func Thumbnail(r io.Reader, maxWidth int) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("upload: decode image: %w", err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("upload: empty image")
	}
	if maxWidth > 0 && w > maxWidth {
		h = max(1, h*maxWidth/w)
		w = maxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: ThumbnailQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ThumbnailName is the file name a thumbnail of name is saved under.
func ThumbnailName(name string) string {
	name = SecureFilename(name)
	return "thumb_" + strings.TrimSuffix(name, path.Ext(name)) + ".jpg"
}
