package upload

import (
	"bytes"
	"image/jpeg"
	"strings"
	"testing"
)

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name         string
		w, h, max    int
		wantW, wantH int
	}{
		{"scaled", 200, 100, 50, 50, 25},
		{"small kept", 30, 20, 50, 30, 20},
		{"no limit", 30, 20, 0, 30, 20},
		{"thin", 400, 1, 100, 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Thumbnail(bytes.NewReader(pngBytes(t, tt.w, tt.h)), tt.max)
			if err != nil {
				t.Fatal(err)
			}
			cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
			if err != nil {
				t.Fatalf("output is not a JPEG: %v", err)
			}
			if cfg.Width != tt.wantW || cfg.Height != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, tt.wantW, tt.wantH)
			}
		})
	}

	if _, err := Thumbnail(strings.NewReader("not an image"), 10); err == nil {
		t.Error("Thumbnail accepted garbage")
	}
}

func TestThumbnailName(t *testing.T) {
	if got := ThumbnailName("My Cake.PNG"); got != "thumb_My_Cake.jpg" {
		t.Errorf("ThumbnailName = %q", got)
	}
}
