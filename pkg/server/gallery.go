package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/samplecafe/cafe/internal/content"
	"github.com/samplecafe/cafe/internal/routes"
	"github.com/samplecafe/cafe/pkg/session"
	"github.com/samplecafe/cafe/pkg/upload"
)

func (s *Server) galleryManager(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	images, err := s.content.Gallery(0)
	if err != nil {
		s.storeFailed(w, r, err)
		return
	}
	s.renderAdmin(w, r, http.StatusOK, s.adminView(r, sess).Gallery(images, s.config.MaxUploadBytes))
}

// galleryPost handles both the multipart upload form and the url-encoded
// delete forms.
func (s *Server) galleryPost(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		if !s.parseForm(w, r, sess) {
			return
		}
		if r.PostFormValue("action") == "delete" {
			s.deleteGalleryImage(w, r, sess)
			return
		}
		http.Redirect(w, r, routes.AdminGallery, http.StatusSeeOther)
		return
	}

	rec, err := upload.Receive(w, r, "image", s.config.MaxUploadBytes)
	if errors.Is(err, upload.ErrTooLarge) {
		// The form could not be read, so there is no token to check and
		// nothing is changed.
		s.uploadRejected(w, r, sess, err)
		return
	}
	if !s.checkCSRF(w, r, sess) {
		return
	}
	if err != nil {
		s.uploadRejected(w, r, sess, err)
		return
	}
	s.storeUpload(w, r, sess, rec, strings.TrimSpace(r.PostFormValue("caption")))
}

func (s *Server) uploadRejected(w http.ResponseWriter, r *http.Request, sess *session.Session, err error) {
	var result, kind, message string
	switch {
	case errors.Is(err, upload.ErrTooLarge):
		result, kind = "too_large", "warning"
		message = fmt.Sprintf("ファイルサイズは %d MB までです。", s.config.MaxUploadBytes>>20)
	case errors.Is(err, upload.ErrNotAllowed):
		result, kind = "not_allowed", "warning"
		message = "png / jpg / jpeg / gif / webp の画像を選択してください。"
	case errors.Is(err, upload.ErrNoFile):
		result, kind = "no_file", "warning"
		message = "画像ファイルを選択してください。"
	default:
		result, kind = "error", "danger"
		message = "画像を保存できませんでした。"
		s.logger.Error("upload failed", "user", sess.User, "error", err)
	}
	s.metrics.Upload(result)
	s.flashRedirect(w, r, sess, kind, message, routes.AdminGallery)
}

func (s *Server) storeUpload(w http.ResponseWriter, r *http.Request, sess *session.Session, rec *upload.Received, caption string) {
	ctx := r.Context()
	if s.uploads == nil {
		s.uploadRejected(w, r, sess, errors.New("uploads are disabled"))
		return
	}

	obj, err := s.uploads.Save(ctx, rec.Filename, rec.ContentType, bytes.NewReader(rec.Data))
	if err != nil {
		s.uploadRejected(w, r, sess, err)
		return
	}
	img, err := s.content.AddGalleryImage(obj.URL, caption)
	if err != nil {
		if derr := s.uploads.Delete(ctx, obj.Key); derr != nil {
			s.logger.Warn("remove orphaned upload", "key", obj.Key, "error", derr)
		}
		s.uploadRejected(w, r, sess, err)
		return
	}
	if s.config.ThumbWidth > 0 {
		s.storeThumbnail(ctx, img, rec)
	}

	s.logger.Info("gallery image added", "id", img.ID, "url", obj.URL, "size", obj.Size, "user", sess.User)
	s.metrics.Upload("ok")
	s.flashRedirect(w, r, sess, "success", "ギャラリーを更新しました。", routes.AdminGallery)
}

// storeThumbnail saves a scaled copy of rec beside it. Failures only cost
// the thumbnail; pages fall back to the original.
func (s *Server) storeThumbnail(ctx context.Context, img content.GalleryImage, rec *upload.Received) {
	data, err := upload.Thumbnail(bytes.NewReader(rec.Data), s.config.ThumbWidth)
	if err != nil {
		s.logger.Warn("thumbnail", "id", img.ID, "error", err)
		return
	}
	obj, err := s.uploads.Save(ctx, upload.ThumbnailName(rec.Filename), "image/jpeg", bytes.NewReader(data))
	if err != nil {
		s.logger.Warn("save thumbnail", "id", img.ID, "error", err)
		return
	}
	if err := s.content.SetGalleryThumb(img.ID, obj.URL); err != nil {
		s.logger.Warn("record thumbnail", "id", img.ID, "error", err)
	}
}

func (s *Server) deleteGalleryImage(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id, err := strconv.Atoi(r.PostFormValue("image_id"))
	if err != nil {
		id = 0
	}
	img, err := s.content.GalleryImage(id)
	if errors.Is(err, content.ErrNotFound) {
		s.flashRedirect(w, r, sess, "warning", "対象が見つかりません。", routes.AdminGallery)
		return
	}
	if err != nil {
		s.storeFailed(w, r, err)
		return
	}
	if err := s.content.DeleteGalleryImage(id); err != nil {
		s.storeFailed(w, r, err)
		return
	}
	s.removeFiles(r.Context(), img.FilePath, img.ThumbPath)

	s.logger.Info("gallery image deleted", "id", id, "user", sess.User)
	s.flashRedirect(w, r, sess, "info", "画像を削除しました。", routes.AdminGallery)
}

// removeFiles deletes uploaded objects by URL. Seeded images are not in
// the upload store and are skipped.
func (s *Server) removeFiles(ctx context.Context, urls ...string) {
	if s.uploads == nil {
		return
	}
	for _, u := range urls {
		key, ok := s.uploads.KeyFromURL(u)
		if u == "" || !ok {
			continue
		}
		if err := s.uploads.Delete(ctx, key); err != nil {
			s.logger.Warn("delete upload", "key", key, "error", err)
		}
	}
}
