// Package upload stores gallery images on disk or in S3.
//
// Receive reads one image from a multipart form. It enforces the size
// limit before parsing, checks the file extension against
// AllowedExtensions and checks the sniffed content type (the client's
// Content-Type header is not trusted). It then hands the bytes to a Store:
//
//	rec, err := upload.Receive(w, r, "image", 16<<20)
//	if err != nil {
//	    // ErrTooLarge, ErrNoFile or ErrNotAllowed
//	}
//	obj, err := store.Save(ctx, rec.Filename, rec.ContentType, bytes.NewReader(rec.Data))
//
// DiskStore writes into a directory that is served statically and never
// overwrites an existing file: a second "latte.png" becomes "latte_1.png".
// S3Store puts objects under a key prefix and returns their public URL.
//
// Thumbnail scales an image down to a maximum width and encodes it as
// JPEG. It understands png, jpeg, gif and webp.
package upload
