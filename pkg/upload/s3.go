package upload

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the part of *s3.Client that S3Store uses.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Config describes where S3Store puts objects.
type S3Config struct {
	Bucket string
	Region string

	// Prefix is prepended to every key, e.g. "gallery/".
	Prefix string

	// PublicURL is the base URL objects are served from. It defaults to
	// the bucket's virtual-hosted AWS endpoint.
	PublicURL string

	// MaxSize caps object size; 0 means no limit.
	MaxSize int64
}

// S3Store stores uploads in an S3 bucket.
type S3Store struct {
	client S3API
	config S3Config
}

// NewS3Store returns a store writing through client.
func NewS3Store(client S3API, config S3Config) *S3Store {
	if config.PublicURL == "" {
		config.PublicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", config.Bucket, config.Region)
	}
	config.PublicURL = strings.TrimRight(config.PublicURL, "/")
	return &S3Store{client: client, config: config}
}

// ClientOptions configures NewS3Client.
type ClientOptions struct {
	Region string

	// Endpoint overrides the AWS endpoint, for MinIO and similar.
	Endpoint string

	// AccessKey and SecretKey are static credentials. When empty,
	// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN are
	// read from the environment when first needed.
	AccessKey string
	SecretKey string

	PathStyle bool
}

// NewS3Client builds an S3 client from opts.
func NewS3Client(opts ClientOptions) *s3.Client {
	o := s3.Options{
		Region:       opts.Region,
		UsePathStyle: opts.PathStyle,
		Credentials:  credentials(opts.AccessKey, opts.SecretKey),
	}
	if opts.Endpoint != "" {
		o.BaseEndpoint = aws.String(opts.Endpoint)
	}
	return s3.New(o)
}

func credentials(accessKey, secretKey string) aws.CredentialsProvider {
	return aws.NewCredentialsCache(aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
		creds := aws.Credentials{
			AccessKeyID:     accessKey,
			SecretAccessKey: secretKey,
			Source:          "cafe config",
		}
		if accessKey == "" {
			creds = aws.Credentials{
				AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
				SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
				SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
				Source:          "environment",
			}
		}
		if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
			return aws.Credentials{}, fmt.Errorf("upload: no S3 credentials configured")
		}
		return creds, nil
	}))
}

// Save uploads r as a public object. Keys are the secure file name behind
// a random 8-hex-digit directory, which keeps the original name visible
// without collisions.
func (s *S3Store) Save(ctx context.Context, name, contentType string, r io.Reader) (Object, error) {
	var buf bytes.Buffer
	var reader io.Reader = r
	if s.config.MaxSize > 0 {
		reader = io.LimitReader(r, s.config.MaxSize+1)
	}
	n, err := io.Copy(&buf, reader)
	if err != nil {
		return Object{}, err
	}
	if s.config.MaxSize > 0 && n > s.config.MaxSize {
		return Object{}, ErrTooLarge
	}

	key := s.config.Prefix + randomHex(4) + "/" + SecureFilename(name)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(n),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
		Metadata: map[string]string{
			"original-filename": name,
			"upload-time":       time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return Object{}, fmt.Errorf("upload: s3 put %s: %w", key, err)
	}

	return Object{
		Key:         key,
		URL:         s.config.PublicURL + "/" + key,
		Size:        n,
		ContentType: contentType,
	}, nil
}

// Delete removes the object. S3 does not report missing keys.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	if key == "" || !strings.HasPrefix(key, s.config.Prefix) {
		return ErrNotFound
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("upload: s3 delete %s: %w", key, err)
	}
	return nil
}

// KeyFromURL implements Store.
func (s *S3Store) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, s.config.PublicURL+"/")
	if !ok || key == "" || !strings.HasPrefix(key, s.config.Prefix) {
		return "", false
	}
	return key, true
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("upload: crypto/rand failed: " + err.Error())
	}
	return hex.EncodeToString(b)
}
