package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"blogapi/internal/model"
	"blogapi/internal/storage"
)

// Size ceilings enforced before any transfer starts.
const (
	MaxBlogImageSize = 10 << 20
	MaxLogoSize      = 5 << 20
)

// Key prefixes for uploaded objects.
const (
	PrefixBlogImages = "blog-images"
	PrefixLogos      = "logos"
)

const presignExpiry = 15 * time.Minute

var tracer = otel.Tracer("blogapi/service")

// UploadFile is one candidate file with its client-declared metadata.
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// UploadOptions configure where and how a file is uploaded.
type UploadOptions struct {
	Prefix  string
	MaxSize int64
	// AllowSVGName accepts files named *.svg whatever their declared type.
	AllowSVGName bool
	// Progress receives the transferred percentage in [0,100].
	Progress func(percent float64)
}

// BlogImageOptions is the preset for post images.
func BlogImageOptions() UploadOptions {
	return UploadOptions{Prefix: PrefixBlogImages, MaxSize: MaxBlogImageSize}
}

// LogoOptions is the preset for brand assets.
func LogoOptions() UploadOptions {
	return UploadOptions{Prefix: PrefixLogos, MaxSize: MaxLogoSize, AllowSVGName: true}
}

// ObjectMeta describes a stored object.
type ObjectMeta struct {
	storage.ObjectInfo
	URL         string `json:"url"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// UploadService defines the use cases for object uploads.
type UploadService interface {
	// Upload validates the file and stores it. The result mirrors the error:
	// Success is false and Error holds its message whenever err is non-nil.
	Upload(ctx context.Context, f UploadFile, opts UploadOptions) (model.UploadResult, error)

	// UploadMany uploads all files concurrently and partitions the outcomes in input order.
	UploadMany(ctx context.Context, files []UploadFile, opts UploadOptions) model.BulkUploadResult

	// Delete removes an uploaded object.
	Delete(ctx context.Context, key string) error

	// Metadata returns stored object info with its public and presigned URLs.
	Metadata(ctx context.Context, key string) (*ObjectMeta, error)

	// Open streams an object's content.
	Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error)
}

type uploadService struct {
	store storage.Storage
	now   func() time.Time
}

// NewUploadService constructs a new UploadService.
func NewUploadService(store storage.Storage) UploadService {
	return &uploadService{store: store, now: time.Now}
}

// ValidateFile checks the declared type and size of f against opts.
func ValidateFile(f UploadFile, opts UploadOptions) error {
	isImage := strings.HasPrefix(strings.ToLower(f.ContentType), "image/")
	isSVG := opts.AllowSVGName && strings.HasSuffix(strings.ToLower(f.Name), ".svg")
	if !isImage && !isSVG {
		return ErrInvalidFileType
	}
	if opts.MaxSize > 0 && f.Size > opts.MaxSize {
		return fmt.Errorf("%w: maximum size is %dMB", ErrFileTooLarge, opts.MaxSize>>20)
	}
	return nil
}

func (s *uploadService) Upload(ctx context.Context, f UploadFile, opts UploadOptions) (model.UploadResult, error) {
	key := objectKey(opts.Prefix, fmt.Sprintf("%d_%s", s.now().UnixMilli(), cleanName(f.Name)))
	return s.put(ctx, key, f, opts)
}

func (s *uploadService) put(ctx context.Context, key string, f UploadFile, opts UploadOptions) (model.UploadResult, error) {
	fail := func(err error) (model.UploadResult, error) {
		return model.UploadResult{Success: false, Name: f.Name, Error: err.Error()}, err
	}
	if err := ValidateFile(f, opts); err != nil {
		return fail(err)
	}
	if f.Reader == nil {
		return fail(ErrReaderNil)
	}

	ctx, span := tracer.Start(ctx, "upload.put")
	defer span.End()
	span.SetAttributes(
		attribute.String("upload.key", key),
		attribute.Int64("upload.size", f.Size),
		attribute.String("upload.content_type", f.ContentType),
	)

	putOpts := storage.PutObjectOptions{
		Size:        f.Size,
		ContentType: f.ContentType,
		Metadata:    map[string]string{"original-filename": f.Name},
	}
	if opts.Progress != nil && f.Size > 0 {
		total := float64(f.Size)
		report := opts.Progress
		putOpts.Progress = func(sent int64) {
			pct := float64(sent) / total * 100
			if pct > 100 {
				pct = 100
			}
			report(pct)
		}
		report(0)
	}

	info, err := s.store.Put(ctx, key, f.Reader, putOpts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fail(err)
	}
	return model.UploadResult{
		Success: true,
		URL:     s.store.PublicURL(info.Key),
		Key:     info.Key,
		Name:    f.Name,
	}, nil
}

func (s *uploadService) UploadMany(ctx context.Context, files []UploadFile, opts UploadOptions) model.BulkUploadResult {
	results := make([]model.UploadResult, len(files))
	millis := s.now().UnixMilli()

	// Failures are recorded per file; the group never cancels siblings.
	var g errgroup.Group
	for i, f := range files {
		i, f := i, f
		key := objectKey(opts.Prefix, fmt.Sprintf("%d_%d_%s", millis, i, cleanName(f.Name)))
		g.Go(func() error {
			fileOpts := opts
			fileOpts.Progress = nil
			results[i], _ = s.put(ctx, key, f, fileOpts)
			return nil
		})
	}
	_ = g.Wait()

	out := model.BulkUploadResult{
		Successful: []model.UploadResult{},
		Failed:     []model.UploadResult{},
		Total:      len(files),
	}
	for _, r := range results {
		if r.Success {
			out.Successful = append(out.Successful, r)
		} else {
			out.Failed = append(out.Failed, r)
		}
	}
	out.Success = len(out.Failed) == 0
	return out
}

func (s *uploadService) Delete(ctx context.Context, key string) error {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return ErrKeyRequired
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return nil
}

func (s *uploadService) Metadata(ctx context.Context, key string) (*ObjectMeta, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return nil, ErrKeyRequired
	}
	info, err := s.store.Stat(ctx, key)
	if err != nil {
		return nil, err
	}
	meta := &ObjectMeta{ObjectInfo: info, URL: s.store.PublicURL(key)}
	if dl, err := s.store.PresignGet(ctx, key, presignExpiry); err == nil {
		meta.DownloadURL = dl
	}
	return meta, nil
}

func (s *uploadService) Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return nil, storage.ObjectInfo{}, ErrKeyRequired
	}
	return s.store.Get(ctx, key)
}

func objectKey(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return strings.TrimRight(prefix, "/") + "/" + name
}

// cleanName keeps the base name of a client filename.
func cleanName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return name
}
