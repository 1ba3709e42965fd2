package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogapi/internal/storage"
	storeMocks "blogapi/internal/storage/mocks"
)

func newTestUploadService(store storage.Storage) *uploadService {
	return &uploadService{store: store, now: func() time.Time { return time.UnixMilli(1700000000000) }}
}

func TestValidateFile(t *testing.T) {
	tests := []struct {
		name    string
		file    UploadFile
		opts    UploadOptions
		wantErr error
	}{
		{"image within limit", UploadFile{Name: "a.png", ContentType: "image/png", Size: 1 << 20}, BlogImageOptions(), nil},
		{"pdf rejected", UploadFile{Name: "doc.pdf", ContentType: "application/pdf", Size: 10}, BlogImageOptions(), ErrInvalidFileType},
		{"blog image over 10MB", UploadFile{Name: "big.jpg", ContentType: "image/jpeg", Size: 10<<20 + 1}, BlogImageOptions(), ErrFileTooLarge},
		{"blog image exactly 10MB", UploadFile{Name: "ok.jpg", ContentType: "image/jpeg", Size: 10 << 20}, BlogImageOptions(), nil},
		{"logo over 5MB", UploadFile{Name: "logo.png", ContentType: "image/png", Size: 6 << 20}, LogoOptions(), ErrFileTooLarge},
		{"svg by name for logos", UploadFile{Name: "brand.SVG", ContentType: "application/octet-stream", Size: 100}, LogoOptions(), nil},
		{"svg by name not for posts", UploadFile{Name: "brand.svg", ContentType: "application/octet-stream", Size: 100}, BlogImageOptions(), ErrInvalidFileType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFile(tt.file, tt.opts)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestUploadService_Upload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		file       UploadFile
		opts       *UploadOptions
		setupMocks func(mStore *storeMocks.MockStorage)
		wantErr    error
		wantErrMsg string
		check      func(t *testing.T, mStore *storeMocks.MockStorage)
	}{
		{
			name: "happy path",
			file: UploadFile{Name: "cover.png", ContentType: "image/png", Size: 4, Reader: strings.NewReader("png!")},
			setupMocks: func(mStore *storeMocks.MockStorage) {
				mStore.On("Put", mock.Anything, "blog-images/1700000000000_cover.png", mock.Anything, mock.MatchedBy(func(o storage.PutObjectOptions) bool {
					return o.Size == 4 && o.ContentType == "image/png"
				})).Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
					return storage.ObjectInfo{Key: key, Size: opt.Size}
				}, nil)
				mStore.On("PublicURL", "blog-images/1700000000000_cover.png").
					Return("https://cdn.example.com/blog-images/1700000000000_cover.png")
			},
		},
		{
			name:       "invalid type makes no storage call",
			file:       UploadFile{Name: "doc.pdf", ContentType: "application/pdf", Size: 10, Reader: strings.NewReader("x")},
			setupMocks: func(mStore *storeMocks.MockStorage) {},
			wantErr:    ErrInvalidFileType,
			check: func(t *testing.T, mStore *storeMocks.MockStorage) {
				mStore.AssertNumberOfCalls(t, "Put", 0)
			},
		},
		{
			name:       "too large makes no storage call",
			file:       UploadFile{Name: "big.png", ContentType: "image/png", Size: 11 << 20, Reader: strings.NewReader("x")},
			setupMocks: func(mStore *storeMocks.MockStorage) {},
			wantErr:    ErrFileTooLarge,
			check: func(t *testing.T, mStore *storeMocks.MockStorage) {
				mStore.AssertNumberOfCalls(t, "Put", 0)
			},
		},
		{
			name:       "6MB logo against the 5MB ceiling makes no storage call",
			file:       UploadFile{Name: "logo.png", ContentType: "image/png", Size: 6 << 20, Reader: strings.NewReader("x")},
			opts:       func() *UploadOptions { o := LogoOptions(); return &o }(),
			setupMocks: func(mStore *storeMocks.MockStorage) {},
			wantErr:    ErrFileTooLarge,
			check: func(t *testing.T, mStore *storeMocks.MockStorage) {
				mStore.AssertNumberOfCalls(t, "Put", 0)
			},
		},
		{
			name:       "nil reader",
			file:       UploadFile{Name: "a.png", ContentType: "image/png", Size: 1},
			setupMocks: func(mStore *storeMocks.MockStorage) {},
			wantErr:    ErrReaderNil,
		},
		{
			name: "storage error is reported, not retried",
			file: UploadFile{Name: "a.png", ContentType: "image/png", Size: 1, Reader: strings.NewReader("x")},
			setupMocks: func(mStore *storeMocks.MockStorage) {
				mStore.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("quota exceeded")).Once()
			},
			wantErrMsg: "quota exceeded",
			check: func(t *testing.T, mStore *storeMocks.MockStorage) {
				mStore.AssertNumberOfCalls(t, "Put", 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			tt.setupMocks(mStore)
			s := newTestUploadService(mStore)

			opts := BlogImageOptions()
			if tt.opts != nil {
				opts = *tt.opts
			}
			res, err := s.Upload(ctx, tt.file, opts)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, res.Success)
				assert.Equal(t, err.Error(), res.Error)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.False(t, res.Success)
				assert.Equal(t, tt.wantErrMsg, res.Error)
			default:
				require.NoError(t, err)
				assert.True(t, res.Success)
				assert.Equal(t, "https://cdn.example.com/blog-images/1700000000000_cover.png", res.URL)
				assert.Equal(t, "blog-images/1700000000000_cover.png", res.Key)
			}
			if tt.check != nil {
				tt.check(t, mStore)
			}
			mStore.AssertExpectations(t)
		})
	}
}

func TestUploadService_Progress(t *testing.T) {
	mStore := new(storeMocks.MockStorage)
	mStore.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
			opt.Progress(50)
			opt.Progress(100)
			return storage.ObjectInfo{Key: key}
		}, nil)
	mStore.On("PublicURL", mock.Anything).Return("https://cdn.example.com/x")

	var got []float64
	opts := BlogImageOptions()
	opts.Progress = func(p float64) { got = append(got, p) }

	_, err := newTestUploadService(mStore).Upload(context.Background(),
		UploadFile{Name: "a.png", ContentType: "image/png", Size: 200, Reader: strings.NewReader("x")}, opts)

	require.NoError(t, err)
	assert.Equal(t, []float64{0, 25, 50}, got)
}

func TestUploadService_UploadMany(t *testing.T) {
	mStore := new(storeMocks.MockStorage)
	var mu sync.Mutex
	var keys []string
	mStore.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
			mu.Lock()
			keys = append(keys, key)
			mu.Unlock()
			return storage.ObjectInfo{Key: key}
		}, nil)
	mStore.On("PublicURL", mock.Anything).Return("https://cdn.example.com/x")

	files := []UploadFile{
		{Name: "a.png", ContentType: "image/png", Size: 1, Reader: strings.NewReader("a")},
		{Name: "notes.txt", ContentType: "text/plain", Size: 1, Reader: strings.NewReader("b")},
		{Name: "c.jpg", ContentType: "image/jpeg", Size: 1, Reader: strings.NewReader("c")},
	}

	res := newTestUploadService(mStore).UploadMany(context.Background(), files, BlogImageOptions())

	assert.False(t, res.Success)
	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Successful, 2)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "a.png", res.Successful[0].Name)
	assert.Equal(t, "c.jpg", res.Successful[1].Name)
	assert.Equal(t, "notes.txt", res.Failed[0].Name)
	assert.ElementsMatch(t, []string{
		"blog-images/1700000000000_0_a.png",
		"blog-images/1700000000000_2_c.jpg",
	}, keys)
}

func TestUploadService_UploadManyAllSucceed(t *testing.T) {
	mStore := new(storeMocks.MockStorage)
	mStore.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(storage.ObjectInfo{Key: "k"}, nil)
	mStore.On("PublicURL", "k").Return("https://cdn.example.com/k")

	res := newTestUploadService(mStore).UploadMany(context.Background(), []UploadFile{
		{Name: "a.png", ContentType: "image/png", Size: 1, Reader: strings.NewReader("a")},
	}, BlogImageOptions())

	assert.True(t, res.Success)
	assert.Empty(t, res.Failed)
}

func TestUploadService_Metadata(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStorage)
	mStore.On("Stat", ctx, "logos/1_a.svg").Return(storage.ObjectInfo{Key: "logos/1_a.svg", Size: 12}, nil)
	mStore.On("PublicURL", "logos/1_a.svg").Return("https://cdn.example.com/logos/1_a.svg")
	mStore.On("PresignGet", ctx, "logos/1_a.svg", presignExpiry).Return("https://minio/signed", nil)

	meta, err := newTestUploadService(mStore).Metadata(ctx, "/logos/1_a.svg")

	require.NoError(t, err)
	assert.Equal(t, int64(12), meta.Size)
	assert.Equal(t, "https://minio/signed", meta.DownloadURL)

	_, err = newTestUploadService(mStore).Metadata(ctx, "")
	assert.ErrorIs(t, err, ErrKeyRequired)
}

func TestUploadService_Delete(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStorage)
	mStore.On("Delete", ctx, "blog-images/1_a.png").Return(errors.New("access denied"))

	err := newTestUploadService(mStore).Delete(ctx, "blog-images/1_a.png")
	assert.EqualError(t, err, "delete storage: access denied")
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "a.png", cleanName(`C:\Users\me\a.png`))
	assert.Equal(t, "b.png", cleanName("../../b.png"))
	assert.Equal(t, "file", cleanName(""))
}
