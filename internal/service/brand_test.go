package service

import (
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogapi/internal/logging"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	repoMocks "blogapi/internal/repository/mocks"
	storeMocks "blogapi/internal/storage/mocks"
)

func writePNG(t *testing.T, dir, name string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func strPtr(s string) *string { return &s }

func TestBrandService_Resolve(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		files     func(t *testing.T, dir string)
		setupMock func(m *repoMocks.MockSettingsRepository)
		want      model.Brand
	}{
		{
			name:  "persisted values win",
			files: func(t *testing.T, dir string) { writePNG(t, dir, "yulii-logo.png") },
			setupMock: func(m *repoMocks.MockSettingsRepository) {
				m.On("Get", ctx, SettingBrandText).Return("Acme", nil)
				m.On("Get", ctx, SettingBrandLogoURL).Return("https://cdn.example.com/logos/1_a.png", nil)
			},
			want: model.Brand{Text: "Acme", LogoURL: "https://cdn.example.com/logos/1_a.png"},
		},
		{
			name:  "default logo file",
			files: func(t *testing.T, dir string) { writePNG(t, dir, "yulii-logo.png") },
			setupMock: func(m *repoMocks.MockSettingsRepository) {
				m.On("Get", ctx, mock.Anything).Return("", repository.ErrNotFound)
				m.On("Set", ctx, SettingBrandLogoURL, "/yulii-logo.png").Return(nil).Once()
			},
			want: model.Brand{Text: "YULII", LogoURL: "/yulii-logo.png"},
		},
		{
			name: "first decodable candidate",
			files: func(t *testing.T, dir string) {
				writeFile(t, dir, "yulii-logo.svg", "not really svg")
				writeFile(t, dir, "logo.svg", `<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"></svg>`)
				writePNG(t, dir, "logo.png")
			},
			setupMock: func(m *repoMocks.MockSettingsRepository) {
				m.On("Get", ctx, mock.Anything).Return("", repository.ErrNotFound)
				m.On("Set", ctx, SettingBrandLogoURL, "/logo.svg").Return(nil).Once()
			},
			want: model.Brand{Text: "YULII", LogoURL: "/logo.svg"},
		},
		{
			name: "corrupt png skipped",
			files: func(t *testing.T, dir string) {
				writeFile(t, dir, "yulii-logo.png", "garbage")
				writePNG(t, dir, "brand.png")
			},
			setupMock: func(m *repoMocks.MockSettingsRepository) {
				m.On("Get", ctx, mock.Anything).Return("", repository.ErrNotFound)
				m.On("Set", ctx, SettingBrandLogoURL, "/brand.png").Return(errors.New("database is locked")).Once()
			},
			want: model.Brand{Text: "YULII", LogoURL: "/brand.png"},
		},
		{
			name:  "nothing found",
			files: func(t *testing.T, dir string) {},
			setupMock: func(m *repoMocks.MockSettingsRepository) {
				m.On("Get", ctx, mock.Anything).Return("", repository.ErrNotFound)
			},
			want: model.Brand{Text: "YULII"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.files(t, dir)
			mSettings := new(repoMocks.MockSettingsRepository)
			tt.setupMock(mSettings)

			s := NewBrandService(mSettings, nil, DefaultLogoSources(mSettings, dir, "/yulii-logo.png"), "YULII", logging.Discard())
			got, err := s.Resolve(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, s.Current())
			mSettings.AssertExpectations(t)
		})
	}
}

func TestBrandService_ResolveSettingsError(t *testing.T) {
	ctx := context.Background()
	mSettings := new(repoMocks.MockSettingsRepository)
	mSettings.On("Get", ctx, SettingBrandText).Return("", errors.New("database is locked"))

	s := NewBrandService(mSettings, nil, nil, "YULII", logging.Discard())
	_, err := s.Resolve(ctx)

	assert.ErrorContains(t, err, "database is locked")
	assert.Equal(t, "YULII", s.Current().Text)
}

func TestBrandService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("persists values", func(t *testing.T) {
		mSettings := new(repoMocks.MockSettingsRepository)
		mSettings.On("Set", ctx, SettingBrandText, "Acme").Return(nil)
		mSettings.On("Set", ctx, SettingBrandLogoURL, "/logo.png").Return(nil)

		s := NewBrandService(mSettings, nil, nil, "YULII", logging.Discard())
		b, err := s.Update(ctx, model.BrandUpdate{Text: strPtr(" Acme "), LogoURL: strPtr("/logo.png")})

		require.NoError(t, err)
		assert.Equal(t, model.Brand{Text: "Acme", LogoURL: "/logo.png"}, b)
		mSettings.AssertExpectations(t)
	})

	t.Run("empty values remove keys", func(t *testing.T) {
		mSettings := new(repoMocks.MockSettingsRepository)
		mSettings.On("Delete", ctx, SettingBrandText).Return(nil)
		mSettings.On("Delete", ctx, SettingBrandLogoURL).Return(nil)

		s := NewBrandService(mSettings, nil, nil, "YULII", logging.Discard())
		b, err := s.Update(ctx, model.BrandUpdate{Text: strPtr(""), LogoURL: strPtr("")})

		require.NoError(t, err)
		assert.Equal(t, model.Brand{Text: "YULII"}, b)
		mSettings.AssertExpectations(t)
	})

	t.Run("persist failure keeps state", func(t *testing.T) {
		mSettings := new(repoMocks.MockSettingsRepository)
		mSettings.On("Set", ctx, SettingBrandText, "Acme").Return(errors.New("disk full"))

		s := NewBrandService(mSettings, nil, nil, "YULII", logging.Discard())
		_, err := s.Update(ctx, model.BrandUpdate{Text: strPtr("Acme")})

		assert.EqualError(t, err, "persist brand.text: disk full")
		assert.Equal(t, "YULII", s.Current().Text)
	})
}

func TestBrandService_UploadLogo(t *testing.T) {
	ctx := context.Background()
	mSettings := new(repoMocks.MockSettingsRepository)
	mStore := new(storeMocks.MockStorage)

	t.Run("oversized logo rejected before transfer", func(t *testing.T) {
		s := NewBrandService(mSettings, newTestUploadService(mStore), nil, "YULII", logging.Discard())

		res, err := s.UploadLogo(ctx, UploadFile{Name: "logo.png", ContentType: "image/png", Size: 6 << 20}, nil)

		assert.ErrorIs(t, err, ErrFileTooLarge)
		assert.False(t, res.Success)
		mStore.AssertNumberOfCalls(t, "Put", 0)
		mSettings.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})
}
