package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// BrandService owns the brand logo and text.
type BrandService interface {
	// Resolve determines the initial brand from persisted settings and static files.
	Resolve(ctx context.Context) (model.Brand, error)
	Current() model.Brand
	// Update applies and persists the present fields. Empty values remove the persisted key.
	Update(ctx context.Context, u model.BrandUpdate) (model.Brand, error)
	// UploadLogo stores a logo file and makes it the brand logo.
	UploadLogo(ctx context.Context, f UploadFile, progress func(float64)) (model.UploadResult, error)
	ClearLogo(ctx context.Context) (model.Brand, error)
}

type brandService struct {
	settings    repository.SettingsRepository
	uploads     UploadService
	sources     []LogoSource
	defaultText string
	logger      *slog.Logger

	mu    sync.RWMutex
	brand model.Brand
}

// NewBrandService constructs a BrandService. The brand starts with the default
// text and no logo until Resolve runs.
func NewBrandService(settings repository.SettingsRepository, uploads UploadService, sources []LogoSource, defaultText string, logger *slog.Logger) BrandService {
	return &brandService{
		settings:    settings,
		uploads:     uploads,
		sources:     sources,
		defaultText: defaultText,
		logger:      logger,
		brand:       model.Brand{Text: defaultText},
	}
}

func (s *brandService) Resolve(ctx context.Context) (model.Brand, error) {
	b := model.Brand{Text: s.defaultText}

	text, err := s.settings.Get(ctx, SettingBrandText)
	switch {
	case err == nil && text != "":
		b.Text = text
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return s.Current(), fmt.Errorf("read brand text: %w", err)
	}

	for _, src := range s.sources {
		url, ok, err := src.Logo(ctx)
		if err != nil {
			s.logger.Warn("brand_logo_source_failed", "source", src.Name(), "error", err.Error())
			continue
		}
		if ok {
			b.LogoURL = url
			s.logger.Info("brand_logo_resolved", "source", src.Name(), "logo_url", url)
			s.remember(ctx, src, url)
			break
		}
	}

	s.mu.Lock()
	s.brand = b
	s.mu.Unlock()
	return b, nil
}

func (s *brandService) Current() model.Brand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.brand
}

func (s *brandService) Update(ctx context.Context, u model.BrandUpdate) (model.Brand, error) {
	if u.LogoURL != nil {
		v := strings.TrimSpace(*u.LogoURL)
		if err := s.persist(ctx, SettingBrandLogoURL, v); err != nil {
			return s.Current(), err
		}
		s.mu.Lock()
		s.brand.LogoURL = v
		s.mu.Unlock()
	}
	if u.Text != nil {
		v := strings.TrimSpace(*u.Text)
		if err := s.persist(ctx, SettingBrandText, v); err != nil {
			return s.Current(), err
		}
		if v == "" {
			v = s.defaultText
		}
		s.mu.Lock()
		s.brand.Text = v
		s.mu.Unlock()
	}
	return s.Current(), nil
}

func (s *brandService) UploadLogo(ctx context.Context, f UploadFile, progress func(float64)) (model.UploadResult, error) {
	opts := LogoOptions()
	opts.Progress = progress
	res, err := s.uploads.Upload(ctx, f, opts)
	if err != nil {
		return res, err
	}
	if _, err := s.Update(ctx, model.BrandUpdate{LogoURL: &res.URL}); err != nil {
		return model.UploadResult{Success: false, Name: f.Name, Error: err.Error()}, err
	}
	return res, nil
}

func (s *brandService) ClearLogo(ctx context.Context) (model.Brand, error) {
	empty := ""
	return s.Update(ctx, model.BrandUpdate{LogoURL: &empty})
}

func (s *brandService) persist(ctx context.Context, key, value string) error {
	var err error
	if value == "" {
		err = s.settings.Delete(ctx, key)
	} else {
		err = s.settings.Set(ctx, key, value)
	}
	if err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// remember persists a logo found by probing so later starts read it from
// settings. A failed write only costs a re-probe next time.
func (s *brandService) remember(ctx context.Context, src LogoSource, url string) {
	if ss, ok := src.(SettingSource); ok && ss.Key == SettingBrandLogoURL {
		return
	}
	if err := s.settings.Set(ctx, SettingBrandLogoURL, url); err != nil {
		s.logger.Warn("brand_logo_persist_failed", "logo_url", url, "error", err.Error())
	}
}
