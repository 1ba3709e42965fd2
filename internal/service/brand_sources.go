package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"blogapi/internal/repository"
)

// Settings keys persisted for the brand.
const (
	SettingBrandLogoURL = "brand.logoUrl"
	SettingBrandText    = "brand.text"
)

// LogoCandidates are the public file names tried, in order, after the default logo.
var LogoCandidates = []string{
	"yulii-logo.svg", "logo.svg", "yulii.svg", "brand.svg",
	"yulii-logo.png", "logo.png", "yulii.png", "brand.png",
	"logo.jpg", "yulii.jpg",
}

// LogoSource yields a logo URL if it has one.
type LogoSource interface {
	Name() string
	Logo(ctx context.Context) (url string, ok bool, err error)
}

// SettingSource reads a persisted logo URL.
type SettingSource struct {
	Settings repository.SettingsRepository
	Key      string
}

func (s SettingSource) Name() string { return "setting:" + s.Key }

func (s SettingSource) Logo(ctx context.Context) (string, bool, error) {
	v, err := s.Settings.Get(ctx, s.Key)
	if errors.Is(err, repository.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, strings.TrimSpace(v) != "", nil
}

// StaticFileSource probes a file served from the static directory. The file
// counts only if it decodes as an image.
type StaticFileSource struct {
	Dir     string
	URLPath string
}

func (s StaticFileSource) Name() string { return "static:" + s.URLPath }

func (s StaticFileSource) Logo(context.Context) (string, bool, error) {
	rel := filepath.FromSlash(strings.TrimLeft(s.URLPath, "/"))
	f, err := os.Open(filepath.Join(s.Dir, rel))
	if err != nil {
		return "", false, nil
	}
	defer f.Close()

	if !isImage(f, strings.EqualFold(filepath.Ext(rel), ".svg")) {
		return "", false, nil
	}
	return "/" + filepath.ToSlash(rel), true, nil
}

func isImage(r io.Reader, svg bool) bool {
	if svg {
		head := make([]byte, 1024)
		n, _ := io.ReadFull(r, head)
		return bytes.Contains(bytes.ToLower(head[:n]), []byte("<svg"))
	}
	_, _, err := image.DecodeConfig(r)
	return err == nil
}

// DefaultLogoSources builds the resolution order: persisted setting, the
// default logo path, then LogoCandidates.
func DefaultLogoSources(settings repository.SettingsRepository, staticDir, defaultLogo string) []LogoSource {
	sources := []LogoSource{
		SettingSource{Settings: settings, Key: SettingBrandLogoURL},
		StaticFileSource{Dir: staticDir, URLPath: defaultLogo},
	}
	for _, name := range LogoCandidates {
		sources = append(sources, StaticFileSource{Dir: staticDir, URLPath: "/" + name})
	}
	return sources
}
