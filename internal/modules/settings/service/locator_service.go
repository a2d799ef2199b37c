package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"bplog/internal/modules/settings/domain"
	settingsout "bplog/internal/modules/settings/port/out"
	apperrors "bplog/internal/platform/errors"
)

type LocatorService struct {
	store        settingsout.SettingsStore
	probe        settingsout.PathProbe
	defaultPath  string
	databaseName string
	logger       *log.Logger
}

func NewLocatorService(store settingsout.SettingsStore, probe settingsout.PathProbe, defaultPath, databaseName string, logger *log.Logger) *LocatorService {
	return &LocatorService{store: store, probe: probe, defaultPath: defaultPath, databaseName: databaseName, logger: logger}
}

// ResolvePath falls back to the default store when the config file is
// missing or unreadable.
func (s *LocatorService) ResolvePath(ctx context.Context) (string, bool) {
	settings, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("ignoring config file", "err", err)
		return s.defaultPath, false
	}
	if path, ok := settings.Override(); ok {
		return path, true
	}
	return s.defaultPath, false
}

func (s *LocatorService) SetPath(ctx context.Context, path string) (string, error) {
	resolved, err := s.normalize(path)
	if err != nil {
		return "", err
	}
	if err := s.probe.Writable(resolved); err != nil {
		return "", err
	}
	if err := s.store.Save(ctx, domain.Settings{Database: domain.Database{FilePath: resolved}}); err != nil {
		return "", err
	}
	s.logger.Debug("store path persisted", "path", resolved)
	return resolved, nil
}

func (s *LocatorService) Reset(ctx context.Context) (string, error) {
	if err := s.store.Clear(ctx); err != nil {
		return "", err
	}
	return s.defaultPath, nil
}

// normalize maps "." and directories to <dir>/<databaseName> and makes the
// result absolute.
func (s *LocatorService) normalize(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("%w: empty path", apperrors.ErrInvalidPath)
	}
	if path == "." || strings.HasSuffix(path, string(os.PathSeparator)) {
		path = filepath.Join(path, s.databaseName)
	} else if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, s.databaseName)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", apperrors.ErrInvalidPath, path, err)
	}
	return abs, nil
}
