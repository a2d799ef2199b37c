package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bplog/internal/modules/settings/domain"
	settingsout "bplog/internal/modules/settings/port/out"
	apperrors "bplog/internal/platform/errors"
)

type YAMLSettingsStore struct {
	path string
}

func NewYAMLSettingsStore(path string) settingsout.SettingsStore {
	return &YAMLSettingsStore{path: path}
}

// Load returns empty settings when the file does not exist.
func (s *YAMLSettingsStore) Load(_ context.Context) (domain.Settings, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Settings{}, nil
		}
		return domain.Settings{}, fmt.Errorf("read config %s: %w", s.path, err)
	}
	settings := domain.Settings{}
	if err := yaml.Unmarshal(payload, &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("decode config %s: %w", s.path, err)
	}
	return settings, nil
}

func (s *YAMLSettingsStore) Save(_ context.Context, settings domain.Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: create config dir: %v", apperrors.ErrWriteError, err)
	}
	payload, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("%w: write config %s: %v", apperrors.ErrWriteError, s.path, err)
	}
	return nil
}

func (s *YAMLSettingsStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: remove config %s: %v", apperrors.ErrWriteError, s.path, err)
	}
	return nil
}
