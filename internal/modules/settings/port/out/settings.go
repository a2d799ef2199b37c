package out

import (
	"context"

	"bplog/internal/modules/settings/domain"
)

type SettingsStore interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
	Clear(ctx context.Context) error
}

// PathProbe checks that a store file could be created at path.
type PathProbe interface {
	Writable(path string) error
}
