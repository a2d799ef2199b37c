package out

import (
	"fmt"
	"os"
	"path/filepath"

	settingsout "bplog/internal/modules/settings/port/out"
	apperrors "bplog/internal/platform/errors"
)

type FSPathProbe struct{}

func NewFSPathProbe() settingsout.PathProbe {
	return FSPathProbe{}
}

// Writable creates the parent directory if needed and checks a file can be
// created next to path. An existing path must be a regular file.
func (FSPathProbe) Writable(path string) error {
	if info, err := os.Stat(path); err == nil && !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", apperrors.ErrInvalidPath, path)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %v", apperrors.ErrInvalidPath, dir, err)
	}
	f, err := os.CreateTemp(dir, ".bplog-probe-*")
	if err != nil {
		return fmt.Errorf("%w: %s is not writable: %v", apperrors.ErrInvalidPath, dir, err)
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return nil
}
