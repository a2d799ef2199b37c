package apperrors

import "errors"

var (
	ErrInvalidFormat    = errors.New("invalid format")
	ErrNotFound         = errors.New("not found")
	ErrAmbiguous        = errors.New("ambiguous selection")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidPath      = errors.New("invalid path")
	ErrWriteError       = errors.New("write error")
)
