package in

import (
	"context"

	"bplog/internal/modules/settings/dto"
)

type Usecase interface {
	ResolvePath(ctx context.Context) (dto.PathOutput, error)
	SetPath(ctx context.Context, input dto.SetPathInput) (dto.PathOutput, error)
	Reset(ctx context.Context) (dto.PathOutput, error)
}
