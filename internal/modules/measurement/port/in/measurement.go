package in

import (
	"context"

	"bplog/internal/modules/measurement/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.RecordOutput, error)
	List(ctx context.Context) (dto.ListOutput, error)
	Remove(ctx context.Context, input dto.RemoveInput) (dto.RemoveOutput, error)
	RemoveLast(ctx context.Context) (dto.RecordOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
