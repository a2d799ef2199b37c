package in

import (
	"context"

	"bplog/internal/modules/measurement/dto"
	measurementin "bplog/internal/modules/measurement/port/in"
)

type CLIHandler struct {
	usecase measurementin.Usecase
}

func NewCLIHandler(usecase measurementin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, reading, date, clockTime, comment string) (dto.RecordOutput, error) {
	return h.usecase.Add(ctx, dto.AddInput{
		Reading: reading,
		Date:    date,
		Time:    clockTime,
		Comment: comment,
	})
}

func (h CLIHandler) List(ctx context.Context) (dto.ListOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Remove(ctx context.Context, date, clockTime string) (dto.RemoveOutput, error) {
	return h.usecase.Remove(ctx, dto.RemoveInput{Date: date, Time: clockTime})
}

func (h CLIHandler) RemoveLast(ctx context.Context) (dto.RecordOutput, error) {
	return h.usecase.RemoveLast(ctx)
}

func (h CLIHandler) Export(ctx context.Context, path string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Path: path})
}
