package in

import (
	"context"

	"bplog/internal/modules/settings/dto"
	settingsin "bplog/internal/modules/settings/port/in"
)

type CLIHandler struct {
	usecase settingsin.Usecase
}

func NewCLIHandler(usecase settingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ResolvePath(ctx context.Context) (dto.PathOutput, error) {
	return h.usecase.ResolvePath(ctx)
}

func (h CLIHandler) SetPath(ctx context.Context, path string) (dto.PathOutput, error) {
	return h.usecase.SetPath(ctx, dto.SetPathInput{Path: path})
}

func (h CLIHandler) Reset(ctx context.Context) (dto.PathOutput, error) {
	return h.usecase.Reset(ctx)
}
