package usecase

import (
	"context"

	"bplog/internal/modules/settings/dto"
	settingsin "bplog/internal/modules/settings/port/in"
	"bplog/internal/modules/settings/service"
)

type Interactor struct {
	svc *service.LocatorService
}

func NewInteractor(svc *service.LocatorService) settingsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ResolvePath(ctx context.Context) (dto.PathOutput, error) {
	path, overridden := i.svc.ResolvePath(ctx)
	return dto.PathOutput{Path: path, Overridden: overridden}, nil
}

func (i *Interactor) SetPath(ctx context.Context, input dto.SetPathInput) (dto.PathOutput, error) {
	path, err := i.svc.SetPath(ctx, input.Path)
	if err != nil {
		return dto.PathOutput{}, err
	}
	return dto.PathOutput{Path: path, Overridden: true}, nil
}

func (i *Interactor) Reset(ctx context.Context) (dto.PathOutput, error) {
	path, err := i.svc.Reset(ctx)
	if err != nil {
		return dto.PathOutput{}, err
	}
	return dto.PathOutput{Path: path}, nil
}
