package usecase

import (
	"context"

	"bplog/internal/modules/measurement/domain"
	"bplog/internal/modules/measurement/dto"
	measurementin "bplog/internal/modules/measurement/port/in"
	"bplog/internal/modules/measurement/service"
)

type Interactor struct {
	svc *service.RecordService
}

func NewInteractor(svc *service.RecordService) measurementin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.RecordOutput, error) {
	reading, err := domain.ParseReading(input.Reading)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	date, clockTime, err := normalizeKey(input.Date, input.Time)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	record, err := i.svc.Add(ctx, reading, date, clockTime, input.Comment)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return toOutput(record), nil
}

func (i *Interactor) List(ctx context.Context) (dto.ListOutput, error) {
	records, summary, err := i.svc.List(ctx)
	if err != nil {
		return dto.ListOutput{}, err
	}
	out := dto.ListOutput{
		Records:      make([]dto.RecordOutput, 0, len(records)),
		Count:        summary.Count,
		AvgSystolic:  summary.AvgSystolic,
		AvgDiastolic: summary.AvgDiastolic,
	}
	for _, record := range records {
		out.Records = append(out.Records, toOutput(record))
	}
	return out, nil
}

func (i *Interactor) Remove(ctx context.Context, input dto.RemoveInput) (dto.RemoveOutput, error) {
	date, clockTime, err := normalizeKey(input.Date, input.Time)
	if err != nil {
		return dto.RemoveOutput{}, err
	}
	removed, err := i.svc.Remove(ctx, date, clockTime)
	if err != nil {
		return dto.RemoveOutput{}, err
	}
	out := dto.RemoveOutput{Removed: make([]dto.RecordOutput, 0, len(removed))}
	for _, record := range removed {
		out.Removed = append(out.Removed, toOutput(record))
	}
	return out, nil
}

func (i *Interactor) RemoveLast(ctx context.Context) (dto.RecordOutput, error) {
	record, err := i.svc.RemoveLast(ctx)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return toOutput(record), nil
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	count, err := i.svc.Export(ctx, input.Path)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: input.Path, Count: count}, nil
}

func normalizeKey(date, clockTime string) (string, string, error) {
	var err error
	if date != "" {
		if date, err = domain.ParseDate(date); err != nil {
			return "", "", err
		}
	}
	if clockTime != "" {
		if clockTime, err = domain.ParseTime(clockTime); err != nil {
			return "", "", err
		}
	}
	return date, clockTime, nil
}

func toOutput(record domain.Record) dto.RecordOutput {
	return dto.RecordOutput{
		ID:        record.ID,
		Date:      record.Date,
		Time:      record.Time,
		Systolic:  record.Reading.Systolic,
		Diastolic: record.Reading.Diastolic,
		Comment:   record.Comment,
	}
}
