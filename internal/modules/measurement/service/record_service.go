package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"bplog/internal/modules/measurement/domain"
	measurementout "bplog/internal/modules/measurement/port/out"
	"bplog/internal/platform/clock"
	apperrors "bplog/internal/platform/errors"
)

type RecordService struct {
	clock    clock.Clock
	store    measurementout.RecordStore
	exporter measurementout.Exporter
	chooser  measurementout.Chooser
	logger   *log.Logger
}

// NewRecordService wires the record operations. chooser may be nil, in which
// case removing one of several same-day records fails with ErrAmbiguous.
func NewRecordService(clock clock.Clock, store measurementout.RecordStore, exporter measurementout.Exporter, chooser measurementout.Chooser, logger *log.Logger) *RecordService {
	return &RecordService{clock: clock, store: store, exporter: exporter, chooser: chooser, logger: logger}
}

func (s *RecordService) Add(ctx context.Context, reading domain.Reading, date, clockTime, comment string) (domain.Record, error) {
	now := s.clock.Now()
	if strings.TrimSpace(date) == "" {
		date = now.Format(domain.DateLayout)
	}
	if strings.TrimSpace(clockTime) == "" {
		clockTime = now.Format(domain.TimeLayout)
	}
	record := domain.Record{
		Date:    date,
		Time:    clockTime,
		Reading: reading,
		Comment: strings.TrimSpace(comment),
	}
	if err := record.Validate(); err != nil {
		return domain.Record{}, err
	}
	id, err := s.store.Add(ctx, record)
	if err != nil {
		return domain.Record{}, err
	}
	record.ID = id
	s.logger.Debug("record added", "id", id, "date", record.Date, "time", record.Time)
	return record, nil
}

func (s *RecordService) List(ctx context.Context) ([]domain.Record, domain.Summary, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, domain.Summary{}, err
	}
	return records, domain.Summarize(records), nil
}

// Remove deletes by (date, time). Without a time it deletes the only record
// of the day, or asks the chooser when there are several.
func (s *RecordService) Remove(ctx context.Context, date, clockTime string) ([]domain.Record, error) {
	if strings.TrimSpace(date) == "" {
		date = s.clock.Now().Format(domain.DateLayout)
	}
	candidates, err := s.store.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if clockTime != "" {
		matched := make([]domain.Record, 0, 1)
		for _, record := range candidates {
			if record.Time == clockTime {
				matched = append(matched, record)
			}
		}
		if _, err := s.store.Delete(ctx, date, clockTime); err != nil {
			return nil, err
		}
		return matched, nil
	}

	switch len(candidates) {
	case 0:
		return nil, fmt.Errorf("%w: no measurements found for %s", apperrors.ErrNotFound, date)
	case 1:
		if err := s.store.DeleteByID(ctx, candidates[0].ID); err != nil {
			return nil, err
		}
		return candidates, nil
	}

	if s.chooser == nil {
		return nil, fmt.Errorf("%w: %d measurements found for %s, specify the time with -t", apperrors.ErrAmbiguous, len(candidates), date)
	}
	chosen, ok, err := s.chooser.Choose(ctx, candidates)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Info("removal cancelled", "date", date)
		return nil, nil
	}
	if err := s.store.DeleteByID(ctx, chosen.ID); err != nil {
		return nil, err
	}
	return []domain.Record{chosen}, nil
}

func (s *RecordService) RemoveLast(ctx context.Context) (domain.Record, error) {
	return s.store.DeleteLast(ctx)
}

func (s *RecordService) Export(ctx context.Context, path string) (int, error) {
	if strings.TrimSpace(path) == "" {
		return 0, fmt.Errorf("%w: export path is required", apperrors.ErrWriteError)
	}
	records, err := s.store.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.exporter.Export(ctx, records, path); err != nil {
		return 0, err
	}
	s.logger.Debug("records exported", "path", path, "count", len(records))
	return len(records), nil
}
