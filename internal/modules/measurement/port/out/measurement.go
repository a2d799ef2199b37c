package out

import (
	"context"

	"bplog/internal/modules/measurement/domain"
)

type RecordStore interface {
	Add(ctx context.Context, record domain.Record) (int64, error)
	List(ctx context.Context) ([]domain.Record, error)
	ListByDate(ctx context.Context, date string) ([]domain.Record, error)
	Delete(ctx context.Context, date, time string) (int, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteLast(ctx context.Context) (domain.Record, error)
}

type Exporter interface {
	Export(ctx context.Context, records []domain.Record, path string) error
}

// Chooser picks one of several candidate records. ok is false when the user
// declined to choose.
type Chooser interface {
	Choose(ctx context.Context, candidates []domain.Record) (chosen domain.Record, ok bool, err error)
}
