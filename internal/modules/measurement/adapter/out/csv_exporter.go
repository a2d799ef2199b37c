package out

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"bplog/internal/modules/measurement/domain"
	measurementout "bplog/internal/modules/measurement/port/out"
	apperrors "bplog/internal/platform/errors"
)

var csvHeader = []string{"date", "time", "systolic", "diastolic", "comment"}

type CSVExporter struct{}

func NewCSVExporter() measurementout.Exporter {
	return CSVExporter{}
}

// Export replaces path with a header row plus one row per record.
func (CSVExporter) Export(_ context.Context, records []domain.Record, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".bplog-export-*.csv")
	if err != nil {
		return fmt.Errorf("%w: create export file in %s: %v", apperrors.ErrWriteError, filepath.Dir(path), err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	writer := csv.NewWriter(tmp)
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, csvHeader)
	for _, record := range records {
		rows = append(rows, []string{
			record.Date,
			record.Time,
			strconv.Itoa(record.Reading.Systolic),
			strconv.Itoa(record.Reading.Diastolic),
			record.Comment,
		})
	}
	if err := writer.WriteAll(rows); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: write csv: %v", apperrors.ErrWriteError, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close csv: %v", apperrors.ErrWriteError, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: chmod csv: %v", apperrors.ErrWriteError, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", apperrors.ErrWriteError, path, err)
	}
	return nil
}
