package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bplog/internal/modules/measurement/domain"
	apperrors "bplog/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// clockTimeExpr zero-pads the stored time so rows written as "7:30" match
// and sort like "07:30".
const clockTimeExpr = `printf('%02d:%02d', CAST(substr(time, 1, instr(time, ':') - 1) AS INTEGER), CAST(substr(time, instr(time, ':') + 1) AS INTEGER))`

type SQLiteRecordStore struct {
	db *sql.DB
}

// OpenSQLiteRecordStore opens (or creates) the store file and its schema.
func OpenSQLiteRecordStore(ctx context.Context, dbPath string) (*SQLiteRecordStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create db dir: %v", apperrors.ErrStoreUnavailable, err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite %s: %v", apperrors.ErrStoreUnavailable, dbPath, err)
	}
	// one process, one logical operation
	db.SetMaxOpenConns(1)
	store := &SQLiteRecordStore{db: db}
	if err := store.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteRecordStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS bplog (
  id INTEGER PRIMARY KEY,
  date TEXT,
  time TEXT,
  systolic INTEGER,
  diastolic INTEGER,
  comment TEXT
);
CREATE INDEX IF NOT EXISTS idx_bplog_date_time ON bplog(date, time);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("%w: create bplog table: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *SQLiteRecordStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteRecordStore) Add(ctx context.Context, record domain.Record) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO bplog (date, time, systolic, diastolic, comment) VALUES (?, ?, ?, ?, ?)`,
		record.Date,
		record.Time,
		record.Reading.Systolic,
		record.Reading.Diastolic,
		record.Comment,
	)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert record id: %w", err)
	}
	return id, nil
}

func (s *SQLiteRecordStore) List(ctx context.Context) ([]domain.Record, error) {
	return s.query(ctx, `SELECT id, date, time, systolic, diastolic, comment FROM bplog ORDER BY date, `+clockTimeExpr+`, id`)
}

func (s *SQLiteRecordStore) ListByDate(ctx context.Context, date string) ([]domain.Record, error) {
	return s.query(ctx, `SELECT id, date, time, systolic, diastolic, comment FROM bplog WHERE date(date) = ? ORDER BY `+clockTimeExpr+`, id`, date)
}

func (s *SQLiteRecordStore) Delete(ctx context.Context, date, clockTime string) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bplog WHERE date(date) = ? AND `+clockTimeExpr+` = ?`, date, clockTime)
	if err != nil {
		return 0, fmt.Errorf("delete record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete record count: %w", err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: no measurement found for %s at %s", apperrors.ErrNotFound, date, clockTime)
	}
	return int(n), nil
}

func (s *SQLiteRecordStore) DeleteByID(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bplog WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete record %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete record %d count: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: record %d", apperrors.ErrNotFound, id)
	}
	return nil
}

func (s *SQLiteRecordStore) DeleteLast(ctx context.Context) (domain.Record, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Record{}, fmt.Errorf("begin delete last: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `SELECT id, date, time, systolic, diastolic, comment FROM bplog ORDER BY id DESC LIMIT 1`)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Record{}, fmt.Errorf("%w: no measurements recorded", apperrors.ErrNotFound)
	}
	if err != nil {
		return domain.Record{}, fmt.Errorf("select last record: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM bplog WHERE id = ?`, record.ID); err != nil {
		return domain.Record{}, fmt.Errorf("delete last record: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return domain.Record{}, fmt.Errorf("commit delete last: %w", err)
	}
	return record, nil
}

func (s *SQLiteRecordStore) query(ctx context.Context, stmt string, args ...any) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []domain.Record{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (domain.Record, error) {
	var (
		record  domain.Record
		comment sql.NullString
	)
	if err := row.Scan(&record.ID, &record.Date, &record.Time, &record.Reading.Systolic, &record.Reading.Diastolic, &comment); err != nil {
		return domain.Record{}, err
	}
	record.Comment = comment.String
	if normalized, err := domain.ParseTime(record.Time); err == nil {
		record.Time = normalized
	}
	return record, nil
}
