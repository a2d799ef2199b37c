package out_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	measurementout "bplog/internal/modules/measurement/adapter/out"
	"bplog/internal/modules/measurement/domain"
	apperrors "bplog/internal/platform/errors"
)

func openStore(t *testing.T) *measurementout.SQLiteRecordStore {
	t.Helper()
	store, err := measurementout.OpenSQLiteRecordStore(context.Background(), filepath.Join(t.TempDir(), "nested", "bplog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func record(date, clockTime string, systolic, diastolic int, comment string) domain.Record {
	return domain.Record{Date: date, Time: clockTime, Reading: domain.Reading{Systolic: systolic, Diastolic: diastolic}, Comment: comment}
}

func TestAddAndListOrdersByDateAndTime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openStore(t)

	inputs := []domain.Record{
		record("2024-02-01", "20:00", 130, 85, "evening"),
		record("2024-01-15", "08:00", 120, 80, ""),
		record("2024-02-01", "07:30", 125, 82, "after coffee, before walk"),
	}
	for _, in := range inputs {
		if _, err := store.Add(ctx, in); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []domain.Record{inputs[1], inputs[2], inputs[0]}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(domain.Record{}, "ID")); diff != "" {
		t.Fatalf("unexpected records (-want +got):\n%s", diff)
	}
}

func TestDeleteByKeyThenNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openStore(t)
	if _, err := store.Add(ctx, record("2024-03-03", "11:00", 120, 80, "")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := store.Add(ctx, record("2024-03-03", "12:00", 122, 81, "")); err != nil {
		t.Fatalf("add: %v", err)
	}

	n, err := store.Delete(ctx, "2024-03-03", "11:00")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one row removed, got %d", n)
	}
	if _, err := store.Delete(ctx, "2024-03-03", "11:00"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	left, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(left) != 1 || left[0].Time != "12:00" {
		t.Fatalf("unexpected remaining records %+v", left)
	}
}

func TestDeleteLastRemovesMostRecentlyInserted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openStore(t)
	// inserted out of date order; the last insert is the oldest date
	for _, in := range []domain.Record{
		record("2024-05-01", "09:00", 118, 79, ""),
		record("2024-06-01", "09:00", 119, 78, ""),
		record("2023-01-01", "09:00", 140, 90, "last"),
	} {
		if _, err := store.Add(ctx, in); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	removed, err := store.DeleteLast(ctx)
	if err != nil {
		t.Fatalf("delete last: %v", err)
	}
	if removed.Comment != "last" || removed.Date != "2023-01-01" {
		t.Fatalf("expected last inserted record, got %+v", removed)
	}
	left, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(left) != 2 {
		t.Fatalf("expected two records left, got %d", len(left))
	}
}

func TestDeleteLastOnEmptyStore(t *testing.T) {
	t.Parallel()
	store := openStore(t)
	if _, err := store.DeleteLast(context.Background()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := store.DeleteByID(context.Background(), 42); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found for missing id, got %v", err)
	}
}

func TestListByDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openStore(t)
	for _, in := range []domain.Record{
		record("2024-07-07", "21:00", 121, 80, ""),
		record("2024-07-08", "06:00", 119, 77, ""),
		record("2024-07-07", "07:00", 125, 83, ""),
	} {
		if _, err := store.Add(ctx, in); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	got, err := store.ListByDate(ctx, "2024-07-07")
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(got) != 2 || got[0].Time != "07:00" || got[1].Time != "21:00" {
		t.Fatalf("unexpected day listing %+v", got)
	}
}

func TestOpenFailsWhenPathIsDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "bplog.db"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := measurementout.OpenSQLiteRecordStore(context.Background(), filepath.Join(dir, "bplog.db")); !errors.Is(err, apperrors.ErrStoreUnavailable) {
		t.Fatalf("expected store unavailable, got %v", err)
	}
}

func TestReopenKeepsRecords(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bplog.db")
	store, err := measurementout.OpenSQLiteRecordStore(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := store.Add(ctx, record("2024-01-01", "10:00", 120, 80, "kept")); err != nil {
		t.Fatalf("add: %v", err)
	}
	_ = store.Close()

	reopened, err := measurementout.OpenSQLiteRecordStore(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()
	got, err := reopened.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Comment != "kept" {
		t.Fatalf("unexpected records after reopen %+v", got)
	}
}

func TestUnpaddedStoredTimesMatchAndSort(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bplog.db")
	store, err := measurementout.OpenSQLiteRecordStore(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	// rows as older databases hold them, time stored exactly as typed
	raw, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open raw: %v", err)
	}
	for _, stmt := range []string{
		`INSERT INTO bplog (date, time, systolic, diastolic, comment) VALUES ('2024-02-02', '10:15', 130, 85, NULL)`,
		`INSERT INTO bplog (date, time, systolic, diastolic, comment) VALUES ('2024-02-02', '7:30', 121, 79, 'legacy')`,
	} {
		if _, err := raw.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	_ = raw.Close()

	got, err := store.ListByDate(ctx, "2024-02-02")
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(got) != 2 || got[0].Time != "07:30" || got[0].Comment != "legacy" || got[1].Time != "10:15" {
		t.Fatalf("expected padded, chronological times, got %+v", got)
	}

	n, err := store.Delete(ctx, "2024-02-02", "07:30")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one row removed, got %d", n)
	}
	left, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(left) != 1 || left[0].Time != "10:15" {
		t.Fatalf("unexpected remaining records %+v", left)
	}
}
