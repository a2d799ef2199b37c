package domain_test

import (
	"errors"
	"testing"

	"bplog/internal/modules/measurement/domain"
	apperrors "bplog/internal/platform/errors"
)

func TestParseReading(t *testing.T) {
	t.Parallel()
	valid := map[string]domain.Reading{
		"120:80":  {Systolic: 120, Diastolic: 80},
		" 95:60 ": {Systolic: 95, Diastolic: 60},
		"1:1":     {Systolic: 1, Diastolic: 1},
	}
	for token, want := range valid {
		got, err := domain.ParseReading(token)
		if err != nil {
			t.Fatalf("parse %q: %v", token, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %+v, got %+v", token, want, got)
		}
	}

	for _, token := range []string{"120", "abc:80", "120:", ":80", "120/80", "0:80", "120:0", "-120:80", "120:80:60", "99999999999999999999:80"} {
		if _, err := domain.ParseReading(token); !errors.Is(err, apperrors.ErrInvalidFormat) {
			t.Fatalf("parse %q: expected invalid format, got %v", token, err)
		}
	}
}

func TestParseDateAcceptsBothLayouts(t *testing.T) {
	t.Parallel()
	for input, want := range map[string]string{
		"2024-03-09": "2024-03-09",
		"09,03,2024": "2024-03-09",
	} {
		got, err := domain.ParseDate(input)
		if err != nil {
			t.Fatalf("parse date %q: %v", input, err)
		}
		if got != want {
			t.Fatalf("parse date %q: expected %s, got %s", input, want, got)
		}
	}
	for _, input := range []string{"2024-13-01", "03/09/2024", "today", ""} {
		if _, err := domain.ParseDate(input); !errors.Is(err, apperrors.ErrInvalidFormat) {
			t.Fatalf("parse date %q: expected invalid format, got %v", input, err)
		}
	}
}

func TestParseTimeNormalizesHour(t *testing.T) {
	t.Parallel()
	got, err := domain.ParseTime("8:05")
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}
	if got != "08:05" {
		t.Fatalf("expected 08:05, got %s", got)
	}
	for _, input := range []string{"24:00", "12:60", "noon", "1205"} {
		if _, err := domain.ParseTime(input); !errors.Is(err, apperrors.ErrInvalidFormat) {
			t.Fatalf("parse time %q: expected invalid format, got %v", input, err)
		}
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	if got := domain.Summarize(nil); got != (domain.Summary{}) {
		t.Fatalf("empty summary should be zero, got %+v", got)
	}
	records := []domain.Record{
		{Reading: domain.Reading{Systolic: 120, Diastolic: 80}},
		{Reading: domain.Reading{Systolic: 131, Diastolic: 85}},
	}
	got := domain.Summarize(records)
	// 125.5 rounds to 126 and 82.5 rounds to 82
	if got.Count != 2 || got.AvgSystolic != 126 || got.AvgDiastolic != 82 {
		t.Fatalf("unexpected summary %+v", got)
	}
	if got.Average() != "126:82" {
		t.Fatalf("unexpected average string %s", got.Average())
	}
}

func TestRecordValidate(t *testing.T) {
	t.Parallel()
	base := domain.Record{Date: "2024-01-02", Time: "07:30", Reading: domain.Reading{Systolic: 120, Diastolic: 80}}
	if err := base.Validate(); err != nil {
		t.Fatalf("record should be valid: %v", err)
	}
	badDate := base
	badDate.Date = "02.01.2024"
	if err := badDate.Validate(); err == nil {
		t.Fatalf("bad date should fail")
	}
	badTime := base
	badTime.Time = "7h30"
	if err := badTime.Validate(); err == nil {
		t.Fatalf("bad time should fail")
	}
	badReading := base
	badReading.Reading.Diastolic = 0
	if err := badReading.Validate(); err == nil {
		t.Fatalf("zero diastolic should fail")
	}
}
