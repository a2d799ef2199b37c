package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	apperrors "bplog/internal/platform/errors"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// legacyDateLayout is the day,month,year form older databases were fed with.
	legacyDateLayout = "02,01,2006"
)

var readingPattern = regexp.MustCompile(`^(\d+):(\d+)$`)

type Reading struct {
	Systolic  int
	Diastolic int
}

func (r Reading) String() string {
	return fmt.Sprintf("%d:%d", r.Systolic, r.Diastolic)
}

func (r Reading) Validate() error {
	if r.Systolic <= 0 || r.Diastolic <= 0 {
		return fmt.Errorf("%w: blood pressure values must be positive, got %s", apperrors.ErrInvalidFormat, r)
	}
	return nil
}

type Record struct {
	ID      int64
	Date    string
	Time    string
	Reading Reading
	Comment string
}

func (r Record) Validate() error {
	if err := r.Reading.Validate(); err != nil {
		return err
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return fmt.Errorf("%w: date %q", apperrors.ErrInvalidFormat, r.Date)
	}
	if _, err := time.Parse(TimeLayout, r.Time); err != nil {
		return fmt.Errorf("%w: time %q", apperrors.ErrInvalidFormat, r.Time)
	}
	return nil
}

// Timestamp combines date and time in the given location.
func (r Record) Timestamp(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, r.Date+" "+r.Time, loc)
}

func ParseReading(token string) (Reading, error) {
	match := readingPattern.FindStringSubmatch(strings.TrimSpace(token))
	if match == nil {
		return Reading{}, fmt.Errorf("%w: measurement %q, expected SYSTOLIC:DIASTOLIC (e.g. 120:80)", apperrors.ErrInvalidFormat, token)
	}
	systolic, err := strconv.Atoi(match[1])
	if err != nil {
		return Reading{}, fmt.Errorf("%w: systolic value %q", apperrors.ErrInvalidFormat, match[1])
	}
	diastolic, err := strconv.Atoi(match[2])
	if err != nil {
		return Reading{}, fmt.Errorf("%w: diastolic value %q", apperrors.ErrInvalidFormat, match[2])
	}
	reading := Reading{Systolic: systolic, Diastolic: diastolic}
	if err := reading.Validate(); err != nil {
		return Reading{}, err
	}
	return reading, nil
}

// ParseDate accepts YYYY-MM-DD and DD,MM,YYYY and returns the canonical form.
func ParseDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{DateLayout, legacyDateLayout} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: date %q, expected YYYY-MM-DD", apperrors.ErrInvalidFormat, value)
}

func ParseTime(value string) (string, error) {
	parsed, err := time.Parse(TimeLayout, strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("%w: time %q, expected HH:MM", apperrors.ErrInvalidFormat, value)
	}
	return parsed.Format(TimeLayout), nil
}

type Summary struct {
	Count        int
	AvgSystolic  int
	AvgDiastolic int
}

func (s Summary) Average() string {
	return fmt.Sprintf("%d:%d", s.AvgSystolic, s.AvgDiastolic)
}

// Summarize rounds averages half to even.
func Summarize(records []Record) Summary {
	if len(records) == 0 {
		return Summary{}
	}
	var sumSys, sumDia int
	for _, record := range records {
		sumSys += record.Reading.Systolic
		sumDia += record.Reading.Diastolic
	}
	n := float64(len(records))
	return Summary{
		Count:        len(records),
		AvgSystolic:  int(math.RoundToEven(float64(sumSys) / n)),
		AvgDiastolic: int(math.RoundToEven(float64(sumDia) / n)),
	}
}
