package chart

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"time"

	"bplog/internal/modules/measurement/domain"
	"bplog/internal/modules/measurement/dto"
)

const Title = "Blood Pressure over Time"

type ReferenceKind int

const (
	Normal ReferenceKind = iota
	Prehypertension
)

type Reference struct {
	Value float64
	Kind  ReferenceKind
}

// References are the diastolic/systolic guide lines drawn behind the series.
var References = []Reference{
	{Value: 80, Kind: Normal},
	{Value: 120, Kind: Normal},
	{Value: 90, Kind: Prehypertension},
	{Value: 140, Kind: Prehypertension},
}

type Sample struct {
	At        time.Time
	Systolic  int
	Diastolic int
	// DayFraction is the time of day in [0, 1).
	DayFraction float64
}

type Plot struct {
	Samples      []Sample
	Start, End   time.Time
	YMin, YMax   float64
	AvgSystolic  float64
	AvgDiastolic float64
}

type Rect struct {
	X, Y, W, H float64
}

func Build(list dto.ListOutput, loc *time.Location) (Plot, error) {
	if len(list.Records) == 0 {
		return Plot{}, fmt.Errorf("no data to plot")
	}
	samples := make([]Sample, 0, len(list.Records))
	var sumSys, sumDia float64
	lo, hi := References[0].Value, References[0].Value
	for _, r := range list.Records {
		at, err := domain.Record{Date: r.Date, Time: r.Time}.Timestamp(loc)
		if err != nil {
			return Plot{}, fmt.Errorf("record %d timestamp: %w", r.ID, err)
		}
		minutes := at.Hour()*60 + at.Minute()
		samples = append(samples, Sample{
			At:          at,
			Systolic:    r.Systolic,
			Diastolic:   r.Diastolic,
			DayFraction: float64(minutes) / (24 * 60),
		})
		sumSys += float64(r.Systolic)
		sumDia += float64(r.Diastolic)
		lo = math.Min(lo, float64(min(r.Systolic, r.Diastolic)))
		hi = math.Max(hi, float64(max(r.Systolic, r.Diastolic)))
	}
	for _, ref := range References {
		lo = math.Min(lo, ref.Value)
		hi = math.Max(hi, ref.Value)
	}
	sort.SliceStable(samples, func(i, j int) bool { return samples[i].At.Before(samples[j].At) })
	n := float64(len(samples))
	return Plot{
		Samples:      samples,
		Start:        samples[0].At,
		End:          samples[len(samples)-1].At,
		YMin:         math.Floor(lo/10)*10 - 10,
		YMax:         math.Ceil(hi/10)*10 + 10,
		AvgSystolic:  sumSys / n,
		AvgDiastolic: sumDia / n,
	}, nil
}

// Project maps a sample coordinate into area. A single point in time sits in
// the horizontal centre.
func (p Plot) Project(at time.Time, value float64, area Rect) (float64, float64) {
	x := area.X + area.W/2
	if span := p.End.Sub(p.Start); span > 0 {
		x = area.X + float64(at.Sub(p.Start))/float64(span)*area.W
	}
	y := area.Y + area.H - (value-p.YMin)/(p.YMax-p.YMin)*area.H
	return x, y
}

// ValueAt maps a value to its vertical position in area.
func (p Plot) ValueAt(value float64, area Rect) float64 {
	_, y := p.Project(p.Start, value, area)
	return y
}

// Ticks returns the multiples of step within [YMin, YMax], both ends
// inclusive.
func (p Plot) Ticks(step float64) []float64 {
	out := []float64{}
	for v := math.Ceil(p.YMin/step) * step; v <= p.YMax; v += step {
		out = append(out, v)
	}
	return out
}

// Dashes splits [from, to] into dash segments separated by gap.
func Dashes(from, to, dash, gap float64) [][2]float64 {
	if to < from {
		from, to = to, from
	}
	out := [][2]float64{}
	if dash <= 0 {
		return out
	}
	for x := from; x < to; x += dash + gap {
		out = append(out, [2]float64{x, math.Min(x+dash, to)})
	}
	return out
}

// TimeOfDayColor tints points from magenta at midnight to cyan late in the
// day, the reversed "cool" colour map.
func TimeOfDayColor(fraction float64) color.RGBA {
	fraction = math.Max(0, math.Min(1, fraction))
	return color.RGBA{
		R: uint8(math.Round((1 - fraction) * 255)),
		G: uint8(math.Round(fraction * 255)),
		B: 255,
		A: 255,
	}
}
