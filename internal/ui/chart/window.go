//go:build cgo

package chart

import (
	"fmt"
	"image/color"
	"os"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bplog/internal/modules/measurement/dto"
)

var (
	background    = color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}
	axisColor     = color.RGBA{R: 0xa6, G: 0xad, B: 0xc8, A: 0xff}
	systolicColor = color.RGBA{R: 0xf3, G: 0x8b, B: 0xa8, A: 0xff}
	diastolicCol  = color.RGBA{R: 0x89, G: 0xb4, B: 0xfa, A: 0xff}
	averageColor  = color.RGBA{R: 0xa6, G: 0xe3, B: 0xa1, A: 0xff}
	normalColor   = color.RGBA{R: 0x6c, G: 0x70, B: 0x86, A: 0xff}
	prehyperColor = color.RGBA{R: 0xeb, G: 0x6f, B: 0x92, A: 0xff}
)

const (
	windowWidth  = 960
	windowHeight = 600
	marginLeft   = 56
	marginRight  = 110
	marginTop    = 40
	marginBottom = 48
)

// Available reports whether a window can be opened on this machine.
func Available() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

type Window struct {
	loc *time.Location
}

func NewWindow() Window {
	return Window{loc: time.Local}
}

// Show blocks until the chart window is closed.
func (w Window) Show(list dto.ListOutput) error {
	plot, err := Build(list, w.loc)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(&chartGame{plot: plot, width: windowWidth, height: windowHeight}); err != nil {
		return fmt.Errorf("chart window: %w", err)
	}
	return nil
}

type chartGame struct {
	plot          Plot
	width, height int
}

func (g *chartGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *chartGame) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	area := Rect{
		X: marginLeft,
		Y: marginTop,
		W: float64(g.width - marginLeft - marginRight),
		H: float64(g.height - marginTop - marginBottom),
	}
	p := g.plot

	ebitenutil.DebugPrintAt(screen, Title, int(area.X), 12)
	for _, tick := range p.Ticks(20) {
		y := p.ValueAt(tick, area)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%3.0f", tick), 20, int(y)-8)
	}
	ebitenutil.DebugPrintAt(screen, "mmHg", 12, int(area.Y)-24)

	for _, ref := range References {
		clr := normalColor
		if ref.Kind == Prehypertension {
			clr = prehyperColor
		}
		g.hline(screen, p.ValueAt(ref.Value, area), area, 2, 4, clr)
	}
	g.hline(screen, p.ValueAt(p.AvgSystolic, area), area, 8, 6, averageColor)
	g.hline(screen, p.ValueAt(p.AvgDiastolic, area), area, 8, 6, averageColor)

	vector.StrokeLine(screen, f32(area.X), f32(area.Y+area.H), f32(area.X+area.W), f32(area.Y+area.H), 1, axisColor, false)
	vector.StrokeLine(screen, f32(area.X), f32(area.Y), f32(area.X), f32(area.Y+area.H), 1, axisColor, false)

	g.series(screen, area, systolicColor, func(s Sample) int { return s.Systolic })
	g.series(screen, area, diastolicCol, func(s Sample) int { return s.Diastolic })

	bottom := int(area.Y+area.H) + 8
	ebitenutil.DebugPrintAt(screen, p.Start.Format("2006-01-02 15:04"), int(area.X), bottom)
	if p.End.After(p.Start) {
		ebitenutil.DebugPrintAt(screen, p.End.Format("2006-01-02 15:04"), int(area.X+area.W)-96, bottom)
	}
	ebitenutil.DebugPrintAt(screen, "Date", int(area.X+area.W/2)-12, bottom+18)

	g.legend(screen, area)
	g.colorbar(screen, area)
}

func (g *chartGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *chartGame) series(screen *ebiten.Image, area Rect, clr color.Color, value func(Sample) int) {
	var prevX, prevY float64
	for i, s := range g.plot.Samples {
		x, y := g.plot.Project(s.At, float64(value(s)), area)
		if i > 0 {
			vector.StrokeLine(screen, f32(prevX), f32(prevY), f32(x), f32(y), 2, clr, true)
		}
		prevX, prevY = x, y
	}
	for _, s := range g.plot.Samples {
		x, y := g.plot.Project(s.At, float64(value(s)), area)
		vector.DrawFilledCircle(screen, f32(x), f32(y), 4, TimeOfDayColor(s.DayFraction), true)
	}
}

func (g *chartGame) hline(screen *ebiten.Image, y float64, area Rect, dash, gap float64, clr color.Color) {
	for _, seg := range Dashes(area.X, area.X+area.W, dash, gap) {
		vector.StrokeLine(screen, f32(seg[0]), f32(y), f32(seg[1]), f32(y), 1, clr, false)
	}
}

func (g *chartGame) legend(screen *ebiten.Image, area Rect) {
	x := int(area.X + area.W - 150)
	items := []struct {
		label string
		clr   color.Color
	}{
		{"systolic", systolicColor},
		{"diastolic", diastolicCol},
		{"normal", normalColor},
		{"prehypertension", prehyperColor},
		{"average", averageColor},
	}
	for i, item := range items {
		y := int(area.Y) + 6 + i*16
		vector.DrawFilledRect(screen, float32(x), float32(y+4), 12, 4, item.clr, false)
		ebitenutil.DebugPrintAt(screen, item.label, x+18, y-2)
	}
}

func (g *chartGame) colorbar(screen *ebiten.Image, area Rect) {
	x := float32(area.X + area.W + 24)
	const steps = 48
	h := area.H / steps
	for i := 0; i < steps; i++ {
		fraction := float64(i) / steps
		y := area.Y + area.H - float64(i+1)*h
		vector.DrawFilledRect(screen, x, f32(y), 14, f32(h)+1, TimeOfDayColor(fraction), false)
	}
	for i, label := range []string{"0:00", "06:00", "12:00", "18:00", "0:00"} {
		y := area.Y + area.H - float64(i)*area.H/4
		ebitenutil.DebugPrintAt(screen, label, int(x)+20, int(y)-8)
	}
	ebitenutil.DebugPrintAt(screen, "time of day", int(x)-8, int(area.Y)-24)
}

func f32(v float64) float32 {
	return float32(v)
}
