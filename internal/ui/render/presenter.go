package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"bplog/internal/modules/measurement/dto"
)

type Plotter interface {
	Show(list dto.ListOutput) error
}

type Presenter struct {
	out     io.Writer
	caps    Capabilities
	plotter Plotter
	logger  *log.Logger
}

// NewPresenter picks the output form from caps. plotter may be nil when no
// chart backend exists; Chart is then treated as absent.
func NewPresenter(out io.Writer, caps Capabilities, plotter Plotter, logger *log.Logger) Presenter {
	if plotter == nil {
		caps.Chart = false
	}
	return Presenter{out: out, caps: caps, plotter: plotter, logger: logger}
}

func (p Presenter) Capabilities() Capabilities {
	return p.caps
}

func (p Presenter) RenderTable(list dto.ListOutput) error {
	if len(list.Records) == 0 {
		_, err := fmt.Fprintln(p.out, "no records")
		return err
	}
	if p.caps.RichTable {
		_, err := fmt.Fprintln(p.out, richTable(list))
		return err
	}
	_, err := io.WriteString(p.out, plainTable(list))
	return err
}

// RenderPlot falls back to the table when no chart can be shown, including
// when the window fails to open.
func (p Presenter) RenderPlot(list dto.ListOutput) error {
	if !p.caps.Chart {
		return p.RenderTable(list)
	}
	if len(list.Records) == 0 {
		_, err := fmt.Fprintln(p.out, "no data to plot")
		return err
	}
	if err := p.plotter.Show(list); err != nil {
		p.logger.Debug("chart unavailable, listing instead", "err", err)
		return p.RenderTable(list)
	}
	return nil
}
