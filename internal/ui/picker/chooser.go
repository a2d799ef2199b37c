package picker

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"bplog/internal/modules/measurement/domain"
	measurementout "bplog/internal/modules/measurement/port/out"
)

type Chooser struct {
	in  io.Reader
	out io.Writer
}

func NewChooser(in io.Reader, out io.Writer) measurementout.Chooser {
	return Chooser{in: in, out: out}
}

func (c Chooser) Choose(ctx context.Context, candidates []domain.Record) (domain.Record, bool, error) {
	if len(candidates) == 0 {
		return domain.Record{}, false, nil
	}
	program := tea.NewProgram(
		NewModel(candidates),
		tea.WithContext(ctx),
		tea.WithInput(c.in),
		tea.WithOutput(c.out),
	)
	final, err := program.Run()
	if err != nil {
		return domain.Record{}, false, fmt.Errorf("run picker: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return domain.Record{}, false, fmt.Errorf("unexpected picker model %T", final)
	}
	chosen, ok := model.Selected()
	return chosen, ok, nil
}
