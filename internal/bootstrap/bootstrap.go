package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"bplog/internal/cli"
	measurementinadapter "bplog/internal/modules/measurement/adapter/in"
	measurementoutadapter "bplog/internal/modules/measurement/adapter/out"
	measurementout "bplog/internal/modules/measurement/port/out"
	measurementservice "bplog/internal/modules/measurement/service"
	measurementusecase "bplog/internal/modules/measurement/usecase"
	settingsinadapter "bplog/internal/modules/settings/adapter/in"
	settingsoutadapter "bplog/internal/modules/settings/adapter/out"
	settingsservice "bplog/internal/modules/settings/service"
	settingsusecase "bplog/internal/modules/settings/usecase"
	"bplog/internal/platform/clock"
	"bplog/internal/platform/config"
	"bplog/internal/platform/logging"
	"bplog/internal/ui/chart"
	"bplog/internal/ui/picker"
	"bplog/internal/ui/render"
)

// Options overrides the process environment. Zero values fall back to the
// real streams, system clock and probed capabilities.
type Options struct {
	Stdin        *os.File
	Stdout       io.Writer
	Logger       *log.Logger
	Clock        clock.Clock
	Capabilities *render.Capabilities
	Plotter      render.Plotter
	Chooser      measurementout.Chooser
}

type App struct {
	SettingsCLI settingsinadapter.CLIHandler
	Presenter   render.Presenter

	out     io.Writer
	logger  *log.Logger
	clock   clock.Clock
	chooser measurementout.Chooser
}

func New(cfg config.Config, opts Options) (*App, error) {
	if cfg.ConfigFile == "" || cfg.DefaultDBPath == "" {
		return nil, fmt.Errorf("config is incomplete")
	}
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.New(os.Stderr, false)
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.SystemClock{}
	}

	var caps render.Capabilities
	if opts.Capabilities != nil {
		caps = *opts.Capabilities
	} else {
		stdout, _ := out.(*os.File)
		caps = render.Probe(stdin, stdout, chart.Available())
	}
	plotter := opts.Plotter
	if plotter == nil && caps.Chart {
		plotter = chart.NewWindow()
	}
	chooser := opts.Chooser
	if chooser == nil && caps.Interactive {
		chooser = picker.NewChooser(stdin, out)
	}
	logger.Debug("capabilities", "rich_table", caps.RichTable, "chart", caps.Chart, "interactive", caps.Interactive)

	settingsUC := settingsusecase.NewInteractor(settingsservice.NewLocatorService(
		settingsoutadapter.NewYAMLSettingsStore(cfg.ConfigFile),
		settingsoutadapter.NewFSPathProbe(),
		cfg.DefaultDBPath,
		config.DatabaseName(),
		logger,
	))

	return &App{
		SettingsCLI: settingsinadapter.NewCLIHandler(settingsUC),
		Presenter:   render.NewPresenter(out, caps, plotter, logger),
		out:         out,
		logger:      logger,
		clock:       clk,
		chooser:     chooser,
	}, nil
}

// Execute performs one parsed intent. Help is rendered by the caller.
func (a *App) Execute(ctx context.Context, intent cli.Intent) error {
	a.logger.Debug("execute", "intent", intent.Kind)
	switch intent.Kind {
	case cli.KindShowHelp:
		_, err := io.WriteString(a.out, cli.Usage())
		return err
	case cli.KindSetConfigPath:
		out, err := a.SettingsCLI.SetPath(ctx, intent.Path)
		if err != nil {
			return err
		}
		return a.printf("database path set to %s\n", out.Path)
	case cli.KindResetConfig:
		out, err := a.SettingsCLI.Reset(ctx)
		if err != nil {
			return err
		}
		return a.printf("database path reset to %s\n", out.Path)
	}

	measurements, closeStore, err := a.openMeasurements(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	switch intent.Kind {
	case cli.KindAdd:
		out, err := measurements.Add(ctx, intent.Reading.String(), intent.Date, intent.Time, intent.Comment)
		if err != nil {
			return err
		}
		return a.printf("measurement added: %d:%d (%s %s)\n", out.Systolic, out.Diastolic, out.Date, out.Time)
	case cli.KindList:
		list, err := measurements.List(ctx)
		if err != nil {
			return err
		}
		return a.Presenter.RenderTable(list)
	case cli.KindRemoveByKey:
		clockTime := ""
		if intent.TimeSet {
			clockTime = intent.Time
		}
		out, err := measurements.Remove(ctx, intent.Date, clockTime)
		if err != nil {
			return err
		}
		for _, r := range out.Removed {
			if err := a.printf("measurement removed: %d:%d (%s %s)\n", r.Systolic, r.Diastolic, r.Date, r.Time); err != nil {
				return err
			}
		}
		if len(out.Removed) == 0 {
			return a.printf("nothing removed\n")
		}
		return nil
	case cli.KindRemoveLast:
		out, err := measurements.RemoveLast(ctx)
		if err != nil {
			return err
		}
		return a.printf("last measurement removed: %d:%d (%s %s)\n", out.Systolic, out.Diastolic, out.Date, out.Time)
	case cli.KindExportCSV:
		out, err := measurements.Export(ctx, intent.Path)
		if err != nil {
			return err
		}
		return a.printf("exported %d records to %s\n", out.Count, out.Path)
	case cli.KindShow:
		list, err := measurements.List(ctx)
		if err != nil {
			return err
		}
		return a.Presenter.RenderPlot(list)
	default:
		return fmt.Errorf("unhandled intent %s", intent.Kind)
	}
}

func (a *App) openMeasurements(ctx context.Context) (measurementinadapter.CLIHandler, func(), error) {
	location, err := a.SettingsCLI.ResolvePath(ctx)
	if err != nil {
		return measurementinadapter.CLIHandler{}, nil, err
	}
	a.logger.Debug("store", "path", location.Path, "overridden", location.Overridden)
	store, err := measurementoutadapter.OpenSQLiteRecordStore(ctx, location.Path)
	if err != nil {
		return measurementinadapter.CLIHandler{}, nil, err
	}
	svc := measurementservice.NewRecordService(a.clock, store, measurementoutadapter.NewCSVExporter(), a.chooser, a.logger)
	closeStore := func() {
		if err := store.Close(); err != nil {
			a.logger.Warn("close store", "err", err)
		}
	}
	return measurementinadapter.NewCLIHandler(measurementusecase.NewInteractor(svc)), closeStore, nil
}

func (a *App) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(a.out, format, args...)
	return err
}
