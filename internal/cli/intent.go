package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"bplog/internal/modules/measurement/domain"
	apperrors "bplog/internal/platform/errors"
)

type Kind int

const (
	// KindShow is the default: plot when a chart can be shown, list otherwise.
	KindShow Kind = iota
	KindAdd
	KindList
	KindRemoveByKey
	KindRemoveLast
	KindExportCSV
	KindSetConfigPath
	KindResetConfig
	KindShowHelp
)

func (k Kind) String() string {
	switch k {
	case KindShow:
		return "show"
	case KindAdd:
		return "add"
	case KindList:
		return "list"
	case KindRemoveByKey:
		return "remove"
	case KindRemoveLast:
		return "remove-last"
	case KindExportCSV:
		return "export-csv"
	case KindSetConfigPath:
		return "set-config-path"
	case KindResetConfig:
		return "reset-config"
	case KindShowHelp:
		return "help"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

const DefaultCSVPath = "bplog_database.csv"

// Intent is the one action an invocation performs. Only the fields relevant
// to Kind are meaningful.
type Intent struct {
	Kind    Kind
	Reading domain.Reading
	Date    string
	Time    string
	// TimeSet distinguishes an explicit -t from the now default.
	TimeSet bool
	Comment string
	Path    string
	Verbose bool
}

// longFlags may be written with a single dash, e.g. -rm or -reset_config.
var longFlags = map[string]bool{
	"rm":           true,
	"rl":           true,
	"csv":          true,
	"config":       true,
	"reset_config": true,
	"list":         true,
	"comment":      true,
	"date":         true,
	"time":         true,
	"output":       true,
	"verbose":      true,
	"help":         true,
}

type flagValues struct {
	comment, date, clockTime, output, config string
	list, rm, rl, csv, reset, help, verbose  bool
}

func newFlagSet(values *flagValues) *pflag.FlagSet {
	fs := pflag.NewFlagSet("bplog", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	fs.StringVarP(&values.comment, "comment", "c", "", "add a comment to the measurement")
	fs.StringVarP(&values.date, "date", "d", "", `date of measurement "YYYY-MM-DD" (default: today)`)
	fs.StringVarP(&values.clockTime, "time", "t", "", `time of measurement "HH:MM" (default: current time)`)
	fs.BoolVarP(&values.list, "list", "l", false, "list all records")
	fs.BoolVar(&values.rm, "rm", false, "remove the measurement at -d/-t")
	fs.BoolVar(&values.rl, "rl", false, "remove the last measurement added")
	fs.BoolVar(&values.csv, "csv", false, "export all records to csv")
	fs.StringVarP(&values.output, "output", "o", DefaultCSVPath, "csv export destination")
	fs.StringVar(&values.config, "config", "", "persist PATH as the database location")
	fs.BoolVar(&values.reset, "reset_config", false, "revert to the default database location")
	fs.BoolVarP(&values.verbose, "verbose", "v", false, "debug logging on stderr")
	fs.BoolVarP(&values.help, "help", "h", false, "show this help")
	return fs
}

// Usage renders the help text.
func Usage() string {
	var values flagValues
	fs := newFlagSet(&values)
	b := strings.Builder{}
	b.WriteString("Record and graph blood pressure measurements\n\n")
	b.WriteString("Usage:\n  bplog [MEASUREMENT] [-c COMMENT] [-d DATE] [-t TIME]\n")
	b.WriteString("        [-rm] [-rl] [-l] [-csv] [-config PATH] [-reset_config] [-h|--help]\n\n")
	b.WriteString("MEASUREMENT is SYSTOLIC:DIASTOLIC, e.g. 120:80.\n")
	b.WriteString("Without arguments the records are plotted, or listed when no chart can be shown.\n\n")
	b.WriteString("Flags:\n")
	b.WriteString(fs.FlagUsages())
	return b.String()
}

// Parse turns the argument list into exactly one Intent. Date and time
// default to now. Precedence among top-level flags is
// help > reset_config > config > rl > rm > list > csv > measurement.
func Parse(args []string, now time.Time) (Intent, error) {
	var values flagValues
	fs := newFlagSet(&values)
	if err := fs.Parse(normalizeArgs(args)); err != nil {
		return Intent{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidFormat, err)
	}
	if values.help {
		return Intent{Kind: KindShowHelp}, nil
	}

	positional := fs.Args()
	if len(positional) > 1 {
		return Intent{}, fmt.Errorf("%w: unexpected argument %q", apperrors.ErrInvalidFormat, positional[1])
	}

	intent := Intent{
		Date:    now.Format(domain.DateLayout),
		Time:    now.Format(domain.TimeLayout),
		Comment: strings.TrimSpace(values.comment),
		Verbose: values.verbose,
	}
	if fs.Changed("date") {
		date, err := domain.ParseDate(values.date)
		if err != nil {
			return Intent{}, err
		}
		intent.Date = date
	}
	if fs.Changed("time") {
		clockTime, err := domain.ParseTime(values.clockTime)
		if err != nil {
			return Intent{}, err
		}
		intent.Time = clockTime
		intent.TimeSet = true
	}
	hasReading := len(positional) == 1
	if hasReading {
		reading, err := domain.ParseReading(positional[0])
		if err != nil {
			return Intent{}, err
		}
		intent.Reading = reading
	}

	switch {
	case values.reset:
		intent.Kind = KindResetConfig
	case fs.Changed("config"):
		intent.Kind = KindSetConfigPath
		intent.Path = values.config
	case values.rl:
		intent.Kind = KindRemoveLast
	case values.rm:
		intent.Kind = KindRemoveByKey
	case values.list:
		intent.Kind = KindList
	case values.csv:
		intent.Kind = KindExportCSV
		intent.Path = values.output
	case hasReading:
		intent.Kind = KindAdd
	default:
		intent.Kind = KindShow
	}
	return intent, nil
}

func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && len(arg) > 2 {
			name := strings.TrimPrefix(arg, "-")
			if idx := strings.IndexByte(name, '='); idx >= 0 {
				name = name[:idx]
			}
			if longFlags[name] {
				arg = "-" + arg
			}
		}
		out = append(out, arg)
	}
	return out
}
