package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"bplog/internal/bootstrap"
	"bplog/internal/cli"
	"bplog/internal/platform/config"
	"bplog/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "bplog:", err)
		os.Exit(1)
	}
}

// newRootCmd hands the raw arguments to cli.Parse, which accepts the
// single-dash long flags cobra would reject.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "bplog [MEASUREMENT] [flags]",
		Short:              "Record and graph blood pressure measurements",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			intent, err := cli.Parse(args, time.Now())
			if err != nil {
				return err
			}
			if intent.Kind == cli.KindShowHelp {
				_, err := fmt.Fprint(cmd.OutOrStdout(), cli.Usage())
				return err
			}
			return run(cmd.Context(), intent)
		},
	}
}

func run(ctx context.Context, intent cli.Intent) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Default()
	if err != nil {
		return err
	}
	app, err := bootstrap.New(cfg, bootstrap.Options{
		Logger: logging.New(os.Stderr, intent.Verbose),
	})
	if err != nil {
		return err
	}
	return app.Execute(ctx, intent)
}
