package main

import (
	"fmt"
	"io"

	"github.com/aiof/projection-engine/internal/calculation"
	"github.com/aiof/projection-engine/internal/config"
	"github.com/aiof/projection-engine/internal/domain"
	"github.com/aiof/projection-engine/internal/logging"
	"github.com/aiof/projection-engine/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app holds the state shared by every subcommand
type app struct {
	catalogPath string
	logLevel    string
	logFormat   string

	log     *logrus.Logger
	catalog *domain.RateCatalog
	engine  *calculation.Engine
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "aiof",
		Short:         "Household finance projections: snapshot analytics, life events and Coast FIRE",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.catalogPath, "catalog", "", "rate catalog file (YAML or JSON); built-in defaults when empty")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", logging.FormatText, "log format (text or json)")

	root.AddCommand(
		a.analyzeCmd(),
		a.futureValueCmd(),
		a.debtToIncomeCmd(),
		a.lifeEventCmd(),
		a.lifeEventTypesCmd(),
		a.coastFireCmd(),
		a.childrenCostCmd(),
		a.catalogCmd(),
		a.serveCmd(),
	)
	return root
}

func (a *app) setup(stderr io.Writer) error {
	log, err := logging.NewWithOutput(stderr, a.logLevel, a.logFormat)
	if err != nil {
		return err
	}
	a.log = log

	catalog, err := config.NewCatalogLoader().Load(a.catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	a.catalog = catalog

	a.engine = calculation.NewEngine(*catalog)
	a.engine.SetLogger(logging.NewAdapter(log, "engine"))
	a.log.Debugf("catalog loaded (rounding %d, horizons %v)", catalog.RoundingDigit, catalog.Horizons)
	return nil
}

// render writes report to the command's output in the named format
func render(cmd *cobra.Command, format string, report *output.Report) error {
	f, err := output.ResolveFormatter(format)
	if err != nil {
		return err
	}
	return output.WriteFormatted(cmd.OutOrStdout(), f, report)
}

// addIOFlags registers --input and --format on a computing subcommand
func addIOFlags(cmd *cobra.Command, input, format *string, inputRequired bool) {
	cmd.Flags().StringVarP(input, "input", "i", "", "request file (YAML, or JSON with a .json extension)")
	cmd.Flags().StringVarP(format, "format", "f", "console", "output format (console, csv, json, yaml)")
	if inputRequired {
		_ = cmd.MarkFlagRequired("input")
	}
}
