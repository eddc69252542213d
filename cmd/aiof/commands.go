package main

import (
	"fmt"

	"github.com/aiof/projection-engine/internal/api"
	"github.com/aiof/projection-engine/internal/calculation"
	"github.com/aiof/projection-engine/internal/config"
	"github.com/aiof/projection-engine/internal/domain"
	"github.com/aiof/projection-engine/internal/logging"
	"github.com/aiof/projection-engine/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (a *app) analyzeCmd() *cobra.Command {
	var input, format string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Totals, liquidity, debt-to-income and asset future values for a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req domain.SnapshotRequest
			if err := config.LoadRequest(input, &req); err != nil {
				return err
			}
			res, err := a.engine.Analyze(req.Assets, req.Liabilities)
			if err != nil {
				return err
			}
			return render(cmd, format, output.NewAnalyzeReport(res))
		},
	}
	addIOFlags(cmd, &input, &format, true)
	return cmd
}

func (a *app) futureValueCmd() *cobra.Command {
	var input, format string
	cmd := &cobra.Command{
		Use:   "fv",
		Short: "Future value of each asset at every catalog horizon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req domain.SnapshotRequest
			if err := config.LoadRequest(input, &req); err != nil {
				return err
			}
			return render(cmd, format, output.NewAssetsFVReport(a.engine.AssetsFutureValue(req.Assets)))
		},
	}
	addIOFlags(cmd, &input, &format, true)
	return cmd
}

func (a *app) debtToIncomeCmd() *cobra.Command {
	var input, format, income string
	cmd := &cobra.Command{
		Use:   "dti",
		Short: "Debt-to-income ratio for an annual income",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req domain.DebtToIncomeRequest
			if err := config.LoadRequest(input, &req); err != nil {
				return err
			}
			if income != "" {
				v, err := decimal.NewFromString(income)
				if err != nil {
					return fmt.Errorf("invalid income %q: %w", income, err)
				}
				req.Income = v
			}
			ratio, err := a.engine.DebtToIncomeRatio(req.Income, req.Liabilities)
			if err != nil {
				return err
			}
			return render(cmd, format, output.NewDebtToIncomeReport(ratio))
		},
	}
	addIOFlags(cmd, &input, &format, true)
	cmd.Flags().StringVar(&income, "income", "", "annual income, overriding the request file")
	return cmd
}

func (a *app) lifeEventCmd() *cobra.Command {
	var input, format, eventType string
	var strict bool
	cmd := &cobra.Command{
		Use:   "life-event",
		Short: "Simulate a life event against a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req domain.LifeEventRequest
			if err := config.LoadRequest(input, &req); err != nil {
				return err
			}
			if eventType != "" {
				req.Type = eventType
			}
			res, err := a.engine.SimulateLifeEvent(req.Type, req.Assets, req.Liabilities)
			if err != nil {
				return err
			}
			if strict {
				if err := calculation.LifeEventErr(res); err != nil {
					return fmt.Errorf("life event %q: %w", req.Type, err)
				}
			}
			return render(cmd, format, output.NewLifeEventReport(res))
		},
	}
	addIOFlags(cmd, &input, &format, true)
	cmd.Flags().StringVarP(&eventType, "type", "t", "", "event type, overriding the request file")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on unrecognized or unmodeled event types")
	return cmd
}

func (a *app) lifeEventTypesCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "life-event-types",
		Short: "List the recognized life event types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd, format, output.NewLifeEventTypesReport(a.engine.LifeEventTypes()))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, csv, json, yaml)")
	return cmd
}

func (a *app) coastFireCmd() *cobra.Command {
	var input, format string
	cmd := &cobra.Command{
		Use:   "coast-fire",
		Short: "Project a Coast FIRE savings schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req domain.CoastFireRequest
			if err := config.LoadRequest(input, &req); err != nil {
				return err
			}
			years, err := a.engine.CoastFireRequest(req)
			if err != nil {
				return err
			}
			return render(cmd, format, output.NewCoastFireReport(years))
		},
	}
	addIOFlags(cmd, &input, &format, true)
	return cmd
}

func (a *app) childrenCostCmd() *cobra.Command {
	var input, format string
	cmd := &cobra.Command{
		Use:   "children-cost",
		Short: "Cost of raising children under several interest assumptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req domain.ChildCostRequest
			if input != "" {
				if err := config.LoadRequest(input, &req); err != nil {
					return err
				}
			}
			costs, err := a.engine.CostOfRaisingChildren(req)
			if err != nil {
				return err
			}
			return render(cmd, format, output.NewChildCostReport(costs))
		},
	}
	addIOFlags(cmd, &input, &format, false)
	return cmd
}

func (a *app) catalogCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the effective rate catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd, format, output.NewCatalogReport(a.catalog))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (console, csv, json, yaml)")
	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadServerConfig(nil)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if !cmd.Flags().Changed("log-level") && !cmd.Flags().Changed("log-format") {
				log, err := logging.NewWithOutput(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
				if err != nil {
					return err
				}
				a.log = log
				a.engine.SetLogger(logging.NewAdapter(log, "engine"))
			}
			return api.NewServer(a.engine, a.log, cfg).ListenAndServe()
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port, overriding AIOF_PORT")
	return cmd
}
