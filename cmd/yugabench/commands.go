package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yugabench/yugabench/internal/aggregate"
	"github.com/yugabench/yugabench/internal/catalog"
	"github.com/yugabench/yugabench/internal/catalog/packs"
	"github.com/yugabench/yugabench/internal/config"
	"github.com/yugabench/yugabench/internal/connector"
	"github.com/yugabench/yugabench/internal/executor"
	"github.com/yugabench/yugabench/internal/models"
	"github.com/yugabench/yugabench/internal/output"
	"github.com/yugabench/yugabench/internal/policy"
	"github.com/yugabench/yugabench/internal/report"
	"github.com/yugabench/yugabench/internal/version"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "yugabench",
		Short:         "YugabyteDB CIS benchmark auditor",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logrus.SetLevel(lvl)
			logrus.SetOutput(os.Stderr)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "Log level: debug, info, warning, error")

	root.AddCommand(newAuditCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newAuditCmd() *cobra.Command {
	target := config.DefaultTarget()
	var (
		profileLevel  int
		sections      []string
		excludeManual bool
		failThreshold int
		checkTimeout  time.Duration
		workers       int
		policyPath    string
		format        string
		outputPath    string
		colored       bool
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Run the benchmark against a live cluster",
		Long: `Run the catalogued controls against a YugabyteDB cluster's YSQL interface
and print a scored compliance report.

The connection is read-only; no check ever mutates cluster state. Exit codes:
0 compliant, 1 non-compliant, 2 audit incomplete (one or more controls could
not be evaluated), 3 fatal error before any check ran.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			run := config.Run{
				ProfileLevel:  models.ProfileLevel(profileLevel),
				Sections:      sections,
				ExcludeManual: excludeManual,
				FailThreshold: failThreshold,
				CheckTimeout:  checkTimeout,
				Workers:       workers,
				PolicyPath:    policyPath,
			}
			if err := config.Validate(target, run); err != nil {
				return err
			}
			sink, ok := report.ForFormat(format)
			if !ok && format != "console" {
				return fmt.Errorf("unknown format %q; valid formats: console, json, csv, html", format)
			}
			return runAudit(cmd.Context(), target, run, sink, outputPath, output.Options{Colored: colored, Verbose: verbose})
		},
	}

	cmd.Flags().StringVar(&target.Host, "host", target.Host, "YSQL host")
	cmd.Flags().IntVar(&target.Port, "port", target.Port, "YSQL port")
	cmd.Flags().StringVar(&target.Database, "dbname", target.Database, "Database name")
	cmd.Flags().StringVar(&target.User, "user", target.User, "Database user")
	cmd.Flags().StringVar(&target.Password, "password", target.Password, "Database password (or set YB_PASSWORD)")
	cmd.Flags().DurationVar(&target.ConnectTimeout, "connect-timeout", target.ConnectTimeout, "Network timeout for session establishment")

	cmd.Flags().IntVar(&profileLevel, "profile-level", 1, "CIS profile level: 1 or 2 (level 2 includes level 1)")
	cmd.Flags().StringSliceVar(&sections, "sections", nil, "Restrict to named sections (e.g. connection_and_login)")
	cmd.Flags().BoolVar(&excludeManual, "exclude-manual", false, "Drop manual controls from the run entirely")
	cmd.Flags().IntVar(&failThreshold, "fail-threshold", 0, "Maximum tolerated FAIL controls before the run is NON_COMPLIANT")
	cmd.Flags().DurationVar(&checkTimeout, "check-timeout", executor.DefaultCheckTimeout, "Timeout per check execution")
	cmd.Flags().IntVar(&workers, "workers", 1, "Parallel check workers (1 = sequential)")
	cmd.Flags().StringVar(&policyPath, "policy", "", "Run-policy YAML file")
	cmd.Flags().StringVar(&format, "format", "console", "Output format: console, json, csv or html")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&colored, "color", false, "Colorize console status output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include per-check evidence in console output")

	return cmd
}

// runAudit wires catalogue, policy, connector and executor together, renders
// the result, and maps the verdict to the process exit code.
func runAudit(ctx context.Context, target config.Target, run config.Run, sink report.Sink, outputPath string, opts output.Options) error {
	cat, err := packs.Default()
	if err != nil {
		return err
	}

	// Policy application happens before execution: severity overrides are
	// baked into a derived catalogue, disabled controls become the skip set.
	var pol *policy.Config
	if run.PolicyPath != "" {
		pol, err = policy.Load(run.PolicyPath)
		if err != nil {
			return fmt.Errorf("load policy %q: %w", run.PolicyPath, err)
		}
		if errs := policy.Validate(pol, cat.IDs()); len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "policy: %v\n", e)
			}
			return fmt.Errorf("policy file %q is invalid", run.PolicyPath)
		}
		if run.FailThreshold == 0 && pol.FailThreshold > 0 {
			run.FailThreshold = pol.FailThreshold
		}
	}
	controls, skip := policy.Apply(cat.Controls(), pol)
	cat, err = catalog.New(controls)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logrus.WithField("component", "audit")
	conn := connector.NewPG(connector.Params{
		Host:           target.Host,
		Port:           target.Port,
		Database:       target.Database,
		User:           target.User,
		Password:       target.Password,
		ConnectTimeout: target.ConnectTimeout,
	}, logrus.WithField("component", "connector"))
	defer conn.Close()

	// An unreachable target is the one connector failure that is fatal:
	// no check could produce anything but ERROR.
	if err := conn.Connect(ctx); err != nil {
		return fmt.Errorf("cannot establish initial session with %s:%d: %w", target.Host, target.Port, err)
	}
	clusterInfo, err := conn.ClusterInfo(ctx)
	if err != nil {
		return fmt.Errorf("cannot gather cluster info from %s:%d: %w", target.Host, target.Port, err)
	}

	runner := executor.New(conn, executor.Options{
		Workers:      run.Workers,
		CheckTimeout: run.CheckTimeout,
		Skip:         skip,
	}, log)

	result := runner.Run(ctx, cat, catalog.Filter{
		MaxProfile:    run.ProfileLevel,
		Sections:      run.Sections,
		ExcludeManual: run.ExcludeManual,
	}, aggregate.Meta{
		Target:        target.Info(),
		ClusterInfo:   clusterInfo,
		ProfileLevel:  run.ProfileLevel,
		ExcludeManual: run.ExcludeManual,
		FailThreshold: run.FailThreshold,
	})

	if err := renderResult(result, sink, outputPath, opts); err != nil {
		return err
	}

	conn.Close()
	switch {
	case result.Summary.Incomplete || result.Truncated:
		os.Exit(exitIncomplete)
	case result.Summary.Verdict == models.VerdictNonCompliant:
		os.Exit(exitNonCompliant)
	}
	return nil
}

// renderResult sends the finalized run to the chosen destination. A nil sink
// selects the console renderer, which is the only one accepting partial runs;
// a truncated run falls back to it so an aborted audit still surfaces what it
// gathered and the process can exit with the incomplete code rather than a
// fatal one.
func renderResult(result *models.RunResult, sink report.Sink, outputPath string, opts output.Options) error {
	if sink != nil && result.Truncated {
		fmt.Fprintf(os.Stderr, "run aborted before completion; %s output refuses partial results, printing console summary\n", sink.Name())
		sink = nil
	}
	if sink == nil {
		w := os.Stdout
		if outputPath != "" {
			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("create output file %q: %w", outputPath, err)
			}
			defer f.Close()
			w = f
			opts.Colored = false
		}
		output.RenderSummary(w, result, opts)
		fmt.Fprintln(w)
		output.RenderTable(w, result, opts)
		return nil
	}

	if outputPath == "" {
		return sink.Render(os.Stdout, result)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output file %q: %w", outputPath, err)
	}
	defer f.Close()
	if err := sink.Render(f, result); err != nil {
		return fmt.Errorf("render %s report: %w", sink.Name(), err)
	}
	return nil
}

func newListCmd() *cobra.Command {
	var (
		profileLevel  int
		sections      []string
		excludeManual bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalogued controls without contacting a target",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := packs.Default()
			if err != nil {
				return err
			}
			level := models.ProfileLevel(profileLevel)
			if !level.Valid() {
				return fmt.Errorf("unknown profile level %d; valid levels: 1, 2", profileLevel)
			}
			selected := cat.Select(catalog.Filter{
				MaxProfile:    level,
				Sections:      sections,
				ExcludeManual: excludeManual,
			})

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-6s  %-9s  %-8s  %-10s  %s\n", "ID", "TYPE", "LEVEL", "SEVERITY", "TITLE")
			for _, ctl := range selected {
				kind := "auto"
				if !ctl.Automated {
					kind = "manual"
				}
				fmt.Fprintf(w, "%-6s  %-9s  %-8s  %-10s  %s\n",
					ctl.ID, kind, ctl.ProfileLevel, ctl.Severity, ctl.Title)
			}
			fmt.Fprintf(w, "\n%d controls\n", len(selected))
			return nil
		},
	}

	cmd.Flags().IntVar(&profileLevel, "profile-level", 2, "CIS profile level filter")
	cmd.Flags().StringSliceVar(&sections, "sections", nil, "Restrict to named sections")
	cmd.Flags().BoolVar(&excludeManual, "exclude-manual", false, "Hide manual controls")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var policyPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate catalogue integrity and the policy file without contacting a target",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := packs.Default()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "catalogue OK: %d controls across %d sections\n", cat.Len(), len(cat.Sections()))

			if policyPath != "" {
				pol, err := policy.Load(policyPath)
				if err != nil {
					return fmt.Errorf("load policy %q: %w", policyPath, err)
				}
				if errs := policy.Validate(pol, cat.IDs()); len(errs) > 0 {
					for _, e := range errs {
						fmt.Fprintf(cmd.ErrOrStderr(), "policy: %v\n", e)
					}
					return fmt.Errorf("policy file %q is invalid", policyPath)
				}
				fmt.Fprintf(w, "policy OK: %s\n", policyPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&policyPath, "policy", "", "Run-policy YAML file to validate")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.Info())
		},
	}
}
