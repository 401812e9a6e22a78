package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DabicD/Recruitment/internal/domain/schema"
	"github.com/DabicD/Recruitment/internal/engine"
	"github.com/DabicD/Recruitment/internal/export"
	"github.com/DabicD/Recruitment/internal/logging"
	"github.com/DabicD/Recruitment/internal/network"
	"github.com/DabicD/Recruitment/internal/repl"
)

// optionalString records whether a flag was given, so an empty value
// stays distinct from an absent attribute
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string { return o.value }

func (o *optionalString) Set(v string) error {
	o.value = v
	o.set = true
	return nil
}

func main() {
	serverMode := flag.Bool("server", false, "Run in server mode")
	port := flag.Int("port", 4444, "Port to listen on")
	sortColumn := flag.Int("sort", -1, "Sort by this column index before printing")
	xlsxPath := flag.String("xlsx", "", "Export the rendered table to this .xlsx file")
	seqURL := flag.String("seq", "", "Seq server URL for log shipping (overrides "+logging.EnvSeqURL+")")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides "+logging.EnvLogLevel+")")

	var columns, data, summary, rules optionalString
	flag.Var(&columns, schema.AttrColumns, "Comma-separated column names")
	flag.Var(&data, schema.AttrData, "Rows separated by ';', cells by ','")
	flag.Var(&summary, schema.AttrSummary, "Comma-separated aggregation kinds: none, count, sum, avg")
	flag.Var(&rules, "rules", "Comma-separated fill rules, e.g. 2=0/1")
	flag.Parse()

	opts, err := logging.OptionsFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *seqURL != "" {
		opts.SeqURL = *seqURL
	}
	if *logLevel != "" {
		level, err := logging.ParseLevel(*logLevel)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		opts.Level = level
	}

	logger, closeFn := logging.SetupLogger(opts)
	defer closeFn()
	slog.SetDefault(logger)

	attrs := schema.Attributes{}
	for name, v := range map[string]optionalString{
		schema.AttrColumns:   columns,
		schema.AttrData:      data,
		schema.AttrSummary:   summary,
		schema.AttrFillRules: rules,
	} {
		if v.set {
			attrs[name] = v.value
		}
	}

	switch {
	case len(attrs) > 0:
		if err := renderOnce(attrs, *sortColumn, *xlsxPath); err != nil {
			slog.Error("render failed", "error", err)
			closeFn()
			os.Exit(1)
		}

	case *serverMode:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		slog.Info("Starting Server mode...")
		if err := network.ListenAndServe(ctx, fmt.Sprintf(":%d", *port)); err != nil {
			slog.Error("server stopped", "error", err)
			closeFn()
			os.Exit(1)
		}
		slog.Info("Shutting down")

	default:
		slog.Debug("Starting REPL mode...")
		repl.Start()
	}
}

func renderOnce(attrs schema.Attributes, sortColumn int, xlsxPath string) error {
	eng := engine.New()
	eng.AddObserver(engine.NewLoggingObserver())

	// Configuration errors still render their placeholder
	_, _ = eng.Apply(attrs)
	if sortColumn >= 0 {
		eng.SortByColumn(sortColumn)
	}

	res := eng.Render()
	repl.PrintResult(os.Stdout, res)

	if xlsxPath != "" {
		if err := export.SaveXLSX(xlsxPath, res); err != nil {
			return err
		}
		slog.Info("Exported table", "path", xlsxPath)
	}
	return nil
}
