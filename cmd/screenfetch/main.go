package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/genricoloni/screenfetch/internal/cfgtree"
	"github.com/genricoloni/screenfetch/internal/config"
	"github.com/genricoloni/screenfetch/internal/domain"
	"github.com/genricoloni/screenfetch/internal/dpi"
	"github.com/genricoloni/screenfetch/internal/engine"
	"github.com/genricoloni/screenfetch/internal/locator"
	"github.com/genricoloni/screenfetch/internal/monitor"
	"github.com/genricoloni/screenfetch/internal/report"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AppOptions is the dependency graph of the snapshot pipeline.
// It expects a *pflag.FlagSet to be supplied.
var AppOptions = fx.Options(
	// Logger configuration
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	// Provide dependencies
	fx.Provide(
		config.Load,
		newLogger,
		cfgtree.NewSystemStore,
		monitor.NewDisplayDevices,
		fx.Annotate(monitor.NewEnumerator, fx.As(new(domain.AdapterEnumerator))),
		fx.Annotate(monitor.NewVendorDetector, fx.As(new(domain.VendorDetector))),
		fx.Annotate(monitor.NewIdentifier, fx.As(new(domain.MonitorIdentifier))),
		fx.Annotate(monitor.NewDPIQuerier, fx.As(new(domain.DPIQuerier))),
		fx.Annotate(locator.NewLocator, fx.As(new(domain.EDIDLocator)), fx.As(new(domain.DPIOverrideSource))),
		newScaleResolver,
		engine.NewEngine,
		report.NewRenderer,
	),
)

func main() {
	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	app := fx.New(
		fx.Supply(flags),
		AppOptions,
		fx.Invoke(registerHooks),
	)

	// The snapshot runs in OnStart, so Start returns once it is printed
	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "screenfetch:", err)
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "screenfetch:", err)
		os.Exit(1)
	}
}

// newLogger creates a console logger on stderr at the configured level
func newLogger(cfg *config.AppConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = level
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.DisableStacktrace = true
	return zcfg.Build()
}

// newScaleResolver wires the DPI cascade with the configured quirk handling
func newScaleResolver(
	logger *zap.Logger,
	overrides domain.DPIOverrideSource,
	querier domain.DPIQuerier,
	cfg *config.AppConfig,
) domain.ScaleResolver {
	return dpi.NewResolver(logger, overrides, querier, dpi.WithQuirkRetry(cfg.DPIQuirkRetry))
}

// registerHooks takes the snapshot on start and prints it to stdout
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, eng *engine.Engine, renderer *report.Renderer) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			screens, err := eng.Snapshot()
			if err != nil {
				return fmt.Errorf("display snapshot failed: %w", err)
			}
			return renderer.Render(report.NewLineWriter(os.Stdout), screens)
		},
		OnStop: func(ctx context.Context) error {
			// Sync fails on non-regular stderr such as a tty
			_ = logger.Sync()
			return nil
		},
	})
}
