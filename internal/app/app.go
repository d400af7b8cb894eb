package app

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/orgball2608/serialcmd/internal/command"
	"github.com/orgball2608/serialcmd/internal/command/commandimpl"
	"github.com/orgball2608/serialcmd/internal/command/consoleimpl"
	"github.com/orgball2608/serialcmd/internal/device"
	"github.com/orgball2608/serialcmd/internal/dispatcher"
	"github.com/orgball2608/serialcmd/internal/link"
	"github.com/orgball2608/serialcmd/internal/notifier"
	"github.com/orgball2608/serialcmd/internal/ratelimit"
	"github.com/orgball2608/serialcmd/internal/scheduler"
	"github.com/orgball2608/serialcmd/internal/telegram"
	"github.com/orgball2608/serialcmd/internal/telegram/telegramimpl"
	"github.com/orgball2608/serialcmd/pkg/config"
	"github.com/orgball2608/serialcmd/pkg/logger"
	"github.com/orgball2608/serialcmd/pkg/retry"
	"go.uber.org/fx"
)

// Core needs an io.Writer (the output stream) and a command.Client (the line
// source) from one of the transport modules.
var Core = fx.Options(
	fx.Provide(
		logger.FxOption,
		notifier.New,
		device.New,
		func(d *device.Device) dispatcher.Table {
			return d.Table()
		},
		fx.Annotate(
			dispatcher.New,
			fx.As(new(link.Dispatcher)),
		),
		link.New,
		func(l *link.Link) command.Submitter {
			return l
		},
		scheduler.New,
	),
)

var Console = fx.Options(
	fx.Provide(
		func() io.Reader { return os.Stdin },
		func() io.Writer { return os.Stdout },
		fx.Annotate(
			consoleimpl.New,
			fx.As(new(command.Client)),
		),
	),
)

var Telegram = fx.Options(
	fx.Provide(
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		),
		func(tg telegram.Client, cfg *config.Config, log logger.Logger) io.Writer {
			return telegramimpl.NewLineWriter(tg, cfg.Telegram.User, log, retry.DefaultConfig())
		},
		func(cfg *config.Config) ratelimit.Limiter {
			return ratelimit.NewInMemoryLimiter(cfg.Telegram.RateRequests, cfg.Telegram.RatePer, cfg.Telegram.RateBurst)
		},
		fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Client)),
		),
	),
)

// New assembles the application for the transport selected in cfg.
func New(cfg *config.Config) fx.Option {
	transport := Console
	if cfg.App.Transport == config.TransportTelegram {
		transport = Telegram
	}

	return fx.Options(
		fx.Supply(cfg),
		Core,
		transport,
		fx.Invoke(run),
	)
}

func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, log logger.Logger, cfg *config.Config,
	lnk *link.Link, source command.Client, sched *scheduler.Scheduler) {
	ctx, cancel := context.WithCancel(context.Background())
	health := newHealthServer(log, cfg, lnk)

	linkDone := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go health.start()

			go func() {
				defer close(linkDone)
				if err := lnk.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.Error("Link stopped", "error", err)
				}
			}()

			if err := sched.Start(ctx); err != nil {
				cancel()
				return err
			}

			go func() {
				err := source.HandleCommand(ctx)
				if ctx.Err() != nil {
					return
				}
				if err != nil {
					log.Error("Command source stopped", "error", err)
				}

				// Finish what the source already queued before stopping the app.
				lnk.Close()
				<-linkDone
				if err := shutdowner.Shutdown(); err != nil {
					log.Error("Failed to request shutdown", "error", err)
				}
			}()

			log.Info("Application started", "transport", cfg.App.Transport)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			return health.stop(stopCtx)
		},
	})
}
