package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/serialcmd/internal/command"
	"github.com/orgball2608/serialcmd/pkg/config"
	"github.com/orgball2608/serialcmd/pkg/logger"
	"go.uber.org/fx"
)

const submitTimeout = 5 * time.Second

type Opts struct {
	fx.In

	Link   command.Submitter
	Config *config.Config
	Logger logger.Logger
}

// Scheduler pushes a fixed list of command lines onto the link at a fixed
// interval, the way a host periodically drives the board.
type Scheduler struct {
	link     command.Submitter
	lines    []string
	interval time.Duration
	logger   logger.Logger
}

func New(opts Opts) *Scheduler {
	return &Scheduler{
		link:     opts.Link,
		lines:    opts.Config.Scheduler.Lines,
		interval: opts.Config.Scheduler.Interval,
		logger:   opts.Logger.WithComponent("Scheduler"),
	}
}

// Start schedules the job and stops it when ctx is done. It does nothing when
// no lines are configured.
func (s *Scheduler) Start(ctx context.Context) error {
	if len(s.lines) == 0 {
		s.logger.Info("No scheduled lines configured")
		return nil
	}
	if s.interval <= 0 {
		return fmt.Errorf("scheduler interval must be positive, got %v", s.interval)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			s.submitLines(ctx)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule lines: %w", err)
	}

	scheduler.Start()
	s.logger.Info("Scheduler started", "interval", s.interval.String(), "lines", len(s.lines))

	go func() {
		<-ctx.Done()
		s.logger.Info("Stopping scheduler")
		if err := scheduler.Shutdown(); err != nil {
			s.logger.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}

func (s *Scheduler) submitLines(ctx context.Context) {
	for _, line := range s.lines {
		submitCtx, cancel := context.WithTimeout(ctx, submitTimeout)
		err := s.link.Submit(submitCtx, line)
		cancel()

		if err != nil {
			s.logger.Error("Failed to submit scheduled line", "line", line, "error", err)
			return
		}
	}
}
