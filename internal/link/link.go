package link

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/orgball2608/serialcmd/pkg/config"
	"github.com/orgball2608/serialcmd/pkg/errors"
	"github.com/orgball2608/serialcmd/pkg/logger"
	"go.uber.org/fx"
)

type Dispatcher interface {
	Dispatch(line string)
}

type Opts struct {
	fx.In

	Dispatcher Dispatcher
	Config     *config.Config
	Logger     logger.Logger
}

// Link serializes every command line onto a single goroutine, the way a
// serial port delivers them one at a time.
type Link struct {
	lines      chan string
	closing    chan struct{}
	done       chan struct{}
	closeOnce  sync.Once
	doneOnce   sync.Once
	dispatcher Dispatcher
	logger     logger.Logger
}

func New(opts Opts) *Link {
	return &Link{
		lines:      make(chan string, opts.Config.Link.QueueSize),
		closing:    make(chan struct{}),
		done:       make(chan struct{}),
		dispatcher: opts.Dispatcher,
		logger:     opts.Logger.WithComponent("Link"),
	}
}

// Submit queues line for dispatch. It blocks while the queue is full.
func (l *Link) Submit(ctx context.Context, line string) error {
	select {
	case <-l.closing:
		return errors.ErrLinkClosed
	case <-l.done:
		return errors.ErrLinkClosed
	default:
	}

	select {
	case l.lines <- line:
		return nil
	case <-l.closing:
		return errors.ErrLinkClosed
	case <-l.done:
		return errors.ErrLinkClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run dispatches queued lines in order. It returns nil after Close once the
// queue is drained, or ctx.Err() when ctx is done, dropping whatever is still
// queued. Submissions after Run returns fail with ErrLinkClosed.
func (l *Link) Run(ctx context.Context) error {
	defer l.doneOnce.Do(func() { close(l.done) })

	l.logger.Info("Link started")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Link stopped", "dropped", len(l.lines))
			return ctx.Err()
		case <-l.closing:
			l.drain()
			l.logger.Info("Link closed")
			return nil
		case line := <-l.lines:
			l.dispatch(line)
		}
	}
}

// Close stops accepting lines; Run finishes the ones already queued.
func (l *Link) Close() {
	l.closeOnce.Do(func() {
		close(l.closing)
	})
}

// Closed reports whether the link has stopped accepting lines.
func (l *Link) Closed() bool {
	select {
	case <-l.closing:
		return true
	case <-l.done:
		return true
	default:
		return false
	}
}

func (l *Link) drain() {
	for {
		select {
		case line := <-l.lines:
			l.dispatch(line)
		default:
			return
		}
	}
}

func (l *Link) dispatch(line string) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("Panic recovered while dispatching a line", "line", line, "panic", r, "stack", string(debug.Stack()))
		}
	}()

	l.dispatcher.Dispatch(line)
}
