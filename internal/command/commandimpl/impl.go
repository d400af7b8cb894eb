package commandimpl

import (
	"github.com/orgball2608/serialcmd/internal/command"
	"github.com/orgball2608/serialcmd/internal/dispatcher"
	"github.com/orgball2608/serialcmd/internal/ratelimit"
	"github.com/orgball2608/serialcmd/internal/telegram"
	"github.com/orgball2608/serialcmd/pkg/config"
	"github.com/orgball2608/serialcmd/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Telegram telegram.Client
	Link     command.Submitter
	Limiter  ratelimit.Limiter
	Table    dispatcher.Table
	Logger   logger.Logger
	Config   *config.Config
}

type CommandImpl struct {
	Telegram telegram.Client
	Link     command.Submitter
	Limiter  ratelimit.Limiter
	Table    dispatcher.Table
	Logger   logger.Logger
	Config   *config.Config
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Telegram: opts.Telegram,
		Link:     opts.Link,
		Limiter:  opts.Limiter,
		Table:    opts.Table,
		Logger:   opts.Logger.WithComponent("TelegramSource"),
		Config:   opts.Config,
	}
}

var _ command.Client = (*CommandImpl)(nil)
