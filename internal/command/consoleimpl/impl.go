package consoleimpl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/orgball2608/serialcmd/internal/command"
	"github.com/orgball2608/serialcmd/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Input  io.Reader
	Link   command.Submitter
	Logger logger.Logger
}

// ConsoleImpl feeds the link from a line-oriented stream such as stdin or a
// serial device file.
type ConsoleImpl struct {
	Input  io.Reader
	Link   command.Submitter
	Logger logger.Logger
}

func New(opts Opts) *ConsoleImpl {
	return &ConsoleImpl{
		Input:  opts.Input,
		Link:   opts.Link,
		Logger: opts.Logger.WithComponent("ConsoleSource"),
	}
}

var _ command.Client = (*ConsoleImpl)(nil)

// HandleCommand returns nil once the input is exhausted.
func (c *ConsoleImpl) HandleCommand(ctx context.Context) error {
	scanner := bufio.NewScanner(c.Input)
	c.Logger.Info("Console source started, reading lines.")

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		if err := c.Link.Submit(ctx, line); err != nil {
			return fmt.Errorf("failed to submit line: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	c.Logger.Info("Console input closed.")
	return nil
}
