package consoleimpl

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	pkgerrors "github.com/orgball2608/serialcmd/pkg/errors"
	"github.com/orgball2608/serialcmd/pkg/logger"
)

type recordingSubmitter struct {
	lines []string
	err   error
}

func (s *recordingSubmitter) Submit(_ context.Context, line string) error {
	if s.err != nil {
		return s.err
	}
	s.lines = append(s.lines, line)
	return nil
}

func newTestConsole(input string, sub *recordingSubmitter) *ConsoleImpl {
	return New(Opts{
		Input:  strings.NewReader(input),
		Link:   sub,
		Logger: logger.New(logger.Opts{Writer: io.Discard}),
	})
}

func TestHandleCommandReadsLines(t *testing.T) {
	sub := &recordingSubmitter{}
	c := newTestConsole("play_track3\r\n\nset_label hello world \nstatus", sub)

	if err := c.HandleCommand(context.Background()); err != nil {
		t.Fatalf("HandleCommand() error = %v", err)
	}

	want := []string{"play_track3", "set_label hello world ", "status"}
	if len(sub.lines) != len(want) {
		t.Fatalf("submitted %q, want %q", sub.lines, want)
	}
	for i := range want {
		if sub.lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, sub.lines[i], want[i])
		}
	}
}

func TestHandleCommandCancelled(t *testing.T) {
	sub := &recordingSubmitter{}
	c := newTestConsole("status\nstatus\n", sub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.HandleCommand(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("HandleCommand() error = %v, want context.Canceled", err)
	}
	if len(sub.lines) != 0 {
		t.Errorf("submitted %q after cancel", sub.lines)
	}
}

func TestHandleCommandLinkClosed(t *testing.T) {
	sub := &recordingSubmitter{err: pkgerrors.ErrLinkClosed}
	c := newTestConsole("status\n", sub)

	if err := c.HandleCommand(context.Background()); !errors.Is(err, pkgerrors.ErrLinkClosed) {
		t.Errorf("HandleCommand() error = %v, want ErrLinkClosed", err)
	}
}
