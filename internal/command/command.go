package command

import "context"

// Client reads command lines from one source and hands them to a Submitter
// until ctx is done or the source is exhausted.
type Client interface {
	HandleCommand(ctx context.Context) error
}

// Submitter queues a command line for dispatch.
type Submitter interface {
	Submit(ctx context.Context, line string) error
}
