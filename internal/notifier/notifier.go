package notifier

import (
	"io"

	"github.com/orgball2608/serialcmd/pkg/formatter"
	"github.com/orgball2608/serialcmd/pkg/logger"
)

// Notifier reports name/value pairs to the peer as "name:value" lines.
// Neither part is escaped, so a ':' or newline in them breaks the framing.
type Notifier struct {
	out    io.Writer
	logger logger.Logger
}

func New(out io.Writer, log logger.Logger) *Notifier {
	return &Notifier{
		out:    out,
		logger: log.WithComponent("Notifier"),
	}
}

func (n *Notifier) Notify(name, value string) {
	if _, err := io.WriteString(n.out, name+":"+value+"\n"); err != nil {
		n.logger.Error("Failed to write notification", "name", name, "error", err)
	}
}

func (n *Notifier) NotifyInt(name string, value int) {
	n.Notify(name, formatter.FormatInt(value))
}

func (n *Notifier) NotifyFloat(name string, value float64) {
	n.Notify(name, formatter.FormatFloat(value, formatter.FloatDecimals))
}

func (n *Notifier) NotifyBool(name string, value bool) {
	n.Notify(name, formatter.FormatBool(value))
}
