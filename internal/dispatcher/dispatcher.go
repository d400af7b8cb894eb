package dispatcher

import (
	"fmt"
	"io"
	"strings"

	"github.com/orgball2608/serialcmd/pkg/errors"
	"github.com/orgball2608/serialcmd/pkg/logger"
	"go.uber.org/fx"
)

// Diagnostic lines written to the output stream. Peers match on them verbatim.
const (
	UnknownCommandLine  = "Failed: Unknown command"
	UnknownDataTypeLine = "dataType not found"
)

type Opts struct {
	fx.In

	Table  Table
	Output io.Writer
	Logger logger.Logger
}

type Dispatcher struct {
	table  Table
	out    io.Writer
	logger logger.Logger
}

func New(opts Opts) *Dispatcher {
	return &Dispatcher{
		table:  opts.Table,
		out:    opts.Output,
		logger: opts.Logger.WithComponent("Dispatcher"),
	}
}

// Dispatch runs the handler of the first descriptor whose name prefixes line,
// passing it the rest of the line converted to the handler's argument type.
// Failures are reported on the output stream only.
func (d *Dispatcher) Dispatch(line string) {
	if err := d.dispatch(line); err != nil {
		d.report(line, err)
	}
}

func (d *Dispatcher) dispatch(line string) error {
	for _, desc := range d.table {
		if !strings.HasPrefix(line, desc.Name) {
			continue
		}

		arg := line[len(desc.Name):]
		d.logger.Debug("Dispatching command", "command", desc.Name, "arg", arg)

		if !invoke(desc.Handler, arg) {
			return errors.WrapWithCode(errors.ErrUnknownDataType, errors.CodeUnknownDataType, desc.Name)
		}
		return nil
	}

	return errors.WrapWithCode(errors.ErrUnknownCommand, errors.CodeUnknownCommand, fmt.Sprintf("%q", line))
}

// invoke reports false when h is not one of the five handler shapes.
func invoke(h Handler, arg string) bool {
	switch fn := h.(type) {
	case BoolHandler:
		if fn != nil {
			fn(ParseBool(arg))
			return true
		}
	case IntHandler:
		if fn != nil {
			fn(ParseInt(arg))
			return true
		}
	case FloatHandler:
		if fn != nil {
			fn(ParseFloat(arg))
			return true
		}
	case StringHandler:
		if fn != nil {
			fn(arg)
			return true
		}
	case NoneHandler:
		if fn != nil {
			fn()
			return true
		}
	}
	return false
}

func (d *Dispatcher) report(line string, err error) {
	msg := UnknownCommandLine
	if errors.IsUnknownDataType(err) {
		msg = UnknownDataTypeLine
	}

	d.logger.Warn("Command not dispatched", "line", line, "code", errors.GetCode(err), "error", err)

	if _, werr := io.WriteString(d.out, msg+"\n"); werr != nil {
		d.logger.Error("Failed to write diagnostic", "error", werr)
	}
}
