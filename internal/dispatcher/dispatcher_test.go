package dispatcher

import (
	"bytes"
	"io"
	"testing"

	"github.com/orgball2608/serialcmd/pkg/logger"
)

func newTestDispatcher(table Table) (*Dispatcher, *bytes.Buffer) {
	var out bytes.Buffer
	d := New(Opts{
		Table:  table,
		Output: &out,
		Logger: logger.New(logger.Opts{Writer: io.Discard}),
	})
	return d, &out
}

func TestDispatchInt(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"cmd42", 42},
		{"cmdabc", 0},
		{"cmd-7", -7},
		{"cmd12abc", 12},
		{"cmd", 0},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			calls := 0
			var got int
			d, out := newTestDispatcher(Table{
				{Name: "cmd", Handler: IntHandler(func(v int) { calls++; got = v })},
			})

			d.Dispatch(tt.line)

			if calls != 1 {
				t.Fatalf("handler called %d times, want 1", calls)
			}
			if got != tt.want {
				t.Errorf("handler got %d, want %d", got, tt.want)
			}
			if out.Len() != 0 {
				t.Errorf("unexpected output %q", out.String())
			}
		})
	}
}

func TestDispatchFloat(t *testing.T) {
	tests := []struct {
		line string
		want float64
	}{
		{"cmd3.14", 3.14},
		{"cmd", 0},
		{"cmdxyz", 0},
		{"cmd-2.5", -2.5},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			var got float64 = -1
			d, _ := newTestDispatcher(Table{
				{Name: "cmd", Handler: FloatHandler(func(v float64) { got = v })},
			})

			d.Dispatch(tt.line)

			if got != tt.want {
				t.Errorf("handler got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDispatchStringVerbatim(t *testing.T) {
	var got string
	d, _ := newTestDispatcher(Table{
		{Name: "cmd", Handler: StringHandler(func(v string) { got = v })},
	})

	d.Dispatch("cmdhello world")

	if got != "hello world" {
		t.Errorf("handler got %q, want %q", got, "hello world")
	}

	d.Dispatch("cmd  padded: with colon ")
	if got != "  padded: with colon " {
		t.Errorf("handler got %q, want remainder untouched", got)
	}
}

func TestDispatchNoneDiscardsRemainder(t *testing.T) {
	for _, line := range []string{"cmd", "cmd trailing junk", "cmd42"} {
		t.Run(line, func(t *testing.T) {
			calls := 0
			d, out := newTestDispatcher(Table{
				{Name: "cmd", Handler: NoneHandler(func() { calls++ })},
			})

			d.Dispatch(line)

			if calls != 1 {
				t.Errorf("handler called %d times, want 1", calls)
			}
			if out.Len() != 0 {
				t.Errorf("unexpected output %q", out.String())
			}
		})
	}
}

// The board firmware this mirrors always took the true branch for the
// literals; here they mean what they say.
func TestDispatchBool(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"cmdtrue", true},
		{"cmdTrue", true},
		{"cmdfalse", false},
		{"cmdFalse", false},
		{"cmd1", true},
		{"cmd0", false},
		{"cmd2", true},
		{"cmdTRUE", false},
		{"cmdyes", false},
		{"cmd", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := !tt.want
			d, _ := newTestDispatcher(Table{
				{Name: "cmd", Handler: BoolHandler(func(v bool) { got = v })},
			})

			d.Dispatch(tt.line)

			if got != tt.want {
				t.Errorf("handler got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	calls := 0
	d, out := newTestDispatcher(Table{
		{Name: "play_track", Handler: IntHandler(func(int) { calls++ })},
		{Name: "status", Handler: NoneHandler(func() { calls++ })},
	})

	for _, line := range []string{"jump", "", "Status", "play"} {
		out.Reset()
		d.Dispatch(line)

		if got := out.String(); got != UnknownCommandLine+"\n" {
			t.Errorf("Dispatch(%q) output = %q, want %q", line, got, UnknownCommandLine+"\n")
		}
	}
	if calls != 0 {
		t.Errorf("handlers called %d times, want 0", calls)
	}
}

func TestDispatchFirstMatchWins(t *testing.T) {
	var first, second int
	d, _ := newTestDispatcher(Table{
		{Name: "play", Handler: StringHandler(func(string) { first++ })},
		{Name: "play_track", Handler: IntHandler(func(int) { second++ })},
	})

	d.Dispatch("play_track3")

	if first != 1 || second != 0 {
		t.Errorf("first=%d second=%d, want first=1 second=0", first, second)
	}
}

func TestDispatchUnknownDataType(t *testing.T) {
	tests := []struct {
		name    string
		handler Handler
	}{
		{"nil handler", nil},
		{"nil int func", IntHandler(nil)},
		{"nil none func", NoneHandler(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, out := newTestDispatcher(Table{
				{Name: "cmd", Handler: tt.handler},
			})

			d.Dispatch("cmd5")

			if got := out.String(); got != UnknownDataTypeLine+"\n" {
				t.Errorf("output = %q, want %q", got, UnknownDataTypeLine+"\n")
			}
		})
	}
}

func TestDispatchStopsAfterFirstMatch(t *testing.T) {
	calls := 0
	d, out := newTestDispatcher(Table{
		{Name: "cmd", Handler: nil},
		{Name: "cmd", Handler: NoneHandler(func() { calls++ })},
	})

	d.Dispatch("cmd")

	if calls != 0 {
		t.Errorf("later descriptor invoked %d times, want 0", calls)
	}
	if got := out.String(); got != UnknownDataTypeLine+"\n" {
		t.Errorf("output = %q, want %q", got, UnknownDataTypeLine+"\n")
	}
}

func TestTableNames(t *testing.T) {
	table := Table{
		{Name: "a", Handler: NoneHandler(func() {})},
		{Name: "b", Handler: IntHandler(func(int) {})},
	}

	names := table.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Names() = %q, want [a b]", names)
	}
}
