// Package device simulates the installation board: a rotating platform, five
// spinning motors and an eight-track music player. It owns the command table
// handed to the dispatcher and reports every state change back through the
// notifier.
package device

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/orgball2608/serialcmd/internal/dispatcher"
	"github.com/orgball2608/serialcmd/internal/notifier"
	"github.com/orgball2608/serialcmd/pkg/formatter"
	"github.com/orgball2608/serialcmd/pkg/logger"
	"go.uber.org/fx"
)

const (
	MinRotationSpeed = 5
	MaxRotationSpeed = 20
	MaxSpinSpeed     = 200
	Spinners         = 5
	Tracks           = 8
)

type Opts struct {
	fx.In

	Notifier *notifier.Notifier
	Logger   logger.Logger
}

type Device struct {
	notifier *notifier.Notifier
	logger   logger.Logger
	now      func() time.Time
	started  time.Time

	rotationSpeed int
	spins         [Spinners]int
	music         bool
	playing       [Tracks + 1]bool // index 0 unused
	label         string
}

func New(opts Opts) *Device {
	return &Device{
		notifier:      opts.Notifier,
		logger:        opts.Logger.WithComponent("Device"),
		now:           time.Now,
		started:       time.Now(),
		rotationSpeed: MinRotationSpeed,
	}
}

// Table returns the commands the board understands, in match order.
func (d *Device) Table() dispatcher.Table {
	table := dispatcher.Table{
		{Name: "change_rotation_speed", Handler: dispatcher.IntHandler(d.changeRotationSpeed)},
	}
	for i := range d.spins {
		table = append(table, dispatcher.Descriptor{
			Name:    fmt.Sprintf("start_spin_%d", i+1),
			Handler: dispatcher.IntHandler(d.startSpin(i)),
		})
	}
	return append(table,
		dispatcher.Descriptor{Name: "stop_all_spins", Handler: dispatcher.NoneHandler(d.stopAllSpins)},
		dispatcher.Descriptor{Name: "start_default_music", Handler: dispatcher.BoolHandler(d.setDefaultMusic)},
		dispatcher.Descriptor{Name: "play_track", Handler: dispatcher.IntHandler(d.playTracks)},
		dispatcher.Descriptor{Name: "stop_track", Handler: dispatcher.IntHandler(d.stopTracks)},
		dispatcher.Descriptor{Name: "set_label", Handler: dispatcher.StringHandler(d.setLabel)},
		dispatcher.Descriptor{Name: "status", Handler: dispatcher.NoneHandler(d.status)},
	)
}

func (d *Device) changeRotationSpeed(speed int) {
	d.rotationSpeed = clamp(speed, MinRotationSpeed, MaxRotationSpeed)
	if d.rotationSpeed != speed {
		d.logger.Warn("Rotation speed clamped", "requested", speed, "applied", d.rotationSpeed)
	}
	d.notifier.NotifyInt("rotation_speed", d.rotationSpeed)
}

func (d *Device) startSpin(i int) func(int) {
	return func(speed int) {
		d.spins[i] = clamp(speed, -MaxSpinSpeed, MaxSpinSpeed)
		d.notifier.NotifyInt(fmt.Sprintf("spin_%d", i+1), d.spins[i])
	}
}

func (d *Device) stopAllSpins() {
	d.spins = [Spinners]int{}
	d.notifier.Notify("spins", d.spinsString())
}

func (d *Device) setDefaultMusic(on bool) {
	d.music = on
	d.notifier.NotifyBool("default_music", on)
}

// playTracks reads every decimal digit of tracks as a track number, so 45
// starts tracks 4 and 5 together and 12345678 starts all of them.
func (d *Device) playTracks(tracks int) {
	for _, t := range trackDigits(tracks) {
		d.playing[t] = true
	}
	d.notifier.Notify("playing", d.playingString())
}

// stopTracks stops the digits of tracks; 0 stops everything.
func (d *Device) stopTracks(tracks int) {
	if tracks == 0 {
		d.playing = [Tracks + 1]bool{}
	}
	for _, t := range trackDigits(tracks) {
		d.playing[t] = false
	}
	d.notifier.Notify("playing", d.playingString())
}

func (d *Device) setLabel(label string) {
	d.label = label
	d.notifier.Notify("label", label)
}

func (d *Device) status() {
	d.notifier.NotifyInt("rotation_speed", d.rotationSpeed)
	d.notifier.Notify("spins", d.spinsString())
	d.notifier.NotifyBool("default_music", d.music)
	d.notifier.Notify("playing", d.playingString())
	d.notifier.Notify("label", d.label)
	d.notifier.NotifyInt("uptime", int(d.now().Sub(d.started).Seconds()))
}

func (d *Device) spinsString() string {
	parts := make([]string, len(d.spins))
	for i, s := range d.spins {
		parts[i] = formatter.FormatInt(s)
	}
	return strings.Join(parts, ",")
}

func (d *Device) playingString() string {
	var sb strings.Builder
	for t := 1; t <= Tracks; t++ {
		if d.playing[t] {
			sb.WriteString(strconv.Itoa(t))
		}
	}
	if sb.Len() == 0 {
		return "none"
	}
	return sb.String()
}

func trackDigits(n int) []int {
	if n < 0 {
		n = -n
	}
	var tracks []int
	for ; n > 0; n /= 10 {
		if t := n % 10; t >= 1 && t <= Tracks {
			tracks = append(tracks, t)
		}
	}
	return tracks
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
