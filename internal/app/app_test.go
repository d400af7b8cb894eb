package app

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orgball2608/serialcmd/internal/dispatcher"
	"github.com/orgball2608/serialcmd/internal/link"
	"github.com/orgball2608/serialcmd/pkg/config"
	"github.com/orgball2608/serialcmd/pkg/logger"
	"go.uber.org/fx"
)

func testConfig(transport string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Transport = transport
	cfg.App.Port = 0
	cfg.Link.QueueSize = 4
	cfg.Telegram.Token = "token"
	cfg.Telegram.User = 1
	return cfg
}

func TestGraphIsComplete(t *testing.T) {
	for _, transport := range []string{config.TransportConsole, config.TransportTelegram} {
		t.Run(transport, func(t *testing.T) {
			if err := fx.ValidateApp(New(testConfig(transport))); err != nil {
				t.Errorf("fx.ValidateApp() error = %v", err)
			}
		})
	}
}

func TestConsolePipeline(t *testing.T) {
	var out bytes.Buffer
	var lnk *link.Link

	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(testConfig(config.TransportConsole)),
		Core,
		fx.Provide(func() io.Writer { return &out }),
		fx.Populate(&lnk),
	)
	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx.New() error = %v", err)
	}

	for _, line := range []string{"change_rotation_speed12", "play_track45", "jump"} {
		if err := lnk.Submit(context.Background(), line); err != nil {
			t.Fatal(err)
		}
	}
	lnk.Close()
	if err := lnk.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "rotation_speed:12\nplaying:45\n" + dispatcher.UnknownCommandLine + "\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestHealthCheck(t *testing.T) {
	log := logger.New(logger.Opts{Writer: io.Discard})
	cfg := testConfig(config.TransportConsole)
	lnk := link.New(link.Opts{Dispatcher: dispatcherFunc(func(string) {}), Config: cfg, Logger: log})

	rec := httptest.NewRecorder()
	healthCheckHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil), log, lnk)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("healthz = %d %q, want 200 ok", rec.Code, rec.Body.String())
	}

	lnk.Close()
	rec = httptest.NewRecorder()
	healthCheckHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil), log, lnk)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("healthz after close = %d, want 503", rec.Code)
	}
}

type dispatcherFunc func(string)

func (f dispatcherFunc) Dispatch(line string) { f(line) }
