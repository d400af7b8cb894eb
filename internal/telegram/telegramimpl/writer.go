package telegramimpl

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/serialcmd/internal/telegram"
	"github.com/orgball2608/serialcmd/pkg/logger"
	"github.com/orgball2608/serialcmd/pkg/retry"
)

// LineWriter is the output stream of the Telegram transport. Every complete
// line written to it becomes one message in the configured chat; a trailing
// partial line is held until its newline arrives.
type LineWriter struct {
	client telegram.Client
	chatID int64
	logger logger.Logger
	retry  retry.Config
	buf    bytes.Buffer
}

func NewLineWriter(client telegram.Client, chatID int64, log logger.Logger, cfg retry.Config) *LineWriter {
	return &LineWriter{
		client: client,
		chatID: chatID,
		logger: log.WithComponent("TelegramOutput"),
		retry:  cfg,
	}
}

func (w *LineWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)

	var errs []error
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// No newline yet: keep the fragment for the next write.
			w.buf.WriteString(line)
			break
		}

		if sendErr := w.send(strings.TrimSuffix(line, "\n")); sendErr != nil {
			errs = append(errs, sendErr)
		}
	}

	return len(p), errors.Join(errs...)
}

func (w *LineWriter) send(line string) error {
	// Telegram rejects empty messages.
	if line == "" {
		return nil
	}

	op := func() error {
		_, err := w.client.SendMessage(w.chatID, line)
		var tgErr *tgbotapi.Error
		if errors.As(err, &tgErr) && tgErr.Code == http.StatusBadRequest {
			return retry.Permanent(err)
		}
		return err
	}

	if err := retry.Do(context.Background(), w.logger, "SendMessage", op, w.retry); err != nil {
		w.logger.Error("Failed to deliver output line", "chatID", w.chatID, "line", line, "error", err)
		return err
	}
	return nil
}
