package commandimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	pkgerrors "github.com/orgball2608/serialcmd/pkg/errors"
)

const rateLimitedMessage = "Too many commands, slow down a little."

func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.Telegram.GetUpdatesChan(u)
	c.Logger.Info("Command handler started, listening for updates.")

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down.")
			c.Telegram.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				c.Logger.Warn("Telegram updates channel closed unexpectedly.")
				return errors.New("telegram updates channel closed")
			}

			// Updates are handled one at a time so lines reach the link in the order they were sent.
			if err := c.processUpdate(ctx, update); err != nil {
				c.Logger.Error("Error processing update", "updateID", update.UpdateID, "error", err)
				if errors.Is(err, pkgerrors.ErrLinkClosed) {
					return err
				}
			}
		}
	}
}

func (c *CommandImpl) processUpdate(ctx context.Context, update tgbotapi.Update) error {
	msg := update.Message
	if msg == nil || msg.Chat == nil || msg.Text == "" {
		return nil
	}

	chatID := msg.Chat.ID
	if chatID != c.Config.Telegram.User {
		c.Logger.Warn("Ignoring message from unauthorized chat", "chatID", chatID)
		return nil
	}

	if !c.Limiter.Allow(chatID) {
		c.Logger.Warn("Rate limit exceeded", "chatID", chatID)
		if _, err := c.Telegram.SendMessage(chatID, rateLimitedMessage); err != nil {
			return err
		}
		return pkgerrors.ErrRateLimited
	}

	c.Logger.Debug("Message received", "chatID", chatID, "text", msg.Text)

	switch strings.TrimSpace(msg.Text) {
	case "/start", "/help":
		_, err := c.Telegram.SendMessage(chatID, c.helpMessage())
		return err
	}

	// "/play_track3" and "play_track3" are the same command line.
	line := strings.TrimPrefix(msg.Text, "/")
	if err := c.Link.Submit(ctx, line); err != nil {
		return fmt.Errorf("failed to submit line: %w", err)
	}
	return nil
}

func (c *CommandImpl) helpMessage() string {
	var sb strings.Builder
	sb.WriteString("Send a command name immediately followed by its argument, e.g. play_track3.\n\n")
	sb.WriteString("Available commands:\n")
	for _, d := range c.Table {
		if d.Handler == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s <%s>\n", d.Name, d.Handler.ArgType()))
	}
	return sb.String()
}
