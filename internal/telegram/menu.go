package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/PoluyanbIch/cmdbot/internal/command"
)

// MenuCommands projects descriptors onto the Bot API menu entries.
func MenuCommands(ds []command.Descriptor) []tgbotapi.BotCommand {
	out := make([]tgbotapi.BotCommand, 0, len(ds))
	for _, d := range ds {
		out = append(out, tgbotapi.BotCommand{Command: d.Name(), Description: d.Description()})
	}
	return out
}

// PublishMenu replaces the bot's command menu with commands.
// An empty list leaves the current menu alone.
func PublishMenu(client Client, commands []tgbotapi.BotCommand) error {
	if len(commands) == 0 {
		return nil
	}
	if _, err := client.Request(tgbotapi.NewDeleteMyCommands()); err != nil {
		return fmt.Errorf("telegram: delete commands: %w", err)
	}
	if _, err := client.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		return fmt.Errorf("telegram: set commands: %w", err)
	}
	return nil
}
