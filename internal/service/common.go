package service

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	StartReply = "Это стартовая команда."
	HelpReply  = "Это справка по боту."
)

// Replier sends one text answer to the chat a message came from.
type Replier interface {
	Reply(ctx context.Context, msg *tgbotapi.Message, text string) error
}

// Service is the set of capabilities the command handler can bind.
type Service interface {
	Start(ctx context.Context, msg *tgbotapi.Message) error
	Help(ctx context.Context, msg *tgbotapi.Message) error
}

// Common answers the commands every user can run.
type Common struct {
	replier Replier
}

func NewCommon(replier Replier) *Common {
	return &Common{replier: replier}
}

// Start greets the user. Reply errors are returned as is.
func (s *Common) Start(ctx context.Context, msg *tgbotapi.Message) error {
	return s.replier.Reply(ctx, msg, StartReply)
}

// Help sends the help text.
func (s *Common) Help(ctx context.Context, msg *tgbotapi.Message) error {
	return s.replier.Reply(ctx, msg, HelpReply)
}
