package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client is the part of *tgbotapi.BotAPI the bot uses.
type Client interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

var _ Client = (*tgbotapi.BotAPI)(nil)

// Dial authorises token against the Bot API.
func Dial(token string, debug bool) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: connect: %w", err)
	}
	api.Debug = debug
	return api, nil
}

var errNoChat = errors.New("message has no chat")

// SendError reports a reply the transport could not deliver.
type SendError struct {
	ChatID int64
	Err    error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("telegram: send to chat %d: %v", e.ChatID, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

// Responder answers messages through a Client.
type Responder struct {
	client Client
}

func NewResponder(client Client) *Responder {
	return &Responder{client: client}
}

// Reply sends text to the chat msg came from. There is no retry.
func (r *Responder) Reply(_ context.Context, msg *tgbotapi.Message, text string) error {
	if msg == nil || msg.Chat == nil {
		return &SendError{Err: errNoChat}
	}
	if _, err := r.client.Send(tgbotapi.NewMessage(msg.Chat.ID, text)); err != nil {
		return &SendError{ChatID: msg.Chat.ID, Err: err}
	}
	return nil
}
