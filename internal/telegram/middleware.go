package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// LoggingMiddleware logs every inbound message and passes it on untouched.
func LoggingMiddleware(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, msg *tgbotapi.Message) error {
			logger.Info("incoming message", messageFields(msg)...)
			return next(ctx, msg)
		}
	}
}

func messageFields(msg *tgbotapi.Message) []zap.Field {
	text := "<empty>"
	if msg != nil && msg.Text != "" {
		text = msg.Text
	}
	sender := zap.String("user_id", "<unknown>")
	if msg != nil && msg.From != nil {
		sender = zap.Int64("user_id", msg.From.ID)
	}
	return []zap.Field{zap.String("text", text), sender}
}
