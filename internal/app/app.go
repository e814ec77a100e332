// Package app wires configuration, transport, handlers and middleware
// into a running bot.
package app

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/PoluyanbIch/cmdbot/internal/config"
	sentryutil "github.com/PoluyanbIch/cmdbot/internal/sentry"
	"github.com/PoluyanbIch/cmdbot/internal/service"
	"github.com/PoluyanbIch/cmdbot/internal/telegram"
)

// DialFunc opens the transport for token and reports the bot's own username.
type DialFunc func(token string) (client telegram.Client, username string, err error)

type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	client     telegram.Client
	dispatcher *telegram.Dispatcher
	menu       []tgbotapi.BotCommand
}

// Build assembles the bot and publishes its command menu. A missing token
// fails with *config.ConfigurationError before dial is called.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger, dial DialFunc) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, username, err := dial(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, logger: logger, client: client}

	common, err := telegram.NewHandler[service.Service](
		service.NewCommon(telegram.NewResponder(client)),
		CommonCommands(),
		logger.Named("handler"),
	)
	if err != nil {
		return nil, fmt.Errorf("build command handler: %w", err)
	}

	a.dispatcher = telegram.NewDispatcher(client, logger.Named("dispatcher"),
		telegram.WithUsername(username),
		telegram.WithErrorHandler(a.reportError))

	menu, err := common.RegisterHandlers(a.dispatcher)
	if err != nil {
		return nil, fmt.Errorf("register handlers: %w", err)
	}
	a.menu = append(a.menu, menu...)

	a.dispatcher.Use(telegram.LoggingMiddleware(logger.Named("messages")))

	if err := telegram.PublishMenu(client, a.menu); err != nil {
		return nil, err
	}
	logger.Info("command menu published", zap.Int("commands", len(a.menu)))

	return a, nil
}

// Start polls for updates until ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	a.logger.Info("bot is starting", zap.Int("poll_timeout", a.cfg.PollTimeout))
	return a.dispatcher.Run(ctx, a.cfg.PollTimeout)
}

func (a *App) Menu() []tgbotapi.BotCommand {
	return append([]tgbotapi.BotCommand(nil), a.menu...)
}

func (a *App) reportError(_ context.Context, update tgbotapi.Update, err error) {
	fields := []zap.Field{zap.Int("update_id", update.UpdateID), zap.Error(err)}
	if update.Message != nil && update.Message.Chat != nil {
		fields = append(fields, zap.Int64("chat_id", update.Message.Chat.ID))
	}
	a.logger.Error("update handling failed", fields...)
	sentryutil.CaptureError(err, map[string]string{"component": "dispatcher"})
}
