package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/PoluyanbIch/cmdbot/internal/app"
	"github.com/PoluyanbIch/cmdbot/internal/config"
	"github.com/PoluyanbIch/cmdbot/internal/logging"
	sentryutil "github.com/PoluyanbIch/cmdbot/internal/sentry"
	"github.com/PoluyanbIch/cmdbot/internal/telegram"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("[ERR] %v", err)
		return 1
	}

	logger, err := logging.NewLogger("bot", cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Printf("[ERR] init logger: %v", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if err := sentryutil.Init(sentryutil.Options{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
	}); err != nil {
		logger.Warn("sentry disabled", zap.Error(err))
	}
	defer sentryutil.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot, err := app.Build(ctx, cfg, logger, func(token string) (telegram.Client, string, error) {
		api, err := telegram.Dial(token, cfg.BotDebug)
		if err != nil {
			return nil, "", err
		}
		logger.Info("authorised", zap.String("account", api.Self.UserName))
		return api, api.Self.UserName, nil
	})
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return 1
	}

	if err := bot.Start(ctx); err != nil {
		logger.Error("bot stopped with error", zap.Error(err))
		return 1
	}
	logger.Info("bot exited cleanly")
	return 0
}
