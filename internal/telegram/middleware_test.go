package telegram

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddlewareLogsAndForwards(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	msg := &tgbotapi.Message{Text: "hello", From: &tgbotapi.User{ID: 42}, Chat: &tgbotapi.Chat{ID: 5}}
	before := *msg

	var forwarded *tgbotapi.Message
	next := func(_ context.Context, m *tgbotapi.Message) error {
		forwarded = m
		return nil
	}

	if err := LoggingMiddleware(zap.New(core))(next)(context.Background(), msg); err != nil {
		t.Fatalf("middleware: %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["text"] != "hello" {
		t.Fatalf("text not logged: %v", fields)
	}
	if fields["user_id"] != int64(42) {
		t.Fatalf("sender not logged: %v", fields)
	}

	if forwarded != msg {
		t.Fatalf("next stage must receive the original message")
	}
	if forwarded.Text != before.Text || forwarded.From != before.From || forwarded.Chat != before.Chat {
		t.Fatalf("message changed by middleware")
	}
}

func TestLoggingMiddlewareAbsentFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	called := false
	next := func(context.Context, *tgbotapi.Message) error {
		called = true
		return nil
	}

	if err := LoggingMiddleware(zap.New(core))(next)(context.Background(), &tgbotapi.Message{}); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if !called {
		t.Fatalf("next stage not called")
	}
	fields := logs.All()[0].ContextMap()
	if fields["text"] != "<empty>" || fields["user_id"] != "<unknown>" {
		t.Fatalf("expected placeholders, got %v", fields)
	}
}

func TestLoggingMiddlewareReturnsNextResult(t *testing.T) {
	want := errors.New("downstream")
	next := func(context.Context, *tgbotapi.Message) error { return want }

	err := LoggingMiddleware(nil)(next)(context.Background(), &tgbotapi.Message{Text: "x"})
	if err != want {
		t.Fatalf("expected downstream error unchanged, got %v", err)
	}
}
