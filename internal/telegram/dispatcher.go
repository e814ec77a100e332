package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/PoluyanbIch/cmdbot/internal/command"
)

// HandlerFunc processes one inbound message.
type HandlerFunc func(ctx context.Context, msg *tgbotapi.Message) error

// Middleware wraps the message pipeline. It must call next to let the
// message reach the routes.
type Middleware func(next HandlerFunc) HandlerFunc

// Router accepts command routes. *Dispatcher implements it.
type Router interface {
	Handle(name string, fn HandlerFunc) error
}

// ErrorHandler is the last stop for errors returned by the message pipeline.
type ErrorHandler func(ctx context.Context, update tgbotapi.Update, err error)

type Option func(*Dispatcher)

func WithErrorHandler(h ErrorHandler) Option {
	return func(d *Dispatcher) { d.onError = h }
}

// WithUsername sets the bot's own username. Commands mentioning any other
// bot, as in /start@other_bot, are not routed. Without a username every
// mentioned command is dropped.
func WithUsername(username string) Option {
	return func(d *Dispatcher) { d.username = strings.TrimPrefix(username, "@") }
}

// Dispatcher routes messages to command handlers by their leading command token.
// Updates are handled one at a time.
type Dispatcher struct {
	client     Client
	logger     *zap.Logger
	username   string
	routes     map[string]HandlerFunc
	middleware []Middleware
	onError    ErrorHandler
}

func NewDispatcher(client Client, logger *zap.Logger, opts ...Option) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dispatcher{
		client: client,
		logger: logger,
		routes: make(map[string]HandlerFunc),
	}
	d.onError = d.logError
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle routes messages whose command is exactly name (case-sensitive).
func (d *Dispatcher) Handle(name string, fn HandlerFunc) error {
	if name == "" {
		return &command.InvalidNameError{Name: name}
	}
	if _, exists := d.routes[name]; exists {
		return &command.DuplicateNameError{Name: name}
	}
	d.routes[name] = fn
	return nil
}

// Use appends middleware. The first one added sees messages first.
func (d *Dispatcher) Use(mw ...Middleware) {
	d.middleware = append(d.middleware, mw...)
}

// Dispatch runs one update through the pipeline. Only message updates are handled.
func (d *Dispatcher) Dispatch(ctx context.Context, update tgbotapi.Update) error {
	if update.Message == nil {
		d.logger.Debug("skipping non-message update", zap.Int("update_id", update.UpdateID))
		return nil
	}

	h := HandlerFunc(d.route)
	for i := len(d.middleware) - 1; i >= 0; i-- {
		h = d.middleware[i](h)
	}
	return h(ctx, update.Message)
}

func (d *Dispatcher) route(ctx context.Context, msg *tgbotapi.Message) error {
	if !msg.IsCommand() {
		return nil
	}
	name, mention, addressed := strings.Cut(msg.CommandWithAt(), "@")
	if addressed && !strings.EqualFold(mention, d.username) {
		d.logger.Debug("command for another bot", zap.String("command", name), zap.String("mention", mention))
		return nil
	}
	fn, ok := d.routes[name]
	if !ok {
		d.logger.Debug("no route for command", zap.String("command", name))
		return nil
	}
	return fn(ctx, msg)
}

// Run long-polls for updates until ctx is cancelled or the updates channel closes.
func (d *Dispatcher) Run(ctx context.Context, timeout int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeout

	updates := d.client.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			d.client.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if ctx.Err() != nil {
				d.client.StopReceivingUpdates()
				return nil
			}
			if err := d.dispatchSafe(ctx, update); err != nil {
				d.onError(ctx, update, err)
			}
		}
	}
}

// dispatchSafe reports a panic in the pipeline as an error.
func (d *Dispatcher) dispatchSafe(ctx context.Context, update tgbotapi.Update) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while handling update: %v", r)
		}
	}()
	return d.Dispatch(ctx, update)
}

func (d *Dispatcher) logError(_ context.Context, update tgbotapi.Update, err error) {
	d.logger.Error("update handling failed", zap.Int("update_id", update.UpdateID), zap.Error(err))
}
