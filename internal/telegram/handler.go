package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/PoluyanbIch/cmdbot/internal/command"
)

// Capability is a bound service method, e.g. service.Service.Start.
type Capability[S any] func(svc S, ctx context.Context, msg *tgbotapi.Message) error

// Binding ties a command descriptor to the service capability it triggers.
// Hidden bindings are routed but left out of the menu.
type Binding[S any] struct {
	Descriptor command.Descriptor
	Capability Capability[S]
	Hidden     bool
}

// Handler routes commands to the capabilities of one service.
type Handler[S any] struct {
	svc      S
	commands *command.Registry[Capability[S]]
	logger   *zap.Logger
}

// NewHandler binds svc to bindings. Two bindings with the same name are a
// programming error and fail with *command.DuplicateNameError.
func NewHandler[S any](svc S, bindings []Binding[S], logger *zap.Logger) (*Handler[S], error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := command.NewRegistry[Capability[S]]()
	for _, b := range bindings {
		if b.Capability == nil {
			return nil, fmt.Errorf("command %q has no capability", b.Descriptor.Name())
		}
		if err := reg.Register(b.Descriptor, b.Capability, !b.Hidden); err != nil {
			return nil, err
		}
	}
	return &Handler[S]{svc: svc, commands: reg, logger: logger}, nil
}

// RegisterHandlers adds one route per bound command to r and returns the
// menu entries of the visible ones, in binding order.
func (h *Handler[S]) RegisterHandlers(r Router) ([]tgbotapi.BotCommand, error) {
	for _, d := range h.commands.Descriptors() {
		if err := r.Handle(d.Name(), h.dispatch(d.Name())); err != nil {
			return nil, err
		}
	}
	return MenuCommands(h.commands.VisibleDescriptors()), nil
}

func (h *Handler[S]) dispatch(name string) HandlerFunc {
	return func(ctx context.Context, msg *tgbotapi.Message) error {
		capability, err := h.commands.Resolve(name)
		if err != nil {
			var nf *command.NotFoundError
			if errors.As(err, &nf) {
				h.logger.Error("route without command", zap.String("command", name), zap.Error(err))
				return nil
			}
			return err
		}
		return capability(h.svc, ctx, msg)
	}
}
