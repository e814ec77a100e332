package app

import (
	"github.com/PoluyanbIch/cmdbot/internal/command"
	"github.com/PoluyanbIch/cmdbot/internal/service"
	"github.com/PoluyanbIch/cmdbot/internal/telegram"
)

var (
	StartCommand = command.MustDescriptor("start", "Запустить бота")
	HelpCommand  = command.MustDescriptor("help", "Справка по боту")
)

// CommonCommands is the static command table shown to every user.
func CommonCommands() []telegram.Binding[service.Service] {
	return []telegram.Binding[service.Service]{
		{Descriptor: StartCommand, Capability: service.Service.Start},
		{Descriptor: HelpCommand, Capability: service.Service.Help},
	}
}
