package discord

import (
	"github.com/bwmarrin/discordgo"

	"factskill/internal/domain"
)

// command binds a slash command to the request it stands for.
type command struct {
	def  *discordgo.ApplicationCommand
	kind domain.RequestKind
	// intent is empty for launch-style commands.
	intent string
}

var commands = []command{
	{
		def: &discordgo.ApplicationCommand{
			Name:        "fact",
			Description: "Tell me a space fact",
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.German:    "Erzähl mir einen Weltraumfakt",
				discordgo.SpanishES: "Cuéntame un dato sobre el espacio",
				discordgo.Italian:   "Dimmi un aneddoto sullo spazio",
			},
		},
		kind:   domain.KindIntent,
		intent: domain.IntentGetNewFact,
	},
	{
		def: &discordgo.ApplicationCommand{
			Name:        "help",
			Description: "What can this bot do?",
		},
		kind:   domain.KindIntent,
		intent: domain.IntentHelp,
	},
	{
		def: &discordgo.ApplicationCommand{
			Name:        "stop",
			Description: "Say goodbye",
		},
		kind:   domain.KindIntent,
		intent: domain.IntentStop,
	},
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.def.Name == name {
			return c, true
		}
	}
	return command{}, false
}

// ApplicationCommands lists the slash commands to register.
func ApplicationCommands() []*discordgo.ApplicationCommand {
	defs := make([]*discordgo.ApplicationCommand, 0, len(commands))
	for _, c := range commands {
		defs = append(defs, c.def)
	}
	return defs
}
