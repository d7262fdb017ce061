package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"factskill/internal/config"
	"factskill/internal/ports/input"
)

// Bot is the Discord adapter.
type Bot struct {
	session    *discordgo.Session
	config     *config.Config
	handler    *Handler
	logger     *zap.Logger
	registered []*discordgo.ApplicationCommand
}

// NewBot creates a Bot on top of the skill use case.
func NewBot(cfg *config.Config, skill input.SkillUseCase, locales LocaleMatcher, logger *zap.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("discord: création de la session: %w", err)
	}

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(skill, locales, cfg.DefaultLocale, logger),
		logger:  logger,
	}
	bot.session.AddHandler(bot.handleInteraction)
	return bot, nil
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	b.handler.HandleCommand(s, i)
}

// Start opens the gateway connection and registers the slash commands. It
// returns once the bot is online; call Close to stop it.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord: ouverture de la session: %w", err)
	}

	for _, cmd := range ApplicationCommands() {
		created, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			b.logger.Warn("discord command registration failed", zap.String("command", cmd.Name), zap.Error(err))
			continue
		}
		b.registered = append(b.registered, created)
	}

	b.logger.Info("discord bot online",
		zap.String("user", b.session.State.User.Username),
		zap.Int("commands", len(b.registered)))
	return nil
}

// Close removes guild-scoped commands and closes the session. Global
// commands are left registered since they take a while to propagate.
func (b *Bot) Close() error {
	if b.config.GuildID != "" {
		for _, cmd := range b.registered {
			if err := b.session.ApplicationCommandDelete(b.session.State.User.ID, b.config.GuildID, cmd.ID); err != nil {
				b.logger.Warn("discord command cleanup failed", zap.String("command", cmd.Name), zap.Error(err))
			}
		}
	}
	return b.session.Close()
}
