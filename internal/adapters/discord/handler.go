package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"factskill/internal/domain"
	"factskill/internal/infrastructure/metrics"
	"factskill/internal/ports/input"
)

// LocaleMatcher picks the supported locale closest to what Discord reports
// for the user.
type LocaleMatcher interface {
	Match(locale, fallback string) string
}

// Handler answers slash commands through the skill use case.
type Handler struct {
	skill         input.SkillUseCase
	locales       LocaleMatcher
	defaultLocale string
	logger        *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(skill input.SkillUseCase, locales LocaleMatcher, defaultLocale string, logger *zap.Logger) *Handler {
	return &Handler{
		skill:         skill,
		locales:       locales,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

// HandleCommand dispatches a slash command and replies in the channel.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	start := time.Now()
	defer func() {
		metrics.DispatchLatency.WithLabelValues("discord").Observe(time.Since(start).Seconds())
	}()

	data := i.ApplicationCommandData()
	reply, ok := h.reply(context.Background(), data.Name, string(i.Locale), i.ID)
	if !ok {
		respondEphemeral(s, i.Interaction, "Unknown command.")
		return
	}
	if err := s.InteractionRespond(i.Interaction, reply); err != nil {
		h.logger.Warn("discord interaction respond failed",
			zap.String("command", data.Name),
			zap.Error(err))
	}
}

// reply builds the interaction response for a command. ok is false for
// commands this bot does not own.
func (h *Handler) reply(ctx context.Context, name, locale, interactionID string) (*discordgo.InteractionResponse, bool) {
	cmd, ok := lookupCommand(name)
	if !ok {
		return nil, false
	}

	req := domain.RequestDescriptor{
		Kind:       cmd.kind,
		IntentName: cmd.intent,
		Locale:     h.locales.Match(locale, h.defaultLocale),
		RequestID:  interactionID,
	}
	resp := h.skill.Dispatch(ctx, req)
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: responseData(resp),
	}, true
}
