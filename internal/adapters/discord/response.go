package discord

import (
	"github.com/bwmarrin/discordgo"

	"factskill/internal/domain"
	pkgdiscord "factskill/pkg/discord"
)

// responseData maps a skill response onto a Discord message: speech as
// content, the card as an embed, the reprompt as the embed footer.
func responseData(resp domain.Response) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{Content: resp.Speech}
	if embed := pkgdiscord.BuildCardEmbed(resp.CardTitle, resp.CardBody, resp.Reprompt); embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{embed}
	}
	// Discord refuses a message with neither content nor embeds.
	if resp.IsSilent() && len(data.Embeds) == 0 {
		data.Content = "…"
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return data
}

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
