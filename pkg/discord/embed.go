package discord

import (
	"github.com/bwmarrin/discordgo"
)

const (
	embedColor = 0x5865F2
	// Discord rejects embeds whose description exceeds this length.
	maxDescription = 4096
	maxFooter      = 2048
	maxTitle       = 256
)

// BuildCardEmbed renders a title/body card as an embed. The footer carries
// the follow-up prompt when there is one. Returns nil when there is nothing
// to show.
func BuildCardEmbed(title, body, footer string) *discordgo.MessageEmbed {
	if title == "" && body == "" && footer == "" {
		return nil
	}
	embed := &discordgo.MessageEmbed{
		Title:       truncate(title, maxTitle),
		Description: truncate(body, maxDescription),
		Color:       embedColor,
	}
	if footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: truncate(footer, maxFooter)}
	}
	return embed
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
