package discord

import (
	"slices"

	"github.com/bwmarrin/discordgo"
	"github.com/jose-valero/role-panel-bot/internal/domain"
)

// RenderPanel arma embed + filas de botones (de a 5) a partir de la config.
// Es determinístico y no llama a la API.
func RenderPanel(p domain.PanelConfig) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title:       p.Title,
		Description: p.Description,
		Color:       p.AccentColor(),
	}

	rows := make([]discordgo.MessageComponent, 0, (len(p.Roles)+domain.ButtonsPerRow-1)/domain.ButtonsPerRow)
	for chunk := range slices.Chunk(p.Roles, domain.ButtonsPerRow) {
		buttons := make([]discordgo.MessageComponent, 0, len(chunk))
		for _, ro := range chunk {
			buttons = append(buttons, discordgo.Button{
				Style:    discordgo.SecondaryButton,
				Label:    ro.Label,
				CustomID: domain.RoleControlID(ro.RoleID),
			})
		}
		rows = append(rows, discordgo.ActionsRow{Components: buttons})
	}

	return &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: rows,
	}
}
