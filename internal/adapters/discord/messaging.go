package discord

import (
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// código de la API: webhook desconocido (todavía no hay respuesta a la interacción)
const codeUnknownWebhook = 10015

// Defer efímero (para trabajos >3s)
func (r *Router) deferEphemeral(log *slog.Logger, ic *discordgo.InteractionCreate) error {
	err := r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Warn("deferEphemeral", "err", err)
	}
	return err
}

// replyEphemeral responde sobre el defer; si no hubo defer cae a InteractionRespond.
func (r *Router) replyEphemeral(log *slog.Logger, ic *discordgo.InteractionCreate, content string) {
	_, err := r.s.FollowupMessageCreate(ic.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err == nil {
		return
	}

	var reqErr *discordgo.RESTError
	if errors.As(err, &reqErr) && reqErr.Message != nil && reqErr.Message.Code == codeUnknownWebhook {
		err = r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: content,
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		if err == nil {
			return
		}
	}
	log.Error("replyEphemeral", "err", err)
}

// notifyChannel manda un aviso suelto al canal (sin referencia: el mensaje del comando puede no existir ya).
func (r *Router) notifyChannel(log *slog.Logger, channelID, content string) {
	if _, err := r.s.ChannelMessageSend(channelID, content); err != nil {
		log.Error("notifyChannel", "channel", channelID, "err", err)
	}
}
