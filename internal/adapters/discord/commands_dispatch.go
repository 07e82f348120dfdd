// comandos de texto: acá sólo se valida el evento y se despacha a los servicios
package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

func (r *Router) handleMessageCreate(m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" || m.Member == nil {
		return
	}
	h, ok := r.commands[m.Content]
	if !ok {
		return
	}

	log := r.log.With("event_id", uuid.NewString(), "cmd", m.Content, "by", m.Author.ID, "guild", m.GuildID)
	log.Info("cmd recibido")
	defer step(log, "cmd.total")()

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("panic en comando", "panic", rec)
			r.metrics.Failure("command")
			r.notifyChannel(log, m.ChannelID, msgUnexpected)
		}
	}()

	err := h(context.Background(), log, m)
	switch {
	case err == nil:
		r.metrics.Command(m.Content, "ok")
	case errors.Is(err, errDenied):
		r.metrics.Command(m.Content, "denied")
	default:
		log.Error("cmd falló", "err", err)
		r.metrics.Command(m.Content, "error")
		r.metrics.Failure("command")
		r.notifyChannel(log, m.ChannelID, msgUnexpected)
	}
}

//--> borra el disparador (si puede) y publica el panel en el mismo canal
func (r *Router) createPanel(ctx context.Context, log *slog.Logger, m *discordgo.MessageCreate) error {
	if err := r.s.ChannelMessageDelete(m.ChannelID, m.ID, discordgo.WithContext(ctx)); err != nil {
		log.Warn("no pude borrar el mensaje del comando", "err", err)
	}

	if _, err := r.s.ChannelMessageSendComplex(m.ChannelID, RenderPanel(r.panel), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send panel: %w", err)
	}
	log.Info("panel publicado", "channel", m.ChannelID, "roles", len(r.panel.Roles))
	return nil
}

//--> aviso, sync de todos los canales y aviso final; si el sync revienta no hay aviso final
func (r *Router) updatePermissions(ctx context.Context, log *slog.Logger, m *discordgo.MessageCreate) error {
	if _, err := r.s.ChannelMessageSendReply(m.ChannelID, msgSyncStarted, m.Reference(), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("ack reply: %w", err)
	}

	rep, err := r.perms.Sync(ctx, m.GuildID)
	if err != nil {
		return err
	}
	r.metrics.Sync(rep.Updated, rep.Failed, rep.Skipped)
	log.Info("permisos sincronizados", "report", rep.String())

	if _, err := r.s.ChannelMessageSendReply(m.ChannelID, msgSyncDone, m.Reference(), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("done reply: %w", err)
	}
	return nil
}
