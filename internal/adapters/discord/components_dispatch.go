package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/jose-valero/role-panel-bot/internal/app/service"
	"github.com/jose-valero/role-panel-bot/internal/domain"
)

// handleMessageComponent atiende sólo botones "role_<id>"; el resto se ignora.
func (r *Router) handleMessageComponent(ic *discordgo.InteractionCreate) {
	data := ic.MessageComponentData()
	roleID, ok := domain.ParseRoleControlID(data.CustomID)
	if !ok {
		return
	}
	if ic.Member == nil || ic.Member.User == nil {
		return
	}

	log := r.log.With("event_id", uuid.NewString(), "custom_id", data.CustomID, "by", ic.Member.User.ID, "guild", ic.GuildID)
	defer step(log, "component.role_toggle.total")()

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("panic en componente", "panic", rec)
			r.metrics.Failure("component")
			r.replyEphemeral(log, ic, msgUnexpected)
		}
	}()

	_ = r.deferEphemeral(log, ic)

	res, err := r.roles.Toggle(context.Background(), service.ToggleEvent{
		GuildID:     ic.GuildID,
		MemberID:    ic.Member.User.ID,
		RoleID:      roleID,
		MemberRoles: ic.Member.Roles,
	})
	if err != nil {
		log.Error("toggle falló", "err", err)
		r.metrics.Failure("component")
		r.replyEphemeral(log, ic, msgUnexpected)
		return
	}

	r.metrics.Toggle(string(res.Action))
	r.replyEphemeral(log, ic, res.Message())
}
