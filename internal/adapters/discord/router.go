package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/jose-valero/role-panel-bot/internal/app/service"
	"github.com/jose-valero/role-panel-bot/internal/domain"
	"github.com/jose-valero/role-panel-bot/internal/infra/metrics"
)

type Router struct {
	s   Session
	dir *Directory
	log *slog.Logger

	panel   domain.PanelConfig
	roles   *service.RoleService
	perms   *service.PermissionSyncService
	metrics *metrics.Metrics

	commands map[string]messageHandler
}

func NewRouter(
	s Session,
	dir *Directory,
	panel domain.PanelConfig,
	roles *service.RoleService,
	perms *service.PermissionSyncService,
	m *metrics.Metrics,
	log *slog.Logger,
) *Router {
	r := &Router{
		s:       s,
		dir:     dir,
		log:     log,
		panel:   panel,
		roles:   roles,
		perms:   perms,
		metrics: m,
	}
	r.commands = map[string]messageHandler{
		CmdCreatePanel:       r.adminOnly(r.createPanel),
		CmdUpdatePermissions: r.adminOnly(r.updatePermissions),
	}
	return r
}

// Handlers registra los callbacks del gateway.
func (r *Router) Handlers(h handlerAdder) {
	h.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		r.handleMessageCreate(m)
	})
	h.AddHandler(func(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
		if ic.Type != discordgo.InteractionMessageComponent {
			return
		}
		r.handleMessageComponent(ic)
	})
}
