package discord

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/jose-valero/role-panel-bot/internal/app/service"
	"github.com/jose-valero/role-panel-bot/internal/domain"
	"github.com/jose-valero/role-panel-bot/internal/infra/metrics"
)

const (
	guildID    = "900"
	ownerID    = "1"
	adminRole  = "500"
	plainRole  = "501"
	privRoleID = "777"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func panelWith(n int) domain.PanelConfig {
	p := domain.PanelConfig{Title: "ロール選択", Description: "ボタンを押してね"}
	for i := 1; i <= n; i++ {
		p.Roles = append(p.Roles, domain.RoleOption{RoleID: fmt.Sprintf("10%d", i), Label: fmt.Sprintf("R%d", i)})
	}
	return p
}

func testGuild() *discordgo.Guild {
	return &discordgo.Guild{
		ID:      guildID,
		OwnerID: ownerID,
		Roles: []*discordgo.Role{
			{ID: guildID, Name: "@everyone"},
			{ID: adminRole, Name: "admin", Permissions: discordgo.PermissionAdministrator},
			{ID: plainRole, Name: "member", Permissions: discordgo.PermissionSendMessages},
		},
	}
}

func newTestRouter(fs *FakeSession, panel domain.PanelConfig, allowed ...string) *Router {
	if fs.GuildFunc == nil {
		fs.GuildFunc = func(string) (*discordgo.Guild, error) { return testGuild(), nil }
	}
	log := discardLogger()
	dir := NewDirectory(fs, nil)
	roles := service.NewRoleService(dir, log)
	perms := service.NewPermissionSyncService(dir, service.VisibilityPolicy{AllowedChannelIDs: allowed, PrivilegedRoleID: privRoleID}, log)
	return NewRouter(fs, dir, panel, roles, perms, metrics.New(), log)
}

func textMessage(content, authorID string, roles ...string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        "m1",
		ChannelID: "c1",
		GuildID:   guildID,
		Content:   content,
		Author:    &discordgo.User{ID: authorID},
		Member:    &discordgo.Member{Roles: roles},
	}}
}

func buttonClick(customID, userID string, roles ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:      "i1",
		Type:    discordgo.InteractionMessageComponent,
		GuildID: guildID,
		Member:  &discordgo.Member{User: &discordgo.User{ID: userID}, Roles: roles},
		Data:    discordgo.MessageComponentInteractionData{CustomID: customID, ComponentType: discordgo.ButtonComponent},
	}}
}
