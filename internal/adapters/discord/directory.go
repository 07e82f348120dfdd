package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/jose-valero/role-panel-bot/internal/app/service"
	"github.com/jose-valero/role-panel-bot/internal/domain"
)

// códigos JSON de la API de Discord
const (
	codeUnknownGuild = 10004
	codeUnknownRole  = 10011
)

// Directory implementa los puertos de service sobre la API de Discord.
// state es opcional: con nil todo va por REST (ej. el job de Lambda).
type Directory struct {
	s     Session
	state *discordgo.State
}

var (
	_ service.RoleDirectory    = (*Directory)(nil)
	_ service.ChannelDirectory = (*Directory)(nil)
)

func NewDirectory(s Session, state *discordgo.State) *Directory {
	return &Directory{s: s, state: state}
}

func (d *Directory) Role(ctx context.Context, guildID, roleID string) (domain.Role, error) {
	if d.state != nil {
		if r, err := d.state.Role(guildID, roleID); err == nil && r != nil {
			return domain.Role{ID: r.ID, Name: r.Name}, nil
		}
	}
	roles, err := d.s.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	for _, r := range roles {
		if r.ID == roleID {
			return domain.Role{ID: r.ID, Name: r.Name}, nil
		}
	}
	return domain.Role{}, service.ErrRoleNotFound
}

func (d *Directory) AddMemberRole(ctx context.Context, guildID, userID, roleID string) error {
	return mapNotFound(d.s.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx)))
}

func (d *Directory) RemoveMemberRole(ctx context.Context, guildID, userID, roleID string) error {
	return mapNotFound(d.s.GuildMemberRoleRemove(guildID, userID, roleID, discordgo.WithContext(ctx)))
}

// Channels va siempre por REST: los overwrites del cache pueden estar viejos.
func (d *Directory) Channels(ctx context.Context, guildID string) ([]domain.Channel, error) {
	chs, err := d.s.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapNotFound(err)
	}
	out := make([]domain.Channel, 0, len(chs))
	for _, ch := range chs {
		if ch == nil {
			continue
		}
		c := domain.Channel{ID: ch.ID, Name: ch.Name, TextBased: isTextBased(ch.Type)}
		for _, ow := range ch.PermissionOverwrites {
			if ow == nil || ow.Type != discordgo.PermissionOverwriteTypeRole {
				continue
			}
			c.Overwrites = append(c.Overwrites, domain.Overwrite{RoleID: ow.ID, Allow: ow.Allow, Deny: ow.Deny})
		}
		out = append(out, c)
	}
	return out, nil
}

func (d *Directory) SetRoleOverwrite(ctx context.Context, channelID string, ow domain.Overwrite) error {
	err := d.s.ChannelPermissionSet(channelID, ow.RoleID, discordgo.PermissionOverwriteTypeRole, ow.Allow, ow.Deny, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("channel %s role %s: %w", channelID, ow.RoleID, err)
	}
	return nil
}

// IsAdministrator: dueño del guild o algún rol (incluido @everyone) con Administrator.
func (d *Directory) IsAdministrator(ctx context.Context, guildID, userID string, roleIDs []string) (bool, error) {
	g, err := d.guild(ctx, guildID)
	if err != nil {
		return false, err
	}
	if g.OwnerID != "" && g.OwnerID == userID {
		return true, nil
	}

	has := make(map[string]struct{}, len(roleIDs)+1)
	has[guildID] = struct{}{}
	for _, rid := range roleIDs {
		has[rid] = struct{}{}
	}

	var perms int64
	for _, ro := range g.Roles {
		if _, ok := has[ro.ID]; ok {
			perms |= ro.Permissions
		}
	}
	return perms&discordgo.PermissionAdministrator != 0, nil
}

func (d *Directory) guild(ctx context.Context, guildID string) (*discordgo.Guild, error) {
	if d.state != nil {
		if g, err := d.state.Guild(guildID); err == nil && g != nil && len(g.Roles) > 0 {
			return g, nil
		}
	}
	g, err := d.s.Guild(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return g, nil
}

// isTextBased: tipos de canal con superficie de mensajes y overwrites propios.
func isTextBased(t discordgo.ChannelType) bool {
	switch t {
	case discordgo.ChannelTypeGuildText,
		discordgo.ChannelTypeGuildNews,
		discordgo.ChannelTypeGuildVoice,
		discordgo.ChannelTypeGuildStageVoice:
		return true
	}
	return false
}

func mapNotFound(err error) error {
	if err == nil {
		return nil
	}
	var re *discordgo.RESTError
	if errors.As(err, &re) {
		if re.Message != nil {
			switch re.Message.Code {
			case codeUnknownRole:
				return fmt.Errorf("%w: %v", service.ErrRoleNotFound, err)
			case codeUnknownGuild:
				return fmt.Errorf("%w: %v", service.ErrGuildNotFound, err)
			}
		}
	}
	return err
}
