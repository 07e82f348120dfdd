package service

import (
	"context"
	"errors"

	"github.com/jose-valero/role-panel-bot/internal/domain"
)

var (
	ErrRoleNotFound  = errors.New("role not found")
	ErrGuildNotFound = errors.New("guild not found")
)

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

// Lo implementa internal/adapters/discord.Directory
type RoleDirectory interface {
	// Role devuelve ErrRoleNotFound si el rol no existe en el guild.
	Role(ctx context.Context, guildID, roleID string) (domain.Role, error)
	AddMemberRole(ctx context.Context, guildID, userID, roleID string) error
	RemoveMemberRole(ctx context.Context, guildID, userID, roleID string) error
}

// Lo implementa internal/adapters/discord.Directory
type ChannelDirectory interface {
	Channels(ctx context.Context, guildID string) ([]domain.Channel, error)
	SetRoleOverwrite(ctx context.Context, channelID string, ow domain.Overwrite) error
}
