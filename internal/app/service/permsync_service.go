package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jose-valero/role-panel-bot/internal/domain"
)

// VisibilityPolicy: qué canales ve @everyone y qué rol ve todo.
type VisibilityPolicy struct {
	AllowedChannelIDs []string
	PrivilegedRoleID  string
}

func (p VisibilityPolicy) allowed(channelID string) bool {
	return slices.Contains(p.AllowedChannelIDs, channelID)
}

type SyncReport struct {
	Updated int
	Failed  int
	Skipped int
}

func (r SyncReport) String() string {
	return fmt.Sprintf("updated=%d failed=%d skipped=%d", r.Updated, r.Failed, r.Skipped)
}

type PermissionSyncService struct {
	dir    ChannelDirectory
	policy VisibilityPolicy
	log    *slog.Logger
}

func NewPermissionSyncService(dir ChannelDirectory, policy VisibilityPolicy, log *slog.Logger) *PermissionSyncService {
	return &PermissionSyncService{dir: dir, policy: policy, log: log}
}

// Sync recorre los canales en orden, uno por uno. Sólo falla si no puede listar canales;
// un canal que falla se loguea y se sigue con el próximo.
func (s *PermissionSyncService) Sync(ctx context.Context, guildID string) (SyncReport, error) {
	var rep SyncReport

	channels, err := s.dir.Channels(ctx, guildID)
	if err != nil {
		return rep, fmt.Errorf("list channels of %s: %w", guildID, err)
	}

	// el rol @everyone tiene el mismo id que el guild
	everyoneID := guildID

	for _, ch := range channels {
		if !ch.TextBased {
			rep.Skipped++
			continue
		}
		if err := s.syncChannel(ctx, ch, everyoneID); err != nil {
			rep.Failed++
			s.log.Error("❌ no se pudo actualizar permisos", "channel", ch.Name, "channel_id", ch.ID, "err", err)
			continue
		}
		rep.Updated++
		s.log.Info("✅ permisos actualizados", "channel", ch.Name, "channel_id", ch.ID)
	}

	s.log.Info("sync de permisos terminado", "guild", guildID, "report", rep.String())
	return rep, nil
}

func (s *PermissionSyncService) syncChannel(ctx context.Context, ch domain.Channel, everyoneID string) error {
	everyone, _ := ch.RoleOverwrite(everyoneID)
	if err := s.dir.SetRoleOverwrite(ctx, ch.ID, everyone.WithView(s.policy.allowed(ch.ID))); err != nil {
		return fmt.Errorf("default role: %w", err)
	}

	if s.policy.PrivilegedRoleID == "" {
		return nil
	}
	priv, _ := ch.RoleOverwrite(s.policy.PrivilegedRoleID)
	if err := s.dir.SetRoleOverwrite(ctx, ch.ID, priv.WithView(true)); err != nil {
		return fmt.Errorf("privileged role: %w", err)
	}
	return nil
}
