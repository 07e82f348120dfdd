package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jose-valero/role-panel-bot/internal/domain"
)

type ToggleAction string

const (
	ToggleAdded    ToggleAction = "added"
	ToggleRemoved  ToggleAction = "removed"
	ToggleNotFound ToggleAction = "not_found"
)

// ToggleEvent vive lo que dura un click.
type ToggleEvent struct {
	GuildID  string
	MemberID string
	RoleID   string
	// MemberRoles es el snapshot de roles que trae la interacción.
	MemberRoles []string
}

type ToggleResult struct {
	Action ToggleAction
	Role   domain.Role
}

// Message es el texto de la respuesta efímera.
func (r ToggleResult) Message() string {
	switch r.Action {
	case ToggleAdded:
		return fmt.Sprintf("✅ %s ロールを付与しました。", r.Role.Name)
	case ToggleRemoved:
		return fmt.Sprintf("❌ %s ロールを外しました。", r.Role.Name)
	default:
		return "⚠️ ロールが見つかりません。"
	}
}

type RoleService struct {
	dir RoleDirectory
	log *slog.Logger
}

func NewRoleService(dir RoleDirectory, log *slog.Logger) *RoleService {
	return &RoleService{dir: dir, log: log}
}

// Toggle agrega o quita el rol según el snapshot del miembro: una sola mutación por evento.
// Dos clicks simultáneos pueden ver el mismo snapshot; Discord absorbe el add/remove duplicado.
func (s *RoleService) Toggle(ctx context.Context, ev ToggleEvent) (ToggleResult, error) {
	log := s.log.With("guild", ev.GuildID, "member", ev.MemberID, "role", ev.RoleID)

	if ev.RoleID == "" {
		log.Info("toggle: custom_id sin rol")
		return ToggleResult{Action: ToggleNotFound}, nil
	}

	role, err := s.dir.Role(ctx, ev.GuildID, ev.RoleID)
	if errors.Is(err, ErrRoleNotFound) {
		log.Info("toggle: rol inexistente")
		return ToggleResult{Action: ToggleNotFound}, nil
	}
	if err != nil {
		return ToggleResult{}, fmt.Errorf("resolve role %s: %w", ev.RoleID, err)
	}

	if slices.Contains(ev.MemberRoles, role.ID) {
		if err := s.dir.RemoveMemberRole(ctx, ev.GuildID, ev.MemberID, role.ID); err != nil {
			return ToggleResult{}, fmt.Errorf("remove role %s: %w", role.ID, err)
		}
		log.Info("toggle: rol quitado", "role_name", role.Name)
		return ToggleResult{Action: ToggleRemoved, Role: role}, nil
	}

	if err := s.dir.AddMemberRole(ctx, ev.GuildID, ev.MemberID, role.ID); err != nil {
		return ToggleResult{}, fmt.Errorf("add role %s: %w", role.ID, err)
	}
	log.Info("toggle: rol agregado", "role_name", role.Name)
	return ToggleResult{Action: ToggleAdded, Role: role}, nil
}
