package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jose-valero/role-panel-bot/internal/domain"
	"gopkg.in/yaml.v3"
)

// MaxPanelRoles: 5 filas de 5 botones por mensaje.
const MaxPanelRoles = 5 * domain.ButtonsPerRow

var ErrInvalidPanel = errors.New("invalid panel config")

type panelDocument struct {
	Panel *domain.PanelConfig `yaml:"panel"`
}

// LoadPanel lee el documento del panel (JSON o YAML).
func LoadPanel(path string) (domain.PanelConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.PanelConfig{}, fmt.Errorf("read panel %s: %w", path, err)
	}
	return ParsePanel(raw)
}

func ParsePanel(raw []byte) (domain.PanelConfig, error) {
	var doc panelDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return domain.PanelConfig{}, fmt.Errorf("%w: %v", ErrInvalidPanel, err)
	}
	if doc.Panel == nil {
		return domain.PanelConfig{}, fmt.Errorf("%w: missing \"panel\"", ErrInvalidPanel)
	}
	if err := validatePanel(*doc.Panel); err != nil {
		return domain.PanelConfig{}, err
	}
	return *doc.Panel, nil
}

func validatePanel(p domain.PanelConfig) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidPanel)
	}
	if len(p.Roles) > MaxPanelRoles {
		return fmt.Errorf("%w: %d roles, max %d", ErrInvalidPanel, len(p.Roles), MaxPanelRoles)
	}
	seen := make(map[string]struct{}, len(p.Roles))
	for i, ro := range p.Roles {
		switch {
		case ro.RoleID == "":
			return fmt.Errorf("%w: roles[%d] without roleId", ErrInvalidPanel, i)
		case ro.Label == "":
			return fmt.Errorf("%w: roles[%d] without label", ErrInvalidPanel, i)
		case strings.Contains(ro.RoleID, domain.RoleControlPrefix):
			return fmt.Errorf("%w: roles[%d] roleId %q", ErrInvalidPanel, i, ro.RoleID)
		}
		if _, dup := seen[ro.RoleID]; dup {
			return fmt.Errorf("%w: duplicated roleId %s", ErrInvalidPanel, ro.RoleID)
		}
		seen[ro.RoleID] = struct{}{}
	}
	return nil
}
