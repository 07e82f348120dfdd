package domain

import "strings"

// RoleControlPrefix es el prefijo del custom_id de cada botón del panel.
const RoleControlPrefix = "role_"

// ButtonsPerRow: máximo de botones por ActionsRow.
const ButtonsPerRow = 5

// DefaultPanelColor es el color de acento del embed (0x00BFFF).
const DefaultPanelColor = 0x00bfff

// RoleOption es un botón del panel: rol + texto visible.
type RoleOption struct {
	RoleID string `yaml:"roleId"`
	Label  string `yaml:"label"`
}

// PanelConfig se carga una vez al arrancar y no cambia en runtime.
type PanelConfig struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Color       int          `yaml:"color"`
	Roles       []RoleOption `yaml:"roles"`
}

// AccentColor devuelve Color o el default si no vino en el documento.
func (p PanelConfig) AccentColor() int {
	if p.Color == 0 {
		return DefaultPanelColor
	}
	return p.Color
}

// RoleControlID arma el custom_id "role_<roleId>".
func RoleControlID(roleID string) string {
	return RoleControlPrefix + roleID
}

// ParseRoleControlID devuelve el roleId si customID tiene el prefijo.
// Un id vacío tras el prefijo es válido acá; quien resuelve el rol lo rechaza.
func ParseRoleControlID(customID string) (string, bool) {
	return strings.CutPrefix(customID, RoleControlPrefix)
}
