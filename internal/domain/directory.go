package domain

import "github.com/bwmarrin/discordgo"

// PermissionViewChannel es el único bit que toca el sync de permisos.
const PermissionViewChannel int64 = discordgo.PermissionViewChannel

type Role struct {
	ID   string
	Name string
}

// Overwrite es el override (allow/deny) de un rol sobre un canal.
type Overwrite struct {
	RoleID string
	Allow  int64
	Deny   int64
}

type Channel struct {
	ID   string
	Name string
	// TextBased: canales con superficie de mensajes (texto, anuncios, voz, stage).
	TextBased  bool
	Overwrites []Overwrite
}

// RoleOverwrite busca el override del rol; zero value si no hay.
func (c Channel) RoleOverwrite(roleID string) (Overwrite, bool) {
	for _, ow := range c.Overwrites {
		if ow.RoleID == roleID {
			return ow, true
		}
	}
	return Overwrite{RoleID: roleID}, false
}

// WithView aplica ViewChannel=canView sobre el override sin tocar los otros bits.
func (o Overwrite) WithView(canView bool) Overwrite {
	if canView {
		o.Allow |= PermissionViewChannel
		o.Deny &^= PermissionViewChannel
	} else {
		o.Deny |= PermissionViewChannel
		o.Allow &^= PermissionViewChannel
	}
	return o
}

// CanView es true sólo si el override permite ViewChannel explícitamente.
func (o Overwrite) CanView() bool {
	return o.Allow&PermissionViewChannel != 0 && o.Deny&PermissionViewChannel == 0
}
