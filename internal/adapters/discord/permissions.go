package discord

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// errDenied corta el comando sin responder nada (negación silenciosa).
var errDenied = errors.New("administrator required")

type messageHandler func(ctx context.Context, log *slog.Logger, m *discordgo.MessageCreate) error

// adminOnly deja pasar sólo a dueños o miembros con Administrator.
// Sin permisos no hay respuesta ni se borra el mensaje.
func (r *Router) adminOnly(next messageHandler) messageHandler {
	return func(ctx context.Context, log *slog.Logger, m *discordgo.MessageCreate) error {
		ok, err := r.dir.IsAdministrator(ctx, m.GuildID, m.Author.ID, m.Member.Roles)
		if err != nil {
			log.Warn("no pude verificar permisos de admin", "err", err)
			return errDenied
		}
		if !ok {
			log.Debug("comando de admin ignorado: sin permisos")
			return errDenied
		}
		return next(ctx, log, m)
	}
}
