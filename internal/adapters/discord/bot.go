package discord

import (
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
)

// Intents: mensajes con contenido para los comandos de texto y miembros para los roles.
const Intents = discordgo.IntentGuilds |
	discordgo.IntentGuildMessages |
	discordgo.IntentMessageContent |
	discordgo.IntentGuildMembers

// Bot es la conexión al gateway y su estado de readiness.
// Se pasa explícito a quien lo necesite (router, servidor de status).
type Bot struct {
	Session *discordgo.Session
	log     *slog.Logger
	ready   atomic.Bool
}

// BotAuth agrega el prefijo "Bot " si el token no lo trae.
func BotAuth(token string) string {
	auth := strings.TrimSpace(token)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	return auth
}

func NewBot(token string, log *slog.Logger) (*Bot, error) {
	s, err := discordgo.New(BotAuth(token))
	if err != nil {
		return nil, err
	}
	s.Identify.Intents = Intents

	b := &Bot{Session: s, log: log}
	s.AddHandler(b.onReady)
	s.AddHandler(b.onResumed)
	s.AddHandler(b.onDisconnect)
	return b, nil
}

func (b *Bot) Open() error {
	b.log.Info("abriendo conexión con el gateway")
	return b.Session.Open()
}

func (b *Bot) Close() error {
	b.ready.Store(false)
	b.log.Info("cerrando conexión con el gateway")
	return b.Session.Close()
}

// Ready es true mientras la conexión con el gateway está arriba.
func (b *Bot) Ready() bool { return b.ready.Load() }

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.ready.Store(true)
	if r.User != nil {
		b.log.Info("✅ conectado", "user", r.User.Username, "id", r.User.ID, "guilds", len(r.Guilds))
	}
}

func (b *Bot) onResumed(_ *discordgo.Session, _ *discordgo.Resumed) {
	b.ready.Store(true)
	b.log.Info("sesión reanudada")
}

func (b *Bot) onDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	b.ready.Store(false)
	b.log.Warn("desconectado del gateway")
}
