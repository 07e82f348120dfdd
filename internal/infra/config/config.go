package config

import (
	"fmt"
	"os"
	"strings"
)

// Defaults de producción: canales visibles para todos y rol que ve todo.
var (
	DefaultAllowedChannelIDs = []string{
		"1397039034437599243",
		"1365650307249606666",
		"1381607109204119704",
		"1396875452441952319",
		"1396874181878087821",
		"1381601112951357475",
	}
	DefaultPrivilegedRoleID = "1396874755763732651"
)

type Config struct {
	DiscordToken string
	DiscordGuild string // sólo lo usa el job de permsync
	Port         string // opcional, default 3000
	PanelPath    string // opcional, default config.json

	AllowedChannelIDs []string
	PrivilegedRoleID  string

	LogLevel  string
	LogFormat string
	LogFile   string
}

// Addr es la dirección de escucha del servidor de status.
func (c Config) Addr() string { return ":" + c.Port }

// Load lee el entorno. requireGuild es para los binarios que apuntan a un guild fijo.
func Load(requireGuild bool) (Config, error) {
	var missing []string
	get := func(k string, req bool) string {
		v := strings.TrimSpace(os.Getenv(k))
		if v == "" && req {
			missing = append(missing, k)
		}
		return v
	}

	cfg := Config{
		DiscordToken: get("DISCORD_TOKEN", true),
		DiscordGuild: get("DISCORD_GUILD_ID", requireGuild),
		Port:         get("PORT", false),
		PanelPath:    get("PANEL_CONFIG", false),

		AllowedChannelIDs: splitList(get("ALLOWED_CHANNEL_IDS", false)),
		PrivilegedRoleID:  get("PRIVILEGED_ROLE_ID", false),

		LogLevel:  get("LOG_LEVEL", false),
		LogFormat: get("LOG_FORMAT", false),
		LogFile:   get("LOG_FILE", false),
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("faltante env %s", strings.Join(missing, ", "))
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.PanelPath == "" {
		cfg.PanelPath = "config.json"
	}
	if cfg.AllowedChannelIDs == nil {
		cfg.AllowedChannelIDs = append([]string(nil), DefaultAllowedChannelIDs...)
	}
	if cfg.PrivilegedRoleID == "" {
		cfg.PrivilegedRoleID = DefaultPrivilegedRoleID
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
