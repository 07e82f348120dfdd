package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	discordrouter "github.com/jose-valero/role-panel-bot/internal/adapters/discord"
	"github.com/jose-valero/role-panel-bot/internal/app/service"
	"github.com/jose-valero/role-panel-bot/internal/infra/config"
	"github.com/jose-valero/role-panel-bot/internal/infra/logging"
)

// handler re-aplica la política de visibilidad por REST (sin gateway).
func handler(ctx context.Context) (string, error) {
	cfg, err := config.Load(true)
	if err != nil {
		return "", err
	}
	logger, closer := logging.New(logging.Options{Level: cfg.LogLevel, Format: "json"})
	defer closer.Close()

	s, err := discordgo.New(discordrouter.BotAuth(cfg.DiscordToken))
	if err != nil {
		return "", fmt.Errorf("discord session: %w", err)
	}

	cctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	svc := service.NewPermissionSyncService(discordrouter.NewDirectory(s, nil), service.VisibilityPolicy{
		AllowedChannelIDs: cfg.AllowedChannelIDs,
		PrivilegedRoleID:  cfg.PrivilegedRoleID,
	}, logger.With("job", "permsync", "guild", cfg.DiscordGuild))

	rep, err := svc.Sync(cctx, cfg.DiscordGuild)
	if err != nil {
		return "", err
	}
	return rep.String(), nil
}

func main() {
	_ = godotenv.Load()
	lambda.Start(handler)
}
