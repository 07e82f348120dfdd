package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	discordrouter "github.com/jose-valero/role-panel-bot/internal/adapters/discord"
	"github.com/jose-valero/role-panel-bot/internal/adapters/httpstatus"
	"github.com/jose-valero/role-panel-bot/internal/app/service"
	"github.com/jose-valero/role-panel-bot/internal/infra/config"
	"github.com/jose-valero/role-panel-bot/internal/infra/logging"
	"github.com/jose-valero/role-panel-bot/internal/infra/metrics"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(false)
	if err != nil {
		log.Fatal(err)
	}

	logger, closer := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	defer closer.Close()

	panel, err := config.LoadPanel(cfg.PanelPath)
	if err != nil {
		logger.Error("panel config", "err", err)
		os.Exit(1)
	}
	logger.Info("✅ panel cargado", "path", cfg.PanelPath, "roles", len(panel.Roles))

	// Discord session
	bot, err := discordrouter.NewBot(cfg.DiscordToken, logger)
	if err != nil {
		logger.Error("discord session", "err", err)
		os.Exit(1)
	}

	// Services
	dir := discordrouter.NewDirectory(bot.Session, bot.Session.State)
	roleSvc := service.NewRoleService(dir, logger)
	permSvc := service.NewPermissionSyncService(dir, service.VisibilityPolicy{
		AllowedChannelIDs: cfg.AllowedChannelIDs,
		PrivilegedRoleID:  cfg.PrivilegedRoleID,
	}, logger)
	m := metrics.New()

	// Router
	r := discordrouter.NewRouter(bot.Session, dir, panel, roleSvc, permSvc, m, logger)
	r.Handlers(bot.Session)

	if err := bot.Open(); err != nil {
		logger.Error("gateway", "err", err)
		os.Exit(1)
	}
	defer bot.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// Status HTTP (el proceso sigue aunque el server caiga)
	web := httpstatus.New(bot, m.Handler(), logger)
	go func() {
		if err := web.Start(ctx, cfg.Addr()); err != nil {
			logger.Error("http server", "err", err)
		}
	}()

	// Esperar señal
	<-ctx.Done()
	logger.Info("apagando")
}
