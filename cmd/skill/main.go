package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"factskill/internal/adapters/discord"
	"factskill/internal/adapters/webhook"
	"factskill/internal/application"
	"factskill/internal/config"
	"factskill/internal/domain"
	"factskill/internal/infrastructure/database"
	"factskill/internal/infrastructure/i18n"
	"factskill/internal/infrastructure/logging"
	"factskill/internal/ports/input"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Erreur de configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Erreur lors de l'initialisation des logs: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("factskill stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := i18n.NewCatalog(i18n.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("chargement des traductions: %w", err)
	}
	if err := catalog.Validate(domain.BaseKeys...); err != nil {
		return fmt.Errorf("traductions incomplètes: %w", err)
	}
	logger.Info("catalog loaded", zap.Strings("locales", catalog.Locales()))

	var skill input.SkillUseCase = application.NewSkillService(catalog, logger)

	if cfg.JournalEnabled() {
		if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return err
		}
		defer pool.Close()
		skill = application.NewJournaledSkill(skill, database.NewInteractionRepository(pool), logger)
	}

	server := webhook.NewServer(skill, cfg.ApplicationID, logger)
	serveErr := make(chan error, 1)
	go func() { serveErr <- server.Listen(cfg.HTTPAddr) }()

	if cfg.DiscordEnabled() {
		bot, err := discord.NewBot(cfg, skill, catalog, logger)
		if err != nil {
			return err
		}
		if err := bot.Start(); err != nil {
			return err
		}
		defer bot.Close()
	}

	select {
	case err := <-serveErr:
		return fmt.Errorf("serveur HTTP: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
