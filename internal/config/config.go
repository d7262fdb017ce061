package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	HTTPAddr      string
	DefaultLocale string
	ApplicationID string
	DiscordToken  string
	GuildID       string
	DatabaseURL   string
	LogLevel      string
	LogFormat     string
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{
		HTTPAddr:      os.Getenv("HTTP_ADDR"),
		DefaultLocale: os.Getenv("DEFAULT_LOCALE"),
		ApplicationID: os.Getenv("SKILL_APPLICATION_ID"),
		DiscordToken:  os.Getenv("DISCORD_TOKEN"),
		GuildID:       os.Getenv("DISCORD_GUILD_ID"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DiscordEnabled reports whether the Discord front-end should start.
func (c *Config) DiscordEnabled() bool { return c.DiscordToken != "" }

// JournalEnabled reports whether served responses are written to PostgreSQL.
func (c *Config) JournalEnabled() bool { return c.DatabaseURL != "" }

// validate applique les valeurs par défaut puis les règles de cohérence.
func (c *Config) validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		c.HTTPAddr = ":8080"
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en-US"
	}
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: DEFAULT_LOCALE invalide (%q): %w", c.DefaultLocale, err)
	}

	if c.GuildID != "" {
		if c.DiscordToken == "" {
			return fmt.Errorf("config: DISCORD_GUILD_ID nécessite DISCORD_TOKEN")
		}
		for _, r := range c.GuildID {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: DISCORD_GUILD_ID doit être un ID Discord (chiffres uniquement)")
			}
		}
	}

	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
		}
	}

	switch strings.ToLower(c.LogLevel) {
	case "":
		c.LogLevel = "info"
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		return fmt.Errorf("config: LOG_LEVEL inconnu (%q)", c.LogLevel)
	}

	switch strings.ToLower(c.LogFormat) {
	case "":
		c.LogFormat = "json"
	case "json", "console":
		c.LogFormat = strings.ToLower(c.LogFormat)
	default:
		return fmt.Errorf("config: LOG_FORMAT inconnu (%q)", c.LogFormat)
	}

	return nil
}
