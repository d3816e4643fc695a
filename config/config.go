package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DBPath      string
	JWTSecret   string
	DevLogin    bool
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string

	CultivarCSV    string
	CatalogDomains string
	SeedDemo       bool
}

func Load(log *zap.Logger) AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file loaded", zap.Error(err))
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Timezone:    get("TZ", "Pacific/Auckland"),
		DBPath:      get("DB_PATH", "beetguru.db"),
		JWTSecret:   get("JWT_SECRET", "dev-only-secret"),
		DevLogin:    get("DEV_LOGIN", "false") == "true",
		LLMEndpoint: get("LLM_ENDPOINT", ""),
		LLMAPIKey:   get("LLM_API_KEY", ""),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),

		CultivarCSV:    get("CULTIVAR_CSV", "./Cultivars.csv"),
		CatalogDomains: get("CATALOG_ALLOWED_DOMAINS", ""),
		SeedDemo:       get("SEED_DEMO", "true") == "true",
	}
	// Season math and report dates are farm-local.
	if loc, err := time.LoadLocation(cfg.Timezone); err != nil {
		log.Warn("timezone", zap.Error(err))
	} else {
		time.Local = loc
	}

	log.Info("config loaded",
		zap.String("port", cfg.Port),
		zap.String("db_path", cfg.DBPath),
		zap.Bool("dev_login", cfg.DevLogin),
		zap.Bool("llm", cfg.LLMEndpoint != ""))
	return cfg
}
