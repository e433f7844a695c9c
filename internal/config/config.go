package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Billing struct {
		// Name of the reference plan every payment is resolved against.
		ProPlan string `yaml:"pro_plan"`
		// How long the plan row may be served from the in-process cache.
		PlanCacheTTLSeconds int `yaml:"plan_cache_ttl_seconds"`
	} `yaml:"billing"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, unless DATABASE_URL is set in the
// environment, in which case the config is assembled from env vars (the
// mode used by tests and containerized deploys). A .env file is applied
// first when present.
func LoadConfig() {
	var cfg Config

	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyBillingDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))

	applyBillingDefaults(&cfg)
	AppConfig = &cfg
}

func applyBillingDefaults(cfg *Config) {
	if cfg.Billing.ProPlan == "" {
		cfg.Billing.ProPlan = "Pro"
	}
	if cfg.Billing.PlanCacheTTLSeconds <= 0 {
		cfg.Billing.PlanCacheTTLSeconds = 300
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
