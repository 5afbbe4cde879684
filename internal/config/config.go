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

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	AI struct {
		APIKey      string  `yaml:"api_key"`
		BaseURL     string  `yaml:"base_url"` // empty = provider default
		Model       string  `yaml:"model"`
		Temperature float64 `yaml:"temperature"`
		MaxTokens   int     `yaml:"max_tokens"`
	} `yaml:"ai"`

	Payments struct {
		SecretKey  string `yaml:"secret_key"`
		SuccessURL string `yaml:"success_url"`
		CancelURL  string `yaml:"cancel_url"`
		RefreshURL string `yaml:"refresh_url"` // express onboarding restart
		ReturnURL  string `yaml:"return_url"`  // express onboarding done
	} `yaml:"payments"`

	Queue struct {
		AMQPURL string `yaml:"amqp_url"` // empty = event publishing disabled
	} `yaml:"queue"`

	Workers struct {
		NotificationInterval int `yaml:"notification_interval"` // seconds
		NotificationBatch    int `yaml:"notification_batch"`
		CampaignInterval     int `yaml:"campaign_interval"` // seconds
	} `yaml:"workers"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	// .env не обязателен - в проде всё приходит из окружения
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		log.Println("Загрузка из config.yaml")

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

		applyEnvOverrides(&cfg)
		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Загрузка конфигурации из переменных окружения")

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	AppConfig = &cfg
}

// applyEnvOverrides - секреты всегда можно переопределить окружением
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("AI_BASE_URL"); v != "" {
		cfg.AI.BaseURL = v
	}
	if v := os.Getenv("STRIPE_SECRET_KEY"); v != "" {
		cfg.Payments.SecretKey = v
	}
	if v := os.Getenv("AMQP_URL"); v != "" {
		cfg.Queue.AMQPURL = v
	}
	if v := os.Getenv("FIRST_ADMIN_EMAIL"); v != "" {
		cfg.FirstAdminEmail = v
	}
	if v := os.Getenv("FIRST_ADMIN_PASSWORD"); v != "" {
		cfg.FirstAdminPassword = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.Email.SMTPPassword = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gpt-4o-mini"
	}
	if cfg.AI.MaxTokens == 0 {
		cfg.AI.MaxTokens = 1024
	}
	if cfg.Workers.NotificationInterval == 0 {
		cfg.Workers.NotificationInterval = 30
	}
	if cfg.Workers.NotificationBatch == 0 {
		cfg.Workers.NotificationBatch = 50
	}
	if cfg.Workers.CampaignInterval == 0 {
		cfg.Workers.CampaignInterval = 3600
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "BrandLink"
	}
}
