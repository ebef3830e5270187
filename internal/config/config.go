package config

import (
	"log"
	"os"
	"strconv"

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

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Redis struct {
		Addr     string `yaml:"addr"` // empty disables rate limiting
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Storage StorageConfig `yaml:"storage"`

	Upload struct {
		MaxSize            int64    `yaml:"max_size"` // bytes
		AllowedResumeTypes []string `yaml:"allowed_resume_types"`
		AllowedImageTypes  []string `yaml:"allowed_image_types"`
	} `yaml:"upload"`

	Email EmailConfig `yaml:"email"`

	Recommender RecommenderConfig `yaml:"recommender"`

	FirstAdminName     string `yaml:"first_admin_name"`
	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

type StorageConfig struct {
	Type       string `yaml:"type"`      // local, s3
	BasePath   string `yaml:"base_path"` // for local storage
	BaseURL    string `yaml:"base_url"`  // public URL base
	Bucket     string `yaml:"bucket"`
	Region     string `yaml:"region"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Endpoint   string `yaml:"endpoint"` // custom S3-compatible endpoint
	PublicRead bool   `yaml:"public_read"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUsername string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
	FromName     string `yaml:"from_name"`
	Enabled      bool   `yaml:"enabled"`
}

type RecommenderConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

var AppConfig *Config

// LoadConfig fills AppConfig either from CONFIG_PATH (yaml) or, when
// DATABASE_URL is set, from environment variables. The env path is what the
// test and container environments use.
func LoadConfig() {
	var cfg Config

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

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60
	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Recommender.BaseURL = os.Getenv("RECOMMENDER_URL")
	cfg.FirstAdminName = os.Getenv("FIRST_ADMIN_NAME")
	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/api/files"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

// GetConfig returns the loaded configuration.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if len(cfg.Upload.AllowedResumeTypes) == 0 {
		cfg.Upload.AllowedResumeTypes = []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		}
	}
	if len(cfg.Upload.AllowedImageTypes) == 0 {
		cfg.Upload.AllowedImageTypes = []string{
			"image/jpeg", "image/png", "image/webp",
		}
	}
	if cfg.Recommender.TimeoutSeconds == 0 {
		cfg.Recommender.TimeoutSeconds = 5
	}
}
