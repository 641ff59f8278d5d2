package config

import (
	"log"
	"os"
	"strconv"
	"time"

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
		UseTLS       bool   `yaml:"use_tls"`
	} `yaml:"email"`

	JWT struct {
		Secret     string `yaml:"secret"`
		TTL        int    `yaml:"ttl"`         // access token, minutes
		RefreshTTL int    `yaml:"refresh_ttl"` // refresh token, hours
	} `yaml:"jwt"`

	Stripe struct {
		APIKey     string `yaml:"api_key"`
		SuccessURL string `yaml:"success_url"`
		Currency   string `yaml:"currency"`
	} `yaml:"stripe"`

	Lessons struct {
		AllowedVideoDomains []string `yaml:"allowed_video_domains"`
	} `yaml:"lessons"`

	Notifications struct {
		CourseDebounceHours int `yaml:"course_debounce_hours"`
		LessonDebounceHours int `yaml:"lesson_debounce_hours"`
		QueueSize           int `yaml:"queue_size"`
		Workers             int `yaml:"workers"`
	} `yaml:"notifications"`

	Inactivity struct {
		ThresholdDays int `yaml:"threshold_days"`
		SweepHours    int `yaml:"sweep_hours"`
	} `yaml:"inactivity"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

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

	// Environment driven configuration (containers, CI).
	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 15
	cfg.JWT.RefreshTTL = 24

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("EMAIL_FROM")

	cfg.Stripe.APIKey = os.Getenv("STRIPE_API_KEY")
	cfg.Stripe.SuccessURL = os.Getenv("STRIPE_SUCCESS_URL")

	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 15
	}
	if cfg.JWT.RefreshTTL == 0 {
		cfg.JWT.RefreshTTL = 24
	}
	if len(cfg.Lessons.AllowedVideoDomains) == 0 {
		cfg.Lessons.AllowedVideoDomains = []string{"youtube.com"}
	}
	if cfg.Notifications.CourseDebounceHours == 0 {
		cfg.Notifications.CourseDebounceHours = 4
	}
	if cfg.Notifications.LessonDebounceHours == 0 {
		cfg.Notifications.LessonDebounceHours = 3
	}
	if cfg.Notifications.QueueSize == 0 {
		cfg.Notifications.QueueSize = 256
	}
	if cfg.Notifications.Workers == 0 {
		cfg.Notifications.Workers = 4
	}
	if cfg.Inactivity.ThresholdDays == 0 {
		cfg.Inactivity.ThresholdDays = 30
	}
	if cfg.Inactivity.SweepHours == 0 {
		cfg.Inactivity.SweepHours = 24
	}
	if cfg.Stripe.Currency == "" {
		cfg.Stripe.Currency = "rub"
	}
	if cfg.Stripe.SuccessURL == "" {
		cfg.Stripe.SuccessURL = "http://127.0.0.1:8000/"
	}
}

// CourseDebounce returns the minimum time between course update notifications.
func (c *Config) CourseDebounce() time.Duration {
	return time.Duration(c.Notifications.CourseDebounceHours) * time.Hour
}

// LessonDebounce returns the minimum time between lesson update notifications.
func (c *Config) LessonDebounce() time.Duration {
	return time.Duration(c.Notifications.LessonDebounceHours) * time.Hour
}

// InactivityThreshold is how long a user may stay without a login.
func (c *Config) InactivityThreshold() time.Duration {
	return time.Duration(c.Inactivity.ThresholdDays) * 24 * time.Hour
}

// SweepInterval is how often the inactivity worker runs.
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Inactivity.SweepHours) * time.Hour
}

// RefreshTTL returns the refresh token lifetime.
func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(c.JWT.RefreshTTL) * time.Hour
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
