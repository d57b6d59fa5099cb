package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries every runtime knob. It is loaded once in main and passed
// down into constructors; business code never reads the environment itself.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:""`
	DBName     string `envconfig:"DB_NAME" default:"bestlife"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiry time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`

	// bcrypt cost for password hashing.
	HashCost int `envconfig:"HASH_COST" default:"10"`

	UploadDir     string `envconfig:"UPLOAD_DIR" default:"./uploads/products"`
	BackupDir     string `envconfig:"BACKUP_DIR" default:"./backup/uploads"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:""`

	SMTPHost   string `envconfig:"SMTP_HOST" default:""`
	SMTPPort   int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser   string `envconfig:"SMTP_USER" default:""`
	SMTPPass   string `envconfig:"SMTP_PASS" default:""`
	EmailFrom  string `envconfig:"EMAIL_FROM" default:"no-reply@bestlife.shop"`
	AdminEmail string `envconfig:"ADMIN_EMAIL" default:""`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DSN builds the postgres connection string, preferring DATABASE_URL.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
