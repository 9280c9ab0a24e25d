package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "config.yaml"

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int            `yaml:"port"`
	Env            string         `yaml:"env"` // "development" | "production"
	DSN            string         `yaml:"dsn"` // MySQL DSN, overrides Database when set
	Database       DatabaseConfig `yaml:"database"`
	RedisURL       string         `yaml:"redis_url"`
	JWTSecret      string         `yaml:"jwt_secret"`
	AllowedOrigins []string       `yaml:"allowed_origins"`
	S3             S3Options      `yaml:"s3"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
	Loc      string `yaml:"loc"`
}

// S3Options configures the asset store. UploadPrefix and BlogCoverPrefix are
// the two key namespaces: general images and blog cover images live under
// separate prefixes because they are governed and cleaned up independently.
type S3Options struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	CustomDomain    string `yaml:"custom_domain"`
	PathStyleAccess bool   `yaml:"path_style_access"`
	UploadPrefix    string `yaml:"upload_prefix"`
	BlogCoverPrefix string `yaml:"blog_cover_prefix"`
	MaxSizeMB       int    `yaml:"max_size_mb"`
	AllowedFormats  string `yaml:"allowed_formats"` // comma-separated extensions
}

// Load reads a YAML config file and applies defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = 2333
	}
	if c.Env == "" {
		c.Env = "production"
	}
	if c.RedisURL == "" {
		c.RedisURL = "redis://localhost:6379/0"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 3306
	}
	if c.Database.Charset == "" {
		c.Database.Charset = "utf8mb4"
	}
	if c.Database.Loc == "" {
		c.Database.Loc = "Local"
	}
	if c.S3.UploadPrefix == "" {
		c.S3.UploadPrefix = "uploads"
	}
	if c.S3.BlogCoverPrefix == "" {
		c.S3.BlogCoverPrefix = "blog-covers"
	}
	if c.S3.MaxSizeMB == 0 {
		c.S3.MaxSizeMB = 10
	}
	if c.S3.AllowedFormats == "" {
		c.S3.AllowedFormats = "jpg,jpeg,png,webp,gif,svg"
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, "development") || strings.EqualFold(c.Env, "dev")
}

// ResolveDSN returns the explicit DSN when set, otherwise assembles one
// from the database block.
func (c *AppConfig) ResolveDSN() string {
	if strings.TrimSpace(c.DSN) != "" {
		return c.DSN
	}
	d := c.Database
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.Charset, d.Loc)
}
