package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port    int    `yaml:"port"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"server"`
	JWT struct {
		Secret     string        `yaml:"secret"`
		AccessTTL  time.Duration `yaml:"access_ttl"`
		RefreshTTL time.Duration `yaml:"refresh_ttl"`
	} `yaml:"jwt"`
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		DBName   string `yaml:"dbname"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`
	Storage struct {
		// Driver is memory, file or postgres.
		Driver string `yaml:"driver"`
		Dir    string `yaml:"dir"`
	} `yaml:"storage"`
	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
	} `yaml:"smtp"`
	Admin struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Email    string `yaml:"email"`
	} `yaml:"admin"`
	Client struct {
		BaseURL        string        `yaml:"base_url"`
		Timeout        time.Duration `yaml:"timeout"`
		Debounce       time.Duration `yaml:"debounce"`
		PageSize       int           `yaml:"page_size"`
		RoomsSource    string        `yaml:"rooms_source"`
		UsersSource    string        `yaml:"users_source"`
		BookingsSource string        `yaml:"bookings_source"`
	} `yaml:"client"`
}

// Default returns the configuration used when no file or variable says otherwise.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.BaseURL = "http://localhost:8080"
	cfg.JWT.Secret = "change-me"
	cfg.JWT.AccessTTL = 15 * time.Minute
	cfg.JWT.RefreshTTL = 7 * 24 * time.Hour
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 5432
	cfg.Database.User = "postgres"
	cfg.Database.DBName = "hotel"
	cfg.Database.SSLMode = "disable"
	cfg.Storage.Driver = "memory"
	cfg.Storage.Dir = "data"
	cfg.SMTP.Port = 587
	cfg.Admin.Username = "admin"
	cfg.Admin.Password = "admin"
	cfg.Admin.Email = "admin@hotel.local"
	cfg.Client.BaseURL = "http://localhost:8080"
	cfg.Client.Timeout = 10 * time.Second
	cfg.Client.Debounce = 500 * time.Millisecond
	cfg.Client.PageSize = 5
	return cfg
}

// LoadConfig reads path over the defaults, then .env, then the environment.
// A missing file or .env is not an error.
func LoadConfig(path string) (*Config, error) {
	config := Default()
	if path != "" {
		file, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := config.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return config, nil
}

type lookupFunc func(string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	strs := map[string]*string{
		"SERVER_BASE_URL":        &c.Server.BaseURL,
		"JWT_SECRET":             &c.JWT.Secret,
		"DB_HOST":                &c.Database.Host,
		"DB_USER":                &c.Database.User,
		"DB_PASSWORD":            &c.Database.Password,
		"DB_NAME":                &c.Database.DBName,
		"DB_SSLMODE":             &c.Database.SSLMode,
		"STORAGE_DRIVER":         &c.Storage.Driver,
		"STORAGE_DIR":            &c.Storage.Dir,
		"SMTP_HOST":              &c.SMTP.Host,
		"SMTP_USER":              &c.SMTP.User,
		"SMTP_PASSWORD":          &c.SMTP.Password,
		"SMTP_FROM":              &c.SMTP.From,
		"ADMIN_USERNAME":         &c.Admin.Username,
		"ADMIN_PASSWORD":         &c.Admin.Password,
		"ADMIN_EMAIL":            &c.Admin.Email,
		"CLIENT_BASE_URL":        &c.Client.BaseURL,
		"CLIENT_ROOMS_SOURCE":    &c.Client.RoomsSource,
		"CLIENT_USERS_SOURCE":    &c.Client.UsersSource,
		"CLIENT_BOOKINGS_SOURCE": &c.Client.BookingsSource,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"SERVER_PORT":      &c.Server.Port,
		"DB_PORT":          &c.Database.Port,
		"SMTP_PORT":        &c.SMTP.Port,
		"CLIENT_PAGE_SIZE": &c.Client.PageSize,
	}
	for key, dst := range ints {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = n
		}
	}

	durations := map[string]*time.Duration{
		"JWT_ACCESS_TTL":  &c.JWT.AccessTTL,
		"JWT_REFRESH_TTL": &c.JWT.RefreshTTL,
		"CLIENT_TIMEOUT":  &c.Client.Timeout,
		"CLIENT_DEBOUNCE": &c.Client.Debounce,
	}
	for key, dst := range durations {
		if v, ok := lookup(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = d
		}
	}
	return nil
}

// DSN is the lib/pq connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.DBName, c.Database.SSLMode)
}
