package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	TAMS     TAMSConfig
	Agents   AgentsConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Session  SessionConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type TAMSConfig struct {
	BaseURL string
	Timeout time.Duration
}

const (
	AgentSourceAPI      = "api"
	AgentSourceFixture  = "fixture"
	AgentSourcePostgres = "postgres"
)

type AgentsConfig struct {
	Source string
}

// DatabaseConfig is only used when Agents.Source is "postgres".
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
}

type SessionConfig struct {
	IdleTTL         time.Duration
	CleanupInterval time.Duration
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work for Docker/K8s
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout := getEnvInt("SERVER_READ_TIMEOUT", 30)
	writeTimeout := getEnvInt("SERVER_WRITE_TIMEOUT", 30)
	tamsTimeout := getEnvInt("TAMS_TIMEOUT_SECONDS", 30)
	jwtExp := getEnvInt("JWT_EXPIRATION_HOURS", 12)
	idleTTL := getEnvInt("SESSION_IDLE_TTL_MINUTES", 30)
	cleanupInterval := getEnvInt("SESSION_CLEANUP_INTERVAL_SECONDS", 60)

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		TAMS: TAMSConfig{
			BaseURL: getEnv("TAMS_BASE_URL", "http://localhost:8000"),
			Timeout: time.Duration(tamsTimeout) * time.Second,
		},
		Agents: AgentsConfig{
			Source: getEnv("AGENTS_SOURCE", AgentSourceAPI),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "ai_agent_platform"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
		},
		Session: SessionConfig{
			IdleTTL:         time.Duration(idleTTL) * time.Minute,
			CleanupInterval: time.Duration(cleanupInterval) * time.Second,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.TAMS.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid TAMS_BASE_URL %q", c.TAMS.BaseURL)
	}

	switch c.Agents.Source {
	case AgentSourceAPI, AgentSourceFixture, AgentSourcePostgres:
	default:
		return fmt.Errorf("invalid AGENTS_SOURCE %q: want api, fixture or postgres", c.Agents.Source)
	}

	if c.TAMS.Timeout <= 0 {
		return fmt.Errorf("TAMS_TIMEOUT_SECONDS must be positive")
	}

	if c.Session.CleanupInterval <= 0 || c.Session.IdleTTL <= 0 {
		return fmt.Errorf("session cleanup interval and idle TTL must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return n
}
