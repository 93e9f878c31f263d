package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// this is a pointer so that if someone attempts to use it before loading it will
// panic and force them to load it first.
// it is also private so that it cannot be modified after loading.
var _loaded *Config

// Config is the main configuration structure
type Config struct {
	Common Common `yaml:"common"`
}

// Load loads the configuration following proper precedence: defaults → config file → environment variables
func Load() {
	// Start with defaults
	_loaded = &defaultConfig

	// Try to load from config file and merge over defaults
	configFile := os.Getenv("PREP_CONFIG_FILE")
	if configFile == "" {
		configFile = "interview-prep.yaml"
	}

	if err := LoadFromFile(configFile); err != nil {
		log.Printf("Failed to load config file: %v, using defaults", err)
	} else {
		log.Printf("Loaded config from file: %s", configFile)
	}

	// Apply environment variable overrides (highest priority)
	ApplyEnvOverrides()
}

func LoadDefault() {
	config := defaultConfig
	_loaded = &config
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := defaultConfig

	// Merge YAML values over defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	_loaded = &cfg
	return nil
}

// ApplyEnvOverrides overrides loaded configuration with environment variables
func ApplyEnvOverrides() {
	config := *_loaded

	if dbHost := os.Getenv("PREP_DB_HOST"); dbHost != "" {
		config.Common.Postgres.Host = dbHost
	}
	if dbPort := os.Getenv("PREP_DB_PORT"); dbPort != "" {
		if port, err := strconv.Atoi(dbPort); err == nil {
			config.Common.Postgres.Port = port
		}
	}
	if dbUser := os.Getenv("PREP_DB_USER"); dbUser != "" {
		config.Common.Postgres.User = dbUser
	}
	if dbPassword := os.Getenv("PREP_DB_PASSWORD"); dbPassword != "" {
		config.Common.Postgres.Password = dbPassword
	}
	if dbName := os.Getenv("PREP_DB_NAME"); dbName != "" {
		config.Common.Postgres.Database = dbName
	}

	if httpHost := os.Getenv("PREP_HTTP_HOST"); httpHost != "" {
		config.Common.Http.Host = httpHost
	}
	if httpPort := os.Getenv("PREP_HTTP_PORT"); httpPort != "" {
		if port, err := strconv.Atoi(httpPort); err == nil {
			config.Common.Http.Port = port
		}
	}
	if origins := os.Getenv("PREP_ALLOWED_ORIGINS"); origins != "" {
		config.Common.Http.AllowedOrigins = strings.Split(origins, ",")
	}

	if apiKey := os.Getenv("PREP_API_KEY"); apiKey != "" {
		config.Common.Auth.APIKey = apiKey
	}

	if provider := os.Getenv("PREP_AI_PROVIDER"); provider != "" {
		config.Common.AI.Provider = provider
	}
	if openaiAPIKey := os.Getenv("OPENAI_API_KEY"); openaiAPIKey != "" {
		config.Common.AI.OpenAIAPIKey = openaiAPIKey
	}
	if model := os.Getenv("PREP_AI_MODEL"); model != "" {
		config.Common.AI.Model = model
	}

	if logLevel := os.Getenv("PREP_LOG_LEVEL"); logLevel != "" {
		config.Common.Log.Level = logLevel
	}
	if logFormat := os.Getenv("PREP_LOG_FORMAT"); logFormat != "" {
		config.Common.Log.Format = logFormat
	}

	_loaded = &config
}

// set sane defaults for all of the config options. when loading the config from
// the file, any options that are not set will be set to these defaults.
var defaultConfig = Config{
	Common: Common{
		Log: logConfig{
			Level:  "info",
			Format: "json",
		},
		Http: httpConfig{
			Host: "0.0.0.0",
			Port: 8000,
			AllowedOrigins: []string{
				"http://localhost:5173",
			},
		},
		Auth: authConfig{
			APIKey: "prep_default_key", // Default key for development
		},
		Postgres: postgresConfig{
			User:               "postgres",
			Password:           "postgres",
			Host:               "localhost",
			Port:               5432,
			Database:           "interview_prep",
			MaxOpenConnections: 10,
		},
		AI: aiConfig{
			Provider:     "template",
			OpenAIAPIKey: "",
			Model:        "",
		},
	},
}

type Common struct {
	Log      logConfig      `yaml:"log"`
	Http     httpConfig     `yaml:"http"`
	Auth     authConfig     `yaml:"auth"`
	Postgres postgresConfig `yaml:"postgres"`
	AI       aiConfig       `yaml:"ai"`
}

type logConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type httpConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type authConfig struct {
	APIKey string `yaml:"api_key"` // API key guarding the /api routes
}

type postgresConfig struct {
	User               string `yaml:"user"`
	Password           string `yaml:"password"`
	Host               string `yaml:"host"`
	Port               int    `yaml:"port"`
	Database           string `yaml:"database"`
	MaxOpenConnections int    `yaml:"max_open_connections"`
}

func (c postgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		url.QueryEscape(c.Database),
	)
}

type aiConfig struct {
	Provider     string `yaml:"provider"`       // "template" or "openai"
	OpenAIAPIKey string `yaml:"openai_api_key"` // OpenAI API key
	Model        string `yaml:"model"`          // chat model name, empty for default
}

// there should be a getter for each top level field in the config struct.
// these getters will panic if the config has not been loaded.

func Logger() logConfig {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded.Common.Log
}

func Http() httpConfig {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded.Common.Http
}

func Auth() authConfig {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded.Common.Auth
}

func Postgres() postgresConfig {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded.Common.Postgres
}

func AI() aiConfig {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded.Common.AI
}

func Get() *Config {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded
}
