package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Analyzer AnalyzerConfig
	Gemini   GeminiConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port             string `env:"PORT" envDefault:"5000"`
	Env              string `env:"ENV" envDefault:"development"`
	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
}

type StorageConfig struct {
	UploadPath  string `env:"UPLOAD_PATH" envDefault:"./temp_uploads"`
	MaxFileSize int64  `env:"MAX_FILE_SIZE" envDefault:"10485760"`
}

type AnalyzerConfig struct {
	DefaultRole  string `env:"DEFAULT_ROLE" envDefault:"developer"`
	KeywordsFile string `env:"KEYWORDS_FILE"`
	Concurrency  int    `env:"WORKER_CONCURRENCY" envDefault:"3"`
	QueueSize    int    `env:"WORKER_QUEUE_SIZE" envDefault:"100"`
}

// GeminiConfig enables the optional NLP annotator when APIKey is set.
type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

type LogConfig struct {
	JSON  bool `env:"LOG_JSON" envDefault:"false"`
	Debug bool `env:"LOG_DEBUG" envDefault:"false"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func (c *Config) Address() string {
	return fmt.Sprintf(":%s", c.Server.Port)
}

func (c *Config) validate() error {
	if c.Storage.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive, got %d", c.Storage.MaxFileSize)
	}
	if c.Analyzer.Concurrency <= 0 {
		return fmt.Errorf("WORKER_CONCURRENCY must be positive, got %d", c.Analyzer.Concurrency)
	}
	if c.Analyzer.QueueSize < 0 {
		return fmt.Errorf("WORKER_QUEUE_SIZE must not be negative, got %d", c.Analyzer.QueueSize)
	}
	if c.Analyzer.DefaultRole == "" {
		return fmt.Errorf("DEFAULT_ROLE must not be empty")
	}
	return nil
}
