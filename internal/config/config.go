package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	OpenAI    OpenAIConfig
	Analysis  AnalysisConfig
	Retrieval RetrievalConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8000"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
}

type OpenAIConfig struct {
	// APIKey being empty is the sole switch demoting the model client
	// to its mock backend.
	APIKey      string        `envconfig:"OPENAI_API_KEY"`
	APIEndpoint string        `envconfig:"OPENAI_ENDPOINT" default:"https://api.openai.com/v1"`
	Model       string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-2024-08-06"`
	Timeout     time.Duration `envconfig:"LLM_TIMEOUT" default:"45s"`
	MockDelay   time.Duration `envconfig:"MOCK_DELAY" default:"300ms"`
}

type AnalysisConfig struct {
	// UseModel selects model-backed population analysis; false selects
	// the rule-based heuristic path.
	UseModel       bool `envconfig:"ANALYSIS_USE_MODEL" default:"true"`
	MaxPromptChars int  `envconfig:"ANALYSIS_MAX_PROMPT_CHARS" default:"12000"`
}

type RetrievalConfig struct {
	Endpoint  string        `envconfig:"RETRIEVAL_ENDPOINT" default:"https://www.ebi.ac.uk/europepmc/webservices/rest/search"`
	Timeout   time.Duration `envconfig:"RETRIEVAL_TIMEOUT" default:"30s"`
	MaxPapers int           `envconfig:"RETRIEVAL_MAX_PAPERS" default:"25"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
