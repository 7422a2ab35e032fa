package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AI struct {
		Provider       string `yaml:"provider"`
		Model          string `yaml:"model"`
		APIKey         string `yaml:"api_key"`
		BaseURL        string `yaml:"base_url"` // OpenAI-compatible endpoints only
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		Workers        int    `yaml:"workers"`
	} `yaml:"ai"`
	Scan struct {
		Exclude []string `yaml:"exclude"`
	} `yaml:"scan"`
	Render struct {
		Output       string `yaml:"output"`
		SnippetLines int    `yaml:"snippet_lines"`
		Open         *bool  `yaml:"open"`
	} `yaml:"render"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	var cfg Config
	cfg.AI.Provider = "gemini"
	cfg.AI.TimeoutSeconds = 30
	cfg.AI.Workers = 4
	cfg.Render.Output = "import_graph.html"
	cfg.Render.SnippetLines = 10
	return &cfg
}

// LoadConfig reads the YAML config at path, layered over the defaults. A
// missing file is not an error; the defaults apply. Environment variables win
// over both.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := DefaultConfig()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if apiKey := os.Getenv("IMPORTLENS_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if provider := os.Getenv("IMPORTLENS_AI_PROVIDER"); provider != "" {
		cfg.AI.Provider = provider
	}

	return cfg, nil
}

// OpenBrowser reports whether the rendered page should be opened, defaulting
// to true when the config file does not say.
func (c *Config) OpenBrowser() bool {
	if c.Render.Open == nil {
		return true
	}
	return *c.Render.Open
}
