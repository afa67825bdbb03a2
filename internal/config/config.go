package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Defaults assume a local OpenAI-compatible vision server on port 8080
// that does not check its API key.
const (
	DefaultOpenAIBaseURL = "http://localhost:8080/v1"
	DefaultOpenAIAPIKey  = "not-needed"
	DefaultOpenAIModel   = "lfm2-vl"
	DefaultGroqModel     = "llama-3.3-70b-versatile"
	DefaultServerPort    = 8181

	DefaultRateLimitCapacity = 10
	DefaultRateLimitRefill   = 1
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`

		// Token-bucket tuning for the rate limiter: burst capacity and
		// tokens refilled per second.
		RateLimitCapacity int `yaml:"rateLimitCapacity"`
		RateLimitRefill   int `yaml:"rateLimitRefill"`
	} `yaml:"server"`

	OpenAI struct {
		BaseURL string `yaml:"baseURL"`
		APIKey  string `yaml:"apiKey"`
		Model   string `yaml:"model"`
	} `yaml:"openai"`

	// Groq and Linkup are optional: an empty API key disables the adapter
	// instead of erroring.
	Groq struct {
		APIKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"groq"`

	Linkup struct {
		APIKey string `yaml:"apiKey"`
	} `yaml:"linkup"`

	// Auth maps client name -> API key. Empty map = auth disabled.
	Auth struct {
		APIKeys map[string]string `yaml:"apiKeys"`
	} `yaml:"auth"`
}

// Load baca file yaml (optional), lalu overlay environment variables,
// lalu isi defaults. Environment always wins over the file.
func Load(path string) (*Config, error) {
	var cfg Config

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.OpenAI.BaseURL, "OPENAI_BASE_URL")
	setString(&c.OpenAI.APIKey, "OPENAI_API_KEY")
	setString(&c.OpenAI.Model, "OPENAI_MODEL")
	setString(&c.Groq.APIKey, "GROQ_API_KEY")
	setString(&c.Groq.Model, "GROQ_MODEL")
	setString(&c.Linkup.APIKey, "LINKUP_API_KEY")

	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	setInt(&c.Server.RateLimitCapacity, "RATE_LIMIT_CAPACITY")
	setInt(&c.Server.RateLimitRefill, "RATE_LIMIT_REFILL")
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}
	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = DefaultOpenAIBaseURL
	}
	if c.OpenAI.APIKey == "" {
		c.OpenAI.APIKey = DefaultOpenAIAPIKey
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = DefaultOpenAIModel
	}
	if c.Groq.Model == "" {
		c.Groq.Model = DefaultGroqModel
	}
	if c.Server.RateLimitCapacity == 0 {
		c.Server.RateLimitCapacity = DefaultRateLimitCapacity
	}
	if c.Server.RateLimitRefill == 0 {
		c.Server.RateLimitRefill = DefaultRateLimitRefill
	}
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

func setInt(dst *int, env string) {
	if v := os.Getenv(env); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
