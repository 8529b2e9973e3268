package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file finhub looks for in the working
// directory.
const DefaultFileName = "finhub.yaml"

// Config represents the top-level finhub.yaml configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Supabase SupabaseConfig `yaml:"supabase"`
	Agent    AgentConfig    `yaml:"agent"`
	Voice    VoiceConfig    `yaml:"voice"`
	Data     DataConfig     `yaml:"data"`
}

// ServerConfig points at the finance-hub backend that fronts QuickBooks,
// Stripe, the authority queue and the orchestrator.
type ServerConfig struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token,omitempty"`
}

// SupabaseConfig holds credentials for the founder-hub tables.
type SupabaseConfig struct {
	URL     string `yaml:"url,omitempty"`
	AnonKey string `yaml:"anon_key,omitempty"`
}

// AgentMode selects who answers desk intents.
type AgentMode string

const (
	// ModeOrchestrator routes intents through the backend orchestrator,
	// which attaches governance metadata.
	ModeOrchestrator AgentMode = "orchestrator"
	// ModeDirect talks straight to an OpenAI-compatible endpoint. No
	// governance; useful for local drafting.
	ModeDirect AgentMode = "direct"
)

// AgentConfig controls the desk agent.
type AgentConfig struct {
	Mode    AgentMode `yaml:"mode"`
	Model   string    `yaml:"model,omitempty"`
	APIKey  string    `yaml:"api_key,omitempty"`
	BaseURL string    `yaml:"base_url,omitempty"`
}

// VoiceConfig controls the voice/avatar session.
type VoiceConfig struct {
	// ConnectTimeoutSeconds bounds the avatar handshake. Zero means the
	// 15-second default.
	ConnectTimeoutSeconds int `yaml:"connect_timeout_seconds,omitempty"`
}

// DataConfig locates local state (saved items, run log).
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// ConnectTimeout returns the voice handshake deadline.
func (v VoiceConfig) ConnectTimeout() time.Duration {
	if v.ConnectTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(v.ConnectTimeoutSeconds) * time.Second
}

// Load reads a finhub.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new setup.
func Default(serverURL string) *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL: serverURL,
		},
		Agent: AgentConfig{
			Mode:  ModeOrchestrator,
			Model: "gpt-4o-mini",
		},
		Voice: VoiceConfig{
			ConnectTimeoutSeconds: 15,
		},
		Data: DataConfig{
			Dir: ".finhub",
		},
	}
}
