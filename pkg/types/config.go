// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Default model settings for the Groq chat-completion endpoint. The low
// temperature favors deterministic, on-brief copy.
const (
	DefaultModel       = "llama3-8b-8192"
	DefaultBaseURL     = "https://api.groq.com/openai/v1"
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 512
	DefaultMaxAttempts = 3
)

// AIConfig holds shared settings for stages that call the chat-completion API.
type AIConfig struct {
	// Model is the model identifier (default "llama3-8b-8192").
	Model string `json:"model" yaml:"model"`

	// BaseURL is the OpenAI-compatible endpoint
	// (default "https://api.groq.com/openai/v1").
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// APIKey is the authentication key. When empty the GROQ_API_KEY
	// environment variable is consulted.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Temperature is the sampling temperature (default 0.3).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MaxTokens caps the response length (default 512).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// MaxAttempts is the total number of call attempts including the first
	// (default 3). Attempts are separated by exponential backoff.
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`

	// Timeout bounds each individual attempt. Zero means no per-attempt bound.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// GenerationConfig holds settings for the generation stage.
type GenerationConfig struct {
	AIConfig `yaml:",inline"`

	// NumVariations is the default variations per content type (default 3).
	NumVariations int `json:"num_variations" yaml:"num_variations"`

	// Platforms is the default platform list for social captions.
	Platforms []string `json:"platforms,omitempty" yaml:"platforms,omitempty"`

	// Workers sets the fan-out worker pool size. Values below 2 run the
	// request sequentially.
	Workers int `json:"workers" yaml:"workers"`

	// TemplatesFile optionally points at a YAML file overriding the
	// built-in prompt templates.
	TemplatesFile string `json:"templates_file,omitempty" yaml:"templates_file,omitempty"`
}

// BrandStoreConfig holds settings for the brand profile store.
type BrandStoreConfig struct {
	// Dir is the directory holding the profile database (default "brands").
	Dir string `json:"dir" yaml:"dir"`
}

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// OutputDir is the directory for exported files (default "output/exports").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// AppConfig groups all stage configurations.
type AppConfig struct {
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Brands     BrandStoreConfig `json:"brands" yaml:"brands"`
	Export     ExportConfig     `json:"export" yaml:"export"`
}
