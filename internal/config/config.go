package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	LLM LLMConfig
	UI  UIConfig
	Log LogConfig
}

// LLMConfig holds completion settings.
type LLMConfig struct {
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
	APIKeyEnv string `mapstructure:"api_key_env"`
	APIKey    string `mapstructure:"api_key"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// LogConfig holds debug logging settings. The terminal is owned by the UI,
// so logs go to a file or nowhere.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// JASKCHAT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("llm.model", "gpt-4")
	v.SetDefault("llm.max_tokens", 1024)
	v.SetDefault("llm.api_key_env", "OPENAI_KEY")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("ui.markdown_style", "auto")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKCHAT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaskchat"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKCHAT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
