package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jask/jaskchat/internal/config"
	"github.com/jask/jaskchat/internal/llm"
	"github.com/jask/jaskchat/internal/secrets"
	"github.com/jask/jaskchat/internal/tui"
)

func main() {
	ctx := context.Background()

	// .env in the working directory may carry the API key.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("config: %v", err)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		stdlog.Fatalf("logging: %v", err)
	}
	defer closeLog()

	apiKey := resolveAPIKey(cfg)
	if apiKey == "" {
		stdlog.Fatalf("no OpenAI API key: set %s, store one with the secrets store, or set llm.api_key in config", cfg.LLM.APIKeyEnv)
	}

	gateway := llm.NewOpenAI(apiKey, cfg.LLM.Model, cfg.LLM.MaxTokens)

	p := tea.NewProgram(tui.New(ctx, gateway, cfg.UI.MarkdownStyle), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging routes zerolog to the configured file, or discards it; the
// terminal belongs to the TUI.
func setupLogging(cfg config.Config) (func(), error) {
	if cfg.Log.File == "" {
		log.Logger = zerolog.Nop()
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return func() { _ = f.Close() }, nil
}

// resolveAPIKey checks the configured env var, then the secrets store, then
// the config literal.
func resolveAPIKey(cfg config.Config) string {
	env := strings.TrimSpace(cfg.LLM.APIKeyEnv)
	if env == "" {
		env = "OPENAI_KEY"
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	if k, err := secrets.Fetch("openai"); err == nil && k != "" {
		return k
	}
	return strings.TrimSpace(cfg.LLM.APIKey)
}
