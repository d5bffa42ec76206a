package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("JASKCHAT_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLM.Model != "gpt-4" {
		t.Fatalf("default model = %q, want gpt-4", cfg.LLM.Model)
	}
	if cfg.LLM.MaxTokens != 1024 {
		t.Fatalf("default max tokens = %d, want 1024", cfg.LLM.MaxTokens)
	}
	if cfg.LLM.APIKeyEnv != "OPENAI_KEY" {
		t.Fatalf("default api key env = %q, want OPENAI_KEY", cfg.LLM.APIKeyEnv)
	}
	if cfg.UI.MarkdownStyle != "auto" {
		t.Fatalf("default markdown style = %q, want auto", cfg.UI.MarkdownStyle)
	}
	if cfg.Log.File != "" {
		t.Fatalf("default log file = %q, want empty", cfg.Log.File)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[llm]\nmodel = \"gpt-4o\"\nmax_tokens = 256\n\n[log]\nfile = \"/tmp/jaskchat.log\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("JASKCHAT_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLM.Model != "gpt-4o" || cfg.LLM.MaxTokens != 256 {
		t.Fatalf("file values not applied: %+v", cfg.LLM)
	}
	if cfg.Log.File != "/tmp/jaskchat.log" {
		t.Fatalf("log file = %q", cfg.Log.File)
	}
	// untouched keys keep their defaults
	if cfg.LLM.APIKeyEnv != "OPENAI_KEY" {
		t.Fatalf("api key env = %q, want default", cfg.LLM.APIKeyEnv)
	}
}
