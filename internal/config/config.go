package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const defaultContextLimit = 20

func Load() (*Config, error) {
	dbPath := os.Getenv("ECHO_DB")
	if dbPath == "" {
		dbPath = "lore.db"
	}

	personaPath := os.Getenv("ECHO_PERSONA")

	contextLimit := defaultContextLimit
	if v := os.Getenv("ECHO_CONTEXT_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ECHO_CONTEXT_LIMIT: %w", err)
		}
		contextLimit = n
	}

	llmConfig, err := loadLLMConfig()
	if err != nil {
		return nil, err
	}

	botConfig, err := loadBotConfig()
	if err != nil {
		return nil, err
	}

	curators, err := parseCurators(os.Getenv("ECHO_CURATORS"))
	if err != nil {
		return nil, err
	}

	return &Config{
		DBPath:       dbPath,
		PersonaPath:  personaPath,
		ContextLimit: contextLimit,
		LLM:          llmConfig,
		Bot:          botConfig,
		Curators:     curators,
	}, nil
}

func loadLLMConfig() (LLMConfig, error) {
	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = DetectProvider()
	}

	return LLMConfig{
		Provider: provider,
		APIKey:   apiKeyFor(provider),
		Model:    os.Getenv("LLM_MODEL"),
		BaseURL:  os.Getenv("LLM_BASE_URL"),
	}, nil
}

// DetectProvider picks an LLM provider from whichever API key is present.
// Groq is checked first because it is the historical default for this bot.
func DetectProvider() string {
	if os.Getenv("GROQ_API_KEY") != "" {
		return "groq"
	}

	if os.Getenv("ANTHROPIC_API_KEY") != "" {
		return "claude"
	}

	if os.Getenv("OPENAI_API_KEY") != "" {
		return "openai"
	}

	return "ollama"
}

func apiKeyFor(provider string) string {
	if provider == "claude" {
		return os.Getenv("ANTHROPIC_API_KEY")
	}

	return os.Getenv(strings.ToUpper(provider) + "_API_KEY")
}

func loadBotConfig() (BotConfig, error) {
	provider := os.Getenv("BOT_PROVIDER")
	if provider == "" {
		provider = "discord"
	}

	var token string
	switch provider {
	case "discord":
		token = os.Getenv("LORE_BOT_TOKEN")
	case "telegram":
		token = os.Getenv("TELEGRAM_BOT_TOKEN")
	default:
		return BotConfig{}, fmt.Errorf("unknown bot provider: %s", provider)
	}

	if token == "" {
		return BotConfig{}, fmt.Errorf("no bot token configured for provider %s", provider)
	}

	return BotConfig{Provider: provider, Token: token}, nil
}

func parseCurators(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid curator id %q: %w", part, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
