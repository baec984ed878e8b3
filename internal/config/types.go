package config

type Config struct {
	DBPath       string
	PersonaPath  string
	ContextLimit int
	LLM          LLMConfig
	Bot          BotConfig
	Curators     []int64
}

type LLMConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

type BotConfig struct {
	Provider string
	Token    string
}
