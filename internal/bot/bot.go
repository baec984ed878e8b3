package bot

import (
	"fmt"

	"github.com/Slaterfr/Discord-Echo/internal/agent"
	"github.com/Slaterfr/Discord-Echo/internal/lore"
)

func New(cfg Config, agent *agent.Agent, store *lore.Store) (Bot, error) {
	d := deps{agent: agent, store: store, cfg: cfg}

	switch cfg.Provider {
	case "discord":
		return newDiscord(cfg.Token, d)
	case "telegram":
		return newTelegram(cfg.Token, d)
	default:
		return nil, fmt.Errorf("unknown bot provider: %s", cfg.Provider)
	}
}
