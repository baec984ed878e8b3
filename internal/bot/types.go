package bot

import (
	"context"

	"github.com/Slaterfr/Discord-Echo/internal/agent"
	"github.com/Slaterfr/Discord-Echo/internal/lore"
)

type Bot interface {
	Start(ctx context.Context) error
}

type Config struct {
	Provider     string
	Token        string
	Curators     []int64 // user ids allowed to write to the archives
	ContextLimit int     // channel history lines fed to the agent
}

func (c Config) isCurator(id int64) bool {
	for _, curator := range c.Curators {
		if curator == id {
			return true
		}
	}
	return false
}

type deps struct {
	agent *agent.Agent
	store *lore.Store
	cfg   Config
}
