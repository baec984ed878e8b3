// Command loreimport bulk-loads a YAML seed file of users and stories into
// the lore database, writing the same tables the live bot uses.
package main

import (
	"flag"
	"os"

	"github.com/Slaterfr/Discord-Echo/internal/logger"
	"github.com/Slaterfr/Discord-Echo/internal/lore"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Users   []seedUser  `yaml:"users"`
	Stories []seedStory `yaml:"stories"`
}

type seedUser struct {
	DiscordID int64    `yaml:"discord_id"`
	Username  string   `yaml:"username"`
	Aliases   []string `yaml:"aliases"`
	Titles    []string `yaml:"titles"`
	Homeworld string   `yaml:"homeworld"`
	Events    []string `yaml:"events"`
	History   string   `yaml:"history"`
}

type seedStory struct {
	Title     string `yaml:"title"`
	Content   string `yaml:"content"`
	Homeworld string `yaml:"homeworld"`
}

func main() {
	dbPath := flag.String("db", "lore.db", "path to the lore database")
	filePath := flag.String("file", "lore.yml", "path to the YAML seed file")
	flag.Parse()

	data, err := os.ReadFile(*filePath)
	if err != nil {
		logger.Fatal("failed to read seed file", "error", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		logger.Fatal("failed to parse seed file", "error", err)
	}

	store, err := lore.Open(*dbPath)
	if err != nil {
		logger.Fatal("failed to open lore database", "error", err)
	}
	defer store.Close()

	imported := 0
	for _, user := range seed.Users {
		if err := importUser(store, user); err != nil {
			logger.Error("failed to import user", "user", user.Username, "error", err)
			continue
		}
		imported++
		logger.Info("imported user", "user", user.Username, "id", user.DiscordID)
	}

	for _, story := range seed.Stories {
		if err := store.AddStory(story.Title, story.Content, story.Homeworld); err != nil {
			logger.Error("failed to import story", "title", story.Title, "error", err)
			continue
		}
		logger.Info("imported story", "title", story.Title)
	}

	logger.Info("bulk import complete", "users", imported, "stories", len(seed.Stories))
}

func importUser(store *lore.Store, user seedUser) error {
	if err := store.UpsertUser(user.DiscordID, user.Username); err != nil {
		return err
	}

	for _, alias := range user.Aliases {
		if err := store.AddAlias(user.DiscordID, alias); err != nil {
			return err
		}
	}

	for _, title := range user.Titles {
		if err := store.AddInformation(user.DiscordID, "Titles", title); err != nil {
			return err
		}
	}

	if user.Homeworld != "" {
		if err := store.AddInformation(user.DiscordID, "Homeworld", user.Homeworld); err != nil {
			return err
		}
	}

	for _, event := range user.Events {
		if err := store.AddInformation(user.DiscordID, "Events", event); err != nil {
			return err
		}
	}

	if user.History != "" {
		if err := store.AddInformation(user.DiscordID, "History", user.History); err != nil {
			return err
		}
	}

	return nil
}
