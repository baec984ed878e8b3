package bot

import (
	"fmt"

	"github.com/Slaterfr/Discord-Echo/internal/logger"
	"github.com/bwmarrin/discordgo"
)

var slashCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "lore_profile",
		Description: "View your profile or another user's profile",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Whose profile to view",
			},
		},
	},
	{
		Name:        "lore_stories",
		Description: "View recent lore stories",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "homeworld",
				Description: "Prefer stories from this homeworld",
			},
		},
	},
	{
		Name:        "lore_add_alias",
		Description: "Add an alias for yourself",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "alias",
				Description: "The alias to record",
				Required:    true,
			},
		},
	},
	{
		Name:        "lore_add_info",
		Description: "Add personal information about yourself",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "category",
				Description: "Category label (e.g. Titles, Events)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "content",
				Description: "The information to record",
				Required:    true,
			},
		},
	},
	{
		Name:        "lore_add_story",
		Description: "Add a lore story to the archives",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "title",
				Description: "Story title",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "content",
				Description: "Story text",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "homeworld",
				Description: "Homeworld the story belongs to",
			},
		},
	},
	{
		Name:        "lore_help",
		Description: "Show LoreKeeper commands",
	},
}

func (d *discord) registerCommands() error {
	for _, cmd := range slashCommands {
		if _, err := d.session.ApplicationCommandCreate(d.session.State.User.ID, "", cmd); err != nil {
			return fmt.Errorf("register %s: %w", cmd.Name, err)
		}
	}

	logger.Info("slash commands registered", "count", len(slashCommands))
	return nil
}

func (d *discord) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	options := commandOptions(data)

	caller := interactionUser(i)
	callerID, err := parseSnowflake(caller.ID)
	if err != nil {
		logger.Error("unparseable caller id", "id", caller.ID, "error", err)
		return
	}

	switch data.Name {
	case "lore_profile":
		targetID := callerID
		if opt, ok := options["user"]; ok {
			if id, err := parseSnowflake(opt.UserValue(nil).ID); err == nil {
				targetID = id
			}
		}
		d.respondProfile(s, i, targetID)

	case "lore_stories":
		homeworld := ""
		if opt, ok := options["homeworld"]; ok {
			homeworld = opt.StringValue()
		}
		d.respondStories(s, i, homeworld)

	case "lore_add_alias":
		if !d.deps.cfg.isCurator(callerID) {
			respondEphemeral(s, i, notAuthorized)
			return
		}
		alias := options["alias"].StringValue()
		if err := d.deps.store.AddAlias(callerID, alias); err != nil {
			logger.Error("failed to add alias", "error", err)
			respondEphemeral(s, i, "Failed to add alias.")
			return
		}
		respond(s, i, fmt.Sprintf("Added alias '%s' for %s", alias, caller.Username))

	case "lore_add_info":
		if !d.deps.cfg.isCurator(callerID) {
			respondEphemeral(s, i, notAuthorized)
			return
		}
		category := options["category"].StringValue()
		content := options["content"].StringValue()
		if err := d.deps.store.AddInformation(callerID, category, content); err != nil {
			logger.Error("failed to add info", "error", err)
			respondEphemeral(s, i, "Failed to add info.")
			return
		}
		respond(s, i, fmt.Sprintf("Added info to category '%s'.", category))

	case "lore_add_story":
		if !d.deps.cfg.isCurator(callerID) {
			respondEphemeral(s, i, notAuthorized)
			return
		}
		title := options["title"].StringValue()
		content := options["content"].StringValue()
		homeworld := ""
		if opt, ok := options["homeworld"]; ok {
			homeworld = opt.StringValue()
		}
		if err := d.deps.store.AddStory(title, content, homeworld); err != nil {
			logger.Error("failed to add story", "error", err)
			respondEphemeral(s, i, "Failed to add story.")
			return
		}
		msg := fmt.Sprintf("Story '%s' added to the archives", title)
		if homeworld != "" {
			msg += fmt.Sprintf(" [from %s]", homeworld)
		}
		respond(s, i, msg+".")

	case "lore_help":
		respond(s, i, helpText)
	}
}

func (d *discord) respondProfile(s *discordgo.Session, i *discordgo.InteractionCreate, targetID int64) {
	profile, err := d.deps.store.GetUserProfile(targetID)
	if err != nil {
		logger.Error("failed to get profile", "error", err)
		respondEphemeral(s, i, "Failed to fetch the profile.")
		return
	}

	if profile == nil {
		respond(s, i, "User profile not found. (Any interaction will create a basic profile)")
		return
	}

	respondChunked(s, i, formatProfile(profile))
}

func (d *discord) respondStories(s *discordgo.Session, i *discordgo.InteractionCreate, homeworld string) {
	stories, err := d.deps.store.GetRecentStories(5, homeworld)
	if err != nil {
		logger.Error("failed to get stories", "error", err)
		respondEphemeral(s, i, "Failed to fetch stories.")
		return
	}

	respond(s, i, formatStoryList(stories))
}

func commandOptions(data discordgo.ApplicationCommandInteractionData) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(data.Options))
	for _, opt := range data.Options {
		options[opt.Name] = opt
	}
	return options
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		logger.Error("interaction respond failed", "error", err)
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		logger.Error("interaction respond failed", "error", err)
	}
}

func respondChunked(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	chunks := chunkMessage(content, discordChunkSize)
	respond(s, i, chunks[0])

	for _, chunk := range chunks[1:] {
		if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{Content: chunk}); err != nil {
			logger.Error("followup failed", "error", err)
			return
		}
	}
}
