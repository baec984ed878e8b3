package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/Slaterfr/Discord-Echo/internal/agent"
	"github.com/Slaterfr/Discord-Echo/internal/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const telegramChunkSize = 4000

type telegram struct {
	api  *tgbotapi.BotAPI
	deps deps
}

func newTelegram(token string, d deps) (Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &telegram{api: api, deps: d}, nil
}

func (t *telegram) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := t.api.GetUpdatesChan(u)

	logger.Info("telegram bot running", "user", t.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil || update.Message.From == nil {
				continue
			}

			go t.handleMessage(ctx, update.Message)
		}
	}
}

func (t *telegram) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	name := telegramName(msg.From)

	if err := t.deps.store.UpsertUser(userID, name); err != nil {
		logger.Error("failed to upsert user", "error", err, "id", userID)
	}

	if msg.IsCommand() {
		t.handleCommand(msg, userID)
		return
	}

	if msg.Text == "" {
		return
	}

	logger.Info("message received", "from", name)

	req := agent.Request{
		AuthorID:   userID,
		AuthorName: name,
		Content:    msg.Text,
		History:    []string{name + ": " + msg.Text},
	}

	response, err := t.deps.agent.Reply(ctx, req)
	if err != nil {
		logger.Error("agent failed", "error", err)
		response = "I... I seem to have lost my train of thought."
	}

	t.reply(msg, response)
}

func (t *telegram) handleCommand(msg *tgbotapi.Message, userID int64) {
	args := strings.TrimSpace(msg.CommandArguments())

	switch msg.Command() {
	case "profile":
		targetID := userID
		if args != "" {
			id, found, err := t.deps.store.SearchUserByName(args)
			if err != nil {
				logger.Error("name search failed", "error", err)
				t.reply(msg, "Failed to fetch the profile.")
				return
			}
			if !found {
				t.reply(msg, "No user found by that name.")
				return
			}
			targetID = id
		}

		profile, err := t.deps.store.GetUserProfile(targetID)
		if err != nil {
			logger.Error("failed to get profile", "error", err)
			t.reply(msg, "Failed to fetch the profile.")
			return
		}
		if profile == nil {
			t.reply(msg, "User profile not found. (Any interaction will create a basic profile)")
			return
		}
		t.reply(msg, formatProfile(profile))

	case "stories":
		stories, err := t.deps.store.GetRecentStories(5, args)
		if err != nil {
			logger.Error("failed to get stories", "error", err)
			t.reply(msg, "Failed to fetch stories.")
			return
		}
		t.reply(msg, formatStoryList(stories))

	case "addalias":
		if !t.deps.cfg.isCurator(userID) {
			t.reply(msg, notAuthorized)
			return
		}
		if args == "" {
			t.reply(msg, "Usage: /addalias <alias>")
			return
		}
		if err := t.deps.store.AddAlias(userID, args); err != nil {
			logger.Error("failed to add alias", "error", err)
			t.reply(msg, "Failed to add alias.")
			return
		}
		t.reply(msg, fmt.Sprintf("Added alias '%s'.", args))

	case "addinfo":
		if !t.deps.cfg.isCurator(userID) {
			t.reply(msg, notAuthorized)
			return
		}
		category, content, ok := strings.Cut(args, "|")
		if !ok {
			t.reply(msg, "Usage: /addinfo <category> | <content>")
			return
		}
		category = strings.TrimSpace(category)
		content = strings.TrimSpace(content)
		if content == "" {
			t.reply(msg, "Usage: /addinfo <category> | <content>")
			return
		}
		if err := t.deps.store.AddInformation(userID, category, content); err != nil {
			logger.Error("failed to add info", "error", err)
			t.reply(msg, "Failed to add info.")
			return
		}
		t.reply(msg, fmt.Sprintf("Added info to category '%s'.", category))

	case "addstory":
		if !t.deps.cfg.isCurator(userID) {
			t.reply(msg, notAuthorized)
			return
		}
		title, content, homeworld, ok := parseStoryArgs(args)
		if !ok {
			t.reply(msg, "Usage: /addstory <title> | <content> | [homeworld]")
			return
		}
		if err := t.deps.store.AddStory(title, content, homeworld); err != nil {
			logger.Error("failed to add story", "error", err)
			t.reply(msg, "Failed to add story.")
			return
		}
		t.reply(msg, fmt.Sprintf("Story '%s' added to the archives.", title))

	case "help", "start":
		t.reply(msg, helpText)
	}
}

func (t *telegram) reply(msg *tgbotapi.Message, response string) {
	chunks := chunkMessage(response, telegramChunkSize)

	for i, chunk := range chunks {
		reply := tgbotapi.NewMessage(msg.Chat.ID, chunk)
		if i == 0 {
			reply.ReplyToMessageID = msg.MessageID
		}

		if _, err := t.api.Send(reply); err != nil {
			logger.Error("telegram send failed", "error", err)
			return
		}
	}
}

// parseStoryArgs splits "title | content | homeworld" with the homeworld
// part optional.
func parseStoryArgs(args string) (title, content, homeworld string, ok bool) {
	parts := strings.Split(args, "|")
	if len(parts) < 2 {
		return "", "", "", false
	}

	title = strings.TrimSpace(parts[0])
	content = strings.TrimSpace(parts[1])
	if len(parts) > 2 {
		homeworld = strings.TrimSpace(parts[2])
	}

	if title == "" || content == "" {
		return "", "", "", false
	}

	return title, content, homeworld, true
}

func telegramName(u *tgbotapi.User) string {
	if u.UserName != "" {
		return u.UserName
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
