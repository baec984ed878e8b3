package bot

import (
	"context"
	"strconv"

	"github.com/Slaterfr/Discord-Echo/internal/agent"
	"github.com/Slaterfr/Discord-Echo/internal/logger"
	"github.com/bwmarrin/discordgo"
)

// discordMessageLimit is Discord's hard cap on message length; replies are
// chunked slightly below it.
const discordMessageLimit = 2000
const discordChunkSize = 1900

type discord struct {
	session *discordgo.Session
	deps    deps
	ctx     context.Context
}

func newDiscord(token string, d deps) (Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	b := &discord{session: session, deps: d}
	session.AddHandler(b.handleMessage)
	session.AddHandler(b.handleInteraction)

	return b, nil
}

func (d *discord) Start(ctx context.Context) error {
	d.ctx = ctx

	if err := d.session.Open(); err != nil {
		return err
	}

	if err := d.registerCommands(); err != nil {
		d.session.Close()
		return err
	}

	logger.Info("discord bot running", "user", d.session.State.User.Username)

	<-ctx.Done()
	return d.session.Close()
}

func (d *discord) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}

	authorID, err := parseSnowflake(m.Author.ID)
	if err != nil {
		logger.Error("unparseable author id", "id", m.Author.ID, "error", err)
		return
	}

	// every observed interaction keeps the directory current
	if err := d.deps.store.UpsertUser(authorID, displayName(m)); err != nil {
		logger.Error("failed to upsert user", "error", err, "id", authorID)
	}

	if !d.mentionsBot(s, m) {
		return
	}

	logger.Info("bot mentioned", "from", m.Author.Username)
	s.ChannelTyping(m.ChannelID)

	req := agent.Request{
		AuthorID:   authorID,
		AuthorName: displayName(m),
		Content:    m.Content,
		MentionIDs: d.mentionedUsers(s, m),
		History:    d.channelHistory(s, m),
	}

	response, err := d.deps.agent.Reply(d.ctx, req)
	if err != nil {
		logger.Error("agent failed", "error", err)
		response = "I... I seem to have lost my train of thought."
	}

	chunks := chunkMessage(response, discordChunkSize)
	if _, err := s.ChannelMessageSendReply(m.ChannelID, chunks[0], m.Reference()); err != nil {
		logger.Error("discord reply failed", "error", err)
		return
	}

	for _, chunk := range chunks[1:] {
		if _, err := s.ChannelMessageSend(m.ChannelID, chunk); err != nil {
			logger.Error("discord send failed", "error", err)
			return
		}
	}
}

func (d *discord) mentionsBot(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	for _, u := range m.Mentions {
		if u.ID == s.State.User.ID {
			return true
		}
	}
	return false
}

func (d *discord) mentionedUsers(s *discordgo.Session, m *discordgo.MessageCreate) []int64 {
	var ids []int64
	for _, u := range m.Mentions {
		if u.ID == s.State.User.ID || u.Bot {
			continue
		}
		if id, err := parseSnowflake(u.ID); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// channelHistory returns the latest channel lines oldest-first, including
// the triggering message.
func (d *discord) channelHistory(s *discordgo.Session, m *discordgo.MessageCreate) []string {
	msgs, err := s.ChannelMessages(m.ChannelID, d.deps.cfg.ContextLimit, "", "", "")
	if err != nil {
		logger.Warn("failed to fetch channel history", "error", err)
		return []string{m.Author.Username + ": " + m.Content}
	}

	lines := make([]string, 0, len(msgs))
	for i := len(msgs) - 1; i >= 0; i-- {
		lines = append(lines, msgs[i].Author.Username+": "+msgs[i].Content)
	}

	return lines
}

func displayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}

func parseSnowflake(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}
