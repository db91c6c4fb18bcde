package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MyelinBots/tagbot-go/internal/db/repositories/profile"
	"github.com/MyelinBots/tagbot-go/internal/services/context_manager"
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

const failureReply = "⚠️ Something went wrong, please try again later."

// Session is the slice of the discord client the handlers need.
type Session interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type HandlerFunc func(ctx context.Context, msg *discordgo.MessageCreate, args ...string) error

type CommandController interface {
	HandleCommand(ctx context.Context, msg *discordgo.MessageCreate) error
	AddCommand(command string, handler HandlerFunc)
}

type CommandControllerImpl struct {
	session  Session
	profiles profile.ProfileRepository
	prefix   string
	commands map[string]HandlerFunc
}

func NewCommandController(session Session, profiles profile.ProfileRepository, prefix string) *CommandControllerImpl {
	return &CommandControllerImpl{
		session:  session,
		profiles: profiles,
		prefix:   prefix,
		commands: make(map[string]HandlerFunc),
	}
}

// HandleCommand parses a chat message and dispatches to the matching handler.
// Messages without the prefix and unknown commands are ignored. A handler
// error produces one generic failure notice so the invoker is never left
// guessing whether anything happened.
func (c *CommandControllerImpl) HandleCommand(ctx context.Context, msg *discordgo.MessageCreate) error {
	if msg == nil || msg.Author == nil {
		return nil
	}
	if !strings.HasPrefix(msg.Content, c.prefix) {
		return nil
	}

	fields := strings.Fields(msg.Content)
	if len(fields) == 0 {
		return nil
	}

	name := strings.ToLower(strings.TrimPrefix(fields[0], c.prefix))
	handler, exists := c.commands[name]
	if !exists {
		return nil
	}

	invocationID := uuid.NewString()
	ctx = context_manager.SetInvokerContext(ctx, msg.Author.ID, msg.Author.Username)
	ctx = context_manager.SetInvocationIDContext(ctx, invocationID)

	if err := handler(ctx, msg, fields[1:]...); err != nil {
		c.reply(msg.ChannelID, failureReply)
		return fmt.Errorf("invocation %s: %s: %w", invocationID, name, err)
	}
	return nil
}

func (c *CommandControllerImpl) AddCommand(command string, handler HandlerFunc) {
	c.commands[command] = handler
}

func (c *CommandControllerImpl) reply(channelID, content string) error {
	_, err := c.session.ChannelMessageSend(channelID, content)
	return err
}

func parseSnowflake(id string) (int64, error) {
	parsed, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing discord id %q: %w", id, err)
	}
	return parsed, nil
}

// displayName mirrors what members see in the channel, falling back to the
// account username when no display name is set.
func displayName(u *discordgo.User) string {
	if u == nil {
		return "unknown"
	}
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}
