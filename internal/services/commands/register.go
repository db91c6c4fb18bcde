package commands

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// RegisterHandler handles "!register <platform> <tag> [email]".
// Supplying an email grants consent to show it in !myinfo; leaving it out
// keeps any previously stored contact info untouched.
func (c *CommandControllerImpl) RegisterHandler() HandlerFunc {
	return func(ctx context.Context, msg *discordgo.MessageCreate, args ...string) error {
		if len(args) < 2 {
			return c.reply(msg.ChannelID, fmt.Sprintf("Usage: %sregister <platform> <tag> [email]", c.prefix))
		}

		invokerID, err := parseSnowflake(msg.Author.ID)
		if err != nil {
			return err
		}

		platform := args[0]
		tag := args[1]
		var email *string
		if len(args) > 2 {
			email = &args[2]
		}

		if err := c.profiles.RegisterProfile(ctx, invokerID, msg.Author.Username, platform, tag, email); err != nil {
			return fmt.Errorf("registering profile: %w", err)
		}

		return c.reply(msg.ChannelID, fmt.Sprintf("✅ Info registered for %s!", msg.Author.Username))
	}
}
